package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/galpot/internal/config"
	"github.com/san-kum/galpot/internal/field"
	"github.com/san-kum/galpot/internal/potential"
	"github.com/san-kum/galpot/internal/store"
	"github.com/san-kum/galpot/internal/viz"
)

var (
	configFile string
	rmin, rmax float64
	zmin, zmax float64
	nr, nz     int
	logR       bool
	workers    int
	outFile    string
	format     string
	plot       bool
	zSlice     float64
	rList      string
	zList      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "galpot",
		Short: "axisymmetric gravitational potential field toolkit",
	}

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "evaluate the potential on an (R, z) grid",
		RunE:  runGrid,
	}
	addSceneFlags(gridCmd)
	gridCmd.Flags().StringVar(&outFile, "out", "", "export file path")
	gridCmd.Flags().StringVar(&format, "format", "json", "export format (json|csv)")
	gridCmd.Flags().BoolVar(&plot, "plot", false, "render a terminal heatmap")
	gridCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = all cores)")

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate the potential at explicit (R, z) pairs",
		RunE:  runEval,
	}
	evalCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	evalCmd.Flags().StringVar(&rList, "r", "", "comma-separated R values")
	evalCmd.Flags().StringVar(&zList, "z", "", "comma-separated z values (same count as --r)")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot phi(R) at fixed z",
		RunE:  runProfile,
	}
	addSceneFlags(profileCmd)
	profileCmd.Flags().Float64Var(&zSlice, "at-z", 0.0, "z value of the slice")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactively browse a computed grid",
		RunE:  runView,
	}
	addSceneFlags(viewCmd)
	viewCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = all cores)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list potential components",
		RunE:  listComponents,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default scene config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(gridCmd, evalCmd, profileCmd, viewCmd, listCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Float64Var(&rmin, "rmin", 0, "R axis minimum")
	cmd.Flags().Float64Var(&rmax, "rmax", 0, "R axis maximum")
	cmd.Flags().Float64Var(&zmin, "zmin", 0, "z axis minimum")
	cmd.Flags().Float64Var(&zmax, "zmax", 0, "z axis maximum")
	cmd.Flags().IntVar(&nr, "nr", 0, "R samples")
	cmd.Flags().IntVar(&nz, "nz", 0, "z samples")
	cmd.Flags().BoolVar(&logR, "logr", false, "log-spaced R axis")
}

// loadScene resolves the scene config: file if given, defaults otherwise,
// with any set axis flags overriding both.
func loadScene(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("rmin") {
		cfg.R.Min = rmin
	}
	if cmd.Flags().Changed("rmax") {
		cfg.R.Max = rmax
	}
	if cmd.Flags().Changed("nr") {
		cfg.R.N = nr
	}
	if cmd.Flags().Changed("logr") {
		cfg.R.Log = logR
	}
	if cmd.Flags().Changed("zmin") {
		cfg.Z.Min = zmin
	}
	if cmd.Flags().Changed("zmax") {
		cfg.Z.Max = zmax
	}
	if cmd.Flags().Changed("nz") {
		cfg.Z.N = nz
	}
	return cfg, nil
}

// computeGrid materializes the axes, packs the components, and fills the grid.
func computeGrid(cmd *cobra.Command) (Rs, zs, vals []float64, err error) {
	cfg, err := loadScene(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	if Rs, err = cfg.R.Values(); err != nil {
		return nil, nil, nil, err
	}
	if zs, err = cfg.Z.Values(); err != nil {
		return nil, nil, nil, err
	}
	types, params, err := cfg.Pack()
	if err != nil {
		return nil, nil, nil, err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	vals = make([]float64, len(Rs)*len(zs))
	err = field.ParallelGrid(context.Background(), Rs, zs, types, params, vals, cfg.Workers)
	if err != nil {
		return nil, nil, nil, err
	}
	return Rs, zs, vals, nil
}

func runGrid(cmd *cobra.Command, args []string) error {
	Rs, zs, vals, err := computeGrid(cmd)
	if err != nil {
		return err
	}

	if plot {
		fmt.Println(viz.Heatmap(Rs, zs, vals))
	}

	switch {
	case outFile == "" && !plot:
		return store.WriteGridJSON(os.Stdout, Rs, zs, vals)
	case outFile == "":
		return nil
	case format == "csv":
		return store.ExportGridCSV(outFile, Rs, zs, vals)
	case format == "json":
		return store.ExportGridJSON(outFile, Rs, zs, vals)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	Rs, err := parseFloats(rList)
	if err != nil {
		return fmt.Errorf("--r: %w", err)
	}
	zs, err := parseFloats(zList)
	if err != nil {
		return fmt.Errorf("--z: %w", err)
	}
	if len(Rs) == 0 || len(Rs) != len(zs) {
		return fmt.Errorf("--r and --z need the same nonzero count, got %d and %d", len(Rs), len(zs))
	}

	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}
	types, params, err := cfg.Pack()
	if err != nil {
		return err
	}

	vals := make([]float64, len(Rs))
	if err := field.EvalPotential(Rs, zs, types, params, vals); err != nil {
		return err
	}
	return store.WritePointsCSV(os.Stdout, Rs, zs, vals)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}
	Rs, err := cfg.R.Values()
	if err != nil {
		return err
	}
	types, params, err := cfg.Pack()
	if err != nil {
		return err
	}

	zs := make([]float64, len(Rs))
	for i := range zs {
		zs[i] = zSlice
	}
	vals := make([]float64, len(Rs))
	if err := field.EvalPotential(Rs, zs, types, params, vals); err != nil {
		return err
	}

	fmt.Println(viz.Profile(vals, fmt.Sprintf("phi(R) at z=%.3f", zSlice)))
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	Rs, zs, vals, err := computeGrid(cmd)
	if err != nil {
		return err
	}
	return viz.RunExplorer(Rs, zs, vals)
}

func listComponents(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTAG\tPARAMS")
	for _, name := range potential.Names() {
		tag, _ := potential.TagFor(name)
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, tag, strings.Join(potential.ParamNames(name), ", "))
	}
	return w.Flush()
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
