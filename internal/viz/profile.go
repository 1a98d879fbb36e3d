package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// Profile plots a 1-D slice of the potential, e.g. Phi(R) in the midplane.
func Profile(values []float64, caption string) string {
	plot := asciigraph.Plot(values,
		asciigraph.Height(16),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
	return graphStyle.Render(plot)
}

// RowProfile extracts grid row r and plots it against z.
func RowProfile(Rs, zs, vals []float64, r int) string {
	row := make([]float64, len(zs))
	copy(row, vals[r*len(zs):(r+1)*len(zs)])
	return Profile(row, fmt.Sprintf("phi(z) at R=%.3f", Rs[r]))
}

// ColumnProfile extracts grid column c and plots it against R.
func ColumnProfile(Rs, zs, vals []float64, c int) string {
	col := make([]float64, len(Rs))
	for r := range Rs {
		col[r] = vals[r*len(zs)+c]
	}
	return Profile(col, fmt.Sprintf("phi(R) at z=%.3f", zs[c]))
}
