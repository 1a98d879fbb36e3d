// Package store exports computed fields for downstream tooling.
package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

// GridData is the JSON export shape for a computed grid. Values are row-major
// by R, matching the evaluation layout.
type GridData struct {
	R      []float64 `json:"r"`
	Z      []float64 `json:"z"`
	Values []float64 `json:"values"`
}

// PointData is the JSON export shape for paired-point results.
type PointData struct {
	R      []float64 `json:"r"`
	Z      []float64 `json:"z"`
	Values []float64 `json:"values"`
}

// ExportGridJSON writes a grid to path as indented JSON.
func ExportGridJSON(path string, Rs, zs, vals []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteGridJSON(file, Rs, zs, vals)
}

// WriteGridJSON encodes a grid as indented JSON to w.
func WriteGridJSON(w io.Writer, Rs, zs, vals []float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(GridData{R: Rs, Z: zs, Values: vals})
}

// ExportGridCSV writes a grid to path as CSV with columns R, z, phi, one row
// per grid point in row-major order.
func ExportGridCSV(path string, Rs, zs, vals []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteGridCSV(file, Rs, zs, vals)
}

// WriteGridCSV encodes a grid as CSV to w.
func WriteGridCSV(w io.Writer, Rs, zs, vals []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"R", "z", "phi"}); err != nil {
		return err
	}
	for r, R := range Rs {
		for c, z := range zs {
			record := []string{
				strconv.FormatFloat(R, 'g', -1, 64),
				strconv.FormatFloat(z, 'g', -1, 64),
				strconv.FormatFloat(vals[r*len(zs)+c], 'g', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePointsCSV encodes paired-point results as CSV to w.
func WritePointsCSV(w io.Writer, Rs, zs, vals []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"R", "z", "phi"}); err != nil {
		return err
	}
	for i := range vals {
		record := []string{
			strconv.FormatFloat(Rs[i], 'g', -1, 64),
			strconv.FormatFloat(zs[i], 'g', -1, 64),
			strconv.FormatFloat(vals[i], 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
