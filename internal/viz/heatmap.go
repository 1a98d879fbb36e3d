// Package viz renders computed potential fields in the terminal.
package viz

import (
	"fmt"
	"math"
	"strings"
)

// Heatmap renders a row-major grid as a colored character map, one line per
// R row (low R at the top), one cell per z column. Non-finite cells render
// as "?" and do not influence the color ramp.
func Heatmap(Rs, zs, vals []float64) string {
	lo, hi := bounds(vals)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("potential  R:[%g, %g]  z:[%g, %g]", Rs[0], Rs[len(Rs)-1], zs[0], zs[len(zs)-1])))
	b.WriteByte('\n')

	for r := range Rs {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%8.3f │", Rs[r])))
		for c := range zs {
			v := vals[r*len(zs)+c]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				b.WriteString("?")
				continue
			}
			bucket := int((v - lo) / span * float64(len(rampStyles)-1))
			b.WriteString(rampStyles[bucket].Render(string(rampChars[bucket])))
		}
		b.WriteByte('\n')
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("          min=%s max=%s",
		valueStyle.Render(fmt.Sprintf("%.4g", lo)),
		valueStyle.Render(fmt.Sprintf("%.4g", hi)))))
	return b.String()
}

// bounds finds the finite value range; NaN and ±Inf are excluded so one
// singular grid point cannot flatten the ramp for every other cell.
func bounds(vals []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0
	}
	return lo, hi
}
