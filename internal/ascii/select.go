package ascii

import "github.com/vovakirdan/asciiflap/internal/raster"

// Cell is the rendered form of one block.
type Cell struct {
	Col, Row int
	Index    int  // ramp index
	Glyph    rune // ramp[Index]
	Color    raster.Color
	HasColor bool
}

// Select picks the glyph (and, when enabled, the color) for one block.
// Averages truncate toward zero.
func Select(agg Aggregate, cfg Config) Cell {
	cell := Cell{Col: agg.Col, Row: agg.Row, Glyph: cfg.ramp[0]}
	if agg.Count <= 0 {
		return cell
	}

	if cfg.colorEnabled {
		c := raster.Color{
			R: uint8(agg.SumR / agg.Count),
			G: uint8(agg.SumG / agg.Count),
			B: uint8(agg.SumB / agg.Count),
		}
		if cfg.invertColor {
			c = c.Invert()
		}
		cell.Color = c
		cell.HasColor = true
	}

	boosted := boost(agg.SumLuma/agg.Count, cfg.boost)
	if boosted == 0 {
		// Dark blocks (sky, background) are the common case.
		return cell
	}

	n := len(cfg.ramp)
	idx := min(boosted*n/256, n-1)
	cell.Index = idx
	cell.Glyph = cfg.ramp[idx]
	return cell
}

// boost scales avg and clamps the result to [0, 255].
func boost(avg int, factor float64) int {
	v := float64(avg) * factor
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return int(v)
}
