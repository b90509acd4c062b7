package ascii

import (
	"unicode/utf8"

	"github.com/vovakirdan/asciiflap/internal/raster"
)

// ComposeText appends the cells to dst as text, one line per block row, each
// line terminated by '\n'. Glyphs are written as UTF-8 so multi-byte ramp
// entries keep their full encoding. cells must be in row-major order.
func ComposeText(dst []byte, cells []Cell) []byte {
	for i, c := range cells {
		dst = utf8.AppendRune(dst, c.Glyph)
		if i == len(cells)-1 || cells[i+1].Row != c.Row {
			dst = append(dst, '\n')
		}
	}
	return dst
}

// ComposeRaster paints every cell's glyph bitmap into dst at its block
// position. Set bits take the cell color (white when the cell carries no
// color); unset bits take bg. Pixels outside dst are clipped.
func ComposeRaster(dst *raster.Image, cells []Cell, f *Font, bg raster.Color) {
	size := f.Size()
	for _, c := range cells {
		fg := raster.White
		if c.HasColor {
			fg = c.Color
		}
		glyph := f.Glyph(c.Index)
		x0, y0 := c.Col*size, c.Row*size
		for gy := 0; gy < size; gy++ {
			y := y0 + gy
			if y >= dst.Height() {
				break
			}
			for gx := 0; gx < size; gx++ {
				x := x0 + gx
				if x >= dst.Width() {
					break
				}
				if glyph.At(gx, gy) {
					dst.Set(x, y, fg)
				} else {
					dst.Set(x, y, bg)
				}
			}
		}
	}
}
