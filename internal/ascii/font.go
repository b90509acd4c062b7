package ascii

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// alphaThreshold is the coverage at which a scaled font pixel counts as set.
const alphaThreshold = 0x80

// bayer4 is a 4x4 ordered-dither matrix used for glyphs the font lacks.
var bayer4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Bitmap is a square monochrome glyph pattern stored row-major.
type Bitmap struct {
	size int
	bits []bool
}

// Size returns the bitmap edge length.
func (b Bitmap) Size() int { return b.size }

// At reports whether pixel (x, y) is set. Out-of-range pixels are unset.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.size || y >= b.size {
		return false
	}
	return b.bits[y*b.size+x]
}

// Count returns the number of set pixels.
func (b Bitmap) Count() int {
	n := 0
	for _, v := range b.bits {
		if v {
			n++
		}
	}
	return n
}

// Font holds one bitmap per ramp entry, all size x size.
type Font struct {
	size   int
	glyphs []Bitmap
}

// NewFont rasterizes every ramp rune from the 7x13 basic font, scaled to a
// size x size cell. Runes the face has no glyph for get a dither pattern
// whose density follows their ramp position.
func NewFont(ramp []rune, size int) *Font {
	f := &Font{size: size, glyphs: make([]Bitmap, len(ramp))}
	face := basicfont.Face7x13
	src := image.NewAlpha(image.Rect(0, 0, face.Width, face.Height))
	dst := image.NewAlpha(image.Rect(0, 0, size, size))

	for i, r := range ramp {
		switch {
		case r == ' ':
			f.glyphs[i] = Bitmap{size: size, bits: make([]bool, size*size)}
		case hasGlyph(face, r):
			f.glyphs[i] = rasterize(face, r, src, dst)
		default:
			f.glyphs[i] = dither(size, i, len(ramp))
		}
	}
	return f
}

// Size returns the glyph edge length in pixels.
func (f *Font) Size() int { return f.size }

// Len returns the number of glyphs.
func (f *Font) Len() int { return len(f.glyphs) }

// Glyph returns the bitmap for ramp index i.
func (f *Font) Glyph(i int) Bitmap { return f.glyphs[i] }

func hasGlyph(face *basicfont.Face, r rune) bool {
	for _, rng := range face.Ranges {
		if r >= rng.Low && r < rng.High {
			return true
		}
	}
	return false
}

func rasterize(face *basicfont.Face, r rune, src, dst *image.Alpha) Bitmap {
	clear(src.Pix)
	d := font.Drawer{
		Dst:  src,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(string(r))

	clear(dst.Pix)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	size := dst.Bounds().Dx()
	bm := Bitmap{size: size, bits: make([]bool, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			bm.bits[y*size+x] = dst.AlphaAt(x, y).A >= alphaThreshold
		}
	}
	return bm
}

func dither(size, index, n int) Bitmap {
	bm := Bitmap{size: size, bits: make([]bool, size*size)}
	// Threshold in sixteenths: index n-1 fills every pixel.
	level := (index + 1) * 16 / n
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			bm.bits[y*size+x] = bayer4[y%4][x%4] < level
		}
	}
	return bm
}
