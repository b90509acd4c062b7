// Package raster provides the pixel canvas games draw into and the 2D
// primitives that paint it. Every write is clipped to the canvas, so shapes
// that are partially or fully off-screen never touch memory outside the
// buffer.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strconv"

	"github.com/vovakirdan/asciiflap/internal/core"
)

// RGBChannels is the channel count used by New.
const RGBChannels = 3

var (
	// ErrInvalidDimensions is returned when width, height or channels is not positive.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")
	// ErrBufferSize is returned when a wrapped buffer does not match width*height*channels.
	ErrBufferSize = errors.New("raster: buffer size mismatch")
	// ErrInvalidColor is returned by ParseHex for malformed input.
	ErrInvalidColor = errors.New("raster: invalid color")
)

// Color is a 24-bit truecolor value.
type Color struct {
	R, G, B uint8
}

// RGB is a shorthand for building a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

// Invert returns the channel-wise complement of c.
func (c Color) Invert() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a "#rrggbb" or "#rgb" color.
func ParseHex(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' || (len(s) != 7 && len(s) != 4) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(s) == 4 {
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return Color{R: r * 17, G: g * 17, B: b * 17}, nil
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Image is an owned buffer of interleaved color samples.
// Pixel (x, y) starts at offset (y*width+x)*channels. Only the first three
// channels carry color; extra channels are left opaque.
type Image struct {
	width    int
	height   int
	channels int
	pix      []uint8
}

// New allocates a black RGB image.
func New(width, height int) (*Image, error) {
	return NewWithChannels(width, height, RGBChannels)
}

// NewWithChannels allocates an image with the given channel count (at least 3).
func NewWithChannels(width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 || channels < RGBChannels {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, width, height, channels)
	}
	img := &Image{
		width:    width,
		height:   height,
		channels: channels,
		pix:      make([]uint8, width*height*channels),
	}
	img.Clear(Black)
	return img, nil
}

// NewFromBuffer wraps buf without copying it. The caller keeps ownership of
// buf and must not resize it while the image is in use.
func NewFromBuffer(buf []uint8, width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 || channels < RGBChannels {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, width, height, channels)
	}
	if len(buf) != width*height*channels {
		return nil, fmt.Errorf("%w: have %d bytes, want %d", ErrBufferSize, len(buf), width*height*channels)
	}
	return &Image{width: width, height: height, channels: channels, pix: buf}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Channels returns the number of samples per pixel.
func (img *Image) Channels() int {
	return img.channels
}

// Pix returns the backing buffer.
func (img *Image) Pix() []uint8 {
	return img.pix
}

// Bounds returns the canvas rectangle.
func (img *Image) Bounds() core.Rect {
	return core.NewRect(0, 0, img.width, img.height)
}

// InBounds reports whether (x, y) is a pixel of the image.
func (img *Image) InBounds(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// Offset returns the buffer index of pixel (x, y), or -1 when out of bounds.
func (img *Image) Offset(x, y int) int {
	if !img.InBounds(x, y) {
		return -1
	}
	return (y*img.width + x) * img.channels
}

// Set paints one pixel. Out-of-bounds coordinates are silently ignored.
func (img *Image) Set(x, y int, c Color) {
	i := img.Offset(x, y)
	if i < 0 {
		return
	}
	img.pix[i] = c.R
	img.pix[i+1] = c.G
	img.pix[i+2] = c.B
}

// At returns the color at (x, y), or black when out of bounds.
func (img *Image) At(x, y int) Color {
	i := img.Offset(x, y)
	if i < 0 {
		return Black
	}
	return Color{R: img.pix[i], G: img.pix[i+1], B: img.pix[i+2]}
}

// Clear repaints every pixel with c without reallocating.
func (img *Image) Clear(c Color) {
	for i := 0; i < len(img.pix); i += img.channels {
		img.pix[i] = c.R
		img.pix[i+1] = c.G
		img.pix[i+2] = c.B
		for k := RGBChannels; k < img.channels; k++ {
			img.pix[i+k] = 0xff
		}
	}
}

// fillSpan paints pixels [x0, x1) on row y. Callers clip beforehand.
func (img *Image) fillSpan(y, x0, x1 int, c Color) {
	i := (y*img.width + x0) * img.channels
	for x := x0; x < x1; x++ {
		img.pix[i] = c.R
		img.pix[i+1] = c.G
		img.pix[i+2] = c.B
		i += img.channels
	}
}

// Equal reports whether both images have the same shape and bytes.
func (img *Image) Equal(other *Image) bool {
	if other == nil {
		return false
	}
	return img.width == other.width && img.height == other.height &&
		img.channels == other.channels && bytes.Equal(img.pix, other.pix)
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	pix := make([]uint8, len(img.pix))
	copy(pix, img.pix)
	return &Image{width: img.width, height: img.height, channels: img.channels, pix: pix}
}

// ToRGBA converts the image to an opaque *image.RGBA.
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := img.At(x, y)
			o := out.PixOffset(x, y)
			out.Pix[o] = c.R
			out.Pix[o+1] = c.G
			out.Pix[o+2] = c.B
			out.Pix[o+3] = 0xff
		}
	}
	return out
}
