package raster

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, w, h int) *Image {
	t.Helper()
	img, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", w, h, err)
	}
	return img
}

func TestNewImage(t *testing.T) {
	img := mustNew(t, 4, 3)

	if img.Width() != 4 || img.Height() != 3 || img.Channels() != 3 {
		t.Errorf("dimensions = %dx%dx%d, expected 4x3x3", img.Width(), img.Height(), img.Channels())
	}
	if len(img.Pix()) != 4*3*3 {
		t.Errorf("len(Pix()) = %d, expected %d", len(img.Pix()), 4*3*3)
	}
	for i, b := range img.Pix() {
		if b != 0 {
			t.Fatalf("new image should be black, byte %d = %d", i, b)
		}
	}
}

func TestNewImageInvalid(t *testing.T) {
	tests := []struct {
		name    string
		w, h, c int
	}{
		{"zero width", 0, 4, 3},
		{"zero height", 4, 0, 3},
		{"negative width", -1, 4, 3},
		{"too few channels", 4, 4, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWithChannels(tc.w, tc.h, tc.c)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}

func TestNewFromBuffer(t *testing.T) {
	buf := make([]uint8, 2*2*4)
	img, err := NewFromBuffer(buf, 2, 2, 4)
	if err != nil {
		t.Fatalf("NewFromBuffer() failed: %v", err)
	}

	img.Set(1, 1, RGB(10, 20, 30))
	o := (1*2 + 1) * 4
	if buf[o] != 10 || buf[o+1] != 20 || buf[o+2] != 30 {
		t.Errorf("Set should write through to the wrapped buffer, got %v", buf[o:o+3])
	}

	if _, err := NewFromBuffer(make([]uint8, 5), 2, 2, 3); !errors.Is(err, ErrBufferSize) {
		t.Errorf("expected ErrBufferSize, got %v", err)
	}
}

func TestSetAtClipping(t *testing.T) {
	img := mustNew(t, 3, 3)
	before := img.Clone()

	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		img.Set(p.X, p.Y, White)
		if img.At(p.X, p.Y) != Black {
			t.Errorf("At(%d, %d) out of bounds should be black", p.X, p.Y)
		}
	}
	if !img.Equal(before) {
		t.Error("out-of-bounds Set should leave the buffer unchanged")
	}

	img.Set(2, 1, RGB(1, 2, 3))
	if got := img.At(2, 1); got != RGB(1, 2, 3) {
		t.Errorf("At(2, 1) = %v, expected {1 2 3}", got)
	}
}

func TestClearKeepsBuffer(t *testing.T) {
	img, err := NewWithChannels(2, 2, 4)
	if err != nil {
		t.Fatalf("NewWithChannels() failed: %v", err)
	}
	pix := img.Pix()

	img.Clear(RGB(9, 8, 7))

	if &img.Pix()[0] != &pix[0] {
		t.Error("Clear should not reallocate the buffer")
	}
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 9 || pix[i+1] != 8 || pix[i+2] != 7 || pix[i+3] != 0xff {
			t.Fatalf("pixel at %d = %v, expected [9 8 7 255]", i, pix[i:i+4])
		}
	}
}

func TestColorHelpers(t *testing.T) {
	c := RGB(0, 128, 255)
	if c.Invert() != RGB(255, 127, 0) {
		t.Errorf("Invert() = %v, expected {255 127 0}", c.Invert())
	}
	if c.Hex() != "#0080ff" {
		t.Errorf("Hex() = %q, expected #0080ff", c.Hex())
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		ok       bool
	}{
		{"#0080ff", RGB(0, 128, 255), true},
		{"#FFD23F", RGB(255, 210, 63), true},
		{"#fff", White, true},
		{"#a0c", RGB(170, 0, 204), true},
		{"0080ff", Color{}, false},
		{"#12345", Color{}, false},
		{"#gg0000", Color{}, false},
		{"", Color{}, false},
	}

	for _, tc := range tests {
		got, err := ParseHex(tc.in)
		if tc.ok && (err != nil || got != tc.expected) {
			t.Errorf("ParseHex(%q) = %v, %v; expected %v", tc.in, got, err, tc.expected)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, expected ErrInvalidColor", tc.in, err)
		}
	}
}

func TestToRGBA(t *testing.T) {
	img := mustNew(t, 2, 1)
	img.Set(1, 0, RGB(5, 6, 7))

	out := img.ToRGBA()
	r, g, b, a := out.At(1, 0).RGBA()
	if r>>8 != 5 || g>>8 != 6 || b>>8 != 7 || a>>8 != 255 {
		t.Errorf("ToRGBA pixel = (%d,%d,%d,%d), expected (5,6,7,255)", r>>8, g>>8, b>>8, a>>8)
	}
}
