package ascii

import (
	"testing"

	"github.com/vovakirdan/asciiflap/internal/raster"
)

func newImage(t *testing.T, w, h int) *raster.Image {
	t.Helper()
	img, err := raster.New(w, h)
	if err != nil {
		t.Fatalf("raster.New(%d, %d) failed: %v", w, h, err)
	}
	return img
}

func collect(img *raster.Image, cfg Config) []Aggregate {
	var out []Aggregate
	for agg := range Blocks(img, cfg) {
		out = append(out, agg)
	}
	return out
}

func TestLuma(t *testing.T) {
	tests := []struct {
		c        raster.Color
		expected int
	}{
		{raster.Black, 0},
		{raster.White, 255},
		{raster.RGB(255, 0, 0), 76},
		{raster.RGB(0, 255, 0), 149},
		{raster.RGB(0, 0, 255), 29},
		{raster.RGB(100, 100, 100), 100},
	}

	for _, tc := range tests {
		if got := Luma(tc.c); got != tc.expected {
			t.Errorf("Luma(%v) = %d, expected %d", tc.c, got, tc.expected)
		}
	}
}

func TestOutputSize(t *testing.T) {
	tests := []struct {
		name             string
		w, h, block      int
		expW, expH       int
		expCols, expRows int
	}{
		{"exact multiple", 16, 16, 8, 16, 16, 2, 2},
		{"rounded down", 20, 13, 8, 16, 8, 2, 1},
		{"smaller than block", 5, 3, 8, 5, 3, 1, 1},
		{"block of one", 3, 2, 1, 3, 2, 3, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := OutputSize(tc.w, tc.h, tc.block)
			if w != tc.expW || h != tc.expH {
				t.Errorf("OutputSize() = %dx%d, expected %dx%d", w, h, tc.expW, tc.expH)
			}
			if w > tc.w || h > tc.h {
				t.Error("output size must never exceed the source")
			}
			cols, rows := GridSize(tc.w, tc.h, tc.block)
			if cols != tc.expCols || rows != tc.expRows {
				t.Errorf("GridSize() = %dx%d, expected %dx%d", cols, rows, tc.expCols, tc.expRows)
			}
		})
	}
}

func TestBlocksExactMultiple(t *testing.T) {
	img := newImage(t, 32, 24)
	cfg := MustConfig(WithBlockSize(8))

	aggs := collect(img, cfg)
	if len(aggs) != 4*3 {
		t.Fatalf("got %d blocks, expected 12", len(aggs))
	}
	for _, a := range aggs {
		if a.Count != 64 {
			t.Errorf("block (%d,%d) has %d pixels, expected 64", a.Col, a.Row, a.Count)
		}
	}
}

func TestBlocksRowMajorOrder(t *testing.T) {
	img := newImage(t, 24, 16)
	cfg := MustConfig(WithBlockSize(8))

	aggs := collect(img, cfg)
	for i, a := range aggs {
		if a.Col != i%3 || a.Row != i/3 {
			t.Errorf("block %d at (%d,%d), expected (%d,%d)", i, a.Col, a.Row, i%3, i/3)
		}
		if a.X != a.Col*8 || a.Y != a.Row*8 {
			t.Errorf("block %d origin (%d,%d) does not match its grid position", i, a.X, a.Y)
		}
	}
}

func TestBlocksClippedTile(t *testing.T) {
	img := newImage(t, 5, 3)
	cfg := MustConfig(WithBlockSize(8))

	aggs := collect(img, cfg)
	if len(aggs) != 1 {
		t.Fatalf("got %d blocks, expected 1", len(aggs))
	}
	if aggs[0].Count != 15 || aggs[0].W != 5 || aggs[0].H != 3 {
		t.Errorf("clipped block = %dx%d (%d px), expected 5x3 (15 px)", aggs[0].W, aggs[0].H, aggs[0].Count)
	}
	if aggs[0].Count >= 64 {
		t.Error("clipped block should aggregate fewer than block² pixels")
	}
}

func TestBlocksUniformColor(t *testing.T) {
	c := raster.RGB(37, 201, 90)
	img := newImage(t, 20, 20)
	img.Clear(c)
	cfg := MustConfig(WithBlockSize(6), WithColor(true))

	aggs := collect(img, cfg)
	if len(aggs) != 9 {
		t.Fatalf("got %d blocks, expected 9", len(aggs))
	}
	for _, a := range aggs {
		if a.SumR != int(c.R)*a.Count || a.SumG != int(c.G)*a.Count || a.SumB != int(c.B)*a.Count {
			t.Errorf("block (%d,%d) channel sums do not match a uniform fill", a.Col, a.Row)
		}
		if a.SumLuma != Luma(c)*a.Count {
			t.Errorf("block (%d,%d) luma sum = %d, expected %d", a.Col, a.Row, a.SumLuma, Luma(c)*a.Count)
		}
	}
}

func TestBlocksColorDisabledSkipsChannelSums(t *testing.T) {
	img := newImage(t, 8, 8)
	img.Clear(raster.White)

	aggs := collect(img, MustConfig(WithBlockSize(8)))
	if aggs[0].SumR != 0 || aggs[0].SumG != 0 || aggs[0].SumB != 0 {
		t.Error("channel sums should stay zero when color is disabled")
	}
	if aggs[0].SumLuma != 255*64 {
		t.Errorf("SumLuma = %d, expected %d", aggs[0].SumLuma, 255*64)
	}
}

func TestBlocksRestartable(t *testing.T) {
	img := newImage(t, 16, 16)
	seq := Blocks(img, MustConfig(WithBlockSize(8)))

	first := 0
	for range seq {
		first++
		break
	}
	second := 0
	for range seq {
		second++
	}

	if first != 1 {
		t.Errorf("early break should stop after one block, got %d", first)
	}
	if second != 4 {
		t.Errorf("second iteration should restart and yield 4 blocks, got %d", second)
	}
}

func TestBlocksExtraChannelsIgnored(t *testing.T) {
	img, err := raster.NewWithChannels(8, 8, 4)
	if err != nil {
		t.Fatalf("NewWithChannels() failed: %v", err)
	}
	img.Clear(raster.RGB(10, 10, 10))

	aggs := collect(img, MustConfig(WithBlockSize(8), WithColor(true)))
	if aggs[0].SumR != 640 || aggs[0].SumLuma != 640 {
		t.Errorf("alpha channel leaked into sums: R=%d luma=%d", aggs[0].SumR, aggs[0].SumLuma)
	}
}
