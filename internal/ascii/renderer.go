package ascii

import (
	"errors"
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/vovakirdan/asciiflap/internal/raster"
)

var (
	// ErrNotInitialized is returned when rendering before Initialize or after Shutdown.
	ErrNotInitialized = errors.New("ascii: renderer not initialized")
	// ErrDimensionMismatch is returned when a canvas does not match the initialized size.
	ErrDimensionMismatch = errors.New("ascii: canvas size does not match renderer")
	// ErrResizeUnsupported is returned when Initialize is called again with a new size.
	// The virtual resolution is fixed for the lifetime of a renderer.
	ErrResizeUnsupported = errors.New("ascii: renderer resolution is fixed")
)

// Renderer runs the sample -> select -> compose pipeline against a canvas of
// fixed size, reusing its scratch buffers from frame to frame. It is not safe
// for concurrent use.
type Renderer struct {
	cfg   Config
	alloc Allocator
	bg    raster.Color

	font      *Font
	grid      *Grid
	gridBytes int // Reserved from the allocator for grid cells

	width, height int
	outW, outH    int
	cols, rows    int

	cells   []Cell
	textBuf []byte
	rgbBuf  []byte
	rgb     *raster.Image

	version uint64
	ready   bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithAllocator sets the allocator used for output buffers.
func WithAllocator(a Allocator) RendererOption {
	return func(r *Renderer) { r.alloc = a }
}

// WithBackground sets the color of unset glyph pixels in raster output.
func WithBackground(c raster.Color) RendererOption {
	return func(r *Renderer) { r.bg = c }
}

// NewRenderer creates a renderer for cfg. Call Initialize before rendering.
func NewRenderer(cfg Config, opts ...RendererOption) *Renderer {
	r := &Renderer{cfg: cfg, bg: raster.Black}
	for _, opt := range opts {
		opt(r)
	}
	if r.alloc == nil {
		r.alloc = &HeapAllocator{}
	}
	return r
}

// Initialize sizes the renderer for a width x height canvas. Repeating the
// call with the same size is a no-op; a different size is rejected.
func (r *Renderer) Initialize(width, height int) error {
	if r.cfg.IsZero() {
		return fmt.Errorf("ascii: initialize: %w", ErrEmptyRamp)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("ascii: initialize %dx%d: %w", width, height, raster.ErrInvalidDimensions)
	}
	if r.ready {
		if width == r.width && height == r.height {
			return nil
		}
		return fmt.Errorf("ascii: initialize %dx%d over %dx%d: %w", width, height, r.width, r.height, ErrResizeUnsupported)
	}

	b := r.cfg.blockSize
	r.width, r.height = width, height
	r.outW, r.outH = OutputSize(width, height, b)
	r.cols, r.rows = GridSize(width, height, b)
	r.cells = make([]Cell, 0, r.cols*r.rows)
	if r.font == nil {
		r.font = NewFont(r.cfg.ramp, b)
	}
	r.ready = true
	return nil
}

// Shutdown releases every buffer. Calling it again is a no-op.
func (r *Renderer) Shutdown() {
	if !r.ready {
		return
	}
	if r.textBuf != nil {
		r.alloc.Free(r.textBuf)
		r.textBuf = nil
	}
	if r.rgbBuf != nil {
		r.alloc.Free(r.rgbBuf)
		r.rgbBuf = nil
		r.rgb = nil
	}
	if r.grid != nil {
		r.alloc.Release(r.gridBytes)
		r.grid, r.gridBytes = nil, 0
	}
	r.cells = nil
	r.ready = false
}

// Initialized reports whether the renderer is ready to render.
func (r *Renderer) Initialized() bool {
	return r.ready
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// GridSize returns the number of block columns and rows per frame.
func (r *Renderer) GridSize() (cols, rows int) {
	return r.cols, r.rows
}

// OutputSize returns the pixel size of raster frames.
func (r *Renderer) OutputSize() (w, h int) {
	return r.outW, r.outH
}

// Version returns the number of frames produced so far.
func (r *Renderer) Version() uint64 {
	return r.version
}

// Cells samples img and returns the selected cells in row-major order. The
// slice is reused by the next call.
func (r *Renderer) Cells(img *raster.Image) ([]Cell, error) {
	if err := r.check(img); err != nil {
		return nil, err
	}
	r.cells = r.cells[:0]
	for agg := range Blocks(img, r.cfg) {
		r.cells = append(r.cells, Select(agg, r.cfg))
	}
	return r.cells, nil
}

// RenderText renders img as text. The returned frame borrows the renderer's
// buffer and is valid until the next render call.
func (r *Renderer) RenderText(img *raster.Image) (TextFrame, error) {
	if err := r.check(img); err != nil {
		return TextFrame{}, err
	}
	if r.textBuf == nil {
		// Worst case: every glyph at full UTF-8 width plus one newline per row.
		buf, err := r.alloc.Alloc(r.rows * (r.cols*utf8.UTFMax + 1))
		if err != nil {
			return TextFrame{}, fmt.Errorf("ascii: text frame: %w", err)
		}
		r.textBuf = buf
	}

	cells, err := r.Cells(img)
	if err != nil {
		return TextFrame{}, err
	}
	r.version++
	data := ComposeText(r.textBuf[:0], cells)
	return TextFrame{data: data, cols: r.cols, rows: r.rows, version: r.version}, nil
}

// RenderRaster renders img as glyph bitmaps into an RGB raster of
// OutputSize. The returned frame borrows the renderer's buffer and is valid
// until the next render call.
func (r *Renderer) RenderRaster(img *raster.Image) (RasterFrame, error) {
	if err := r.check(img); err != nil {
		return RasterFrame{}, err
	}
	if r.rgb == nil {
		buf, err := r.alloc.Alloc(r.outW * r.outH * raster.RGBChannels)
		if err != nil {
			return RasterFrame{}, fmt.Errorf("ascii: raster frame: %w", err)
		}
		out, err := raster.NewFromBuffer(buf, r.outW, r.outH, raster.RGBChannels)
		if err != nil {
			r.alloc.Free(buf)
			return RasterFrame{}, fmt.Errorf("ascii: raster frame: %w", err)
		}
		r.rgbBuf, r.rgb = buf, out
	}

	cells, err := r.Cells(img)
	if err != nil {
		return RasterFrame{}, err
	}
	r.version++
	ComposeRaster(r.rgb, cells, r.font, r.bg)
	return RasterFrame{img: r.rgb, version: r.version}, nil
}

// RenderGrid renders img into the renderer's cell grid. The grid is reused
// by the next call; callers may draw overlays into it before displaying.
func (r *Renderer) RenderGrid(img *raster.Image) (*Grid, error) {
	if err := r.check(img); err != nil {
		return nil, err
	}
	if r.grid == nil {
		n := r.cols * r.rows * int(unsafe.Sizeof(Cell{}))
		if err := r.alloc.Reserve(n); err != nil {
			return nil, fmt.Errorf("ascii: grid frame: %w", err)
		}
		r.grid, r.gridBytes = NewGrid(r.cols, r.rows), n
	} else {
		r.grid.Clear()
	}

	cells, err := r.Cells(img)
	if err != nil {
		return nil, err
	}
	r.version++
	r.grid.Fill(cells)
	return r.grid, nil
}

func (r *Renderer) check(img *raster.Image) error {
	if !r.ready {
		return ErrNotInitialized
	}
	if img == nil || img.Width() != r.width || img.Height() != r.height {
		got := "nil"
		if img != nil {
			got = fmt.Sprintf("%dx%d", img.Width(), img.Height())
		}
		return fmt.Errorf("%w: got %s, want %dx%d", ErrDimensionMismatch, got, r.width, r.height)
	}
	return nil
}

// TextFrame is a borrowed view of a rendered text frame.
type TextFrame struct {
	data       []byte
	cols, rows int
	version    uint64
}

// Bytes returns the frame text. The slice is owned by the renderer.
func (f TextFrame) Bytes() []byte { return f.data }

// Len returns the frame length in bytes.
func (f TextFrame) Len() int { return len(f.data) }

// String copies the frame into a string.
func (f TextFrame) String() string { return string(f.data) }

// Cols returns the number of glyphs per line.
func (f TextFrame) Cols() int { return f.cols }

// Rows returns the number of lines.
func (f TextFrame) Rows() int { return f.rows }

// Version identifies the frame; it increases with every render call.
func (f TextFrame) Version() uint64 { return f.version }

// Copy returns a detached copy of the frame bytes.
func (f TextFrame) Copy() []byte {
	out := make([]byte, len(f.data))
	copy(out, f.data)
	return out
}

// RasterFrame is a borrowed view of a rendered raster frame.
type RasterFrame struct {
	img     *raster.Image
	version uint64
}

// Image returns the frame raster. It is owned by the renderer.
func (f RasterFrame) Image() *raster.Image { return f.img }

// Bytes returns the packed RGB samples.
func (f RasterFrame) Bytes() []byte { return f.img.Pix() }

// Width returns the frame width in pixels.
func (f RasterFrame) Width() int { return f.img.Width() }

// Height returns the frame height in pixels.
func (f RasterFrame) Height() int { return f.img.Height() }

// Version identifies the frame; it increases with every render call.
func (f RasterFrame) Version() uint64 { return f.version }

// Copy returns a detached copy of the frame raster.
func (f RasterFrame) Copy() *raster.Image { return f.img.Clone() }
