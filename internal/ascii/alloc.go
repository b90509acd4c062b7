package ascii

import (
	"errors"
	"fmt"
)

// ErrAllocation is returned when a frame buffer cannot be obtained.
var ErrAllocation = errors.New("ascii: buffer allocation failed")

// Allocator hands out the byte buffers a Renderer keeps between frames.
// Reserve and Release account for memory the renderer holds in other
// shapes, such as grid cells.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(buf []byte)
	Reserve(n int) error
	Release(n int)
}

// HeapAllocator allocates from the Go heap. A positive Budget caps the total
// number of bytes outstanding at once, modelling a fixed-size memory arena.
type HeapAllocator struct {
	Budget int
	inUse  int
}

// Alloc returns a zeroed buffer of n bytes or ErrAllocation when the budget
// would be exceeded.
func (a *HeapAllocator) Alloc(n int) ([]byte, error) {
	if err := a.Reserve(n); err != nil {
		return nil, err
	}
	return make([]byte, n), nil
}

// Free returns buf's capacity to the budget.
func (a *HeapAllocator) Free(buf []byte) {
	a.Release(cap(buf))
}

// Reserve charges n bytes against the budget without allocating them.
func (a *HeapAllocator) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrAllocation, n)
	}
	if a.Budget > 0 && a.inUse+n > a.Budget {
		return fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrAllocation, n, a.inUse, a.Budget)
	}
	a.inUse += n
	return nil
}

// Release returns n reserved bytes to the budget.
func (a *HeapAllocator) Release(n int) {
	a.inUse = max(a.inUse-n, 0)
}

// InUse returns the number of bytes currently handed out.
func (a *HeapAllocator) InUse() int {
	return a.inUse
}
