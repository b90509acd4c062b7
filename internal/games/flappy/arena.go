package flappy

import (
	"errors"
	"iter"
)

// MaxPipes is the arena capacity. The widest default playfield holds five
// pipes at minimum spacing, so eight leaves room for tuning.
const MaxPipes = 8

// ErrArenaFull is returned by Spawn when every slot is occupied.
var ErrArenaFull = errors.New("flappy: pipe arena full")

// PipeArena stores pipes in fixed slots. A slot is live while its used flag
// is set; releasing a slot never moves other pipes.
type PipeArena struct {
	slots [MaxPipes]Pipe
	used  [MaxPipes]bool
	n     int
}

// Spawn places p in the lowest free slot and returns its index.
// A full arena refuses the pipe rather than overwriting a live one.
func (a *PipeArena) Spawn(p Pipe) (int, error) {
	for i := range a.slots {
		if !a.used[i] {
			a.slots[i] = p
			a.used[i] = true
			a.n++
			return i, nil
		}
	}
	return -1, ErrArenaFull
}

// Release frees slot i. Releasing a free or invalid slot is a no-op.
func (a *PipeArena) Release(i int) {
	if i < 0 || i >= MaxPipes || !a.used[i] {
		return
	}
	a.used[i] = false
	a.slots[i] = Pipe{}
	a.n--
}

// Get returns the pipe in slot i and whether the slot is live.
func (a *PipeArena) Get(i int) (Pipe, bool) {
	if i < 0 || i >= MaxPipes || !a.used[i] {
		return Pipe{}, false
	}
	return a.slots[i], true
}

// Len returns the number of live pipes.
func (a *PipeArena) Len() int { return a.n }

// Full reports whether Spawn would fail.
func (a *PipeArena) Full() bool { return a.n == MaxPipes }

// Reset frees every slot.
func (a *PipeArena) Reset() {
	*a = PipeArena{}
}

// All yields live pipes in slot order. The pointer may be used to update the
// pipe in place; releasing the current slot during iteration is allowed.
func (a *PipeArena) All() iter.Seq2[int, *Pipe] {
	return func(yield func(int, *Pipe) bool) {
		for i := range a.slots {
			if !a.used[i] {
				continue
			}
			if !yield(i, &a.slots[i]) {
				return
			}
		}
	}
}

// Rightmost returns the live pipe with the largest X.
func (a *PipeArena) Rightmost() (Pipe, bool) {
	var best Pipe
	found := false
	for _, p := range a.All() {
		if !found || p.X > best.X {
			best, found = *p, true
		}
	}
	return best, found
}
