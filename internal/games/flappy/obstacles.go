package flappy

import (
	"math/rand"

	"github.com/vovakirdan/asciiflap/internal/config"
	"github.com/vovakirdan/asciiflap/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X         float64 // Left edge, in pixels
	GapY      int     // Top of the gap
	GapHeight int     // Height of the passable gap
	Passed    bool    // Whether the player has passed this pipe (for scoring)
}

// Left returns the pipe's left edge snapped to the pixel grid.
func (p Pipe) Left() int {
	return core.Round(p.X)
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect(pipeWidth int) core.Rect {
	return core.NewRect(p.Left(), 0, pipeWidth, p.GapY)
}

// BottomRect returns the collision rectangle for the bottom portion of the
// pipe, which reaches down to floorY.
func (p Pipe) BottomRect(pipeWidth, floorY int) core.Rect {
	bottomY := p.GapY + p.GapHeight
	return core.NewRect(p.Left(), bottomY, pipeWidth, floorY-bottomY)
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	arena   PipeArena
	rng     *rand.Rand
	width   int // Playfield width
	floorY  int // Top of the ground
	cfg     *config.FlappyConfig
	refused int // Spawns refused because the arena was full
}

// NewPipeManager creates a new pipe manager with the given RNG seed.
func NewPipeManager(seed int64, width, floorY int, cfg *config.FlappyConfig) *PipeManager {
	pm := &PipeManager{
		width:  width,
		floorY: floorY,
		cfg:    cfg,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes and resets the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.arena.Reset()
	pm.rng = rand.New(rand.NewSource(seed))
	pm.refused = 0
}

// Resize updates the playfield dimensions.
func (pm *PipeManager) Resize(width, floorY int) {
	pm.width = width
	pm.floorY = floorY
}

// Update moves pipes left by tune.Speed pixels and spawns new ones tune.Spacing
// apart. Returns the number of pipes that were passed this tick (for scoring).
func (pm *PipeManager) Update(playerLeft int, tune config.Tuning) int {
	passed := 0
	pipeWidth := pm.cfg.Obstacles.PipeWidth

	for i, p := range pm.arena.All() {
		p.X -= tune.Speed
		if !p.Passed && p.Left()+pipeWidth < playerLeft {
			p.Passed = true
			passed++
		}
		if p.Left()+pipeWidth <= 0 {
			pm.arena.Release(i)
		}
	}

	last, ok := pm.arena.Rightmost()
	if !ok || last.X < float64(pm.width-tune.Spacing) {
		pm.spawnPipe(tune.Gap)
	}

	return passed
}

// spawnPipe creates a new pipe just past the right edge of the playfield.
// The gap is drawn from [MinGapSize, maxGap].
func (pm *PipeManager) spawnPipe(maxGap int) {
	minGap := pm.cfg.Obstacles.MinGapSize
	currentGap := max(maxGap, minGap)

	// Random variation in gap size (between minGap and currentGap)
	gapHeight := minGap
	if gapRange := currentGap - minGap; gapRange > 0 {
		gapHeight = minGap + pm.rng.Intn(gapRange+1)
	}

	minGapY := pm.cfg.Obstacles.TopMargin
	maxGapY := max(pm.floorY-pm.cfg.Obstacles.BottomMargin-gapHeight, minGapY)

	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + pm.rng.Intn(maxGapY-minGapY+1)
	}

	_, err := pm.arena.Spawn(Pipe{
		X:         float64(pm.width),
		GapY:      gapY,
		GapHeight: gapHeight,
	})
	if err != nil {
		pm.refused++
	}
}

// Arena exposes the pipe storage.
func (pm *PipeManager) Arena() *PipeArena {
	return &pm.arena
}

// Refused returns how many spawns the full arena turned away.
func (pm *PipeManager) Refused() int {
	return pm.refused
}

// CheckCollision tests if a circle at (cx, cy) touches any pipe.
func (pm *PipeManager) CheckCollision(cx, cy, radius float64) bool {
	pipeWidth := pm.cfg.Obstacles.PipeWidth
	for _, p := range pm.arena.All() {
		if core.CircleIntersectsRect(cx, cy, radius, p.TopRect(pipeWidth)) ||
			core.CircleIntersectsRect(cx, cy, radius, p.BottomRect(pipeWidth, pm.floorY)) {
			return true
		}
	}
	return false
}
