package flappy

import (
	"errors"
	"testing"

	"github.com/vovakirdan/asciiflap/internal/config"
)

func TestArenaSpawnUntilFull(t *testing.T) {
	var a PipeArena

	for i := 0; i < MaxPipes; i++ {
		idx, err := a.Spawn(Pipe{X: float64(i)})
		if err != nil {
			t.Fatalf("Spawn #%d failed: %v", i, err)
		}
		if idx != i {
			t.Errorf("Spawn #%d used slot %d", i, idx)
		}
	}
	if !a.Full() || a.Len() != MaxPipes {
		t.Fatalf("arena should be full, Len() = %d", a.Len())
	}

	if _, err := a.Spawn(Pipe{X: 99}); !errors.Is(err, ErrArenaFull) {
		t.Errorf("Spawn on full arena: error = %v, expected ErrArenaFull", err)
	}
	for i := 0; i < MaxPipes; i++ {
		if p, _ := a.Get(i); p.X != float64(i) {
			t.Errorf("slot %d overwritten: X = %v", i, p.X)
		}
	}
}

func TestArenaReleaseReusesLowestSlot(t *testing.T) {
	var a PipeArena
	for i := 0; i < 4; i++ {
		a.Spawn(Pipe{X: float64(i)})
	}

	a.Release(1)
	a.Release(1)
	a.Release(-3)

	if a.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", a.Len())
	}
	if _, ok := a.Get(1); ok {
		t.Error("released slot should not be live")
	}

	idx, _ := a.Spawn(Pipe{X: 50})
	if idx != 1 {
		t.Errorf("Spawn used slot %d, expected freed slot 1", idx)
	}
	if p, _ := a.Get(3); p.X != 3 {
		t.Error("releasing a slot should not move other pipes")
	}
}

func TestArenaAll(t *testing.T) {
	var a PipeArena
	for i := 0; i < 5; i++ {
		a.Spawn(Pipe{X: float64(i * 10)})
	}
	a.Release(2)

	var seen []int
	for i, p := range a.All() {
		seen = append(seen, i)
		p.X++
		if i == 3 {
			a.Release(i)
		}
	}

	expected := []int{0, 1, 3, 4}
	if len(seen) != len(expected) {
		t.Fatalf("All() visited %v, expected %v", seen, expected)
	}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Fatalf("All() visited %v, expected %v", seen, expected)
		}
	}
	if p, _ := a.Get(4); p.X != 41 {
		t.Errorf("in-place update lost: X = %v, expected 41", p.X)
	}
	if a.Len() != 3 {
		t.Errorf("Len() = %d after releasing during iteration, expected 3", a.Len())
	}

	if p, ok := a.Rightmost(); !ok || p.X != 41 {
		t.Errorf("Rightmost() = %v, %v", p, ok)
	}
}

func TestArenaReset(t *testing.T) {
	var a PipeArena
	a.Spawn(Pipe{})
	a.Reset()

	if a.Len() != 0 {
		t.Errorf("Len() = %d after Reset", a.Len())
	}
	if _, ok := a.Rightmost(); ok {
		t.Error("empty arena should have no rightmost pipe")
	}
}

func TestPipeManagerRefusesWhenFull(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(1, 320, 176, &cfg)

	for i := 0; i < MaxPipes; i++ {
		pm.Arena().Spawn(Pipe{X: 10, GapY: 40, GapHeight: 64})
	}
	pm.Update(80, config.Tuning{Speed: 1, Gap: 64, Spacing: 144})

	if pm.Refused() != 1 {
		t.Errorf("Refused() = %d, expected 1", pm.Refused())
	}
	if pm.Arena().Len() != MaxPipes {
		t.Errorf("Len() = %d, expected %d", pm.Arena().Len(), MaxPipes)
	}
}

func TestPipeManagerReleasesOffscreen(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(1, 320, 176, &cfg)
	pm.Arena().Spawn(Pipe{X: float64(-cfg.Obstacles.PipeWidth + 2), GapY: 40, GapHeight: 64})

	pm.Update(80, config.Tuning{Speed: 3, Gap: 64, Spacing: 144})

	for _, p := range pm.Arena().All() {
		if p.Left()+cfg.Obstacles.PipeWidth <= 0 {
			t.Errorf("off-screen pipe at %v was kept", p.X)
		}
	}
}

func TestPipeManagerFollowsTuning(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(1, 320, 176, &cfg)
	tune := config.Tuning{Speed: 0, Gap: 32, Spacing: 112}

	pm.Update(80, tune)
	p, ok := pm.Arena().Rightmost()
	if !ok || p.X != 320 {
		t.Fatalf("first pipe = %+v, %v, expected one at x=320", p, ok)
	}
	if p.GapHeight != cfg.Obstacles.MinGapSize {
		t.Errorf("GapHeight = %d, expected the %d px floor", p.GapHeight, cfg.Obstacles.MinGapSize)
	}

	tests := []struct {
		speed    float64
		expected int
	}{
		{100, 1}, // x=220, still within spacing
		{20, 2},  // x=200, past spacing
	}
	for _, tc := range tests {
		tune.Speed = tc.speed
		pm.Update(80, tune)
		if pm.Arena().Len() != tc.expected {
			t.Errorf("after moving %v px: Len() = %d, expected %d", tc.speed, pm.Arena().Len(), tc.expected)
		}
	}
}
