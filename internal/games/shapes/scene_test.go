package shapes

import (
	"testing"

	"github.com/vovakirdan/asciiflap/internal/core"
	"github.com/vovakirdan/asciiflap/internal/raster"
)

func TestSceneScoreIsSeconds(t *testing.T) {
	s := New()
	s.Reset(core.RuntimeConfig{Width: 160, Height: 96, TickRate: 10})

	for i := 0; i < 25; i++ {
		s.Step(core.InputFrame{})
	}
	st := s.State()
	if st.Score != 2 {
		t.Errorf("Score = %d after 25 ticks at 10/s, expected 2", st.Score)
	}
	if st.GameOver {
		t.Error("the scene never ends")
	}
}

func TestScenePause(t *testing.T) {
	s := New()
	s.Reset(core.RuntimeConfig{Width: 160, Height: 96, TickRate: 10})

	s.Step(core.NewInputFrame(core.ActionPause))
	s.Step(core.InputFrame{})
	if s.ticks != 0 || !s.State().Paused {
		t.Errorf("paused scene advanced to tick %d", s.ticks)
	}
}

func TestSceneRender(t *testing.T) {
	s := New()
	s.Reset(core.RuntimeConfig{})
	dst, err := raster.New(core.DefaultWidth, core.DefaultHeight)
	if err != nil {
		t.Fatalf("raster.New() failed: %v", err)
	}

	s.Render(dst)
	// The sweeping line starts pointing right, so look just left of centre.
	if got := dst.At(core.DefaultWidth/2-5, core.DefaultHeight/2); got != sunColor {
		t.Errorf("pixel beside centre = %v, expected the sun", got)
	}

	// Later frames must differ from the first.
	first := dst.Clone()
	for i := 0; i < 15; i++ {
		s.Step(core.InputFrame{})
	}
	s.Render(dst)
	if dst.Equal(first) {
		t.Error("scene should animate")
	}
}
