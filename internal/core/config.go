package core

// RuntimeConfig is passed to games at initialization.
type RuntimeConfig struct {
	Width    int   // Canvas width in pixels
	Height   int   // Canvas height in pixels
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// Default virtual resolution. It is a multiple of every common block size so
// the sampled grid covers the whole canvas.
const (
	DefaultWidth    = 320
	DefaultHeight   = 192
	DefaultTickRate = 30
)

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	Ticks    int // Simulated ticks since the last reset; paused ticks do not count
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	// Flapped, Scored and Crashed report events that happened during the tick.
	Flapped bool
	Scored  bool
	Crashed bool
}
