package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/asciiflap/internal/ascii"
	"github.com/vovakirdan/asciiflap/internal/core"
	"github.com/vovakirdan/asciiflap/internal/raster"
	"github.com/vovakirdan/asciiflap/internal/registry"
	"github.com/vovakirdan/asciiflap/internal/session"
	"github.com/vovakirdan/asciiflap/internal/storage"
)

// Config is shared by every game started from the terminal.
type Config struct {
	Width, Height int // Canvas size in pixels
	TickRate      int
	Seed          int64 // 0 picks a seed per round
	Render        ascii.Config
	Background    raster.Color
	ScreenshotDir string
	Logger        *log.Logger
}

// DefaultConfig returns the default canvas, tick rate and render settings.
func DefaultConfig() Config {
	return Config{
		Width:         core.DefaultWidth,
		Height:        core.DefaultHeight,
		TickRate:      core.DefaultTickRate,
		Render:        ascii.MustConfig(),
		Background:    raster.Black,
		ScreenshotDir: DefaultScreenshotDir,
	}
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel, Prefix: "tui"})
}

// GameModel runs one game session inside Bubble Tea.
type GameModel struct {
	sess    *session.Session
	store   *storage.Store
	cfg     Config
	keys    *KeyMapper
	painter *Painter
	logger  *log.Logger

	input  core.InputFrame
	grid   *ascii.Grid
	state  core.GameState
	high   int
	status string

	width, height int
	quitting      bool
	backToMenu    bool
	quitOnBack    bool // No menu to return to
	scoreSaved    bool
}

// NewGameModel initializes a session for game and renders its first frame.
// store may be nil; painter nil uses the default lipgloss renderer.
func NewGameModel(game registry.Game, store *storage.Store, cfg Config, painter *Painter) (GameModel, error) {
	if painter == nil {
		painter = NewPainter(nil, cfg.Render.ColorEnabled())
	}
	logger := cfg.logger()

	sess := session.New(game, cfg.Render,
		session.WithLogger(logger),
		session.WithBackground(cfg.Background),
		session.WithTickRate(cfg.TickRate),
		session.WithSeed(cfg.Seed),
	)
	if err := sess.Initialize(cfg.Width, cfg.Height); err != nil {
		return GameModel{}, fmt.Errorf("tui: %s: %w", game.ID(), err)
	}

	m := GameModel{
		sess:    sess,
		store:   store,
		cfg:     cfg,
		keys:    NewKeyMapper(),
		painter: painter,
		logger:  logger,
	}
	m.loadHighScore()

	frame, err := sess.Redraw()
	if err != nil {
		sess.Shutdown()
		return GameModel{}, fmt.Errorf("tui: %s: %w", game.ID(), err)
	}
	m.grid = frame.Grid
	m.state = frame.Result.State
	m.drawHUD()
	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The canvas resolution is fixed; the terminal size only centers it.
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case action == core.ActionBack && (m.state.GameOver || m.state.Paused):
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.input.Has(core.ActionRestart) && m.state.GameOver {
		m.sess.Reset(m.cfg.Seed)
		m.scoreSaved = false
		m.status = ""
		m.loadHighScore()
		m.input.Clear()
		if frame, err := m.sess.Redraw(); err == nil {
			m.grid = frame.Grid
			m.state = frame.Result.State
			m.drawHUD()
		}
		return m, tickCmd(m.cfg.TickRate)
	}

	frame, err := m.sess.Tick(m.input)
	m.state = frame.Result.State
	if err == nil {
		m.grid = frame.Grid
	}
	// A skipped frame keeps showing the previous grid.

	if m.state.GameOver && !m.scoreSaved {
		m.saveRun()
	}

	m.drawHUD()
	m.input.Clear()
	return m, tickCmd(m.cfg.TickRate)
}

func (m *GameModel) drawHUD() {
	DrawHUD(m.grid, HUD{
		Score:     m.state.Score,
		HighScore: m.high,
		Paused:    m.state.Paused,
		GameOver:  m.state.GameOver,
		Status:    m.status,
	})
}

func (m *GameModel) loadHighScore() {
	if m.store == nil {
		return
	}
	high, err := m.store.HighScore(m.sess.Game().ID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	m.high = high
}

// saveRun records the finished round once. Zero scores are not kept.
func (m *GameModel) saveRun() {
	m.scoreSaved = true
	if m.store == nil || m.state.Score <= 0 {
		return
	}
	stats := m.sess.Stats()
	_, err := m.store.SaveRun(storage.Run{
		GameID:  m.sess.Game().ID(),
		Score:   m.state.Score,
		Ticks:   m.state.Ticks,
		Seed:    m.sess.Seed(),
		Block:   m.cfg.Render.BlockSize(),
		Skipped: stats.Skipped,
	})
	if err != nil {
		m.logger.Warn("could not save score", "game", m.sess.Game().ID(), "error", err)
		return
	}
	if m.state.Score > m.high {
		m.status = "New high score!"
	}
}

// saveScreenshot writes the scene without the HUD as a text frame.
func (m *GameModel) saveScreenshot() {
	if m.cfg.ScreenshotDir == "" {
		m.status = "screenshots disabled"
		return
	}
	frame, err := m.sess.Text()
	if err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	path, err := WriteScreenshot(m.cfg.ScreenshotDir, m.sess.Game().ID(), frame.Bytes(), time.Now())
	if err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.status = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current grid, centered in the terminal when its size is known.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	content := m.painter.Paint(m.grid)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return m.painter.Renderer().Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Session returns the model's game session.
func (m GameModel) Session() *session.Session {
	return m.sess
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// Status returns the current status line.
func (m GameModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the current terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg Config) error {
	model, err := NewGameModel(game, store, cfg, nil)
	if err != nil {
		return err
	}
	defer model.Session().Shutdown()
	model.quitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
