package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/asciiflap/internal/registry"
	"github.com/vovakirdan/asciiflap/internal/session"
	"github.com/vovakirdan/asciiflap/internal/storage"
)

// GameFactory creates a game by ID. registry.Create is the default; the CLI
// substitutes one that applies loaded YAML configs.
type GameFactory func(id string) (registry.Game, error)

type screen int

// liveGame is shared by every copy of an AppModel. It holds the session of
// the running game so it can be released after the program loop is gone.
type liveGame struct {
	mu   sync.Mutex
	sess *session.Session
}

func (l *liveGame) set(s *session.Session) {
	l.mu.Lock()
	l.sess = s
	l.mu.Unlock()
}

func (l *liveGame) shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sess != nil {
		l.sess.Shutdown()
		l.sess = nil
	}
}

const (
	screenMenu screen = iota
	screenScores
	screenGame
)

// AppModel manages the full flow: menu -> game or scoreboard -> menu.
// It backs both the local menu command and SSH sessions.
type AppModel struct {
	store   *storage.Store
	cfg     Config
	newGame GameFactory
	r       *lipgloss.Renderer

	screen screen
	menu   MenuModel
	scores ScoreboardModel
	game   *GameModel
	live   *liveGame

	width, height int
	quitting      bool
	err           string
}

// NewAppModel creates the top-level model. A nil factory uses the registry
// and a nil renderer the lipgloss default.
func NewAppModel(store *storage.Store, cfg Config, newGame GameFactory, r *lipgloss.Renderer) AppModel {
	if newGame == nil {
		newGame = registry.Create
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return AppModel{
		store:   store,
		cfg:     cfg,
		newGame: newGame,
		r:       r,
		menu:    NewMenuModel(store, r, 0, 0),
		live:    &liveGame{},
	}
}

// Init initializes the menu.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Stale tick from a game that just ended
		return m, nil
	}
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.r, m.width, m.height)
		m.screen = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}
	return m, cmd
}

func (m AppModel) startGame(id string) (tea.Model, tea.Cmd) {
	m.err = ""
	game, err := m.newGame(id)
	if err == nil {
		var gm GameModel
		gm, err = NewGameModel(game, m.store, m.cfg, NewPainter(m.r, m.cfg.Render.ColorEnabled()))
		if err == nil {
			gm.width, gm.height = m.width, m.height
			m.game = &gm
			m.live.set(gm.Session())
			m.screen = screenGame
			return m, gm.Init()
		}
	}
	m.err = err.Error()
	m.cfg.logger().Error("could not start game", "game", id, "error", err)
	return m.backToMenu()
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(GameModel)
	m.game = &gm

	if gm.IsQuitting() {
		m.live.shutdown()
		m.quitting = true
		return m, tea.Quit
	}
	if gm.BackToMenu() {
		m.live.shutdown()
		m.game = nil
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.r, m.width, m.height)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	view := m.menu.View()
	if m.err != "" {
		view += "\n" + centerText(m.r.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err), m.width)
	}
	return view
}

// Shutdown releases the running game's session, if any. Any copy of the
// model may be used, including the one handed to the program at start.
func (m AppModel) Shutdown() {
	if m.live != nil {
		m.live.shutdown()
	}
}

// RunApp runs the interactive menu in the current terminal.
func RunApp(store *storage.Store, cfg Config, newGame GameFactory) error {
	p := tea.NewProgram(NewAppModel(store, cfg, newGame, nil), tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(AppModel); ok {
		m.Shutdown()
	}
	return err
}
