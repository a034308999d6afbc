package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-chroma/internal/config"
	"github.com/vovakirdan/tui-chroma/internal/core"
	"github.com/vovakirdan/tui-chroma/internal/games/chroma"
	"github.com/vovakirdan/tui-chroma/internal/storage"
)

const (
	feedbackTicks     = 8 // How long the hit/miss message stays up
	restartGraceTicks = 5 // Select is ignored this long after time runs out
)

// Options carries optional collaborators for the game model.
type Options struct {
	Store   *storage.Store // Nil keeps the high score in memory only
	Display config.DisplayConfig
	Logger  *log.Logger // Nil discards log output
}

// feedback is the message shown after a pick.
type feedback struct {
	correct bool
	ticks   int
}

// Model is the Bubble Tea model that drives a chroma game.
type Model struct {
	game       *chroma.Game
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	display    config.DisplayConfig
	theme      Theme
	keys       KeyMap
	help       help.Model
	cursor     core.Cursor
	sessionID  string
	saved      bool // Whether the current session has been persisted
	endedTicks int  // Ticks since the session ended
	feedback   feedback
	quitting   bool
}

// NewModel creates a model for a new game.
// A zero seed is replaced by the current time and a zero tick rate by the
// configured one.
func NewModel(cfg core.RuntimeConfig, gameCfg config.ChromaConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = gameCfg.Display.TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("game", chroma.GameID)

	display := opts.Display
	if display == (config.DisplayConfig{}) {
		display = gameCfg.Display
	}

	game := chroma.New(gameCfg.Rules(), rand.New(rand.NewSource(cfg.Seed)))

	if opts.Store != nil {
		best, err := opts.Store.HighScore()
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		} else {
			game.SetHighScore(best)
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		store:   opts.Store,
		logger:  logger,
		config:  cfg,
		display: display,
		theme:   DefaultTheme(),
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Game returns the engine driven by this model.
func (m Model) Game() *chroma.Game {
	return m.game
}

// SessionID returns the id of the current session, empty before the first start.
func (m Model) SessionID() string {
	return m.sessionID
}

// Init starts the tick loop. The game waits on the title screen until the
// player starts it.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionRestart:
		m.start()

	case core.ActionSelect:
		switch m.game.State() {
		case chroma.StateIdle:
			m.start()
		case chroma.StateEnded:
			if m.endedTicks >= restartGraceTicks {
				m.start()
			}
		case chroma.StatePlaying:
			m.pick(m.cursor.Index(m.gridSize()))
		}

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.cursor = m.cursor.Move(action, m.gridSize())
	}

	return m, nil
}

// handleMouse turns a left click on a cell into a pick.
// Clicks on gaps or outside the grid are not picks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.game.State() != chroma.StatePlaying {
		return m, nil
	}

	l := m.layout()
	idx, ok := l.CellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	m.cursor = core.Cursor{Row: idx / l.Size, Col: idx % l.Size}
	m.pick(idx)
	return m, nil
}

// handleTick advances the game clock by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.feedback.ticks > 0 {
		m.feedback.ticks--
	}

	switch m.game.State() {
	case chroma.StatePlaying:
		res := m.game.Tick(m.config.TickSeconds())
		if res.Ended {
			m.finish()
		}
	case chroma.StateEnded:
		m.endedTicks++
	}

	return m, tickCmd(m.config.TickRate)
}

// start begins a new session, abandoning any session in progress.
func (m *Model) start() {
	if m.game.State() == chroma.StatePlaying {
		m.logger.Info("session abandoned", "session", m.sessionID, "score", m.game.Score())
	}

	m.game.Start()
	m.sessionID = uuid.NewString()
	m.saved = false
	m.endedTicks = 0
	m.feedback = feedback{}
	m.cursor = core.Cursor{}

	m.logger.Info("session started", "session", m.sessionID, "seed", m.config.Seed)
}

// pick forwards a cell selection to the game.
func (m *Model) pick(idx int) {
	res := m.game.Select(idx)
	if res.Ignored {
		return
	}

	m.feedback = feedback{correct: res.Correct, ticks: feedbackTicks}
	if res.Correct {
		// Grid may have grown
		m.cursor = m.cursor.Fit(m.gridSize())
	}
}

// finish logs the ended session and saves it once.
func (m *Model) finish() {
	report := m.game.Report()
	m.logger.Info("session ended",
		"session", m.sessionID,
		"score", report.Score,
		"rank", report.Rank,
		"avg_response", report.AvgResponse,
		"accuracy", report.Accuracy,
	)

	if m.saved {
		return
	}
	m.saved = true

	if m.store == nil || report.Score == 0 {
		return
	}

	_, err := m.store.SaveSession(storage.SessionRecord{
		SessionID:   m.sessionID,
		Score:       report.Score,
		Rank:        report.Rank.String(),
		AvgResponse: report.AvgResponse,
		Hits:        report.Hits,
		Misses:      report.Misses,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save session", "session", m.sessionID, "error", err)
	}
}

// gridSize returns the current grid dimension, or the opening size before
// the first start.
func (m Model) gridSize() int {
	if r, ok := m.game.Round(); ok {
		return r.GridSize
	}
	return chroma.GridSize(0)
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg core.RuntimeConfig, gameCfg config.ChromaConfig, opts Options) error {
	model := NewModel(cfg, gameCfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks pick cells
	)

	_, err := p.Run()
	return err
}
