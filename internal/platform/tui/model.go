package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-race/internal/core"
	"github.com/vovakirdan/coin-race/internal/registry"
)

// Options tunes a Model. The zero value is usable.
type Options struct {
	// HoldWindow is how long a key stays held after its last press.
	HoldWindow time.Duration

	// Logger receives game events. Defaults to a discarding logger.
	Logger *log.Logger

	// Sheet supplies sprite glyphs. Defaults to DefaultSheet().
	Sheet SpriteSheet

	// Width and Height are the initial terminal size in cells.
	Width, Height int

	// Now is the clock used to time key presses. Defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model that hosts one game.
type Model struct {
	game    registry.Game
	config  core.RuntimeConfig
	screen  *core.Screen
	surface *TerminalSurface
	input   *core.InputState
	hold    *KeyHold
	keys    KeyMap
	help    help.Model
	score   *Scoreline
	banner  *WinBanner
	logger  *log.Logger
	now     func() time.Time

	width    int
	height   int
	gen      int // current tick chain; ticks from other chains are dropped
	paused   bool
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sheet == nil {
		opts.Sheet = DefaultSheet()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	input := core.NewInputState()
	screen := core.NewScreen(0, 0)
	m := Model{
		game:    game,
		config:  cfg,
		screen:  screen,
		surface: NewTerminalSurface(screen, cfg.CanvasW, cfg.CanvasH, opts.Sheet),
		input:   input,
		hold:    NewKeyHold(input, opts.HoldWindow),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		score:   &Scoreline{},
		banner:  NewWinBanner(opts.Sheet),
		logger:  opts.Logger,
		now:     opts.Now,
	}

	logger := m.logger
	m.surface.OnMissing(func(ref core.SpriteRef) {
		logger.Warn("sprite not in sheet", "ref", ref)
	})
	if wr, ok := game.(registry.WinReporter); ok {
		wr.SetWinPresenter(m.banner)
	}
	if sr, ok := game.(registry.ScoreReporter); ok {
		score := m.score
		sr.OnScore(func(scores []core.PlayerScore) {
			score.Update(scores)
			logger.Debug("scores", "scores", scores)
		})
	}

	m.resize(opts.Width, opts.Height)
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("race started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickInterval, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		return m.restart()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if m.banner.Active() {
			return m, nil
		}
		return m.togglePause()
	}

	if m.paused || m.banner.Active() {
		return m, nil
	}
	m.hold.Press(keyFromMsg(msg.String()), m.now())
	return m, nil
}

// handleTick advances the game by one step and schedules the next tick.
// The loop stops once the game reports a winner.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.paused {
		return m, nil
	}

	m.hold.Expire(msg.Time)
	res := m.game.Step(m.input)

	for _, id := range res.Collected {
		m.logger.Debug("coin collected", "by", id, "tick", res.State.Tick)
	}
	if res.Fallback {
		m.logger.Warn("coin placed without full clearance", "tick", res.State.Tick)
	}

	if res.State.Over() {
		if !m.banner.Active() {
			// Games that cannot present their own winner still get a banner.
			m.banner.PresentWin(res.State.Winner, "")
		}
		m.hold.Reset()
		m.logger.Info("race won", "winner", res.State.Winner, "tick", res.State.Tick, "scores", res.State.Scores)
		return m, nil
	}

	return m, tickCmd(m.config.TickInterval, m.gen)
}

// restart begins a fresh match with a new seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.banner.Clear()
	m.hold.Reset()
	m.paused = false
	m.game.Reset(m.config)
	m.logger.Info("race restarted", "seed", m.config.Seed)

	m.gen++
	return m, tickCmd(m.config.TickInterval, m.gen)
}

// togglePause stops or resumes the tick loop. Held keys are dropped
// either way so nobody keeps walking across a pause.
func (m Model) togglePause() (tea.Model, tea.Cmd) {
	m.paused = !m.paused
	m.hold.Reset()
	m.gen++
	if m.paused {
		return m, nil
	}
	return m, tickCmd(m.config.TickInterval, m.gen)
}

// resize fits the playfield between the score line and the help line.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	helpHeight := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(width, max(height-1-helpHeight, 0))
}

// View renders the score line, the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := ""
	if m.paused {
		status = "PAUSED"
	}
	hud := m.score.View(m.game.Title(), status, m.width)

	var field string
	if m.banner.Active() {
		field = m.banner.View(m.width, m.screen.Height(), m.score.Scores())
	} else {
		m.game.Render(m.surface)
		field = RenderScreen(m.screen)
	}

	return lipgloss.JoinVertical(lipgloss.Left, hud, field, m.help.View(m.keys))
}

// Run starts a Bubble Tea program in the alternate screen for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
