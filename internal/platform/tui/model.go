package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilequest/internal/core"
	"github.com/vovakirdan/tilequest/internal/world"
)

// Model is the Bubble Tea model that hosts one game session.
//
// Each TickMsg is one frame: the elapsed wall-clock time is fed to a fixed
// timestep and the resulting number of simulation ticks is run before the
// frame is drawn. Keys pressed since the previous frame are applied to the
// first tick only.
type Model struct {
	game     *world.Game
	canvas   *Canvas
	config   core.RuntimeConfig
	clock    *core.Timestep
	last     time.Time
	input    core.InputFrame
	keys     *KeyMapper
	help     help.Model
	logger   *log.Logger
	paused   bool
	err      error
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game *world.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := core.NewTimestep(cfg.Quantum())
	clock.MaxCatchUp = cfg.MaxCatchUp

	return Model{
		game:   game,
		canvas: NewCanvas(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		clock:  clock,
		input:  core.NewInputFrame(),
		keys:   NewKeyMapper(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "level", m.game.Level().Name, "pos", m.game.Room().Player)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.canvas.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.logger.Info("game quit", "tick", m.game.Tick())
		return m, tea.Quit
	case action == core.ActionPause:
		m.paused = !m.paused
		m.input.Clear()
		return m, nil
	case action != core.ActionNone && !m.paused:
		m.input.Set(action)
	}
	return m, nil
}

// handleTick runs the simulation ticks owed since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := now.Sub(m.last)
	if m.last.IsZero() {
		elapsed = m.clock.Quantum
	}
	m.last = now

	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	steps := m.clock.Advance(elapsed)
	for i := 0; i < steps; i++ {
		in := m.input
		if i > 0 {
			in = core.InputFrame{}
		}

		res, err := m.game.Step(in)
		if err != nil {
			m.logger.Error("game halted", "error", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.logStep(res)
	}
	if steps > 0 {
		m.input.Clear()
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logStep(res world.StepResult) {
	if t := res.Transition; t != nil {
		m.logger.Info("room entered", "from", t.From, "to", t.To, "pos", t.Arrival, "tick", res.Tick)
	}
	if res.DialogOpened {
		id, _ := m.game.ActiveDialog()
		m.logger.Debug("dialog opened", "id", id, "tick", res.Tick)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawGame(m.canvas, m.game)
	if m.paused {
		m.canvas.Centered(m.canvas.Height()/2, " PAUSED ", RoleNotice)
	}
	return m.canvas.Render() + "\n" + m.help.View(m.keys.Keys)
}

// Err returns the runtime error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program for game and blocks until it exits.
// A runtime error that halted the game is returned.
func Run(game *world.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
