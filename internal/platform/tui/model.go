package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// footerRows is the number of terminal rows reserved below the playfield.
const footerRows = 1

// Model is the Bubble Tea model hosting a game session.
type Model struct {
	session  *flappy.Session
	screen   *core.Screen
	sounds   *audio.SoundManager
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	menu     skinMenu
	lastMode flappy.Mode
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for session. sounds and logger may be nil.
func NewModel(session *flappy.Session, sounds *audio.SoundManager, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:  session,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		sounds:   sounds,
		logger:   logger,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		menu:     newSkinMenu(),
		lastMode: session.Mode(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Commands reach the session
// immediately; impulses take effect on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.VolumeUp):
		m.logger.Debug("volume", "level", m.sounds.AdjustVolume(audio.VolumeStep))
		return m, nil

	case key.Matches(msg, m.keys.VolumeDown):
		m.logger.Debug("volume", "level", m.sounds.AdjustVolume(-audio.VolumeStep))
		return m, nil

	case key.Matches(msg, m.keys.Mute):
		m.logger.Debug("mute", "muted", m.sounds.ToggleMute())
		return m, nil
	}

	switch m.session.Mode() {
	case flappy.ModeMenu:
		m = m.handleMenuKey(msg)

	case flappy.ModePlaying:
		switch {
		case key.Matches(msg, m.keys.Flap):
			if m.session.Apply(flappy.Impulse()) {
				m.sounds.Play(audio.SoundFlap)
			}
		case key.Matches(msg, m.keys.Pause):
			m.session.Apply(flappy.PauseToggle())
		}

	case flappy.ModeGameOver:
		switch {
		case key.Matches(msg, m.keys.Restart):
			m.session.Apply(flappy.Restart())
		case key.Matches(msg, m.keys.Flap):
			m.session.Apply(flappy.Impulse())
		}
	}

	return m.syncMode(), nil
}

// handleMenuKey handles navigation and selection in the skin menu.
// Cursor keys are checked before Flap since both claim "up".
func (m Model) handleMenuKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.menu = m.menu.move(-1)

	case key.Matches(msg, m.keys.Down):
		m.menu = m.menu.move(1)

	case key.Matches(msg, m.keys.Select):
		m.selectSkin(m.menu.cursor)

	case key.Matches(msg, m.keys.Skin):
		if i := skinIndex(msg.String()); i >= 0 && i < len(m.menu.skins) {
			m.menu.cursor = i
			m.selectSkin(i)
		}

	case key.Matches(msg, m.keys.Pause):
		m.session.Apply(flappy.PauseToggle())

	case key.Matches(msg, m.keys.Flap):
		m.session.Apply(flappy.Impulse())
	}
	return m
}

func (m Model) selectSkin(i int) {
	if m.session.Apply(flappy.SelectSkin(i)) {
		m.logger.Debug("skin selected", "skin", m.session.Snapshot().Skin.Name)
	}
}

// handleResize maps the terminal size to world units. A terminal too small
// for the obstacle geometry keeps the previous world size; the renderer
// clips.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	rows := max(msg.Height-footerRows, 1)
	m.screen.Resize(msg.Width, rows)

	d := m.session.Config().Display
	w, h := float64(msg.Width)*d.CellWidth, float64(rows)*d.CellHeight
	if err := m.session.Resize(w, h); err != nil {
		m.logger.Warn("resize rejected", "cols", msg.Width, "rows", rows, "err", err)
		return m, nil
	}
	m.logger.Debug("resized", "cols", msg.Width, "rows", rows)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Tick(tickInterval(m.config.TickRate))
	if res.Scored > 0 {
		m.sounds.Play(audio.SoundScore)
	}
	if res.Crashed {
		m.sounds.Play(audio.SoundCrash)
	}

	return m.syncMode(), tickCmd(m.config.TickRate)
}

// syncMode logs mode changes.
func (m Model) syncMode() Model {
	mode := m.session.Mode()
	if mode == m.lastMode {
		return m
	}

	snap := m.session.Snapshot()
	m.logger.Debug("mode change", "from", m.lastMode, "to", mode, "score", snap.Score)
	if mode == flappy.ModeGameOver {
		m.logger.Info("run over", "score", snap.Score, "elapsed", snap.Elapsed.Round(time.Second))
	}
	m.lastMode = mode
	return m
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.session.Mode() == flappy.ModeMenu {
		panel := m.menu.view(m.session.Snapshot(), m.volumeLine())
		return lipgloss.Place(m.width, m.height-footerRows, lipgloss.Center, lipgloss.Center, panel) +
			"\n" + m.help.View(m.keys)
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// volumeLine describes the audio state for the menu.
func (m Model) volumeLine() string {
	if !m.sounds.Active() {
		return "Sound off"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Volume: %d%%", int(m.sounds.Volume()*100+0.5))
	if m.sounds.Muted() {
		b.WriteString(" (muted)")
	}
	return b.String()
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for session.
func Run(session *flappy.Session, sounds *audio.SoundManager, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(session, sounds, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
