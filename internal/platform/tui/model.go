package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carrot-field/internal/audio"
	"github.com/vovakirdan/carrot-field/internal/core"
	"github.com/vovakirdan/carrot-field/internal/field"
	"github.com/vovakirdan/carrot-field/internal/game"
	"github.com/vovakirdan/carrot-field/internal/storage"
)

// Options configures a play session.
type Options struct {
	Rules   game.Rules
	ItemW   int
	ItemH   int
	Runtime core.RuntimeConfig
	Audio   audio.Player   // nil plays nothing
	Store   *storage.Store // nil keeps no round history
	Logger  *log.Logger    // nil discards logs
}

// Model is the Bubble Tea model for one carrot field.
type Model struct {
	ctrl     *game.Controller
	field    *field.Field
	screen   *core.Screen
	config   core.RuntimeConfig
	audio    audio.Player
	store    *storage.Store
	log      *log.Logger
	keys     KeyMap
	help     help.Model
	hud      display
	popup    popup
	summary  storage.Summary
	recent   []storage.Round
	quitting bool
}

// NewModel creates the model in its idle state.
func NewModel(opts Options) (*Model, error) {
	ctrl, err := game.NewController(opts.Rules)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := &Model{
		ctrl:   ctrl,
		config: cfg,
		audio:  opts.Audio,
		store:  opts.Store,
		log:    opts.Logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(0, 0),
		field:  field.New(0, 0, opts.ItemW, opts.ItemH, cfg.Seed),
	}
	if m.audio == nil {
		m.audio = audio.Silent{}
	}
	if m.log == nil {
		m.log = log.New(io.Discard)
	}

	m.relayout()
	m.ctrl.Projection().Apply(m)
	return m, nil
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.relayout()
		return m, nil

	case CountdownMsg:
		return m, m.dispatch(game.TickEvent{Token: msg.Token})

	case FrameMsg:
		m.popup.update(1 / float32(m.config.TickRate))
		return m, frameCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionToggle:
		return m, m.pressControl()
	case core.ActionReplay:
		return m, m.pressReplay()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
	}
	return m, nil
}

// handleMouse routes a left click to the replay button, the control button
// or the field item under the pointer, in that order.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	// The button only takes clicks once the prompt has landed.
	if m.popup.visible && !m.popup.animating() && replayRect(popupRect(m.screen.Width(), m.popup.row())).Contains(msg.X, msg.Y) {
		return m.pressReplay()
	}
	if m.popup.visible && popupRect(m.screen.Width(), m.popup.row()).Contains(msg.X, msg.Y) {
		return nil
	}
	if controlRect().Contains(msg.X, msg.Y) {
		return m.pressControl()
	}
	if msg.Y < fieldTop {
		return nil
	}

	item, ok := m.field.HitTest(msg.X, msg.Y-fieldTop)
	if !ok {
		return nil
	}
	return m.hit(item)
}

// hit reports a click on item. A pulled carrot leaves the field.
func (m *Model) hit(item field.Item) tea.Cmd {
	if !m.ctrl.State().Running() {
		return nil
	}
	if item.Kind == core.ItemCarrot {
		m.field.Remove(item.ID)
	}
	return m.dispatch(game.HitEvent{Kind: item.Kind})
}

// pressControl is the play/stop button.
func (m *Model) pressControl() tea.Cmd {
	if !m.hud.controlVisible {
		return nil
	}
	if m.ctrl.State().Running() {
		return m.dispatch(game.StopEvent{})
	}
	return m.dispatch(game.StartEvent{})
}

// pressReplay is the button on the prompt.
func (m *Model) pressReplay() tea.Cmd {
	if !m.popup.visible {
		return nil
	}
	return m.dispatch(game.StartEvent{})
}

// dispatch feeds ev to the controller, applies the resulting effects and
// refreshes the display.
func (m *Model) dispatch(ev game.Event) tea.Cmd {
	changed, effects := m.ctrl.Dispatch(ev)
	if !changed {
		return nil
	}

	var cmds []tea.Cmd
	for _, eff := range effects {
		switch e := eff.(type) {
		case game.ClearField:
			m.field.Clear()
		case game.PlaceItems:
			m.PlaceItems(e.Kind, e.Count)
		case game.PlaySound:
			m.audio.Play(e.Sound)
		case game.StopSound:
			m.audio.Stop(e.Sound)
		case game.ScheduleTick:
			cmds = append(cmds, countdownCmd(e.Token, e.After))
		case game.CancelTimer:
			// Pending countdown messages carry a stale token and are dropped.
		case game.RoundEnded:
			m.recordRound(e)
		}
	}

	state := m.ctrl.State()
	m.log.Debug("transition", "event", fmt.Sprintf("%T", ev), "phase", state.Phase, "score", state.Score, "remaining", state.Remaining)

	m.ctrl.Projection().Apply(m)
	return tea.Batch(cmds...)
}

// recordRound adds a finished round to the history.
func (m *Model) recordRound(r game.RoundEnded) {
	m.log.Info("round ended", "outcome", r.Outcome, "score", r.Score, "carrots", r.Carrots, "elapsed", r.Elapsed)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRound(r); err != nil {
		m.log.Warn("cannot record round", "error", err)
		return
	}
	sum, err := m.store.Summary()
	if err != nil {
		m.log.Warn("cannot summarize rounds", "error", err)
		return
	}
	m.summary = sum

	recent, err := m.store.RecentRounds(recentLimit)
	if err != nil {
		m.log.Warn("cannot load recent rounds", "error", err)
		return
	}
	m.recent = recent
}

// relayout fits the screen and field to the terminal, leaving room for help.
func (m *Model) relayout() {
	helpH := lipgloss.Height(m.help.View(m.keys))
	h := core.Max(m.config.ScreenH-helpH, 0)
	m.help.Width = m.config.ScreenW
	m.screen.Resize(m.config.ScreenW, h)
	m.field.Resize(fieldSize(m.config.ScreenW, h))
	if m.popup.visible {
		m.popup.settle(popupTarget(h))
	}
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawHUD()
	m.field.Render(m.screen, 0, fieldTop)
	if m.ctrl.State().Phase == game.PhaseIdle {
		m.drawIdleHint()
	}
	if m.popup.visible {
		m.drawPopup()
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a play session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks drive the game
	)

	_, err = p.Run()
	return err
}
