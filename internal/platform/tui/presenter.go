package tui

import (
	"github.com/vovakirdan/carrot-field/internal/core"
	"github.com/vovakirdan/carrot-field/internal/game"
)

// display holds what the HUD currently shows.
type display struct {
	controlVisible bool
	control        game.Control
	hudVisible     bool
	seconds        int
	carrotsLeft    int
}

// PlaceItems scatters count items of kind across the field.
func (m *Model) PlaceItems(kind core.ItemKind, count int) {
	m.field.Place(kind, count)
}

// SetScoreDisplay sets the carrot counter.
func (m *Model) SetScoreDisplay(n int) {
	m.hud.carrotsLeft = n
}

// SetTimerDisplay sets the countdown clock.
func (m *Model) SetTimerDisplay(seconds int) {
	m.hud.seconds = seconds
}

// ShowReplayPrompt drops the prompt box in with message.
func (m *Model) ShowReplayPrompt(message string) {
	box := popupRect(m.screen.Width(), 0)
	m.popup.show(message, fieldTop-box.H, popupTarget(m.screen.Height()))
}

// HidePrompt removes the prompt box.
func (m *Model) HidePrompt() {
	m.popup.hide()
}

// SetControlVisible shows or hides the play/stop button.
func (m *Model) SetControlVisible(visible bool) {
	m.hud.controlVisible = visible
}

// SetControlIcon switches the play/stop button icon.
func (m *Model) SetControlIcon(c game.Control) {
	m.hud.control = c
}

// SetHUDVisible shows or hides the timer and carrot counter.
func (m *Model) SetHUDVisible(visible bool) {
	m.hud.hudVisible = visible
}

var _ game.Presenter = (*Model)(nil)
