package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/carrot-field/internal/core"
	"github.com/vovakirdan/carrot-field/internal/game"
)

const title = "CARROT FIELD"

// drawHUD draws the control button, timer, carrot counter and separator.
func (m *Model) drawHUD() {
	s := m.screen

	if m.hud.controlVisible {
		label := controlLabel
		if m.hud.control == game.ControlStop {
			label = stopLabel
		}
		s.DrawTextColored(controlX, hudRow, label, core.ColorBrightYellow)
	}

	if m.hud.hudVisible {
		clock := "TIME " + game.FormatClock(m.hud.seconds)
		clockColor := core.ColorBrightWhite
		if m.hud.seconds <= 3 {
			clockColor = core.ColorBrightRed
		}
		s.DrawTextColored(controlX+8, hudRow, clock, clockColor)
		s.DrawTextColored(controlX+22, hudRow, fmt.Sprintf("CARROTS %d", m.hud.carrotsLeft), core.ColorOrange)
	}

	s.DrawTextColored(s.Width()-utf8.RuneCountInString(title)-1, hudRow, title, core.ColorBrightGreen)
	s.DrawHLine(0, hudRow+1, s.Width(), '─', core.ColorGray)
}

// drawIdleHint tells a new player how to begin.
func (m *Model) drawIdleHint() {
	_, fh := fieldSize(m.screen.Width(), m.screen.Height())
	y := fieldTop + fh/2
	rules := m.ctrl.Rules()
	m.screen.DrawTextCentered(y-1, fmt.Sprintf("Pull all %d carrots in %d seconds.", rules.CarrotCount, rules.Duration), core.ColorBrightWhite)
	m.screen.DrawTextCentered(y, "Don't touch the bugs!", core.ColorBrightRed)
	m.screen.DrawTextCentered(y+2, "click ▶ or press space to start", core.ColorGray)
}

// drawPopup draws the end-of-round prompt at its current animated row.
func (m *Model) drawPopup() {
	s := m.screen
	box := popupRect(s.Width(), m.popup.row())

	s.DrawRect(box, ' ')
	s.DrawBox(box, core.ColorBrightYellow)

	msgColor := core.ColorBrightWhite
	switch m.popup.message {
	case game.PromptWin:
		msgColor = core.ColorBrightGreen
	case game.PromptLose:
		msgColor = core.ColorBrightRed
	}
	s.DrawTextColored(centerIn(box, m.popup.message), box.Y+1, m.popup.message, msgColor)

	if stats := m.statsLine(); stats != "" {
		s.DrawTextColored(centerIn(box, stats), box.Y+3, stats, core.ColorGray)
	}
	if recent := m.recentLine(); recent != "" {
		s.DrawTextColored(centerIn(box, recent), box.Y+4, recent, core.ColorGray)
	}

	btn := replayRect(box)
	s.DrawTextColored(btn.X, btn.Y, replayLabel, core.ColorBrightYellow)
}

// statsLine summarizes the rounds played in this session.
func (m *Model) statsLine() string {
	sum := m.summary
	if sum.Rounds == 0 {
		return ""
	}
	if sum.Wins == 0 {
		return fmt.Sprintf("wins 0/%d", sum.Rounds)
	}
	return fmt.Sprintf("wins %d/%d  best %ds", sum.Wins, sum.Rounds, sum.BestWinSecs)
}

// recentLine lists the latest outcomes, newest first: W won, L lost, S stopped.
func (m *Model) recentLine() string {
	if len(m.recent) == 0 {
		return ""
	}
	marks := make([]string, 0, len(m.recent))
	for _, r := range m.recent {
		switch r.Outcome {
		case "win":
			marks = append(marks, "W")
		case "lose":
			marks = append(marks, "L")
		default:
			marks = append(marks, "S")
		}
	}
	return "last " + strings.Join(marks, " ")
}
