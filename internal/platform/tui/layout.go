package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/carrot-field/internal/core"
)

// Screen layout, top to bottom: HUD row, separator, field, help line(s).
const (
	hudRow   = 0
	fieldTop = 2

	controlX     = 1
	controlLabel = "[ ▶ ]"
	stopLabel    = "[ ■ ]"

	popupW      = 28
	popupH      = 8
	replayLabel = "[ ↻ REPLAY ]"

	recentLimit = 5
)

// controlRect is the clickable area of the play/stop button.
func controlRect() core.Rect {
	return core.NewRect(controlX, hudRow, utf8.RuneCountInString(controlLabel), 1)
}

// fieldSize returns the field dimensions for a screen of w x h cells.
func fieldSize(w, h int) (int, int) {
	return core.Max(w, 0), core.Max(h-fieldTop, 0)
}

// popupRect returns the prompt box with its top row at y.
func popupRect(screenW, y int) core.Rect {
	return core.NewRect((screenW-popupW)/2, y, popupW, popupH)
}

// popupTarget is the resting row of the prompt, centered on the field.
func popupTarget(screenH int) int {
	_, fh := fieldSize(0, screenH)
	return fieldTop + core.Max((fh-popupH)/2, 0)
}

// replayRect is the clickable replay button inside a prompt box.
func replayRect(box core.Rect) core.Rect {
	w := utf8.RuneCountInString(replayLabel)
	return core.NewRect(box.X+(box.W-w)/2, box.Y+6, w, 1)
}

// centerIn returns the x at which text is centered inside r.
func centerIn(r core.Rect, text string) int {
	return r.X + (r.W-utf8.RuneCountInString(text))/2
}
