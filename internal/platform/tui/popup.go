package tui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// popupDropSecs is how long the prompt takes to fall into place.
const popupDropSecs = 0.6

// popup is the end-of-round prompt. It drops in from above the field;
// the tween is purely visual.
type popup struct {
	visible bool
	message string
	tween   *gween.Tween
	y       float32
	targetY int
}

// show starts the drop from fromY to toY. Showing the same message again
// keeps the running animation.
func (p *popup) show(message string, fromY, toY int) {
	if p.visible && p.message == message {
		return
	}
	p.visible = true
	p.message = message
	p.targetY = toY
	p.y = float32(fromY)
	p.tween = gween.New(float32(fromY), float32(toY), popupDropSecs, ease.OutBounce)
}

func (p *popup) hide() {
	p.visible = false
	p.message = ""
	p.tween = nil
}

// update advances the drop by dt seconds.
func (p *popup) update(dt float32) {
	if p.tween == nil {
		return
	}
	current, done := p.tween.Update(dt)
	p.y = current
	if done {
		p.y = float32(p.targetY)
		p.tween = nil
	}
}

// settle moves the popup to its target, for layouts that change mid-drop.
func (p *popup) settle(toY int) {
	p.targetY = toY
	p.y = float32(toY)
	p.tween = nil
}

// row returns the current top row of the popup.
func (p *popup) row() int {
	return int(p.y + 0.5)
}

func (p *popup) animating() bool {
	return p.tween != nil
}
