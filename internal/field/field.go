// Package field owns the clickable items of the play field: random
// placement, hit-testing and removal. Positions are in cells relative to
// the field's top-left corner.
package field

import (
	"math/rand"

	"github.com/vovakirdan/carrot-field/internal/core"
)

// Item is a carrot or bug occupying a rectangle of the field.
type Item struct {
	ID   int
	Kind core.ItemKind
	Rect core.Rect
}

// Field holds the placed items in drawing order; later items are on top.
type Field struct {
	width  int
	height int
	itemW  int
	itemH  int
	items  []Item
	nextID int
	rng    *rand.Rand
}

// New creates an empty field. Item size is fixed for the field's lifetime.
func New(width, height, itemW, itemH int, seed int64) *Field {
	return &Field{
		width:  core.Max(width, 0),
		height: core.Max(height, 0),
		itemW:  core.Max(itemW, 1),
		itemH:  core.Max(itemH, 1),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Width returns the field width in cells.
func (f *Field) Width() int {
	return f.width
}

// Height returns the field height in cells.
func (f *Field) Height() int {
	return f.height
}

// Clear removes every item.
func (f *Field) Clear() {
	f.items = f.items[:0]
}

// Place adds count items of kind at random positions within the bounds.
// Items may overlap; there is no collision avoidance.
func (f *Field) Place(kind core.ItemKind, count int) {
	maxX := core.Max(f.width-f.itemW, 0)
	maxY := core.Max(f.height-f.itemH, 0)

	for i := 0; i < count; i++ {
		f.nextID++
		f.items = append(f.items, Item{
			ID:   f.nextID,
			Kind: kind,
			Rect: core.NewRect(f.rng.Intn(maxX+1), f.rng.Intn(maxY+1), f.itemW, f.itemH),
		})
	}
}

// HitTest returns the topmost item covering (x, y).
func (f *Field) HitTest(x, y int) (Item, bool) {
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].Rect.Contains(x, y) {
			return f.items[i], true
		}
	}
	return Item{}, false
}

// Remove deletes the item with the given ID, reporting whether it existed.
func (f *Field) Remove(id int) bool {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the placed items in drawing order.
func (f *Field) Items() []Item {
	out := make([]Item, len(f.items))
	copy(out, f.items)
	return out
}

// Count returns how many items of kind are in the field.
func (f *Field) Count(kind core.ItemKind) int {
	n := 0
	for _, it := range f.items {
		if it.Kind == kind {
			n++
		}
	}
	return n
}

// Resize changes the field bounds and pulls items back inside them.
func (f *Field) Resize(width, height int) {
	f.width = core.Max(width, 0)
	f.height = core.Max(height, 0)

	maxX := core.Max(f.width-f.itemW, 0)
	maxY := core.Max(f.height-f.itemH, 0)
	for i := range f.items {
		f.items[i].Rect.X = core.Clamp(f.items[i].Rect.X, 0, maxX)
		f.items[i].Rect.Y = core.Clamp(f.items[i].Rect.Y, 0, maxY)
	}
}
