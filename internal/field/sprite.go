package field

import "github.com/vovakirdan/carrot-field/internal/core"

// Sprite rows are drawn top-down from the item's corner and clipped to the
// item rectangle, so any configured item size works.
var (
	carrotSprite = []string{
		`\|/`,
		`▼▼▼`,
		` ▼ `,
	}
	bugSprite = []string{
		`╲●╱`,
		`◖█◗`,
		`╱ ╲`,
	}
)

// spriteColor returns the color for row y of a sprite.
func spriteColor(kind core.ItemKind, y int) core.Color {
	if kind == core.ItemBug {
		if y == 0 {
			return core.ColorBrightRed
		}
		return core.ColorBrown
	}
	if y == 0 {
		return core.ColorBrightGreen
	}
	return core.ColorOrange
}

// Render draws every item onto dst with the field's top-left at (originX, originY).
func (f *Field) Render(dst *core.Screen, originX, originY int) {
	for _, it := range f.items {
		sprite := carrotSprite
		if it.Kind == core.ItemBug {
			sprite = bugSprite
		}

		box := it.Rect.Translate(originX, originY)
		for y := 0; y < box.H; y++ {
			row := []rune(sprite[y%len(sprite)])
			for x := 0; x < box.W; x++ {
				r := row[x%len(row)]
				if r == ' ' {
					continue
				}
				dst.SetColored(box.X+x, box.Y+y, r, spriteColor(it.Kind, y))
			}
		}
	}
}
