package field

import (
	"testing"

	"github.com/vovakirdan/carrot-field/internal/core"
)

func TestPlaceStaysInBounds(t *testing.T) {
	f := New(40, 12, 3, 3, 7)

	f.Place(core.ItemCarrot, 200)
	f.Place(core.ItemBug, 200)

	for _, it := range f.Items() {
		if it.Rect.X < 0 || it.Rect.Y < 0 || it.Rect.Right() > 40 || it.Rect.Bottom() > 12 {
			t.Fatalf("item %d out of bounds: %+v", it.ID, it.Rect)
		}
		if it.Rect.W != 3 || it.Rect.H != 3 {
			t.Fatalf("item %d has wrong size: %+v", it.ID, it.Rect)
		}
	}

	if f.Count(core.ItemCarrot) != 200 || f.Count(core.ItemBug) != 200 {
		t.Errorf("Count() = %d carrots, %d bugs", f.Count(core.ItemCarrot), f.Count(core.ItemBug))
	}
}

func TestPlaceTinyField(t *testing.T) {
	// Field smaller than an item: everything lands at the origin
	f := New(2, 1, 3, 3, 1)
	f.Place(core.ItemCarrot, 5)

	for _, it := range f.Items() {
		if it.Rect.X != 0 || it.Rect.Y != 0 {
			t.Errorf("item should be pinned at origin, got %+v", it.Rect)
		}
	}
}

func TestPlaceDeterminism(t *testing.T) {
	a := New(80, 20, 3, 3, 12345)
	b := New(80, 20, 3, 3, 12345)

	a.Place(core.ItemCarrot, 15)
	a.Place(core.ItemBug, 10)
	b.Place(core.ItemCarrot, 15)
	b.Place(core.ItemBug, 10)

	ia, ib := a.Items(), b.Items()
	if len(ia) != len(ib) {
		t.Fatalf("item counts differ: %d vs %d", len(ia), len(ib))
	}
	for i := range ia {
		if ia[i] != ib[i] {
			t.Errorf("item %d differs: %+v vs %+v", i, ia[i], ib[i])
		}
	}
}

func TestHitTestTopmost(t *testing.T) {
	f := New(10, 10, 3, 3, 1)
	f.items = []Item{
		{ID: 1, Kind: core.ItemCarrot, Rect: core.NewRect(0, 0, 3, 3)},
		{ID: 2, Kind: core.ItemBug, Rect: core.NewRect(1, 1, 3, 3)},
	}

	tests := []struct {
		name   string
		x, y   int
		wantID int
		wantOK bool
	}{
		{"carrot only", 0, 0, 1, true},
		{"overlap picks later item", 2, 2, 2, true},
		{"bug only", 3, 3, 2, true},
		{"empty area", 8, 8, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it, ok := f.HitTest(tc.x, tc.y)
			if ok != tc.wantOK {
				t.Fatalf("HitTest(%d, %d) ok = %v, expected %v", tc.x, tc.y, ok, tc.wantOK)
			}
			if ok && it.ID != tc.wantID {
				t.Errorf("HitTest(%d, %d) = item %d, expected %d", tc.x, tc.y, it.ID, tc.wantID)
			}
		})
	}
}

func TestRemoveAndClear(t *testing.T) {
	f := New(30, 10, 3, 3, 3)
	f.Place(core.ItemCarrot, 3)

	items := f.Items()
	if !f.Remove(items[1].ID) {
		t.Fatal("Remove() should find a placed item")
	}
	if f.Remove(items[1].ID) {
		t.Error("Remove() of a removed item should report false")
	}
	if len(f.Items()) != 2 {
		t.Errorf("expected 2 items after remove, got %d", len(f.Items()))
	}

	f.Clear()
	if len(f.Items()) != 0 {
		t.Errorf("Clear() should empty the field, got %d items", len(f.Items()))
	}

	// IDs keep increasing across clears
	f.Place(core.ItemBug, 1)
	if f.Items()[0].ID <= items[2].ID {
		t.Errorf("IDs should not be reused, got %d", f.Items()[0].ID)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	f := New(30, 10, 3, 3, 3)
	f.Place(core.ItemCarrot, 1)

	items := f.Items()
	items[0].Kind = core.ItemBug

	if f.Count(core.ItemBug) != 0 {
		t.Error("mutating Items() result should not affect the field")
	}
}

func TestResizeClampsItems(t *testing.T) {
	f := New(40, 20, 3, 3, 9)
	f.items = []Item{{ID: 1, Kind: core.ItemCarrot, Rect: core.NewRect(35, 15, 3, 3)}}

	f.Resize(20, 10)

	it := f.Items()[0]
	if it.Rect.X != 17 || it.Rect.Y != 7 {
		t.Errorf("item should be clamped to (17, 7), got (%d, %d)", it.Rect.X, it.Rect.Y)
	}
	if f.Width() != 20 || f.Height() != 10 {
		t.Errorf("field size = %dx%d, expected 20x10", f.Width(), f.Height())
	}
}

func TestRenderDrawsSprites(t *testing.T) {
	f := New(10, 5, 3, 3, 1)
	f.items = []Item{
		{ID: 1, Kind: core.ItemCarrot, Rect: core.NewRect(0, 0, 3, 3)},
		{ID: 2, Kind: core.ItemBug, Rect: core.NewRect(5, 1, 3, 3)},
	}

	s := core.NewScreen(12, 8)
	f.Render(s, 1, 2)

	if s.GetCell(1, 2).Rune != '\\' || s.GetCell(2, 3).Color != core.ColorOrange {
		t.Errorf("carrot not drawn at origin offset, row = %q", s.Row(2))
	}
	if s.GetCell(7, 3).Rune != '●' || s.GetCell(7, 3).Color != core.ColorBrightRed {
		t.Errorf("bug not drawn at expected cell, row = %q", s.Row(3))
	}
}
