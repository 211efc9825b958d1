package input

import (
	"testing"

	hook "github.com/robotn/gohook"

	"mdev0bit/lazyfinger/config"
)

func mouseEvent(x, y int16) hook.Event {
	return hook.Event{Kind: hook.MouseDown, X: x, Y: y}
}

func newTestPicker() (*Picker, *config.Store) {
	store := config.NewStore(config.Default().Settings)
	return NewPicker(store, nil), store
}

func TestPickerCapturesFirstPress(t *testing.T) {
	p, store := newTestPicker()

	var gotX, gotY int
	p.Begin(func(x, y int) { gotX, gotY = x, y })
	if !p.Active() {
		t.Fatalf("expected active after Begin")
	}

	p.handleMouseDown(mouseEvent(120, 240))

	s := store.Snapshot()
	if s.XPos != "120" || s.YPos != "240" {
		t.Fatalf("target = (%s, %s), want (120, 240)", s.XPos, s.YPos)
	}
	if s.CursorMode != config.CursorFixed {
		t.Fatalf("cursor mode = %q, want %q", s.CursorMode, config.CursorFixed)
	}
	if gotX != 120 || gotY != 240 {
		t.Fatalf("callback = (%d, %d), want (120, 240)", gotX, gotY)
	}
	if p.Active() {
		t.Fatalf("picker still active after first press")
	}
}

func TestPickerIgnoresSecondPress(t *testing.T) {
	p, store := newTestPicker()

	p.Begin(nil)
	p.handleMouseDown(mouseEvent(10, 20))
	p.handleMouseDown(mouseEvent(900, 900))

	s := store.Snapshot()
	if s.XPos != "10" || s.YPos != "20" {
		t.Fatalf("target = (%s, %s), want first press (10, 20)", s.XPos, s.YPos)
	}
}

func TestPickerCancelHasNoSideEffects(t *testing.T) {
	p, store := newTestPicker()
	before := store.Snapshot()

	p.Begin(func(int, int) { t.Fatalf("callback after cancel") })
	p.Cancel()
	p.handleMouseDown(mouseEvent(50, 60))

	after := store.Snapshot()
	if after != before {
		t.Fatalf("settings changed by cancelled pick: %+v -> %+v", before, after)
	}
}

func TestPickerInactiveByDefault(t *testing.T) {
	p, store := newTestPicker()
	before := store.Snapshot()

	p.handleMouseDown(mouseEvent(5, 5))

	if store.Snapshot() != before {
		t.Fatalf("unarmed picker wrote to the store")
	}
}
