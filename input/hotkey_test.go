package input

import (
	"sync/atomic"
	"testing"

	hook "github.com/robotn/gohook"

	"mdev0bit/lazyfinger/config"
)

func keyEvent(keychar rune, rawcode uint16) hook.Event {
	return hook.Event{Kind: hook.KeyDown, Keychar: keychar, Rawcode: rawcode}
}

func newTestHotkey(current string) (*Hotkey, *config.Store, *atomic.Int32) {
	st := config.Default().Settings
	st.Hotkey = current
	store := config.NewStore(st)

	var toggles atomic.Int32
	h := NewHotkey(store, func() { toggles.Add(1) }, nil)
	return h, store, &toggles
}

func TestHotkeyTogglesOnMatch(t *testing.T) {
	h, _, toggles := newTestHotkey("x")

	h.handleKeyDown(keyEvent('x', 0x58))
	if got := toggles.Load(); got != 1 {
		t.Fatalf("toggles = %d, want 1", got)
	}

	h.handleKeyDown(keyEvent('y', 0x59))
	if got := toggles.Load(); got != 1 {
		t.Fatalf("toggles = %d after non-matching key, want 1", got)
	}
}

func TestHotkeyMatchIsCaseInsensitive(t *testing.T) {
	h, _, toggles := newTestHotkey("x")

	h.handleKeyDown(keyEvent('X', 0x58))
	if got := toggles.Load(); got != 1 {
		t.Fatalf("toggles = %d, want 1", got)
	}
}

func TestHotkeyNamedKey(t *testing.T) {
	h, _, toggles := newTestHotkey("f6")

	// Function keys carry no printable character.
	h.handleKeyDown(keyEvent(0, 0x75))
	if got := toggles.Load(); got != 1 {
		t.Fatalf("toggles = %d, want 1", got)
	}
}

func TestHotkeyUnmappableKeyIgnored(t *testing.T) {
	h, _, toggles := newTestHotkey("f6")

	h.handleKeyDown(keyEvent(0, 0x07))
	if got := toggles.Load(); got != 0 {
		t.Fatalf("toggles = %d, want 0", got)
	}
}

func TestCaptureConsumesKeyAndRebinds(t *testing.T) {
	h, store, toggles := newTestHotkey("x")

	var rebound string
	h.BeginCapture(func(key string) { rebound = key })
	if !h.Capturing() {
		t.Fatalf("expected capturing after BeginCapture")
	}

	// The captured press matches the old hotkey; it must still not toggle.
	h.handleKeyDown(keyEvent('x', 0x58))

	if got := store.Hotkey(); got != "x" {
		t.Fatalf("hotkey = %q, want %q", got, "x")
	}
	if rebound != "x" {
		t.Fatalf("rebound = %q, want %q", rebound, "x")
	}
	if got := toggles.Load(); got != 0 {
		t.Fatalf("toggles = %d during capture, want 0", got)
	}
	if h.Capturing() {
		t.Fatalf("expected listening after capture")
	}

	// Back in listening mode, the same key toggles again.
	h.handleKeyDown(keyEvent('x', 0x58))
	if got := toggles.Load(); got != 1 {
		t.Fatalf("toggles = %d after capture, want 1", got)
	}
}

func TestCaptureNewKeyBecomesHotkey(t *testing.T) {
	h, store, toggles := newTestHotkey("f6")

	h.BeginCapture(nil)
	h.handleKeyDown(keyEvent('q', 0x51))

	if got := store.Hotkey(); got != "q" {
		t.Fatalf("hotkey = %q, want %q", got, "q")
	}

	h.handleKeyDown(keyEvent('q', 0x51))
	if got := toggles.Load(); got != 1 {
		t.Fatalf("toggles = %d, want 1", got)
	}
}

func TestCaptureIgnoresUnmappableKey(t *testing.T) {
	h, store, _ := newTestHotkey("f6")

	h.BeginCapture(nil)
	h.handleKeyDown(keyEvent(0, 0x07))

	if !h.Capturing() {
		t.Fatalf("capture should stay armed past an unmappable key")
	}
	if got := store.Hotkey(); got != "f6" {
		t.Fatalf("hotkey = %q, want unchanged %q", got, "f6")
	}
}

func TestCancelCapture(t *testing.T) {
	h, store, toggles := newTestHotkey("x")

	h.BeginCapture(nil)
	h.CancelCapture()

	h.handleKeyDown(keyEvent('x', 0x58))
	if got := store.Hotkey(); got != "x" {
		t.Fatalf("hotkey = %q, want unchanged %q", got, "x")
	}
	if got := toggles.Load(); got != 1 {
		t.Fatalf("toggles = %d after cancelled capture, want 1", got)
	}
}

func TestKeyNamePrefersPrintableCharacter(t *testing.T) {
	// A printable character wins even when the rawcode maps to a name.
	if got := KeyName(keyEvent('A', 0x70)); got != "a" {
		t.Fatalf("KeyName = %q, want %q", got, "a")
	}
	if got := KeyName(keyEvent(' ', 0x20)); got != "space" {
		t.Fatalf("KeyName = %q, want %q", got, "space")
	}
	if got := KeyName(keyEvent(0, 0x1B)); got != "esc" {
		t.Fatalf("KeyName = %q, want %q", got, "esc")
	}
	if got := KeyName(keyEvent(0, 0x07)); got != "" {
		t.Fatalf("KeyName = %q, want empty", got)
	}
}
