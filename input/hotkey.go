package input

import (
	"log/slog"
	"strings"
	"sync"
	"unicode"

	hook "github.com/robotn/gohook"

	"mdev0bit/lazyfinger/config"
)

// Hotkey matches global key presses against the configured toggle key. It is
// normally Listening; BeginCapture switches it to Capturing, in which the
// next recognized press becomes the new hotkey instead of toggling.
type Hotkey struct {
	store  *config.Store
	toggle func()
	log    *slog.Logger

	mu        sync.Mutex
	capturing bool
	onRebind  func(key string)
}

// NewHotkey creates a listener that calls toggle on every press of the
// store's current hotkey.
func NewHotkey(store *config.Store, toggle func(), log *slog.Logger) *Hotkey {
	if log == nil {
		log = slog.Default()
	}
	return &Hotkey{store: store, toggle: toggle, log: log}
}

// BeginCapture arms rebind mode. The next recognized key press is written to
// the settings store as the new hotkey, fn is called with its identifier, and
// the listener returns to normal matching. The captured press is consumed and
// never forwarded as a toggle.
func (h *Hotkey) BeginCapture(fn func(key string)) {
	h.mu.Lock()
	h.capturing = true
	h.onRebind = fn
	h.mu.Unlock()
}

// CancelCapture disarms rebind mode without changing the hotkey.
func (h *Hotkey) CancelCapture() {
	h.mu.Lock()
	h.capturing = false
	h.onRebind = nil
	h.mu.Unlock()
}

// Capturing reports whether rebind mode is armed.
func (h *Hotkey) Capturing() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.capturing
}

func (h *Hotkey) handleKeyDown(ev hook.Event) {
	key := KeyName(ev)
	if key == "" {
		// Unmappable keys are silently ignored.
		return
	}

	h.mu.Lock()
	if h.capturing {
		h.capturing = false
		fn := h.onRebind
		h.onRebind = nil
		h.mu.Unlock()

		h.store.SetHotkey(key)
		h.log.Info("Hotkey rebound", "key", key)
		if fn != nil {
			fn(key)
		}
		return
	}
	h.mu.Unlock()

	if strings.EqualFold(key, h.store.Hotkey()) {
		h.toggle()
	}
}

// KeyName normalizes a key event to a lowercase identifier. A printable
// character wins over the named-key table when both are derivable.
func KeyName(ev hook.Event) string {
	if unicode.IsPrint(ev.Keychar) && !unicode.IsSpace(ev.Keychar) {
		return strings.ToLower(string(ev.Keychar))
	}
	if name, ok := keyNames[ev.Rawcode]; ok {
		return name
	}
	return ""
}
