package config

import (
	"strconv"
	"sync"
)

// Store is the single shared source of truth for the clicker settings. The
// click cycle, the hotkey listener, the location picker and the tray all read
// and write through it; nobody keeps a private copy apart from the repeat
// target a cycle fixes at its start.
type Store struct {
	mu sync.RWMutex
	s  Settings
}

func NewStore(s Settings) *Store {
	return &Store{s: s}
}

// Snapshot returns a copy of the current settings.
func (st *Store) Snapshot() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s
}

// Replace swaps in a full settings snapshot.
func (st *Store) Replace(s Settings) {
	st.mu.Lock()
	st.s = s
	st.mu.Unlock()
}

// Hotkey returns the current toggle key identifier.
func (st *Store) Hotkey() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s.Hotkey
}

// SetHotkey records a rebound toggle key.
func (st *Store) SetHotkey(key string) {
	st.mu.Lock()
	st.s.Hotkey = key
	st.mu.Unlock()
}

// SetTarget records a picked screen coordinate and switches the cursor mode
// to the fixed position.
func (st *Store) SetTarget(x, y int) {
	st.mu.Lock()
	st.s.XPos = strconv.Itoa(x)
	st.s.YPos = strconv.Itoa(y)
	st.s.CursorMode = CursorFixed
	st.mu.Unlock()
}
