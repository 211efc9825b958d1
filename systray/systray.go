// Package systray is the tray surface of the clicker: it exposes the
// start/stop toggle, the hotkey rebind and location pick entry points, and
// mirrors the running state reported back by the core.
package systray

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/getlantern/systray"
)

// Callbacks are the core entry points driven from the tray menu.
type Callbacks struct {
	Toggle func()
	Rebind func()
	Pick   func()
	Quit   func()
}

// Manager manages the tray icon and menu.
type Manager struct {
	callbacks Callbacks
	iconData  []byte
	quit      chan struct{}
	quitOnce  sync.Once

	mu      sync.Mutex
	ready   bool
	running bool
	hotkey  string

	sessions    int64
	totalClicks int64
	clickedMs   int64

	mStatus *systray.MenuItem
	mToggle *systray.MenuItem
	mStats  *systray.MenuItem
}

// NewManager creates a tray manager. hotkey is the initial toggle key shown
// in the menu.
func NewManager(callbacks Callbacks, hotkey string, iconData []byte) *Manager {
	return &Manager{
		callbacks: callbacks,
		iconData:  iconData,
		hotkey:    hotkey,
		quit:      make(chan struct{}),
	}
}

// Run starts the tray loop. Blocking; call from the main goroutine.
func (m *Manager) Run() {
	systray.Run(m.onReady, m.onExit)
}

// Stop tears the tray down.
func (m *Manager) Stop() {
	systray.Quit()
}

// WaitForQuit returns a channel closed when the user picks Quit.
func (m *Manager) WaitForQuit() <-chan struct{} {
	return m.quit
}

// RunningChanged updates the menu to the new scheduler state.
func (m *Manager) RunningChanged(running bool) {
	m.mu.Lock()
	m.running = running
	m.refreshLocked()
	m.mu.Unlock()
}

// HotkeyChanged updates the displayed toggle key after a rebind.
func (m *Manager) HotkeyChanged(key string) {
	m.mu.Lock()
	m.hotkey = key
	m.refreshLocked()
	m.mu.Unlock()
}

// TotalsChanged refreshes the lifetime statistics line from the session
// ledger. Values arriving before the tray is ready are kept and rendered on
// first draw.
func (m *Manager) TotalsChanged(sessions, clicks, clickedMs int64) {
	m.mu.Lock()
	m.sessions = sessions
	m.totalClicks = clicks
	m.clickedMs = clickedMs
	m.refreshLocked()
	m.mu.Unlock()
}

// TargetPicked reports a completed location pick.
func (m *Manager) TargetPicked(x, y int) {
	m.mu.Lock()
	if m.ready {
		m.mStatus.SetTitle(fmt.Sprintf("Target: %d, %d", x, y))
	}
	m.mu.Unlock()
}

func (m *Manager) onReady() {
	if len(m.iconData) > 0 {
		systray.SetIcon(m.iconData)
	}
	systray.SetTitle("LazyFinger")
	systray.SetTooltip("LazyFinger - Auto Clicker")

	mStatus := systray.AddMenuItem("Idle", "Clicker state")
	mStatus.Disable()
	mStats := systray.AddMenuItem("No sessions recorded", "Lifetime click statistics")
	mStats.Disable()
	mToggle := systray.AddMenuItem("", "Start or stop clicking")
	systray.AddSeparator()
	mRebind := systray.AddMenuItem("Rebind hotkey", "Press any key to set the new toggle hotkey")
	mPick := systray.AddMenuItem("Pick location", "Click anywhere to set the fixed target position")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit LazyFinger")

	m.mu.Lock()
	m.mStatus = mStatus
	m.mToggle = mToggle
	m.mStats = mStats
	m.ready = true
	m.refreshLocked()
	m.mu.Unlock()

	go func() {
		for {
			select {
			case <-mToggle.ClickedCh:
				if m.callbacks.Toggle != nil {
					m.callbacks.Toggle()
				}
			case <-mRebind.ClickedCh:
				if m.callbacks.Rebind != nil {
					m.callbacks.Rebind()
				}
			case <-mPick.ClickedCh:
				if m.callbacks.Pick != nil {
					m.callbacks.Pick()
				}
			case <-mQuit.ClickedCh:
				slog.Info("User requested quit from system tray")
				m.quitOnce.Do(func() { close(m.quit) })
				if m.callbacks.Quit != nil {
					m.callbacks.Quit()
				}
				systray.Quit()
				return
			}
		}
	}()
}

func (m *Manager) onExit() {
	slog.Info("System tray exited")
}

// refreshLocked redraws state-dependent menu titles. Caller holds mu.
func (m *Manager) refreshLocked() {
	if !m.ready {
		return
	}
	key := strings.ToUpper(m.hotkey)
	if m.running {
		m.mStatus.SetTitle("Running")
		m.mToggle.SetTitle(fmt.Sprintf("Stop (%s)", key))
	} else {
		m.mStatus.SetTitle("Idle")
		m.mToggle.SetTitle(fmt.Sprintf("Start (%s)", key))
	}
	if m.sessions > 0 {
		clicked := (time.Duration(m.clickedMs) * time.Millisecond).Round(time.Second)
		m.mStats.SetTitle(fmt.Sprintf("%d clicks in %d sessions (%s)", m.totalClicks, m.sessions, clicked))
	}
}
