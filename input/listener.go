// Package input runs the process-wide global input hook and routes its
// events: key presses to the hotkey state machine, pointer presses to the
// location picker. gohook supports a single hook per process, so both
// consumers share one event stream.
package input

import (
	"log/slog"
	"sync"

	hook "github.com/robotn/gohook"
)

// Listener owns the global hook lifecycle.
type Listener struct {
	log    *slog.Logger
	hotkey *Hotkey
	picker *Picker

	startOnce sync.Once
	endOnce   sync.Once
	done      chan struct{}
}

// NewListener wires the hook stream to the given consumers.
func NewListener(hotkey *Hotkey, picker *Picker, log *slog.Logger) *Listener {
	if log == nil {
		log = slog.Default()
	}
	return &Listener{
		log:    log,
		hotkey: hotkey,
		picker: picker,
		done:   make(chan struct{}),
	}
}

// Start installs the global hook and begins dispatching in the background.
// A hook that cannot be installed only disables the listeners; the click
// cycle is unaffected.
func (l *Listener) Start() {
	l.startOnce.Do(func() {
		events := hook.Start()
		go l.loop(events)
	})
}

// Close tears the hook down. It never blocks on the dispatch goroutine.
func (l *Listener) Close() {
	l.endOnce.Do(hook.End)
}

// Done is closed once the event stream has drained.
func (l *Listener) Done() <-chan struct{} {
	return l.done
}

func (l *Listener) loop(events chan hook.Event) {
	defer close(l.done)

	for ev := range events {
		l.dispatch(ev)
	}
	l.log.Debug("Global input hook stopped")
}

func (l *Listener) dispatch(ev hook.Event) {
	switch ev.Kind {
	case hook.KeyDown:
		if l.hotkey != nil {
			l.hotkey.handleKeyDown(ev)
		}
	case hook.MouseDown:
		if l.picker != nil {
			l.picker.handleMouseDown(ev)
		}
	}
}
