package input

import (
	"log/slog"
	"sync"

	hook "github.com/robotn/gohook"

	"mdev0bit/lazyfinger/config"
)

// Picker captures a single screen coordinate from the next global pointer
// press. It is armed by Begin, fires at most once, then disarms itself;
// Cancel disarms it early with no side effects.
type Picker struct {
	store *config.Store
	log   *slog.Logger

	mu       sync.Mutex
	active   bool
	onPicked func(x, y int)
}

func NewPicker(store *config.Store, log *slog.Logger) *Picker {
	if log == nil {
		log = slog.Default()
	}
	return &Picker{store: store, log: log}
}

// Begin arms the picker. The first pointer press writes its coordinates into
// the store, switches the cursor mode to the fixed position, and calls fn.
func (p *Picker) Begin(fn func(x, y int)) {
	p.mu.Lock()
	p.active = true
	p.onPicked = fn
	p.mu.Unlock()
}

// Cancel disarms the picker if no press has arrived yet.
func (p *Picker) Cancel() {
	p.mu.Lock()
	p.active = false
	p.onPicked = nil
	p.mu.Unlock()
}

// Active reports whether a pick is pending.
func (p *Picker) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *Picker) handleMouseDown(ev hook.Event) {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return
	}
	p.active = false
	fn := p.onPicked
	p.onPicked = nil
	p.mu.Unlock()

	x, y := int(ev.X), int(ev.Y)
	p.store.SetTarget(x, y)
	p.log.Info("Target location picked", "x", x, "y", y)
	if fn != nil {
		fn(x, y)
	}
}
