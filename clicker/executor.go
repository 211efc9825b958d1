package clicker

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-vgo/robotgo"

	"mdev0bit/lazyfinger/config"
)

// Executor performs one simulated click. Implementations must not fail the
// cycle: a bad fixed position degrades to clicking wherever the pointer is.
type Executor interface {
	Fire(s config.Settings)
	Clicks() int64
}

// robotgoExecutor synthesizes clicks through robotgo.
type robotgoExecutor struct {
	clicks atomic.Int64
}

// NewExecutor returns the native click executor.
func NewExecutor() Executor {
	return &robotgoExecutor{}
}

func (e *robotgoExecutor) Fire(s config.Settings) {
	if s.CursorMode == config.CursorFixed {
		if x, y, ok := parseTarget(s.XPos, s.YPos); ok {
			robotgo.Move(x, y)
		}
		// Unparsable coordinates: click at the current pointer position.
	}

	robotgo.Click(buttonName(s.MouseButton), s.ClickType == config.ClickDouble)
	e.clicks.Add(1)
}

// Clicks reports the number of clicks fired since startup.
func (e *robotgoExecutor) Clicks() int64 {
	return e.clicks.Load()
}

func parseTarget(xs, ys string) (int, int, bool) {
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, false
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}

func buttonName(button string) string {
	switch button {
	case config.ButtonMiddle:
		return "center"
	case config.ButtonRight:
		return "right"
	default:
		return "left"
	}
}
