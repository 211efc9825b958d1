package clicker

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"mdev0bit/lazyfinger/config"
)

// fallbackIntervalMs is used when any interval field fails to parse.
const fallbackIntervalMs = 100

// minInterval is the shortest wait a cycle will ever use.
const minInterval = time.Millisecond

// Wait computes the delay before the next click from the current settings:
// the h/m/s/ms fields summed in milliseconds, floored at 1ms, with a uniform
// random offset in [-jitter, +jitter] applied when enabled. Empty fields
// count as zero; a field that is present but not numeric pushes the whole
// base to 100ms. A malformed jitter magnitude disables the offset.
func Wait(s config.Settings) time.Duration {
	ms := baseMillis(s)

	if s.JitterEnabled {
		if j, ok := parseField(s.JitterMs); ok && j > 0 {
			ms += rand.Intn(2*j+1) - j
		}
	}

	d := time.Duration(ms) * time.Millisecond
	if d < minInterval {
		d = minInterval
	}
	return d
}

// IntervalMillis returns the base interval without jitter, in milliseconds.
func IntervalMillis(s config.Settings) int {
	return baseMillis(s)
}

func baseMillis(s config.Settings) int {
	h, ok := parseField(s.Hours)
	if !ok {
		return fallbackIntervalMs
	}
	m, ok := parseField(s.Minutes)
	if !ok {
		return fallbackIntervalMs
	}
	sec, ok := parseField(s.Seconds)
	if !ok {
		return fallbackIntervalMs
	}
	ms, ok := parseField(s.Milliseconds)
	if !ok {
		return fallbackIntervalMs
	}

	total := h*3600000 + m*60000 + sec*1000 + ms
	if total < 1 {
		total = 1
	}
	return total
}

// parseField reads one numeric text entry. Empty means zero; anything else
// that does not parse reports !ok so the caller can substitute its default.
func parseField(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
