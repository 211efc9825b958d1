package clicker

import "testing"

func TestParseTarget(t *testing.T) {
	tests := []struct {
		xs, ys string
		x, y   int
		ok     bool
	}{
		{"100", "200", 100, 200, true},
		{" 10 ", " 20 ", 10, 20, true},
		{"-5", "0", -5, 0, true},
		// Unparsable coordinates disable the move; the click then lands
		// wherever the pointer already is.
		{"abc", "200", 0, 0, false},
		{"100", "", 0, 0, false},
		{"", "", 0, 0, false},
		{"12.5", "20", 0, 0, false},
	}

	for _, tt := range tests {
		x, y, ok := parseTarget(tt.xs, tt.ys)
		if x != tt.x || y != tt.y || ok != tt.ok {
			t.Errorf("parseTarget(%q, %q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.xs, tt.ys, x, y, ok, tt.x, tt.y, tt.ok)
		}
	}
}

func TestButtonName(t *testing.T) {
	tests := []struct {
		button string
		want   string
	}{
		{"Left", "left"},
		{"Middle", "center"},
		{"Right", "right"},
		{"", "left"},
		{"bogus", "left"},
	}

	for _, tt := range tests {
		if got := buttonName(tt.button); got != tt.want {
			t.Errorf("buttonName(%q) = %q, want %q", tt.button, got, tt.want)
		}
	}
}
