package input

// keyNames maps virtual-key rawcodes reported by the hook to the named-key
// identifiers used in the settings document. Printable keys normally arrive
// with a usable Keychar and never reach this table.
var keyNames = map[uint16]string{
	0x70: "f1", 0x71: "f2", 0x72: "f3", 0x73: "f4",
	0x74: "f5", 0x75: "f6", 0x76: "f7", 0x77: "f8",
	0x78: "f9", 0x79: "f10", 0x7A: "f11", 0x7B: "f12",

	0x20: "space",
	0x0D: "enter",
	0x1B: "esc",
	0x09: "tab",
	0x08: "backspace",
	0x2E: "delete",
	0x2D: "insert",
	0x24: "home",
	0x23: "end",
	0x21: "page_up",
	0x22: "page_down",

	0x25: "left",
	0x26: "up",
	0x27: "right",
	0x28: "down",

	0x10: "shift",
	0x11: "ctrl",
	0x12: "alt",

	// Letters and digits, for hooks that report no key character.
	0x41: "a", 0x42: "b", 0x43: "c", 0x44: "d", 0x45: "e",
	0x46: "f", 0x47: "g", 0x48: "h", 0x49: "i", 0x4A: "j",
	0x4B: "k", 0x4C: "l", 0x4D: "m", 0x4E: "n", 0x4F: "o",
	0x50: "p", 0x51: "q", 0x52: "r", 0x53: "s", 0x54: "t",
	0x55: "u", 0x56: "v", 0x57: "w", 0x58: "x", 0x59: "y",
	0x5A: "z",
	0x30: "0", 0x31: "1", 0x32: "2", 0x33: "3", 0x34: "4",
	0x35: "5", 0x36: "6", 0x37: "7", 0x38: "8", 0x39: "9",
}
