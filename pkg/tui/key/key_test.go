// ABOUTME: Table-driven tests for ParseKey covering literal bytes, control chars, and escape sequences.
// ABOUTME: Validates CSI, SS3 and numeric ~ forms, bare Escape fallbacks, and Key.String.

package key

import "testing"

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Key
	}{
		// Literal bytes
		{name: "lowercase a", data: "a", want: Char('a')},
		{name: "uppercase A", data: "A", want: Char('A')},
		{name: "digit 5", data: "5", want: Char('5')},
		{name: "tilde", data: "~", want: Char('~')},
		{name: "bracket", data: "[", want: Char('[')},
		{name: "enter", data: "\r", want: Char('\r')},
		{name: "backspace", data: "\x7f", want: Char(0x7f)},
		{name: "ctrl+q", data: "\x11", want: Char(Ctrl('q'))},
		{name: "high byte", data: "\xc3", want: Char(0xc3)},
		{name: "only first key decoded", data: "ab", want: Char('a')},

		// Escape alone or cut short
		{name: "escape", data: "\x1b", want: Key{Type: KeyEscape}},
		{name: "escape bracket", data: "\x1b[", want: Key{Type: KeyEscape}},
		{name: "escape bracket digit", data: "\x1b[5", want: Key{Type: KeyEscape}},
		{name: "escape O", data: "\x1bO", want: Key{Type: KeyEscape}},

		// CSI letters
		{name: "arrow up", data: "\x1b[A", want: Key{Type: KeyUp}},
		{name: "arrow down", data: "\x1b[B", want: Key{Type: KeyDown}},
		{name: "arrow right", data: "\x1b[C", want: Key{Type: KeyRight}},
		{name: "arrow left", data: "\x1b[D", want: Key{Type: KeyLeft}},
		{name: "home", data: "\x1b[H", want: Key{Type: KeyHome}},
		{name: "end", data: "\x1b[F", want: Key{Type: KeyEnd}},

		// CSI digit ~
		{name: "home 1~", data: "\x1b[1~", want: Key{Type: KeyHome}},
		{name: "delete", data: "\x1b[3~", want: Key{Type: KeyDelete}},
		{name: "end 4~", data: "\x1b[4~", want: Key{Type: KeyEnd}},
		{name: "page up", data: "\x1b[5~", want: Key{Type: KeyPageUp}},
		{name: "page down", data: "\x1b[6~", want: Key{Type: KeyPageDown}},
		{name: "home 7~", data: "\x1b[7~", want: Key{Type: KeyHome}},
		{name: "end 8~", data: "\x1b[8~", want: Key{Type: KeyEnd}},

		// SS3
		{name: "SS3 home", data: "\x1bOH", want: Key{Type: KeyHome}},
		{name: "SS3 end", data: "\x1bOF", want: Key{Type: KeyEnd}},

		// Unrecognised sequences
		{name: "insert 2~", data: "\x1b[2~", want: Key{Type: KeyEscape}},
		{name: "digit without tilde", data: "\x1b[5A", want: Key{Type: KeyEscape}},
		{name: "unknown CSI letter", data: "\x1b[Z", want: Key{Type: KeyEscape}},
		{name: "SS3 arrow", data: "\x1bOA", want: Key{Type: KeyEscape}},
		{name: "alt letter", data: "\x1bxy", want: Key{Type: KeyEscape}},
		{name: "CSI punctuation", data: "\x1b[;", want: Key{Type: KeyEscape}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseKey(tt.data)
			if err != nil {
				t.Fatalf("ParseKey(%q) unexpected error: %v", tt.data, err)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestParseKey_Empty(t *testing.T) {
	t.Parallel()

	if _, err := ParseKey(""); err == nil {
		t.Error("ParseKey(\"\") should fail")
	}
}

func TestParseKey_ArrowDistinctFromLetter(t *testing.T) {
	t.Parallel()

	arrow, _ := ParseKey("\x1b[A")
	letter, _ := ParseKey("A")
	if arrow == letter {
		t.Fatalf("ESC [ A and A decoded to the same key %v", arrow)
	}
	if arrow.Type == KeyChar {
		t.Errorf("ESC [ A decoded as a literal character")
	}
}

func TestCtrl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c    byte
		want byte
	}{
		{'q', 0x11},
		{'Q', 0x11},
		{'a', 0x01},
		{'s', 0x13},
	}
	for _, tt := range tests {
		if got := Ctrl(tt.c); got != tt.want {
			t.Errorf("Ctrl(%q) = %#x, want %#x", tt.c, got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  Key
		want string
	}{
		{name: "char a", key: Char('a'), want: "a"},
		{name: "ctrl+q", key: Char(0x11), want: "Ctrl+Q"},
		{name: "enter", key: Char('\r'), want: "Ctrl+M"},
		{name: "backspace", key: Char(0x7f), want: "Backspace"},
		{name: "high byte", key: Char(0xe9), want: "0xe9"},
		{name: "arrow up", key: Key{Type: KeyUp}, want: "Up"},
		{name: "page down", key: Key{Type: KeyPageDown}, want: "PageDown"},
		{name: "escape", key: Key{Type: KeyEscape}, want: "Escape"},
		{name: "unknown", key: Key{Type: KeyType(99)}, want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
