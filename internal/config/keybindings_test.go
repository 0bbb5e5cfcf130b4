// ABOUTME: Tests for key binding parsing
// ABOUTME: Covers ctrl+letter spellings, single characters, and rejected forms

package config

import "testing"

func TestParseKeyBinding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		binding string
		want    byte
		wantErr bool
	}{
		{binding: "ctrl+q", want: 0x11},
		{binding: "ctrl-q", want: 0x11},
		{binding: "Ctrl+Q", want: 0x11},
		{binding: "C-x", want: 0x18},
		{binding: "^c", want: 0x03},
		{binding: " ctrl+a ", want: 0x01},
		{binding: "q", want: 'q'},
		{binding: "Q", want: 'Q'},
		{binding: "ctrl+", wantErr: true},
		{binding: "ctrl+1", wantErr: true},
		{binding: "ctrl+ab", wantErr: true},
		{binding: "alt+x", wantErr: true},
		{binding: "", wantErr: true},
		{binding: "\t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.binding, func(t *testing.T) {
			t.Parallel()
			got, err := ParseKeyBinding(tt.binding)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseKeyBinding(%q) = %#x, want error", tt.binding, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKeyBinding(%q) unexpected error: %v", tt.binding, err)
			}
			if got != tt.want {
				t.Errorf("ParseKeyBinding(%q) = %#x, want %#x", tt.binding, got, tt.want)
			}
		})
	}
}
