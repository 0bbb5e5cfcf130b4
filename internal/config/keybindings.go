// ABOUTME: Parses key binding strings such as "ctrl+q" or "ctrl-x" into the byte the terminal sends.
// ABOUTME: Only control-letter combinations and single printable characters are accepted.

package config

import (
	"fmt"
	"strings"
)

// ParseKeyBinding converts a binding to the byte a raw-mode terminal
// delivers for it. "ctrl+q" and "ctrl-q" both yield 0x11; a single
// printable character yields itself.
func ParseKeyBinding(binding string) (byte, error) {
	b := strings.ToLower(strings.TrimSpace(binding))

	for _, prefix := range []string{"ctrl+", "ctrl-", "c-", "^"} {
		rest, ok := strings.CutPrefix(b, prefix)
		if !ok {
			continue
		}
		if len(rest) != 1 || rest[0] < 'a' || rest[0] > 'z' {
			return 0, fmt.Errorf("quit_key: %q is not ctrl plus a letter", binding)
		}
		return rest[0] & 0x1f, nil
	}

	if len(binding) == 1 && binding[0] >= 0x20 && binding[0] < 0x7f {
		return binding[0], nil
	}
	return 0, fmt.Errorf("quit_key: unsupported binding %q", binding)
}
