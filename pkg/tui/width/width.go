// ABOUTME: Display-width measurement and column truncation for row content.
// ABOUTME: Grapheme-aware via uniseg and runewidth; ASCII takes a byte-count fast path.

package width

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cells returns the number of terminal columns b occupies. Control
// characters count as one column each, so a row of ASCII bytes is
// exactly as wide as it is long.
func Cells(b []byte) int {
	if isASCII(b) {
		return len(b)
	}
	w := 0
	state := -1
	for len(b) > 0 {
		var cluster []byte
		cluster, b, _, state = uniseg.FirstGraphemeCluster(b, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// StringCells is Cells for a string.
func StringCells(s string) int {
	return Cells([]byte(s))
}

// Truncate returns the longest prefix of b that fits in cols columns.
// Grapheme clusters are never split, so a wide character that would
// straddle the limit is dropped entirely. The result aliases b.
func Truncate(b []byte, cols int) []byte {
	if cols <= 0 {
		return b[:0]
	}
	if isASCII(b) {
		if len(b) > cols {
			return b[:cols]
		}
		return b
	}

	used, end := 0, 0
	state := -1
	rest := b
	for len(rest) > 0 {
		var cluster []byte
		cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
		w := graphemeWidth(cluster)
		if used+w > cols {
			break
		}
		used += w
		end += len(cluster)
	}
	return b[:end]
}

// isASCII reports whether every byte of b is below 0x80.
func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of a single grapheme cluster,
// taken from its first rune. Control characters and undecodable bytes
// take one column; runewidth reports zero for them.
func graphemeWidth(cluster []byte) int {
	if len(cluster) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRune(cluster)
	if r == utf8.RuneError || unicode.IsControl(r) {
		return 1
	}
	return runewidth.RuneWidth(r)
}
