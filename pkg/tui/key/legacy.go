// ABOUTME: Final-byte tables for CSI and SS3 key sequences and CSI numeric ~ sequences.
// ABOUTME: Keys not listed here decode as a bare Escape.

package key

// csiFinal maps ESC [ <letter> to a key.
var csiFinal = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// ss3Final maps ESC O <letter> to a key.
var ss3Final = map[byte]KeyType{
	'H': KeyHome,
	'F': KeyEnd,
}

// tildeParam maps ESC [ <digit> ~ to a key. Terminals disagree on the
// Home and End codes, so both the vt220 and rxvt variants are accepted.
var tildeParam = map[byte]KeyType{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}
