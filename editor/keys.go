package editor

import (
	"io"
	"strings"
)

// Key is one logical key event delivered by the terminal driver. Values
// below 128 are the literal input byte; special keys live above that range.
type Key int

const (
	// KEY_NONE is returned when a read times out without input.
	KEY_NONE  Key = -1
	ENTER_KEY Key = '\r'
	TAB_KEY   Key = '\t'
	ESCAPE    Key = '\x1b'
	BACKSPACE Key = 127 // ASCII backspace
)

const (
	ARROW_LEFT Key = iota + 1000
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
)

// Convert a character to its control key equivalent
func withControlKey(c byte) Key {
	return Key(c & 0x1f) // 0x1f is 31 in decimal, which is the control character range
}

// Check if the byte is a control character
func isControl(c byte) bool {
	return c < 32 || c == 127
}

// Check if the byte is a digit character
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// escSequences maps the bytes following an ESC to the logical key they
// stand for. The decoder feeds pending bytes through this table; a pending
// sequence that is no longer a prefix of any entry is discarded.
var escSequences = map[string]Key{
	"[A": ARROW_UP,
	"[B": ARROW_DOWN,
	"[C": ARROW_RIGHT,
	"[D": ARROW_LEFT,
	"[H": HOME_KEY,
	"[F": END_KEY,

	"[1~": HOME_KEY,
	"[3~": DELETE_KEY,
	"[4~": END_KEY,
	"[5~": PAGE_UP,
	"[6~": PAGE_DOWN,
	"[7~": HOME_KEY,
	"[8~": END_KEY,

	"OH": HOME_KEY,
	"OF": END_KEY,

	// Recognized but unbound, so their trailing bytes are consumed
	// instead of leaking into the input stream.
	"[2~": ESCAPE,
}

// isEscPrefix reports whether pending could still grow into a recognized
// escape sequence.
func isEscPrefix(pending []byte) bool {
	for seq := range escSequences {
		if strings.HasPrefix(seq, string(pending)) {
			return true
		}
	}
	return false
}

// decodeEscape reads the remainder of an escape sequence from r, one byte
// at a time, and maps it to a logical key. A timed-out read, an
// unrecognized sequence, or a lone ESC press all collapse to ESCAPE.
func decodeEscape(r io.Reader) Key {
	pending := make([]byte, 0, 4)
	buf := make([]byte, 1)

	for {
		n, err := r.Read(buf)
		if n != 1 || err != nil {
			return ESCAPE
		}
		pending = append(pending, buf[0])

		if key, ok := escSequences[string(pending)]; ok {
			return key
		}
		if !isEscPrefix(pending) {
			return ESCAPE
		}
	}
}
