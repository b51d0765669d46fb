package editor

import (
	"io"
	"strings"
	"testing"
)

func TestDecodeEscapeRecognizedSequences(t *testing.T) {
	tests := []struct {
		seq  string
		want Key
	}{
		{"[A", ARROW_UP},
		{"[B", ARROW_DOWN},
		{"[C", ARROW_RIGHT},
		{"[D", ARROW_LEFT},
		{"[H", HOME_KEY},
		{"[F", END_KEY},
		{"[1~", HOME_KEY},
		{"[3~", DELETE_KEY},
		{"[4~", END_KEY},
		{"[5~", PAGE_UP},
		{"[6~", PAGE_DOWN},
		{"[7~", HOME_KEY},
		{"[8~", END_KEY},
		{"OH", HOME_KEY},
		{"OF", END_KEY},
	}

	for _, tt := range tests {
		got := decodeEscape(strings.NewReader(tt.seq))
		if got != tt.want {
			t.Errorf("decodeEscape(ESC %q) = %d, want %d", tt.seq, got, tt.want)
		}
	}
}

func TestDecodeEscapeUnknownSequence(t *testing.T) {
	// Shift-Tab is not in the table and must collapse to a bare escape.
	if got := decodeEscape(strings.NewReader("[Z")); got != ESCAPE {
		t.Errorf("decodeEscape(ESC [Z) = %d, want ESCAPE", got)
	}
}

func TestDecodeEscapeConsumesUnboundSequence(t *testing.T) {
	// The Insert key sequence is recognized but unbound; its trailing '~'
	// must not leak back into the input stream.
	in := strings.NewReader("[2~x")
	if got := decodeEscape(in); got != ESCAPE {
		t.Fatalf("decodeEscape(ESC [2~) = %d, want ESCAPE", got)
	}
	rest, _ := io.ReadAll(in)
	if string(rest) != "x" {
		t.Errorf("remaining input = %q, want %q", rest, "x")
	}
}

func TestDecodeEscapeLonePress(t *testing.T) {
	// A lone Escape press: no further bytes arrive.
	if got := decodeEscape(strings.NewReader("")); got != ESCAPE {
		t.Errorf("decodeEscape with no follow-up = %d, want ESCAPE", got)
	}
}

func TestReadKeyTimedOutReadYieldsSentinel(t *testing.T) {
	// A raw-mode read that times out delivers zero bytes with EOF; that
	// must surface as the no-input sentinel, not as an error.
	term := &Terminal{in: strings.NewReader(""), out: io.Discard}

	key, err := term.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey on timed-out read: %v", err)
	}
	if key != KEY_NONE {
		t.Errorf("ReadKey = %d, want KEY_NONE", key)
	}
}

func TestReadKeyLiteralAndSequence(t *testing.T) {
	term := &Terminal{in: strings.NewReader("a\x1b[5~\x12"), out: io.Discard}

	key, err := term.ReadKey()
	if err != nil || key != 'a' {
		t.Fatalf("ReadKey() = %d, %v; want 'a'", key, err)
	}
	key, err = term.ReadKey()
	if err != nil || key != PAGE_UP {
		t.Fatalf("ReadKey() = %d, %v; want PAGE_UP", key, err)
	}
	key, err = term.ReadKey()
	if err != nil || key != withControlKey('r') {
		t.Fatalf("ReadKey() = %d, %v; want Ctrl-R", key, err)
	}
}
