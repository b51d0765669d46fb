package editor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal owns the terminal device for the lifetime of the process: raw
// mode state, key input, and buffered frame output.
type Terminal struct {
	in    io.Reader
	out   io.Writer
	inFd  int
	outFd int

	originalState *term.State
}

// NewTerminal creates a Terminal bound to stdin/stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

// Enable raw mode for terminal input.
// This allows us to read every input key and positions the cursor freely
func (t *Terminal) EnterRawMode() error {
	if !term.IsTerminal(t.inFd) {
		return errors.New("not running in a terminal")
	}

	var err error
	t.originalState, err = term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enabling terminal raw mode: %w", err)
	}

	// MakeRaw leaves reads fully blocking. Set VMIN=0/VTIME=1 so a read
	// returns after at most a tenth of a second, which lets a lone Escape
	// press be told apart from an escape sequence.
	raw, err := unix.IoctlGetTermios(t.inFd, ioctlReadTermios)
	if err != nil {
		t.Restore()
		return fmt.Errorf("reading terminal attributes: %w", err)
	}
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, raw); err != nil {
		t.Restore()
		return fmt.Errorf("setting read timeout: %w", err)
	}
	return nil
}

// Restore the original terminal state, disabling raw mode.
func (t *Terminal) Restore() {
	if t.originalState != nil {
		term.Restore(t.inFd, t.originalState)
		t.originalState = nil // Prevent multiple restoration attempts
	}
}

// ReadKey blocks until one logical key event is available. Reads that time
// out yield KEY_NONE; escape sequences are decoded into a single key.
func (t *Terminal) ReadKey() (Key, error) {
	buf := make([]byte, 1)
	n, err := t.in.Read(buf)
	if errors.Is(err, io.EOF) || (err == nil && n != 1) {
		// With VMIN=0/VTIME=1 a read that finds no input returns zero
		// bytes, which the os.File reader reports as EOF.
		return KEY_NONE, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading keyboard input: %w", err)
	}

	if buf[0] == '\x1b' {
		return decodeEscape(t.in), nil
	}
	return Key(buf[0]), nil
}

// WindowSize queries the terminal dimensions. If the primary query fails,
// it falls back to parking the cursor at the bottom-right corner and
// reading back the reported position.
func (t *Terminal) WindowSize() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(t.outFd)
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	return t.cursorPositionFallback()
}

func (t *Terminal) cursorPositionFallback() (int, int, error) {
	if err := t.WriteFrame([]byte(CURSOR_BOTTOM_RIGHT + CURSOR_GET_POSITION)); err != nil {
		return 0, 0, err
	}

	// Response arrives as "ESC [ rows ; cols R"
	resp := make([]byte, 0, 32)
	buf := make([]byte, 1)
	for len(resp) < 32 {
		n, err := t.in.Read(buf)
		if err != nil || n != 1 {
			break
		}
		resp = append(resp, buf[0])
		if buf[0] == 'R' {
			break
		}
	}

	var rows, cols int
	if _, err := fmt.Sscanf(string(resp), CURSOR_RESPONSE_FORMAT, &rows, &cols); err != nil {
		return 0, 0, errors.New("querying window size: invalid cursor position report")
	}
	return rows, cols, nil
}

// WriteFrame writes one fully composed frame in as few writes as the device
// allows; it never leaves a frame partially written.
func (t *Terminal) WriteFrame(frame []byte) error {
	for len(frame) > 0 {
		n, err := t.out.Write(frame)
		if err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
		frame = frame[n:]
	}
	return nil
}
