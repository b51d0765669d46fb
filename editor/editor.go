package editor

import (
	"fmt"
	"time"
)

// Config Constants
const (
	KIRO_VERSION    = "0.1.0"
	TAB_STOP        = 4
	QUIT_TIMES      = 3
	MESSAGE_TIMEOUT = 5 * time.Second
)

// statusMessage is a transient message shown in the message bar until its
// expiry passes.
type statusMessage struct {
	text      string
	expiresAt time.Time
}

// viewState is a restorable snapshot of cursor and viewport, used by modal
// states that must put the view back on cancel.
type viewState struct {
	cx, cy    int
	rowOffset int
	colOffset int
}

// Editor is the single editing context: terminal, buffer, cursor, viewport,
// and the active input mode. It is passed explicitly through every handler;
// there is no package-level editor state.
type Editor struct {
	term *Terminal
	buf  *Buffer

	cx, cy int // cursor position in raw characters
	rx     int // cursor column in rendered characters

	rowOffset int
	colOffset int

	screenRows int
	screenCols int

	statusMessage statusMessage
	mode          editorMode
	quit          bool
}

// New creates an editor with an empty buffer bound to the process terminal.
func New() *Editor {
	return &Editor{
		term: NewTerminal(),
		buf:  &Buffer{},
		mode: normalMode{},
	}
}

// EnterRawMode puts the terminal into raw mode. Callers must pair it with
// RestoreTerminal on every exit path.
func (e *Editor) EnterRawMode() error {
	return e.term.EnterRawMode()
}

// RestoreTerminal leaves raw mode; safe to call more than once.
func (e *Editor) RestoreTerminal() {
	e.term.Restore()
}

// ClearScreen wipes the display, used when handing the terminal back.
func (e *Editor) ClearScreen() {
	e.term.WriteFrame([]byte(CLEAR_SCREEN + CURSOR_HOME))
}

// Init queries the window size and reserves rows for the status and message
// bars. Failure here is fatal for the caller.
func (e *Editor) Init() error {
	rows, cols, err := e.term.WindowSize()
	if err != nil {
		return fmt.Errorf("getting window size: %w", err)
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	return nil
}

// OpenFile loads the named file into the buffer.
func (e *Editor) OpenFile(filename string) error {
	return e.buf.open(filename)
}

// Run is the synchronous event loop: draw a frame, read one key, dispatch
// it to the active mode, repeat until a quit is confirmed.
func (e *Editor) Run() error {
	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-G = help")

	for !e.quit {
		if err := e.RefreshScreen(); err != nil {
			return err
		}

		key, err := e.term.ReadKey()
		if err != nil {
			return err
		}
		if key == KEY_NONE {
			// Timed-out read; redraw so expired messages clear.
			continue
		}

		e.mode.handleKey(e, key)
	}
	return nil
}

func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = statusMessage{
		text:      fmt.Sprintf(format, args...),
		expiresAt: time.Now().Add(MESSAGE_TIMEOUT),
	}
}

func (e *Editor) view() viewState {
	return viewState{cx: e.cx, cy: e.cy, rowOffset: e.rowOffset, colOffset: e.colOffset}
}

func (e *Editor) restoreView(v viewState) {
	e.cx, e.cy = v.cx, v.cy
	e.rowOffset, e.colOffset = v.rowOffset, v.colOffset
}

// redraw re-queries the window size and repaints, for use after a resize.
func (e *Editor) redraw() {
	rows, cols, err := e.term.WindowSize()
	if err != nil {
		e.SetStatusMessage("Warn: %v", err)
		return
	}
	e.screenRows = rows - 2
	e.screenCols = cols
}

/*** editor operations ***/

func (e *Editor) insertChar(c byte) {
	e.buf.insertChar(e.cy, e.cx, c)
	e.cx++
}

func (e *Editor) insertNewline() {
	e.buf.splitRow(e.cy, e.cx)
	e.cy++
	e.cx = 0
}

func (e *Editor) deleteChar() {
	if e.cy == e.buf.rowCount() {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	if e.cx > 0 {
		e.buf.deleteChar(e.cy, e.cx-1)
		e.cx--
	} else {
		e.cx = e.buf.joinRow(e.cy)
		e.cy--
	}
}

func (e *Editor) save() {
	if e.buf.filename == "" {
		e.startSaveAs()
		return
	}

	n, err := e.buf.saveFile()
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	e.SetStatusMessage("%d bytes written to disk", n)
}
