package editor

// helpMode displays a read-only key reference in place of the buffer. The
// real buffer and view come back untouched on exit.
type helpMode struct {
	prevBuf  *Buffer
	prevView viewState
}

var helpContent = []string{
	"=== KIRO HELP ===",
	"",
	"NAVIGATION:",
	"  Arrow Keys       - Move cursor",
	"  Page Up/Down     - Scroll by page",
	"  Home/End         - Move to line start/end",
	"",
	"EDITING:",
	"  Ctrl+S           - Save file",
	"  Ctrl+Q           - Quit (with confirmation if unsaved)",
	"  Delete/Backspace - Delete characters",
	"",
	"SEARCH:",
	"  Ctrl+F           - Find text",
	"  Arrow Keys       - Navigate search results",
	"  Escape           - Cancel search",
	"",
	"OTHER:",
	"  Ctrl+G           - Show this help",
	"  Ctrl+L           - Redraw screen",
	"",
	"About KIRO:",
	"  Version: " + KIRO_VERSION,
	"  A simple terminal-based text editor written in Go",
	"",
	"Press 'q' or Escape to close this help screen.",
}

func (e *Editor) showHelp() {
	help := &Buffer{}
	for _, line := range helpContent {
		help.appendRow([]byte(line))
	}
	help.dirty = false

	e.mode = &helpMode{prevBuf: e.buf, prevView: e.view()}
	e.buf = help
	e.restoreView(viewState{})
	e.SetStatusMessage("Help Screen - Use Arrow Keys to scroll, 'q' or Escape to exit")
}

func (m *helpMode) handleKey(e *Editor, k Key) {
	switch k {
	case 'q', 'Q', ESCAPE, withControlKey('g'):
		e.buf = m.prevBuf
		e.restoreView(m.prevView)
		e.mode = normalMode{}
		e.SetStatusMessage("Returned to editor")

	case ARROW_UP, ARROW_DOWN, PAGE_UP, PAGE_DOWN, HOME_KEY, END_KEY:
		switch k {
		case PAGE_UP:
			e.cy = e.rowOffset
			for n := 0; n < e.screenRows; n++ {
				e.moveCursor(ARROW_UP)
			}
		case PAGE_DOWN:
			e.cy = min(e.rowOffset+e.screenRows-1, e.buf.rowCount())
			for n := 0; n < e.screenRows; n++ {
				e.moveCursor(ARROW_DOWN)
			}
		case HOME_KEY:
			e.cy = 0
			e.rowOffset = 0
		case END_KEY:
			e.cy = e.buf.rowCount()
		default:
			e.moveCursor(k)
		}
	}
}
