package editor

func (normalMode) handleKey(e *Editor, k Key) {
	switch k {
	case ENTER_KEY:
		e.insertNewline()

	case withControlKey('q'):
		if e.buf.dirty {
			e.mode = &quitConfirmMode{remaining: QUIT_TIMES}
			e.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", QUIT_TIMES)
			return
		}
		e.quit = true

	case withControlKey('s'):
		e.save()

	case withControlKey('f'):
		e.startFind()

	case withControlKey('g'):
		e.showHelp()

	case withControlKey('l'):
		e.redraw()

	case HOME_KEY:
		e.cx = 0

	case END_KEY:
		if e.cy < e.buf.rowCount() {
			e.cx = len(e.buf.rows[e.cy].chars)
		}

	case BACKSPACE, withControlKey('h'):
		e.deleteChar()

	case DELETE_KEY:
		e.moveCursor(ARROW_RIGHT)
		e.deleteChar()

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

	case ARROW_LEFT, ARROW_RIGHT, ARROW_UP, ARROW_DOWN:
		e.moveCursor(k)

	case ESCAPE:
		// Ignored

	default:
		if k == TAB_KEY || (k < 128 && !isControl(byte(k))) {
			e.insertChar(byte(k))
		}
	}
}

// moveCursor moves one step, clamped to valid rows and columns; moving past
// a line edge wraps to the adjacent line.
func (e *Editor) moveCursor(key Key) {
	var r *row
	if e.cy < e.buf.rowCount() {
		r = &e.buf.rows[e.cy]
	}

	switch key {
	case ARROW_LEFT:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.buf.rows[e.cy].chars)
		}
	case ARROW_RIGHT:
		if r != nil && e.cx < len(r.chars) {
			e.cx++
		} else if r != nil && e.cx == len(r.chars) {
			e.cy++
			e.cx = 0
		}
	case ARROW_UP:
		if e.cy != 0 {
			e.cy--
		}
	case ARROW_DOWN:
		if e.cy < e.buf.rowCount() {
			e.cy++
		}
	}

	// Snap cursor to end of line
	rowlen := 0
	if e.cy < e.buf.rowCount() {
		rowlen = len(e.buf.rows[e.cy].chars)
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}
