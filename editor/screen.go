package editor

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

/*** append buffer ***/

// appendBuffer accumulates one whole frame so the terminal sees a single
// write per refresh.
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendString(s string) {
	ab.b = append(ab.b, s...)
}

/*** output ***/

// scroll shifts the viewport by the minimum needed to keep the cursor's
// rendered position visible.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < e.buf.rowCount() {
		e.rx = e.buf.rows[e.cy].cxToRx(e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}

	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}

func (e *Editor) drawRows(abuf *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowOffset
		if filerow >= e.buf.rowCount() {
			if e.buf.rowCount() == 0 && y == e.screenRows/3 {
				welcome := "KIRO editor -- version " + KIRO_VERSION
				welcomelen := min(len(welcome), e.screenCols)
				padding := (e.screenCols - welcomelen) / 2
				if padding > 0 {
					abuf.appendString("~")
					padding--
				}
				for n := 0; n < padding; n++ {
					abuf.appendString(" ")
				}
				abuf.appendString(welcome[:welcomelen])
			} else {
				abuf.appendString("~")
			}
		} else {
			e.drawRow(abuf, &e.buf.rows[filerow])
		}

		abuf.appendString(CLEAR_LINE)
		abuf.appendString("\r\n")
	}
}

// drawRow emits the visible slice of one rendered row, switching SGR codes
// only where the highlight class changes.
func (e *Editor) drawRow(abuf *appendBuffer, r *row) {
	lineLen := min(max(len(r.render)-e.colOffset, 0), e.screenCols)
	start := e.colOffset
	currentColor := -1
	currentStyle := 0

	for j := 0; j < lineLen; j++ {
		c := r.render[start+j]
		h := r.hl[start+j]

		if isControl(c) {
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			abuf.appendString(COLORS_INVERT)
			abuf.append([]byte{sym})
			abuf.appendString(COLORS_RESET)
			// COLORS_RESET wiped any active color
			if currentColor != -1 {
				abuf.append(fmt.Appendf(nil, "\x1b[%dm", currentColor))
			}
			continue
		}

		color, style := syntaxToGraphics(h)

		if currentStyle != style {
			if resetCode := getStyleResetCode(currentStyle); resetCode != 0 {
				abuf.append(fmt.Appendf(nil, "\x1b[%dm", resetCode))
			}
			if style != 0 {
				abuf.append(fmt.Appendf(nil, "\x1b[%dm", style))
			}
			currentStyle = style
		}
		if currentColor != color {
			abuf.append(fmt.Appendf(nil, "\x1b[%dm", color))
			currentColor = color
		}
		abuf.append([]byte{c})
	}

	// Return to defaults at end of line
	if currentColor != -1 && currentColor != ANSI_COLOR_DEFAULT {
		abuf.append(fmt.Appendf(nil, "\x1b[%dm", ANSI_COLOR_DEFAULT))
	}
	if resetCode := getStyleResetCode(currentStyle); resetCode != 0 {
		abuf.append(fmt.Appendf(nil, "\x1b[%dm", resetCode))
	}
}

func (e *Editor) drawStatusBar(abuf *appendBuffer) {
	abuf.appendString(COLORS_INVERT)

	filename := "[No Name]"
	if e.buf.filename != "" {
		filename = runewidth.Truncate(e.buf.filename, 20, "")
	}
	dirtyFlag := ""
	if e.buf.dirty {
		dirtyFlag = "(modified)"
	}
	status := fmt.Sprintf("%s - %d lines %s", filename, e.buf.rowCount(), dirtyFlag)

	filetype := "no ft"
	if e.buf.syntax != nil {
		filetype = e.buf.syntax.filetype
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, e.buf.rowCount())

	status = runewidth.Truncate(status, e.screenCols, "")
	statusLen := runewidth.StringWidth(status)
	rstatusLen := runewidth.StringWidth(rstatus)
	abuf.appendString(status)

	for statusLen < e.screenCols {
		if e.screenCols-statusLen == rstatusLen {
			abuf.appendString(rstatus)
			break
		}
		abuf.appendString(" ")
		statusLen++
	}

	abuf.appendString(COLORS_RESET)
	abuf.appendString("\r\n")
}

func (e *Editor) drawMessageBar(abuf *appendBuffer) {
	abuf.appendString(CLEAR_LINE)
	if time.Now().Before(e.statusMessage.expiresAt) {
		abuf.appendString(runewidth.Truncate(e.statusMessage.text, e.screenCols, ""))
	}
}

// RefreshScreen composes one complete frame and hands it to the terminal in
// a single write: content rows, status bar, message bar, then the cursor
// placed at its document position.
func (e *Editor) RefreshScreen() error {
	e.scroll()

	var abuf appendBuffer

	abuf.appendString(CURSOR_HIDE)
	abuf.appendString(CURSOR_HOME)

	e.drawRows(&abuf)
	e.drawStatusBar(&abuf)
	e.drawMessageBar(&abuf)

	abuf.append(fmt.Appendf(nil, CURSOR_POSITION_FORMAT, e.cy-e.rowOffset+1, e.rx-e.colOffset+1))
	abuf.appendString(CURSOR_SHOW)

	return e.term.WriteFrame(abuf.b)
}
