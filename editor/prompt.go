package editor

import "bytes"

type promptKind int

const (
	saveAsPrompt promptKind = iota
	findPrompt
)

// promptMode accumulates a line of input on the message bar. A Find prompt
// additionally carries the incremental search state and the view snapshot
// restored on cancel.
type promptMode struct {
	kind  promptKind
	text  []byte
	saved viewState

	// incremental search state
	lastMatch int
	direction int

	// highlight override to undo on the next search step or on exit
	savedHl     []int
	savedHlLine int
}

func (e *Editor) startSaveAs() {
	e.mode = &promptMode{kind: saveAsPrompt, saved: e.view(), lastMatch: -1, direction: 1}
	e.mode.(*promptMode).updateMessage(e)
}

func (e *Editor) startFind() {
	e.mode = &promptMode{kind: findPrompt, saved: e.view(), lastMatch: -1, direction: 1}
	e.mode.(*promptMode).updateMessage(e)
}

func (m *promptMode) updateMessage(e *Editor) {
	switch m.kind {
	case saveAsPrompt:
		e.SetStatusMessage("Save as: %s (ESC to cancel)", m.text)
	case findPrompt:
		e.SetStatusMessage("Search: %s (Use ESC/Arrows/Enter)", m.text)
	}
}

func (m *promptMode) handleKey(e *Editor, k Key) {
	switch k {
	case DELETE_KEY, BACKSPACE, withControlKey('h'):
		if len(m.text) != 0 {
			m.text = m.text[:len(m.text)-1]
		}

	case ESCAPE:
		m.cancel(e)
		return

	case ENTER_KEY:
		if len(m.text) != 0 {
			m.commit(e)
			return
		}

	default:
		if k < 128 && !isControl(byte(k)) {
			m.text = append(m.text, byte(k))
		}
	}

	if m.kind == findPrompt {
		m.findStep(e, k)
	}
	m.updateMessage(e)
}

// cancel leaves the prompt, restoring the cursor and viewport saved when it
// opened.
func (m *promptMode) cancel(e *Editor) {
	m.restoreMatchHighlight(e)
	if m.kind == findPrompt {
		e.restoreView(m.saved)
	}
	e.SetStatusMessage("")
	e.mode = normalMode{}
}

func (m *promptMode) commit(e *Editor) {
	m.restoreMatchHighlight(e)
	e.SetStatusMessage("")
	e.mode = normalMode{}

	switch m.kind {
	case saveAsPrompt:
		e.buf.filename = string(m.text)
		e.buf.selectSyntax()
		e.save()
	case findPrompt:
		// Cursor stays on the last match.
	}
}

/*** find ***/

// restoreMatchHighlight undoes the temporary match override from the
// previous search step.
func (m *promptMode) restoreMatchHighlight(e *Editor) {
	if m.savedHl == nil {
		return
	}
	copy(e.buf.rows[m.savedHlLine].hl, m.savedHl)
	m.savedHl = nil
}

// findStep runs one incremental search step. Arrow keys repeat the search
// in either direction; any edit to the query restarts from the row the
// prompt opened on. The search wraps over the whole buffer and matches
// within single rows only.
func (m *promptMode) findStep(e *Editor, k Key) {
	m.restoreMatchHighlight(e)

	switch k {
	case ARROW_RIGHT, ARROW_DOWN:
		m.direction = 1
	case ARROW_LEFT, ARROW_UP:
		m.direction = -1
	default:
		m.lastMatch = -1
		m.direction = 1
	}

	if len(m.text) == 0 {
		return
	}
	if m.lastMatch == -1 {
		m.direction = 1
	}

	current := m.lastMatch
	if current == -1 {
		// Start scanning at the row the cursor was on when the prompt
		// opened, so the first hit is the first forward match from there.
		current = min(m.saved.cy, e.buf.rowCount()) - 1
	}

	for n := 0; n < e.buf.rowCount(); n++ {
		current += m.direction
		if current == -1 {
			current = e.buf.rowCount() - 1
		} else if current == e.buf.rowCount() {
			current = 0
		}

		r := &e.buf.rows[current]
		match := bytes.Index(r.render, m.text)
		if match == -1 {
			continue
		}

		m.lastMatch = current
		e.cy = current
		e.cx = r.rxToCx(match)
		// Force scroll to bring the match fully into view.
		e.rowOffset = e.buf.rowCount()

		m.savedHlLine = current
		m.savedHl = make([]int, len(r.hl))
		copy(m.savedHl, r.hl)
		for j := match; j < match+len(m.text) && j < len(r.hl); j++ {
			r.hl[j] = HL_MATCH
		}
		break
	}
}
