package editor

// editorMode is the active input state. Exactly one mode handles each key
// event; switching modes is the only way the editor moves between editing
// and modal interaction, so illegal combinations (say, a prompt during a
// quit countdown) cannot exist.
type editorMode interface {
	handleKey(e *Editor, k Key)
}

// normalMode is plain editing.
type normalMode struct{}

// quitConfirmMode counts down the remaining Ctrl-Q presses required to
// discard unsaved changes. Any other key cancels back to normal mode.
type quitConfirmMode struct {
	remaining int
}

func (m *quitConfirmMode) handleKey(e *Editor, k Key) {
	if k == withControlKey('q') {
		m.remaining--
		if m.remaining <= 0 {
			e.quit = true
			return
		}
		e.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", m.remaining)
		return
	}

	// Anything else resets the countdown and is handled normally.
	e.mode = normalMode{}
	e.SetStatusMessage("")
	e.mode.handleKey(e, k)
}
