package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func startFindOn(t *testing.T, lines ...string) *Editor {
	t.Helper()
	e := newTestEditor()
	loadLines(t, e, lines...)
	press(e, withControlKey('f'))
	if _, ok := e.mode.(*promptMode); !ok {
		t.Fatalf("mode = %T, want find prompt", e.mode)
	}
	return e
}

func TestFindMovesToFirstForwardMatch(t *testing.T) {
	e := startFindOn(t, "xx find xx", "yy", "find again")

	typeString(e, "find")

	if e.cy != 0 || e.cx != 3 {
		t.Errorf("cursor = (%d, %d), want (0, 3)", e.cy, e.cx)
	}
	for j := 3; j < 7; j++ {
		if e.buf.rows[0].hl[j] != HL_MATCH {
			t.Errorf("hl[%d] = %d, want HL_MATCH", j, e.buf.rows[0].hl[j])
		}
	}
}

func TestFindArrowAdvancesAndWraps(t *testing.T) {
	e := startFindOn(t, "xx find xx", "yy", "find again")
	typeString(e, "find")

	press(e, ARROW_RIGHT)
	if e.cy != 2 || e.cx != 0 {
		t.Errorf("cursor = (%d, %d), want next match at (2, 0)", e.cy, e.cx)
	}

	press(e, ARROW_RIGHT)
	if e.cy != 0 || e.cx != 3 {
		t.Errorf("cursor = (%d, %d), want wrap back to (0, 3)", e.cy, e.cx)
	}
}

func TestFindArrowSearchesBackward(t *testing.T) {
	e := startFindOn(t, "xx find xx", "yy", "find again")
	typeString(e, "find")

	press(e, ARROW_LEFT)
	if e.cy != 2 || e.cx != 0 {
		t.Errorf("cursor = (%d, %d), want previous match at (2, 0)", e.cy, e.cx)
	}
}

func TestFindEscapeRestoresViewAndHighlight(t *testing.T) {
	e := startFindOn(t, "xx find xx", "yy", "find again")
	before := e.view()
	typeString(e, "find")

	press(e, ESCAPE)

	if _, ok := e.mode.(normalMode); !ok {
		t.Fatalf("mode = %T, want normal mode after cancel", e.mode)
	}
	if e.view() != before {
		t.Errorf("view = %+v, want restored %+v", e.view(), before)
	}
	for j, h := range e.buf.rows[0].hl {
		if h != HL_NORMAL {
			t.Errorf("hl[%d] = %d, match highlight must be undone", j, h)
		}
	}
}

func TestFindEnterKeepsCursorOnMatch(t *testing.T) {
	e := startFindOn(t, "aaa", "needle here")
	typeString(e, "needle")

	press(e, ENTER_KEY)

	if _, ok := e.mode.(normalMode); !ok {
		t.Fatalf("mode = %T, want normal mode after commit", e.mode)
	}
	if e.cy != 1 || e.cx != 0 {
		t.Errorf("cursor = (%d, %d), want left on the match", e.cy, e.cx)
	}
	for j, h := range e.buf.rows[1].hl {
		if h != HL_NORMAL {
			t.Errorf("hl[%d] = %d, match highlight must be undone on commit", j, h)
		}
	}
}

func TestFindNoMatchLeavesCursor(t *testing.T) {
	e := startFindOn(t, "alpha", "beta")

	typeString(e, "zzz")

	if e.cy != 0 || e.cx != 0 {
		t.Errorf("cursor = (%d, %d), want unchanged on miss", e.cy, e.cx)
	}
}

func TestFindSearchesRenderedText(t *testing.T) {
	// The query matches against the tab-expanded render; the cursor lands
	// on the corresponding raw column.
	e := startFindOn(t, "\tword")

	typeString(e, "word")

	if e.cy != 0 || e.cx != 1 {
		t.Errorf("cursor = (%d, %d), want raw column 1 after the tab", e.cy, e.cx)
	}
}

func TestFindBackspaceEditsQuery(t *testing.T) {
	e := startFindOn(t, "ab", "ac")

	typeString(e, "ac")
	if e.cy != 1 {
		t.Fatalf("cy = %d, want 1 for query %q", e.cy, "ac")
	}

	press(e, BACKSPACE)
	press(e, Key('b'))
	if e.cy != 0 {
		t.Errorf("cy = %d, want 0 after editing query to %q", e.cy, "ab")
	}
}

func TestSaveWithoutFilenamePrompts(t *testing.T) {
	e := newTestEditor()
	typeString(e, "data")

	press(e, withControlKey('s'))

	m, ok := e.mode.(*promptMode)
	if !ok || m.kind != saveAsPrompt {
		t.Fatalf("mode = %T, want save-as prompt for an unnamed buffer", e.mode)
	}

	path := filepath.Join(t.TempDir(), "note.txt")
	typeString(e, path)
	press(e, ENTER_KEY)

	if _, ok := e.mode.(normalMode); !ok {
		t.Fatalf("mode = %T, want normal mode after save", e.mode)
	}
	if e.buf.filename != path {
		t.Errorf("filename = %q, want %q", e.buf.filename, path)
	}
	if e.buf.dirty {
		t.Error("successful save must clear the dirty flag")
	}
	if !strings.Contains(e.statusMessage.text, "bytes written to disk") {
		t.Errorf("status = %q, want byte count confirmation", e.statusMessage.text)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "data\n" {
		t.Errorf("file content = %q, want %q", data, "data\n")
	}
}

func TestSaveAsEscapeCancelsWithoutWriting(t *testing.T) {
	e := newTestEditor()
	typeString(e, "data")
	press(e, withControlKey('s'))

	typeString(e, "ignored.txt")
	press(e, ESCAPE)

	if _, ok := e.mode.(normalMode); !ok {
		t.Fatalf("mode = %T, want normal mode after cancel", e.mode)
	}
	if e.buf.filename != "" {
		t.Errorf("filename = %q, cancelled prompt must not name the buffer", e.buf.filename)
	}
	if !e.buf.dirty {
		t.Error("cancelled save must leave the buffer dirty")
	}
}

func TestSaveAsSelectsSyntaxProfile(t *testing.T) {
	e := newTestEditor()
	typeString(e, "package main")
	press(e, withControlKey('s'))

	typeString(e, filepath.Join(t.TempDir(), "main.go"))
	press(e, ENTER_KEY)

	if e.buf.syntax == nil || e.buf.syntax.filetype != "go" {
		t.Fatalf("syntax = %v, want go profile after naming the file", e.buf.syntax)
	}
}
