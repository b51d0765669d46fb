package editor

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
)

// Buffer owns the ordered rows of the edited document along with the dirty
// flag, the associated file path, and the detected syntax profile.
type Buffer struct {
	rows     []row
	dirty    bool
	filename string
	syntax   *editorSyntax
}

func (b *Buffer) rowCount() int {
	return len(b.rows)
}

// updateRow regenerates the rendered and highlight forms of the row at the
// given index, propagating multi-line comment state forward as needed.
func (b *Buffer) updateRow(at int) {
	b.rows[at].updateRender()
	b.updateSyntaxFrom(at)
}

func (b *Buffer) insertRow(at int, chars []byte) {
	if at < 0 || at > len(b.rows) {
		return
	}
	b.rows = slices.Insert(b.rows, at, row{chars: slices.Clone(chars)})
	b.updateRow(at)
	b.dirty = true
}

// deleteRow removes the row at the given index. Deleting the virtual row
// past end-of-file is a no-op.
func (b *Buffer) deleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = slices.Delete(b.rows, at, at+1)
	if at < len(b.rows) {
		// The removed row carried lexer state into its successor.
		b.updateSyntaxFrom(at)
	}
	b.dirty = true
}

func (b *Buffer) appendRow(chars []byte) {
	b.insertRow(len(b.rows), chars)
}

// insertChar inserts one character at (cy, cx). Inserting on the virtual
// row past end-of-file first appends an empty row.
func (b *Buffer) insertChar(cy, cx int, c byte) {
	if cy == len(b.rows) {
		b.insertRow(len(b.rows), nil)
	}
	b.rows[cy].insertChar(cx, c)
	b.updateRow(cy)
	b.dirty = true
}

func (b *Buffer) deleteChar(cy, cx int) {
	if cy < 0 || cy >= len(b.rows) {
		return
	}
	b.rows[cy].deleteChar(cx)
	b.updateRow(cy)
	b.dirty = true
}

// splitRow splits the row at cx into two rows; no characters are gained or
// lost.
func (b *Buffer) splitRow(cy, cx int) {
	if cx == 0 {
		b.insertRow(cy, nil)
		return
	}
	r := &b.rows[cy]
	remaining := slices.Clone(r.chars[cx:])
	r.chars = r.chars[:cx]
	b.updateRow(cy)
	b.insertRow(cy+1, remaining)
	b.dirty = true
}

// joinRow appends the row at cy onto the previous row and removes it,
// returning the column of the join point in the merged row.
func (b *Buffer) joinRow(cy int) int {
	if cy <= 0 || cy >= len(b.rows) {
		return 0
	}
	prev := &b.rows[cy-1]
	joinAt := len(prev.chars)
	prev.appendChars(b.rows[cy].chars)
	b.updateRow(cy - 1)
	b.deleteRow(cy)
	return joinAt
}

// contents serializes all rows joined by newlines, with a single trailing
// newline for the whole file.
func (b *Buffer) contents() []byte {
	total := 0
	for _, r := range b.rows {
		total += len(r.chars) + 1
	}

	var buf bytes.Buffer
	buf.Grow(total)
	for _, r := range b.rows {
		buf.Write(r.chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// load replaces the buffer rows with the lines read from r, split at
// newline boundaries.
func (b *Buffer) load(r io.Reader) error {
	b.rows = nil

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		// Remove trailing newlines and carriage returns
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		b.appendRow(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	b.dirty = false
	return nil
}

// open reads the named file into the buffer and selects its syntax profile.
func (b *Buffer) open(filename string) error {
	b.filename = filename
	b.selectSyntax()

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("could not open file '%s': %w", filename, err)
	}
	defer file.Close()

	return b.load(file)
}

// saveFile writes the serialized buffer back to its file and reports the
// byte count. The dirty flag clears only on full success.
func (b *Buffer) saveFile() (int, error) {
	buf := b.contents()

	file, err := os.OpenFile(b.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	if err := file.Truncate(int64(len(buf))); err != nil {
		return 0, err
	}
	n, err := file.Write(buf)
	if err != nil {
		return n, err
	}
	if n != len(buf) {
		return n, fmt.Errorf("partial write: %d/%d bytes", n, len(buf))
	}

	b.dirty = false
	return n, nil
}
