package editor

import (
	"bytes"
	"strings"
)

// Syntax highlighting types
const (
	HL_NORMAL = iota
	HL_COMMENT
	HL_MLCOMMENT
	HL_KEYWORD1
	HL_KEYWORD2
	HL_STRING
	HL_NUMBER
	HL_MATCH
)

// Syntax highlighting flags
const (
	HL_HIGHLIGHT_NUMBERS = 1 << 0
	HL_HIGHLIGHT_STRINGS = 1 << 1
)

type editorSyntax struct {
	filetype               string
	filematch              []string
	keywords               []string // '|' suffix marks a keyword2 entry
	singlelineCommentStart string
	multilineCommentStart  string
	multilineCommentEnd    string
	flags                  int
}

var HLDB_ENTRIES = []editorSyntax{
	{
		filetype:  "c",
		filematch: []string{".c", ".h", ".cpp"},
		keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|"},
		singlelineCommentStart: "//",
		multilineCommentStart:  "/*",
		multilineCommentEnd:    "*/",
		flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
	{
		filetype:  "go",
		filematch: []string{".go", ".mod", ".sum"},
		keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "go", "goto", "if", "import", "map", "package",
			"range", "return", "select", "struct", "switch", "type", "var",
			"func|", "interface|"},
		singlelineCommentStart: "//",
		multilineCommentStart:  "/*",
		multilineCommentEnd:    "*/",
		flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
}

// Check if the character is a separator (whitespace, null, or punctuation)
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return bytes.IndexByte([]byte(",.()+-/*=~%<>[];"), c) != -1
}

// selectSyntax picks the highlight profile matching the buffer's filename
// and re-highlights every row, so a rename away from a matched profile
// also drops the old highlighting. Unmatched files get no highlighting.
func (b *Buffer) selectSyntax() {
	b.syntax = matchSyntaxProfile(b.filename)

	// A profile change invalidates every row, not just the ones a
	// comment-state change would reach, so sweep the whole buffer.
	for i := range b.rows {
		b.scanRowSyntax(i)
	}
}

func matchSyntaxProfile(filename string) *editorSyntax {
	if filename == "" {
		return nil
	}

	var ext string
	if lastDot := strings.LastIndex(filename, "."); lastDot != -1 {
		ext = filename[lastDot:]
	}

	for j := range HLDB_ENTRIES {
		s := &HLDB_ENTRIES[j]
		for _, pattern := range s.filematch {
			isExt := pattern[0] == '.'
			if (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(filename, pattern)) {
				return s
			}
		}
	}
	return nil
}

// updateSyntaxFrom re-highlights rows starting at the given index and keeps
// going only while a row's exit comment state changed, bounding the worst
// case to one pass over the buffer.
func (b *Buffer) updateSyntaxFrom(at int) {
	for i := at; i < len(b.rows); i++ {
		if !b.scanRowSyntax(i) && i > at {
			break
		}
	}
}

// scanRowSyntax assigns one highlight class per rendered byte of the row at
// the given index, carrying the previous row's open-comment flag in. It
// reports whether the row's own open-comment exit state changed.
func (b *Buffer) scanRowSyntax(at int) bool {
	r := &b.rows[at]
	r.hl = make([]int, len(r.render))

	if b.syntax == nil {
		changed := r.hlOpenComment
		r.hlOpenComment = false
		return changed
	}

	keywords := b.syntax.keywords
	scs := b.syntax.singlelineCommentStart
	mcs := b.syntax.multilineCommentStart
	mce := b.syntax.multilineCommentEnd

	prevSep := true
	var inString byte
	inComment := at > 0 && b.rows[at-1].hlOpenComment

	for i := 0; i < len(r.render); {
		c := r.render[i]
		prevHl := HL_NORMAL
		if i > 0 {
			prevHl = r.hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(r.render[i:], []byte(scs)) {
				for j := i; j < len(r.render); j++ {
					r.hl[j] = HL_COMMENT
				}
				break
			}
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				r.hl[i] = HL_MLCOMMENT
				if bytes.HasPrefix(r.render[i:], []byte(mce)) {
					for j := 0; j < len(mce) && i+j < len(r.render); j++ {
						r.hl[i+j] = HL_MLCOMMENT
					}
					inComment = false
					i += len(mce)
					continue
				}
				i++ // Continue in the multiline comment
				continue
			} else if bytes.HasPrefix(r.render[i:], []byte(mcs)) {
				for j := 0; j < len(mcs) && i+j < len(r.render); j++ {
					r.hl[i+j] = HL_MLCOMMENT
				}
				inComment = true
				i += len(mcs)
				continue
			}
		}

		if b.syntax.flags&HL_HIGHLIGHT_STRINGS != 0 {
			if inString != 0 {
				r.hl[i] = HL_STRING
				if c == '\\' && i+1 < len(r.render) {
					r.hl[i+1] = HL_STRING
					i += 2
					continue
				}
				if c == inString {
					inString = 0 // End of string
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				r.hl[i] = HL_STRING
				i++
				continue
			}
		}

		if b.syntax.flags&HL_HIGHLIGHT_NUMBERS != 0 {
			if (isDigit(c) && (prevSep || prevHl == HL_NUMBER)) || (c == '.' && prevHl == HL_NUMBER) {
				r.hl[i] = HL_NUMBER
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			// we entered a new word
			j := 0
			for j < len(keywords) {
				kw := keywords[j]
				hl := HL_KEYWORD1
				if strings.HasSuffix(kw, "|") {
					kw = kw[:len(kw)-1]
					hl = HL_KEYWORD2
				}

				// Keyword must be bounded by a separator on the right
				if len(kw) > 0 && i+len(kw) <= len(r.render) &&
					bytes.Equal(r.render[i:i+len(kw)], []byte(kw)) &&
					(i+len(kw) == len(r.render) || isSeparator(r.render[i+len(kw)])) {
					for k := 0; k < len(kw); k++ {
						r.hl[i+k] = hl
					}
					i += len(kw)
					break
				}
				j++
			}
			if j < len(keywords) {
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed := r.hlOpenComment != inComment
	r.hlOpenComment = inComment
	return changed
}

func syntaxToGraphics(hl int) (color, style int) {
	switch hl {
	case HL_COMMENT, HL_MLCOMMENT:
		return ANSI_COLOR_CYAN, 0
	case HL_KEYWORD1:
		return ANSI_COLOR_YELLOW, 0
	case HL_KEYWORD2:
		return ANSI_COLOR_GREEN, 0
	case HL_STRING:
		return ANSI_COLOR_MAGENTA, 0
	case HL_NUMBER:
		return ANSI_COLOR_RED, 0
	case HL_MATCH:
		return ANSI_COLOR_BLUE, ANSI_REVERSE
	default:
		return ANSI_COLOR_DEFAULT, 0
	}
}
