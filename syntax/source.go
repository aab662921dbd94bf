// source.go gives a file's byte offsets a line/column interpretation for
// rendering diagnostics. Grounded on the teacher's source.go Lines type
// (a cached slice of line-start byte offsets, binary-searched for
// ByteToLine, walked rune-by-rune for ByteToColumn), trimmed of the
// surrounding Source/incremental-Edit/UTF-16 machinery: UTF-16 offsets
// exist in the teacher to serve LSP clients, and incremental editing to
// serve an editor's reparse loop, neither of which this front end has
// (incremental reparsing is a spec Non-goal; nothing here speaks LSP).
package syntax

import "unicode/utf8"

// Lines maps between byte offsets and 0-indexed (line, column) positions
// in a fixed piece of source text. Column is a rune count, not a byte
// count or a display width.
type Lines struct {
	text       string
	lineStarts []int
}

// NewLines indexes the byte offset of every line start in text.
func NewLines(text string) *Lines {
	l := &Lines{text: text, lineStarts: []int{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			l.lineStarts = append(l.lineStarts, i+1)
		}
	}
	return l
}

// Len returns the number of lines.
func (l *Lines) Len() int { return len(l.lineStarts) }

// Line returns the text of the given line (0-indexed), without its
// trailing newline.
func (l *Lines) Line(line int) string {
	if line < 0 || line >= len(l.lineStarts) {
		return ""
	}
	start := l.lineStarts[line]
	end := len(l.text)
	if line+1 < len(l.lineStarts) {
		end = l.lineStarts[line+1] - 1
		if end < start {
			end = start
		}
	}
	return l.text[start:end]
}

// LineStart returns the byte offset of the start of the given line.
func (l *Lines) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(l.lineStarts) {
		return len(l.text)
	}
	return l.lineStarts[line]
}

// ByteToLine returns the 0-indexed line number containing offset.
func (l *Lines) ByteToLine(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset >= len(l.text) {
		return len(l.lineStarts) - 1
	}
	lo, hi := 0, len(l.lineStarts)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if l.lineStarts[mid] <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo - 1
}

// ByteToLineColumn returns the 0-indexed (line, column) position of
// offset. Column counts runes from the start of the line, not bytes.
func (l *Lines) ByteToLineColumn(offset int) (line, column int) {
	line = l.ByteToLine(offset)
	lineStart := l.lineStarts[line]
	if offset < lineStart {
		offset = lineStart
	}
	if offset > len(l.text) {
		offset = len(l.text)
	}
	column = utf8.RuneCountInString(l.text[lineStart:offset])
	return
}
