// Package document holds the host side of a lexed buffer: the text, one
// style byte per text byte, the packed per-line states and the per-line fold
// levels. It implements lexer.Accessor so the passes can run directly
// against it.
package document

import (
	"sort"

	"github.com/google/uuid"

	"github.com/techee/lexilla/internal/lexer"
)

// Document is a text buffer plus the storage both lexer passes read and
// write between invocations.
type Document struct {
	id         uuid.UUID
	text       []byte
	styles     []byte
	lineStarts []int
	lineStates []int32
	levels     []int32
	endStyled  int
}

// New creates a document over text.
func New(text []byte) *Document {
	d := &Document{id: uuid.New()}
	d.SetText(text)
	return d
}

// NewString creates a document over s.
func NewString(s string) *Document {
	return New([]byte(s))
}

// ID returns the document's identity, used for log correlation.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// SetText replaces the document text. Styles, line states and fold levels
// for the unchanged prefix are preserved so an incremental re-lex can resume
// from the first changed line; everything past the new length is dropped.
func (d *Document) SetText(text []byte) {
	d.text = append(d.text[:0:0], text...)

	oldStyles := d.styles
	d.styles = make([]byte, len(d.text))
	copy(d.styles, oldStyles)

	d.rebuildLineIndex()

	oldStates := d.lineStates
	oldLevels := d.levels
	d.lineStates = make([]int32, d.LineCount())
	d.levels = make([]int32, d.LineCount())
	copy(d.lineStates, oldStates)
	copy(d.levels, oldLevels)

	d.endStyled = 0
}

func (d *Document) rebuildLineIndex() {
	d.lineStarts = d.lineStarts[:0]
	d.lineStarts = append(d.lineStarts, 0)
	for i, b := range d.text {
		if b == '\n' {
			d.lineStarts = append(d.lineStarts, i+1)
		}
	}
}

// Text returns the document bytes. The slice is owned by the document.
func (d *Document) Text() []byte {
	return d.text
}

// LineCount returns the number of lines; a trailing newline opens one final
// empty line, matching how line states are stored.
func (d *Document) LineCount() int {
	return len(d.lineStarts)
}

// LineText returns the text of line including its end-of-line bytes.
func (d *Document) LineText(line int) string {
	if line < 0 || line >= len(d.lineStarts) {
		return ""
	}
	return string(d.text[d.lineStarts[line]:d.LineStart(line+1)])
}

// Length implements lexer.Accessor.
func (d *Document) Length() int {
	return len(d.text)
}

// ByteAt implements lexer.Accessor.
func (d *Document) ByteAt(pos int) byte {
	if pos < 0 || pos >= len(d.text) {
		return 0
	}
	return d.text[pos]
}

// StyleAt implements lexer.Accessor.
func (d *Document) StyleAt(pos int) lexer.Style {
	if pos < 0 || pos >= len(d.styles) {
		return lexer.StyleDefault
	}
	return lexer.Style(d.styles[pos])
}

// LineOf implements lexer.Accessor.
func (d *Document) LineOf(pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(d.text) {
		return len(d.lineStarts) - 1
	}
	// first line whose start is beyond pos, minus one
	i := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > pos
	})
	return i - 1
}

// LineStart implements lexer.Accessor.
func (d *Document) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.lineStarts) {
		return len(d.text)
	}
	return d.lineStarts[line]
}

// LineState implements lexer.Accessor.
func (d *Document) LineState(line int) int32 {
	if line < 0 || line >= len(d.lineStates) {
		return 0
	}
	return d.lineStates[line]
}

// SetLineState implements lexer.Accessor.
func (d *Document) SetLineState(line int, state int32) {
	if line < 0 || line >= len(d.lineStates) {
		return
	}
	d.lineStates[line] = state
}

// LevelAt implements lexer.Accessor.
func (d *Document) LevelAt(line int) int32 {
	if line < 0 || line >= len(d.levels) {
		return 0
	}
	return d.levels[line]
}

// SetLevel implements lexer.Accessor.
func (d *Document) SetLevel(line int, level int32) {
	if line < 0 || line >= len(d.levels) {
		return
	}
	d.levels[line] = level
}

// ClearLineDataFrom zeroes the stored line states and fold levels from line
// onward. An incremental re-lex calls this for the changed region so lines a
// fresh lex would leave untouched do not keep stale values.
func (d *Document) ClearLineDataFrom(line int) {
	if line < 0 {
		line = 0
	}
	for i := line; i < len(d.lineStates); i++ {
		d.lineStates[i] = 0
	}
	for i := line; i < len(d.levels); i++ {
		d.levels[i] = 0
	}
}

// StartStyling implements lexer.Accessor.
func (d *Document) StartStyling(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(d.styles) {
		pos = len(d.styles)
	}
	d.endStyled = pos
}

// ColourTo implements lexer.Accessor: bytes from the previous commit point
// through pos inclusive receive style.
func (d *Document) ColourTo(pos int, style lexer.Style) {
	if pos >= len(d.styles) {
		pos = len(d.styles) - 1
	}
	for i := d.endStyled; i <= pos; i++ {
		d.styles[i] = byte(style)
	}
	if pos+1 > d.endStyled {
		d.endStyled = pos + 1
	}
}

// StyleRun is one maximal run of identically-styled bytes.
type StyleRun struct {
	Start, End int // [Start, End)
	Style      lexer.Style
}

// StyleRuns returns the styled text as maximal runs, in document order.
func (d *Document) StyleRuns() []StyleRun {
	if len(d.text) == 0 {
		return nil
	}
	runs := make([]StyleRun, 0, 32)
	start := 0
	cur := d.styles[0]
	for i := 1; i < len(d.styles); i++ {
		if d.styles[i] != cur {
			runs = append(runs, StyleRun{Start: start, End: i, Style: lexer.Style(cur)})
			start = i
			cur = d.styles[i]
		}
	}
	return append(runs, StyleRun{Start: start, End: len(d.styles), Style: lexer.Style(cur)})
}
