// Package highlight ties a document, the keyword lists and the lexer module
// together and drives both passes, including the incremental re-lex path
// used after edits.
package highlight

import (
	"github.com/techee/lexilla/internal/document"
	"github.com/techee/lexilla/internal/lexer"
	"github.com/techee/lexilla/internal/log"
)

// Highlighter runs the lexer module over one document.
type Highlighter struct {
	doc      *document.Document
	keywords [lexer.KeywordListCount]lexer.WordList
	module   lexer.Module
}

// New creates a highlighter over text using the given keyword lists.
func New(text []byte, keywords [lexer.KeywordListCount]lexer.WordList) *Highlighter {
	return &Highlighter{
		doc:      document.New(text),
		keywords: keywords,
		module:   lexer.Dart,
	}
}

// Document returns the underlying document.
func (h *Highlighter) Document() *document.Document {
	return h.doc
}

// Lex runs both passes over the whole document.
func (h *Highlighter) Lex() {
	h.module.Lex(0, h.doc.Length(), lexer.StyleDefault, h.keywords, h.doc)
	h.module.Fold(0, h.doc.Length(), lexer.StyleDefault, h.keywords, h.doc)
	log.Debug(log.CatLexer, "full lex", "doc", h.doc.ID(), "bytes", h.doc.Length(), "lines", h.doc.LineCount())
}

// Refresh replaces the document text and re-lexes from the first changed
// line, resuming from the stored line states and styles; when that line
// continues an interpolation left open on earlier lines, the colourise pass
// starts at the line where it opened. Returns the first changed line (the
// document line count when nothing changed).
func (h *Highlighter) Refresh(newText []byte) int {
	oldText := h.doc.Text()
	// The prefix must be exact in bytes: the document may hold any byte
	// sequence, and LineOf addresses bytes.
	prefix := commonPrefixLen(oldText, newText)

	if prefix == len(oldText) && prefix == len(newText) {
		return h.doc.LineCount()
	}

	h.doc.SetText(newText)

	// rewind to the start of the first changed line
	restartLine := h.doc.LineOf(prefix)
	startPos := h.doc.LineStart(restartLine)
	h.doc.ClearLineDataFrom(restartLine)

	initStyle := lexer.StyleDefault
	if startPos > 0 {
		initStyle = h.doc.StyleAt(startPos - 1)
	}
	h.module.Lex(startPos, h.doc.Length()-startPos, initStyle, h.keywords, h.doc)

	// The stored level of the line before the restart folds in the restart
	// line's comment/import flags, so folding rewinds one extra line.
	foldLine := restartLine - 1
	if foldLine < 0 {
		foldLine = 0
	}
	foldStart := h.doc.LineStart(foldLine)
	foldStyle := lexer.StyleDefault
	if foldStart > 0 {
		foldStyle = h.doc.StyleAt(foldStart - 1)
	}
	h.module.Fold(foldStart, h.doc.Length()-foldStart, foldStyle, h.keywords, h.doc)

	log.Debug(log.CatDoc, "incremental refresh", "doc", h.doc.ID(), "restart_line", restartLine, "bytes", h.doc.Length())
	return restartLine
}

// commonPrefixLen returns the length in bytes of the longest common prefix
// of a and b.
func commonPrefixLen(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
