package lexer

// Accessor is the host-side document surface both passes run against. The
// host owns the text, the style byte per text byte, the packed per-line
// states and the per-line fold levels; a pass holds the accessor only for the
// duration of one synchronous invocation.
//
// Out-of-range reads return zero values; both passes probe one position past
// the end of the document.
type Accessor interface {
	// Length returns the document length in bytes.
	Length() int
	// ByteAt returns the text byte at pos.
	ByteAt(pos int) byte
	// StyleAt returns the style previously committed at pos.
	StyleAt(pos int) Style
	// LineOf returns the index of the line containing pos.
	LineOf(pos int) int
	// LineStart returns the position of the first byte of line. For lines
	// past the end it returns the document length.
	LineStart(line int) int
	// LineState returns the packed state stored for line, 0 if none.
	LineState(line int) int32
	// SetLineState stores the packed state for line.
	SetLineState(line int, state int32)
	// LevelAt returns the fold level word stored for line.
	LevelAt(line int) int32
	// SetLevel stores the fold level word for line.
	SetLevel(line int, level int32)
	// StartStyling marks pos as the start of the next styled run.
	StartStyling(pos int)
	// ColourTo commits one run: every byte after the previous commit point
	// through pos inclusive receives style.
	ColourTo(pos int, style Style)
}

// WordList answers exact-match, case-sensitive membership tests for one
// keyword class.
type WordList interface {
	Contains(word string) bool
}

// Keyword list indexes. The host loads four lists and passes them to the
// colouriser in this order.
const (
	KeywordPrimary = iota
	KeywordSecondary
	KeywordTertiary
	KeywordType
	KeywordListCount
)

// LexFunc is the shared signature of the colourise and fold passes.
type LexFunc func(startPos, length int, initStyle Style, keywords [KeywordListCount]WordList, styler Accessor)

// LexerIDDart identifies the Dart lexer to hosts that address lexers by
// number rather than by language tag.
const LexerIDDart = 112

// Module describes one registered lexer: its identifier, language tag, the
// two pass functions and the word list descriptions in keyword-index order.
type Module struct {
	ID                   int
	Language             string
	Lex                  LexFunc
	Fold                 LexFunc
	WordListDescriptions []string
}

// Dart is the module descriptor exposed to hosts.
var Dart = Module{
	ID:       LexerIDDart,
	Language: "dart",
	Lex:      ColouriseDart,
	Fold:     FoldDart,
	WordListDescriptions: []string{
		"Primary keywords",
		"Secondary keywords",
		"Tertiary keywords",
		"Global type definitions",
	},
}
