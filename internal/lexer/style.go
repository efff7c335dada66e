// Package lexer implements the incremental Dart syntax colouriser and fold
// analyser. Both passes are restartable: the host stores one packed state
// integer per line plus a style byte per document byte, and a later pass can
// resume from any line boundary using only that stored state.
package lexer

// Style classifies one byte of document text. The values are stable integers
// shared with the host's renderer and must not be reordered.
type Style int

const (
	StyleDefault Style = iota
	StyleCommentLine
	StyleCommentLineDoc
	StyleCommentBlock
	StyleCommentBlockDoc
	StyleNumber
	StyleIdentifier
	StyleKwPrimary
	StyleKwSecondary
	StyleKwTertiary
	StyleKwType
	StyleKey
	StyleStringSQ
	StyleStringDQ
	StyleTripleStringSQ
	StyleTripleStringDQ
	StyleRawStringSQ
	StyleRawStringDQ
	StyleTripleRawStringSQ
	StyleTripleRawStringDQ
	StyleEscapeChar
	StyleIdentifierString
	StyleOperatorString
	StyleOperator
	StyleMetadata
	StyleSymbolIdentifier
	StyleSymbolOperator

	// StyleMax is the highest style value the colouriser emits.
	StyleMax = StyleSymbolOperator
)

var styleNames = [...]string{
	StyleDefault:           "default",
	StyleCommentLine:       "commentline",
	StyleCommentLineDoc:    "commentlinedoc",
	StyleCommentBlock:      "commentblock",
	StyleCommentBlockDoc:   "commentblockdoc",
	StyleNumber:            "number",
	StyleIdentifier:        "identifier",
	StyleKwPrimary:         "kw_primary",
	StyleKwSecondary:       "kw_secondary",
	StyleKwTertiary:        "kw_tertiary",
	StyleKwType:            "kw_type",
	StyleKey:               "key",
	StyleStringSQ:          "string_sq",
	StyleStringDQ:          "string_dq",
	StyleTripleStringSQ:    "triple_string_sq",
	StyleTripleStringDQ:    "triple_string_dq",
	StyleRawStringSQ:       "rawstring_sq",
	StyleRawStringDQ:       "rawstring_dq",
	StyleTripleRawStringSQ: "triple_rawstring_sq",
	StyleTripleRawStringDQ: "triple_rawstring_dq",
	StyleEscapeChar:        "escapechar",
	StyleIdentifierString:  "identifier_string",
	StyleOperatorString:    "operator_string",
	StyleOperator:          "operator",
	StyleMetadata:          "metadata",
	StyleSymbolIdentifier:  "symbol_identifier",
	StyleSymbolOperator:    "symbol_operator",
}

func (s Style) String() string {
	if s >= 0 && int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "invalid"
}

// isSpaceEquiv reports whether a style carries no token of its own: default
// text and comments. Lookback over these styles recovers the last real token
// character when a lex resumes mid-document.
func isSpaceEquiv(state Style) bool {
	return state == StyleDefault ||
		state == StyleCommentLine ||
		state == StyleCommentLineDoc ||
		state == StyleCommentBlock ||
		state == StyleCommentBlockDoc
}

func isTripleString(state Style) bool {
	return state == StyleTripleStringSQ ||
		state == StyleTripleStringDQ ||
		state == StyleTripleRawStringSQ ||
		state == StyleTripleRawStringDQ
}

func isDoubleQuoted(state Style) bool {
	return state == StyleStringDQ ||
		state == StyleRawStringDQ ||
		state == StyleTripleStringDQ ||
		state == StyleTripleRawStringDQ
}

func isRawString(state Style) bool {
	return state == StyleRawStringSQ ||
		state == StyleRawStringDQ ||
		state == StyleTripleRawStringSQ ||
		state == StyleTripleRawStringDQ
}

// isInterpolationInner reports styles that appear inside a string without
// closing it: escapes and interpolation markers. The folder treats them as
// transparent so a `$...` does not open or close a triple-string fold.
func isInterpolationInner(state Style) bool {
	return state == StyleEscapeChar ||
		state == StyleOperatorString ||
		state == StyleIdentifierString
}

func stringQuote(state Style) byte {
	if isDoubleQuoted(state) {
		return '"'
	}
	return '\''
}
