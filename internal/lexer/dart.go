package lexer

// interpolatingState remembers, for one `${` frame, the string state to
// resume when the interpolation closes and the brace nesting depth inside the
// embedded expression.
type interpolatingState struct {
	state      Style
	braceCount int
}

// maxInterpolationDepth bounds the transient interpolation stack. When a
// `${` arrives with the stack full, the top frame absorbs it by raising its
// braceCount; styling inside the collapsed frames degrades but the pass stays
// total.
const maxInterpolationDepth = 64

// ColouriseDart is the colourise pass. It assigns a style to every byte of
// [startPos, startPos+length), writes the packed per-line state at each line
// end, and backtracks first when the restart position sits inside a string
// interpolation.
func ColouriseDart(startPos, length int, initStyle Style, keywords [KeywordListCount]WordList, styler Accessor) {
	var lineStateLineType int32
	commentLevel := 0 // nested block comment level

	var interpolatingStack []interpolatingState

	visibleChars := 0
	var chBefore byte
	var chPrevNonWhite byte
	var escSeq escapeSequence

	if startPos != 0 {
		// backtrack to the line where interpolation starts
		startPos, length, initStyle = backtrackToStart(styler, lineStateInterpolation, startPos, length, initStyle)
	}

	sc := newStyleContext(startPos, length, initStyle, styler)
	if sc.currentLine > 0 {
		commentLevel = commentLevelOf(styler.LineState(sc.currentLine - 1))
	}
	if startPos == 0 {
		if sc.Match2('#', '!') {
			// shebang at beginning of file
			sc.SetState(StyleCommentLine)
			sc.Forward()
			lineStateLineType = lineStateLineComment
		}
	} else if isSpaceEquiv(initStyle) {
		chPrevNonWhite, _ = lookbackNonWhite(styler, startPos)
		chBefore = chPrevNonWhite
	}

	for sc.More() {
		switch sc.state {
		case StyleOperator, StyleOperatorString:
			sc.SetState(StyleDefault)

		case StyleNumber:
			if !isDecimalNumber(sc.chPrev, sc.ch, sc.chNext) {
				sc.SetState(StyleDefault)
			}

		case StyleIdentifier, StyleIdentifierString, StyleMetadata, StyleSymbolIdentifier:
			if !isDartIdentifierChar(sc.ch) || (sc.ch == '$' && sc.state == StyleIdentifierString) {
				if sc.state == StyleMetadata || sc.state == StyleSymbolIdentifier {
					if sc.ch == '.' {
						state := sc.state
						sc.SetState(StyleOperator)
						sc.ForwardSetState(state)
						continue
					}
				} else {
					s := sc.Current()
					state := sc.state
					switch {
					case state == StyleIdentifierString:
						sc.SetState(escSeq.outerState)
						continue
					case keywords[KeywordPrimary].Contains(s):
						sc.ChangeState(StyleKwPrimary)
						if s == "import" || s == "part" {
							if visibleChars == sc.LengthCurrent() {
								lineStateLineType = lineStatePackageImport
							}
						}
					case keywords[KeywordSecondary].Contains(s):
						sc.ChangeState(StyleKwSecondary)
					case keywords[KeywordTertiary].Contains(s):
						sc.ChangeState(StyleKwTertiary)
					case keywords[KeywordType].Contains(s):
						sc.ChangeState(StyleKwType)
					case state == StyleIdentifier && sc.ch == ':':
						if chBefore == ',' || chBefore == '{' || chBefore == '(' {
							sc.ChangeState(StyleKey) // map key or named parameter
						}
					}
				}
				sc.SetState(StyleDefault)
			}

		case StyleSymbolOperator:
			if !isDefinableOperator(sc.ch) {
				sc.SetState(StyleDefault)
			}

		case StyleCommentLine, StyleCommentLineDoc:
			if sc.atLineStart {
				sc.SetState(StyleDefault)
			}

		case StyleCommentBlock, StyleCommentBlockDoc:
			if sc.Match2('*', '/') {
				sc.Forward()
				commentLevel--
				if commentLevel <= 0 {
					commentLevel = 0
					sc.ForwardSetState(StyleDefault)
				}
			} else if sc.Match2('/', '*') {
				sc.Forward()
				commentLevel++
			}

		case StyleStringSQ, StyleStringDQ,
			StyleTripleStringSQ, StyleTripleStringDQ,
			StyleRawStringSQ, StyleRawStringDQ,
			StyleTripleRawStringSQ, StyleTripleRawStringDQ:
			switch {
			case sc.atLineStart && !isTripleString(sc.state):
				// unterminated single-line string
				sc.SetState(StyleDefault)
			case sc.ch == '\\' && !isRawString(sc.state):
				if escSeq.reset(sc.state, sc.chNext) {
					sc.SetState(StyleEscapeChar)
					sc.Forward()
					if sc.Match2('u', '{') {
						escSeq.brace = true
						escSeq.digitsLeft = 7 // Unicode code point
						sc.Forward()
					}
				}
			case sc.ch == '$' && !isRawString(sc.state):
				escSeq.outerState = sc.state
				sc.SetState(StyleOperatorString)
				sc.Forward()
				if sc.ch == '{' {
					if len(interpolatingStack) < maxInterpolationDepth {
						interpolatingStack = append(interpolatingStack, interpolatingState{escSeq.outerState, 1})
					} else {
						interpolatingStack[len(interpolatingStack)-1].braceCount++
					}
				} else if sc.ch != '$' && isDartIdentifierStart(sc.ch) {
					sc.SetState(StyleIdentifierString)
				} else { // lone $, stays part of the string
					sc.SetState(escSeq.outerState)
					continue
				}
			case sc.ch == stringQuote(sc.state):
				closed := true
				if isTripleString(sc.state) {
					if isDoubleQuoted(sc.state) {
						closed = sc.Match(`"""`)
					} else {
						closed = sc.Match("'''")
					}
				}
				if closed {
					if isTripleString(sc.state) {
						sc.ForwardN(2)
					}
					sc.Forward()
					sc.SetState(StyleDefault)
				}
			}

		case StyleEscapeChar:
			if escSeq.atEnd(sc.ch) {
				if escSeq.brace && sc.ch == '}' {
					sc.Forward()
				}
				sc.SetState(escSeq.outerState)
				continue
			}
		}

		if sc.state == StyleDefault {
			if sc.ch == '/' && (sc.chNext == '/' || sc.chNext == '*') {
				chNext := sc.chNext
				if chNext == '/' {
					sc.SetState(StyleCommentLine)
				} else {
					sc.SetState(StyleCommentBlock)
				}
				sc.ForwardN(2)
				// /// and /** open doc comments, //// and /*** do not
				if sc.ch == chNext && sc.chNext != chNext {
					if sc.state == StyleCommentLine {
						sc.ChangeState(StyleCommentLineDoc)
					} else {
						sc.ChangeState(StyleCommentBlockDoc)
					}
				}
				if chNext == '/' {
					if visibleChars == 0 {
						lineStateLineType = lineStateLineComment
					}
				} else {
					commentLevel = 1
				}
				continue
			}
			if sc.ch == 'r' && (sc.chNext == '\'' || sc.chNext == '"') {
				if sc.chNext == '\'' {
					sc.SetState(StyleRawStringSQ)
				} else {
					sc.SetState(StyleRawStringDQ)
				}
				sc.ForwardN(2)
				if sc.chPrev == '\'' && sc.Match2('\'', '\'') {
					sc.ChangeState(StyleTripleRawStringSQ)
					sc.ForwardN(2)
				} else if sc.chPrev == '"' && sc.Match2('"', '"') {
					sc.ChangeState(StyleTripleRawStringDQ)
					sc.ForwardN(2)
				}
				continue
			}
			switch {
			case sc.ch == '"':
				if sc.Match(`"""`) {
					sc.SetState(StyleTripleStringDQ)
					sc.ForwardN(2)
				} else {
					chBefore = chPrevNonWhite
					sc.SetState(StyleStringDQ)
				}
			case sc.ch == '\'':
				if sc.Match("'''") {
					sc.SetState(StyleTripleStringSQ)
					sc.ForwardN(2)
				} else {
					chBefore = chPrevNonWhite
					sc.SetState(StyleStringSQ)
				}
			case isNumberStart(sc.ch, sc.chNext):
				sc.SetState(StyleNumber)
			case (sc.ch == '@' || sc.ch == '#') && isDartIdentifierStart(sc.chNext):
				if sc.ch == '@' {
					sc.SetState(StyleMetadata)
				} else {
					sc.SetState(StyleSymbolIdentifier)
				}
			case isDartIdentifierStart(sc.ch):
				chBefore = chPrevNonWhite
				sc.SetState(StyleIdentifier)
			case sc.ch == '#' && isDefinableOperator(sc.chNext):
				sc.SetState(StyleSymbolOperator)
			case isGraphic(sc.ch):
				sc.SetState(StyleOperator)
				if len(interpolatingStack) > 0 && (sc.ch == '{' || sc.ch == '}') {
					current := &interpolatingStack[len(interpolatingStack)-1]
					if sc.ch == '{' {
						current.braceCount++
					} else {
						current.braceCount--
						if current.braceCount == 0 {
							sc.ChangeState(StyleOperatorString)
							sc.ForwardSetState(current.state)
							interpolatingStack = interpolatingStack[:len(interpolatingStack)-1]
							continue
						}
					}
				}
			}
		}

		if !isSpaceChar(sc.ch) {
			visibleChars++
			if !isSpaceEquiv(sc.state) {
				chPrevNonWhite = sc.ch
			}
		}
		if sc.atLineEnd {
			lineState := packLineState(commentLevel, lineStateLineType)
			if len(interpolatingStack) > 0 {
				lineState |= lineStateInterpolation
			}
			styler.SetLineState(sc.currentLine, lineState)
			lineStateLineType = 0
			visibleChars = 0
		}
		sc.Forward()
	}

	sc.Complete()
}
