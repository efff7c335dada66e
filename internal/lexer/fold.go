package lexer

// Fold level words stored per line: the low 16 bits carry the level at the
// start of the line, bits 16.. the level at the start of the next line, plus
// the header flag when the line opens deeper structure.
const (
	FoldLevelBase       = 0x400
	FoldLevelHeaderFlag = 0x2000
	FoldLevelNumberMask = 0x0FFF
)

// foldLineState extracts the two line flags the folder consults from the
// packed colouriser state.
type foldLineState struct {
	lineComment   int
	packageImport int
}

func newFoldLineState(lineState int32) foldLineState {
	return foldLineState{
		lineComment:   int(lineState & lineStateLineComment),
		packageImport: int((lineState >> 1) & 1),
	}
}

// FoldDart is the fold pass. It walks the already-styled bytes of
// [startPos, startPos+length) and stores one fold level word per line.
// Nesting comes from bracketing punctuation, triple-string boundaries and
// nested block comment markers; contiguous runs of line-comment or import
// lines fold as one block via the line flags.
func FoldDart(startPos, length int, initStyle Style, _ [KeywordListCount]WordList, styler Accessor) {
	endPos := startPos + length
	lineCurrent := styler.LineOf(startPos)
	foldPrev := foldLineState{}
	levelCurrent := FoldLevelBase
	if lineCurrent > 0 {
		levelCurrent = int(styler.LevelAt(lineCurrent-1)) >> 16
		foldPrev = newFoldLineState(styler.LineState(lineCurrent - 1))
	}

	levelNext := levelCurrent
	foldCurrent := newFoldLineState(styler.LineState(lineCurrent))
	lineStartNext := min(styler.LineStart(lineCurrent+1), endPos)

	chNext := styler.ByteAt(startPos)
	styleNext := styler.StyleAt(startPos)
	style := initStyle

	for startPos < endPos {
		ch := chNext
		stylePrev := style
		style = styleNext
		startPos++
		chNext = styler.ByteAt(startPos)
		styleNext = styler.StyleAt(startPos)

		switch style {
		case StyleCommentBlock, StyleCommentBlockDoc:
			level := 0
			if ch == '/' && chNext == '*' {
				level = 1
			} else if ch == '*' && chNext == '/' {
				level = -1
			}
			if level != 0 {
				levelNext += level
				startPos++
				chNext = styler.ByteAt(startPos)
				styleNext = styler.StyleAt(startPos)
			}

		case StyleTripleStringSQ, StyleTripleStringDQ,
			StyleTripleRawStringSQ, StyleTripleRawStringDQ:
			// escapes and interpolation markers inside the string are
			// transparent; only a real boundary opens or closes the fold
			if style != stylePrev && !isInterpolationInner(stylePrev) {
				levelNext++
			}
			if style != styleNext && !isInterpolationInner(styleNext) {
				levelNext--
			}

		case StyleOperator, StyleOperatorString:
			if ch == '{' || ch == '[' || ch == '(' {
				levelNext++
			} else if ch == '}' || ch == ']' || ch == ')' {
				levelNext--
			}
		}

		if startPos == lineStartNext {
			foldNext := newFoldLineState(styler.LineState(lineCurrent + 1))
			levelNext = max(levelNext, FoldLevelBase)
			if foldCurrent.lineComment != 0 {
				levelNext += foldNext.lineComment - foldPrev.lineComment
			} else if foldCurrent.packageImport != 0 {
				levelNext += foldNext.packageImport - foldPrev.packageImport
			}

			lev := levelCurrent | levelNext<<16
			if levelCurrent < levelNext {
				lev |= FoldLevelHeaderFlag
			}
			styler.SetLevel(lineCurrent, int32(lev))

			lineCurrent++
			lineStartNext = min(styler.LineStart(lineCurrent+1), endPos)
			levelCurrent = levelNext
			foldPrev = foldCurrent
			foldCurrent = foldNext
		}
	}

	// The empty line after a trailing newline holds no bytes, so the loop
	// never reaches its boundary; it takes the level its predecessor hands on.
	if endPos == styler.Length() && styler.LineOf(endPos) == lineCurrent && styler.LineStart(lineCurrent) == endPos {
		styler.SetLevel(lineCurrent, int32(levelCurrent|levelCurrent<<16))
	}
}
