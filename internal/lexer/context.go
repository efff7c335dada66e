package lexer

// styleContext walks the lexed range one byte at a time, buffering the run
// currently being styled and flushing it to the accessor on each state
// change. When the range reaches the end of the document, one virtual
// position past the last byte is processed so that the final line's state is
// written even without a trailing newline; Complete compensates when
// committing the last run.
type styleContext struct {
	styler    Accessor
	lengthDoc int
	endPos    int

	pos           int
	currentLine   int
	lineStartNext int
	startSeg      int

	atLineStart bool
	atLineEnd   bool

	state  Style
	chPrev byte
	ch     byte
	chNext byte
}

func newStyleContext(startPos, length int, initStyle Style, styler Accessor) *styleContext {
	sc := &styleContext{
		styler:    styler,
		lengthDoc: styler.Length(),
		endPos:    startPos + length,
		pos:       startPos,
		startSeg:  startPos,
		state:     initStyle,
	}
	if sc.endPos == sc.lengthDoc {
		sc.endPos++
	}
	styler.StartStyling(startPos)
	sc.currentLine = styler.LineOf(startPos)
	sc.lineStartNext = styler.LineStart(sc.currentLine + 1)
	sc.atLineStart = styler.LineStart(sc.currentLine) == startPos
	sc.chPrev = sc.byteAt(startPos - 1)
	sc.ch = sc.byteAt(startPos)
	sc.chNext = sc.byteAt(startPos + 1)
	sc.atLineEnd = startPos >= sc.lineStartNext-1
	return sc
}

// byteAt reads the document, substituting a space for out-of-range positions
// so lookahead at the buffer edges stays total.
func (sc *styleContext) byteAt(pos int) byte {
	if pos < 0 || pos >= sc.lengthDoc {
		return ' '
	}
	return sc.styler.ByteAt(pos)
}

func (sc *styleContext) More() bool {
	return sc.pos < sc.endPos
}

func (sc *styleContext) Forward() {
	if sc.pos < sc.endPos {
		sc.atLineStart = sc.atLineEnd
		if sc.atLineStart {
			sc.currentLine++
			sc.lineStartNext = sc.styler.LineStart(sc.currentLine + 1)
		}
		sc.chPrev = sc.ch
		sc.pos++
		sc.ch = sc.chNext
		sc.chNext = sc.byteAt(sc.pos + 1)
		sc.atLineEnd = sc.pos >= sc.lineStartNext-1
	} else {
		sc.atLineStart = false
		sc.chPrev = ' '
		sc.ch = ' '
		sc.chNext = ' '
		sc.atLineEnd = true
	}
}

func (sc *styleContext) ForwardN(n int) {
	for i := 0; i < n; i++ {
		sc.Forward()
	}
}

// SetState commits the pending run with the current state, then switches to
// state. The committed run ends at the byte before the current position.
func (sc *styleContext) SetState(state Style) {
	sc.styler.ColourTo(sc.pos-sc.endAdjust(), sc.state)
	sc.startSeg = sc.pos
	sc.state = state
}

// ForwardSetState styles the current byte with the current state, then
// switches.
func (sc *styleContext) ForwardSetState(state Style) {
	sc.Forward()
	sc.SetState(state)
}

// ChangeState restyles the pending run without committing it.
func (sc *styleContext) ChangeState(state Style) {
	sc.state = state
}

// Match reports whether the bytes at the current position equal s.
func (sc *styleContext) Match(s string) bool {
	for i := 0; i < len(s); i++ {
		var ch byte
		switch i {
		case 0:
			ch = sc.ch
		case 1:
			ch = sc.chNext
		default:
			ch = sc.byteAt(sc.pos + i)
		}
		if ch != s[i] {
			return false
		}
	}
	return true
}

func (sc *styleContext) Match2(a, b byte) bool {
	return sc.ch == a && sc.chNext == b
}

// Current returns the text of the pending run, capped at 64 bytes; keyword
// classification never needs more.
func (sc *styleContext) Current() string {
	end := sc.pos
	if end > sc.lengthDoc {
		end = sc.lengthDoc
	}
	if end-sc.startSeg > 64 {
		end = sc.startSeg + 64
	}
	buf := make([]byte, 0, end-sc.startSeg)
	for p := sc.startSeg; p < end; p++ {
		buf = append(buf, sc.styler.ByteAt(p))
	}
	return string(buf)
}

// LengthCurrent returns the length of the pending run.
func (sc *styleContext) LengthCurrent() int {
	return sc.pos - sc.startSeg
}

// Complete commits the final pending run.
func (sc *styleContext) Complete() {
	sc.styler.ColourTo(sc.pos-sc.endAdjust(), sc.state)
}

// endAdjust keeps commits inside the document when the context has advanced
// onto the virtual position past the last byte.
func (sc *styleContext) endAdjust() int {
	if sc.pos > sc.lengthDoc {
		return 2
	}
	return 1
}
