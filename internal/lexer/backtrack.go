package lexer

// backtrackToStart rewinds a restart position to the first line whose
// predecessor does not carry the given state flag. The interpolation stack is
// transient, so a lex resuming inside `${...}` must instead resume from the
// line where the enclosing string opened; line 0 trivially terminates the
// walk.
func backtrackToStart(styler Accessor, stateMask int32, startPos, length int, initStyle Style) (int, int, Style) {
	currentLine := styler.LineOf(startPos)
	if currentLine == 0 {
		return startPos, length, initStyle
	}
	line := currentLine - 1
	lineState := styler.LineState(line)
	for lineState&stateMask != 0 && line != 0 {
		line--
		lineState = styler.LineState(line)
	}
	if lineState&stateMask == 0 {
		line++
	}
	if line != currentLine {
		endPos := startPos + length
		if line == 0 {
			startPos = 0
		} else {
			startPos = styler.LineStart(line)
		}
		length = endPos - startPos
		if startPos == 0 {
			initStyle = StyleDefault
		} else {
			initStyle = styler.StyleAt(startPos - 1)
		}
	}
	return startPos, length, initStyle
}

// lookbackNonWhite scans backward from startPos over space-equivalent styles
// and returns the last real token byte and its style. Used when a lex resumes
// after whitespace or comments to seed chPrevNonWhite.
func lookbackNonWhite(styler Accessor, startPos int) (byte, Style) {
	for startPos != 0 {
		startPos--
		style := styler.StyleAt(startPos)
		if !isSpaceEquiv(style) {
			return styler.ByteAt(startPos), style
		}
	}
	return 0, StyleDefault
}
