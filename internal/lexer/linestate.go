package lexer

// Per-line state packed into one int32, stored by the host between
// invocations. Layout, lowest bit first:
//
//	bit 0     line began as a line comment (or shebang)
//	bit 1     line began with `import` or `part`
//	bit 2     interpolation stack non-empty at end of line
//	bit 3     reserved
//	bits 4..  number of unclosed /* at end of line
const (
	lineStateLineComment   int32 = 1
	lineStatePackageImport int32 = 1 << 1
	lineStateInterpolation int32 = 1 << 2

	lineStateCommentShift = 4
)

func packLineState(commentLevel int, flags int32) int32 {
	return int32(commentLevel)<<lineStateCommentShift | flags
}

func commentLevelOf(state int32) int {
	return int(state >> lineStateCommentShift)
}
