package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPackLineState(t *testing.T) {
	state := packLineState(3, lineStateLineComment|lineStateInterpolation)
	assert.Equal(t, 3, commentLevelOf(state))
	assert.NotZero(t, state&lineStateLineComment)
	assert.NotZero(t, state&lineStateInterpolation)
	assert.Zero(t, state&lineStatePackageImport)
}

func TestPackLineStateRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(0, 1<<20).Draw(rt, "level")
		flags := int32(rapid.IntRange(0, 7).Draw(rt, "flags"))

		state := packLineState(level, flags)
		require.Equal(t, level, commentLevelOf(state), "comment level survives packing")
		require.Equal(t, flags, state&0x7, "flags survive packing")
	})
}
