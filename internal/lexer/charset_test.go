package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIdentifierClassifiers(t *testing.T) {
	for _, ch := range []byte("abzAZ_") {
		assert.True(t, isIdentifierStart(ch), "identifier start: %c", ch)
	}
	for _, ch := range []byte("09$. ") {
		assert.False(t, isIdentifierStart(ch), "not identifier start: %c", ch)
	}

	assert.True(t, isDartIdentifierStart('$'), "$ starts Dart identifiers")
	assert.True(t, isDartIdentifierChar('$'))
	assert.True(t, isDartIdentifierChar('9'))
	assert.False(t, isDartIdentifierChar('-'))
}

func TestIsNumberStart(t *testing.T) {
	tests := []struct {
		name   string
		ch     byte
		chNext byte
		want   bool
	}{
		{"digit", '0', 'x', true},
		{"dot before digit", '.', '5', true},
		{"dot before letter", '.', 'x', false},
		{"letter", 'a', '0', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, isNumberStart(tt.ch, tt.chNext))
		})
	}
}

func TestIsNumberContinue(t *testing.T) {
	tests := []struct {
		name               string
		chPrev, ch, chNext byte
		want               bool
	}{
		{"exponent plus", 'e', '+', '5', true},
		{"exponent minus", 'E', '-', '5', true},
		{"plus without exponent", '1', '+', '5', false},
		{"decimal point", '1', '.', '5', true},
		{"range operator", '1', '.', '.', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, isNumberContinue(tt.chPrev, tt.ch, tt.chNext))
		})
	}
}

func TestIsDefinableOperator(t *testing.T) {
	for _, ch := range []byte("+-*/%~&|^<>=[]") {
		assert.True(t, isDefinableOperator(ch), "definable: %c", ch)
	}
	for _, ch := range []byte("!?.,:;(){}#@") {
		assert.False(t, isDefinableOperator(ch), "not definable: %c", ch)
	}
}

func TestIsGraphic(t *testing.T) {
	assert.True(t, isGraphic('!'))
	assert.True(t, isGraphic('~'))
	assert.False(t, isGraphic(' '))
	assert.False(t, isGraphic('\t'))
	assert.False(t, isGraphic(127))
	assert.False(t, isGraphic(0))
}

func TestIsSpaceEquiv(t *testing.T) {
	assert.True(t, isSpaceEquiv(StyleDefault))
	assert.True(t, isSpaceEquiv(StyleCommentLine))
	assert.True(t, isSpaceEquiv(StyleCommentBlockDoc))
	assert.False(t, isSpaceEquiv(StyleIdentifier))
	assert.False(t, isSpaceEquiv(StyleStringSQ))
	assert.False(t, isSpaceEquiv(StyleOperator))
}

func TestStringStatePredicates(t *testing.T) {
	assert.True(t, isTripleString(StyleTripleStringSQ))
	assert.True(t, isTripleString(StyleTripleRawStringDQ))
	assert.False(t, isTripleString(StyleStringSQ))

	assert.True(t, isRawString(StyleRawStringDQ))
	assert.True(t, isRawString(StyleTripleRawStringSQ))
	assert.False(t, isRawString(StyleTripleStringDQ))

	assert.Equal(t, byte('"'), stringQuote(StyleStringDQ))
	assert.Equal(t, byte('"'), stringQuote(StyleTripleRawStringDQ))
	assert.Equal(t, byte('\''), stringQuote(StyleStringSQ))
	assert.Equal(t, byte('\''), stringQuote(StyleTripleStringSQ))
}
