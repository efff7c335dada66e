package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techee/lexilla/internal/lexer"
)

func TestSetContains(t *testing.T) {
	s := NewSet("class  void\n\tint")
	assert.True(t, s.Contains("class"))
	assert.True(t, s.Contains("int"))
	assert.False(t, s.Contains("Class"), "membership is case sensitive")
	assert.False(t, s.Contains(""))
}

func TestSetAdd(t *testing.T) {
	s := NewSet("a")
	s.Add("b", "  ", "c")
	assert.True(t, s.Contains("b"))
	assert.True(t, s.Contains("c"))
	assert.False(t, s.Contains("  "), "blank words are dropped")
}

func TestDefaults(t *testing.T) {
	lists := Defaults()

	assert.True(t, lists[lexer.KeywordPrimary].Contains("class"))
	assert.True(t, lists[lexer.KeywordPrimary].Contains("import"))
	assert.True(t, lists[lexer.KeywordPrimary].Contains("part"))
	assert.True(t, lists[lexer.KeywordSecondary].Contains("override"))
	assert.True(t, lists[lexer.KeywordTertiary].Contains("print"))
	assert.True(t, lists[lexer.KeywordType].Contains("String"))
	assert.False(t, lists[lexer.KeywordType].Contains("string"))
}

func TestWithExtensions(t *testing.T) {
	var extra [lexer.KeywordListCount][]string
	extra[lexer.KeywordType] = []string{"MyWidget"}

	lists := WithExtensions(extra)
	require.True(t, lists[lexer.KeywordType].Contains("MyWidget"))
	assert.True(t, lists[lexer.KeywordType].Contains("int"), "defaults kept alongside extensions")
	assert.False(t, lists[lexer.KeywordPrimary].Contains("MyWidget"))
}
