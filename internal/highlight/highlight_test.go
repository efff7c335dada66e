package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/techee/lexilla/internal/keywords"
	"github.com/techee/lexilla/internal/lexer"
)

func fullLex(text string) *Highlighter {
	h := New([]byte(text), keywords.Defaults())
	h.Lex()
	return h
}

func requireSameStyling(t require.TestingT, want, got *Highlighter) {
	wd, gd := want.Document(), got.Document()
	require.Equal(t, wd.Length(), gd.Length())
	for pos := 0; pos < wd.Length(); pos++ {
		require.Equal(t, wd.StyleAt(pos), gd.StyleAt(pos), "style of byte %d", pos)
	}
	for line := 0; line < wd.LineCount(); line++ {
		require.Equal(t, wd.LineState(line), gd.LineState(line), "state of line %d", line)
		require.Equal(t, wd.LevelAt(line), gd.LevelAt(line), "level of line %d", line)
	}
}

func TestLex(t *testing.T) {
	h := fullLex("void main() {}\n")
	assert.Equal(t, lexer.StyleKwPrimary, h.Document().StyleAt(0))
}

func TestRefreshNoChange(t *testing.T) {
	text := "void main() {}\n"
	h := fullLex(text)
	restart := h.Refresh([]byte(text))
	assert.Equal(t, h.Document().LineCount(), restart, "identical text relexes nothing")
}

func TestRefreshMatchesFullLex(t *testing.T) {
	oldText := "import 'a.dart';\nvoid main() {\n  print('x');\n}\n"
	newText := "import 'a.dart';\nvoid main() {\n  print('y ${1}');\n}\n"

	h := fullLex(oldText)
	restart := h.Refresh([]byte(newText))

	assert.Equal(t, 2, restart, "re-lex starts at the first changed line")
	requireSameStyling(t, fullLex(newText), h)
}

func TestRefreshEditInsideTripleString(t *testing.T) {
	oldText := "var s = '''a\nbb\ncc''';\nx\n"
	newText := "var s = '''a\nbZZ\ncc''';\nx\n"

	h := fullLex(oldText)
	h.Refresh([]byte(newText))
	requireSameStyling(t, fullLex(newText), h)
}

func TestRefreshEditInsideInterpolation(t *testing.T) {
	oldText := "s = '${\na\n}';\n"
	newText := "s = '${\nab\n}';\n"

	h := fullLex(oldText)
	h.Refresh([]byte(newText))
	requireSameStyling(t, fullLex(newText), h)
}

func TestRefreshWithMultiByteTextBeforeEdit(t *testing.T) {
	// the common prefix is counted in bytes, so multi-byte text ahead of the
	// edit must not drag the restart line earlier than the change
	oldText := "// naïve – außer Betrieb\nvar π = 'héllo';\nvar x = 1;\n"
	newText := "// naïve – außer Betrieb\nvar π = 'héllo';\nvar x = 2;\n"

	h := fullLex(oldText)
	restart := h.Refresh([]byte(newText))

	assert.Equal(t, 2, restart, "re-lex starts at the edited line")
	requireSameStyling(t, fullLex(newText), h)
}

func TestRefreshAppendAndTruncate(t *testing.T) {
	h := fullLex("void a() {}\n")

	h.Refresh([]byte("void a() {}\nvoid b() {}\n"))
	requireSameStyling(t, fullLex("void a() {}\nvoid b() {}\n"), h)

	h.Refresh([]byte("void a() {}\n"))
	requireSameStyling(t, fullLex("void a() {}\n"), h)
}

func TestRefreshProperty(t *testing.T) {
	fragment := rapid.SampledFrom([]string{
		"var x = 1;\n",
		"// c\n",
		"/* b\nb */\n",
		"'''t\nt'''\n",
		"\"i ${a}\"\n",
		"import 'a.dart';\n",
		"// überschrieben ✓\n",
		"s = 'héllo';\n",
		"{\n",
		"}\n",
	})
	rapid.Check(t, func(rt *rapid.T) {
		oldParts := rapid.SliceOfN(fragment, 1, 8).Draw(rt, "old")
		newParts := rapid.SliceOfN(fragment, 1, 8).Draw(rt, "new")
		oldText := strings.Join(oldParts, "")
		newText := strings.Join(newParts, "")

		h := fullLex(oldText)
		h.Refresh([]byte(newText))
		requireSameStyling(rt, fullLex(newText), h)
	})
}
