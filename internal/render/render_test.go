package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techee/lexilla/internal/config"
	"github.com/techee/lexilla/internal/document"
	"github.com/techee/lexilla/internal/keywords"
	"github.com/techee/lexilla/internal/lexer"
)

func lexedDoc(src string) *document.Document {
	doc := document.NewString(src)
	kw := keywords.Defaults()
	lexer.Dart.Lex(0, doc.Length(), lexer.StyleDefault, kw, doc)
	lexer.Dart.Fold(0, doc.Length(), lexer.StyleDefault, kw, doc)
	return doc
}

// plainRenderer bypasses terminal detection so tests are deterministic.
func plainRenderer(theme config.ThemeConfig) *Renderer {
	r := New(theme)
	r.plain = true
	return r
}

func TestPlainRenderReturnsText(t *testing.T) {
	src := "void main() {}\n"
	r := plainRenderer(config.ThemeConfig{})
	assert.Equal(t, src, r.Render(lexedDoc(src)))
}

func TestStyledRenderKeepsEveryByte(t *testing.T) {
	src := "void main() {\n  print('x ${1}');\n}\n"
	r := New(config.ThemeConfig{})
	r.plain = false

	out := r.Render(lexedDoc(src))
	// every text byte must survive styling; strip the escape sequences
	stripped := stripANSI(out)
	assert.Equal(t, src, stripped)
}

func TestStyledRenderSplitsAtNewlines(t *testing.T) {
	src := "'''a\nb'''"
	r := New(config.ThemeConfig{})
	r.plain = false

	out := r.Render(lexedDoc(src))
	for _, line := range strings.Split(out, "\n") {
		assert.NotContains(t, line, "\n")
	}
	assert.Equal(t, src, stripANSI(out))
}

func TestThemeOverride(t *testing.T) {
	r := New(config.ThemeConfig{Colors: map[string]string{
		"kw_primary": "#FF0000",
	}})
	assert.Equal(t, lipgloss.Color("#FF0000"), r.styles[lexer.StyleKwPrimary].GetForeground())
}

func TestFoldGutter(t *testing.T) {
	src := "void main() {\n  x();\n}\n"
	r := plainRenderer(config.ThemeConfig{})
	out := r.FoldGutter(lexedDoc(src))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "-", "opening line is marked as a header")
	assert.True(t, strings.HasPrefix(lines[0], " 0"), "first line at base level: %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], " 1"), "body one level deep: %q", lines[1])
}

// stripANSI removes CSI colour sequences from s.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
