// Package render turns a lexed document into styled terminal output: one
// lipgloss style per lexical style, resolved from the theme configuration.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/techee/lexilla/internal/config"
	"github.com/techee/lexilla/internal/document"
	"github.com/techee/lexilla/internal/lexer"
)

// defaultColors is the built-in palette, keyed by style. The same colours are
// used whatever the theme mode; there is no separate light palette.
var defaultColors = map[lexer.Style]string{
	lexer.StyleCommentLine:        "#6A9955",
	lexer.StyleCommentLineDoc:     "#6A9955",
	lexer.StyleCommentBlock:       "#6A9955",
	lexer.StyleCommentBlockDoc:    "#6A9955",
	lexer.StyleNumber:             "#B5CEA8",
	lexer.StyleKwPrimary:          "#569CD6",
	lexer.StyleKwSecondary:        "#4EC9B0",
	lexer.StyleKwTertiary:         "#C586C0",
	lexer.StyleKwType:             "#4EC9B0",
	lexer.StyleKey:                "#9CDCFE",
	lexer.StyleStringSQ:           "#CE9178",
	lexer.StyleStringDQ:           "#CE9178",
	lexer.StyleTripleStringSQ:     "#CE9178",
	lexer.StyleTripleStringDQ:     "#CE9178",
	lexer.StyleRawStringSQ:        "#D69D85",
	lexer.StyleRawStringDQ:        "#D69D85",
	lexer.StyleTripleRawStringSQ:  "#D69D85",
	lexer.StyleTripleRawStringDQ:  "#D69D85",
	lexer.StyleEscapeChar:         "#D7BA7D",
	lexer.StyleIdentifierString:   "#9CDCFE",
	lexer.StyleOperatorString:     "#D7BA7D",
	lexer.StyleOperator:           "#D4D4D4",
	lexer.StyleMetadata:           "#DCDCAA",
	lexer.StyleSymbolIdentifier:   "#DCDCAA",
	lexer.StyleSymbolOperator:     "#DCDCAA",
}

// Renderer renders lexed documents to ANSI text.
type Renderer struct {
	styles [int(lexer.StyleMax) + 1]lipgloss.Style
	plain  bool
}

// New builds a renderer from the theme configuration. When the terminal
// reports no colour support the renderer falls back to plain text.
func New(theme config.ThemeConfig) *Renderer {
	r := &Renderer{
		plain: termenv.ColorProfile() == termenv.Ascii,
	}
	for s := lexer.StyleDefault; s <= lexer.StyleMax; s++ {
		st := lipgloss.NewStyle()
		color, ok := theme.Colors[s.String()]
		if !ok {
			color = defaultColors[s]
		}
		if color != "" {
			st = st.Foreground(lipgloss.Color(color))
		}
		switch s {
		case lexer.StyleKwPrimary, lexer.StyleKwSecondary:
			st = st.Bold(true)
		case lexer.StyleCommentLine, lexer.StyleCommentLineDoc,
			lexer.StyleCommentBlock, lexer.StyleCommentBlockDoc:
			st = st.Italic(true)
		}
		r.styles[s] = st
	}
	return r
}

// Render returns the document text with each style run wrapped in its
// configured style. Runs are split at newlines so styling never spans a
// line break.
func (r *Renderer) Render(doc *document.Document) string {
	text := doc.Text()
	if r.plain {
		return string(text)
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, run := range doc.StyleRuns() {
		st := r.styles[clampStyle(run.Style)]
		segment := string(text[run.Start:run.End])
		for len(segment) > 0 {
			nl := strings.IndexByte(segment, '\n')
			if nl < 0 {
				b.WriteString(st.Render(segment))
				break
			}
			if nl > 0 {
				b.WriteString(st.Render(segment[:nl]))
			}
			b.WriteByte('\n')
			segment = segment[nl+1:]
		}
	}
	return b.String()
}

// FoldGutter renders the document with a fold gutter: the level digit and a
// header marker in front of every line.
func (r *Renderer) FoldGutter(doc *document.Document) string {
	var b strings.Builder
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	for line := 0; line < doc.LineCount(); line++ {
		lev := doc.LevelAt(line)
		level := int(lev) & lexer.FoldLevelNumberMask
		marker := ' '
		if int(lev)&lexer.FoldLevelHeaderFlag != 0 {
			marker = '-'
		}
		cell := fmt.Sprintf("%2d %c ", level-lexer.FoldLevelBase, marker)
		if r.plain {
			b.WriteString(cell)
		} else {
			b.WriteString(gutter.Render(cell))
		}
		b.WriteString(strings.TrimRight(doc.LineText(line), "\r\n"))
		b.WriteByte('\n')
	}
	return b.String()
}

func clampStyle(s lexer.Style) lexer.Style {
	if s < 0 || s > lexer.StyleMax {
		return lexer.StyleDefault
	}
	return s
}
