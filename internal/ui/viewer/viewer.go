// Package viewer is a minimal read-only TUI for browsing a highlighted Dart
// file: a scrollable viewport over the rendered document plus a status bar
// with fold information.
package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/techee/lexilla/internal/document"
	"github.com/techee/lexilla/internal/lexer"
	"github.com/techee/lexilla/internal/log"
	"github.com/techee/lexilla/internal/render"
)

var statusBarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFDF5")).
	Background(lipgloss.Color("#353533"))

// Model is the viewer's bubbletea model.
type Model struct {
	path     string
	doc      *document.Document
	renderer *render.Renderer
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// New creates a viewer over an already-lexed document.
func New(path string, doc *document.Document, renderer *render.Renderer) Model {
	return Model{
		path:     path,
		doc:      doc,
		renderer: renderer,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.viewport.SetContent(m.renderer.Render(m.doc))
			m.ready = true
			log.Debug(log.CatUI, "viewer ready", "path", m.path, "width", msg.Width, "height", msg.Height)
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.viewport.View() + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	headers := 0
	for line := 0; line < m.doc.LineCount(); line++ {
		if int(m.doc.LevelAt(line))&lexer.FoldLevelHeaderFlag != 0 {
			headers++
		}
	}
	left := fmt.Sprintf(" %s — %d lines, %d fold headers", m.path, m.doc.LineCount(), headers)
	right := fmt.Sprintf("%3.0f%% ", m.viewport.ScrollPercent()*100)

	avail := m.width - runewidth.StringWidth(right)
	if avail < 0 {
		avail = 0
	}
	left = truncate.StringWithTail(left, uint(avail), "…")
	pad := avail - runewidth.StringWidth(left)
	if pad < 0 {
		pad = 0
	}
	return statusBarStyle.Render(left + strings.Repeat(" ", pad) + right)
}
