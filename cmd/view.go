package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/techee/lexilla/internal/render"
	"github.com/techee/lexilla/internal/ui/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view <file.dart>",
	Short: "Browse a highlighted Dart file in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() { _ = provider.Shutdown(context.Background()) }()

	h, err := loadHighlighter(args[0], provider)
	if err != nil {
		return err
	}

	renderer := render.New(cfg.Theme)
	model := viewer.New(args[0], h.Document(), renderer)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
