package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/techee/lexilla/internal/render"
)

var foldCmd = &cobra.Command{
	Use:   "fold <file.dart>",
	Short: "Print the fold structure of a Dart file",
	Long:  `Lexes the file and prints every line prefixed with its fold level relative to the base and a marker on fold headers.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFold,
}

func init() {
	rootCmd.AddCommand(foldCmd)
}

func runFold(cmd *cobra.Command, args []string) error {
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
	fmt.Print(renderer.FoldGutter(h.Document()))
	return nil
}
