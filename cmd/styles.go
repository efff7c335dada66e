package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles <file.dart>",
	Short: "Dump the style runs of a Dart file",
	Long:  `Lexes the file and prints every maximal run of identically-styled bytes as "start end style", a debugging surface for the colouriser.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runStyles,
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}

func runStyles(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() { _ = provider.Shutdown(context.Background()) }()

	h, err := loadHighlighter(args[0], provider)
	if err != nil {
		return err
	}

	for _, run := range h.Document().StyleRuns() {
		fmt.Printf("%6d %6d  %s\n", run.Start, run.End, run.Style)
	}
	return nil
}
