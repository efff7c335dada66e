// Package cmd implements the lexilla command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/techee/lexilla/internal/config"
	"github.com/techee/lexilla/internal/highlight"
	"github.com/techee/lexilla/internal/keywords"
	"github.com/techee/lexilla/internal/lexer"
	"github.com/techee/lexilla/internal/log"
	"github.com/techee/lexilla/internal/render"
	"github.com/techee/lexilla/internal/tracing"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	traceFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "lexilla <file.dart>",
	Short:   "Incremental Dart syntax colouriser and folder",
	Long:    `Lexes a Dart source file with the incremental colouriser and prints it highlighted. Subcommands expose the fold structure, raw style runs, a file watcher with incremental re-lexing, and a terminal viewer.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runHighlight,
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .lexilla/config.yaml, then ~/.config/lexilla/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log to .lexilla/debug.log")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false,
		"trace lexer runs (default exporter: file, written to trace.file_path)")

	_ = viper.BindPFlag("trace.enabled", rootCmd.PersistentFlags().Lookup("trace"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("theme.mode", defaults.Theme.Mode)
	viper.SetDefault("watch.debounce", defaults.Watch.Debounce)
	viper.SetDefault("trace.exporter", defaults.Trace.Exporter)
	viper.SetDefault("trace.otlp_endpoint", defaults.Trace.OTLPEndpoint)
	viper.SetDefault("trace.sample_rate", defaults.Trace.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .lexilla/config.yaml (current directory)
		// 2. ~/.config/lexilla/config.yaml (user config)
		if _, err := os.Stat(".lexilla/config.yaml"); err == nil {
			viper.SetConfigFile(".lexilla/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "lexilla"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .lexilla/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".lexilla/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)

	if debugFlag || os.Getenv("LEXILLA_DEBUG") != "" {
		if _, err := os.Stat(".lexilla"); os.IsNotExist(err) {
			_ = os.MkdirAll(".lexilla", 0o750)
		}
		if _, err := log.Init(".lexilla/debug.log"); err != nil {
			fmt.Fprintf(os.Stderr, "debug log unavailable: %v\n", err)
		}
	}
}

// newProvider builds the tracing provider from config plus the --trace flag.
func newProvider() (*tracing.Provider, error) {
	return tracing.NewProvider(tracing.Config{
		Enabled:      cfg.Trace.Enabled || traceFlag,
		Exporter:     cfg.Trace.Exporter,
		FilePath:     cfg.Trace.FilePath,
		OTLPEndpoint: cfg.Trace.OTLPEndpoint,
		SampleRate:   cfg.Trace.SampleRate,
	})
}

// keywordLists returns the configured word lists in keyword-index order.
func keywordLists() [lexer.KeywordListCount]lexer.WordList {
	return keywords.WithExtensions(cfg.Keywords.Extensions())
}

// loadHighlighter reads path and runs both passes over it.
func loadHighlighter(path string, provider *tracing.Provider) (*highlight.Highlighter, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	h := highlight.New(data, keywordLists())
	_, span := provider.StartPass(context.Background(), "lexilla.lex", 0, len(data))
	h.Lex()
	span.End()
	return h, nil
}

func runHighlight(cmd *cobra.Command, args []string) error {
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
	fmt.Print(renderer.Render(h.Document()))
	return nil
}
