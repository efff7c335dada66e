// Package config provides configuration types and defaults for lexilla.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/techee/lexilla/internal/lexer"
	"github.com/techee/lexilla/internal/log"
)

// Config holds all configuration options for lexilla.
type Config struct {
	Theme    ThemeConfig    `mapstructure:"theme" yaml:"theme"`
	Keywords KeywordsConfig `mapstructure:"keywords" yaml:"keywords"`
	Watch    WatchConfig    `mapstructure:"watch" yaml:"watch"`
	Trace    TraceConfig    `mapstructure:"trace" yaml:"trace"`
}

// ThemeConfig maps style tokens to colours.
type ThemeConfig struct {
	// Mode is loaded from the configuration ("light", "dark" or ""), but the
	// renderer does not read it: rendering is the same for every value.
	Mode string `mapstructure:"mode" yaml:"mode"`

	// Colors overrides individual style colours, keyed by style token
	// ("commentline", "kw_primary", ...) with hex values ("#10B981").
	Colors map[string]string `mapstructure:"colors" yaml:"colors"`
}

// KeywordsConfig extends the built-in word lists.
type KeywordsConfig struct {
	Primary   []string `mapstructure:"primary" yaml:"primary"`
	Secondary []string `mapstructure:"secondary" yaml:"secondary"`
	Tertiary  []string `mapstructure:"tertiary" yaml:"tertiary"`
	Type      []string `mapstructure:"type" yaml:"type"`
}

// Extensions returns the extra words addressed by keyword index.
func (k KeywordsConfig) Extensions() [lexer.KeywordListCount][]string {
	return [lexer.KeywordListCount][]string{
		lexer.KeywordPrimary:   k.Primary,
		lexer.KeywordSecondary: k.Secondary,
		lexer.KeywordTertiary:  k.Tertiary,
		lexer.KeywordType:      k.Type,
	}
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	// Debounce is how long to wait after the last write before re-lexing.
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// TraceConfig configures the tracing subsystem.
type TraceConfig struct {
	Enabled      bool    `mapstructure:"enabled" yaml:"enabled"`
	Exporter     string  `mapstructure:"exporter" yaml:"exporter"` // "stdout", "file", "otlp"
	FilePath     string  `mapstructure:"file_path" yaml:"file_path"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`
	SampleRate   float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Theme: ThemeConfig{
			Mode:   "",
			Colors: map[string]string{},
		},
		Watch: WatchConfig{
			Debounce: 300 * time.Millisecond,
		},
		Trace: TraceConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "",
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// WriteDefaultConfig writes the default configuration as YAML to configPath,
// creating parent directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("marshalling default config: %w", err)
	}
	header := []byte("# lexilla configuration\n# Style colour tokens: default, commentline, kw_primary, string_sq, ...\n")
	if err := os.WriteFile(configPath, append(header, data...), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
