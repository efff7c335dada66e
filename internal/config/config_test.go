package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/techee/lexilla/internal/lexer"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, 300*time.Millisecond, cfg.Watch.Debounce)
	assert.False(t, cfg.Trace.Enabled)
	assert.Equal(t, "file", cfg.Trace.Exporter)
	assert.Equal(t, "localhost:4317", cfg.Trace.OTLPEndpoint)
	assert.InEpsilon(t, 1.0, cfg.Trace.SampleRate, 0.001)
	assert.Empty(t, cfg.Theme.Mode)
}

func TestKeywordsExtensions(t *testing.T) {
	k := KeywordsConfig{
		Primary: []string{"when"},
		Type:    []string{"Widget", "State"},
	}
	ext := k.Extensions()
	assert.Equal(t, []string{"when"}, ext[lexer.KeywordPrimary])
	assert.Equal(t, []string{"Widget", "State"}, ext[lexer.KeywordType])
	assert.Empty(t, ext[lexer.KeywordSecondary])
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path) //nolint:gosec // G304: temp path
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg), "written config parses back")
	assert.Equal(t, Defaults().Watch.Debounce, cfg.Watch.Debounce)
	assert.Equal(t, Defaults().Trace.Exporter, cfg.Trace.Exporter)
}
