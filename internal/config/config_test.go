package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigYAML(t *testing.T) {
	data := []byte(`
target: js
known_globals:
  - "console*"
suggestion_distance: 2
report_collisions: false
workers: 4
`)
	cfg, err := ParseConfig(data, "derw.yaml")
	require.NoError(t, err)
	assert.Equal(t, TargetJavaScript, cfg.Target)
	assert.Equal(t, []string{"console*"}, cfg.KnownGlobals)
	assert.Equal(t, 2, cfg.SuggestionDistance)
	assert.False(t, cfg.ShouldReportCollisions())
	assert.Equal(t, 4, cfg.Workers)
}

func TestParseConfigTOML(t *testing.T) {
	data := []byte(`
target = "TS"
known_globals = ["Math*", "JSON*"]
`)
	cfg, err := ParseConfig(data, "derw.toml")
	require.NoError(t, err)
	assert.Equal(t, TargetTypeScript, cfg.Target)
	assert.Equal(t, []string{"Math*", "JSON*"}, cfg.KnownGlobals)
	assert.Equal(t, DefaultSuggestionDistance, cfg.SuggestionDistance)
	assert.True(t, cfg.ShouldReportCollisions())
	assert.Positive(t, cfg.Workers)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"), "derw.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown target", "target: elm"},
		{"negative distance", "suggestion_distance: -1"},
		{"negative workers", "workers: -2"},
		{"empty glob", "known_globals: [\"  \"]"},
		{"bad glob", "known_globals: [\"[a-\"]"},
		{"not yaml", "target: [unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), "derw.yaml")
			assert.Error(t, err)
		})
	}
}

func TestFindConfigWalksParents(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := FindConfig(nested)
	require.NoError(t, err)
	assert.Empty(t, found)

	path := filepath.Join(root, "derw.toml")
	require.NoError(t, os.WriteFile(path, []byte(`target = "js"`), 0o644))

	found, err = FindConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	cfg, err := LoadConfig(found)
	require.NoError(t, err)
	assert.Equal(t, TargetJavaScript, cfg.Target)
}
