package process

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Missing File Means Defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
		assert.Equal(t, DefaultBinary, NewExecutor(cfg.Options()...).Binary())
	})

	t.Run("Parses Binary And Environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "runner.yaml")
		data := "binary: /usr/local/bin/xdotool\nenv:\n  DISPLAY: \":1\"\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/usr/local/bin/xdotool", cfg.Binary)
		assert.Equal(t, map[string]string{"DISPLAY": ":1"}, cfg.Environment)
	})

	t.Run("Invalid YAML Is An Error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("binary: [broken"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
