//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesStarterConfig(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	path := filepath.Join(tf.Workspace(), "select.toml")
	require.NoError(t, tf.StartApp("--init", "--config", path))

	code, err := tf.WaitExit(3 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	data, err := os.ReadFile(path)
	require.NoError(t, err, "config file should be created")
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[[options]]")
}

func TestConfigFileProvidesOptions(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	path := filepath.Join(tf.Workspace(), "env.toml")
	data := `
prompt = "Env:"

[[options]]
label = "Production"
value = "prod"

[[options]]
label = "Staging"
value = "stage"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	require.NoError(t, tf.StartApp("--config", path))
	require.True(t, tf.SeePlain("Env:"))
	require.True(t, tf.SeePlain("2 options from "+path), "status line should report the loaded config")

	require.NoError(t, tf.SendKeys(KeyUp, KeyEnter))

	_, err := tf.WaitExit(3 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "stage", strings.TrimSpace(tf.Stdout()))
}

func TestInvalidConfigFailsFast(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("same", "same"))

	code, err := tf.WaitExit(3 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.True(t, tf.SeePlain("duplicate option value"))
}
