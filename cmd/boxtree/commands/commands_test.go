package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/boxtree/internal/config"
)

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

// execute runs the root command and returns stdout with styling removed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return ansiSeq.ReplaceAllString(out.String(), ""), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "boxtree version 0.1.0\n", out)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)

	out, err := execute(t, "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = execute(t, "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	out, err = execute(t, "init", "--config", path, "--force", "--theme")
	require.NoError(t, err)
	themePath := filepath.Join(dir, "theme.toml")
	assert.Contains(t, out, "Created "+themePath)
	assert.FileExists(t, themePath)

	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, themePath, cfg.Theme.File)

	out, err = execute(t, "init", "--config", path, "--force", "--theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Kept existing "+themePath)
}

func TestLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	_, err := execute(t, "init", "--config", path, "--theme")
	require.NoError(t, err)

	out, err := execute(t, "layout", "--config", path, "--width", "1024", "--height", "768")
	require.NoError(t, err)

	for _, line := range []string{
		"Box 0,0 1024x768",
		"Box #1 0,0 1024x48",
		"Box #2 0,48 192x720",
		"Box #3 192,48 832x720",
		"RadioButton #4 933,15.5 25x17",
		"RadioButton #4 958,15.5 25x17",
		"RadioButton #4 983,15.5 25x17",
	} {
		assert.Contains(t, out, line)
	}
}

func TestLayoutDefaultsToWindowSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	out, err := execute(t, "layout", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Box 0,0 640x480")
	assert.Contains(t, out, "Box #2 0,48 640x192", "narrow window stacks the sidebar")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("[log]\nformat = \"xml\"\n"), 0o644))

	_, err := execute(t, "layout", "--config", path)
	assert.ErrorContains(t, err, "log format")
}
