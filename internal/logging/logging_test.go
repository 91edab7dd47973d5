package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardsWithoutDebug(t *testing.T) {
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")
	logPath := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(false, logPath, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, logPath, path)

	Logger.Info("hello", "k", "v")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestRotateLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	names := []string{"a.log", "b.log", "c.log", "keep.txt"}
	for i, name := range names {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, ts, ts))
	}

	require.NoError(t, rotateLogs(dir, 2))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.True(t, os.IsNotExist(err), "oldest log removed")
	_, err = os.Stat(filepath.Join(dir, "b.log"))
	assert.True(t, os.IsNotExist(err), "room made for the new log")
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}
