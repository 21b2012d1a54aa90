package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "config.yaml"),
		[]byte("API_PORT: 7070\nSEARCH_TIMEOUT: 3s\n"), 0o644))
	chdir(t, dir)
	t.Setenv("LOG_LEVEL", "debug")

	require.NoError(t, ReadConfig())
	assert.Equal(t, 7070, viper.GetInt("API_PORT"))
	assert.Equal(t, 3*time.Second, viper.GetDuration("SEARCH_TIMEOUT"))
	assert.Equal(t, "debug", viper.GetString("LOG_LEVEL"))
	assert.Equal(t, "./data/streetmap.graph", viper.GetString("GRAPH_FILE"))
}

func TestReadConfigWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir())

	require.NoError(t, ReadConfig())
	assert.Equal(t, 6060, viper.GetInt("API_PORT"))
	assert.Equal(t, 10*time.Second, viper.GetDuration("SEARCH_TIMEOUT"))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
