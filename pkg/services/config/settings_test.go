package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "MindWell", cfg.Product)
	assert.Equal(t, "reports", cfg.OutputDir)
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, "wellness.db", cfg.History.DbPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 50, cfg.Log.MaxSize)
	assert.Empty(t, cfg.Storage.Bucket)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
product: CalmPath
output_dir: /tmp/out
history:
  db_path: /tmp/history.db
storage:
  bucket: reports-bucket
  region: eu-west-1
log:
  level: debug
`), 0o600))
	t.Setenv("WELLNESS_OUTPUT_DIR", "/srv/reports")
	t.Setenv("WELLNESS_LOG_FILE", "/var/log/wellness.log")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "CalmPath", cfg.Product)
	assert.Equal(t, "/srv/reports", cfg.OutputDir)
	assert.Equal(t, "/tmp/history.db", cfg.History.DbPath)
	assert.Equal(t, "reports-bucket", cfg.Storage.Bucket)
	assert.Equal(t, "eu-west-1", cfg.Storage.Region)
	assert.Equal(t, "reports", cfg.Storage.Prefix)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/wellness.log", cfg.Log.File)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  region: us-east-1\n"), 0o600))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "storage.bucket is empty")
}
