package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "todi.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, filepath.Join("scraped", "index.jsonlines"), cfg.StorePath())
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todi.yaml")
	content := `
data_dir: /data/todi
store:
  backend: redis
  redis:
    addr: redis:6379
    db: 2
synthesis:
  per_exercise: 8
  seed: 99
  delay: 250ms
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/todi", cfg.DataDir)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, "todi:records", cfg.Store.Redis.Key, "unset keys keep defaults")
	assert.Equal(t, 8, cfg.Synthesis.PerExercise)
	assert.Equal(t, uint64(99), cfg.Synthesis.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Synthesis.Delay)
	assert.Equal(t, 30*time.Second, cfg.Synthesis.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "nld", cfg.OCR.Lang)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todi.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ocr": {"lang": "eng", "crop_height": 30}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "eng", cfg.OCR.Lang)
	assert.Equal(t, 30, cfg.OCR.CropHeight)
	assert.Equal(t, "tesseract", cfg.OCR.Command)
}

func TestLoad_JSONDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todi.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"synthesis": {"delay": "250ms", "timeout": "1m"}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Synthesis.Delay)
	assert.Equal(t, time.Minute, cfg.Synthesis.Timeout)
	assert.Equal(t, 5, cfg.Synthesis.PerExercise)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("store: [unclosed"), 0644))
	_, err := Load(broken)
	assert.ErrorContains(t, err, "failed to parse")

	backend := filepath.Join(dir, "backend.yaml")
	require.NoError(t, os.WriteFile(backend, []byte("store:\n  backend: sqlite\n"), 0644))
	_, err = Load(backend)
	assert.ErrorContains(t, err, `unknown store backend "sqlite"`)
}

func TestStorePath_Absolute(t *testing.T) {
	cfg := Default()
	abs, err := filepath.Abs("index.jsonlines")
	require.NoError(t, err)
	cfg.Store.Path = abs
	assert.Equal(t, abs, cfg.StorePath())
}
