package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analyzer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	require.NoError(t, Load(""))
	cfg := Current()
	assert.Equal(t, *Default(), cfg)
	assert.Error(t, Watch(func(AnalyzerConfiguration, error) {}))
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
appName: riichi
log:
  level: debug
cache:
  enabled: false
rule:
  sevenPairs: false
batch:
  workers: 8
  format: yaml
`)
	require.NoError(t, Load(path))
	cfg := Current()
	assert.Equal(t, "riichi", cfg.AppName)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Cache.Enabled)
	assert.False(t, cfg.Rule.SevenPairs)
	assert.True(t, cfg.Rule.ThirteenOrphans)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, "yaml", cfg.Batch.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	require.NoError(t, Load(writeConfig(t, "log:\n  level: debug\n")))
	assert.Equal(t, "warn", Current().Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	require.NoError(t, Load(""))
	before := Current()

	assert.Error(t, Load(writeConfig(t, "batch:\n  format: xml\n")))
	assert.Error(t, Load(writeConfig(t, "batch:\n  workers: 0\n")))
	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Equal(t, before, Current())
}

func TestCurrent_IsSnapshot(t *testing.T) {
	require.NoError(t, Load(""))
	cfg := Current()
	cfg.AppName = "changed"
	cfg.Rule.SevenPairs = false
	assert.Equal(t, "analyzer", Current().AppName)
	assert.True(t, Current().Rule.SevenPairs)
}

func TestCurrent_ConcurrentWithLoad(t *testing.T) {
	path := writeConfig(t, "appName: riichi\n")
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, Load(path))
		}()
		go func() {
			defer wg.Done()
			_ = Current().AppName
		}()
	}
	wg.Wait()
	assert.Equal(t, "riichi", Current().AppName)
}
