// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, environment variable overrides,
//              defaults merging, typed settings and file watching.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-04
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-04 v0.1.0: Initial test implementation
// - 2026-10-12 v0.2.0: Settings and fsnotify watcher tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "test.toml")
		writeFile(t, configPath, `
[database]
host = "localhost"
port = 5432
ssl = true

[server]
timeout = "30s"
retention = "2d"
workers = 4
features = ["auth", "logging", "metrics"]
`)

		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.GetString("database.host"))
		assert.Equal(t, 5432, cfg.GetInt("database.port"))
		assert.True(t, cfg.GetBool("database.ssl"))
		assert.Equal(t, 30*time.Second, cfg.GetDuration("server.timeout"))
		assert.Equal(t, 48*time.Hour, cfg.GetDuration("server.retention"))
		assert.Equal(t, []string{"auth", "logging", "metrics"}, cfg.GetStringSlice("server.features"))
		assert.Equal(t, FormatTOML, cfg.Format())
		assert.Equal(t, configPath, cfg.FilePath())
	})

	t.Run("load YAML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "test.yaml")
		writeFile(t, configPath, `
database:
  host: db.internal
  port: 3306
ratio: 0.75
`)

		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, FormatYAML, cfg.Format())
		assert.Equal(t, "db.internal", cfg.GetString("database.host"))
		assert.Equal(t, 3306, cfg.GetInt("database.port"))
		assert.InDelta(t, 0.75, cfg.GetFloat("ratio"), 1e-9)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "absent.toml"))
		require.Error(t, err)
		assert.True(t, exterr.HasCode(err, exterr.CodeNotFound))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		require.Error(t, err)
		assert.True(t, exterr.HasCode(err, exterr.CodeInvalidArgument))
	})

	t.Run("invalid content", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "broken.toml")
		writeFile(t, configPath, "[database\nhost=")

		_, err := Load(configPath)
		require.Error(t, err)
		assert.True(t, exterr.HasCode(err, exterr.CodeInvalidFormat))
	})
}

func TestGetDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "fallback", cfg.GetString("missing", "fallback"))
	assert.Equal(t, 7, cfg.GetInt("missing", 7))
	assert.True(t, cfg.GetBool("missing", true))
	assert.Equal(t, 1.5, cfg.GetFloat("missing", 1.5))
	assert.Equal(t, time.Minute, cfg.GetDuration("missing", time.Minute))
	assert.Nil(t, cfg.GetStringSlice("missing"))
	assert.Equal(t, "", cfg.GetString("missing"))
}

func TestEnvironmentVariables(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "env.toml")
	writeFile(t, configPath, `
[database]
host = "localhost"
port = 5432
`)

	cfg, err := LoadWithOptions(configPath, LoadOptions{EnvPrefix: "EXTKIT_TEST"})
	require.NoError(t, err)

	t.Setenv("EXTKIT_TEST_DATABASE_HOST", "override.example")
	t.Setenv("EXTKIT_TEST_DATABASE_PORT", "6543")
	t.Setenv("EXTKIT_TEST_SERVER_TAGS", "a, b ,c")

	assert.Equal(t, "override.example", cfg.GetString("database.host"))
	assert.Equal(t, 6543, cfg.GetInt("database.port"))
	assert.Equal(t, []string{"a", "b", "c"}, cfg.GetStringSlice("server.tags"))
	assert.Equal(t, "EXTKIT_TEST_DATABASE_HOST", cfg.formatEnvKey("database.host"))
}

func TestDefaultsMerge(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "defaults.toml")
	writeFile(t, configPath, `
[server]
port = 9090
`)

	cfg, err := LoadWithOptions(configPath, LoadOptions{
		Defaults: map[string]interface{}{
			"server": map[string]interface{}{
				"port": 8080,
				"host": "0.0.0.0",
			},
			"debug": false,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.GetInt("server.port"))
	assert.Equal(t, "0.0.0.0", cfg.GetString("server.host"))
	assert.True(t, cfg.Has("debug"))
}

func TestHasSetAndKeys(t *testing.T) {
	cfg, err := LoadFromString(`
[app]
name = "extkit"
`, FormatTOML)
	require.NoError(t, err)

	assert.True(t, cfg.Has("app.name"))
	assert.False(t, cfg.Has("app.version"))

	cfg.Set("app.version", "1.2.3")
	cfg.Set("new.nested.key", 42)

	assert.Equal(t, "1.2.3", cfg.GetString("app.version"))
	assert.Equal(t, 42, cfg.GetInt("new.nested.key"))

	want := []string{"app.name", "app.version", "new.nested.key"}
	if diff := cmp.Diff(want, cfg.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetAllReturnsCopy(t *testing.T) {
	cfg, err := LoadFromString("[a]\nb = 1\n", FormatTOML)
	require.NoError(t, err)

	all := cfg.GetAll()
	all["a"].(map[string]interface{})["b"] = 99

	assert.Equal(t, 1, cfg.GetInt("a.b"))
}

func TestFormatDetection(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.toml", FormatTOML},
		{"config.yaml", FormatYAML},
		{"config.YML", FormatYAML},
		{"config", FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, detectFormat(tt.path))
		})
	}
}

func TestSettingsFrom(t *testing.T) {
	t.Run("nil config yields defaults", func(t *testing.T) {
		s, err := SettingsFrom(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultSettings(), s)
	})

	t.Run("values override defaults", func(t *testing.T) {
		cfg, err := LoadFromString(`
[log]
level = "debug"
format = "json"

[crypto]
scrypt_n = 1024

[strings]
wildcard_fold_case = true

[cache]
ttl = "5m"

[files]
concurrency = 8
`, FormatTOML)
		require.NoError(t, err)

		s, err := SettingsFrom(cfg)
		require.NoError(t, err)

		assert.Equal(t, log.LevelDebug, s.LogLevel)
		assert.Equal(t, log.FormatJSON, s.LogFormat)
		assert.Equal(t, 1024, s.ScryptN)
		assert.Equal(t, defaultScryptR, s.ScryptR)
		assert.True(t, s.WildcardFoldCase)
		assert.Equal(t, 5*time.Minute, s.CacheTTL)
		assert.Equal(t, 8, s.FilesConcurrency)
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{"bad level", "[log]\nlevel = \"loud\"\n"},
			{"bad format", "[log]\nformat = \"xml\"\n"},
			{"scrypt n not power of two", "[crypto]\nscrypt_n = 1000\n"},
			{"zero concurrency", "[files]\nconcurrency = 0\n"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cfg, err := LoadFromString(tt.content, FormatTOML)
				require.NoError(t, err)

				_, err = SettingsFrom(cfg)
				require.Error(t, err)
				assert.True(t, exterr.HasCode(err, exterr.CodeConfigError))
			})
		}
	})
}

func TestSettingsOptions(t *testing.T) {
	cfg, err := LoadFromString("[cache]\nttl = \"90s\"\n\n[files]\nconcurrency = 3\n", FormatTOML)
	require.NoError(t, err)
	s, err := SettingsFrom(cfg)
	require.NoError(t, err)

	logger := log.Discard()

	cacheOpts := s.CacheOptions(logger)
	assert.Equal(t, 90*time.Second, cacheOpts.TTL)
	assert.Same(t, logger, cacheOpts.Logger)

	batchOpts := s.BatchOptions(logger)
	assert.Equal(t, 3, batchOpts.Concurrency)
	assert.Same(t, logger, batchOpts.Logger)
	assert.False(t, batchOpts.Overwrite)

	defaults := DefaultSettings()
	assert.Zero(t, defaults.CacheOptions(nil).TTL)
	assert.Equal(t, defaultFileWorkers, defaults.BatchOptions(nil).Concurrency)
}

func TestReload(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "reload.toml")
	writeFile(t, configPath, "value = 1\n")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	var oldValue, newValue int
	cfg.OnChange(func(oldConfig, newConfig *Config) {
		oldValue = oldConfig.GetInt("value")
		newValue = newConfig.GetInt("value")
	})

	writeFile(t, configPath, "value = 2\n")
	require.NoError(t, cfg.Reload())

	assert.Equal(t, 1, oldValue)
	assert.Equal(t, 2, newValue)

	writeFile(t, configPath, "value = [")
	err = cfg.Reload()
	require.Error(t, err)
	assert.Equal(t, 2, cfg.GetInt("value"), "failed reload keeps previous values")
}

func TestReloadWithoutFile(t *testing.T) {
	err := New().Reload()
	require.Error(t, err)
	assert.True(t, exterr.HasCode(err, exterr.CodeInvalidArgument))

	err = New().Watch()
	require.Error(t, err)
}

func TestWatch(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "watch.toml")
	writeFile(t, configPath, "value = 1\n")

	cfg, err := LoadWithOptions(configPath, LoadOptions{Watch: true})
	require.NoError(t, err)
	defer cfg.StopWatching()

	changed := make(chan int, 8)
	cfg.OnChange(func(_, newConfig *Config) {
		changed <- newConfig.GetInt("value")
	})

	writeFile(t, configPath, "value = 3\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case v := <-changed:
			if v == 3 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestStopWatchingIdempotent(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "stop.toml")
	writeFile(t, configPath, "value = 1\n")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	require.NoError(t, cfg.Watch())
	require.NoError(t, cfg.Watch())
	cfg.StopWatching()
	cfg.StopWatching()
}

func TestConfigErrorsAreExtkitErrors(t *testing.T) {
	_, err := LoadFromString("= broken", FormatTOML)
	require.Error(t, err)

	var extErr *exterr.Error
	assert.True(t, errors.As(err, &extErr))
	assert.Equal(t, "config.LoadFromString", extErr.Operation())
}
