// File: settings.go
// Title: Typed Library Settings
// Description: Maps the well-known configuration keys onto a typed Settings
//              value used by the command line tool and by callers that want
//              one place to tune logging, encryption cost and batch limits.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: CacheOptions and BatchOptions helpers

package config

import (
	"time"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/log"
	"github.com/msto63/extkit/utils/filex"
	"github.com/msto63/extkit/utils/mapx"
)

// Well-known configuration keys
const (
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
	KeyScryptN          = "crypto.scrypt_n"
	KeyScryptR          = "crypto.scrypt_r"
	KeyScryptP          = "crypto.scrypt_p"
	KeyWildcardFoldCase = "strings.wildcard_fold_case"
	KeyCacheTTL         = "cache.ttl"
	KeyFilesConcurrency = "files.concurrency"
	DefaultEnvPrefix    = "EXTKIT"
	defaultScryptN      = 1 << 15
	defaultScryptR      = 8
	defaultScryptP      = 1
	defaultFileWorkers  = 4
)

// Settings holds the typed library settings
type Settings struct {
	LogLevel         log.Level
	LogFormat        log.Format
	ScryptN          int
	ScryptR          int
	ScryptP          int
	WildcardFoldCase bool
	CacheTTL         time.Duration // zero disables expiry
	FilesConcurrency int
}

// DefaultSettings returns the settings used when no configuration is given
func DefaultSettings() Settings {
	return Settings{
		LogLevel:         log.DefaultLevel(),
		LogFormat:        log.FormatConsole,
		ScryptN:          defaultScryptN,
		ScryptR:          defaultScryptR,
		ScryptP:          defaultScryptP,
		FilesConcurrency: defaultFileWorkers,
	}
}

// SettingsFrom reads Settings from cfg, falling back to DefaultSettings for
// missing keys. A nil cfg yields the defaults.
func SettingsFrom(cfg *Config) (Settings, error) {
	s := DefaultSettings()
	if cfg == nil {
		return s, nil
	}

	if v := cfg.GetString(KeyLogLevel); v != "" {
		level, err := log.ParseLevel(v)
		if err != nil {
			return s, invalidSetting(KeyLogLevel, v, err)
		}
		s.LogLevel = level
	}
	if v := cfg.GetString(KeyLogFormat); v != "" {
		format, err := log.ParseFormat(v)
		if err != nil {
			return s, invalidSetting(KeyLogFormat, v, err)
		}
		s.LogFormat = format
	}

	s.ScryptN = cfg.GetInt(KeyScryptN, s.ScryptN)
	s.ScryptR = cfg.GetInt(KeyScryptR, s.ScryptR)
	s.ScryptP = cfg.GetInt(KeyScryptP, s.ScryptP)
	s.WildcardFoldCase = cfg.GetBool(KeyWildcardFoldCase, s.WildcardFoldCase)
	s.CacheTTL = cfg.GetDuration(KeyCacheTTL, s.CacheTTL)
	s.FilesConcurrency = cfg.GetInt(KeyFilesConcurrency, s.FilesConcurrency)

	return s, s.Validate()
}

// Validate checks numeric settings against their accepted ranges
func (s Settings) Validate() error {
	// scrypt requires N to be a power of two greater than one
	if s.ScryptN <= 1 || s.ScryptN&(s.ScryptN-1) != 0 {
		return invalidSetting(KeyScryptN, s.ScryptN, nil)
	}
	if s.ScryptR <= 0 {
		return invalidSetting(KeyScryptR, s.ScryptR, nil)
	}
	if s.ScryptP <= 0 {
		return invalidSetting(KeyScryptP, s.ScryptP, nil)
	}
	if s.CacheTTL < 0 {
		return invalidSetting(KeyCacheTTL, s.CacheTTL, nil)
	}
	if s.FilesConcurrency <= 0 {
		return invalidSetting(KeyFilesConcurrency, s.FilesConcurrency, nil)
	}
	return nil
}

// CacheOptions returns cache options carrying the configured TTL
func (s Settings) CacheOptions(logger *log.Logger) mapx.CacheOptions {
	return mapx.CacheOptions{TTL: s.CacheTTL, Logger: logger}
}

// BatchOptions returns batch file options with the configured concurrency
func (s Settings) BatchOptions(logger *log.Logger) filex.BatchOptions {
	return filex.BatchOptions{Concurrency: s.FilesConcurrency, Logger: logger}
}

// Logger builds a logger honouring the configured level and format
func (s Settings) Logger(cfg log.Config) *log.Logger {
	cfg.Level = s.LogLevel
	cfg.Format = s.LogFormat
	return log.NewWithConfig(cfg)
}

func invalidSetting(key string, value interface{}, cause error) *exterr.Error {
	var err *exterr.Error
	if cause != nil {
		err = exterr.Wrap(cause, "invalid setting "+key)
	} else {
		err = exterr.New("invalid setting " + key)
	}
	return err.
		WithCode(exterr.CodeConfigError).
		WithOperation("config.SettingsFrom").
		WithDetail("key", key).
		WithDetail("value", value)
}
