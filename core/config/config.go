// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing, and accessing
//              configuration data from TOML and YAML files with environment
//              variable overrides and dot-notation key access.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-04
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-04 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-12 v0.2.0: fsnotify watching, duration units from timex

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/log"
	"github.com/msto63/extkit/utils/stringx"
	"github.com/msto63/extkit/utils/timex"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	handlers  []ChangeHandler
	logger    *log.Logger

	watcher *watcher
}

// ChangeHandler is called when configuration changes are detected
type ChangeHandler func(oldConfig, newConfig *Config)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, merged recursively
	Watch     bool                   // Reload when the file changes
	Logger    *log.Logger            // Receives reload failures (default: discard)
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, exterr.New("config file path cannot be empty").
			WithCode(exterr.CodeInvalidArgument).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, exterr.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(exterr.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, exterr.Wrap(err, "failed to read config file").
			WithCode(exterr.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, exterr.Wrap(err, "failed to parse config file").
			WithCode(exterr.CodeInvalidFormat).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	logger := options.Logger
	if logger == nil {
		logger = log.Discard()
	}

	c := &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
		logger:    logger.WithField("component", "config"),
	}

	if options.Watch {
		if err := c.startWatching(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, exterr.Wrap(err, "failed to parse config from string").
			WithCode(exterr.CodeInvalidFormat).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format, logger: log.Discard()}, nil
}

// New returns an empty configuration, useful as a base for Set
func New() *Config {
	return &Config{data: make(map[string]interface{}), logger: log.Discard()}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, exterr.Wrap(err, "TOML parse error").
				WithCode(exterr.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, exterr.Wrap(err, "YAML parse error").
				WithCode(exterr.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, exterr.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(exterr.CodeInvalidArgument).
			WithOperation("config.parseContent")
	}

	return data, nil
}

// mergeDefaults fills in defaults for keys missing from data, descending into
// nested tables
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := deepCopyMap(data)
	for k, dv := range defaults {
		existing, ok := result[k]
		if !ok {
			if m, isMap := dv.(map[string]interface{}); isMap {
				result[k] = deepCopyMap(m)
			} else {
				result[k] = dv
			}
			continue
		}
		em, eIsMap := existing.(map[string]interface{})
		dm, dIsMap := dv.(map[string]interface{})
		if eIsMap && dIsMap {
			result[k] = mergeDefaults(em, dm)
		}
	}
	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		return firstOr(defaultValue, "")
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if envValue, ok := c.getEnvValue(key); ok {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return firstOr(defaultValue, 0)
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if envValue, ok := c.getEnvValue(key); ok {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}
	return firstOr(defaultValue, false)
}

// GetFloat returns a float64 configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	if envValue, ok := c.getEnvValue(key); ok {
		if floatVal, err := strconv.ParseFloat(envValue, 64); err == nil {
			return floatVal
		}
	}

	switch v := c.getValue(key).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal
		}
	}
	return firstOr(defaultValue, 0)
}

// GetDuration returns a duration configuration value. Strings accept the
// units understood by timex.ParseDuration, including "d" and "w".
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	if envValue, ok := c.getEnvValue(key); ok {
		if d, err := timex.ParseDuration(envValue); err == nil {
			return d
		}
	}

	switch v := c.getValue(key).(type) {
	case string:
		if d, err := timex.ParseDuration(v); err == nil {
			return d
		}
	case time.Duration:
		return v
	case int:
		return time.Duration(v)
	case int64:
		return time.Duration(v)
	}
	return firstOr(defaultValue, 0)
}

// GetStringSlice returns a string slice configuration value with optional default
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	if envValue, ok := c.getEnvValue(key); ok {
		parts := strings.Split(envValue, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	switch v := c.getValue(key).(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}
	return firstOr(defaultValue, nil)
}

func firstOr[T any](values []T, fallback T) T {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}

func (c *Config) getValue(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	current := c.data
	keys := strings.Split(key, ".")
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// getEnvValue looks up the override for key; database.host with prefix
// EXTKIT becomes EXTKIT_DATABASE_HOST
func (c *Config) getEnvValue(key string) (string, bool) {
	value, ok := os.LookupEnv(c.formatEnvKey(key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		c.data = make(map[string]interface{})
	}
	keys := strings.Split(key, ".")
	current := c.data
	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// Keys returns every leaf key in dot notation, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			full := k
			if prefix != "" {
				full = prefix + "." + k
			}
			if nested, ok := v.(map[string]interface{}); ok {
				walk(full, nested)
				continue
			}
			keys = append(keys, full)
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

// GetAll returns a deep copy of all configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

// FilePath returns the file the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration format
func (c *Config) Format() Format {
	return c.format
}

// OnChange registers a handler invoked after each successful reload
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// String lists the leaf keys without their values
func (c *Config) String() string {
	return fmt.Sprintf("Config{file: %q, format: %s, keys: %v}", c.filePath, c.format, c.Keys())
}
