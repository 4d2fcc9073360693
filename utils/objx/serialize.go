// File: serialize.go
// Title: Object Serialization
// Description: JSON, YAML and TOML round trips for arbitrary values with
//              uniform error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package objx

import (
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/msto63/extkit/core/errors"
)

// ToJSON encodes v as compact JSON
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", errors.ConversionFailed(errors.ModuleObjx, "ToJSON", typeOf(v), "JSON", err)
	}
	return string(data), nil
}

// ToIndentedJSON encodes v as JSON indented with indent per level
func ToIndentedJSON(v any, indent string) (string, error) {
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return "", errors.ConversionFailed(errors.ModuleObjx, "ToIndentedJSON", typeOf(v), "JSON", err)
	}
	return string(data), nil
}

// FromJSON decodes s into a new T
func FromJSON[T any](s string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return out, errors.InvalidFormat(errors.ModuleObjx, "FromJSON", abbreviate(s), "JSON", err)
	}
	return out, nil
}

// ToYAML encodes v as YAML with two-space indentation
func ToYAML(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := encodeYAML(enc, v); err != nil {
		return "", errors.ConversionFailed(errors.ModuleObjx, "ToYAML", typeOf(v), "YAML", err)
	}
	return buf.String(), nil
}

// encodeYAML recovers from the panics yaml.v3 raises for unsupported types
func encodeYAML(enc *yaml.Encoder, v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewErrorBuilder(errors.ModuleObjx).Messagef("%v", r).Build()
		}
	}()
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// FromYAML decodes s into a new T
func FromYAML[T any](s string) (T, error) {
	var out T
	if err := yaml.Unmarshal([]byte(s), &out); err != nil {
		return out, errors.InvalidFormat(errors.ModuleObjx, "FromYAML", abbreviate(s), "YAML", err)
	}
	return out, nil
}

// ToTOML encodes v as TOML. v must be a struct or a map with string keys.
func ToTOML(v any) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return "", errors.ConversionFailed(errors.ModuleObjx, "ToTOML", typeOf(v), "TOML", err)
	}
	return buf.String(), nil
}

// FromTOML decodes s into a new T
func FromTOML[T any](s string) (T, error) {
	var out T
	if _, err := toml.Decode(s, &out); err != nil {
		return out, errors.InvalidFormat(errors.ModuleObjx, "FromTOML", abbreviate(s), "TOML", err)
	}
	return out, nil
}

func abbreviate(s string) string {
	const limit = 64
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
