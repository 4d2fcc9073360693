// File: regex.go
// Title: Regular Expression Helpers
// Description: Thin wrappers over regexp that compile each pattern once and
//              reuse it from a bounded, concurrent cache.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import (
	"regexp"

	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/utils/mapx"
)

const regexCacheSize = 512

var regexCache = mapx.NewCache[string, *regexp.Regexp](mapx.CacheOptions{MaxEntries: regexCacheSize})

// RegexCacheStats exposes the pattern cache counters, for example to a
// mapx.CacheCollector
func RegexCacheStats() mapx.StatsProvider {
	return regexCache
}

// CompileRegex returns the compiled form of pattern from the cache
func CompileRegex(pattern string) (*regexp.Regexp, error) {
	return regexCache.GetOrAdd(pattern, compileRegex)
}

func compileRegex(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.StringxInvalidPattern("CompileRegex", pattern, err)
	}
	return re, nil
}

// MatchesRegex reports whether s contains a match of pattern
func MatchesRegex(s, pattern string) (bool, error) {
	re, err := CompileRegex(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// ReplaceRegex replaces matches of pattern in s with repl; repl may refer to
// groups as $1 or ${name}
func ReplaceRegex(s, pattern, repl string) (string, error) {
	re, err := CompileRegex(pattern)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(s, repl), nil
}

// ReplaceRegexFunc replaces matches of pattern in s with the result of fn
func ReplaceRegexFunc(s, pattern string, fn func(string) string) (string, error) {
	re, err := CompileRegex(pattern)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllStringFunc(s, fn), nil
}

// SplitRegex splits s around matches of pattern; n follows regexp.Split
func SplitRegex(s, pattern string, n int) ([]string, error) {
	re, err := CompileRegex(pattern)
	if err != nil {
		return nil, err
	}
	return re.Split(s, n), nil
}

// FindAllRegex returns up to n matches of pattern in s, all of them when n < 0
func FindAllRegex(s, pattern string, n int) ([]string, error) {
	re, err := CompileRegex(pattern)
	if err != nil {
		return nil, err
	}
	return re.FindAllString(s, n), nil
}
