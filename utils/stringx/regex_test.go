// File: regex_test.go
// Title: Regular Expression Helper Tests
// Description: Tests for the cached regular expression wrappers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial tests

package stringx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exterr "github.com/msto63/extkit/core/error"
)

func TestRegexHelpers(t *testing.T) {
	ok, err := MatchesRegex("order-1234", `^order-\d+$`)
	require.NoError(t, err)
	assert.True(t, ok)

	replaced, err := ReplaceRegex("2026-10-13", `(\d+)-(\d+)-(\d+)`, "$3.$2.$1")
	require.NoError(t, err)
	assert.Equal(t, "13.10.2026", replaced)

	upper, err := ReplaceRegexFunc("a1b22c", `\d+`, func(m string) string { return "<" + m + ">" })
	require.NoError(t, err)
	assert.Equal(t, "a<1>b<22>c", upper)

	parts, err := SplitRegex("a, b;c  d", `[,;\s]+`, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, parts)

	all, err := FindAllRegex("x1 y22 z333", `\d+`, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "22"}, all)
}

func TestRegexInvalidPattern(t *testing.T) {
	_, err := MatchesRegex("x", `(unclosed`)
	require.Error(t, err)
	assert.True(t, exterr.HasCode(err, exterr.CodeInvalidFormat))
	assert.True(t, strings.Contains(err.Error(), "valid pattern"))
}

func TestRegexCacheReuse(t *testing.T) {
	before := RegexCacheStats().Stats()
	pattern := `^cache-reuse-\w+$`

	first, err := CompileRegex(pattern)
	require.NoError(t, err)
	second, err := CompileRegex(pattern)
	require.NoError(t, err)

	assert.Same(t, first, second)
	after := RegexCacheStats().Stats()
	assert.GreaterOrEqual(t, after.Hits, before.Hits+1)
}
