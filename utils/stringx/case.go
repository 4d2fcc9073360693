// File: case.go
// Title: String Case Conversion Utilities
// Description: Converts identifiers and phrases between snake_case, camelCase,
//              PascalCase, kebab-case and Title Case. Title casing is
//              language-aware through golang.org/x/text/cases.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-05
// Modified: 2026-10-13
//
// Change History:
// - 2026-09-05 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-13 v0.2.0: Shared word splitter, x/text title casing

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits s into words on separators (space, '_', '-', '.') and on case
// transitions. Acronyms stay together: "parseHTTPRequest" yields
// ["parse", "HTTP", "Request"].
func Words(s string) []string {
	var (
		words []string
		cur   []rune
	)
	runes := []rune(s)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		if unicode.IsSpace(r) || r == '_' || r == '-' || r == '.' {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			switch {
			case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
				flush()
			case unicode.IsUpper(r) && unicode.IsUpper(prev) && nextLower:
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

func joinWords(s, sep string, transform func(i int, w string) string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = transform(i, w)
	}
	return strings.Join(words, sep)
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// ToSnakeCase converts s to snake_case: "MyVariableName" -> "my_variable_name"
func ToSnakeCase(s string) string {
	return joinWords(s, "_", func(_ int, w string) string { return strings.ToLower(w) })
}

// ToKebabCase converts s to kebab-case: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s string) string {
	return joinWords(s, "-", func(_ int, w string) string { return strings.ToLower(w) })
}

// ToCamelCase converts s to camelCase: "my_variable_name" -> "myVariableName"
func ToCamelCase(s string) string {
	return joinWords(s, "", func(i int, w string) string {
		if i == 0 {
			return strings.ToLower(w)
		}
		return capitalize(w)
	})
}

// ToPascalCase converts s to PascalCase: "my_variable_name" -> "MyVariableName"
func ToPascalCase(s string) string {
	return joinWords(s, "", func(_ int, w string) string { return capitalize(w) })
}

// ToTitleCase title-cases s using language-neutral rules, keeping the
// original spacing: "hello wORLD" -> "Hello World"
func ToTitleCase(s string) string {
	return ToTitleCaseLang(s, language.Und)
}

// ToTitleCaseLang title-cases s with the rules of tag, e.g. language.Dutch
// turns "ijssel" into "IJssel"
func ToTitleCaseLang(s string, tag language.Tag) string {
	return cases.Title(tag).String(s)
}
