// File: template.go
// Title: Positional Templates
// Description: Implements "{0} {1}" style templates: formatting values into a
//              template and the reverse, extracting the values from a string
//              that was produced by a template. "{{" and "}}" stand for
//              literal braces.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/utils/mapx"
)

// Template is a parsed positional template. It is immutable and safe for
// concurrent use.
type Template struct {
	source   string
	segments []segment
	indexes  []int // placeholder index per occurrence, in template order
	pattern  *regexp.Regexp
}

// segment is either literal text (index < 0) or a placeholder
type segment struct {
	literal string
	index   int
}

var templateCache = mapx.NewCache[string, *Template](mapx.CacheOptions{MaxEntries: regexCacheSize})

// ParseTemplate parses and caches template
func ParseTemplate(template string) (*Template, error) {
	return templateCache.GetOrAdd(template, parseTemplate)
}

// MustParseTemplate is like ParseTemplate but panics on error
func MustParseTemplate(template string) *Template {
	t, err := ParseTemplate(template)
	if err != nil {
		panic(err)
	}
	return t
}

func parseTemplate(template string) (*Template, error) {
	t := &Template{source: template}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{literal: lit.String(), index: -1})
			lit.Reset()
		}
	}

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			lit.WriteByte('{')
			i++
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			lit.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return nil, errors.StringxInvalidPattern("ParseTemplate", template,
					fmt.Errorf("unclosed placeholder at offset %d", i))
			}
			digits := template[i+1 : i+1+end]
			index, err := strconv.Atoi(digits)
			if err != nil || index < 0 || digits[0] == '+' {
				return nil, errors.StringxInvalidPattern("ParseTemplate", template,
					fmt.Errorf("placeholder {%s} at offset %d is not a non-negative index", digits, i))
			}
			flush()
			t.segments = append(t.segments, segment{index: index})
			t.indexes = append(t.indexes, index)
			i += end + 1
		case c == '}':
			return nil, errors.StringxInvalidPattern("ParseTemplate", template,
				fmt.Errorf("unmatched '}' at offset %d", i))
		default:
			lit.WriteByte(c)
		}
	}
	flush()

	t.pattern = regexp.MustCompile(t.buildPattern())
	return t, nil
}

// buildPattern turns the template into an anchored expression with one lazy
// named group per placeholder occurrence: "{0}-{1}" becomes
// (?s)^(?P<arg0>.*?)-(?P<arg1>.*?)$
func (t *Template) buildPattern() string {
	var b strings.Builder
	b.WriteString("(?s)^")
	occurrence := 0
	for _, seg := range t.segments {
		if seg.index < 0 {
			b.WriteString(regexp.QuoteMeta(seg.literal))
			continue
		}
		fmt.Fprintf(&b, "(?P<arg%d>.*?)", occurrence)
		occurrence++
	}
	b.WriteString("$")
	return b.String()
}

// String returns the template source
func (t *Template) String() string { return t.source }

// Pattern returns the compiled matching expression
func (t *Template) Pattern() *regexp.Regexp { return t.pattern }

// Placeholders returns the placeholder index of every occurrence in order
func (t *Template) Placeholders() []int {
	return append([]int(nil), t.indexes...)
}

// Format substitutes args into the template. Every placeholder index must
// have a matching argument; surplus arguments are ignored.
func (t *Template) Format(args ...interface{}) (string, error) {
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.index < 0 {
			b.WriteString(seg.literal)
			continue
		}
		if seg.index >= len(args) {
			return "", errors.OutOfRange(errors.ModuleStringx, "FormatWith", seg.index, 0, len(args)-1)
		}
		fmt.Fprint(&b, args[seg.index])
	}
	return b.String(), nil
}

// Extract matches value against the template and returns one string per
// placeholder occurrence, in template order. When placeholders are adjacent
// the split is ambiguous and earlier placeholders receive the shortest text.
func (t *Template) Extract(value string) ([]string, error) {
	m := t.pattern.FindStringSubmatch(value)
	if m == nil {
		return nil, errors.StringxPatternMismatch("ExtractArguments", value, t.source)
	}
	return m[1:], nil
}

// ExtractMap is like Extract but keys the values by placeholder index. A
// placeholder that occurs more than once must capture the same text each time.
func (t *Template) ExtractMap(value string) (map[int]string, error) {
	values, err := t.Extract(value)
	if err != nil {
		return nil, err
	}
	result := make(map[int]string, len(values))
	for i, v := range values {
		index := t.indexes[i]
		if prev, seen := result[index]; seen && prev != v {
			return nil, errors.StringxPatternMismatch("ExtractArgumentMap", value, t.source).
				WithDetail("placeholder", index)
		}
		result[index] = v
	}
	return result, nil
}

// FormatWith substitutes args into a "{0} {1}" template
//
//	FormatWith("{0} has {1} items", "cart", 3) // "cart has 3 items"
func FormatWith(template string, args ...interface{}) (string, error) {
	t, err := ParseTemplate(template)
	if err != nil {
		return "", err
	}
	return t.Format(args...)
}

// TemplatePattern returns the regular expression that recognises strings
// produced by template
func TemplatePattern(template string) (*regexp.Regexp, error) {
	t, err := ParseTemplate(template)
	if err != nil {
		return nil, err
	}
	return t.pattern, nil
}

// ExtractArguments is the inverse of FormatWith: it returns the text that
// stood in for each placeholder occurrence of template within value.
//
//	ExtractArguments("cart has 3 items", "{0} has {1} items") // ["cart", "3"]
func ExtractArguments(value, template string) ([]string, error) {
	t, err := ParseTemplate(template)
	if err != nil {
		return nil, err
	}
	return t.Extract(value)
}

// ExtractArgumentMap returns the extracted values keyed by placeholder index
func ExtractArgumentMap(value, template string) (map[int]string, error) {
	t, err := ParseTemplate(template)
	if err != nil {
		return nil, err
	}
	return t.ExtractMap(value)
}
