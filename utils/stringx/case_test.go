// File: case_test.go
// Title: Case Conversion Tests
// Description: Table-driven tests for word splitting and case conversion.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-05
// Modified: 2026-10-13
//
// Change History:
// - 2026-09-05 v0.1.0: Initial tests
// - 2026-10-13 v0.2.0: Acronyms and language-aware title case

package stringx

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func TestWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"hello", []string{"hello"}},
		{"myVariableName", []string{"my", "Variable", "Name"}},
		{"parseHTTPRequest", []string{"parse", "HTTP", "Request"}},
		{"snake_case-and kebab", []string{"snake", "case", "and", "kebab"}},
		{"version2Beta", []string{"version2", "Beta"}},
		{"  spaced  out ", []string{"spaced", "out"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Words(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCaseConversions(t *testing.T) {
	tests := []struct {
		input                       string
		snake, kebab, camel, pascal string
	}{
		{"MyVariableName", "my_variable_name", "my-variable-name", "myVariableName", "MyVariableName"},
		{"my_variable_name", "my_variable_name", "my-variable-name", "myVariableName", "MyVariableName"},
		{"parse HTTP request", "parse_http_request", "parse-http-request", "parseHttpRequest", "ParseHttpRequest"},
		{"userID", "user_id", "user-id", "userId", "UserId"},
		{"", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToSnakeCase(tt.input); got != tt.snake {
				t.Errorf("ToSnakeCase(%q) = %q; want %q", tt.input, got, tt.snake)
			}
			if got := ToKebabCase(tt.input); got != tt.kebab {
				t.Errorf("ToKebabCase(%q) = %q; want %q", tt.input, got, tt.kebab)
			}
			if got := ToCamelCase(tt.input); got != tt.camel {
				t.Errorf("ToCamelCase(%q) = %q; want %q", tt.input, got, tt.camel)
			}
			if got := ToPascalCase(tt.input); got != tt.pascal {
				t.Errorf("ToPascalCase(%q) = %q; want %q", tt.input, got, tt.pascal)
			}
		})
	}
}

func TestToTitleCase(t *testing.T) {
	if got := ToTitleCase("hello wORLD"); got != "Hello World" {
		t.Errorf("ToTitleCase = %q", got)
	}
	if got := ToTitleCaseLang("ijssel", language.Dutch); got != "IJssel" {
		t.Errorf("ToTitleCaseLang(Dutch) = %q", got)
	}
}
