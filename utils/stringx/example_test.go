// File: example_test.go
// Title: Runnable Examples for stringx
// Description: Examples shown in the package documentation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-05
// Modified: 2026-10-13
//
// Change History:
// - 2026-09-05 v0.1.0: Initial examples
// - 2026-10-13 v0.2.0: Wildcard and template examples

package stringx_test

import (
	"fmt"

	"github.com/msto63/extkit/utils/stringx"
)

func ExampleIsLike() {
	fmt.Println(stringx.IsLike("invoice-2024-03.pdf", "invoice-*.pdf"))
	fmt.Println(stringx.IsLike("invoice-2024-03.txt", "invoice-*.pdf"))
	fmt.Println(stringx.IsLike("anything", "*"))
	// Output:
	// true
	// false
	// true
}

func ExampleFormatWith() {
	s, _ := stringx.FormatWith("{0} owes {1} EUR", "Ann", 42)
	fmt.Println(s)
	// Output: Ann owes 42 EUR
}

func ExampleExtractArguments() {
	args, _ := stringx.ExtractArguments("Ann owes 42 EUR", "{0} owes {1} EUR")
	fmt.Println(args[0], args[1])
	// Output: Ann 42
}

func ExampleTruncate() {
	fmt.Println(stringx.Truncate("This is a long text that needs to be truncated", 20, "..."))
	fmt.Println(stringx.Truncate("short", 10, "..."))
	// Output:
	// This is a long te...
	// short
}

func ExampleToSnakeCase() {
	fmt.Println(stringx.ToSnakeCase("parseHTTPRequest"))
	// Output: parse_http_request
}

func ExampleJoin() {
	fmt.Printf("%q\n", stringx.Join([]int(nil), ","))
	fmt.Println(stringx.Join([]int{1, 2, 3}, "-"))
	// Output:
	// ""
	// 1-2-3
}
