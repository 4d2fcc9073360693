// File: encoding.go
// Title: Text Encodings
// Description: Encoding lookup by name and encoding-aware text reads and
//              writes built on golang.org/x/text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package streamx

import (
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/errors"
)

// Encoding resolves an encoding name. The empty name means UTF-8. WHATWG
// labels ("utf-16le", "windows-1252", "latin1", "shift_jis") are tried first,
// then IANA names ("ISO-8859-1", "IBM437").
func Encoding(name string) (encoding.Encoding, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(n)
	if err == nil {
		return enc, nil
	}
	enc, ierr := ianaindex.IANA.Encoding(n)
	if ierr == nil && enc != nil {
		return enc, nil
	}
	return nil, errors.StreamxUnknownEncoding(name, err)
}

// EncodingName returns the canonical name of enc, or "" when unknown
func EncodingName(enc encoding.Encoding) string {
	if name, err := htmlindex.Name(enc); err == nil {
		return name
	}
	if name, err := ianaindex.IANA.Name(enc); err == nil {
		return name
	}
	return ""
}

// ReadAllText reads r to EOF and decodes it from the named encoding. A
// leading UTF-8 or UTF-16 byte order mark overrides the name and is removed.
func ReadAllText(r io.Reader, encodingName string) (string, error) {
	if r == nil {
		return "", errors.NilArgument(errors.ModuleStreamx, "ReadAllText", "r")
	}
	enc, err := Encoding(encodingName)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())))
	if err != nil {
		return "", errors.OperationFailed(errors.ModuleStreamx, "ReadAllText", exterr.CodeIOFailed, err)
	}
	return string(data), nil
}

// WriteText encodes text into the named encoding and writes it to w.
// Characters the encoding cannot represent are an error.
func WriteText(w io.Writer, text, encodingName string) error {
	if w == nil {
		return errors.NilArgument(errors.ModuleStreamx, "WriteText", "w")
	}
	enc, err := Encoding(encodingName)
	if err != nil {
		return err
	}
	tw := transform.NewWriter(w, enc.NewEncoder())
	if _, err := io.WriteString(tw, text); err != nil {
		return errors.OperationFailed(errors.ModuleStreamx, "WriteText", exterr.CodeIOFailed, err)
	}
	if err := tw.Close(); err != nil {
		return errors.OperationFailed(errors.ModuleStreamx, "WriteText", exterr.CodeIOFailed, err)
	}
	return nil
}
