// File: xmlx.go
// Title: XML Document Helpers
// Description: Parsing, child and attribute access, mutation, path queries
//              and flattening of XML documents on top of beevik/etree.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Rune-safe abbreviation of parse error input

package xmlx

import (
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/utils/stringx"
)

// Parse reads an XML document from s. A document without a root element is
// rejected.
func Parse(s string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, errors.InvalidFormat(errors.ModuleXmlx, "Parse", abbreviate(s), "well-formed XML", err)
	}
	if doc.Root() == nil {
		return nil, errors.InvalidFormat(errors.ModuleXmlx, "Parse", abbreviate(s), "XML document with a root element", nil)
	}
	return doc, nil
}

// ParseFile reads an XML document from path
func ParseFile(path string) (*etree.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.ModuleXmlx, "ParseFile", path)
		}
		return nil, errors.OperationFailed(errors.ModuleXmlx, "ParseFile", exterr.CodeIOFailed, err)
	}
	doc, err := Parse(string(data))
	if err != nil {
		return nil, exterr.Wrap(err, "parse "+path)
	}
	return doc, nil
}

// abbreviate shortens input for error details without splitting a rune
func abbreviate(s string) string {
	return stringx.Truncate(s, 64, "...")
}

// ===============================
// Access
// ===============================

// ChildValue returns the trimmed text of the first child element named tag
func ChildValue(el *etree.Element, tag string) (string, bool) {
	if el == nil {
		return "", false
	}
	child := el.SelectElement(tag)
	if child == nil {
		return "", false
	}
	return strings.TrimSpace(child.Text()), true
}

// ChildValueOrDefault is ChildValue with a fallback for missing children
func ChildValueOrDefault(el *etree.Element, tag, def string) string {
	if v, ok := ChildValue(el, tag); ok {
		return v
	}
	return def
}

// AttributeValue returns the value of the attribute key on el
func AttributeValue(el *etree.Element, key string) (string, bool) {
	if el == nil {
		return "", false
	}
	attr := el.SelectAttr(key)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

// AttributeValueOrDefault is AttributeValue with a fallback
func AttributeValueOrDefault(el *etree.Element, key, def string) string {
	if el == nil {
		return def
	}
	return el.SelectAttrValue(key, def)
}

// ===============================
// Mutation
// ===============================

// AddElement appends a child element with the given text to parent
func AddElement(parent *etree.Element, tag, text string) (*etree.Element, error) {
	if parent == nil {
		return nil, errors.NilArgument(errors.ModuleXmlx, "AddElement", "parent")
	}
	if strings.TrimSpace(tag) == "" {
		return nil, errors.InvalidArgument(errors.ModuleXmlx, "AddElement", "tag", tag, "must not be blank")
	}
	child := parent.CreateElement(tag)
	if text != "" {
		child.SetText(text)
	}
	return child, nil
}

// SetAttribute sets or replaces the attribute key on el
func SetAttribute(el *etree.Element, key, value string) error {
	if el == nil {
		return errors.NilArgument(errors.ModuleXmlx, "SetAttribute", "el")
	}
	if strings.TrimSpace(key) == "" {
		return errors.InvalidArgument(errors.ModuleXmlx, "SetAttribute", "key", key, "must not be blank")
	}
	el.CreateAttr(key, value)
	return nil
}

// RemoveAttribute deletes the attribute key and reports whether it existed
func RemoveAttribute(el *etree.Element, key string) bool {
	if el == nil {
		return false
	}
	return el.RemoveAttr(key) != nil
}

// ===============================
// Queries and output
// ===============================

// SelectValues returns the trimmed text of every element matching the etree
// path expression, for example "./server/port" or "//item[@type='book']".
func SelectValues(el *etree.Element, path string) ([]string, error) {
	if el == nil {
		return nil, errors.NilArgument(errors.ModuleXmlx, "SelectValues", "el")
	}
	p, err := etree.CompilePath(path)
	if err != nil {
		return nil, errors.InvalidFormat(errors.ModuleXmlx, "SelectValues", path, "etree path expression", err)
	}
	matches := el.FindElementsPath(p)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, strings.TrimSpace(m.Text()))
	}
	return values, nil
}

// ToIndentedString serializes doc with indent spaces per level
func ToIndentedString(doc *etree.Document, indent int) (string, error) {
	if doc == nil {
		return "", errors.NilArgument(errors.ModuleXmlx, "ToIndentedString", "doc")
	}
	out := doc.Copy()
	out.Indent(indent)
	s, err := out.WriteToString()
	if err != nil {
		return "", errors.OperationFailed(errors.ModuleXmlx, "ToIndentedString", exterr.CodeIOFailed, err)
	}
	return s, nil
}

// ToMap flattens the leaf elements below el into a map keyed by their
// slash-separated tag path relative to el. Attributes appear as
// "path/@name". Tags that repeat among siblings get a 1-based index suffix:
//
//	<cfg><host id="a">x</host><port>1</port><port>2</port></cfg>
//	=> host: x, host/@id: a, port[1]: 1, port[2]: 2
func ToMap(el *etree.Element) map[string]string {
	out := make(map[string]string)
	if el == nil {
		return out
	}
	flatten(el, "", out)
	return out
}

func flatten(el *etree.Element, prefix string, out map[string]string) {
	children := el.ChildElements()
	counts := make(map[string]int, len(children))
	for _, c := range children {
		counts[c.FullTag()]++
	}
	seen := make(map[string]int, len(children))

	for _, c := range children {
		tag := c.FullTag()
		key := tag
		if counts[tag] > 1 {
			seen[tag]++
			key += "[" + strconv.Itoa(seen[tag]) + "]"
		}
		if prefix != "" {
			key = prefix + "/" + key
		}
		for _, a := range c.Attr {
			out[key+"/@"+a.FullKey()] = a.Value
		}
		if len(c.ChildElements()) == 0 {
			out[key] = strings.TrimSpace(c.Text())
			continue
		}
		flatten(c, key, out)
	}
}
