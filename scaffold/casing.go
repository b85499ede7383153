/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package scaffold implements the hexgen generation core: identifier case
// transforms, template resolution, the project configuration model, the
// path/name resolution engine, and the artifact orchestrator.
package scaffold

import (
	"strings"
	"unicode"
)

// ToCamelCase converts an identifier to camelCase. Hyphen and underscore
// separators are stripped, the character following each removed separator is
// uppercased, and the first character is forced to lowercase. camelCase is
// the canonical intermediate form for all other case transforms.
func ToCamelCase(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	upperNext := false
	for _, r := range s {
		if r == '-' || r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}

	out := []rune(b.String())
	if len(out) == 0 {
		return ""
	}
	out[0] = unicode.ToLower(out[0])
	return string(out)
}

// ToPascalCase converts an identifier to PascalCase. It is the camelCase
// form with the first character uppercased.
func ToPascalCase(s string) string {
	camel := ToCamelCase(s)
	if camel == "" {
		return ""
	}
	runes := []rune(camel)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ToKebabCase converts an identifier to kebab-case. A hyphen is inserted at
// every lowercase-to-uppercase transition in the camelCase form before the
// whole string is lowercased.
func ToKebabCase(s string) string {
	camel := ToCamelCase(s)
	if camel == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(camel) + 4)

	var prev rune
	for i, r := range camel {
		if i > 0 && unicode.IsLower(prev) && unicode.IsUpper(r) {
			b.WriteByte('-')
		}
		b.WriteRune(r)
		prev = r
	}

	return strings.ToLower(b.String())
}

// ToSnakeCase converts an identifier to snake_case. It is the kebab-case
// form with hyphens replaced by underscores.
func ToSnakeCase(s string) string {
	return strings.ReplaceAll(ToKebabCase(s), "-", "_")
}

// EnsureSuffix appends suffix to name unless name already ends with it.
// Used for conventional suffixes such as "Port" and "Adapter" so a custom
// name that already carries the suffix is never doubled.
func EnsureSuffix(name, suffix string) string {
	if name == "" || strings.HasSuffix(name, suffix) {
		return name
	}
	return name + suffix
}
