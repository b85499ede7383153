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

package scaffold

import "regexp"

// placeholderPattern matches {{identifier}} tokens. An identifier is any
// non-empty run of characters excluding braces.
var placeholderPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// ResolveTemplate substitutes {{identifier}} tokens in pattern using vars.
// A placeholder with no matching variable collapses to the empty string
// rather than raising an error. Substituted values are never re-scanned for
// further placeholders.
func ResolveTemplate(pattern string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(pattern, func(token string) string {
		// Strip the surrounding {{ }} to get the identifier.
		name := token[2 : len(token)-2]
		return vars[name]
	})
}

// TemplatePlaceholders returns the placeholder identifiers referenced by a
// pattern, in order of appearance.
func TemplatePlaceholders(pattern string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(pattern, -1)
	if len(matches) == 0 {
		return nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
