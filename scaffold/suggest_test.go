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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	componentNames := []string{"domain", "handler", "service", "port", "adapter"}

	tests := []struct {
		name       string
		input      string
		candidates []string
		expected   string
	}{
		{name: "dropped letter", input: "handlr", candidates: componentNames, expected: "handler"},
		{name: "dropped letter in adapter type", input: "repositry", candidates: AdapterTypes(), expected: "repository"},
		{name: "exact match", input: "port", candidates: componentNames, expected: "port"},
		{name: "case folded", input: "Domain", candidates: componentNames, expected: "domain"},
		{name: "nothing close", input: "xyz", candidates: componentNames, expected: ""},
		{name: "empty candidates", input: "domain", candidates: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.input, tt.candidates))
		})
	}
}
