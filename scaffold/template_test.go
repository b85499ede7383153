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

func TestResolveTemplate(t *testing.T) {
	vars := map[string]string{
		"pascalName": "Payment",
		"domainName": "payment",
	}

	tests := []struct {
		name     string
		pattern  string
		vars     map[string]string
		expected string
	}{
		{
			name:     "single placeholder",
			pattern:  "{{pascalName}}.ts",
			vars:     vars,
			expected: "Payment.ts",
		},
		{
			name:     "multiple placeholders",
			pattern:  "{{domainName}}/{{pascalName}}Service.ts",
			vars:     vars,
			expected: "payment/PaymentService.ts",
		},
		{
			name:     "unknown placeholder resolves empty",
			pattern:  "{{missing}}/services",
			vars:     vars,
			expected: "/services",
		},
		{
			name:     "no placeholders",
			pattern:  "handlers",
			vars:     vars,
			expected: "handlers",
		},
		{
			name:     "nil variable map",
			pattern:  "{{pascalName}}.ts",
			vars:     nil,
			expected: ".ts",
		},
		{
			name:     "substitution is not re-scanned",
			pattern:  "{{outer}}",
			vars:     map[string]string{"outer": "{{inner}}", "inner": "boom"},
			expected: "{{inner}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveTemplate(tt.pattern, tt.vars))
		})
	}
}

func TestTemplatePlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{name: "none", pattern: "handlers", expected: nil},
		{name: "single", pattern: "{{pascalName}}.ts", expected: []string{"pascalName"}},
		{name: "multiple", pattern: "{{domainName}}/{{pascalName}}Port.ts", expected: []string{"domainName", "pascalName"}},
		{name: "repeated placeholder listed each time", pattern: "{{name}}/{{name}}.ts", expected: []string{"name", "name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TemplatePlaceholders(tt.pattern))
		})
	}
}
