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

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGenerateOptions(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		opts    GenerateCLIOptions
		wantErr string
	}{
		{
			name: "valid options",
			opts: GenerateCLIOptions{Name: "payment", AdapterType: "repository"},
		},
		{
			name: "empty adapter type is allowed",
			opts: GenerateCLIOptions{Name: "payment"},
		},
		{
			name: "adapter type is case folded",
			opts: GenerateCLIOptions{Name: "payment", AdapterType: "Repository"},
		},
		{
			name:    "missing name",
			opts:    GenerateCLIOptions{},
			wantErr: "component name is required",
		},
		{
			name:    "blank name",
			opts:    GenerateCLIOptions{Name: "   "},
			wantErr: "component name is required",
		},
		{
			name:    "name with forward slash",
			opts:    GenerateCLIOptions{Name: "../payment"},
			wantErr: "must not contain path separators",
		},
		{
			name:    "name with backslash",
			opts:    GenerateCLIOptions{Name: `pay\ment`},
			wantErr: "must not contain path separators",
		},
		{
			name:    "unknown adapter type",
			opts:    GenerateCLIOptions{Name: "payment", AdapterType: "repositry"},
			wantErr: `did you mean "repository"?`,
		},
		{
			name:    "dry run and force conflict",
			opts:    GenerateCLIOptions{Name: "payment", DryRun: true, Force: true},
			wantErr: "--dry-run and --force are mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateGenerateOptions(tt.opts)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
