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

// Package cli validates command-line input before it reaches the scaffold
// generator.
package cli

import (
	"fmt"
	"strings"

	"github.com/hexkit/hexgen/scaffold"
)

// Validator validates CLI input for the generation commands.
type Validator struct{}

// NewValidator creates a new CLI validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateOptions validates generation command options for
// correctness and consistency.
func (v *Validator) ValidateGenerateOptions(opts GenerateCLIOptions) error {
	if err := v.validateName(opts.Name); err != nil {
		return err
	}

	if err := v.validateAdapterType(opts.AdapterType); err != nil {
		return err
	}

	if opts.DryRun && opts.Force {
		return fmt.Errorf("--dry-run and --force are mutually exclusive")
	}

	return nil
}

// validateName rejects empty names and names containing path separators,
// which would let a component escape the resolved output directory.
func (v *Validator) validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("component name is required")
	}

	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("invalid component name %q: must not contain path separators", name)
	}

	return nil
}

// validateAdapterType checks the adapter type selector against the closed
// set, suggesting the closest match for likely typos.
func (v *Validator) validateAdapterType(adapterType string) error {
	if adapterType == "" {
		return nil
	}

	normalized := strings.ToLower(adapterType)
	if scaffold.ValidAdapterType(normalized) {
		return nil
	}

	msg := fmt.Sprintf("unknown adapter type %q (supported: %s)",
		adapterType, strings.Join(scaffold.AdapterTypes(), ", "))
	if hint := scaffold.Suggest(normalized, scaffold.AdapterTypes()); hint != "" {
		msg += fmt.Sprintf("; did you mean %q?", hint)
	}
	return fmt.Errorf("%s", msg)
}
