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

import "strings"

// VariableOptions carries the contextual inputs that shape a variable set
// beyond the raw name: the associated domain, the adapter type, and any
// caller-supplied overrides.
type VariableOptions struct {
	Domain      string
	AdapterType string

	// Extra overlays or adds variables after the derived set is computed.
	Extra map[string]string
}

// BuildVariables computes the template variable set for one resolution
// call. Variables are ephemeral: computed fresh from the supplied name and
// options, used for one file role, then discarded.
//
// The derived set is: name (raw), pascalName, camelName, dashName,
// snakeName (case variants of name), domainName (kebab-cased domain),
// serviceName (PascalCase with a Service suffix), and adapterType (the raw
// lowercase selector, suitable for directory templates such as
// infra/{{adapterType}}).
func BuildVariables(name string, opts VariableOptions) map[string]string {
	vars := map[string]string{
		"name":        name,
		"pascalName":  ToPascalCase(name),
		"camelName":   ToCamelCase(name),
		"dashName":    ToKebabCase(name),
		"snakeName":   ToSnakeCase(name),
		"domainName":  ToKebabCase(opts.Domain),
		"serviceName": EnsureSuffix(ToPascalCase(name), "Service"),
		"adapterType": strings.ToLower(opts.AdapterType),
	}

	for k, v := range opts.Extra {
		vars[k] = v
	}

	return vars
}
