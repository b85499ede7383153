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

// GenerateCLIOptions defines command-line options shared by the generation
// commands (domain, handler, service, port, adapter).
//
// GenerateCLIOptions captures options provided by the user via CLI flags
// and arguments. These are validated before being passed to the scaffold
// generator.
type GenerateCLIOptions struct {
	// Name is the required component name argument.
	Name string

	// Output specifies a custom output base path.
	Output string

	// Domain associates the component with a domain.
	Domain string

	// AdapterType selects the adapter technology
	// (repository, rest, graphql, queue, cache, storage, none).
	AdapterType string

	// WithModel toggles model generation for the domain kind.
	WithModel bool

	// WithService toggles service generation for the domain kind.
	WithService bool

	// WithPort toggles port generation for the domain kind.
	WithPort bool

	// WithSchema additionally emits a validation schema for the handler
	// kind.
	WithSchema bool

	// ModelName overrides the model's base name.
	ModelName string

	// ServiceName overrides the service's base name.
	ServiceName string

	// PortName overrides the port's base name.
	PortName string

	// AdapterName overrides the adapter's base name.
	AdapterName string

	// Yes skips confirmation prompts.
	Yes bool

	// Force overwrites pre-existing files instead of reporting conflicts.
	Force bool

	// DryRun reports intended artifacts without writing them.
	DryRun bool
}
