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
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hexkit/hexgen/logging"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the conventional project configuration file name,
// looked up in the project root.
const ConfigFileName = ".hexgen.yaml"

// ComponentType identifies the kind of artifact group being generated.
type ComponentType string

// Component types supported by the generator.
const (
	ComponentDomain  ComponentType = "domain"
	ComponentHandler ComponentType = "handler"
	ComponentService ComponentType = "service"
	ComponentPort    ComponentType = "port"
	ComponentAdapter ComponentType = "adapter"
)

// ComponentTypes lists every supported component type.
func ComponentTypes() []ComponentType {
	return []ComponentType{
		ComponentDomain,
		ComponentHandler,
		ComponentService,
		ComponentPort,
		ComponentAdapter,
	}
}

// FileNameCase governs how generated file names (never in-code symbol
// names) are cased on disk.
type FileNameCase string

// Accepted file name cases. Pascal is the default and matches how the
// built-in file patterns are authored.
const (
	CasePascal FileNameCase = "pascal"
	CaseCamel  FileNameCase = "camel"
	CaseKebab  FileNameCase = "kebab"
	CaseSnake  FileNameCase = "snake"
)

// ValidFileNameCase reports whether c is a member of the closed case enum.
func ValidFileNameCase(c FileNameCase) bool {
	switch c {
	case CasePascal, CaseCamel, CaseKebab, CaseSnake:
		return true
	}
	return false
}

// DirRole names a directory slot within a component type.
type DirRole string

// Directory roles used by the built-in configuration.
const (
	DirBase    DirRole = "base"
	DirModel   DirRole = "model"
	DirService DirRole = "service"
	DirPort    DirRole = "port"
	DirAdapter DirRole = "adapter"
	DirSchema  DirRole = "schema"
)

// FileRole names a file slot within a component type. Each file role maps
// to one directory template and one file-name template.
type FileRole string

// File roles produced by the generator.
const (
	RoleModel   FileRole = "model"
	RoleService FileRole = "service"
	RolePort    FileRole = "port"
	RoleAdapter FileRole = "adapter"
	RoleHandler FileRole = "handler"
	RoleSchema  FileRole = "schema"
)

// Config is the project configuration for a generation run. It is resolved
// once per command invocation (defaults merged with the optional
// .hexgen.yaml overlay) and treated as immutable afterwards.
type Config struct {
	// BasePath is the root directory, relative to the output root, under
	// which all generated source lives.
	BasePath string `yaml:"basePath,omitempty" json:"basePath,omitempty" jsonschema:"default=src,description=Root directory under which generated source is placed"`

	// FileNameCase governs the casing of generated file names. One of
	// pascal, camel, kebab, snake.
	FileNameCase FileNameCase `yaml:"fileNameCase,omitempty" json:"fileNameCase,omitempty" jsonschema:"enum=pascal,enum=camel,enum=kebab,enum=snake,default=pascal"`

	// Directories maps component type to directory role to a template
	// string with {{placeholder}} tokens.
	Directories map[ComponentType]map[DirRole]string `yaml:"directories,omitempty" json:"directories,omitempty" jsonschema:"description=Per component type directory templates"`

	// FilePatterns maps component type to file role to a file-name
	// template string.
	FilePatterns map[ComponentType]map[FileRole]string `yaml:"filePatterns,omitempty" json:"filePatterns,omitempty" jsonschema:"description=Per component type file-name templates"`

	// Requires optionally constrains the hexgen version this project
	// expects, as a semver constraint such as ">=1.0.0".
	Requires string `yaml:"requires,omitempty" json:"requires,omitempty" jsonschema:"description=Semver constraint on the hexgen version"`
}

// DefaultConfig returns the full built-in configuration. Every component
// type has directory and file-pattern entries so a partial user overlay
// always merges against a complete base.
func DefaultConfig() *Config {
	return &Config{
		BasePath:     "src",
		FileNameCase: CasePascal,
		Directories: map[ComponentType]map[DirRole]string{
			ComponentDomain: {
				DirBase:    "{{domainName}}",
				DirModel:   "{{domainName}}/models",
				DirService: "{{domainName}}/services",
				DirPort:    "{{domainName}}/ports",
				DirAdapter: "infra/{{adapterType}}",
			},
			ComponentHandler: {
				DirBase:   "handlers",
				DirSchema: "handlers/schemas",
			},
			ComponentService: {
				DirService: "{{domainName}}/services",
			},
			ComponentPort: {
				DirPort: "{{domainName}}/ports",
			},
			ComponentAdapter: {
				DirAdapter: "infra/{{adapterType}}",
			},
		},
		FilePatterns: map[ComponentType]map[FileRole]string{
			ComponentDomain: {
				RoleModel:   "{{pascalName}}.ts",
				RoleService: "{{pascalName}}Service.ts",
				RolePort:    "{{pascalName}}Port.ts",
				RoleAdapter: "{{pascalName}}Adapter.ts",
			},
			ComponentHandler: {
				RoleHandler: "{{pascalName}}.handler.ts",
				RoleSchema:  "{{pascalName}}.schema.ts",
			},
			ComponentService: {
				RoleService: "{{pascalName}}Service.ts",
			},
			ComponentPort: {
				RolePort: "{{pascalName}}Port.ts",
			},
			ComponentAdapter: {
				RoleAdapter: "{{pascalName}}Adapter.ts",
			},
		},
	}
}

// Merge overlays a partial user configuration over base and returns the
// merged result plus any warnings raised while discarding invalid overlay
// values. The merge is structurally aware: it recurses only into the known
// nested maps (Directories, FilePatterns) and treats every other field as a
// scalar overlay. An invalid FileNameCase in the overlay is discarded with
// a warning, keeping the base value.
func Merge(base, overlay *Config) (*Config, []string) {
	merged := base.clone()
	if overlay == nil {
		return merged, nil
	}

	var warnings []string

	if overlay.BasePath != "" {
		merged.BasePath = overlay.BasePath
	}

	if overlay.FileNameCase != "" {
		if ValidFileNameCase(overlay.FileNameCase) {
			merged.FileNameCase = overlay.FileNameCase
		} else {
			warnings = append(warnings, fmt.Sprintf(
				"ignoring invalid fileNameCase %q (accepted: pascal, camel, kebab, snake); keeping %q",
				overlay.FileNameCase, merged.FileNameCase,
			))
		}
	}

	if overlay.Requires != "" {
		merged.Requires = overlay.Requires
	}

	for component, roles := range overlay.Directories {
		if merged.Directories[component] == nil {
			merged.Directories[component] = make(map[DirRole]string, len(roles))
		}
		for role, tmpl := range roles {
			merged.Directories[component][role] = tmpl
		}
	}

	for component, roles := range overlay.FilePatterns {
		if merged.FilePatterns[component] == nil {
			merged.FilePatterns[component] = make(map[FileRole]string, len(roles))
		}
		for role, tmpl := range roles {
			merged.FilePatterns[component][role] = tmpl
		}
	}

	return merged, warnings
}

// clone returns a deep copy so a merge never mutates the default maps.
func (c *Config) clone() *Config {
	out := &Config{
		BasePath:     c.BasePath,
		FileNameCase: c.FileNameCase,
		Requires:     c.Requires,
		Directories:  make(map[ComponentType]map[DirRole]string, len(c.Directories)),
		FilePatterns: make(map[ComponentType]map[FileRole]string, len(c.FilePatterns)),
	}

	for component, roles := range c.Directories {
		inner := make(map[DirRole]string, len(roles))
		for role, tmpl := range roles {
			inner[role] = tmpl
		}
		out.Directories[component] = inner
	}

	for component, roles := range c.FilePatterns {
		inner := make(map[FileRole]string, len(roles))
		for role, tmpl := range roles {
			inner[role] = tmpl
		}
		out.FilePatterns[component] = inner
	}

	return out
}

// LoadProjectConfig resolves the effective configuration for a project
// directory: built-in defaults merged with the optional .hexgen.yaml
// overlay. A missing file is not an error; a malformed file is logged as a
// warning and the defaults are used. This function never fails a command.
//
// Configuration is loaded fresh per command invocation. No merged config is
// cached across invocations.
func LoadProjectConfig(ctx context.Context, baseDir string) *Config {
	defaults := DefaultConfig()

	path := filepath.Join(baseDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.WarnContext(ctx, "could not read %s, using defaults: %v", path, err)
		}
		return defaults
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		logging.WarnContext(ctx, "could not parse %s, using defaults: %v", path, err)
		return defaults
	}

	merged, warnings := Merge(defaults, &overlay)
	for _, w := range warnings {
		logging.WarnContext(ctx, "%s: %s", path, w)
	}

	for _, w := range CheckCasePatternAgreement(merged) {
		logging.WarnContext(ctx, "%s: %s", path, w)
	}

	return merged
}

// casePlaceholders maps each file name case to the template variable that
// renders names in that case.
var casePlaceholders = map[FileNameCase]string{
	CasePascal: "pascalName",
	CaseCamel:  "camelName",
	CaseKebab:  "dashName",
	CaseSnake:  "snakeName",
}

// CheckCasePatternAgreement cross-checks each file-pattern template's
// case-related placeholders against the configured FileNameCase and returns
// advisory warnings for mismatches. The warnings never block generation and
// have no effect on resolution; they exist to help users catch
// self-inconsistent configs.
func CheckCasePatternAgreement(cfg *Config) []string {
	expected := casePlaceholders[cfg.FileNameCase]

	caseVars := make(map[string]bool, len(casePlaceholders))
	for _, v := range casePlaceholders {
		caseVars[v] = true
	}

	var warnings []string
	for component, roles := range cfg.FilePatterns {
		for role, pattern := range roles {
			for _, placeholder := range TemplatePlaceholders(pattern) {
				if caseVars[placeholder] && placeholder != expected {
					warnings = append(warnings, fmt.Sprintf(
						"filePatterns.%s.%s uses {{%s}} but fileNameCase is %q (expected {{%s}})",
						component, role, placeholder, cfg.FileNameCase, expected,
					))
				}
			}
		}
	}

	return warnings
}
