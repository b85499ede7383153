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
	"path"
	"path/filepath"
	"strings"
)

// FileRequest describes one file to resolve: its component type, file role,
// the variables available to templates, and the output root the final path
// is anchored under.
type FileRequest struct {
	Component  ComponentType
	Role       FileRole
	Vars       map[string]string
	OutputBase string
}

// FileInfo is the result of resolving a FileRequest: the output directory,
// the final (case-adjusted) file name, and the joined path.
type FileInfo struct {
	Directory string
	FileName  string
	Path      string
}

// dirRoleForFileRole maps each file role to the directory role whose
// template places it.
var dirRoleForFileRole = map[FileRole]DirRole{
	RoleModel:   DirModel,
	RoleService: DirService,
	RolePort:    DirPort,
	RoleAdapter: DirAdapter,
	RoleHandler: DirBase,
	RoleSchema:  DirSchema,
}

// Built-in fallback templates. Every file role has one so a missing
// configuration entry is never an error.
var defaultDirTemplates = map[FileRole]string{
	RoleModel:   "{{domainName}}/models",
	RoleService: "{{domainName}}/services",
	RolePort:    "{{domainName}}/ports",
	RoleAdapter: "infra/{{adapterType}}",
	RoleHandler: "handlers",
	RoleSchema:  "handlers/schemas",
}

var defaultFilePatterns = map[FileRole]string{
	RoleModel:   "{{pascalName}}.ts",
	RoleService: "{{pascalName}}Service.ts",
	RolePort:    "{{pascalName}}Port.ts",
	RoleAdapter: "{{pascalName}}Adapter.ts",
	RoleHandler: "{{pascalName}}.handler.ts",
	RoleSchema:  "{{pascalName}}.schema.ts",
}

// ResolveFile computes the output directory, file name, and path for one
// file role. It is a pure function over the configuration and the supplied
// variables: it performs no I/O and never fails. Missing templates fall
// back to built-in defaults, and unresolved placeholders collapse to empty
// strings.
func ResolveFile(cfg *Config, req FileRequest) FileInfo {
	dirTemplate := lookupDirTemplate(cfg, req.Component, req.Role)
	dir := ResolveTemplate(dirTemplate, req.Vars)

	pattern := lookupFilePattern(cfg, req.Component, req.Role)
	fileName := ResolveTemplate(pattern, req.Vars)
	fileName = applyFileNameCase(fileName, cfg.FileNameCase)

	directory := joinOutput(req.OutputBase, cfg.BasePath, dir)
	return FileInfo{
		Directory: directory,
		FileName:  fileName,
		Path:      filepath.Join(directory, fileName),
	}
}

func lookupDirTemplate(cfg *Config, component ComponentType, role FileRole) string {
	dirRole := dirRoleForFileRole[role]
	if roles, ok := cfg.Directories[component]; ok {
		if tmpl, ok := roles[dirRole]; ok {
			return tmpl
		}
	}
	return defaultDirTemplates[role]
}

func lookupFilePattern(cfg *Config, component ComponentType, role FileRole) string {
	if roles, ok := cfg.FilePatterns[component]; ok {
		if pattern, ok := roles[role]; ok {
			return pattern
		}
	}
	return defaultFilePatterns[role]
}

// applyFileNameCase case-transforms the name portion of a resolved file
// name, preserving the extension verbatim. The split is at the last dot, so
// multi-part names such as CreateUser.handler.ts keep their final extension
// only. The pascal case is a deliberate no-op: the built-in patterns are
// already authored in PascalCase, and re-applying a transform would mangle
// a user template that intentionally used a different case variable.
func applyFileNameCase(name string, c FileNameCase) string {
	if c == CasePascal || name == "" {
		return name
	}

	stem, ext := name, ""
	if idx := strings.LastIndex(name, "."); idx > 0 {
		stem, ext = name[:idx], name[idx:]
	}

	switch c {
	case CaseCamel:
		stem = ToCamelCase(stem)
	case CaseKebab:
		stem = ToKebabCase(stem)
	case CaseSnake:
		stem = ToSnakeCase(stem)
	}

	return stem + ext
}

// joinOutput joins the output root, configured base path, and resolved
// directory. Leading path separators in user-supplied fragments are
// stripped so a template that resolves to "/services" (an empty placeholder
// followed by a literal) stays inside the output root.
func joinOutput(outputBase string, fragments ...string) string {
	parts := make([]string, 0, len(fragments)+1)
	if outputBase != "" {
		parts = append(parts, outputBase)
	}
	for _, f := range fragments {
		f = strings.TrimLeft(f, "/\\")
		if f != "" {
			parts = append(parts, f)
		}
	}
	return filepath.Join(parts...)
}

// SymbolName renders the in-code class or interface name for an
// identifier. Symbol names are always PascalCase regardless of the
// configured file name case; only on-disk file names vary with it.
func SymbolName(name string) string {
	return ToPascalCase(name)
}

// RelativeImport computes the POSIX-style import path from the importer's
// directory to the importee, with the importee's extension stripped. The
// path is derived from the actual resolved locations, so custom directory
// overrides are honored. Sibling imports gain a "./" prefix.
func RelativeImport(fromDir string, to FileInfo) string {
	rel, err := filepath.Rel(fromDir, to.Directory)
	if err != nil {
		rel = to.Directory
	}
	rel = filepath.ToSlash(rel)

	stem := strings.TrimSuffix(to.FileName, path.Ext(to.FileName))
	imp := path.Join(rel, stem)
	if !strings.HasPrefix(imp, ".") {
		imp = "./" + imp
	}
	return imp
}
