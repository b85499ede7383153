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
	"fmt"
	"os"
	"strings"
)

// Adapter type selectors. AdapterNone is the sentinel that suppresses
// adapter generation.
const (
	AdapterRepository = "repository"
	AdapterRest       = "rest"
	AdapterGraphQL    = "graphql"
	AdapterQueue      = "queue"
	AdapterCache      = "cache"
	AdapterStorage    = "storage"
	AdapterNone       = "none"
)

// AdapterTypes lists every accepted adapter type selector.
func AdapterTypes() []string {
	return []string{
		AdapterRepository,
		AdapterRest,
		AdapterGraphQL,
		AdapterQueue,
		AdapterCache,
		AdapterStorage,
		AdapterNone,
	}
}

// ValidAdapterType reports whether t is an accepted adapter type selector.
func ValidAdapterType(t string) bool {
	for _, known := range AdapterTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// GenerateOptions carries the per-invocation inputs for a generation run.
type GenerateOptions struct {
	// Domain associates the component with a domain. For the domain kind
	// itself the component name is the domain.
	Domain string

	// AdapterType selects the adapter technology. The sentinel "none"
	// suppresses adapter generation.
	AdapterType string

	// Sub-artifact toggles for the domain kind.
	WithModel   bool
	WithService bool
	WithPort    bool

	// WithSchema additionally emits a validation schema for the handler
	// kind.
	WithSchema bool

	// Per-role custom base names. Empty means "derive from the component
	// name".
	ModelName   string
	ServiceName string
	PortName    string
	AdapterName string

	// OutputBase is the output root the configured basePath is joined
	// under.
	OutputBase string
}

// Artifact is one generated output: a path and the text content destined
// for it. Artifacts are transient; they are constructed, optionally
// committed, then discarded.
type Artifact struct {
	Role    FileRole
	Path    string
	Content string
}

// ComponentDescriptor declares the file roles a component kind produces,
// which of them are independently toggle-able, and the cross-references
// between roles (the importer lists the roles it imports).
type ComponentDescriptor struct {
	Roles    []FileRole
	Optional map[FileRole]bool
	Imports  map[FileRole][]FileRole
}

var descriptors = map[ComponentType]ComponentDescriptor{
	ComponentDomain: {
		Roles: []FileRole{RoleModel, RoleService, RolePort, RoleAdapter},
		Optional: map[FileRole]bool{
			RoleModel:   true,
			RoleService: true,
			RolePort:    true,
			RoleAdapter: true,
		},
		Imports: map[FileRole][]FileRole{
			RoleService: {RoleModel, RolePort},
			RoleAdapter: {RolePort, RoleModel},
		},
	},
	ComponentHandler: {
		Roles:    []FileRole{RoleHandler, RoleSchema},
		Optional: map[FileRole]bool{RoleSchema: true},
		Imports:  map[FileRole][]FileRole{RoleHandler: {RoleSchema}},
	},
	ComponentService: {
		Roles:   []FileRole{RoleService},
		Imports: map[FileRole][]FileRole{RoleService: {RoleModel, RolePort}},
	},
	ComponentPort: {
		Roles: []FileRole{RolePort},
	},
	ComponentAdapter: {
		Roles:   []FileRole{RoleAdapter},
		Imports: map[FileRole][]FileRole{RoleAdapter: {RolePort, RoleModel}},
	},
}

// DescriptorFor returns the descriptor for a component kind.
func DescriptorFor(kind ComponentType) (ComponentDescriptor, bool) {
	d, ok := descriptors[kind]
	return d, ok
}

// Generator assembles the ordered artifact set for one command invocation.
// It resolves every file through the path/name engine and fills the fixed
// code-body templates with resolved names and import paths. It performs no
// writes; committing is the Committer's job.
type Generator struct {
	cfg *Config
}

// NewGenerator creates a generator bound to a resolved configuration.
func NewGenerator(cfg *Config) *Generator {
	return &Generator{cfg: cfg}
}

// filePlan is one resolved sub-artifact: its role, in-code symbol, and
// file location.
type filePlan struct {
	role   FileRole
	symbol string
	info   FileInfo
}

// Generate produces the ordered artifact list for a component kind.
func (g *Generator) Generate(kind ComponentType, name string, opts GenerateOptions) ([]Artifact, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("component name is required")
	}

	adapterType := strings.ToLower(opts.AdapterType)
	if adapterType == "" {
		adapterType = AdapterNone
	}
	if !ValidAdapterType(adapterType) {
		msg := fmt.Sprintf("unknown adapter type %q", adapterType)
		if hint := Suggest(adapterType, AdapterTypes()); hint != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", hint)
		}
		return nil, fmt.Errorf("%s", msg)
	}

	switch kind {
	case ComponentDomain:
		return g.generateDomain(name, adapterType, opts), nil
	case ComponentHandler:
		return g.generateHandler(name, opts), nil
	case ComponentService:
		return g.generateService(name, adapterType, opts), nil
	case ComponentPort:
		plan := g.planPort(ComponentPort, name, opts.PortName, opts.Domain, adapterType, opts.OutputBase)
		return []Artifact{g.portArtifact(plan)}, nil
	case ComponentAdapter:
		return g.generateAdapter(name, adapterType, opts), nil
	default:
		msg := fmt.Sprintf("unknown component type %q", kind)
		candidates := make([]string, 0, len(descriptors))
		for _, t := range ComponentTypes() {
			candidates = append(candidates, string(t))
		}
		if hint := Suggest(string(kind), candidates); hint != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", hint)
		}
		return nil, fmt.Errorf("%s", msg)
	}
}

// generateDomain composes the multi-file domain unit: model, service,
// port, and adapter, each independently toggled. The adapter rides along
// whenever ports are enabled and the adapter type is not "none". The
// service is wired to import both the model and the port by relative path.
func (g *Generator) generateDomain(name, adapterType string, opts GenerateOptions) []Artifact {
	domain := name

	var modelPlan, servicePlan, portPlan, adapterPlan *filePlan

	if opts.WithModel {
		p := g.planModel(ComponentDomain, firstNonEmpty(opts.ModelName, name), domain, adapterType, opts.OutputBase)
		modelPlan = &p
	}
	if opts.WithService {
		p := g.planService(ComponentDomain, firstNonEmpty(opts.ServiceName, name), domain, adapterType, opts.OutputBase)
		servicePlan = &p
	}
	if opts.WithPort {
		p := g.planPort(ComponentDomain, name, opts.PortName, domain, adapterType, opts.OutputBase)
		portPlan = &p
		if adapterType != AdapterNone {
			a := g.planAdapter(ComponentDomain, name, opts.AdapterName, domain, adapterType, opts.OutputBase)
			adapterPlan = &a
		}
	}

	var artifacts []Artifact
	if modelPlan != nil {
		artifacts = append(artifacts, g.modelArtifact(*modelPlan))
	}
	if servicePlan != nil {
		artifacts = append(artifacts, g.serviceArtifact(*servicePlan, modelPlan, portPlan))
	}
	if portPlan != nil {
		artifacts = append(artifacts, g.portArtifact(*portPlan))
	}
	if adapterPlan != nil {
		artifacts = append(artifacts, g.adapterArtifact(*adapterPlan, portPlan, modelPlan))
	}

	return artifacts
}

// generateHandler emits the handler file, plus its validation schema when
// requested.
func (g *Generator) generateHandler(name string, opts GenerateOptions) []Artifact {
	handler := g.planHandler(name, opts.Domain, opts.OutputBase)

	var schemaPlan *filePlan
	if opts.WithSchema {
		p := g.planSchema(name, opts.Domain, opts.OutputBase)
		schemaPlan = &p
	}

	var imports []string
	vars := map[string]string{
		"className": handler.symbol,
		"name":      name,
	}
	if schemaPlan != nil {
		imports = append(imports, importLine(schemaPlan.symbol, RelativeImport(handler.info.Directory, schemaPlan.info)))
	}
	vars["imports"] = importBlock(imports)

	artifacts := []Artifact{{
		Role:    RoleHandler,
		Path:    handler.info.Path,
		Content: ResolveTemplate(handlerBodyTemplate, vars),
	}}

	if schemaPlan != nil {
		stem := strings.TrimSuffix(handler.symbol, "Handler")
		artifacts = append(artifacts, Artifact{
			Role: RoleSchema,
			Path: schemaPlan.info.Path,
			Content: ResolveTemplate(schemaBodyTemplate, map[string]string{
				"camelName": ToCamelCase(stem),
			}),
		})
	}

	return artifacts
}

// generateService emits a standalone service. When a domain association is
// given, the service imports the domain's model (and its port when an
// adapter type is known) at their conventional resolved locations; neither
// referenced file needs to physically exist.
func (g *Generator) generateService(name, adapterType string, opts GenerateOptions) []Artifact {
	plan := g.planService(ComponentService, firstNonEmpty(opts.ServiceName, name), opts.Domain, adapterType, opts.OutputBase)

	var modelPlan, portPlan *filePlan
	if opts.Domain != "" {
		m := g.planModel(ComponentDomain, opts.Domain, opts.Domain, adapterType, opts.OutputBase)
		modelPlan = &m
		if adapterType != AdapterNone {
			p := g.planPort(ComponentDomain, opts.Domain, opts.PortName, opts.Domain, adapterType, opts.OutputBase)
			portPlan = &p
		}
	}

	return []Artifact{g.serviceArtifact(plan, modelPlan, portPlan)}
}

// generateAdapter emits a standalone adapter implementing its port. The
// port (and model, when a domain is given) are referenced by convention.
func (g *Generator) generateAdapter(name, adapterType string, opts GenerateOptions) []Artifact {
	plan := g.planAdapter(ComponentAdapter, name, opts.AdapterName, opts.Domain, adapterType, opts.OutputBase)

	portComponent := ComponentPort
	portBase := name
	if opts.Domain != "" {
		portComponent = ComponentDomain
		portBase = opts.Domain
	}
	port := g.planPort(portComponent, portBase, opts.PortName, opts.Domain, adapterType, opts.OutputBase)

	var modelPlan *filePlan
	if opts.Domain != "" {
		m := g.planModel(ComponentDomain, opts.Domain, opts.Domain, adapterType, opts.OutputBase)
		modelPlan = &m
	}

	return []Artifact{g.adapterArtifact(plan, &port, modelPlan)}
}

// Planners. Each derives the sub-artifact's effective base name (component
// name by default, custom override when supplied), enforces conventional
// suffixes exactly once, and resolves the file location with a fresh
// variable set for that base.

func (g *Generator) planModel(component ComponentType, base, domain, adapterType, outputBase string) filePlan {
	symbol := SymbolName(base)
	vars := BuildVariables(base, VariableOptions{Domain: domain, AdapterType: adapterType})
	info := ResolveFile(g.cfg, FileRequest{Component: component, Role: RoleModel, Vars: vars, OutputBase: outputBase})
	return filePlan{role: RoleModel, symbol: symbol, info: info}
}

func (g *Generator) planService(component ComponentType, base, domain, adapterType, outputBase string) filePlan {
	symbol := EnsureSuffix(SymbolName(base), "Service")
	stem := strings.TrimSuffix(symbol, "Service")
	vars := BuildVariables(stem, VariableOptions{Domain: domain, AdapterType: adapterType})
	info := ResolveFile(g.cfg, FileRequest{Component: component, Role: RoleService, Vars: vars, OutputBase: outputBase})
	return filePlan{role: RoleService, symbol: symbol, info: info}
}

func (g *Generator) planPort(component ComponentType, name, custom, domain, adapterType, outputBase string) filePlan {
	base := custom
	if base == "" {
		base = name
		if adapterType != AdapterNone && adapterType != "" {
			base = SymbolName(name) + ToPascalCase(adapterType)
		}
	}
	symbol := EnsureSuffix(SymbolName(base), "Port")
	stem := strings.TrimSuffix(symbol, "Port")
	vars := BuildVariables(stem, VariableOptions{Domain: domain, AdapterType: adapterType})
	info := ResolveFile(g.cfg, FileRequest{Component: component, Role: RolePort, Vars: vars, OutputBase: outputBase})
	return filePlan{role: RolePort, symbol: symbol, info: info}
}

func (g *Generator) planAdapter(component ComponentType, name, custom, domain, adapterType, outputBase string) filePlan {
	base := custom
	if base == "" {
		base = SymbolName(name) + ToPascalCase(adapterType)
	}
	symbol := EnsureSuffix(SymbolName(base), "Adapter")
	stem := strings.TrimSuffix(symbol, "Adapter")
	vars := BuildVariables(stem, VariableOptions{Domain: domain, AdapterType: adapterType})
	info := ResolveFile(g.cfg, FileRequest{Component: component, Role: RoleAdapter, Vars: vars, OutputBase: outputBase})
	return filePlan{role: RoleAdapter, symbol: symbol, info: info}
}

func (g *Generator) planHandler(name, domain, outputBase string) filePlan {
	symbol := EnsureSuffix(SymbolName(name), "Handler")
	stem := strings.TrimSuffix(symbol, "Handler")
	vars := BuildVariables(stem, VariableOptions{Domain: domain})
	info := ResolveFile(g.cfg, FileRequest{Component: ComponentHandler, Role: RoleHandler, Vars: vars, OutputBase: outputBase})
	return filePlan{role: RoleHandler, symbol: symbol, info: info}
}

func (g *Generator) planSchema(name, domain, outputBase string) filePlan {
	stem := strings.TrimSuffix(EnsureSuffix(SymbolName(name), "Handler"), "Handler")
	symbol := ToCamelCase(stem) + "Schema"
	vars := BuildVariables(stem, VariableOptions{Domain: domain})
	info := ResolveFile(g.cfg, FileRequest{Component: ComponentHandler, Role: RoleSchema, Vars: vars, OutputBase: outputBase})
	return filePlan{role: RoleSchema, symbol: symbol, info: info}
}

// Artifact assembly. Content is a fill of the fixed body templates with
// the resolved symbols and relative import paths.

func (g *Generator) modelArtifact(plan filePlan) Artifact {
	return Artifact{
		Role:    RoleModel,
		Path:    plan.info.Path,
		Content: ResolveTemplate(modelBodyTemplate, map[string]string{"className": plan.symbol}),
	}
}

func (g *Generator) portArtifact(plan filePlan) Artifact {
	return Artifact{
		Role:    RolePort,
		Path:    plan.info.Path,
		Content: ResolveTemplate(portBodyTemplate, map[string]string{"className": plan.symbol}),
	}
}

func (g *Generator) serviceArtifact(plan filePlan, model, port *filePlan) Artifact {
	if port == nil {
		return Artifact{
			Role:    RoleService,
			Path:    plan.info.Path,
			Content: ResolveTemplate(plainServiceBodyTemplate, map[string]string{"className": plan.symbol}),
		}
	}

	var imports []string
	modelClass := "unknown"
	if model != nil {
		modelClass = model.symbol
		imports = append(imports, importLine(model.symbol, RelativeImport(plan.info.Directory, model.info)))
	}
	imports = append(imports, importLine(port.symbol, RelativeImport(plan.info.Directory, port.info)))

	return Artifact{
		Role: RoleService,
		Path: plan.info.Path,
		Content: ResolveTemplate(serviceBodyTemplate, map[string]string{
			"imports":      importBlock(imports),
			"className":    plan.symbol,
			"modelClass":   modelClass,
			"portClass":    port.symbol,
			"portProperty": ToCamelCase(port.symbol),
		}),
	}
}

func (g *Generator) adapterArtifact(plan filePlan, port, model *filePlan) Artifact {
	var imports []string
	imports = append(imports, importLine(port.symbol, RelativeImport(plan.info.Directory, port.info)))

	modelClass := "unknown"
	if model != nil {
		modelClass = model.symbol
		imports = append(imports, importLine(model.symbol, RelativeImport(plan.info.Directory, model.info)))
	}

	return Artifact{
		Role: RoleAdapter,
		Path: plan.info.Path,
		Content: ResolveTemplate(adapterBodyTemplate, map[string]string{
			"imports":    importBlock(imports),
			"className":  plan.symbol,
			"portClass":  port.symbol,
			"modelClass": modelClass,
		}),
	}
}

// PrerequisiteWarnings reports referenced files that do not exist yet, for
// standalone kinds that import from a domain generated earlier. These are
// advisory: resolution only needs names and case conventions, so a missing
// prerequisite never blocks generation.
func (g *Generator) PrerequisiteWarnings(kind ComponentType, name string, opts GenerateOptions) []string {
	if opts.Domain == "" {
		return nil
	}
	if kind != ComponentService && kind != ComponentAdapter {
		return nil
	}

	adapterType := strings.ToLower(opts.AdapterType)
	if adapterType == "" {
		adapterType = AdapterNone
	}

	var warnings []string

	model := g.planModel(ComponentDomain, opts.Domain, opts.Domain, adapterType, opts.OutputBase)
	if _, err := os.Stat(model.info.Path); err != nil {
		warnings = append(warnings, fmt.Sprintf(
			"domain model %s does not exist yet; generate the domain first (hexgen domain %s)",
			model.info.Path, opts.Domain,
		))
	}

	if adapterType != AdapterNone {
		portComponent := ComponentDomain
		port := g.planPort(portComponent, opts.Domain, opts.PortName, opts.Domain, adapterType, opts.OutputBase)
		if _, err := os.Stat(port.info.Path); err != nil {
			warnings = append(warnings, fmt.Sprintf(
				"port %s does not exist yet; create the port first (hexgen port %s --domain %s --adapter-type %s)",
				port.info.Path, opts.Domain, opts.Domain, adapterType,
			))
		}
	}

	return warnings
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
