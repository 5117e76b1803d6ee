// Package config provides the workspace manifest loader for trim.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultManifest is the manifest filename used when none is given.
const DefaultManifest = "trim.yaml"

// defaultActiveVariant is assumed when the manifest does not name one.
const defaultActiveVariant = "debug"

// defaultVariants is the matrix assumed for variant-aware kinds when a module
// declares none. Jvm modules have no matrix and never receive it.
var defaultVariants = []domain.Variant{
	{Name: "debug", BuildType: "debug"},
	{Name: "release", BuildType: "release"},
}

// Loader implements ports.ConfigLoader for YAML manifests.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the manifest at path and returns the validated workspace.
func (l *Loader) Load(path string) (*domain.Workspace, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	return l.build(&manifest)
}

func (l *Loader) build(manifest *Manifest) (*domain.Workspace, error) {
	if strings.TrimSpace(manifest.Namespace) == "" {
		return nil, zerr.With(domain.ErrBlankNamespacePrefix, "manifest_key", "namespace")
	}
	if len(manifest.Modules) == 0 {
		return nil, domain.ErrNoModules
	}

	// Map iteration order is random; modules are processed sorted by name so
	// validation errors and the workspace itself come out deterministic.
	names := make([]string, 0, len(manifest.Modules))
	for name := range manifest.Modules {
		names = append(names, name)
	}
	slices.Sort(names)

	// First pass: catch duplicate module paths before building anything.
	seen := make(map[domain.ModulePath]string, len(names))
	for _, name := range names {
		path := domain.ModulePath(manifest.Modules[name].Path)
		if first, ok := seen[path]; ok {
			err := zerr.With(domain.ErrDuplicateModule, "path", path.String())
			err = zerr.With(err, "first_occurrence", first)
			return nil, zerr.With(err, "duplicate_at", name)
		}
		seen[path] = name
	}

	workspace := &domain.Workspace{
		Prefix:        manifest.Namespace,
		ActiveVariant: manifest.ActiveVariant,
		Flags: domain.Flags{
			DebugOnly: manifest.Flags.DebugOnly,
			EnableIOS: manifest.Flags.EnableIOS,
		},
		Modules: make([]domain.ModuleConfig, 0, len(names)),
	}
	if workspace.ActiveVariant == "" {
		workspace.ActiveVariant = defaultActiveVariant
	}

	// Second pass: build the module configs.
	for _, name := range names {
		module, err := l.buildModule(name, manifest.Modules[name])
		if err != nil {
			return nil, err
		}
		workspace.Modules = append(workspace.Modules, module)
	}

	return workspace, nil
}

func (l *Loader) buildModule(name string, dto ModuleDTO) (domain.ModuleConfig, error) {
	if strings.TrimSpace(dto.Path) == "" {
		return domain.ModuleConfig{}, zerr.With(zerr.New("module path is blank"), "module", name)
	}

	kind, err := domain.ParseModuleKind(dto.Kind)
	if err != nil {
		return domain.ModuleConfig{}, zerr.With(err, "module", name)
	}

	module := domain.ModuleConfig{
		Name:       name,
		Path:       domain.ModulePath(dto.Path),
		Kind:       kind,
		Compose:    dto.Compose,
		IOSTargets: dto.IOSTargets,
		ExtraTasks: dto.ExtraTasks,
	}

	for _, v := range dto.Variants {
		if v.Name == "" {
			return domain.ModuleConfig{}, zerr.With(zerr.New("variant name is blank"), "module", name)
		}
		buildType := v.BuildType
		if buildType == "" {
			buildType = v.Name
		}
		module.Variants = append(module.Variants, domain.Variant{Name: v.Name, BuildType: buildType})
	}

	switch {
	case kind == domain.KindJvm:
		if len(module.Variants) > 0 {
			l.logger.Warn(fmt.Sprintf("module %q: variants defined on a jvm module are ignored", name))
			module.Variants = nil
		}
	case len(module.Variants) == 0:
		module.Variants = slices.Clone(defaultVariants)
	}

	if kind != domain.KindMultiplatform && len(module.IOSTargets) > 0 {
		l.logger.Warn(fmt.Sprintf("module %q: iosTargets defined on a %s module are ignored", name, kind))
		module.IOSTargets = nil
	}

	return module, nil
}
