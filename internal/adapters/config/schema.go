package config

// Manifest represents the structure of the trim.yaml configuration file.
type Manifest struct {
	Version       string               `yaml:"version"`
	Namespace     string               `yaml:"namespace"`
	ActiveVariant string               `yaml:"activeVariant"`
	Flags         FlagsDTO             `yaml:"flags"`
	Modules       map[string]ModuleDTO `yaml:"modules"`
}

// FlagsDTO carries the workspace mode flags. Both default to false.
type FlagsDTO struct {
	DebugOnly bool `yaml:"debugOnly"`
	EnableIOS bool `yaml:"enableIos"`
}

// ModuleDTO represents a module definition in the configuration. The map key
// in Manifest.Modules is the module name.
type ModuleDTO struct {
	Path       string       `yaml:"path"`
	Kind       string       `yaml:"kind"`
	Variants   []VariantDTO `yaml:"variants"`
	Compose    bool         `yaml:"compose"`
	IOSTargets []string     `yaml:"iosTargets"`
	ExtraTasks []string     `yaml:"extraTasks"`
}

// VariantDTO represents one entry of a module's variant matrix.
type VariantDTO struct {
	Name      string `yaml:"name"`
	BuildType string `yaml:"buildType"`
}
