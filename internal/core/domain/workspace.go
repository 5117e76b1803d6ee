package domain

// Flags are the raw workspace booleans a BuildMode is resolved from. The
// configuration layer defaults both to false.
type Flags struct {
	DebugOnly bool
	EnableIOS bool
}

// ModuleConfig describes one module of the workspace.
type ModuleConfig struct {
	// Name is the module's display name, unique within the workspace.
	Name string

	// Path is the module's position in the project hierarchy.
	Path ModulePath

	// Kind selects the rule table and the standard task catalog.
	Kind ModuleKind

	// Variants is the module's variant matrix. Empty for variantless kinds.
	Variants []Variant

	// Compose marks modules that compile Compose UI; compiler metric tasks
	// exist only for them.
	Compose bool

	// IOSTargets lists the Kotlin/Native iOS targets a multiplatform module
	// builds for. Ignored for every other kind.
	IOSTargets []string

	// ExtraTasks are module-specific tasks registered beyond the kind's
	// standard catalog.
	ExtraTasks []string
}

// Workspace is the parsed manifest for one multi-module build.
type Workspace struct {
	// Prefix is the namespace prefix shared by every module.
	Prefix string

	// ActiveVariant is the variant kept runnable during development.
	ActiveVariant string

	// Flags are the raw mode flags, read once per configuration pass.
	Flags Flags

	// Modules lists every configured module.
	Modules []ModuleConfig
}
