package domain

import "go.trai.ch/zerr"

var (
	// ErrBlankNamespacePrefix is returned when namespace derivation is asked to
	// work from an empty or whitespace-only prefix.
	ErrBlankNamespacePrefix = zerr.New("namespace prefix is blank")

	// ErrUnknownModuleKind is returned when a manifest names a module kind the
	// rule registry has no entry for.
	ErrUnknownModuleKind = zerr.New("unknown module kind")

	// ErrTaskAlreadyRegistered is returned when registering a task under a name
	// the graph already holds.
	ErrTaskAlreadyRegistered = zerr.New("task already registered")

	// ErrGraphFinalized is returned when a mutation or hook registration arrives
	// after the graph has been finalized.
	ErrGraphFinalized = zerr.New("task graph already finalized")

	// ErrGraphNotFinalized is returned when variant data is requested before the
	// graph has settled.
	ErrGraphNotFinalized = zerr.New("task graph not finalized")

	// ErrDuplicateModule is returned when a manifest declares the same module
	// path twice.
	ErrDuplicateModule = zerr.New("duplicate module")

	// ErrNoModules is returned when a manifest declares no modules at all.
	ErrNoModules = zerr.New("no modules configured")

	// ErrConfigurationFailed signals that one or more modules failed to
	// configure. The CLI maps it to a non-zero exit without reprinting the
	// per-module causes.
	ErrConfigurationFailed = zerr.New("module configuration failed")
)
