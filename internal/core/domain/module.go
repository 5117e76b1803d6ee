package domain

import "go.trai.ch/zerr"

// ModuleKind is the declared purpose of a module. It is fixed when the
// module is registered and selects which rule table applies to it.
type ModuleKind string

const (
	// KindApplication is an installable application module.
	KindApplication ModuleKind = "application"
	// KindLibrary is a library module consumed by other modules.
	KindLibrary ModuleKind = "library"
	// KindJvm is a JVM-only module without a variant matrix.
	KindJvm ModuleKind = "jvm"
	// KindMultiplatform is a cross-platform module with native targets.
	KindMultiplatform ModuleKind = "multiplatform"
	// KindBenchmark is an on-device benchmark module.
	KindBenchmark ModuleKind = "benchmark"
)

// String returns the kind's manifest spelling.
func (k ModuleKind) String() string { return string(k) }

// ParseModuleKind maps a manifest string onto a ModuleKind.
func ParseModuleKind(s string) (ModuleKind, error) {
	switch kind := ModuleKind(s); kind {
	case KindApplication, KindLibrary, KindJvm, KindMultiplatform, KindBenchmark:
		return kind, nil
	default:
		return "", zerr.With(ErrUnknownModuleKind, "kind", s)
	}
}
