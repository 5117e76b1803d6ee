// Package domain contains the core domain models for module configuration
// and task-graph pruning.
package domain

// BuildMode is the effective development mode for one module configuration
// pass. It is resolved once from the workspace flags and never mutated.
type BuildMode struct {
	// DebugOnly restricts the build to the active variant's inner loop.
	DebugOnly bool `json:"debug_only"`

	// IOSEnabled keeps the iOS/native task family runnable.
	IOSEnabled bool `json:"ios_enabled"`
}

// ResolveMode computes a BuildMode from the two raw workspace flags.
// The result satisfies IOSEnabled == enableIOS || !debugOnly for every
// input pair: iOS tasks stay runnable when iOS was explicitly requested,
// or when the build is not restricted to debug-only work. The function is
// total and deterministic; both flags default to false upstream.
func ResolveMode(debugOnly, enableIOS bool) BuildMode {
	return BuildMode{
		DebugOnly:  debugOnly,
		IOSEnabled: enableIOS || !debugOnly,
	}
}

// String renders the mode the way it appears in reports and rewritten task
// descriptions.
func (m BuildMode) String() string {
	switch {
	case m.DebugOnly && m.IOSEnabled:
		return "debug-only+ios"
	case m.DebugOnly:
		return "debug-only"
	default:
		return "full"
	}
}
