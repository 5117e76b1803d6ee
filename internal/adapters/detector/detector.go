// Package detector recognizes IDE sync sessions from the environment.
package detector

import "os"

// SyncEnvVar is set by IDE integrations while they import the workspace.
const SyncEnvVar = "TRIM_SYNC"

// Signal reports whether the current invocation belongs to a sync session.
// During sync the task graph is inspected, never mutated.
type Signal struct {
	SyncActive bool
}

// Detect returns the signal derived from the environment.
func Detect() Signal {
	v := os.Getenv(SyncEnvVar)
	return Signal{SyncActive: v == "true" || v == "1"}
}

// Resolve applies the user's sync flag to the detected signal. The flag can
// force a sync session on, never off.
func Resolve(detected Signal, syncFlag bool) Signal {
	if syncFlag {
		return Signal{SyncActive: true}
	}
	return detected
}
