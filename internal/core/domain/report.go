package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
)

// PruneReport is the diagnostic outcome of one prune pass over a module's
// task graph. Expanded holds every literal name the rules produced after
// deduplication, in production order; Disabled and Missing partition it
// into names that were found and neutralized versus names the graph never
// registered. A missing name is a normal outcome, not an error.
type PruneReport struct {
	Expanded []string `json:"expanded,omitempty"`
	Disabled []string `json:"disabled,omitempty"`
	Missing  []string `json:"missing,omitempty"`

	// SyncSkipped is set when an interactive sync session suppressed all
	// graph mutation.
	SyncSkipped bool `json:"sync_skipped,omitempty"`
}

// Fingerprint returns a stable hash of the disabled-task set. Two prune
// passes that neutralize the same tasks produce the same fingerprint
// regardless of the order the names were produced in.
func (r PruneReport) Fingerprint() string {
	names := slices.Clone(r.Disabled)
	slices.Sort(names)

	h := xxhash.New()
	for _, name := range names {
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// ModuleReport records the full configuration outcome for one module.
type ModuleReport struct {
	Module      string      `json:"module"`
	Path        string      `json:"path"`
	Namespace   string      `json:"namespace"`
	Kind        ModuleKind  `json:"kind"`
	Mode        BuildMode   `json:"mode"`
	Variants    []Variant   `json:"variants,omitempty"`
	Prune       PruneReport `json:"prune"`
	Fingerprint string      `json:"fingerprint"`
	Timestamp   time.Time   `json:"timestamp,omitzero"`
}
