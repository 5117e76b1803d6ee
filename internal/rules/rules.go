// Package rules holds the authored disable-rule tables that decide which
// tasks get pruned from a module's graph, per module kind. The tables are
// the single source of truth for what gets turned off and when; everything
// downstream of them is mechanical.
package rules

import (
	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/zerr"
)

// RuleSet groups the disable patterns applying to one module kind.
//
// AlwaysDisable applies in every build mode. DebugOnlyDisable applies only
// when the mode is debug-only. IOSDisable holds literal task names removed
// whenever iOS support is off, independent of debug-only; they never carry
// the variant token.
//
// Variant-scoped patterns (those containing the variant token) are expanded
// for every variant except the active one, so the active variant's tasks
// always survive. Unconditional patterns name exactly one task.
type RuleSet struct {
	AlwaysDisable    []domain.Pattern
	DebugOnlyDisable []domain.Pattern
	IOSDisable       []domain.Pattern
}

// For returns the rule set registered for kind. The returned set is shared
// across concurrent module configurations and must be treated as read-only.
//
// The kind enumeration is closed at the manifest parser, so an unknown kind
// here is a programmer error; it still surfaces as a configuration error
// rather than a panic.
func For(kind domain.ModuleKind) (RuleSet, error) {
	set, ok := tables[kind]
	if !ok {
		return RuleSet{}, zerr.With(domain.ErrUnknownModuleKind, "kind", kind.String())
	}
	return set, nil
}

// Kinds returns every module kind the registry has a table for, in stable
// order.
func Kinds() []domain.ModuleKind {
	return []domain.ModuleKind{
		domain.KindApplication,
		domain.KindLibrary,
		domain.KindJvm,
		domain.KindMultiplatform,
		domain.KindBenchmark,
	}
}
