// Package pruner implements the mode-driven pruning pass over a module's
// task graph.
package pruner

import (
	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports"
	"go.trai.ch/trim/internal/rules"
	"go.trai.ch/zerr"
)

// disabledDescription replaces the description of every pruned task so the
// host's task listing shows why the task will not run.
const disabledDescription = "Disabled: not part of the current dev mode"

// Pruner disables the tasks a rule set marks irrelevant for the current
// build mode. It never fails on tasks the graph does not know; absence is
// an expected outcome, not an error.
type Pruner struct {
	inspecting bool
}

// New creates a Pruner. When inspecting is true an interactive project-sync
// session owns the graph and every prune pass becomes a no-op; partial
// mutation during inspection corrupts the IDE's model resolution.
func New(inspecting bool) *Pruner {
	return &Pruner{inspecting: inspecting}
}

// Prune expands the applicable pattern lists into literal task names,
// deduplicates them, and disables every matching task in the graph.
//
// The variant source is consulted exactly once per call, after the
// inspection short-circuit. It fails while the variant matrix is still
// being computed, which pins Prune to the graph's finalized hook.
//
// Pruning twice with identical arguments leaves the graph in the same
// state: every task mutation is idempotent and the guard install replaces
// any previous guard.
func (p *Pruner) Prune(
	graph ports.TaskGraph,
	source ports.VariantSource,
	set rules.RuleSet,
	mode domain.BuildMode,
	activeVariant string,
) (domain.PruneReport, error) {
	if p.inspecting {
		return domain.PruneReport{SyncSkipped: true}, nil
	}

	variants, err := source.Variants()
	if err != nil {
		return domain.PruneReport{}, zerr.Wrap(err, "variant matrix unavailable")
	}

	report := domain.PruneReport{
		Expanded: expand(set, mode, variants, activeVariant),
	}
	for _, name := range report.Expanded {
		task, ok := graph.FindByName(name)
		if !ok {
			report.Missing = append(report.Missing, name)
			continue
		}
		disable(task)
		report.Disabled = append(report.Disabled, name)
	}
	return report, nil
}

// expand produces the flat, deduplicated list of literal task names the
// rule set selects for the given mode, in production order. Variant-scoped
// patterns skip the active variant; the iOS list is taken verbatim, it is
// never variant-parameterized.
func expand(set rules.RuleSet, mode domain.BuildMode, variants []domain.Variant, activeVariant string) []string {
	names := newNameSet()

	expandInto(names, set.AlwaysDisable, variants, activeVariant)
	if mode.DebugOnly {
		expandInto(names, set.DebugOnlyDisable, variants, activeVariant)
	}
	if !mode.IOSEnabled {
		for _, pattern := range set.IOSDisable {
			names.add(pattern.String())
		}
	}

	return names.ordered
}

func expandInto(names *nameSet, patterns []domain.Pattern, variants []domain.Variant, activeVariant string) {
	for _, pattern := range patterns {
		if !pattern.IsVariantScoped() {
			names.add(pattern.String())
			continue
		}
		for _, variant := range variants {
			if variant.Name == activeVariant {
				continue
			}
			names.add(pattern.Expand(variant))
		}
	}
}

// disable neutralizes one task. Order matters for diagnostics only: the
// enabled flag is the primary mechanism, the guard defends against other
// plugins re-enabling the task, and clearing dependencies keeps a disabled
// task from dragging its inputs back into the schedule. Dependents are not
// cascaded; they must be disabled by their own rules or tolerate a missing
// artifact.
func disable(task ports.Task) {
	task.SetEnabled(false)
	task.SetExecutionGuard(neverExecute)
	task.ClearDependencies()
	task.SetDescription(disabledDescription)
}

func neverExecute() bool { return false }

type nameSet struct {
	ordered []string
	seen    map[string]struct{}
}

func newNameSet() *nameSet {
	return &nameSet{seen: make(map[string]struct{})}
}

func (s *nameSet) add(name string) {
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.ordered = append(s.ordered, name)
}
