// Package taskgraph provides the in-memory host task graph the engine
// configures and prunes.
package taskgraph

import (
	"slices"

	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports"
	"go.trai.ch/zerr"
)

// TaskFactory produces a task when it is first looked up.
type TaskFactory func() *Task

// Graph is a lazily realized task graph for one module. It moves through
// two phases: a registration phase collecting task factories and finalize
// hooks, and a finalized phase in which the variant matrix exists and the
// hooks have fired.
//
// A Graph is confined to its module's configuration goroutine and is not
// safe for concurrent use.
type Graph struct {
	module    string
	factories map[string]TaskFactory
	realized  map[string]*Task
	hooks     []func() error
	variants  []domain.Variant
	finalized bool
}

// New creates an empty graph for the named module.
func New(module string) *Graph {
	return &Graph{
		module:    module,
		factories: make(map[string]TaskFactory),
		realized:  make(map[string]*Task),
	}
}

// Register adds a named task factory. The task itself is not built until
// the first FindByName. Registering after finalization or reusing a name
// is a configuration error.
func (g *Graph) Register(name string, factory TaskFactory) error {
	if g.finalized {
		err := zerr.With(domain.ErrGraphFinalized, "graph", g.module)
		return zerr.With(err, "task", name)
	}
	if _, ok := g.factories[name]; ok {
		err := zerr.With(domain.ErrTaskAlreadyRegistered, "graph", g.module)
		return zerr.With(err, "task", name)
	}
	g.factories[name] = factory
	return nil
}

// FindByName returns the task registered under name, materializing it on
// first access. Subsequent lookups return the same instance.
func (g *Graph) FindByName(name string) (ports.Task, bool) {
	if task, ok := g.realized[name]; ok {
		return task, true
	}
	factory, ok := g.factories[name]
	if !ok {
		return nil, false
	}
	task := factory()
	g.realized[name] = task
	return task, true
}

// OnFinalized registers fn to run when the graph settles. Hooks run in
// registration order.
func (g *Graph) OnFinalized(fn func() error) error {
	if g.finalized {
		return zerr.With(domain.ErrGraphFinalized, "graph", g.module)
	}
	g.hooks = append(g.hooks, fn)
	return nil
}

// Finalize installs the variant matrix the host computed and fires the
// finalize hooks in registration order. The first hook error aborts the
// run. Finalizing twice is an error.
func (g *Graph) Finalize(variants []domain.Variant) error {
	if g.finalized {
		return zerr.With(domain.ErrGraphFinalized, "graph", g.module)
	}
	g.variants = slices.Clone(variants)
	g.finalized = true

	for _, fn := range g.hooks {
		if err := fn(); err != nil {
			return zerr.Wrap(err, "finalize hook failed")
		}
	}
	return nil
}

// Variants implements ports.VariantSource. It fails until Finalize has
// installed the matrix.
func (g *Graph) Variants() ([]domain.Variant, error) {
	if !g.finalized {
		return nil, zerr.With(domain.ErrGraphNotFinalized, "graph", g.module)
	}
	return slices.Clone(g.variants), nil
}

// TaskNames returns every registered task name in sorted order.
func (g *Graph) TaskNames() []string {
	names := make([]string, 0, len(g.factories))
	for name := range g.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
