package taskgraph

import "go.trai.ch/trim/internal/core/domain"

// Factory builds seeded per-module graphs. The app asks for one graph per
// module and drives its two phases itself.
type Factory struct{}

// NewFactory creates a Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// ForModule creates the module's graph with its kind catalog registered.
// The graph is returned unfinalized; the caller registers its hooks and
// calls Finalize.
func (f *Factory) ForModule(module domain.ModuleConfig) (*Graph, error) {
	g := New(module.Name)
	if err := Seed(g, module); err != nil {
		return nil, err
	}
	return g, nil
}
