package taskgraph

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the task graph factory Graft node.
const NodeID graft.ID = "adapter.taskgraph"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Factory, error) {
			return NewFactory(), nil
		},
	})
}
