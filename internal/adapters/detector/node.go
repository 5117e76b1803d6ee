package detector

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[Signal]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Signal, error) {
			return Detect(), nil
		},
	})
}
