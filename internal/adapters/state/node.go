package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trim/internal/core/ports"
)

const NodeID graft.ID = "adapter.report_store"

func init() {
	graft.Register(graft.Node[ports.ReportStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ReportStore, error) {
			store, err := NewStore(DefaultPath)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
