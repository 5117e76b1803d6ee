package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trim/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/trim/internal/adapters/detector"           //nolint:depguard // Wired in app layer
	"go.trai.ch/trim/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/trim/internal/adapters/state"              //nolint:depguard // Wired in app layer
	"go.trai.ch/trim/internal/adapters/taskgraph"          //nolint:depguard // Wired in app layer
	"go.trai.ch/trim/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/trim/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			taskgraph.NodeID,
			state.NodeID,
			progrock.NodeID,
			logger.NodeID,
			detector.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[*taskgraph.Factory](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ReportStore](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	signal, err := graft.Dep[detector.Signal](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, factory, store, telemetry, log, signal), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
