package publisher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/google" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/core/ports"
)

// NodeID is the unique identifier for the document publisher Graft node.
const NodeID graft.ID = "engine.publisher"

func init() {
	graft.Register(graft.Node[ports.DocumentPublisher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, google.DocumentsNodeID},
		Run: func(ctx context.Context) (ports.DocumentPublisher, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			docs, err := graft.Dep[ports.DocumentService](ctx)
			if err != nil {
				return nil, err
			}
			return New(docs, log, Options{
				BatchSize:   settings.Publish.BatchSize,
				BatchPause:  settings.Publish.BatchPause,
				Cooldown:    settings.Publish.Cooldown,
				MaxAttempts: settings.Publish.MaxAttempts,
			}), nil
		},
	})
}
