package processor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/cache"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/core/ports"
)

// NodeID is the unique identifier for the data processor Graft node.
const NodeID graft.ID = "engine.processor"

func init() {
	graft.Register(graft.Node[ports.DataProcessor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DataProcessor, error) {
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, log), nil
		},
	})
}
