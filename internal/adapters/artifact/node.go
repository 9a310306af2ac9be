package artifact

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/config"
	"go.trai.ch/digest/internal/core/ports"
)

// NodeID is the unique identifier for the report artifact store Graft node.
const NodeID graft.ID = "adapter.artifact"

func init() {
	graft.Register(graft.Node[ports.ArtifactStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactStore, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.Reports.Dir), nil
		},
	})
}
