package auditlog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/config"
	"go.trai.ch/digest/internal/adapters/google"
	"go.trai.ch/digest/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the local execution log Graft node.
	StoreNodeID graft.ID = "adapter.auditlog.store"
	// NodeID is the unique identifier for the fan-out execution log Graft node.
	NodeID graft.ID = "adapter.auditlog"
	// HistoryNodeID is the unique identifier for the execution history Graft node.
	HistoryNodeID graft.ID = "adapter.auditlog.history"
)

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return Open(settings.ExecutionLog.Path)
		},
	})

	graft.Register(graft.Node[ports.ExecutionLog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID, google.LogSheetNodeID},
		Run: func(ctx context.Context) (ports.ExecutionLog, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			sheet, err := graft.Dep[*google.LogSheet](ctx)
			if err != nil {
				return nil, err
			}
			if sheet == nil {
				return NewMulti(store), nil
			}
			return NewMulti(store, sheet), nil
		},
	})

	graft.Register(graft.Node[ports.ExecutionHistory]{
		ID:        HistoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (ports.ExecutionHistory, error) {
			return graft.Dep[*Store](ctx)
		},
	})
}
