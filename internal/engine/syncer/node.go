package syncer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/cache"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/config"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/spreadsheet" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/tracker"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/core/ports"
)

// NodeID is the unique identifier for the synchronizer Graft node.
const NodeID graft.ID = "engine.syncer"

func init() {
	graft.Register(graft.Node[ports.Synchronizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cache.NodeID,
			logger.NodeID,
			spreadsheet.NodeID,
			tracker.NodeID,
		},
		Run: func(ctx context.Context) (ports.Synchronizer, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			client, err := graft.Dep[*spreadsheet.Client](ctx)
			if err != nil {
				return nil, err
			}
			var sheets ports.SpreadsheetSource
			if client != nil {
				sheets = client
			}

			sources, err := graft.Dep[[]ports.TrackerSource](ctx)
			if err != nil {
				return nil, err
			}

			opts := Options{
				IssuesMaxAge: settings.Sync.IssuesMaxAge,
				SheetsMaxAge: settings.Sync.SheetsMaxAge,
				RecentWindow: settings.Sync.RecentWindow,
			}
			return New(store, sheets, log, opts, sources...), nil
		},
	})
}
