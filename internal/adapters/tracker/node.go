package tracker

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/config"
	"go.trai.ch/digest/internal/adapters/logger"
	"go.trai.ch/digest/internal/core/ports"
)

// NodeID is the unique identifier for the tracker sources Graft node.
const NodeID graft.ID = "adapter.tracker"

func init() {
	graft.Register(graft.Node[[]ports.TrackerSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) ([]ports.TrackerSource, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return Sources(settings, log), nil
		},
	})
}

// Sources builds the enabled tracker sources in preference order.
func Sources(settings *config.Settings, log ports.Logger) []ports.TrackerSource {
	client := &http.Client{Timeout: settings.Tracker.Timeout}

	var sources []ports.TrackerSource
	if settings.Tracker.GraphQL {
		sources = append(sources, NewGraphQL(GraphQLOptions{
			URL:         settings.Tracker.GraphQLURL,
			Username:    settings.Tracker.Username,
			Password:    settings.Tracker.Password,
			APIKey:      settings.Tracker.APIKey,
			HTTPClient:  client,
			Parallelism: settings.Sync.Parallelism,
		}, log))
	}
	if settings.Tracker.REST {
		sources = append(sources, NewREST(RESTOptions{
			URL:        settings.Tracker.RESTURL,
			APIKey:     settings.Tracker.APIKey,
			APISecret:  settings.Tracker.APISecret,
			HTTPClient: client,
		}))
	}
	return sources
}
