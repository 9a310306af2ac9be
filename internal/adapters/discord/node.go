package discord

import (
	"context"
	"net/http"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/config"
	"go.trai.ch/digest/internal/adapters/logger"
	"go.trai.ch/digest/internal/core/ports"
)

// NodeID is the unique identifier for the notifier Graft node.
// The node yields a nil *Notifier when no bot token is configured.
const NodeID graft.ID = "adapter.discord"

const requestTimeout = 15 * time.Second

func init() {
	graft.Register(graft.Node[*Notifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Notifier, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			// Without a token notifications are disabled.
			if settings.Discord.Token == "" {
				return nil, nil
			}
			return New(settings.Discord.BaseURL, settings.Discord.Token, &http.Client{Timeout: requestTimeout}, log, Options{
				RequestsPerSecond: settings.Discord.RequestsPerSec,
			}), nil
		},
	})
}
