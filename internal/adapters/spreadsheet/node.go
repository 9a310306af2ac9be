package spreadsheet

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/config"
)

// NodeID is the unique identifier for the spreadsheet source Graft node.
// The node yields a nil *Client when no API token is configured.
const NodeID graft.ID = "adapter.spreadsheet"

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Client, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			// Without a token the synchronizer skips schedule sheets entirely.
			if settings.Sheets.Token == "" {
				return nil, nil
			}
			return New(settings.Sheets.BaseURL, settings.Sheets.Token, &http.Client{Timeout: settings.Sheets.Timeout}), nil
		},
	})
}
