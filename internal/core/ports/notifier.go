package ports

import "context"

// Notifier delivers chat messages.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Send posts a message and returns its id.
	Send(ctx context.Context, channelID, content string) (string, error)

	// Update replaces the content of a previously sent message.
	Update(ctx context.Context, channelID, messageID, content string) error
}
