// Package discord delivers progress and completion messages to Discord channels.
package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"go.chromium.org/luci/common/retry"
	"go.chromium.org/luci/common/retry/transient"
	"go.trai.ch/digest/internal/adapters/httpjson"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/time/rate"
)

// MessageLimit is the longest message content a channel accepts, in runes.
const MessageLimit = 2000

const (
	defaultAttempts = 3
	defaultBackoff  = 2 * time.Second
	maxBackoff      = time.Minute
)

// Options tunes delivery.
type Options struct {
	// RequestsPerSecond paces every API call. Zero disables pacing.
	RequestsPerSecond float64
	// Attempts bounds tries per message part.
	Attempts int
	// Backoff is the base delay between failed attempts. It doubles on each retry.
	Backoff time.Duration
}

// Notifier implements ports.Notifier over the Discord bot API.
type Notifier struct {
	api     *httpjson.Client
	limiter *rate.Limiter
	logger  ports.Logger
	opts    Options
}

type messagePayload struct {
	Content string `json:"content"`
}

type messageResponse struct {
	ID string `json:"id"`
}

// New creates a notifier authenticated with a bot token.
func New(baseURL, token string, httpClient *http.Client, logger ports.Logger, opts Options) *Notifier {
	if opts.Attempts <= 0 {
		opts.Attempts = defaultAttempts
	}
	if opts.Backoff <= 0 {
		opts.Backoff = defaultBackoff
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bot "+token)
	return &Notifier{
		api:     httpjson.New(baseURL, httpClient, headers),
		limiter: limiter,
		logger:  logger,
		opts:    opts,
	}
}

// Send posts content to a channel, split into parts of at most MessageLimit runes.
// It returns the id of the last part so later updates edit the tail of the conversation.
func (n *Notifier) Send(ctx context.Context, channelID, content string) (string, error) {
	var last string
	for _, part := range Split(content, MessageLimit) {
		var resp messageResponse
		err := n.call(ctx, http.MethodPost, messagesPath(channelID), messagePayload{Content: part}, &resp)
		if err != nil {
			return last, errors.Join(domain.ErrNotificationFailed, zerr.With(err, "channel_id", channelID))
		}
		last = resp.ID
	}
	return last, nil
}

// Update replaces the content of an existing message. Content past the limit is sent as new messages.
func (n *Notifier) Update(ctx context.Context, channelID, messageID, content string) error {
	parts := Split(content, MessageLimit)
	path := messagesPath(channelID) + "/" + url.PathEscape(messageID)
	if err := n.call(ctx, http.MethodPatch, path, messagePayload{Content: parts[0]}, nil); err != nil {
		return errors.Join(domain.ErrNotificationFailed,
			zerr.With(zerr.With(err, "channel_id", channelID), "message_id", messageID))
	}
	if len(parts) > 1 {
		_, err := n.Send(ctx, channelID, strings.Join(parts[1:], "\n"))
		return err
	}
	return nil
}

// call paces and retries one request. A 429 waits for the server's Retry-After.
func (n *Notifier) call(ctx context.Context, method, path string, body, out any) error {
	return retry.Retry(ctx, transient.Only(n.backoff), func() error {
		if err := n.limiter.Wait(ctx); err != nil {
			return err
		}
		err := n.api.Do(ctx, method, path, body, out, nil)
		if errors.Is(err, domain.ErrTransientRemote) {
			return transient.Tag.Apply(err)
		}
		return err
	}, func(err error, d time.Duration) {
		n.logger.Warn(fmt.Sprintf("discord request throttled or failed, retrying in %s: %v", d, err))
	})
}

func (n *Notifier) backoff() retry.Iterator {
	return &retryAfter{next: &retry.ExponentialBackoff{
		Limited: retry.Limited{
			Delay:   n.opts.Backoff,
			Retries: n.opts.Attempts - 1,
		},
		MaxDelay:   maxBackoff,
		Multiplier: 2,
	}}
}

// retryAfter prefers the delay a 429 response asked for over the wrapped schedule.
type retryAfter struct {
	next retry.Iterator
}

func (r *retryAfter) Next(ctx context.Context, err error) time.Duration {
	delay := r.next.Next(ctx, err)
	if delay == retry.Stop {
		return retry.Stop
	}
	if after, ok := httpjson.RetryAfter(err); ok && after > 0 {
		return after
	}
	return delay
}

func messagesPath(channelID string) string {
	return "/channels/" + url.PathEscape(channelID) + "/messages"
}

// Split breaks content into parts of at most limit runes, preferring line breaks.
// Empty content yields one empty part.
func Split(content string, limit int) []string {
	if utf8.RuneCountInString(content) <= limit {
		return []string{content}
	}

	var parts []string
	rest := []rune(content)
	for len(rest) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if rest[i-1] == '\n' {
				cut = i
				break
			}
		}
		parts = append(parts, strings.TrimRight(string(rest[:cut]), "\n"))
		rest = rest[cut:]
	}
	if len(rest) > 0 {
		parts = append(parts, string(rest))
	}
	return parts
}
