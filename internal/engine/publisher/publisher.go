// Package publisher turns report text into a remote document with styled hyperlinks.
package publisher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.chromium.org/luci/common/retry"
	"go.chromium.org/luci/common/retry/transient"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/time/rate"
)

// Options bounds the remote calls made by the Publisher.
type Options struct {
	// BatchSize is the maximum number of style updates per call. Every link
	// needs two updates, one for bold and one for the hyperlink.
	BatchSize   int
	BatchPause  time.Duration
	Cooldown    time.Duration
	MaxAttempts int
}

// DefaultOptions returns the standard publishing limits.
func DefaultOptions() Options {
	return Options{
		BatchSize:   20,
		BatchPause:  time.Second,
		Cooldown:    60 * time.Second,
		MaxAttempts: 5,
	}
}

// updatesPerLink is the number of style updates emitted for one link range.
const updatesPerLink = 2

// Publisher implements ports.DocumentPublisher on top of a DocumentService.
type Publisher struct {
	docs   ports.DocumentService
	logger ports.Logger
	opts   Options
}

var _ ports.DocumentPublisher = (*Publisher)(nil)

// New creates a Publisher. Zero option fields take their defaults.
func New(docs ports.DocumentService, logger ports.Logger, opts Options) *Publisher {
	def := DefaultOptions()
	if opts.BatchSize <= 0 {
		opts.BatchSize = def.BatchSize
	}
	if opts.BatchPause <= 0 {
		opts.BatchPause = def.BatchPause
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = def.Cooldown
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = def.MaxAttempts
	}
	return &Publisher{docs: docs, logger: logger, opts: opts}
}

// Publish creates a document titled title in folderID holding text, with every
// [label](url) reference rendered as a bold hyperlink.
func (p *Publisher) Publish(
	ctx context.Context,
	title, text, folderID string,
) (*domain.PublishedDocument, error) {
	var docID string
	err := p.withRetry(ctx, "create document", func(ctx context.Context) error {
		var err error
		docID, err = p.docs.CreateDocument(ctx, title)
		return err
	})
	if err != nil {
		return nil, err
	}

	if folderID != "" {
		err := p.withRetry(ctx, "move document", func(ctx context.Context) error {
			return p.docs.MoveToFolder(ctx, docID, folderID)
		})
		if err != nil {
			p.logger.Warn(fmt.Sprintf("document %s left outside folder %s: %v", docID, folderID, err))
		}
	}

	stripped, links := ExtractLinks(text)

	err = p.withRetry(ctx, "insert text", func(ctx context.Context) error {
		return p.docs.InsertText(ctx, docID, stripped)
	})
	if err != nil {
		return nil, zerr.With(err, "document_id", docID)
	}

	if len(links) > 0 {
		if err := p.styleLinks(ctx, docID, links); err != nil {
			return nil, zerr.With(err, "document_id", docID)
		}
	}

	return &domain.PublishedDocument{ID: docID, URL: p.docs.DocumentURL(docID)}, nil
}

func (p *Publisher) styleLinks(ctx context.Context, docID string, links []Link) error {
	var runs []domain.TextRun
	err := p.withRetry(ctx, "read document", func(ctx context.Context) error {
		var err error
		runs, err = p.docs.TextRuns(ctx, docID)
		return err
	})
	if err != nil {
		return err
	}

	ranges, missing := LocateLinks(runs, links)
	if len(missing) > 0 {
		p.logger.Warn(fmt.Sprintf("%d link labels not found in document %s", len(missing), docID))
	}

	perBatch := max(1, p.opts.BatchSize/updatesPerLink)
	limiter := rate.NewLimiter(rate.Every(p.opts.BatchPause), 1)

	for start := 0; start < len(ranges); start += perBatch {
		batch := ranges[start:min(start+perBatch, len(ranges))]

		if err := limiter.Wait(ctx); err != nil {
			return zerr.Wrap(err, "wait for batch slot")
		}
		err := p.withRetry(ctx, "apply link styles", func(ctx context.Context) error {
			return p.docs.ApplyLinkStyles(ctx, docID, batch)
		})
		if err != nil {
			return zerr.With(err, "batch", start/perBatch+1)
		}
	}
	return nil
}

// withRetry runs fn until it succeeds, fails with a non-transient error, or runs
// out of attempts. Transient failures wait a fixed cooldown before the next attempt.
func (p *Publisher) withRetry(ctx context.Context, op string, fn func(context.Context) error) error {
	attempts := 0
	err := retry.Retry(ctx, transient.Only(p.cooldown), func() error {
		attempts++
		err := fn(ctx)
		if errors.Is(err, domain.ErrTransientRemote) {
			return transient.Tag.Apply(err)
		}
		return err
	}, func(err error, d time.Duration) {
		p.logger.Warn(fmt.Sprintf("%s rate limited (attempt %d/%d), waiting %s: %v",
			op, attempts, p.opts.MaxAttempts, d, err))
	})

	switch {
	case err == nil:
		return nil
	case transient.Tag.In(err):
		return errors.Join(
			domain.ErrPublishExhausted,
			zerr.With(zerr.Wrap(err, op), "attempts", attempts),
		)
	default:
		return zerr.Wrap(err, op)
	}
}

// cooldown allows MaxAttempts calls in total, each retry after the same fixed delay.
func (p *Publisher) cooldown() retry.Iterator {
	return &retry.Limited{
		Delay:   p.opts.Cooldown,
		Retries: p.opts.MaxAttempts - 1,
	}
}
