package publisher_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports/mocks"
	"go.trai.ch/digest/internal/engine/publisher"
	"go.uber.org/mock/gomock"
)

func transient() error {
	return errors.Join(domain.ErrTransientRemote, errors.New("429 too many requests"))
}

func newPublisher(ctrl *gomock.Controller, docs *mocks.MockDocumentService) *publisher.Publisher {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return publisher.New(docs, log, publisher.DefaultOptions())
}

func TestPublish_StylesLinksInPacedBatches(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		docs := mocks.NewMockDocumentService(ctrl)

		var text strings.Builder
		for i := range 25 {
			fmt.Fprintf(&text, "- [#%d](https://tracker/%d) pending\n", 1000+i, 1000+i)
		}
		stripped, _ := publisher.ExtractLinks(text.String())

		docs.EXPECT().CreateDocument(gomock.Any(), "Weekly report").Return("doc-1", nil)
		docs.EXPECT().MoveToFolder(gomock.Any(), "doc-1", "folder-1").Return(nil)
		docs.EXPECT().InsertText(gomock.Any(), "doc-1", stripped).Return(nil)
		docs.EXPECT().TextRuns(gomock.Any(), "doc-1").
			Return([]domain.TextRun{{StartIndex: 1, Content: stripped}}, nil)

		var sizes []int
		var calls []time.Time
		docs.EXPECT().ApplyLinkStyles(gomock.Any(), "doc-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ranges []domain.StyleRange) error {
				sizes = append(sizes, len(ranges))
				calls = append(calls, time.Now())
				return nil
			}).Times(3)
		docs.EXPECT().DocumentURL("doc-1").Return("https://docs/doc-1")

		p := newPublisher(ctrl, docs)
		doc, err := p.Publish(context.Background(), "Weekly report", text.String(), "folder-1")
		require.NoError(t, err)

		assert.Equal(t, &domain.PublishedDocument{ID: "doc-1", URL: "https://docs/doc-1"}, doc)
		assert.Equal(t, []int{10, 10, 5}, sizes)
		require.Len(t, calls, 3)
		assert.GreaterOrEqual(t, calls[1].Sub(calls[0]), time.Second)
		assert.GreaterOrEqual(t, calls[2].Sub(calls[1]), time.Second)
	})
}

func TestPublish_LinkRoundTrip(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	docs := mocks.NewMockDocumentService(ctrl)

	docs.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Return("doc-2", nil)
	docs.EXPECT().InsertText(gomock.Any(), "doc-2", "Issue #1234 is open\n").Return(nil)
	docs.EXPECT().TextRuns(gomock.Any(), "doc-2").
		Return([]domain.TextRun{{StartIndex: 1, Content: "Issue #1234 is open\n"}}, nil)
	docs.EXPECT().ApplyLinkStyles(gomock.Any(), "doc-2",
		[]domain.StyleRange{{Start: 7, End: 12, URL: "https://x/1234"}}).Return(nil)
	docs.EXPECT().DocumentURL("doc-2").Return("https://docs/doc-2")

	p := newPublisher(ctrl, docs)
	_, err := p.Publish(context.Background(), "t", "Issue [#1234](https://x/1234) is open\n", "")
	require.NoError(t, err)
}

func TestPublish_RetriesTransientErrorsAfterCooldown(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		docs := mocks.NewMockDocumentService(ctrl)

		gomock.InOrder(
			docs.EXPECT().CreateDocument(gomock.Any(), "t").Return("", transient()).Times(2),
			docs.EXPECT().CreateDocument(gomock.Any(), "t").Return("doc-3", nil),
		)
		docs.EXPECT().InsertText(gomock.Any(), "doc-3", "no links").Return(nil)
		docs.EXPECT().DocumentURL("doc-3").Return("u")

		start := time.Now()
		_, err := newPublisher(ctrl, docs).Publish(context.Background(), "t", "no links", "")
		require.NoError(t, err)
		assert.Equal(t, 2*time.Minute, time.Since(start))
	})
}

func TestPublish_ExhaustedRetries(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		docs := mocks.NewMockDocumentService(ctrl)

		docs.EXPECT().CreateDocument(gomock.Any(), "t").Return("doc-4", nil)
		docs.EXPECT().InsertText(gomock.Any(), "doc-4", "body").Return(transient()).Times(5)

		start := time.Now()
		_, err := newPublisher(ctrl, docs).Publish(context.Background(), "t", "body", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrPublishExhausted)
		assert.ErrorIs(t, err, domain.ErrTransientRemote)
		assert.Equal(t, 4*time.Minute, time.Since(start))
	})
}

func TestPublish_CancelDuringCooldownIsNotExhaustion(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		docs := mocks.NewMockDocumentService(ctrl)

		docs.EXPECT().CreateDocument(gomock.Any(), "t").Return("", transient())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		start := time.Now()
		_, err := newPublisher(ctrl, docs).Publish(ctx, "t", "body", "")
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NotErrorIs(t, err, domain.ErrPublishExhausted)
		assert.Equal(t, 30*time.Second, time.Since(start))
	})
}

func TestPublish_PermanentErrorPropagatesImmediately(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	docs := mocks.NewMockDocumentService(ctrl)

	docs.EXPECT().CreateDocument(gomock.Any(), "t").Return("", errors.New("403 forbidden"))

	_, err := newPublisher(ctrl, docs).Publish(context.Background(), "t", "body", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPublishExhausted)
	assert.ErrorContains(t, err, "403 forbidden")
}

func TestPublish_MoveFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	docs := mocks.NewMockDocumentService(ctrl)
	log := mocks.NewMockLogger(ctrl)

	docs.EXPECT().CreateDocument(gomock.Any(), "t").Return("doc-5", nil)
	docs.EXPECT().MoveToFolder(gomock.Any(), "doc-5", "f").Return(errors.New("404 folder"))
	log.EXPECT().Warn(gomock.Any())
	docs.EXPECT().InsertText(gomock.Any(), "doc-5", "body").Return(nil)
	docs.EXPECT().DocumentURL("doc-5").Return("u")

	doc, err := publisher.New(docs, log, publisher.Options{}).Publish(context.Background(), "t", "body", "f")
	require.NoError(t, err)
	assert.Equal(t, "doc-5", doc.ID)
}
