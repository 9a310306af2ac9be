package auditlog_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/adapters/auditlog"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func openMemory(t *testing.T) *auditlog.Store {
	t.Helper()
	store, err := auditlog.Open(auditlog.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_AppendAndRecent(t *testing.T) {
	t.Parallel()

	store := openMemory(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)

	for i, status := range []domain.RunStatus{domain.StatusSuccess, domain.StatusPartialSuccess, domain.StatusFailure} {
		require.NoError(t, store.Append(ctx, domain.ExecutionLogEntry{
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
			ProjectID:   "101",
			ProjectName: "Tower A",
			Status:      status,
			Message:     string(status),
			DocumentURL: "https://docs.example/" + string(status),
		}))
	}

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.StatusFailure, entries[0].Status, "newest first")
	assert.Equal(t, base.Add(2*time.Minute), entries[0].Timestamp)
	assert.Equal(t, domain.StatusPartialSuccess, entries[1].Status)
	assert.Equal(t, "Tower A", entries[1].ProjectName)
	assert.Equal(t, "https://docs.example/PartialSuccess", entries[1].DocumentURL)

	none, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_ReopenKeepsRowsAndSkipsApplied(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "executions.db")
	ctx := context.Background()

	store, err := auditlog.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(ctx, domain.ExecutionLogEntry{ProjectID: "7", Status: domain.StatusSuccess}))
	require.NoError(t, store.Close())

	store, err = auditlog.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "7", entries[0].ProjectID)
	assert.False(t, entries[0].Timestamp.IsZero(), "a missing timestamp is filled on append")
}

func TestMulti_FansOutAndJoinsFailures(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := openMemory(t)
	remote := mocks.NewMockExecutionLog(ctrl)
	entry := domain.ExecutionLogEntry{ProjectID: "101", Status: domain.StatusSuccess}

	remoteErr := errors.New("sheet quota exceeded")
	remote.EXPECT().Append(gomock.Any(), entry).Return(remoteErr)

	multi := auditlog.NewMulti(store, nil, remote)
	err := multi.Append(context.Background(), entry)
	require.ErrorIs(t, err, domain.ErrExecutionLogFailed)
	require.ErrorIs(t, err, remoteErr)

	entries, err := store.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "the local row is written even when a remote sink fails")
}

func TestMulti_NoSinks(t *testing.T) {
	t.Parallel()

	require.NoError(t, auditlog.NewMulti().Append(context.Background(), domain.ExecutionLogEntry{}))
}
