package snapshot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/adapters/cache"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/engine/snapshot"
)

func TestTrackerRoundTripThroughCache(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(t.TempDir())

	empty, err := snapshot.ReadTracker(store)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	snap := &domain.TrackerSnapshot{
		Projects:    []domain.TrackerProject{{ID: "P1", Name: "Tower"}},
		Disciplines: []domain.Discipline{{ID: "D1", Name: "Architecture"}},
		Issues:      []domain.Issue{{ID: "I1", Code: "12", ProjectID: "P1", Status: "active"}},
	}
	require.NoError(t, snapshot.WriteTracker(store, snap))

	entry, err := store.Get(domain.DomainTracker, domain.KeyIssueDisciplines)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.JSONEq(t, "[]", string(entry.Payload), "empty domains are still written")

	got, err := snapshot.ReadTracker(store)
	require.NoError(t, err)
	assert.Equal(t, snap.Projects, got.Projects)
	assert.Equal(t, snap.Issues[0].Code, got.Issues[0].Code)
}

func TestWriteTracker_EncodeFailureWritesNothing(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(t.TempDir())
	require.NoError(t, snapshot.WriteTracker(store, &domain.TrackerSnapshot{
		Projects: []domain.TrackerProject{{ID: "P1", Name: "Tower"}},
	}))

	// time.Time refuses to encode years past 9999.
	bad := &domain.TrackerSnapshot{
		Projects: []domain.TrackerProject{{ID: "P2", Name: "Bridge"}},
		Issues:   []domain.Issue{{ID: "I1", ProjectID: "P2", CreatedAt: time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)}},
	}
	err := snapshot.WriteTracker(store, bad)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheWriteFailed.Error())

	got, err := snapshot.ReadTracker(store)
	require.NoError(t, err)
	assert.Equal(t, []domain.TrackerProject{{ID: "P1", Name: "Tower"}}, got.Projects)
}

func TestReadTracker_CorruptEntry(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(t.TempDir())
	require.NoError(t, store.Put(domain.DomainTracker, domain.KeyIssues, []byte("{not json")))

	_, err := snapshot.ReadTracker(store)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheReadFailed.Error())
}

func TestSheetRoundTrip(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(t.TempDir())

	missing, err := snapshot.ReadSheet(store, "77")
	require.NoError(t, err)
	assert.Nil(t, missing)

	sheet := &domain.SheetData{SheetID: "77", Tasks: []domain.SheetTask{{RowID: "r1", Name: "Survey", Status: "Feito"}}}
	require.NoError(t, snapshot.WriteSheet(store, sheet))

	got, err := snapshot.ReadSheet(store, "77")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sheet.Tasks, got.Tasks)
}

func TestMergeScoped(t *testing.T) {
	t.Parallel()

	base := &domain.TrackerSnapshot{
		Projects: []domain.TrackerProject{{ID: "P1"}, {ID: "P2"}},
		Issues: []domain.Issue{
			{ID: "old-1", ProjectID: "P1"},
			{ID: "keep-2", ProjectID: "P2"},
		},
		IssueDisciplines: []domain.IssueDiscipline{
			{IssueID: "old-1", ProjectID: "P1"},
			{IssueID: "keep-2", ProjectID: "P2"},
		},
	}
	fresh := &domain.TrackerSnapshot{
		Projects:         []domain.TrackerProject{{ID: "P1", Name: "renamed"}},
		Disciplines:      []domain.Discipline{{ID: "D1"}},
		Issues:           []domain.Issue{{ID: "new-1", ProjectID: "P1"}},
		IssueDisciplines: []domain.IssueDiscipline{{IssueID: "new-1", ProjectID: "P1"}},
	}

	merged := snapshot.MergeScoped(base, fresh, []string{"P1"})

	var issueIDs []string
	for _, i := range merged.Issues {
		issueIDs = append(issueIDs, i.ID)
	}
	assert.ElementsMatch(t, []string{"keep-2", "new-1"}, issueIDs)
	assert.Len(t, merged.IssueDisciplines, 2)
	require.Len(t, merged.Projects, 2)
	assert.Equal(t, "renamed", merged.Projects[0].Name, "fresh records win")
	assert.Len(t, merged.Disciplines, 1)
}
