package processor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/adapters/cache"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports/mocks"
	"go.trai.ch/digest/internal/engine/processor"
	"go.trai.ch/digest/internal/engine/snapshot"
	"go.uber.org/mock/gomock"
)

var reportDate = time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)

func seed(t *testing.T) *cache.Store {
	t.Helper()

	store := cache.NewStore(t.TempDir())
	require.NoError(t, snapshot.WriteTracker(store, &domain.TrackerSnapshot{
		Projects:    []domain.TrackerProject{{ID: "101", Name: "Tower A"}, {ID: "202", Name: "Annex"}},
		Disciplines: []domain.Discipline{{ID: "d1", Name: "Architecture"}, {ID: "d2", Name: "Client"}},
		Issues: []domain.Issue{
			{ID: "i1", Code: "12", Title: "Door schedule", Status: "active", ProjectID: "101"},
			{ID: "i2", Code: "7", Title: "Facade approval", Status: "active", ProjectID: "101", Priority: "high"},
			{ID: "i3", Code: "3", Title: "Closed item", Status: "resolved", ProjectID: "101"},
			{ID: "i4", Code: "9", Title: "Other project", Status: "active", ProjectID: "202"},
		},
		IssueDisciplines: []domain.IssueDiscipline{
			{IssueID: "i1", ProjectID: "101", DisciplineID: "d1", DisciplineName: "Architecture", Status: "todo"},
			// Legacy rows carry neither project nor name.
			{IssueID: "i2", DisciplineID: "d2", Status: "todo"},
			{IssueID: "i2", DisciplineID: "d1", Status: "done"},
			{IssueID: "i3", ProjectID: "101", DisciplineID: "d2", DisciplineName: "Client", Status: "todo"},
			{IssueID: "i4", ProjectID: "202", DisciplineID: "d2", DisciplineName: "Client", Status: "todo"},
		},
	}))
	return store
}

func newProcessor(t *testing.T, store *cache.Store) (*processor.Processor, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	p := processor.New(store, log)
	p.SetClock(func() time.Time { return reportDate })
	return p, log
}

func TestAssemble_JoinsIssuesAndFiltersClientDisciplines(t *testing.T) {
	t.Parallel()

	p, _ := newProcessor(t, seed(t))
	project := domain.ProjectRecord{ProjectID: "101", ClientName: "Acme", ClientDisciplines: []string{"  client "}}

	data, err := p.Assemble(context.Background(), project, "")
	require.NoError(t, err)
	require.True(t, data.Usable())

	assert.Equal(t, "Tower A", data.ProjectName)
	assert.Equal(t, "Acme", data.ClientName)
	assert.Equal(t, reportDate, data.GeneratedAt)
	assert.False(t, data.HasSchedule)

	require.Len(t, data.ActiveIssues, 2)
	assert.Equal(t, "12", data.ActiveIssues[0].Code, "ordered by discipline name")
	assert.Equal(t, "Architecture", data.ActiveIssues[0].Discipline)
	assert.Equal(t, "Client", data.ActiveIssues[1].Discipline, "name resolved through the discipline list")

	require.Len(t, data.ClientIssues, 1)
	assert.Equal(t, "Facade approval", data.ClientIssues[0].Title)
	assert.Equal(t, map[string]int{"Architecture": 1, "Client": 1}, data.DisciplineCounts)
}

func TestAssemble_NoClientDisciplinesKeepsEverything(t *testing.T) {
	t.Parallel()

	p, log := newProcessor(t, seed(t))
	log.EXPECT().Warn(gomock.Any()).Times(1)

	data, err := p.Assemble(context.Background(), domain.ProjectRecord{ProjectID: "101"}, "")
	require.NoError(t, err)
	assert.Len(t, data.ClientIssues, 2)
}

func TestAssemble_UnknownProjectIsUnusable(t *testing.T) {
	t.Parallel()

	p, _ := newProcessor(t, seed(t))

	data, err := p.Assemble(context.Background(), domain.ProjectRecord{ProjectID: "999", ClientDisciplines: []string{"Client"}}, "")
	require.NoError(t, err)
	assert.False(t, data.Usable())
	assert.Empty(t, data.ActiveIssues)
}

func TestAssemble_ScheduleWindowAndLevels(t *testing.T) {
	t.Parallel()

	store := seed(t)
	day := 24 * time.Hour
	require.NoError(t, snapshot.WriteSheet(store, &domain.SheetData{
		SheetID: "55",
		Tasks: []domain.SheetTask{
			{RowID: "r1", Name: "Phase", Level: 3, StartDate: reportDate},
			{RowID: "r2", Name: "Survey", Level: 5, Status: "Feito", EndDate: reportDate.Add(-3 * day)},
			{RowID: "r3", Name: "Foundations", Level: 5, Status: "Não feito", StartDate: reportDate.Add(-90 * day), EndDate: reportDate.Add(59 * day)},
			{RowID: "r4", Name: "Too old", Level: 5, StartDate: reportDate.Add(-90 * day), EndDate: reportDate.Add(-61 * day)},
			{RowID: "r5", Name: "Undated", Level: 5},
		},
	}))
	p, _ := newProcessor(t, store)
	project := domain.ProjectRecord{ProjectID: "101", ClientDisciplines: []string{"Client"}}

	data, err := p.Assemble(context.Background(), project, "55")
	require.NoError(t, err)
	assert.True(t, data.HasSchedule)

	names := make([]string, 0, len(data.Tasks))
	for _, task := range data.Tasks {
		names = append(names, task.Name)
	}
	assert.Equal(t, []string{"Survey", "Foundations"}, names)
	assert.Equal(t, map[string]int{"Feito": 1, "Não feito": 1}, data.StatusCounts)
}

func TestAssemble_UnleveledSheetKeepsAllRows(t *testing.T) {
	t.Parallel()

	store := seed(t)
	require.NoError(t, snapshot.WriteSheet(store, &domain.SheetData{
		SheetID: "56",
		Tasks: []domain.SheetTask{
			{RowID: "r1", Name: "Kickoff", StartDate: reportDate},
			{RowID: "r2", Name: "Review", EndDate: reportDate.Add(10 * 24 * time.Hour)},
		},
	}))
	p, _ := newProcessor(t, store)

	data, err := p.Assemble(context.Background(), domain.ProjectRecord{ProjectID: "101", ClientDisciplines: []string{"Client"}}, "56")
	require.NoError(t, err)
	assert.Len(t, data.Tasks, 2)
}

func TestAssemble_MissingSheet(t *testing.T) {
	t.Parallel()

	p, _ := newProcessor(t, seed(t))

	_, err := p.Assemble(context.Background(), domain.ProjectRecord{ProjectID: "101", ClientDisciplines: []string{"Client"}}, "404")
	require.Error(t, err)
	assert.ErrorContains(t, err, "schedule sheet is not cached")
}
