package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/adapters/report"
	"go.trai.ch/digest/internal/core/domain"
)

const issueURL = "https://tracker.example/p/{project}/issues?issueId={issue}"

var now = time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func issue(id, code, title, priority, discipline string, updated time.Time) domain.IssueView {
	return domain.IssueView{
		Issue:      domain.Issue{ID: id, Code: code, Title: title, Priority: priority, Status: "active", ProjectID: "101", UpdatedAt: updated},
		Discipline: discipline,
	}
}

func TestGenerate_Golden(t *testing.T) {
	t.Parallel()

	data := &domain.ProjectData{
		ProjectID:   "101",
		ProjectName: "Tower A",
		ClientName:  "Acme",
		GeneratedAt: now,
		HasSchedule: true,
		ClientIssues: []domain.IssueView{
			issue("i1", "12", "Door schedule", "alta", "Architecture", now.Add(-72*time.Hour)),
			issue("i5", "8", "Roof drainage", "", "Architecture", time.Time{}),
			issue("i2", "7", "Facade approval", "3", "Client", now.Add(-time.Hour)),
			issue("i6", "15", "Budget review", "Baixa", "Client", now.Add(-25*time.Hour)),
		},
		Tasks: []domain.SheetTask{
			{Name: "Survey", Discipline: "Topography", Status: "Feito", EndDate: day(time.March, 5)},
			{Name: "Soil report", Discipline: "Geotechnics", Status: "feito", EndDate: day(time.March, 6)},
			{Name: "As-built check", Discipline: "Topography", Status: "Feito", EndDate: day(time.March, 1)},
			{Name: "Old done", Discipline: "Topography", Status: "Feito", EndDate: day(time.February, 20)},
			{Name: "Foundations", Discipline: "Structure", Status: "Não feito", EndDate: day(time.March, 4), DelayCategory: "Weather"},
			{Name: "Formwork", Discipline: "Structure", StartDate: day(time.March, 10), EndDate: day(time.March, 14), Responsible: "Ana"},
			{Name: "Design freeze", StartDate: day(time.March, 16), EndDate: day(time.March, 28)},
			{Name: "Kickoff", StartDate: day(time.March, 17)},
			{Name: "Permit", Discipline: "Legal", Status: "Em andamento", EndDate: day(time.March, 3), DelayCategory: "Client"},
		},
		DisciplineCounts: map[string]int{"Architecture": 3, "Client": 2, "": 1},
	}

	out, err := report.New(issueURL).Generate(data)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "weekly_report", []byte(out))
}

func TestGenerate_WithoutSchedule(t *testing.T) {
	t.Parallel()

	data := &domain.ProjectData{
		ProjectID:   "101",
		ProjectName: "Tower A",
		GeneratedAt: now,
		ClientIssues: []domain.IssueView{
			issue("i1", "12", "Door schedule", "medium", "Architecture", time.Time{}),
		},
	}

	out, err := report.New(issueURL).Generate(data)
	require.NoError(t, err)

	assert.Contains(t, out, "Hello, team!")
	assert.Contains(t, out, "### 🟠 Medium priority\n\n- [#12](https://tracker.example/p/101/issues?issueId=i1) – Door schedule\n")
	assert.NotContains(t, out, "**Architecture**", "a single discipline is not split")
	assert.Equal(t, 4, strings.Count(out, "No schedule is linked to this project."))
	assert.Contains(t, out, "No pending items.")
}

func TestGenerate_NoClientItems(t *testing.T) {
	t.Parallel()

	out, err := report.New(issueURL).Generate(&domain.ProjectData{ProjectName: "Annex", GeneratedAt: now, HasSchedule: true})
	require.NoError(t, err)

	assert.Contains(t, out, "## 🛎️ Client items\n\nNo open items for the client disciplines.\n")
	assert.Contains(t, out, "No tasks completed in the period.")
	assert.Contains(t, out, "No activities start next week.")
	assert.Contains(t, out, "No delays in the period.")
	assert.Contains(t, out, "No deliveries in the next two weeks.")
}

func TestGenerate_StartingIncludesCurrentWeekBeforeFriday(t *testing.T) {
	t.Parallel()

	tuesday := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
	data := &domain.ProjectData{
		ProjectName: "Tower A",
		GeneratedAt: tuesday,
		HasSchedule: true,
		Tasks: []domain.SheetTask{
			{Name: "Earlier this week", StartDate: day(time.March, 3)},
			{Name: "Next week", StartDate: day(time.March, 12)},
			{Name: "Too late", StartDate: day(time.March, 17)},
			{Name: "Last week", StartDate: day(time.February, 28)},
		},
	}

	out, err := report.New(issueURL).Generate(data)
	require.NoError(t, err)

	assert.Contains(t, out, "## 📅 Starting next week\n\n- 03/03 │ Earlier this week\n- 12/03 │ Next week\n\n")
	assert.NotContains(t, out, "Too late")
	assert.NotContains(t, out, "Last week")
}

func TestGenerate_UnusableData(t *testing.T) {
	t.Parallel()

	_, err := report.New(issueURL).Generate(&domain.ProjectData{ProjectID: "101"})
	require.ErrorIs(t, err, domain.ErrReportGenerationFailed)

	_, err = report.New(issueURL).Generate(nil)
	require.ErrorIs(t, err, domain.ErrReportGenerationFailed)
}
