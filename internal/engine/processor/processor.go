// Package processor assembles the per-project report view from cached tracker and sheet data.
package processor

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/digest/internal/engine/snapshot"
	"go.trai.ch/zerr"
)

const (
	// TaskWindow bounds how far from the report date a task may start or end to be kept.
	TaskWindow = 60 * 24 * time.Hour
	// ScheduleLevel is the sheet hierarchy level holding concrete tasks.
	ScheduleLevel = 5
)

// Processor implements ports.DataProcessor over the cache.
type Processor struct {
	cache  ports.CacheStore
	logger ports.Logger
	now    func() time.Time
}

// New creates a processor reading from cache.
func New(cache ports.CacheStore, logger ports.Logger) *Processor {
	return &Processor{cache: cache, logger: logger, now: time.Now}
}

// Assemble joins the project's issues with their disciplines and, when secondaryID is set,
// the schedule sheet tasks. A project the tracker does not know yields an unnamed view.
func (p *Processor) Assemble(_ context.Context, project domain.ProjectRecord, secondaryID string) (*domain.ProjectData, error) {
	snap, err := snapshot.ReadTracker(p.cache)
	if err != nil {
		return nil, err
	}

	data := &domain.ProjectData{
		ProjectID:        project.ProjectID,
		ClientName:       project.ClientName,
		GeneratedAt:      p.now(),
		DisciplineCounts: make(map[string]int),
		StatusCounts:     make(map[string]int),
	}
	for _, tp := range snap.Projects {
		if tp.ID == project.ProjectID {
			data.ProjectName = tp.Name
			break
		}
	}

	data.ActiveIssues = activeIssues(snap, project.ProjectID)
	for _, issue := range data.ActiveIssues {
		data.DisciplineCounts[issue.Discipline]++
	}
	data.ClientIssues = p.clientIssues(project, data.ActiveIssues)

	if secondaryID != "" {
		sheet, err := snapshot.ReadSheet(p.cache, secondaryID)
		if err != nil {
			return nil, err
		}
		if sheet == nil {
			return nil, zerr.With(zerr.New("schedule sheet is not cached"), "sheet_id", secondaryID)
		}
		data.HasSchedule = true
		data.Tasks = recentTasks(sheet.Tasks, data.GeneratedAt)
		for _, t := range data.Tasks {
			if status := strings.TrimSpace(t.Status); status != "" {
				data.StatusCounts[status]++
			}
		}
	}

	return data, nil
}

// activeIssues returns one view per issue and discipline pair where the issue is
// active and the discipline still has it to do. Output is ordered by discipline then code.
func activeIssues(snap *domain.TrackerSnapshot, projectID string) []domain.IssueView {
	issues := make(map[string]domain.Issue)
	for _, issue := range snap.Issues {
		if issue.ProjectID == projectID {
			issues[issue.ID] = issue
		}
	}
	names := make(map[string]string, len(snap.Disciplines))
	for _, d := range snap.Disciplines {
		names[d.ID] = d.Name
	}

	var views []domain.IssueView
	for _, link := range snap.IssueDisciplines {
		issue, ok := issues[link.IssueID]
		if !ok || (link.ProjectID != "" && link.ProjectID != projectID) {
			continue
		}
		if !strings.EqualFold(issue.Status, domain.IssueStatusActive) ||
			!strings.EqualFold(link.Status, domain.DisciplineStatusTodo) {
			continue
		}
		name := link.DisciplineName
		if name == "" {
			name = names[link.DisciplineID]
		}
		views = append(views, domain.IssueView{Issue: issue, Discipline: strings.TrimSpace(name)})
	}

	slices.SortStableFunc(views, func(a, b domain.IssueView) int {
		return cmp.Or(cmp.Compare(a.Discipline, b.Discipline), cmp.Compare(a.Code, b.Code))
	})
	return views
}

// clientIssues keeps the issues pending on one of the client's disciplines.
// Without configured disciplines nothing is filtered.
func (p *Processor) clientIssues(project domain.ProjectRecord, active []domain.IssueView) []domain.IssueView {
	if len(project.ClientDisciplines) == 0 {
		p.logger.Warn(fmt.Sprintf("project %s has no client disciplines, reporting every active issue", project.ProjectID))
		return slices.Clone(active)
	}

	wanted := make(map[string]bool, len(project.ClientDisciplines))
	for _, d := range project.ClientDisciplines {
		wanted[normalize(d)] = true
	}
	var out []domain.IssueView
	for _, issue := range active {
		if wanted[normalize(issue.Discipline)] {
			out = append(out, issue)
		}
	}
	return out
}

// recentTasks keeps tasks starting or ending within TaskWindow of now and,
// when the sheet carries hierarchy levels, only concrete task rows.
func recentTasks(tasks []domain.SheetTask, now time.Time) []domain.SheetTask {
	leveled := slices.ContainsFunc(tasks, func(t domain.SheetTask) bool { return t.Level != 0 })
	from, to := now.Add(-TaskWindow), now.Add(TaskWindow)
	within := func(t time.Time) bool {
		return !t.IsZero() && !t.Before(from) && !t.After(to)
	}

	var out []domain.SheetTask
	for _, t := range tasks {
		if leveled && t.Level != ScheduleLevel {
			continue
		}
		if within(t.StartDate) || within(t.EndDate) {
			out = append(out, t)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
