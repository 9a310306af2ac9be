// Package report renders the weekly project report as markdown-flavored text.
package report

import (
	"cmp"
	"embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/template"
	"time"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed templates/report.md.tmpl
var templates embed.FS

const (
	completedWindow = 7 * 24 * time.Hour
	deliveryWindow  = 14 * 24 * time.Hour
	noDiscipline    = "No discipline"
	noSchedule      = "No schedule is linked to this project."
	dayMonth        = "02/01"
)

var priorities = []struct {
	key, emoji, title string
}{
	{"high", "🔴", "High priority"},
	{"medium", "🟠", "Medium priority"},
	{"low", "🟢", "Low priority"},
	{"none", "⚪", "No priority set"},
}

// Generator implements ports.ReportGenerator.
type Generator struct {
	issueURL string
	tmpl     *template.Template
}

// New creates a generator. issueURL is the issue link template with
// {project} and {issue} placeholders.
func New(issueURL string) *Generator {
	return &Generator{
		issueURL: issueURL,
		tmpl:     template.Must(template.ParseFS(templates, "templates/report.md.tmpl")),
	}
}

// Generate renders data. Issue references are emitted as [#code](url).
func (g *Generator) Generate(data *domain.ProjectData) (string, error) {
	if !data.Usable() {
		return "", zerr.Wrap(domain.ErrReportGenerationFailed, "project data has no project name")
	}

	var sb strings.Builder
	if err := g.tmpl.ExecuteTemplate(&sb, "report.md.tmpl", g.view(data)); err != nil {
		return "", zerr.With(errors.Join(domain.ErrReportGenerationFailed, err), "project_id", data.ProjectID)
	}
	return sb.String(), nil
}

type view struct {
	Project          string
	Client           string
	Date             string
	Priorities       []priorityGroup
	SplitDisciplines bool
	HasSchedule      bool
	NoSchedule       string
	Completed        []lineGroup
	Starting         []string
	Delays           []string
	Deliveries       []string
	Pending          []pendingCount
	PendingTotal     int
}

type priorityGroup struct {
	Emoji  string
	Title  string
	Groups []lineGroup
}

type lineGroup struct {
	Name  string
	Lines []string
}

type pendingCount struct {
	Name  string
	Count int
}

func (g *Generator) view(data *domain.ProjectData) view {
	now := data.GeneratedAt
	v := view{
		Project:     data.ProjectName,
		Client:      cmp.Or(strings.TrimSpace(data.ClientName), "team"),
		Date:        now.Format("02/01/2006"),
		HasSchedule: data.HasSchedule,
		NoSchedule:  noSchedule,
	}

	disciplines := make(map[string]bool)
	for _, issue := range data.ClientIssues {
		disciplines[issue.Discipline] = true
	}
	v.SplitDisciplines = len(disciplines) > 1
	v.Priorities = g.priorityGroups(data, v.SplitDisciplines)

	if data.HasSchedule {
		v.Completed = completed(data.Tasks, now)
		v.Starting = startingNextWeek(data.Tasks, now)
		v.Delays = delays(data.Tasks, now)
		v.Deliveries = deliveries(data.Tasks, now)
	}

	for name, count := range data.DisciplineCounts {
		v.Pending = append(v.Pending, pendingCount{Name: cmp.Or(name, noDiscipline), Count: count})
		v.PendingTotal += count
	}
	slices.SortFunc(v.Pending, func(a, b pendingCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Name, b.Name))
	})
	return v
}

func (g *Generator) priorityGroups(data *domain.ProjectData, split bool) []priorityGroup {
	byPriority := make(map[string][]domain.IssueView)
	for _, issue := range data.ClientIssues {
		key := priorityKey(issue.Priority)
		byPriority[key] = append(byPriority[key], issue)
	}

	var out []priorityGroup
	for _, p := range priorities {
		issues := byPriority[p.key]
		if len(issues) == 0 {
			continue
		}
		group := priorityGroup{Emoji: p.emoji, Title: p.title}
		if !split {
			lines := make([]string, 0, len(issues))
			for _, issue := range issues {
				lines = append(lines, g.issueLine(data, issue))
			}
			group.Groups = []lineGroup{{Lines: lines}}
			out = append(out, group)
			continue
		}
		index := make(map[string]int)
		for _, issue := range issues {
			name := cmp.Or(issue.Discipline, noDiscipline)
			i, ok := index[name]
			if !ok {
				i = len(group.Groups)
				index[name] = i
				group.Groups = append(group.Groups, lineGroup{Name: name})
			}
			group.Groups[i].Lines = append(group.Groups[i].Lines, g.issueLine(data, issue))
		}
		slices.SortStableFunc(group.Groups, func(a, b lineGroup) int { return cmp.Compare(a.Name, b.Name) })
		out = append(out, group)
	}
	return out
}

func (g *Generator) issueLine(data *domain.ProjectData, issue domain.IssueView) string {
	url := strings.NewReplacer("{project}", data.ProjectID, "{issue}", issue.ID).Replace(g.issueURL)
	line := fmt.Sprintf("[#%s](%s) – %s", issue.Code, url, strings.TrimSpace(issue.Title))
	if issue.UpdatedAt.IsZero() {
		return line
	}
	switch days := int(data.GeneratedAt.Sub(issue.UpdatedAt).Hours() / 24); {
	case days <= 0:
		return line + " (updated today)"
	case days == 1:
		return line + " (no update for 1 day)"
	default:
		return line + fmt.Sprintf(" (no update for %d days)", days)
	}
}

// priorityKey maps tracker priority values, numeric or named, to a group key.
func priorityKey(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high", "alta", "3":
		return "high"
	case "medium", "media", "média", "2":
		return "medium"
	case "low", "baixa", "1":
		return "low"
	default:
		return "none"
	}
}

func completed(tasks []domain.SheetTask, now time.Time) []lineGroup {
	var done []domain.SheetTask
	for _, t := range tasks {
		if t.Done() && between(t.EndDate, now.Add(-completedWindow), now) {
			done = append(done, t)
		}
	}
	slices.SortStableFunc(done, func(a, b domain.SheetTask) int { return b.EndDate.Compare(a.EndDate) })

	var groups []lineGroup
	index := make(map[string]int)
	for _, t := range done {
		name := cmp.Or(strings.TrimSpace(t.Discipline), noDiscipline)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, lineGroup{Name: name})
		}
		groups[i].Lines = append(groups[i].Lines, fmt.Sprintf("%s │ %s", t.EndDate.In(now.Location()).Format(dayMonth), t.Name))
	}
	return groups
}

// startingNextWeek lists open tasks starting next Monday through Sunday.
// Before Friday the current week is included too.
func startingNextWeek(tasks []domain.SheetTask, now time.Time) []string {
	offset := (int(now.Weekday()) + 6) % 7
	monday := startOfDay(now).AddDate(0, 0, -offset)
	from, to := monday.AddDate(0, 0, 7), monday.AddDate(0, 0, 14)
	if now.Weekday() >= time.Monday && now.Weekday() < time.Friday {
		from = monday
	}

	var starting []domain.SheetTask
	for _, t := range tasks {
		if !t.Done() && !t.StartDate.IsZero() && !t.StartDate.Before(from) && t.StartDate.Before(to) {
			starting = append(starting, t)
		}
	}
	slices.SortStableFunc(starting, func(a, b domain.SheetTask) int { return a.StartDate.Compare(b.StartDate) })

	lines := make([]string, 0, len(starting))
	for _, t := range starting {
		lines = append(lines, taskLine(t.StartDate, t, now.Location()))
	}
	return lines
}

func delays(tasks []domain.SheetTask, now time.Time) []string {
	var late []domain.SheetTask
	for _, t := range tasks {
		if t.Delayed() && between(t.EndDate, now.Add(-completedWindow), now) {
			late = append(late, t)
		}
	}
	slices.SortStableFunc(late, func(a, b domain.SheetTask) int { return a.EndDate.Compare(b.EndDate) })

	lines := make([]string, 0, len(late))
	for _, t := range late {
		line := taskLine(t.EndDate, t, now.Location())
		if category := strings.TrimSpace(t.DelayCategory); category != "" {
			line += " (" + category + ")"
		}
		lines = append(lines, line)
	}
	return lines
}

func deliveries(tasks []domain.SheetTask, now time.Time) []string {
	var due []domain.SheetTask
	for _, t := range tasks {
		if !t.Done() && !t.NotDone() && t.EndDate.After(now) && !t.EndDate.After(now.Add(deliveryWindow)) {
			due = append(due, t)
		}
	}
	slices.SortStableFunc(due, func(a, b domain.SheetTask) int { return a.EndDate.Compare(b.EndDate) })

	lines := make([]string, 0, len(due))
	for _, t := range due {
		line := taskLine(t.EndDate, t, now.Location())
		if who := strings.TrimSpace(t.Responsible); who != "" {
			line += " (" + who + ")"
		}
		lines = append(lines, line)
	}
	return lines
}

func taskLine(date time.Time, t domain.SheetTask, loc *time.Location) string {
	prefix := date.In(loc).Format(dayMonth) + " │ "
	if discipline := strings.TrimSpace(t.Discipline); discipline != "" {
		return prefix + discipline + ": " + t.Name
	}
	return prefix + t.Name
}

func between(t, from, to time.Time) bool {
	return !t.IsZero() && !t.Before(from) && !t.After(to)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
