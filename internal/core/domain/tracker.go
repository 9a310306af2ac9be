package domain

import "time"

// Tracker issue and discipline states that make an issue count as open work.
const (
	IssueStatusActive    = "active"
	DisciplineStatusTodo = "todo"
)

// TrackerProject is a project as known by the issue tracker.
type TrackerProject struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// Discipline is an engineering discipline an issue can be assigned to.
type Discipline struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Issue is a tracker issue.
type Issue struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority,omitempty"`
	ProjectID string    `json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IssueDiscipline links an issue to a discipline with a per-discipline status.
type IssueDiscipline struct {
	IssueID        string `json:"issueId"`
	ProjectID      string `json:"projectId"`
	DisciplineID   string `json:"disciplineId"`
	DisciplineName string `json:"name"`
	Status         string `json:"status"`
}

// TrackerSnapshot holds every tracker domain returned by one synchronization tier.
type TrackerSnapshot struct {
	Projects         []TrackerProject  `json:"projects"`
	Disciplines      []Discipline      `json:"disciplines"`
	Issues           []Issue           `json:"issues"`
	IssueDisciplines []IssueDiscipline `json:"issueDisciplines"`
}

// IsEmpty reports whether the snapshot carries no usable data.
func (s *TrackerSnapshot) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Projects) == 0 && len(s.Disciplines) == 0 && len(s.Issues) == 0
}

// RecordCount returns the total number of records across all tracker domains.
func (s *TrackerSnapshot) RecordCount() int {
	if s == nil {
		return 0
	}
	return len(s.Projects) + len(s.Disciplines) + len(s.Issues) + len(s.IssueDisciplines)
}

// Merge appends the records of other into s, skipping ids that are already present.
func (s *TrackerSnapshot) Merge(other *TrackerSnapshot) {
	if other == nil {
		return
	}

	seenProjects := make(map[string]struct{}, len(s.Projects))
	for _, p := range s.Projects {
		seenProjects[p.ID] = struct{}{}
	}
	for _, p := range other.Projects {
		if _, ok := seenProjects[p.ID]; !ok {
			seenProjects[p.ID] = struct{}{}
			s.Projects = append(s.Projects, p)
		}
	}

	seenDisciplines := make(map[string]struct{}, len(s.Disciplines))
	for _, d := range s.Disciplines {
		seenDisciplines[d.ID] = struct{}{}
	}
	for _, d := range other.Disciplines {
		if _, ok := seenDisciplines[d.ID]; !ok {
			seenDisciplines[d.ID] = struct{}{}
			s.Disciplines = append(s.Disciplines, d)
		}
	}

	s.Issues = append(s.Issues, other.Issues...)
	s.IssueDisciplines = append(s.IssueDisciplines, other.IssueDisciplines...)
}
