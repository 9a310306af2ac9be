package domain

import (
	"strings"
	"time"
)

// Spreadsheet task states.
const (
	TaskStatusDone    = "feito"
	TaskStatusNotDone = "não feito"
)

// SheetTask is one row of a project's schedule sheet.
type SheetTask struct {
	RowID         string    `json:"rowId"`
	Name          string    `json:"name"`
	Status        string    `json:"status,omitempty"`
	Discipline    string    `json:"discipline,omitempty"`
	Responsible   string    `json:"responsible,omitempty"`
	StartDate     time.Time `json:"startDate,omitzero"`
	EndDate       time.Time `json:"endDate,omitzero"`
	DelayCategory string    `json:"delayCategory,omitempty"`
	Level         int       `json:"level,omitempty"`
}

// Done reports whether the task was completed.
func (t SheetTask) Done() bool {
	return strings.EqualFold(strings.TrimSpace(t.Status), TaskStatusDone)
}

// NotDone reports whether the task was explicitly marked as not completed.
func (t SheetTask) NotDone() bool {
	return strings.EqualFold(strings.TrimSpace(t.Status), TaskStatusNotDone)
}

// Delayed reports whether the task was missed or carries a delay category.
func (t SheetTask) Delayed() bool {
	return t.NotDone() || strings.TrimSpace(t.DelayCategory) != ""
}

// SheetData is the cached content of one schedule sheet.
type SheetData struct {
	SheetID   string      `json:"sheetId"`
	Name      string      `json:"name,omitempty"`
	FetchedAt time.Time   `json:"fetchedAt"`
	Tasks     []SheetTask `json:"tasks"`
}
