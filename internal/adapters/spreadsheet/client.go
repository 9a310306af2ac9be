// Package spreadsheet reads project schedule sheets from the Smartsheet REST API.
package spreadsheet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/digest/internal/adapters/httpjson"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
)

// Accepted column titles per task field, compared case-insensitively.
var (
	nameColumns        = []string{"nome da tarefa", "task name", "nome"}
	statusColumns      = []string{"status"}
	disciplineColumns  = []string{"disciplina", "discipline"}
	responsibleColumns = []string{"responsável", "responsavel", "responsible"}
	startColumns       = []string{"data inicio", "data início", "start date"}
	endColumns         = []string{"data término", "data de término", "data termino", "end date"}
	delayColumns       = []string{"categoria de atraso", "motivo de atraso", "delay category"}
	levelColumns       = []string{"level", "nível", "nivel"}
)

var dateLayouts = []string{time.DateOnly, "2006-01-02T15:04:05", time.RFC3339}

type sheetColumn struct {
	ID    json.Number `json:"id"`
	Title string      `json:"title"`
}

type sheetCell struct {
	ColumnID     json.Number `json:"columnId"`
	Value        any         `json:"value"`
	DisplayValue string      `json:"displayValue"`
}

type sheetRow struct {
	ID    json.Number `json:"id"`
	Cells []sheetCell `json:"cells"`
}

type sheetResponse struct {
	ID      json.Number   `json:"id"`
	Name    string        `json:"name"`
	Columns []sheetColumn `json:"columns"`
	Rows    []sheetRow    `json:"rows"`
}

// Client implements ports.SpreadsheetSource.
type Client struct {
	api   *httpjson.Client
	token string
	now   func() time.Time
}

// New creates a client for the API at baseURL authenticated with a bearer token.
func New(baseURL, token string, httpClient *http.Client) *Client {
	headers := http.Header{}
	if token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}
	return &Client{
		api:   httpjson.New(baseURL, httpClient, headers),
		token: token,
		now:   time.Now,
	}
}

// FetchSheet returns every task row of a sheet.
func (c *Client) FetchSheet(ctx context.Context, sheetID string) (*domain.SheetData, error) {
	if c.token == "" {
		return nil, zerr.With(domain.ErrCredentialsMissing, "source", "spreadsheet")
	}

	var resp sheetResponse
	if err := c.api.Do(ctx, http.MethodGet, "/sheets/"+url.PathEscape(sheetID), nil, &resp, nil); err != nil {
		return nil, zerr.With(err, "sheet_id", sheetID)
	}

	return &domain.SheetData{
		SheetID:   sheetID,
		Name:      resp.Name,
		FetchedAt: c.now().UTC(),
		Tasks:     tasks(resp),
	}, nil
}

// tasks maps rows to tasks by column title. Rows without any recognised value are dropped.
func tasks(sheet sheetResponse) []domain.SheetTask {
	titles := make(map[string]string, len(sheet.Columns))
	for _, col := range sheet.Columns {
		titles[col.ID.String()] = strings.ToLower(strings.TrimSpace(col.Title))
	}

	out := make([]domain.SheetTask, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make(map[string]sheetCell, len(row.Cells))
		for _, cell := range row.Cells {
			if title, ok := titles[cell.ColumnID.String()]; ok {
				cells[title] = cell
			}
		}

		pickText := func(columns []string) string {
			for _, c := range columns {
				if cell, ok := cells[c]; ok {
					if v := cellText(cell); v != "" {
						return v
					}
				}
			}
			return ""
		}
		pickDate := func(columns []string) time.Time {
			for _, c := range columns {
				if cell, ok := cells[c]; ok {
					if t, ok := cellDate(cell); ok {
						return t
					}
				}
			}
			return time.Time{}
		}

		task := domain.SheetTask{
			RowID:         row.ID.String(),
			Name:          pickText(nameColumns),
			Status:        pickText(statusColumns),
			Discipline:    pickText(disciplineColumns),
			Responsible:   pickText(responsibleColumns),
			StartDate:     pickDate(startColumns),
			EndDate:       pickDate(endColumns),
			DelayCategory: pickText(delayColumns),
		}
		if level, err := strconv.Atoi(pickText(levelColumns)); err == nil {
			task.Level = level
		}

		if task.Name == "" && task.Status == "" && task.StartDate.IsZero() && task.EndDate.IsZero() {
			continue
		}
		out = append(out, task)
	}
	return out
}

func cellText(cell sheetCell) string {
	switch v := cell.Value.(type) {
	case nil:
		return strings.TrimSpace(cell.DisplayValue)
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(cell.DisplayValue)
	}
}

func cellDate(cell sheetCell) (time.Time, bool) {
	s, ok := cell.Value.(string)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
