package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
)

// Accepted column names per canonical field. The first entry is the canonical name;
// the rest are older spreadsheet headers still found in the wild.
var (
	projectIDColumns   = []string{"id", "construflow_id", "id_construflow"}
	nameColumns        = []string{"name", "projeto - pr", "nome_projeto", "projeto"}
	codeColumns        = []string{"code", "código projeto", "codigo_projeto"}
	clientColumns      = []string{"client", "nome_cliente"}
	sheetIDColumns     = []string{"sheet_id", "smartsheet_id", "id_smartsheet"}
	channelIDColumns   = []string{"channel_id", "discord_id", "canal_discord"}
	folderIDColumns    = []string{"folder_id", "pastaemails_id", "pasta_id"}
	activeColumns      = []string{"active", "relatoriosemanal_status", "relatorio_semanal"}
	disciplinesColumns = []string{"client_disciplines", "construflow_disciplinasclientes", "disciplinas_cliente"}
)

var truthy = map[string]bool{
	"sim": true, "s": true, "yes": true, "y": true, "true": true, "1": true, "ativo": true, "x": true,
}

// NormalizeRow maps a raw configuration row in any accepted column shape to a ProjectRecord.
func NormalizeRow(row map[string]string) (domain.ProjectRecord, error) {
	lookup := make(map[string]string, len(row))
	for k, v := range row {
		lookup[strings.ToLower(strings.TrimSpace(k))] = cleanCell(v)
	}

	pick := func(columns []string) string {
		for _, c := range columns {
			if v := lookup[c]; v != "" {
				return v
			}
		}
		return ""
	}

	record := domain.ProjectRecord{
		ProjectID:         pick(projectIDColumns),
		DisplayName:       pick(nameColumns),
		Code:              pick(codeColumns),
		ClientName:        pick(clientColumns),
		SecondarySourceID: pick(sheetIDColumns),
		ChannelID:         pick(channelIDColumns),
		FolderID:          pick(folderIDColumns),
		ClientDisciplines: splitList(pick(disciplinesColumns)),
		Active:            truthy[strings.ToLower(pick(activeColumns))],
	}

	if record.ProjectID == "" {
		return domain.ProjectRecord{}, zerr.With(domain.ErrMissingProjectID, "name", record.DisplayName)
	}
	if record.DisplayName == "" {
		record.DisplayName = record.ProjectID
	}
	return record, nil
}

// NormalizeTable maps a header row plus data rows to ProjectRecords.
// Rows without a tracker id are skipped and reported in the returned error.
func NormalizeTable(header []string, rows [][]string) ([]domain.ProjectRecord, error) {
	var (
		records []domain.ProjectRecord
		skipped []string
	)

	for i, cells := range rows {
		row := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(cells) {
				row[col] = cells[j]
			}
		}
		if isBlank(row) {
			continue
		}

		record, err := NormalizeRow(row)
		if err != nil {
			skipped = append(skipped, strconv.Itoa(i+2))
			continue
		}
		records = append(records, record)
	}

	if len(skipped) > 0 {
		return records, zerr.With(domain.ErrMissingProjectID, "rows", strings.Join(skipped, ","))
	}
	return records, nil
}

// ProjectList implements ports.ProjectDirectory from the projects list of the settings file.
type ProjectList struct {
	rows []ProjectRow
}

// NewProjectList creates a directory backed by configuration rows.
func NewProjectList(rows []ProjectRow) *ProjectList {
	return &ProjectList{rows: rows}
}

// Projects returns every configured project in file order.
func (l *ProjectList) Projects(_ context.Context) ([]domain.ProjectRecord, error) {
	records := make([]domain.ProjectRecord, 0, len(l.rows))
	for _, raw := range l.rows {
		row := make(map[string]string, len(raw))
		for k, v := range raw {
			row[k] = stringify(v)
		}
		record, err := NormalizeRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ";")
	default:
		return fmt.Sprint(t)
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ',' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// cleanCell trims a cell and drops the float suffix spreadsheets add to numeric ids.
func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "nan", "none", "null":
		return ""
	}
	if strings.HasSuffix(v, ".0") && isDigits(strings.TrimSuffix(v, ".0")) {
		return strings.TrimSuffix(v, ".0")
	}
	return v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isBlank(row map[string]string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
