package google

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/digest/internal/adapters/config"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"google.golang.org/api/sheets/v4"
)

// SheetDirectory reads the project directory from a configuration spreadsheet.
type SheetDirectory struct {
	services      *Services
	logger        ports.Logger
	spreadsheetID string
	readRange     string
}

var _ ports.ProjectDirectory = (*SheetDirectory)(nil)

// NewSheetDirectory creates a SheetDirectory reading readRange of spreadsheetID.
func NewSheetDirectory(services *Services, logger ports.Logger, spreadsheetID, readRange string) *SheetDirectory {
	return &SheetDirectory{
		services:      services,
		logger:        logger,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}
}

// Projects returns the normalized rows of the configuration sheet. The first row is the header.
func (d *SheetDirectory) Projects(ctx context.Context) ([]domain.ProjectRecord, error) {
	if err := d.services.Available(); err != nil {
		return nil, err
	}

	ctx, cancel := d.services.bounded(ctx)
	defer cancel()

	resp, err := d.services.Sheets.Spreadsheets.Values.Get(d.spreadsheetID, d.readRange).Context(ctx).Do()
	if err != nil {
		return nil, classify(err, "read project sheet")
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	header := cellsToStrings(resp.Values[0])
	rows := make([][]string, 0, len(resp.Values)-1)
	for _, r := range resp.Values[1:] {
		rows = append(rows, cellsToStrings(r))
	}

	records, err := config.NormalizeTable(header, rows)
	if err != nil {
		d.logger.Warn(fmt.Sprintf("project sheet rows skipped: %v", err))
	}
	return records, nil
}

func cellsToStrings(cells []any) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(fmt.Sprint(c))
	}
	return out
}

// LogSheet appends execution log rows to a spreadsheet.
type LogSheet struct {
	services      *Services
	spreadsheetID string
	appendRange   string
}

var _ ports.ExecutionLog = (*LogSheet)(nil)

// NewLogSheet creates a LogSheet appending after appendRange of spreadsheetID.
func NewLogSheet(services *Services, spreadsheetID, appendRange string) *LogSheet {
	return &LogSheet{services: services, spreadsheetID: spreadsheetID, appendRange: appendRange}
}

// Append writes one row: timestamp, project id, project name, status, message, document URL.
func (l *LogSheet) Append(ctx context.Context, entry domain.ExecutionLogEntry) error {
	if err := l.services.Available(); err != nil {
		return err
	}

	row := logRow(entry)
	ctx, cancel := l.services.bounded(ctx)
	defer cancel()

	_, err := l.services.Sheets.Spreadsheets.Values.Append(l.spreadsheetID, l.appendRange, &sheets.ValueRange{
		Values: [][]any{row},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	return classify(err, "append execution log row")
}

func logRow(entry domain.ExecutionLogEntry) []any {
	return []any{
		entry.Timestamp.Format(time.DateTime),
		entry.ProjectID,
		entry.ProjectName,
		string(entry.Status),
		entry.Message,
		entry.DocumentURL,
	}
}
