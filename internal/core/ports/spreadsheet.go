package ports

import (
	"context"

	"go.trai.ch/digest/internal/core/domain"
)

// SpreadsheetSource reads project schedule sheets.
//
//go:generate mockgen -source=spreadsheet.go -destination=mocks/mock_spreadsheet.go -package=mocks
type SpreadsheetSource interface {
	// FetchSheet returns the tasks of one sheet.
	FetchSheet(ctx context.Context, sheetID string) (*domain.SheetData, error)
}
