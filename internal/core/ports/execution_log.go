package ports

import (
	"context"

	"go.trai.ch/digest/internal/core/domain"
)

//go:generate mockgen -source=execution_log.go -destination=mocks/mock_execution_log.go -package=mocks

// ExecutionLog is an append-only audit sink.
type ExecutionLog interface {
	Append(ctx context.Context, entry domain.ExecutionLogEntry) error
}

// ExecutionHistory reads back recent audit rows.
type ExecutionHistory interface {
	Recent(ctx context.Context, limit int) ([]domain.ExecutionLogEntry, error)
}
