package auditlog

import (
	"context"
	"errors"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
)

// Multi appends every entry to each sink in order.
// A failing sink does not stop the others; failures are joined.
type Multi struct {
	sinks []ports.ExecutionLog
}

// NewMulti creates a fan-out log. Nil sinks are ignored.
func NewMulti(sinks ...ports.ExecutionLog) *Multi {
	m := &Multi{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Append implements ports.ExecutionLog.
func (m *Multi) Append(ctx context.Context, entry domain.ExecutionLogEntry) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Append(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{domain.ErrExecutionLogFailed}, errs...)...)
}
