package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/digest/internal/core/ports"
)

// StagePrefix marks spans that represent pipeline stages.
const StagePrefix = "stage."

// Bridge implements sdktrace.SpanProcessor and reports finished stage spans to a logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing; stages are reported once they finish.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the duration and outcome of stage spans.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !strings.HasPrefix(s.Name(), StagePrefix) {
		return
	}

	stage := strings.TrimPrefix(s.Name(), StagePrefix)
	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "stage failed"
		}
		b.logger.Warn(fmt.Sprintf("%s failed after %s: %s", stage, elapsed, desc))
		return
	}
	b.logger.Info(fmt.Sprintf("%s done in %s", stage, elapsed))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
