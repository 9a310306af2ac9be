// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/digest/internal/adapters/artifact"
	_ "go.trai.ch/digest/internal/adapters/auditlog"
	_ "go.trai.ch/digest/internal/adapters/cache"
	_ "go.trai.ch/digest/internal/adapters/config"
	_ "go.trai.ch/digest/internal/adapters/discord"
	_ "go.trai.ch/digest/internal/adapters/google"
	_ "go.trai.ch/digest/internal/adapters/logger"
	_ "go.trai.ch/digest/internal/adapters/report"
	_ "go.trai.ch/digest/internal/adapters/spreadsheet"
	_ "go.trai.ch/digest/internal/adapters/telemetry"
	_ "go.trai.ch/digest/internal/adapters/tracker"
	// Register app and engine nodes.
	_ "go.trai.ch/digest/internal/app"
	_ "go.trai.ch/digest/internal/engine/pipeline"
	_ "go.trai.ch/digest/internal/engine/processor"
	_ "go.trai.ch/digest/internal/engine/publisher"
	_ "go.trai.ch/digest/internal/engine/syncer"
)
