package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/artifact"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/auditlog"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/discord"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/google"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/report"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/digest/internal/engine/processor"
	"go.trai.ch/digest/internal/engine/publisher"
	"go.trai.ch/digest/internal/engine/syncer"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			google.DirectoryNodeID,
			syncer.NodeID,
			processor.NodeID,
			report.NodeID,
			artifact.NodeID,
			google.FoldersNodeID,
			publisher.NodeID,
			google.UploaderNodeID,
			auditlog.NodeID,
			discord.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Orchestrator, error) {
	var (
		deps Deps
		err  error
	)
	if deps.Projects, err = graft.Dep[ports.ProjectDirectory](ctx); err != nil {
		return nil, err
	}
	if deps.Syncer, err = graft.Dep[ports.Synchronizer](ctx); err != nil {
		return nil, err
	}
	if deps.Processor, err = graft.Dep[ports.DataProcessor](ctx); err != nil {
		return nil, err
	}
	if deps.Generator, err = graft.Dep[ports.ReportGenerator](ctx); err != nil {
		return nil, err
	}
	if deps.Artifacts, err = graft.Dep[ports.ArtifactStore](ctx); err != nil {
		return nil, err
	}
	if deps.Folders, err = graft.Dep[ports.FolderResolver](ctx); err != nil {
		return nil, err
	}
	if deps.Publisher, err = graft.Dep[ports.DocumentPublisher](ctx); err != nil {
		return nil, err
	}
	if deps.Uploader, err = graft.Dep[ports.FileUploader](ctx); err != nil {
		return nil, err
	}
	if deps.Audit, err = graft.Dep[ports.ExecutionLog](ctx); err != nil {
		return nil, err
	}
	notifier, err := graft.Dep[*discord.Notifier](ctx)
	if err != nil {
		return nil, err
	}
	if notifier != nil {
		deps.Notifier = notifier
	}
	if deps.Tracer, err = graft.Dep[ports.Tracer](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	return New(deps), nil
}
