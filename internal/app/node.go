package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/auditlog" //nolint:depguard // Wired in app layer
	"go.trai.ch/digest/internal/adapters/cache"    //nolint:depguard // Wired in app layer
	"go.trai.ch/digest/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/digest/internal/adapters/discord"  //nolint:depguard // Wired in app layer
	"go.trai.ch/digest/internal/adapters/google"   //nolint:depguard // Wired in app layer
	"go.trai.ch/digest/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/digest/internal/engine/pipeline"
	"go.trai.ch/digest/internal/engine/syncer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			google.DirectoryNodeID,
			syncer.NodeID,
			pipeline.NodeID,
			cache.NodeID,
			auditlog.HistoryNodeID,
			discord.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}
	var deps Deps
	if deps.Projects, err = graft.Dep[ports.ProjectDirectory](ctx); err != nil {
		return nil, err
	}
	if deps.Syncer, err = graft.Dep[ports.Synchronizer](ctx); err != nil {
		return nil, err
	}
	orchestrator, err := graft.Dep[*pipeline.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}
	deps.Runner = orchestrator
	if deps.Cache, err = graft.Dep[ports.CacheStore](ctx); err != nil {
		return nil, err
	}
	if deps.History, err = graft.Dep[ports.ExecutionHistory](ctx); err != nil {
		return nil, err
	}
	notifier, err := graft.Dep[*discord.Notifier](ctx)
	if err != nil {
		return nil, err
	}
	if notifier != nil {
		deps.Notifier = notifier
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}

	return New(deps, Options{
		Weekday:     settings.ScheduledWeekday(),
		NotifyDelay: settings.Discord.NotifyDelay,
		Addr:        settings.Serve.Addr,
	}), nil
}
