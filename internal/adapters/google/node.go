package google

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/config"
	"go.trai.ch/digest/internal/adapters/logger"
	"go.trai.ch/digest/internal/core/ports"
)

const (
	// ServicesNodeID is the unique identifier for the Google clients Graft node.
	ServicesNodeID graft.ID = "adapter.google"
	// DirectoryNodeID is the unique identifier for the project directory Graft node.
	DirectoryNodeID graft.ID = "adapter.google.directory"
	// DocumentsNodeID is the unique identifier for the document service Graft node.
	DocumentsNodeID graft.ID = "adapter.google.documents"
	// FoldersNodeID is the unique identifier for the folder resolver Graft node.
	FoldersNodeID graft.ID = "adapter.google.folders"
	// UploaderNodeID is the unique identifier for the file uploader Graft node.
	UploaderNodeID graft.ID = "adapter.google.uploader"
	// LogSheetNodeID is the unique identifier for the remote execution log Graft node.
	LogSheetNodeID graft.ID = "adapter.google.logsheet"
)

func init() {
	graft.Register(graft.Node[*Services]{
		ID:        ServicesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Services, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			services, err := NewServices(ctx, settings.Google.CredentialsFile)
			if err != nil {
				return nil, err
			}
			if settings.Google.Timeout > 0 {
				services.CallTimeout = settings.Google.Timeout
			}
			return services, nil
		},
	})

	graft.Register(graft.Node[ports.ProjectDirectory]{
		ID:        DirectoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, ServicesNodeID},
		Run: func(ctx context.Context) (ports.ProjectDirectory, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			services, err := graft.Dep[*Services](ctx)
			if err != nil {
				return nil, err
			}

			if settings.Google.ProjectsSheetID == "" || services.Available() != nil {
				return config.NewProjectList(settings.Projects), nil
			}
			return NewSheetDirectory(services, log, settings.Google.ProjectsSheetID, settings.Google.ProjectsRange), nil
		},
	})

	graft.Register(graft.Node[ports.DocumentService]{
		ID:        DocumentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ServicesNodeID},
		Run: func(ctx context.Context) (ports.DocumentService, error) {
			services, err := graft.Dep[*Services](ctx)
			if err != nil {
				return nil, err
			}
			return NewDocumentService(services), nil
		},
	})

	graft.Register(graft.Node[ports.FolderResolver]{
		ID:        FoldersNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, ServicesNodeID},
		Run: func(ctx context.Context) (ports.FolderResolver, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			services, err := graft.Dep[*Services](ctx)
			if err != nil {
				return nil, err
			}
			return NewFolderResolver(services, log, FolderOptions{
				ParentFolderID:  settings.Google.ParentFolderID,
				DefaultFolderID: settings.Google.DefaultFolderID,
				CreateMissing:   settings.Google.CreateMissingDirs,
			}), nil
		},
	})

	graft.Register(graft.Node[ports.FileUploader]{
		ID:        UploaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ServicesNodeID},
		Run: func(ctx context.Context) (ports.FileUploader, error) {
			services, err := graft.Dep[*Services](ctx)
			if err != nil {
				return nil, err
			}
			return NewUploader(services), nil
		},
	})

	graft.Register(graft.Node[*LogSheet]{
		ID:        LogSheetNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, ServicesNodeID},
		Run: func(ctx context.Context) (*LogSheet, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			services, err := graft.Dep[*Services](ctx)
			if err != nil {
				return nil, err
			}
			if settings.Google.LogSheetID == "" {
				return nil, nil
			}
			return NewLogSheet(services, settings.Google.LogSheetID, settings.Google.LogRange), nil
		},
	})
}
