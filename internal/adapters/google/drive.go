package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/api/drive/v3"
)

const folderMimeType = "application/vnd.google-apps.folder"

// FolderOptions configures folder resolution.
type FolderOptions struct {
	ParentFolderID  string
	DefaultFolderID string
	CreateMissing   bool
}

// FolderResolver finds the Drive folder of a project.
type FolderResolver struct {
	services *Services
	logger   ports.Logger
	opts     FolderOptions
}

var _ ports.FolderResolver = (*FolderResolver)(nil)

// NewFolderResolver creates a FolderResolver.
func NewFolderResolver(services *Services, logger ports.Logger, opts FolderOptions) *FolderResolver {
	return &FolderResolver{services: services, logger: logger, opts: opts}
}

// ResolveFolder returns the configured folder id, then a folder found by project
// name, then a newly created folder, then the default folder.
func (f *FolderResolver) ResolveFolder(ctx context.Context, project domain.ProjectRecord) (string, error) {
	if project.FolderID != "" {
		return project.FolderID, nil
	}

	var errs []error
	if err := f.services.Available(); err != nil {
		errs = append(errs, err)
	} else {
		name := project.DisplayName
		id, err := f.find(ctx, name)
		if err == nil && id != "" {
			return id, nil
		}
		if err != nil {
			errs = append(errs, err)
			f.logger.Warn(fmt.Sprintf("folder search for %q failed: %v", name, err))
		}

		if f.opts.CreateMissing {
			id, err := f.create(ctx, name)
			if err == nil {
				f.logger.Info(fmt.Sprintf("created folder %q (%s)", name, id))
				return id, nil
			}
			errs = append(errs, err)
			f.logger.Warn(fmt.Sprintf("folder creation for %q failed: %v", name, err))
		}
	}

	if f.opts.DefaultFolderID != "" {
		return f.opts.DefaultFolderID, nil
	}
	err := zerr.With(zerr.Wrap(domain.ErrFolderResolutionFailed, "resolve folder"), "project_id", project.ProjectID)
	return "", errors.Join(append([]error{err}, errs...)...)
}

func (f *FolderResolver) find(ctx context.Context, name string) (string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escapeQuery(name), folderMimeType)
	if f.opts.ParentFolderID != "" {
		q += fmt.Sprintf(" and '%s' in parents", escapeQuery(f.opts.ParentFolderID))
	}

	ctx, cancel := f.services.bounded(ctx)
	defer cancel()

	list, err := f.services.Drive.Files.List().
		Q(q).
		Spaces("drive").
		Fields("files(id, name)").
		PageSize(10).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", classify(err, "search folder")
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].Id, nil
}

func (f *FolderResolver) create(ctx context.Context, name string) (string, error) {
	parent := f.opts.ParentFolderID
	if parent == "" {
		parent = "root"
	}
	ctx, cancel := f.services.bounded(ctx)
	defer cancel()

	folder, err := f.services.Drive.Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parent},
	}).SupportsAllDrives(true).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", classify(err, "create folder")
	}
	return folder.Id, nil
}

func escapeQuery(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

// Uploader uploads local report files to Drive unchanged.
type Uploader struct {
	services *Services
}

var _ ports.FileUploader = (*Uploader)(nil)

// NewUploader creates an Uploader.
func NewUploader(services *Services) *Uploader {
	return &Uploader{services: services}
}

// Upload stores the file at localPath as name inside folderID.
func (u *Uploader) Upload(ctx context.Context, localPath, name, folderID string) (*domain.PublishedDocument, error) {
	if err := u.services.Available(); err != nil {
		return nil, err
	}

	//nolint:gosec // Path is produced by the artifact store
	file, err := os.Open(localPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "open report artifact"), "path", localPath)
	}
	defer func() { _ = file.Close() }()

	meta := &drive.File{Name: name}
	if folderID != "" {
		meta.Parents = []string{folderID}
	}

	ctx, cancel := u.services.bounded(ctx)
	defer cancel()

	created, err := u.services.Drive.Files.Create(meta).
		Media(file).
		SupportsAllDrives(true).
		Fields("id, webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify(err, "upload file")
	}
	return &domain.PublishedDocument{ID: created.Id, URL: created.WebViewLink}, nil
}
