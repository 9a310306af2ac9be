// Package google implements document publishing, folder resolution, the project
// directory and the remote execution log on Google Docs, Drive and Sheets.
package google

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
	googleauth "golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// DefaultCallTimeout bounds a single Docs, Drive or Sheets call.
const DefaultCallTimeout = 30 * time.Second

// Services bundles the API clients. A Services built without credentials
// reports domain.ErrCredentialsMissing from every call instead of failing at startup.
type Services struct {
	Docs   *docs.Service
	Drive  *drive.Service
	Sheets *sheets.Service

	// CallTimeout bounds every API call. Zero disables the bound.
	CallTimeout time.Duration

	err error
}

// NewServices builds API clients from a service account credentials file.
// Extra options are appended after the credentials.
func NewServices(ctx context.Context, credentialsFile string, extra ...option.ClientOption) (*Services, error) {
	if credentialsFile == "" {
		return &Services{err: domain.ErrCredentialsMissing}, nil
	}

	//nolint:gosec // Path is provided by the operator
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "read google credentials"), "path", credentialsFile)
	}

	creds, err := googleauth.CredentialsFromJSON(ctx, data,
		docs.DocumentsScope, drive.DriveScope, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, zerr.Wrap(err, "parse google credentials")
	}

	return NewServicesWithOptions(ctx, append([]option.ClientOption{option.WithCredentials(creds)}, extra...)...)
}

// NewServicesWithOptions builds API clients from explicit client options.
func NewServicesWithOptions(ctx context.Context, opts ...option.ClientOption) (*Services, error) {
	d, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, zerr.Wrap(err, "create docs client")
	}
	dr, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, zerr.Wrap(err, "create drive client")
	}
	sh, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, zerr.Wrap(err, "create sheets client")
	}
	return &Services{Docs: d, Drive: dr, Sheets: sh, CallTimeout: DefaultCallTimeout}, nil
}

// Available reports whether the clients can be used.
func (s *Services) Available() error {
	return s.err
}

// bounded derives the context for one API call.
func (s *Services) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.CallTimeout)
}

// classify marks rate limits and server errors as transient.
func classify(err error, op string) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		wrapped := zerr.With(zerr.Wrap(err, op), "status", gerr.Code)
		if gerr.Code == http.StatusTooManyRequests || gerr.Code >= http.StatusInternalServerError {
			return errors.Join(domain.ErrTransientRemote, wrapped)
		}
		return errors.Join(domain.ErrRemoteRequestFailed, wrapped)
	}
	return zerr.Wrap(err, op)
}
