package tracker

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"go.trai.ch/digest/internal/adapters/httpjson"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// RESTSourceName identifies the legacy REST source in logs.
	RESTSourceName = "rest"

	templateVersion  = "9.0.0"
	connectorVersion = "3.0.0"
	restPageSize     = 1000
	maxRESTPages     = 10000
)

// Data lake endpoints, one per tracker domain.
const (
	endpointProjects         = "projects"
	endpointDisciplines      = "disciplines"
	endpointIssues           = "issues"
	endpointIssueDisciplines = "issues-disciplines"
)

type restProject struct {
	ID     flexString `json:"id"`
	Name   string     `json:"name"`
	Status string     `json:"status"`
}

type restDiscipline struct {
	ID   flexString `json:"id"`
	Name string     `json:"name"`
}

type restIssue struct {
	ID        flexString `json:"id"`
	Code      flexString `json:"code"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	Priority  flexString `json:"priority"`
	ProjectID flexString `json:"projectId"`
	CreatedAt wireTime   `json:"createdAt"`
	UpdatedAt wireTime   `json:"updatedAt"`
}

type restIssueDiscipline struct {
	IssueID      flexString `json:"issueId"`
	DisciplineID flexString `json:"disciplineId"`
	Status       string     `json:"status"`
}

type restPage[T any] struct {
	Data []T `json:"data"`
	Meta struct {
		HasMore     bool        `json:"has_more"`
		AfterCursor *flexString `json:"after_cursor"`
	} `json:"meta"`
}

// RESTOptions configures the legacy REST source.
type RESTOptions struct {
	URL        string
	APIKey     string
	APISecret  string
	HTTPClient *http.Client
}

// REST reads each tracker domain from the paginated data lake endpoints.
// It implements only the legacy per-domain capability.
type REST struct {
	api        *httpjson.Client
	configured bool
}

// NewREST creates a legacy REST source authenticated with an API key pair.
func NewREST(opts RESTOptions) *REST {
	headers := http.Header{}
	if opts.APIKey != "" {
		creds := base64.StdEncoding.EncodeToString([]byte(opts.APIKey + ":" + opts.APISecret))
		headers.Set("Authorization", "Basic "+creds)
	}
	return &REST{
		api:        httpjson.New(opts.URL, opts.HTTPClient, headers),
		configured: opts.APIKey != "",
	}
}

// Name implements ports.TrackerSource.
func (r *REST) Name() string {
	return RESTSourceName
}

// ListProjects implements ports.LegacyFetcher.
func (r *REST) ListProjects(ctx context.Context) ([]domain.TrackerProject, error) {
	rows, err := fetchPages[restProject](ctx, r, endpointProjects)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TrackerProject, 0, len(rows))
	for _, p := range rows {
		out = append(out, domain.TrackerProject{ID: p.ID.String(), Name: p.Name, Status: p.Status})
	}
	return out, nil
}

// ListDisciplines implements ports.LegacyFetcher.
func (r *REST) ListDisciplines(ctx context.Context) ([]domain.Discipline, error) {
	rows, err := fetchPages[restDiscipline](ctx, r, endpointDisciplines)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Discipline, 0, len(rows))
	for _, d := range rows {
		out = append(out, domain.Discipline{ID: d.ID.String(), Name: d.Name})
	}
	return out, nil
}

// ListIssues implements ports.LegacyFetcher.
func (r *REST) ListIssues(ctx context.Context) ([]domain.Issue, error) {
	rows, err := fetchPages[restIssue](ctx, r, endpointIssues)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Issue, 0, len(rows))
	for _, i := range rows {
		out = append(out, domain.Issue{
			ID:        i.ID.String(),
			Code:      i.Code.String(),
			Title:     i.Title,
			Status:    i.Status,
			Priority:  i.Priority.String(),
			ProjectID: i.ProjectID.String(),
			CreatedAt: i.CreatedAt.Time(),
			UpdatedAt: i.UpdatedAt.Time(),
		})
	}
	return out, nil
}

// ListIssueDisciplines implements ports.LegacyFetcher.
// Rows carry no project id or discipline name; readers join them through issues and disciplines.
func (r *REST) ListIssueDisciplines(ctx context.Context) ([]domain.IssueDiscipline, error) {
	rows, err := fetchPages[restIssueDiscipline](ctx, r, endpointIssueDisciplines)
	if err != nil {
		return nil, err
	}
	out := make([]domain.IssueDiscipline, 0, len(rows))
	for _, l := range rows {
		out = append(out, domain.IssueDiscipline{
			IssueID:      l.IssueID.String(),
			DisciplineID: l.DisciplineID.String(),
			Status:       l.Status,
		})
	}
	return out, nil
}

// fetchPages follows the data lake cursor until the endpoint reports no more rows.
func fetchPages[T any](ctx context.Context, r *REST, endpoint string) ([]T, error) {
	if !r.configured {
		return nil, zerr.With(domain.ErrCredentialsMissing, "source", RESTSourceName)
	}

	var (
		all   []T
		after = "0"
	)
	for range maxRESTPages {
		q := url.Values{}
		q.Set("templateVersion", templateVersion)
		q.Set("connectorVersion", connectorVersion)
		q.Set("page[size]", strconv.Itoa(restPageSize))
		q.Set("page[after]", after)
		q.Set("page[include_header]", "false")

		var page restPage[T]
		if err := r.api.Do(ctx, http.MethodGet, "/data-lake/"+endpoint+"?"+q.Encode(), nil, &page, nil); err != nil {
			return nil, zerr.With(err, "endpoint", endpoint)
		}
		all = append(all, page.Data...)

		if !page.Meta.HasMore {
			return all, nil
		}
		if page.Meta.AfterCursor == nil || page.Meta.AfterCursor.String() == "" || page.Meta.AfterCursor.String() == after {
			return nil, errors.Join(domain.ErrRemoteRequestFailed,
				zerr.With(zerr.New("pagination cursor missing"), "endpoint", endpoint))
		}
		after = page.Meta.AfterCursor.String()
	}
	return nil, errors.Join(domain.ErrRemoteRequestFailed,
		zerr.With(zerr.New("pagination did not terminate"), "endpoint", endpoint))
}
