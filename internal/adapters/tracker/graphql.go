// Package tracker implements the issue tracker sources over the GraphQL and legacy REST APIs.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.trai.ch/digest/internal/adapters/httpjson"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// GraphQLSourceName identifies the GraphQL source in logs.
	GraphQLSourceName = "graphql"

	tokenLifetime       = time.Hour
	defaultIssuePage    = 500
	defaultProjectPage  = 200
	defaultParallelism  = 5
	projectIssueLimit   = 1000
	pendenciesFilterArg = `filter: { standard: "pendencies" }`
)

const issueFields = `
	id
	code
	title
	status
	priority
	createdAt
	updatedAt
	disciplines {
		discipline { id name }
		status
	}`

var (
	signInMutation = `
mutation SignIn($username: String!, $password: String!) {
	signIn(username: $username, password: $password) { accessToken refreshToken }
}`

	refreshMutation = `
mutation RefreshToken($refreshToken: String!) {
	refreshToken(refreshToken: $refreshToken) { accessToken refreshToken }
}`

	projectQuery = `
query GetProjectData($projectId: Int!, $first: Int, $after: String) {
	project(projectId: $projectId) {
		id
		name
		status
		issues(first: $first, after: $after, ` + pendenciesFilterArg + `) {
			issues {` + issueFields + `
			}
			pageInfo { hasNextPage endCursor }
		}
	}
}`

	allProjectsQuery = `
query GetAllProjectsData($first: Int, $after: String) {
	projects(first: $first, after: $after) {
		projects {
			id
			name
			status
			issues(first: ` + strconv.Itoa(projectIssueLimit) + `, ` + pendenciesFilterArg + `) {
				issues {` + issueFields + `
				}
			}
		}
		pageInfo { hasNextPage endCursor }
	}
}`

	disciplinesQuery = `
query GetDisciplines {
	disciplines(first: 100) {
		disciplines { id name }
	}
}`
)

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type gqlDiscipline struct {
	ID   flexString `json:"id"`
	Name string     `json:"name"`
}

type gqlIssue struct {
	ID          flexString `json:"id"`
	Code        flexString `json:"code"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Priority    flexString `json:"priority"`
	CreatedAt   wireTime   `json:"createdAt"`
	UpdatedAt   wireTime   `json:"updatedAt"`
	Disciplines []struct {
		Discipline gqlDiscipline `json:"discipline"`
		Status     string        `json:"status"`
	} `json:"disciplines"`
}

type gqlIssuePage struct {
	Issues   []gqlIssue `json:"issues"`
	PageInfo pageInfo   `json:"pageInfo"`
}

type gqlProject struct {
	ID     flexString   `json:"id"`
	Name   string       `json:"name"`
	Status string       `json:"status"`
	Issues gqlIssuePage `json:"issues"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// GraphQLOptions configures a GraphQL source.
type GraphQLOptions struct {
	URL         string
	Username    string
	Password    string
	APIKey      string
	HTTPClient  *http.Client
	Parallelism int
	PageSize    int
}

// GraphQL fetches tracker data with consolidated GraphQL queries.
// It implements the single-project, multi-project and full fetch capabilities.
type GraphQL struct {
	api         *httpjson.Client
	username    string
	password    string
	parallelism int
	pageSize    int
	logger      ports.Logger
	now         func() time.Time

	mu      sync.Mutex
	access  string
	refresh string
	expires time.Time
}

// NewGraphQL creates a GraphQL source.
func NewGraphQL(opts GraphQLOptions, logger ports.Logger) *GraphQL {
	if opts.Parallelism <= 0 {
		opts.Parallelism = defaultParallelism
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultIssuePage
	}
	headers := http.Header{}
	if opts.APIKey != "" {
		headers.Set("X-API-Key", opts.APIKey)
	}
	return &GraphQL{
		api:         httpjson.New(opts.URL, opts.HTTPClient, headers),
		username:    opts.Username,
		password:    opts.Password,
		parallelism: opts.Parallelism,
		pageSize:    opts.PageSize,
		logger:      logger,
		now:         time.Now,
	}
}

// Name implements ports.TrackerSource.
func (g *GraphQL) Name() string {
	return GraphQLSourceName
}

// FetchProject returns the pending issues of one project with their disciplines.
func (g *GraphQL) FetchProject(ctx context.Context, projectID string) (*domain.TrackerSnapshot, error) {
	numericID, err := strconv.Atoi(strings.TrimSpace(projectID))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "tracker project id is not numeric"), "project_id", projectID)
	}

	b := newSnapshotBuilder()
	after := ""
	for {
		vars := map[string]any{"projectId": numericID, "first": g.pageSize}
		if after != "" {
			vars["after"] = after
		}

		var data struct {
			Project *gqlProject `json:"project"`
		}
		if err := g.query(ctx, "GetProjectData", projectQuery, vars, &data); err != nil {
			return nil, zerr.With(err, "project_id", projectID)
		}
		if data.Project == nil {
			return b.snapshot(), nil
		}

		b.addProject(data.Project)
		next := data.Project.Issues.PageInfo
		if !next.HasNextPage || next.EndCursor == "" || next.EndCursor == after {
			break
		}
		after = next.EndCursor
	}
	return b.snapshot(), nil
}

// FetchProjects fetches each project concurrently and merges the results in input order.
// Any failing project fails the whole call so a partial result never replaces cached data.
func (g *GraphQL) FetchProjects(ctx context.Context, projectIDs []string) (*domain.TrackerSnapshot, error) {
	results := make([]*domain.TrackerSnapshot, len(projectIDs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.parallelism)
	for i, id := range projectIDs {
		eg.Go(func() error {
			snap, err := g.FetchProject(egCtx, id)
			if err != nil {
				return err
			}
			results[i] = snap
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := &domain.TrackerSnapshot{}
	for _, snap := range results {
		merged.Merge(snap)
	}
	g.addDisciplines(ctx, merged)
	return merged, nil
}

// FetchAll returns every project with its pending issues.
func (g *GraphQL) FetchAll(ctx context.Context) (*domain.TrackerSnapshot, error) {
	b := newSnapshotBuilder()
	after := ""
	for {
		vars := map[string]any{"first": defaultProjectPage}
		if after != "" {
			vars["after"] = after
		}

		var data struct {
			Projects struct {
				Projects []gqlProject `json:"projects"`
				PageInfo pageInfo     `json:"pageInfo"`
			} `json:"projects"`
		}
		if err := g.query(ctx, "GetAllProjectsData", allProjectsQuery, vars, &data); err != nil {
			return nil, err
		}

		for i := range data.Projects.Projects {
			b.addProject(&data.Projects.Projects[i])
		}
		next := data.Projects.PageInfo
		if !next.HasNextPage || next.EndCursor == "" || next.EndCursor == after {
			break
		}
		after = next.EndCursor
	}

	snap := b.snapshot()
	g.addDisciplines(ctx, snap)
	return snap, nil
}

// addDisciplines merges the global discipline list into snap.
// The list only enriches names, so a failure is logged and ignored.
func (g *GraphQL) addDisciplines(ctx context.Context, snap *domain.TrackerSnapshot) {
	var data struct {
		Disciplines struct {
			Disciplines []gqlDiscipline `json:"disciplines"`
		} `json:"disciplines"`
	}
	if err := g.query(ctx, "GetDisciplines", disciplinesQuery, nil, &data); err != nil {
		g.logger.Warn(fmt.Sprintf("tracker disciplines not fetched: %v", err))
		return
	}

	global := &domain.TrackerSnapshot{}
	for _, d := range data.Disciplines.Disciplines {
		global.Disciplines = append(global.Disciplines, domain.Discipline{ID: d.ID.String(), Name: d.Name})
	}
	snap.Merge(global)
}

// query runs an authenticated query and decodes its data into out.
// A query rejected for an expired token is retried once with a fresh sign-in.
func (g *GraphQL) query(ctx context.Context, op, q string, vars map[string]any, out any) error {
	token, err := g.token(ctx)
	if err != nil {
		return err
	}

	resp, err := g.post(ctx, token, q, vars)
	if err != nil {
		return zerr.With(err, "operation", op)
	}
	if authRejected(resp.Errors) {
		g.resetToken()
		if token, err = g.token(ctx); err != nil {
			return err
		}
		if resp, err = g.post(ctx, token, q, vars); err != nil {
			return zerr.With(err, "operation", op)
		}
	}

	if len(resp.Errors) > 0 {
		return errors.Join(domain.ErrRemoteRequestFailed,
			zerr.With(zerr.New("graphql: "+joinMessages(resp.Errors)), "operation", op))
	}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return errors.Join(domain.ErrRemoteRequestFailed,
			zerr.With(zerr.New("graphql response carried no data"), "operation", op))
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return zerr.With(zerr.Wrap(err, "decode graphql data"), "operation", op)
	}
	return nil
}

func (g *GraphQL) post(ctx context.Context, token, q string, vars map[string]any) (*gqlResponse, error) {
	var extra http.Header
	if token != "" {
		extra = http.Header{"Authorization": []string{"Bearer " + token}}
	}
	body := map[string]any{"query": q}
	if vars != nil {
		body["variables"] = vars
	}
	var resp gqlResponse
	if err := g.api.Do(ctx, http.MethodPost, "", body, &resp, extra); err != nil {
		return nil, err
	}
	return &resp, nil
}

// token returns a valid access token, refreshing or signing in as needed.
func (g *GraphQL) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.access != "" && g.now().Before(g.expires) {
		return g.access, nil
	}
	if g.username == "" || g.password == "" {
		return "", zerr.With(domain.ErrCredentialsMissing, "source", GraphQLSourceName)
	}

	if g.refresh != "" {
		var data struct {
			RefreshToken tokenPair `json:"refreshToken"`
		}
		err := g.authCall(ctx, refreshMutation, map[string]any{"refreshToken": g.refresh}, &data)
		if err == nil && data.RefreshToken.AccessToken != "" {
			g.store(data.RefreshToken)
			return g.access, nil
		}
		if err == nil {
			err = errors.New("no token returned")
		}
		g.logger.Warn(fmt.Sprintf("tracker token refresh failed, signing in again: %v", err))
	}

	var data struct {
		SignIn tokenPair `json:"signIn"`
	}
	vars := map[string]any{"username": g.username, "password": g.password}
	if err := g.authCall(ctx, signInMutation, vars, &data); err != nil {
		return "", zerr.Wrap(err, "tracker sign-in")
	}
	if data.SignIn.AccessToken == "" {
		return "", errors.Join(domain.ErrRemoteRequestFailed, zerr.New("tracker sign-in returned no token"))
	}
	g.store(data.SignIn)
	return g.access, nil
}

func (g *GraphQL) authCall(ctx context.Context, q string, vars map[string]any, out any) error {
	resp, err := g.post(ctx, "", q, vars)
	if err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return errors.Join(domain.ErrRemoteRequestFailed, zerr.New("graphql: "+joinMessages(resp.Errors)))
	}
	if len(resp.Data) == 0 {
		return nil
	}
	return json.Unmarshal(resp.Data, out)
}

func (g *GraphQL) store(pair tokenPair) {
	g.access = pair.AccessToken
	g.refresh = pair.RefreshToken
	g.expires = g.now().Add(tokenLifetime)
}

func (g *GraphQL) resetToken() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.access, g.refresh, g.expires = "", "", time.Time{}
}

func authRejected(errs []gqlError) bool {
	for _, e := range errs {
		msg := strings.ToLower(e.Message)
		if strings.Contains(msg, "token") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "expired") {
			return true
		}
	}
	return false
}

func joinMessages(errs []gqlError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// snapshotBuilder flattens GraphQL projects into the cache record shapes.
type snapshotBuilder struct {
	snap        *domain.TrackerSnapshot
	projects    map[string]bool
	disciplines map[string]bool
}

func newSnapshotBuilder() *snapshotBuilder {
	return &snapshotBuilder{
		snap:        &domain.TrackerSnapshot{},
		projects:    make(map[string]bool),
		disciplines: make(map[string]bool),
	}
}

func (b *snapshotBuilder) addProject(p *gqlProject) {
	projectID := p.ID.String()
	if !b.projects[projectID] {
		b.projects[projectID] = true
		b.snap.Projects = append(b.snap.Projects, domain.TrackerProject{
			ID:     projectID,
			Name:   p.Name,
			Status: p.Status,
		})
	}

	for _, issue := range p.Issues.Issues {
		issueID := issue.ID.String()
		b.snap.Issues = append(b.snap.Issues, domain.Issue{
			ID:        issueID,
			Code:      issue.Code.String(),
			Title:     issue.Title,
			Status:    issue.Status,
			Priority:  issue.Priority.String(),
			ProjectID: projectID,
			CreatedAt: issue.CreatedAt.Time(),
			UpdatedAt: issue.UpdatedAt.Time(),
		})

		for _, d := range issue.Disciplines {
			disciplineID := d.Discipline.ID.String()
			if disciplineID != "" && !b.disciplines[disciplineID] {
				b.disciplines[disciplineID] = true
				b.snap.Disciplines = append(b.snap.Disciplines, domain.Discipline{
					ID:   disciplineID,
					Name: d.Discipline.Name,
				})
			}
			b.snap.IssueDisciplines = append(b.snap.IssueDisciplines, domain.IssueDiscipline{
				IssueID:        issueID,
				ProjectID:      projectID,
				DisciplineID:   disciplineID,
				DisciplineName: d.Discipline.Name,
				Status:         d.Status,
			})
		}
	}
}

func (b *snapshotBuilder) snapshot() *domain.TrackerSnapshot {
	return b.snap
}
