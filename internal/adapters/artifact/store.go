// Package artifact keeps generated reports on the local filesystem.
package artifact

import (
	"cmp"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
)

const reportExt = ".md"

var errNoName = zerr.New("project has no usable name")

// Store implements ports.ArtifactStore under a root directory.
// Reports land in <root>/<project>/<project>_<date>.md.
type Store struct {
	root string
}

// NewStore creates a store rooted at root.
func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

// Save writes content and returns the file path. A report saved twice on the
// same day replaces the earlier one.
func (s *Store) Save(project domain.ProjectRecord, data *domain.ProjectData, content string) (string, error) {
	name := project.DisplayName
	date := time.Now()
	if data != nil {
		name = cmp.Or(data.ProjectName, name)
		if !data.GeneratedAt.IsZero() {
			date = data.GeneratedAt
		}
	}
	slug := Slug(cmp.Or(name, project.ProjectID))
	if slug == "" {
		return "", zerr.With(errors.Join(domain.ErrArtifactSaveFailed, errNoName), "project_id", project.ProjectID)
	}

	path := filepath.Join(s.root, slug, slug+"_"+date.Format(time.DateOnly)+reportExt)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return "", zerr.With(errors.Join(domain.ErrArtifactSaveFailed, err), "path", path)
	}
	//nolint:gosec // Path is built from a sanitized slug under the configured root
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return "", zerr.With(errors.Join(domain.ErrArtifactSaveFailed, err), "path", path)
	}
	return path, nil
}

// Slug lowercases name and collapses every run of non alphanumeric runes into a dash.
func Slug(name string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
