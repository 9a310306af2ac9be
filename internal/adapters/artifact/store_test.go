package artifact_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/adapters/artifact"
	"go.trai.ch/digest/internal/core/domain"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Tower A":                "tower-a",
		"  Edifício Jardim / 2 ": "edifício-jardim-2",
		"--Annex--":              "annex",
		"":                       "",
		"***":                    "",
	}
	for in, want := range tests {
		assert.Equal(t, want, artifact.Slug(in), in)
	}
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := artifact.NewStore(root)
	project := domain.ProjectRecord{ProjectID: "101", DisplayName: "Directory name"}
	data := &domain.ProjectData{ProjectName: "Tower A", GeneratedAt: time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)}

	path, err := store.Save(project, data, "# first")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "tower-a", "tower-a_2025-03-07.md"), path)

	again, err := store.Save(project, data, "# second")
	require.NoError(t, err)
	assert.Equal(t, path, again)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# second", string(content))
}

func TestStore_SaveFallsBackToDirectoryName(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path, err := artifact.NewStore(root).Save(domain.ProjectRecord{ProjectID: "7", DisplayName: "Annex"}, nil, "x")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "annex"), filepath.Dir(path))
}

func TestStore_SaveWithoutName(t *testing.T) {
	t.Parallel()

	_, err := artifact.NewStore(t.TempDir()).Save(domain.ProjectRecord{ProjectID: "!!"}, &domain.ProjectData{}, "x")
	require.ErrorIs(t, err, domain.ErrArtifactSaveFailed)
}
