package google

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/core/domain"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/googleapi"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.NoError(t, classify(nil, "op"))

	for _, code := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		err := classify(&googleapi.Error{Code: code}, "op")
		assert.ErrorIs(t, err, domain.ErrTransientRemote, "code %d", code)
	}

	err := classify(&googleapi.Error{Code: http.StatusForbidden}, "op")
	assert.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
	assert.NotErrorIs(t, err, domain.ErrTransientRemote)

	err = classify(errors.New("dial tcp: refused"), "op")
	assert.NotErrorIs(t, err, domain.ErrTransientRemote)
	assert.ErrorContains(t, err, "op: dial tcp: refused")
}

func TestLinkRequests(t *testing.T) {
	t.Parallel()

	reqs := linkRequests([]domain.StyleRange{{Start: 3, End: 8, URL: "https://x/1"}})
	require.Len(t, reqs, 2)

	assert.True(t, reqs[0].UpdateTextStyle.TextStyle.Bold)
	assert.Equal(t, "bold", reqs[0].UpdateTextStyle.Fields)
	assert.Equal(t, "https://x/1", reqs[1].UpdateTextStyle.TextStyle.Link.Url)
	assert.Equal(t, "link", reqs[1].UpdateTextStyle.Fields)
	assert.Equal(t, int64(3), reqs[1].UpdateTextStyle.Range.StartIndex)
	assert.Equal(t, int64(8), reqs[1].UpdateTextStyle.Range.EndIndex)
}

func TestCollectRuns(t *testing.T) {
	t.Parallel()

	content := []*docs.StructuralElement{
		{Paragraph: &docs.Paragraph{Elements: []*docs.ParagraphElement{
			{StartIndex: 1, TextRun: &docs.TextRun{Content: "Intro "}},
			{StartIndex: 7, TextRun: &docs.TextRun{Content: "#12\n"}},
			{StartIndex: 11},
		}}},
		{Table: &docs.Table{TableRows: []*docs.TableRow{{TableCells: []*docs.TableCell{{
			Content: []*docs.StructuralElement{{Paragraph: &docs.Paragraph{Elements: []*docs.ParagraphElement{
				{StartIndex: 15, TextRun: &docs.TextRun{Content: "#13\n"}},
			}}}},
		}}}}}},
	}

	assert.Equal(t, []domain.TextRun{
		{StartIndex: 1, Content: "Intro "},
		{StartIndex: 7, Content: "#12\n"},
		{StartIndex: 15, Content: "#13\n"},
	}, collectRuns(nil, content))
}

func TestEscapeQuery(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `Joe\'s \\ tower`, escapeQuery(`Joe's \ tower`))
}

func TestLogRow(t *testing.T) {
	t.Parallel()

	row := logRow(domain.ExecutionLogEntry{
		Timestamp:   time.Date(2026, 3, 6, 9, 30, 0, 0, time.UTC),
		ProjectID:   "P1",
		ProjectName: "Tower",
		Status:      domain.StatusPartialSuccess,
		Message:     "uploaded",
	})
	assert.Equal(t, []any{"2026-03-06 09:30:00", "P1", "Tower", "PartialSuccess", "uploaded", ""}, row)
}

func TestCellsToStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "12", "true"}, cellsToStrings([]any{" a ", 12, true}))
}
