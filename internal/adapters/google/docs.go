package google

import (
	"context"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
)

// DocumentService implements ports.DocumentService on Google Docs and Drive.
type DocumentService struct {
	services *Services
}

var _ ports.DocumentService = (*DocumentService)(nil)

// NewDocumentService creates a DocumentService.
func NewDocumentService(services *Services) *DocumentService {
	return &DocumentService{services: services}
}

// CreateDocument creates an empty document.
func (d *DocumentService) CreateDocument(ctx context.Context, title string) (string, error) {
	if err := d.services.Available(); err != nil {
		return "", err
	}
	ctx, cancel := d.services.bounded(ctx)
	defer cancel()

	doc, err := d.services.Docs.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return "", classify(err, "create document")
	}
	return doc.DocumentId, nil
}

// MoveToFolder adds the document to folderID.
func (d *DocumentService) MoveToFolder(ctx context.Context, documentID, folderID string) error {
	if err := d.services.Available(); err != nil {
		return err
	}
	ctx, cancel := d.services.bounded(ctx)
	defer cancel()

	_, err := d.services.Drive.Files.Update(documentID, &drive.File{}).
		AddParents(folderID).
		SupportsAllDrives(true).
		Fields("id, parents").
		Context(ctx).
		Do()
	return classify(err, "move document")
}

// InsertText inserts text at the start of the body.
func (d *DocumentService) InsertText(ctx context.Context, documentID, text string) error {
	return d.batchUpdate(ctx, documentID, "insert text", []*docs.Request{{
		InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: 1},
			Text:     text,
		},
	}})
}

// TextRuns returns every text run of the document body, tables included.
func (d *DocumentService) TextRuns(ctx context.Context, documentID string) ([]domain.TextRun, error) {
	if err := d.services.Available(); err != nil {
		return nil, err
	}
	ctx, cancel := d.services.bounded(ctx)
	defer cancel()

	doc, err := d.services.Docs.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return nil, classify(err, "get document")
	}
	if doc.Body == nil {
		return nil, nil
	}
	return collectRuns(nil, doc.Body.Content), nil
}

// ApplyLinkStyles emits one bold and one link update per range in a single call.
func (d *DocumentService) ApplyLinkStyles(ctx context.Context, documentID string, ranges []domain.StyleRange) error {
	return d.batchUpdate(ctx, documentID, "apply link styles", linkRequests(ranges))
}

// DocumentURL returns the editor URL of a document.
func (d *DocumentService) DocumentURL(documentID string) string {
	return "https://docs.google.com/document/d/" + documentID + "/edit"
}

func (d *DocumentService) batchUpdate(ctx context.Context, documentID, op string, requests []*docs.Request) error {
	if err := d.services.Available(); err != nil {
		return err
	}
	ctx, cancel := d.services.bounded(ctx)
	defer cancel()

	_, err := d.services.Docs.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
		Requests: requests,
	}).Context(ctx).Do()
	return classify(err, op)
}

func linkRequests(ranges []domain.StyleRange) []*docs.Request {
	requests := make([]*docs.Request, 0, 2*len(ranges))
	for _, r := range ranges {
		rng := &docs.Range{StartIndex: r.Start, EndIndex: r.End}
		requests = append(requests,
			&docs.Request{UpdateTextStyle: &docs.UpdateTextStyleRequest{
				Range:     rng,
				TextStyle: &docs.TextStyle{Bold: true},
				Fields:    "bold",
			}},
			&docs.Request{UpdateTextStyle: &docs.UpdateTextStyleRequest{
				Range:     rng,
				TextStyle: &docs.TextStyle{Link: &docs.Link{Url: r.URL}},
				Fields:    "link",
			}},
		)
	}
	return requests
}

func collectRuns(runs []domain.TextRun, content []*docs.StructuralElement) []domain.TextRun {
	for _, el := range content {
		switch {
		case el.Paragraph != nil:
			for _, pe := range el.Paragraph.Elements {
				if pe.TextRun == nil {
					continue
				}
				runs = append(runs, domain.TextRun{StartIndex: pe.StartIndex, Content: pe.TextRun.Content})
			}
		case el.Table != nil:
			for _, row := range el.Table.TableRows {
				for _, cell := range row.TableCells {
					runs = collectRuns(runs, cell.Content)
				}
			}
		}
	}
	return runs
}
