package brief

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"briefd/internal/cache"
	"briefd/internal/domain"
	"briefd/internal/domain/models"
	"briefd/internal/domain/services"
	"briefd/internal/service/extract"
	"briefd/internal/storage"
)

type documentFixture struct {
	service services.DocumentService
	docRepo *fakeDocumentRepo
	ai      *fakeAIClient
	briefID string
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fileStore, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	briefRepo := newFakeBriefRepo()
	docRepo := newFakeDocumentRepo()
	ai := &fakeAIClient{}
	store := cache.NoopStore{}

	brief := &models.Brief{Title: "Summit", Status: models.StatusDraft, Version: 1}
	if err := briefRepo.Create(context.Background(), brief); err != nil {
		t.Fatal(err)
	}

	service := NewDocumentService(
		docRepo, briefRepo, fileStore,
		extract.NewService(logger), ai,
		cache.NewInvalidator(store), logger,
	)
	return &documentFixture{
		service: service,
		docRepo: docRepo,
		ai:      ai,
		briefID: brief.ID,
	}
}

// An upload with no registered extractor still succeeds, with null
// extracted content.
func TestUploadUnsupportedType(t *testing.T) {
	fx := newDocumentFixture(t)

	doc, err := fx.service.Upload(context.Background(), &services.UploadDocumentRequest{
		BriefID:  fx.briefID,
		Filename: "notes.txt",
		Data:     []byte("plain text"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.ExtractedContent != nil {
		t.Errorf("ExtractedContent = %v, want nil", doc.ExtractedContent)
	}
	if doc.FileType != "txt" {
		t.Errorf("FileType = %q", doc.FileType)
	}
	if _, err := os.Stat(doc.FilePath); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}

func TestUploadCSVExtractsText(t *testing.T) {
	fx := newDocumentFixture(t)

	doc, err := fx.service.Upload(context.Background(), &services.UploadDocumentRequest{
		BriefID:  fx.briefID,
		Filename: "attendees.csv",
		Data:     []byte("name,role\nJane,Sponsor\n"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	want := "name,role\nJane,Sponsor"
	if got := doc.ExtractedContent[models.TextField]; got != want {
		t.Errorf("extracted text = %q, want %q", got, want)
	}
}

// A malformed file of a supported type degrades to null extracted
// content; the upload itself still succeeds.
func TestUploadMalformedFileSucceeds(t *testing.T) {
	fx := newDocumentFixture(t)

	doc, err := fx.service.Upload(context.Background(), &services.UploadDocumentRequest{
		BriefID:  fx.briefID,
		Filename: "deck.pdf",
		Data:     []byte("not really a pdf"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.ExtractedContent != nil {
		t.Errorf("ExtractedContent = %v, want nil", doc.ExtractedContent)
	}
}

func TestUploadUnknownBrief(t *testing.T) {
	fx := newDocumentFixture(t)

	_, err := fx.service.Upload(context.Background(), &services.UploadDocumentRequest{
		BriefID:  "missing",
		Filename: "a.csv",
		Data:     []byte("x"),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	fx := newDocumentFixture(t)

	_, err := fx.service.Upload(context.Background(), &services.UploadDocumentRequest{
		BriefID:  fx.briefID,
		Filename: "a.csv",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestDeleteDocumentRemovesFile(t *testing.T) {
	fx := newDocumentFixture(t)
	ctx := context.Background()

	doc, err := fx.service.Upload(ctx, &services.UploadDocumentRequest{
		BriefID:  fx.briefID,
		Filename: "attendees.csv",
		Data:     []byte("name\nJane\n"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := fx.service.DeleteDocument(ctx, doc.ID); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if _, err := fx.docRepo.GetByID(ctx, doc.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("row still present after delete")
	}
	if _, err := os.Stat(doc.FilePath); !os.IsNotExist(err) {
		t.Errorf("stored file still present after delete")
	}
}

func TestAnalyzeUsesExtractedText(t *testing.T) {
	fx := newDocumentFixture(t)
	ctx := context.Background()

	doc, err := fx.service.Upload(ctx, &services.UploadDocumentRequest{
		BriefID:  fx.briefID,
		Filename: "agenda.csv",
		Data:     []byte("topic\nopening keynote\n"),
	})
	if err != nil {
		t.Fatal(err)
	}

	fx.ai.fields = fieldMapFromJSON(t, `{"Summary": "Keynote-led agenda"}`)

	fields, err := fx.service.Analyze(ctx, doc.ID, "Event Overview")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if fields["Summary"] != "Keynote-led agenda" {
		t.Errorf("fields = %v", fields)
	}
	if fx.ai.lastText == "" {
		t.Error("provider was not given extracted text")
	}
}

func TestAnalyzeNoExtractableText(t *testing.T) {
	fx := newDocumentFixture(t)
	ctx := context.Background()

	doc, err := fx.service.Upload(ctx, &services.UploadDocumentRequest{
		BriefID:  fx.briefID,
		Filename: "notes.txt",
		Data:     []byte("unextractable"),
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = fx.service.Analyze(ctx, doc.ID, "Event Overview")
	if !errors.Is(err, domain.ErrNoExtractableText) {
		t.Fatalf("err = %v, want ErrNoExtractableText", err)
	}
}
