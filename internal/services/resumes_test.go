package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/BerylCAtieno/resume-autofill-api/internal/extractor"
	"github.com/BerylCAtieno/resume-autofill-api/internal/fieldparser"
	"github.com/BerylCAtieno/resume-autofill-api/internal/models"
	"github.com/BerylCAtieno/resume-autofill-api/internal/utils"
	"github.com/google/go-cmp/cmp"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error %v (%T) is not an *utils.AppError", err, err)
	}
	return appErr.StatusCode
}

func TestPrefillReturnsCandidateFields(t *testing.T) {
	ext := &fakeExtractor{text: "Contact: jane.doe@example.com or (415) 555-2671 for details"}
	svc := NewResumeService(ext, testConfig(), utils.NewNopLogger())

	resp, err := svc.Prefill(context.Background(), &models.PrefillRequest{
		File:        []byte("%PDF-1.4"),
		Filename:    "resume.pdf",
		ContentType: "application/octet-stream",
	})
	if err != nil {
		t.Fatalf("Prefill returned error: %v", err)
	}

	want := &models.PrefillResponse{
		Filename:  "resume.pdf",
		MediaType: string(extractor.MediaTypePDF),
		Fields: fieldparser.CandidateFields{
			Email: "jane.doe@example.com",
			Phone: "(415) 555-2671",
		},
		Matches: fieldparser.CandidateMatches{
			Emails: []string{"jane.doe@example.com"},
			Phones: []string{"(415) 555-2671"},
		},
		TextLength: len(ext.text),
	}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("Prefill mismatch (-want +got):\n%s", diff)
	}
	if ext.last.MediaType != extractor.MediaTypePDF {
		t.Errorf("extractor saw media type %q, want PDF", ext.last.MediaType)
	}
}

func TestPrefillNoFieldsIsNotAnError(t *testing.T) {
	ext := &fakeExtractor{text: "No contact info here."}
	svc := NewResumeService(ext, testConfig(), utils.NewNopLogger())

	resp, err := svc.Prefill(context.Background(), &models.PrefillRequest{File: []byte("x"), Filename: "cv.docx"})
	if err != nil {
		t.Fatalf("Prefill returned error: %v", err)
	}
	if !resp.Fields.Empty() {
		t.Errorf("Fields = %+v, want all empty", resp.Fields)
	}
}

func TestPrefillRejectsUnsupportedTypeBeforeExtracting(t *testing.T) {
	ext := &fakeExtractor{}
	svc := NewResumeService(ext, testConfig(), utils.NewNopLogger())

	_, err := svc.Prefill(context.Background(), &models.PrefillRequest{
		File:        []byte("plain text resume"),
		Filename:    "resume.txt",
		ContentType: "text/plain",
	})
	if got := statusOf(t, err); got != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d, want 415", got)
	}
	if !errors.Is(err, extractor.ErrUnsupportedMediaType) {
		t.Errorf("error %v does not wrap ErrUnsupportedMediaType", err)
	}
	if ext.calls != 0 {
		t.Errorf("extractor called %d times, want 0", ext.calls)
	}
}

func TestPrefillRejectsEmptyFile(t *testing.T) {
	svc := NewResumeService(&fakeExtractor{}, testConfig(), utils.NewNopLogger())

	_, err := svc.Prefill(context.Background(), &models.PrefillRequest{Filename: "resume.pdf"})
	if got := statusOf(t, err); got != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", got)
	}
}

func TestPrefillMapsExtractionErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "decode failure",
			err:    &extractor.DocumentDecodeError{MediaType: extractor.MediaTypePDF, Err: errors.New("malformed PDF")},
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "unsupported from extractor",
			err:    &extractor.UnsupportedMediaTypeError{MediaType: extractor.MediaTypePDF},
			status: http.StatusUnsupportedMediaType,
		},
		{
			name:   "deadline",
			err:    context.DeadlineExceeded,
			status: http.StatusRequestTimeout,
		},
		{
			name:   "unexpected",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewResumeService(&fakeExtractor{err: tt.err}, testConfig(), utils.NewNopLogger())

			resp, err := svc.Prefill(context.Background(), &models.PrefillRequest{File: []byte("x"), Filename: "r.pdf"})
			if resp != nil {
				t.Errorf("Prefill returned a response alongside an error: %+v", resp)
			}
			if got := statusOf(t, err); got != tt.status {
				t.Errorf("status = %d, want %d", got, tt.status)
			}
		})
	}
}

func TestPrefillAppliesExtractTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.ExtractTimeout = 10 * time.Millisecond
	svc := NewResumeService(&fakeExtractor{block: true}, cfg, utils.NewNopLogger())

	_, err := svc.Prefill(context.Background(), &models.PrefillRequest{File: []byte("x"), Filename: "r.docx"})
	if got := statusOf(t, err); got != http.StatusRequestTimeout {
		t.Errorf("status = %d, want 408", got)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error %v does not wrap context.DeadlineExceeded", err)
	}
}
