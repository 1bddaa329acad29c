package extractor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/BerylCAtieno/resume-autofill-api/internal/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func cannedDecoder(text string) Decoder {
	return DecoderFunc(func([]byte) (string, error) { return text, nil })
}

func TestExtractDispatchesOnMediaType(t *testing.T) {
	e := NewWithDecoders(quietLogger(), map[MediaType]Decoder{
		MediaTypePDF:  cannedDecoder("from pdf"),
		MediaTypeDOCX: cannedDecoder("from docx"),
	})

	tests := []struct {
		mediaType MediaType
		want      string
	}{
		{MediaTypePDF, "from pdf"},
		{MediaTypeDOCX, "from docx"},
	}

	for _, tt := range tests {
		t.Run(tt.mediaType.Label(), func(t *testing.T) {
			got, err := e.Extract(context.Background(), Document{Data: []byte("x"), MediaType: tt.mediaType})
			if err != nil {
				t.Fatalf("Extract returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractRejectsUnsupportedMediaTypeWithoutDecoding(t *testing.T) {
	called := false
	spy := DecoderFunc(func([]byte) (string, error) {
		called = true
		return "", nil
	})
	e := NewWithDecoders(quietLogger(), map[MediaType]Decoder{MediaTypePDF: spy})

	for _, mt := range []MediaType{"text/plain", "image/png", "application/msword", ""} {
		_, err := e.Extract(context.Background(), Document{Data: []byte("hello"), MediaType: mt})
		if !errors.Is(err, ErrUnsupportedMediaType) {
			t.Errorf("Extract(%q) error = %v, want ErrUnsupportedMediaType", mt, err)
		}
		var unsupported *UnsupportedMediaTypeError
		if !errors.As(err, &unsupported) || unsupported.MediaType != mt {
			t.Errorf("Extract(%q) error = %#v, want *UnsupportedMediaTypeError naming the type", mt, err)
		}
	}
	if called {
		t.Error("decoder was called for an unsupported media type")
	}
}

func TestExtractWrapsDecoderFailure(t *testing.T) {
	cause := errors.New("file is encrypted")
	e := NewWithDecoders(quietLogger(), map[MediaType]Decoder{
		MediaTypePDF: DecoderFunc(func([]byte) (string, error) { return "partial text", cause }),
	})

	text, err := e.Extract(context.Background(), Document{Data: []byte("x"), MediaType: MediaTypePDF})
	if text != "" {
		t.Errorf("Extract returned partial text %q", text)
	}
	if !errors.Is(err, ErrDocumentDecode) {
		t.Fatalf("error = %v, want ErrDocumentDecode", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error = %v, want it to wrap the decoder error", err)
	}
	if !strings.Contains(err.Error(), "file is encrypted") {
		t.Errorf("error message %q does not carry the decoder diagnostic", err.Error())
	}
}

func TestExtractRecoversDecoderPanic(t *testing.T) {
	e := NewWithDecoders(quietLogger(), map[MediaType]Decoder{
		MediaTypeDOCX: DecoderFunc(func([]byte) (string, error) { panic("index out of range") }),
	})

	_, err := e.Extract(context.Background(), Document{Data: []byte("x"), MediaType: MediaTypeDOCX})
	if !errors.Is(err, ErrDocumentDecode) {
		t.Fatalf("error = %v, want ErrDocumentDecode", err)
	}
}

func TestExtractHonorsDeadline(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	e := NewWithDecoders(quietLogger(), map[MediaType]Decoder{
		MediaTypePDF: DecoderFunc(func([]byte) (string, error) {
			<-release
			return "too late", nil
		}),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	text, err := e.Extract(ctx, Document{Data: []byte("x"), MediaType: MediaTypePDF})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want context.DeadlineExceeded", err)
	}
	if errors.Is(err, ErrDocumentDecode) {
		t.Errorf("timeout reported as a decode error: %v", err)
	}
	if text != "" {
		t.Errorf("Extract returned text %q after timing out", text)
	}
}

func TestExtractWithCanceledContextSkipsDecoding(t *testing.T) {
	called := false
	e := NewWithDecoders(quietLogger(), map[MediaType]Decoder{
		MediaTypePDF: DecoderFunc(func([]byte) (string, error) {
			called = true
			return "", nil
		}),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Extract(ctx, Document{MediaType: MediaTypePDF}); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if called {
		t.Error("decoder ran on a canceled context")
	}
}

func TestExtractNormalizesToNFC(t *testing.T) {
	e := NewWithDecoders(quietLogger(), map[MediaType]Decoder{
		MediaTypePDF: cannedDecoder("Jose\u0301 Garci\u0301a"),
	})

	got, err := e.Extract(context.Background(), Document{MediaType: MediaTypePDF})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if want := "Jos\u00e9 Garc\u00eda"; got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestNewExtractsRealDocuments(t *testing.T) {
	e := New(quietLogger())

	pdfText, err := e.Extract(context.Background(), Document{
		Data:      testutil.BuildPDF(t, "jane.doe@example.com"),
		MediaType: MediaTypePDF,
		Filename:  "resume.pdf",
	})
	if err != nil {
		t.Fatalf("PDF Extract returned error: %v", err)
	}
	if pdfText != "jane.doe@example.com" {
		t.Errorf("PDF Extract() = %q", pdfText)
	}

	docxText, err := e.Extract(context.Background(), Document{
		Data:      testutil.BuildDOCX(t, testutil.Run("Phone: 555.123.4567")),
		MediaType: MediaTypeDOCX,
		Filename:  "resume.docx",
	})
	if err != nil {
		t.Fatalf("DOCX Extract returned error: %v", err)
	}
	if docxText != "Phone: 555.123.4567" {
		t.Errorf("DOCX Extract() = %q", docxText)
	}
}

func TestNewReportsCorruptPDFAsDecodeError(t *testing.T) {
	e := New(quietLogger())

	_, err := e.Extract(context.Background(), Document{
		Data:      []byte("%PDF-1.7\n\x00\x01 password protected garbage"),
		MediaType: MediaTypePDF,
	})
	var decodeErr *DocumentDecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error = %v, want *DocumentDecodeError", err)
	}
	if decodeErr.MediaType != MediaTypePDF {
		t.Errorf("MediaType = %q, want PDF", decodeErr.MediaType)
	}
}
