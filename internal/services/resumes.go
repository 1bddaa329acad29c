package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BerylCAtieno/resume-autofill-api/internal/config"
	"github.com/BerylCAtieno/resume-autofill-api/internal/extractor"
	"github.com/BerylCAtieno/resume-autofill-api/internal/fieldparser"
	"github.com/BerylCAtieno/resume-autofill-api/internal/models"
	"github.com/BerylCAtieno/resume-autofill-api/internal/utils"
)

// TextExtractor is the part of *extractor.Extractor the services depend on.
type TextExtractor interface {
	Extract(ctx context.Context, doc extractor.Document) (string, error)
}

type ResumeService interface {
	Prefill(ctx context.Context, req *models.PrefillRequest) (*models.PrefillResponse, error)
}

type resumeService struct {
	extractor TextExtractor
	timeout   time.Duration
	logger    *utils.Logger
}

func NewResumeService(ext TextExtractor, cfg *config.Config, logger *utils.Logger) ResumeService {
	return &resumeService{
		extractor: ext,
		timeout:   cfg.ExtractTimeout,
		logger:    logger,
	}
}

// Prefill extracts the resume's text and returns the candidate form fields.
// A resume with no recognizable fields is a success with empty fields.
func (s *resumeService) Prefill(ctx context.Context, req *models.PrefillRequest) (*models.PrefillResponse, error) {
	mediaType := extractor.DetectMediaType(req.Filename, req.ContentType)
	if !mediaType.Supported() {
		s.logger.Warn("Unsupported content type", "content_type", req.ContentType, "filename", req.Filename)
		return nil, utils.NewUnsupportedMediaTypeError(
			fmt.Sprintf("Unsupported file type '%s'. Only PDF and DOCX are allowed", mediaType),
			&extractor.UnsupportedMediaTypeError{MediaType: mediaType},
		)
	}

	if len(req.File) == 0 {
		return nil, utils.NewBadRequestError("Uploaded file is empty")
	}

	extractCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.extractor.Extract(extractCtx, extractor.Document{
		Data:      req.File,
		MediaType: mediaType,
		Filename:  req.Filename,
	})
	if err != nil {
		s.logger.Error("Failed to extract text",
			"error", err,
			"media_type", mediaType.Label(),
			"filename", req.Filename,
			"elapsed", time.Since(start))
		return nil, extractionError(err)
	}

	fields := fieldparser.Parse(text)
	matches := fieldparser.ParseAll(text)

	s.logger.Info("Resume parsed",
		"filename", req.Filename,
		"media_type", mediaType.Label(),
		"text_length", len(text),
		"matched", fields.Matched(),
		"elapsed", time.Since(start))

	return &models.PrefillResponse{
		Filename:   req.Filename,
		MediaType:  string(mediaType),
		Fields:     fields,
		Matches:    matches,
		TextLength: len(text),
	}, nil
}

func extractionError(err error) error {
	switch {
	case errors.Is(err, extractor.ErrUnsupportedMediaType):
		return utils.NewUnsupportedMediaTypeError("Only PDF and DOCX files are allowed", err)
	case errors.Is(err, extractor.ErrDocumentDecode):
		return utils.NewUnprocessableError(fmt.Sprintf("Could not read the document: %v", err), err)
	case errors.Is(err, context.DeadlineExceeded):
		return utils.NewRequestTimeoutError("Timed out reading the document", err)
	case errors.Is(err, context.Canceled):
		return utils.NewRequestTimeoutError("Request canceled", err)
	default:
		return utils.NewInternalError("Failed to extract text from document")
	}
}
