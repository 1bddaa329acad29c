package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/BerylCAtieno/resume-autofill-api/internal/config"
	"github.com/BerylCAtieno/resume-autofill-api/internal/extractor"
	"github.com/BerylCAtieno/resume-autofill-api/internal/fieldparser"
	"github.com/BerylCAtieno/resume-autofill-api/internal/models"
	"github.com/BerylCAtieno/resume-autofill-api/internal/repository"
	"github.com/BerylCAtieno/resume-autofill-api/internal/storage"
	"github.com/BerylCAtieno/resume-autofill-api/internal/utils"
)

type ApplicationService interface {
	Submit(ctx context.Context, req *models.SubmitApplicationRequest) (*models.Application, error)
	Get(ctx context.Context, id string) (*models.Application, error)
	Resume(ctx context.Context, id string) (*models.ResumeFile, error)
}

type applicationService struct {
	repo        repository.ApplicationRepository
	storage     storage.Storage
	maxFileSize int64
	logger      *utils.Logger
	now         func() time.Time
}

func NewApplicationService(repo repository.ApplicationRepository, store storage.Storage, cfg *config.Config, logger *utils.Logger) ApplicationService {
	return &applicationService{
		repo:        repo,
		storage:     store,
		maxFileSize: cfg.MaxFileSize,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *applicationService) Submit(ctx context.Context, req *models.SubmitApplicationRequest) (*models.Application, error) {
	mediaType, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	id := utils.GenerateID()
	filename := resumeFilename(req.ResumeFilename, mediaType)
	key := fmt.Sprintf("applications/%s/%s", id, filename)

	if err := s.storage.Upload(ctx, key, req.Resume, string(mediaType)); err != nil {
		s.logger.Error("Failed to upload resume", "error", err, "key", key)
		return nil, utils.NewInternalError("Failed to store resume")
	}

	app := &models.Application{
		ID:        id,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		CoverLetter: models.CoverLetter{
			Achievements: strings.TrimSpace(req.CoverLetter.Achievements),
			Motivation:   strings.TrimSpace(req.CoverLetter.Motivation),
		},
		EqualOpportunity: models.EqualOpportunity{
			Gender:        req.EqualOpportunity.Gender,
			Ethnicity:     strings.TrimSpace(req.EqualOpportunity.Ethnicity),
			VeteranStatus: req.EqualOpportunity.VeteranStatus,
		},
		ResumeKey:         key,
		ResumeFilename:    filename,
		ResumeContentType: string(mediaType),
		ResumeSize:        int64(len(req.Resume)),
		CreatedAt:         s.now().UTC(),
	}

	if err := s.repo.Create(ctx, app); err != nil {
		s.logger.Error("Failed to save application", "error", err, "id", id)
		if derr := s.storage.Delete(ctx, key); derr != nil {
			s.logger.Warn("Failed to clean up resume after save error", "error", derr, "key", key)
		}
		return nil, utils.NewInternalError("Failed to save application")
	}

	s.logger.Info("Application submitted",
		"id", id,
		"media_type", mediaType.Label(),
		"resume_size", app.ResumeSize)

	return app, nil
}

func (s *applicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get application", "error", err, "id", id)
		return nil, utils.NewInternalError("Failed to retrieve application")
	}
	if app == nil {
		return nil, utils.NewNotFoundError("Application not found")
	}

	return app, nil
}

// Resume returns the resume file stored with application id.
func (s *applicationService) Resume(ctx context.Context, id string) (*models.ResumeFile, error) {
	app, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := s.storage.Download(ctx, app.ResumeKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			s.logger.Warn("Resume missing from storage", "id", id, "key", app.ResumeKey)
			return nil, utils.NewNotFoundError("Resume not found")
		}
		s.logger.Error("Failed to download resume", "error", err, "id", id, "key", app.ResumeKey)
		return nil, utils.NewInternalError("Failed to retrieve resume")
	}

	return &models.ResumeFile{
		Filename:    app.ResumeFilename,
		ContentType: app.ResumeContentType,
		Data:        data,
	}, nil
}

func (s *applicationService) validate(req *models.SubmitApplicationRequest) (extractor.MediaType, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return "", utils.NewBadRequestError("First name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return "", utils.NewBadRequestError("Last name is required")
	}
	if !fieldparser.IsEmail(strings.TrimSpace(req.Email)) {
		return "", utils.NewBadRequestError("A valid email address is required")
	}
	if !req.EqualOpportunity.Gender.Valid() {
		return "", utils.NewBadRequestError(fmt.Sprintf("Unknown gender option '%s'", req.EqualOpportunity.Gender))
	}
	if !req.EqualOpportunity.VeteranStatus.Valid() {
		return "", utils.NewBadRequestError(fmt.Sprintf("Unknown veteran status option '%s'", req.EqualOpportunity.VeteranStatus))
	}

	if len(req.Resume) == 0 {
		return "", utils.NewBadRequestError("A resume file is required")
	}
	if int64(len(req.Resume)) > s.maxFileSize {
		return "", utils.NewPayloadTooLargeError(fmt.Sprintf("Resume exceeds the %d byte limit", s.maxFileSize))
	}

	mediaType := extractor.DetectMediaType(req.ResumeFilename, req.ResumeContentType)
	if !mediaType.Supported() {
		return "", utils.NewUnsupportedMediaTypeError(
			fmt.Sprintf("Unsupported file type '%s'. Only PDF and DOCX are allowed", mediaType),
			&extractor.UnsupportedMediaTypeError{MediaType: mediaType},
		)
	}

	return mediaType, nil
}

// resumeFilename keeps the last path element of the client's filename and
// falls back to a generic name with the right extension.
func resumeFilename(name string, mediaType extractor.MediaType) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	if base == "." || base == "/" || base == "" {
		if mediaType == extractor.MediaTypePDF {
			return "resume.pdf"
		}
		return "resume.docx"
	}
	return base
}
