package handlers

import (
	"net/http"

	"github.com/BerylCAtieno/resume-autofill-api/internal/models"
	"github.com/BerylCAtieno/resume-autofill-api/internal/services"
	"github.com/BerylCAtieno/resume-autofill-api/internal/utils"
)

type ResumeHandler struct {
	service     services.ResumeService
	maxFileSize int64
	logger      *utils.Logger
}

func NewResumeHandler(service services.ResumeService, maxFileSize int64, logger *utils.Logger) *ResumeHandler {
	return &ResumeHandler{
		service:     service,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// ParseResume accepts a multipart upload in the "file" field and returns the
// fields the application form should be pre-filled with.
func (h *ResumeHandler) ParseResume(w http.ResponseWriter, r *http.Request) {
	up, err := parseUpload(w, r, "file", h.maxFileSize)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	h.logger.Info("Resume upload",
		"filename", up.filename,
		"reported_content_type", up.contentType,
		"size", len(up.data))

	resp, err := h.service.Prefill(r.Context(), &models.PrefillRequest{
		File:        up.data,
		Filename:    up.filename,
		ContentType: up.contentType,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, resp)
}
