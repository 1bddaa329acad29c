package handlers

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/BerylCAtieno/resume-autofill-api/internal/models"
	"github.com/BerylCAtieno/resume-autofill-api/internal/services"
	"github.com/BerylCAtieno/resume-autofill-api/internal/utils"
	"github.com/gorilla/mux"
)

type ApplicationHandler struct {
	service     services.ApplicationService
	maxFileSize int64
	logger      *utils.Logger
}

func NewApplicationHandler(service services.ApplicationService, maxFileSize int64, logger *utils.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		service:     service,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// SubmitApplication takes the application form as snake_case multipart fields
// (first_name, veteran_status, ...) with the resume file in "resume".
func (h *ApplicationHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	up, err := parseUpload(w, r, "resume", h.maxFileSize)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	req := &models.SubmitApplicationRequest{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Address:   r.FormValue("address"),
		CoverLetter: models.CoverLetter{
			Achievements: r.FormValue("achievements"),
			Motivation:   r.FormValue("motivation"),
		},
		EqualOpportunity: models.EqualOpportunity{
			Gender:        models.Gender(r.FormValue("gender")),
			Ethnicity:     r.FormValue("ethnicity"),
			VeteranStatus: models.VeteranStatus(r.FormValue("veteran_status")),
		},
		Resume:            up.data,
		ResumeFilename:    up.filename,
		ResumeContentType: up.contentType,
	}

	app, err := h.service.Submit(r.Context(), req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, app)
}

func (h *ApplicationHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		respondError(w, h.logger, utils.NewBadRequestError("Application ID is required"))
		return
	}

	app, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, app)
}

// GetApplicationResume streams back the resume file stored with an application.
func (h *ApplicationHandler) GetApplicationResume(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		respondError(w, h.logger, utils.NewBadRequestError("Application ID is required"))
		return
	}

	resume, err := h.service.Resume(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", resume.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(resume.Data)))
	if disposition := mime.FormatMediaType("attachment", map[string]string{"filename": resume.Filename}); disposition != "" {
		w.Header().Set("Content-Disposition", disposition)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(resume.Data); err != nil {
		h.logger.Error("Failed to write resume", "error", err, "id", id)
	}
}
