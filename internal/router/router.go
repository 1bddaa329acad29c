package router

import (
	"net/http"

	"github.com/BerylCAtieno/resume-autofill-api/internal/handlers"
	"github.com/BerylCAtieno/resume-autofill-api/internal/middleware"
	"github.com/BerylCAtieno/resume-autofill-api/internal/services"
	"github.com/BerylCAtieno/resume-autofill-api/internal/utils"

	"github.com/gorilla/mux"
)

type Services struct {
	Resumes      services.ResumeService
	Applications services.ApplicationService
}

func NewRouter(svc Services, maxFileSize int64, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(logger))

	resumeHandler := handlers.NewResumeHandler(svc.Resumes, maxFileSize, logger)
	applicationHandler := handlers.NewApplicationHandler(svc.Applications, maxFileSize, logger)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	// OPTIONS is listed so preflight requests reach the CORS middleware.
	api.HandleFunc("/resumes/parse", resumeHandler.ParseResume).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/applications", applicationHandler.SubmitApplication).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/applications/{id}", applicationHandler.GetApplication).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/applications/{id}/resume", applicationHandler.GetApplicationResume).Methods(http.MethodGet, http.MethodOptions)

	return r
}
