package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/BerylCAtieno/resume-autofill-api/internal/utils"
)

func respondJSON(w http.ResponseWriter, logger *utils.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, logger *utils.Logger, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		status = appErr.StatusCode
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request error", "status", status, "error", err)
	} else {
		logger.Warn("Request rejected", "status", status, "error", message)
	}

	respondJSON(w, logger, status, map[string]string{"error": message})
}

// multipartOverhead is allowed on top of the file limit for multipart framing
// and form fields.
const multipartOverhead = 64 << 10

type upload struct {
	data        []byte
	filename    string
	contentType string
}

// parseUpload reads the multipart form and the file in field, enforcing maxSize
// on both the request body and the file itself.
func parseUpload(w http.ResponseWriter, r *http.Request, field string, maxSize int64) (*upload, error) {
	bodyLimit := maxSize + multipartOverhead

	// Check Content-Length header first to reject oversized requests early
	if r.ContentLength > bodyLimit {
		return nil, utils.NewPayloadTooLargeError("File size exceeds the upload limit")
	}

	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			return nil, utils.NewPayloadTooLargeError("File size exceeds the upload limit")
		}
		return nil, utils.NewBadRequestError("Invalid form data")
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, utils.NewBadRequestError("No file provided")
		}
		return nil, utils.NewBadRequestError("Invalid form data")
	}
	defer file.Close()

	data, err := readLimited(file, maxSize)
	if err != nil {
		return nil, err
	}

	return &upload{
		data:        data,
		filename:    header.Filename,
		contentType: header.Header.Get("Content-Type"),
	}, nil
}

func readLimited(file multipart.File, maxSize int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, utils.NewInternalError("Failed to read file")
	}

	if int64(len(data)) > maxSize {
		return nil, utils.NewPayloadTooLargeError("File size exceeds the upload limit")
	}

	if len(data) == 0 {
		return nil, utils.NewBadRequestError("Uploaded file is empty")
	}

	return data, nil
}
