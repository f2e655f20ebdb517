package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	cberr "github.com/amterp/colorbox/internal/errors"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error writes an error response, mapping domain errors to HTTP status codes.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var notFound *cberr.NotFoundError
	var notInit *cberr.NotInitializedError
	var validation *cberr.ValidationError
	var stale *cberr.StaleSessionError

	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		if notFound.Resource == "panel" {
			message = fmt.Sprintf("unknown panel %q (want fore or back)", notFound.ID)
		}
	case errors.As(err, &notInit):
		status = http.StatusNotFound
		message = "colorbox has no config for this document (run 'colorbox init')"
	case errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.As(err, &stale):
		status = http.StatusConflict
		message = "document was reloaded, fetch the panel again"
	case errors.Is(err, fs.ErrNotExist):
		status = http.StatusNotFound
		message = "document file is missing"
	}

	JSON(w, status, map[string]string{"error": message})
}

// BadRequest writes a 400 error with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, map[string]string{"error": message})
}
