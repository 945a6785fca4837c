package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getzep/zep-ner/internal"
	"github.com/getzep/zep-ner/pkg/models"
)

var log = internal.GetLogger()

// APIError represents an error response. Used for swagger documentation.
type APIError struct {
	Message string `json:"message"`
}

// encodeJSON encodes data into JSON and writes it to the response writer.
func encodeJSON(w http.ResponseWriter, data interface{}) error {
	return json.NewEncoder(w).Encode(data)
}

// renderError renders an error response. Server errors are logged in full but only
// the generic status text is sent to the client.
func renderError(w http.ResponseWriter, err error, status int) {
	if errors.Is(err, models.ErrBadRequest) {
		status = http.StatusBadRequest
	}

	if status >= http.StatusInternalServerError {
		log.Error(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn(err)
	http.Error(w, err.Error(), status)
}

// renderValidationError writes the field-level detail of an invalid request.
func renderValidationError(w http.ResponseWriter, verr *models.HTTPValidationError) {
	log.Debug(verr)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := encodeJSON(w, verr); err != nil {
		log.Errorf("error encoding validation error: %v", err)
	}
}
