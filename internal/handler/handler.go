package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"notedeck/internal/domain"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, message, details string, status int) {
	writeJSON(w, ErrorResponse{Error: message, Details: details}, status)
}

// writeDomainError maps the error taxonomy to status codes. The core only
// classifies errors; this is the single place they become transport codes.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	var verr *domain.ValidationError
	var cerr *domain.CollaboratorError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, message, err.Error(), http.StatusNotFound)
	case errors.As(err, &verr):
		writeError(w, message, verr.Error(), http.StatusBadRequest)
	case errors.As(err, &cerr):
		log.Error().Err(err).Msg(message)
		writeError(w, message, cerr.Error(), http.StatusBadGateway)
	default:
		log.Error().Err(err).Msg(message)
		writeError(w, message, err.Error(), http.StatusInternalServerError)
	}
}

// pathID parses the {id} path segment as an integer record id.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: "id", Reason: "must be an integer"}
	}
	return id, nil
}
