package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/etnz/planilla"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, &errorResponse{Error: message})
}

func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(data)
}

// statusOf maps the session errors to HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, planilla.ErrNoData),
		errors.Is(err, planilla.ErrUnknownModification),
		errors.Is(err, planilla.ErrUnknownPenalty):
		return http.StatusNotFound
	case errors.Is(err, planilla.ErrDuplicateModification):
		return http.StatusConflict
	case errors.Is(err, planilla.ErrInvalidModification),
		errors.Is(err, planilla.ErrInvalidPenalty),
		errors.Is(err, planilla.ErrCurrencyMismatch):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) error {
	return writeJSONError(w, statusOf(err), err.Error())
}
