package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/txledger/internal/adapter/http/dto"
	"github.com/iho/txledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with a machine-readable code.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// mapSubmitError maps submission errors to HTTP status and reason codes.
// DuplicateRequestError and SettlementError carry payloads and are handled
// by the caller before reaching this.
func mapSubmitError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, domain.ErrLimitExceeded):
		return http.StatusBadRequest, "limit_exceeded"
	case errors.Is(err, domain.ErrUpstreamRejected):
		return http.StatusBadRequest, "upstream_rejected"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "upstream_unavailable"
	case errors.Is(err, domain.ErrLocalPersistence):
		return http.StatusInternalServerError, "persistence_failure"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
