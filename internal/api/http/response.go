package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"seller-wallet-backend/internal/domain"
	"seller-wallet-backend/internal/logger"
	"seller-wallet-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps core errors onto transport status codes. Contention
// is reported as 503 so edge callers retry with backoff; conflicts are 409
// and never retried.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNonPositiveAmount):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrSellerNotFound), errors.Is(err, domain.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyProcessed):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInsufficientCredit):
		writeError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrLockContention):
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Unhandled error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
