package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"foodie-kart/internal/middleware"
	"foodie-kart/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes bounds request bodies; every payload in this API is tiny.
const maxBodyBytes = 1 << 20

// errorStatus maps domain error codes to HTTP status codes.
var errorStatus = map[string]int{
	model.ErrCodeMissingField:      http.StatusBadRequest,
	model.ErrCodeInvalidQuantity:   http.StatusBadRequest,
	model.ErrCodeInvalidStatus:     http.StatusBadRequest,
	model.ErrCodeInvalidCategory:   http.StatusBadRequest,
	model.ErrCodeInvalidParameter:  http.StatusBadRequest,
	model.ErrCodeEmptyCart:         http.StatusUnprocessableEntity,
	model.ErrCodeFoodNotFound:      http.StatusNotFound,
	model.ErrCodeOrderNotFound:     http.StatusNotFound,
	model.ErrCodeInvalidTransition: http.StatusConflict,
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		logger.Error().Err(err).Int("status", status).Msg("failed to encode response")
	}
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.CorrelationIDFromContext(r.Context())
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	}, logger)
}

// writeServiceError translates an error returned by a service into a response.
// Domain errors become 4xx; anything else is reported as a 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status, ok := errorStatus[domainErr.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		writeError(w, r, status, domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Str("path", r.URL.Path).Msg(fallback)
	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, fallback, logger)
}

// methodNotAllowed rejects requests whose method is not in allowed.
func methodNotAllowed(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, allowed ...string) bool {
	for _, m := range allowed {
		if r.Method == m {
			return false
		}
	}
	writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", logger)
	return true
}

// decodeJSON decodes the request body into dest.
func decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("request body is empty")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
