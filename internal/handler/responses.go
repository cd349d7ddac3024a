package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/BuildQueue_Go/internal/domain"
	"github.com/osse101/BuildQueue_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// encodeFailureBody is written verbatim when a payload cannot be encoded
const encodeFailureBody = `{"error":"` + ErrMsgGenericServerError + `"}` + "\n"

// respondJSON sends a JSON response with the given status code and payload.
// The payload is encoded before the status is written, so an encoding
// failure still reaches the client as a 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := responseBuffers.get()
	defer responseBuffers.put(buf)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(encodeFailureBody))
		return
	}

	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and answers with the mapped status
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"

	ErrMsgDesignNotFoundError   = "Design not found"
	ErrMsgStarNotFoundError     = "Star not found"
	ErrMsgColonyNotFoundError   = "Colony not found"
	ErrMsgBuildingNotFoundError = "Building not found"
	ErrMsgRequestNotFoundError  = "Build request not found"

	ErrMsgColonyCapReachedError = "This colony already has the maximum number of that building"
	ErrMsgEmpireCapReachedError = "Your empire already has the maximum number of that building"
	ErrMsgNotUpgradableError    = "That building is already at its highest level"
	ErrMsgUpgradeInFlightError  = "That building is already being upgraded"
	ErrMsgDependenciesError     = "Required buildings are missing"

	ErrMsgInvalidInputError = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrDesignNotFound):
		return http.StatusNotFound, ErrMsgDesignNotFoundError
	case errors.Is(err, domain.ErrStarNotFound):
		return http.StatusNotFound, ErrMsgStarNotFoundError
	case errors.Is(err, domain.ErrColonyNotFound):
		return http.StatusNotFound, ErrMsgColonyNotFoundError
	case errors.Is(err, domain.ErrBuildingNotFound):
		return http.StatusNotFound, ErrMsgBuildingNotFoundError
	case errors.Is(err, domain.ErrRequestNotFound):
		return http.StatusNotFound, ErrMsgRequestNotFoundError
	case errors.Is(err, domain.ErrColonyCapReached):
		return http.StatusConflict, ErrMsgColonyCapReachedError
	case errors.Is(err, domain.ErrEmpireCapReached):
		return http.StatusConflict, ErrMsgEmpireCapReachedError
	case errors.Is(err, domain.ErrNotUpgradable):
		return http.StatusConflict, ErrMsgNotUpgradableError
	case errors.Is(err, domain.ErrUpgradeInFlight):
		return http.StatusConflict, ErrMsgUpgradeInFlightError
	case errors.Is(err, domain.ErrDependencies):
		return http.StatusConflict, ErrMsgDependenciesError
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidDesign):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
