package server

import (
	"encoding/json"
	"net/http"

	"DistroFM/config"
	"DistroFM/core/query"
	"DistroFM/logger"
	"DistroFM/repository"
)

// APIHandler handles all API requests. It holds no per-request state; all
// mutable data lives behind the repositories.
type APIHandler struct {
	trackRepo repository.TrackRepository
	userRepo  repository.UserRepository
	composer  *query.Composer
	cfg       *config.Config
}

// NewAPIHandler creates a new API handler over the given repositories.
func NewAPIHandler(
	trackRepo repository.TrackRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		trackRepo: trackRepo,
		userRepo:  userRepo,
		composer:  query.NewComposer(trackRepo),
		cfg:       cfg,
	}
}

// messageResponse is the generic {message} body used for errors and
// deletion confirmations.
type messageResponse struct {
	Message string `json:"message"`
}

// validationResponse reports a failed input validation with per-field
// detail, distinct from a generic server error.
type validationResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", logger.ErrorField(err))
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

func writeValidationFailed(w http.ResponseWriter, errs []string) {
	writeJSON(w, http.StatusBadRequest, validationResponse{
		Message: "Validation failed",
		Errors:  errs,
	})
}

// writeInternalFailure hides the fault detail behind a generic message;
// the cause goes to the log only.
func writeInternalFailure(w http.ResponseWriter, msg string, err error) {
	logger.Error(msg, logger.ErrorField(err))
	writeMessage(w, http.StatusInternalServerError, msg)
}
