package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"DistroFM/core/stats"
	"DistroFM/logger"
	"DistroFM/model"
	"DistroFM/repository"

	"github.com/gorilla/mux"
)

// GetTracksHandler lists tracks, optionally narrowed by the search and
// status query parameters.
func (h *APIHandler) GetTracksHandler(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")

	tracks, err := h.composer.Compose(search, status)
	if err != nil {
		writeInternalFailure(w, "Failed to fetch tracks", err)
		return
	}

	logger.Debug("Tracks listed",
		logger.String("search", search),
		logger.String("status", status),
		logger.Int("count", len(tracks)))
	writeJSON(w, http.StatusOK, tracks)
}

// GetTrackHandler returns a single track by id.
func (h *APIHandler) GetTrackHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	track, err := h.trackRepo.GetTrackByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrTrackNotFound) {
			writeMessage(w, http.StatusNotFound, "Track not found")
			return
		}
		writeInternalFailure(w, "Failed to fetch track", err)
		return
	}
	writeJSON(w, http.StatusOK, track)
}

// CreateTrackHandler validates the creation fields and stores a new track.
func (h *APIHandler) CreateTrackHandler(w http.ResponseWriter, r *http.Request) {
	var fields model.NewTrack
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeValidationFailed(w, []string{"invalid request body"})
		return
	}

	var errs []string
	required := []struct {
		name  string
		value string
	}{
		{"title", fields.Title},
		{"artist", fields.Artist},
		{"releaseDate", fields.ReleaseDate},
		{"genre", fields.Genre},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, f.name+" is required")
		}
	}
	if len(errs) > 0 {
		writeValidationFailed(w, errs)
		return
	}

	track, err := h.trackRepo.CreateTrack(fields)
	if err != nil {
		writeInternalFailure(w, "Failed to create track", err)
		return
	}

	logger.Info("Track created",
		logger.String("trackId", track.ID),
		logger.String("title", track.Title),
		logger.String("artist", track.Artist))
	writeJSON(w, http.StatusCreated, track)
}

// UpdateTrackHandler applies a partial update to an existing track. The
// payload decodes into a TrackUpdate, so id and createdAt can never be
// touched no matter what the client sends; mutable fields are validated
// before the merge.
func (h *APIHandler) UpdateTrackHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var updates model.TrackUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeValidationFailed(w, []string{"invalid request body"})
		return
	}

	if errs := validateTrackUpdate(&updates); len(errs) > 0 {
		writeValidationFailed(w, errs)
		return
	}

	track, err := h.trackRepo.UpdateTrack(id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrTrackNotFound) {
			writeMessage(w, http.StatusNotFound, "Track not found")
			return
		}
		writeInternalFailure(w, "Failed to update track", err)
		return
	}

	logger.Info("Track updated", logger.String("trackId", id))
	writeJSON(w, http.StatusOK, track)
}

func validateTrackUpdate(u *model.TrackUpdate) []string {
	var errs []string
	text := []struct {
		name  string
		value *string
	}{
		{"title", u.Title},
		{"artist", u.Artist},
		{"releaseDate", u.ReleaseDate},
		{"genre", u.Genre},
	}
	for _, f := range text {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			errs = append(errs, f.name+" must not be empty")
		}
	}
	if u.Status != nil && !model.ValidStatus(*u.Status) {
		errs = append(errs, "status must be one of pending, processing, released, rejected")
	}
	counters := []struct {
		name  string
		value *int64
	}{
		{"streams", u.Streams},
		{"likes", u.Likes},
		{"shares", u.Shares},
	}
	for _, f := range counters {
		if f.value != nil && *f.value < 0 {
			errs = append(errs, f.name+" must not be negative")
		}
	}
	return errs
}

// DeleteTrackHandler removes a track by id.
func (h *APIHandler) DeleteTrackHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existed, err := h.trackRepo.DeleteTrack(id)
	if err != nil {
		writeInternalFailure(w, "Failed to delete track", err)
		return
	}
	if !existed {
		writeMessage(w, http.StatusNotFound, "Track not found")
		return
	}

	logger.Info("Track deleted", logger.String("trackId", id))
	writeMessage(w, http.StatusOK, "Track deleted successfully")
}

// DashboardStatsHandler computes the summary counters over the current
// collection. Always a fresh snapshot.
func (h *APIHandler) DashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.trackRepo.ListTracks()
	if err != nil {
		writeInternalFailure(w, "Failed to fetch dashboard stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats.Aggregate(tracks))
}
