package repository

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"DistroFM/model"

	"github.com/google/uuid"
)

// ErrTrackNotFound is returned when an operation addresses a track id that
// is not in the store.
var ErrTrackNotFound = errors.New("track not found")

// TrackRepository defines the interface for track data operations. The
// in-memory implementation is the default; a durable backend can be swapped
// in without touching the API layer.
type TrackRepository interface {
	ListTracks() ([]*model.Track, error)
	GetTrackByID(id string) (*model.Track, error)
	CreateTrack(fields model.NewTrack) (*model.Track, error)
	UpdateTrack(id string, updates model.TrackUpdate) (*model.Track, error)
	DeleteTrack(id string) (bool, error)
	SearchTracks(query string) ([]*model.Track, error)
	FilterTracksByStatus(status string) ([]*model.Track, error)
}

// trackRecord pairs a track with its insertion sequence number, used to
// break ordering ties between tracks created at the same instant.
type trackRecord struct {
	track model.Track
	seq   uint64
}

// memoryTrackRepository implements TrackRepository over a map guarded by a
// RWMutex. Reads return copies, so callers never observe a half-applied
// update.
type memoryTrackRepository struct {
	mu      sync.RWMutex
	tracks  map[string]*trackRecord
	nextSeq uint64
}

// NewMemoryTrackRepository creates an empty in-memory track repository.
func NewMemoryTrackRepository() TrackRepository {
	return &memoryTrackRepository{tracks: make(map[string]*trackRecord)}
}

// ListTracks returns all tracks ordered by creation time, newest first.
// Ties fall back to insertion order.
func (r *memoryTrackRepository) ListTracks() ([]*model.Track, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedSnapshot(nil), nil
}

// GetTrackByID retrieves a track by its id.
func (r *memoryTrackRepository) GetTrackByID(id string) (*model.Track, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.tracks[id]
	if !ok {
		return nil, ErrTrackNotFound
	}
	t := rec.track
	return &t, nil
}

// CreateTrack stores a new track with a generated id and system defaults.
// The store accepts the fields as given; validation happens at the API layer.
func (r *memoryTrackRepository) CreateTrack(fields model.NewTrack) (*model.Track, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	track := model.Track{
		ID:          uuid.NewString(),
		Title:       fields.Title,
		Artist:      fields.Artist,
		ReleaseDate: fields.ReleaseDate,
		Genre:       fields.Genre,
		Description: fields.Description,
		Status:      model.StatusPending,
		Duration:    "0:00",
		Earnings:    "0.00",
		CreatedAt:   time.Now(),
	}

	r.nextSeq++
	r.tracks[track.ID] = &trackRecord{track: track, seq: r.nextSeq}

	t := track
	return &t, nil
}

// UpdateTrack shallow-merges the supplied fields into an existing track.
// Id and creation time are not reachable through a TrackUpdate, so they
// survive any payload.
func (r *memoryTrackRepository) UpdateTrack(id string, updates model.TrackUpdate) (*model.Track, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.tracks[id]
	if !ok {
		return nil, ErrTrackNotFound
	}
	updates.Apply(&rec.track)

	t := rec.track
	return &t, nil
}

// DeleteTrack removes a track and reports whether one existed. Deleting a
// missing id is a no-op, not an error.
func (r *memoryTrackRepository) DeleteTrack(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tracks[id]; !ok {
		return false, nil
	}
	delete(r.tracks, id)
	return true, nil
}

// SearchTracks performs a case-insensitive substring match against title,
// artist and genre. An empty query matches everything. Results carry the
// same newest-first ordering as ListTracks.
func (r *memoryTrackRepository) SearchTracks(query string) ([]*model.Track, error) {
	q := strings.ToLower(query)

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedSnapshot(func(t *model.Track) bool {
		return strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Artist), q) ||
			strings.Contains(strings.ToLower(t.Genre), q)
	}), nil
}

// FilterTracksByStatus returns tracks whose status matches exactly. An
// unknown status yields an empty result, never an error.
func (r *memoryTrackRepository) FilterTracksByStatus(status string) ([]*model.Track, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedSnapshot(func(t *model.Track) bool {
		return t.Status == status
	}), nil
}

// sortedSnapshot copies the records accepted by keep (nil keeps all) and
// sorts them newest first, insertion order on ties. Callers must hold at
// least the read lock.
func (r *memoryTrackRepository) sortedSnapshot(keep func(*model.Track) bool) []*model.Track {
	recs := make([]*trackRecord, 0, len(r.tracks))
	for _, rec := range r.tracks {
		if keep == nil || keep(&rec.track) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].track.CreatedAt.Equal(recs[j].track.CreatedAt) {
			return recs[i].track.CreatedAt.After(recs[j].track.CreatedAt)
		}
		return recs[i].seq < recs[j].seq
	})

	tracks := make([]*model.Track, 0, len(recs))
	for _, rec := range recs {
		t := rec.track
		tracks = append(tracks, &t)
	}
	return tracks
}
