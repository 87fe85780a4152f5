package repository

import (
	"database/sql"
	"fmt"
	"time"

	"DistroFM/model"

	"github.com/google/uuid"
)

// mysqlTrackRepository implements TrackRepository for MySQL.
type mysqlTrackRepository struct {
	db *sql.DB
}

// NewMySQLTrackRepository creates a MySQL-backed track repository.
func NewMySQLTrackRepository(db *sql.DB) TrackRepository {
	return &mysqlTrackRepository{db: db}
}

const trackColumns = `id, title, artist, release_date, genre, status, description, duration, streams, likes, shares, earnings, created_at`

func scanTrack(row interface{ Scan(...any) error }) (*model.Track, error) {
	t := &model.Track{}
	err := row.Scan(&t.ID, &t.Title, &t.Artist, &t.ReleaseDate, &t.Genre, &t.Status,
		&t.Description, &t.Duration, &t.Streams, &t.Likes, &t.Shares, &t.Earnings, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *mysqlTrackRepository) queryTracks(query string, args ...any) ([]*model.Track, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	tracks := make([]*model.Track, 0)
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan track row: %w", err)
		}
		tracks = append(tracks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during track rows iteration: %w", err)
	}
	return tracks, nil
}

// ListTracks retrieves all tracks ordered newest first.
func (r *mysqlTrackRepository) ListTracks() ([]*model.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks ORDER BY created_at DESC, seq ASC`
	return r.queryTracks(query)
}

// GetTrackByID retrieves a track by its id.
func (r *mysqlTrackRepository) GetTrackByID(id string) (*model.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks WHERE id = ?`
	t, err := scanTrack(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to scan track by id %s: %w", id, err)
	}
	return t, nil
}

// CreateTrack inserts a new track with a generated id and system defaults.
func (r *mysqlTrackRepository) CreateTrack(fields model.NewTrack) (*model.Track, error) {
	query := `INSERT INTO tracks (id, title, artist, release_date, genre, status, description, duration, streams, likes, shares, earnings, created_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement for CreateTrack: %w", err)
	}
	defer stmt.Close()

	track := &model.Track{
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

	_, err = stmt.Exec(track.ID, track.Title, track.Artist, track.ReleaseDate, track.Genre,
		track.Status, track.Description, track.Duration, track.Streams, track.Likes,
		track.Shares, track.Earnings, track.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute CreateTrack: %w", err)
	}
	return track, nil
}

// UpdateTrack merges the supplied fields into an existing row inside a
// transaction, so concurrent readers never see a partial merge.
func (r *mysqlTrackRepository) UpdateTrack(id string, updates model.TrackUpdate) (*model.Track, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for UpdateTrack: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + trackColumns + ` FROM tracks WHERE id = ? FOR UPDATE`
	t, err := scanTrack(tx.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to scan track for update, id %s: %w", id, err)
	}

	updates.Apply(t)

	update := `UPDATE tracks SET title = ?, artist = ?, release_date = ?, genre = ?, status = ?,
	            description = ?, duration = ?, streams = ?, likes = ?, shares = ?, earnings = ?
	            WHERE id = ?`
	_, err = tx.Exec(update, t.Title, t.Artist, t.ReleaseDate, t.Genre, t.Status,
		t.Description, t.Duration, t.Streams, t.Likes, t.Shares, t.Earnings, id)
	if err != nil {
		return nil, fmt.Errorf("failed to execute UpdateTrack for id %s: %w", id, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit UpdateTrack for id %s: %w", id, err)
	}
	return t, nil
}

// DeleteTrack removes a track and reports whether a row existed.
func (r *mysqlTrackRepository) DeleteTrack(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM tracks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to execute DeleteTrack for id %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows for DeleteTrack: %w", err)
	}
	return affected > 0, nil
}

// SearchTracks matches the query as a case-insensitive substring of title,
// artist or genre.
func (r *mysqlTrackRepository) SearchTracks(query string) ([]*model.Track, error) {
	pattern := "%" + query + "%"
	q := `SELECT ` + trackColumns + ` FROM tracks
	       WHERE LOWER(title) LIKE LOWER(?) OR LOWER(artist) LIKE LOWER(?) OR LOWER(genre) LIKE LOWER(?)
	       ORDER BY created_at DESC, seq ASC`
	return r.queryTracks(q, pattern, pattern, pattern)
}

// FilterTracksByStatus returns tracks whose status matches exactly.
func (r *mysqlTrackRepository) FilterTracksByStatus(status string) ([]*model.Track, error) {
	q := `SELECT ` + trackColumns + ` FROM tracks WHERE status = ? ORDER BY created_at DESC, seq ASC`
	return r.queryTracks(q, status)
}
