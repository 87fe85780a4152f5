// Package query combines the optional free-text search and status filter of
// a track listing request into one deterministic result set.
package query

import (
	"DistroFM/model"
	"DistroFM/repository"
)

// Composer resolves (search, status) parameter pairs against a track
// repository. It performs no validation: an unknown status simply narrows
// the result to nothing.
type Composer struct {
	repo repository.TrackRepository
}

// NewComposer creates a Composer over the given repository.
func NewComposer(repo repository.TrackRepository) *Composer {
	return &Composer{repo: repo}
}

// Compose returns the tracks matching both parameters. A non-empty search
// selects the candidate set via substring search, otherwise the full list
// is used; a non-empty status then narrows the candidates with an exact
// match. Both empty returns the full sorted list.
func (c *Composer) Compose(search, status string) ([]*model.Track, error) {
	var (
		tracks []*model.Track
		err    error
	)
	if search != "" {
		tracks, err = c.repo.SearchTracks(search)
	} else {
		tracks, err = c.repo.ListTracks()
	}
	if err != nil {
		return nil, err
	}

	if status == "" {
		return tracks, nil
	}

	filtered := make([]*model.Track, 0, len(tracks))
	for _, t := range tracks {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}
