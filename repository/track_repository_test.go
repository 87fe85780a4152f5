package repository

import (
	"errors"
	"testing"
	"time"

	"DistroFM/model"
)

func mustCreate(t *testing.T, repo TrackRepository, fields model.NewTrack) *model.Track {
	t.Helper()
	track, err := repo.CreateTrack(fields)
	if err != nil {
		t.Fatalf("failed to create track: %v", err)
	}
	// Creation timestamps need to differ for ordering assertions.
	time.Sleep(time.Millisecond)
	return track
}

func TestCreateTrack(t *testing.T) {
	repo := NewMemoryTrackRepository()

	first := mustCreate(t, repo, model.NewTrack{
		Title: "A", Artist: "B", ReleaseDate: "2024-01-01", Genre: "rock",
	})
	second := mustCreate(t, repo, model.NewTrack{
		Title: "C", Artist: "D", ReleaseDate: "2024-01-02", Genre: "pop",
	})

	t.Run("UniqueIDs", func(t *testing.T) {
		if first.ID == "" || second.ID == "" {
			t.Fatal("expected generated ids")
		}
		if first.ID == second.ID {
			t.Errorf("expected unique ids, both were %s", first.ID)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		if first.Status != model.StatusPending {
			t.Errorf("expected status pending, got %s", first.Status)
		}
		if first.Streams != 0 || first.Likes != 0 || first.Shares != 0 {
			t.Errorf("expected zero counters, got %d/%d/%d", first.Streams, first.Likes, first.Shares)
		}
		if first.Duration != "0:00" {
			t.Errorf("expected duration 0:00, got %s", first.Duration)
		}
		if first.Earnings != "0.00" {
			t.Errorf("expected earnings 0.00, got %s", first.Earnings)
		}
		if first.CreatedAt.IsZero() {
			t.Error("expected createdAt to be set")
		}
	})

	t.Run("Retrievable", func(t *testing.T) {
		got, err := repo.GetTrackByID(first.ID)
		if err != nil {
			t.Fatalf("failed to get created track: %v", err)
		}
		if got.Title != "A" || got.Artist != "B" {
			t.Errorf("unexpected track fields: %+v", got)
		}
	})
}

func TestGetTrackByID(t *testing.T) {
	repo := NewMemoryTrackRepository()

	_, err := repo.GetTrackByID("missing")
	if !errors.Is(err, ErrTrackNotFound) {
		t.Errorf("expected ErrTrackNotFound, got %v", err)
	}
}

func TestListTracks(t *testing.T) {
	repo := NewMemoryTrackRepository()

	t.Run("Empty", func(t *testing.T) {
		tracks, err := repo.ListTracks()
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(tracks) != 0 {
			t.Errorf("expected empty list, got %d tracks", len(tracks))
		}
	})

	t.Run("NewestFirst", func(t *testing.T) {
		oldest := mustCreate(t, repo, model.NewTrack{Title: "oldest", Artist: "x", ReleaseDate: "2024-01-01", Genre: "rock"})
		middle := mustCreate(t, repo, model.NewTrack{Title: "middle", Artist: "x", ReleaseDate: "2024-01-02", Genre: "rock"})
		newest := mustCreate(t, repo, model.NewTrack{Title: "newest", Artist: "x", ReleaseDate: "2024-01-03", Genre: "rock"})

		tracks, err := repo.ListTracks()
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(tracks) != 3 {
			t.Fatalf("expected 3 tracks, got %d", len(tracks))
		}
		for i, want := range []*model.Track{newest, middle, oldest} {
			if tracks[i].ID != want.ID {
				t.Errorf("position %d: expected %s, got %s", i, want.Title, tracks[i].Title)
			}
		}
	})
}

func TestUpdateTrack(t *testing.T) {
	repo := NewMemoryTrackRepository()
	track := mustCreate(t, repo, model.NewTrack{
		Title: "Original", Artist: "Artist", ReleaseDate: "2024-01-01", Genre: "rock",
	})

	t.Run("PartialMerge", func(t *testing.T) {
		status := model.StatusReleased
		updated, err := repo.UpdateTrack(track.ID, model.TrackUpdate{Status: &status})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}

		if updated.Status != model.StatusReleased {
			t.Errorf("expected status released, got %s", updated.Status)
		}
		if updated.Title != "Original" || updated.Artist != "Artist" {
			t.Errorf("unrelated fields changed: %+v", updated)
		}
		if updated.ID != track.ID {
			t.Errorf("id changed from %s to %s", track.ID, updated.ID)
		}
		if !updated.CreatedAt.Equal(track.CreatedAt) {
			t.Errorf("createdAt changed from %v to %v", track.CreatedAt, updated.CreatedAt)
		}
	})

	t.Run("Counters", func(t *testing.T) {
		streams := int64(500)
		updated, err := repo.UpdateTrack(track.ID, model.TrackUpdate{Streams: &streams})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if updated.Streams != 500 {
			t.Errorf("expected 500 streams, got %d", updated.Streams)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.UpdateTrack("missing", model.TrackUpdate{})
		if !errors.Is(err, ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound, got %v", err)
		}
	})
}

func TestDeleteTrack(t *testing.T) {
	repo := NewMemoryTrackRepository()
	track := mustCreate(t, repo, model.NewTrack{
		Title: "Doomed", Artist: "x", ReleaseDate: "2024-01-01", Genre: "rock",
	})

	t.Run("Existing", func(t *testing.T) {
		existed, err := repo.DeleteTrack(track.ID)
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if !existed {
			t.Error("expected delete to report an existing track")
		}

		if _, err := repo.GetTrackByID(track.ID); !errors.Is(err, ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound after delete, got %v", err)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		existed, err := repo.DeleteTrack(track.ID)
		if err != nil {
			t.Fatalf("second delete errored: %v", err)
		}
		if existed {
			t.Error("expected second delete to report nothing removed")
		}

		existed, err = repo.DeleteTrack("never-existed")
		if err != nil || existed {
			t.Errorf("expected (false, nil) for unknown id, got (%v, %v)", existed, err)
		}
	})
}

func TestSearchTracks(t *testing.T) {
	repo := NewMemoryTrackRepository()
	byTitle := mustCreate(t, repo, model.NewTrack{Title: "Pop Song", Artist: "Alice", ReleaseDate: "2024-01-01", Genre: "Rock"})
	byArtist := mustCreate(t, repo, model.NewTrack{Title: "Ballad", Artist: "Poppy Lane", ReleaseDate: "2024-01-02", Genre: "Folk"})
	byGenre := mustCreate(t, repo, model.NewTrack{Title: "Anthem", Artist: "Bob", ReleaseDate: "2024-01-03", Genre: "Pop"})
	mustCreate(t, repo, model.NewTrack{Title: "Quiet", Artist: "Carol", ReleaseDate: "2024-01-04", Genre: "Jazz"})

	t.Run("MatchesAnyField", func(t *testing.T) {
		tracks, err := repo.SearchTracks("pop")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(tracks) != 3 {
			t.Fatalf("expected 3 matches, got %d", len(tracks))
		}
		found := map[string]bool{}
		for _, tr := range tracks {
			found[tr.ID] = true
		}
		for _, want := range []*model.Track{byTitle, byArtist, byGenre} {
			if !found[want.ID] {
				t.Errorf("expected %q in results", want.Title)
			}
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		upper, err := repo.SearchTracks("POP")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(upper) != 3 {
			t.Errorf("expected 3 matches for POP, got %d", len(upper))
		}
	})

	t.Run("EmptyQueryMatchesAll", func(t *testing.T) {
		tracks, err := repo.SearchTracks("")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(tracks) != 4 {
			t.Errorf("expected all 4 tracks, got %d", len(tracks))
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		tracks, err := repo.SearchTracks("zzzz")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(tracks) != 0 {
			t.Errorf("expected no matches, got %d", len(tracks))
		}
	})

	t.Run("Ordering", func(t *testing.T) {
		// Search results carry the same newest-first ordering as ListTracks.
		tracks, err := repo.SearchTracks("pop")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		for i, want := range []*model.Track{byGenre, byArtist, byTitle} {
			if tracks[i].ID != want.ID {
				t.Errorf("position %d: expected %q, got %q", i, want.Title, tracks[i].Title)
			}
		}
	})
}

func TestFilterTracksByStatus(t *testing.T) {
	repo := NewMemoryTrackRepository()
	pending := mustCreate(t, repo, model.NewTrack{Title: "P", Artist: "x", ReleaseDate: "2024-01-01", Genre: "rock"})
	released := mustCreate(t, repo, model.NewTrack{Title: "R", Artist: "x", ReleaseDate: "2024-01-02", Genre: "rock"})

	status := model.StatusReleased
	if _, err := repo.UpdateTrack(released.ID, model.TrackUpdate{Status: &status}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	t.Run("ExactMatch", func(t *testing.T) {
		tracks, err := repo.FilterTracksByStatus(model.StatusPending)
		if err != nil {
			t.Fatalf("filter failed: %v", err)
		}
		if len(tracks) != 1 || tracks[0].ID != pending.ID {
			t.Errorf("expected only the pending track, got %d tracks", len(tracks))
		}
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		tracks, err := repo.FilterTracksByStatus("bogus")
		if err != nil {
			t.Fatalf("filter failed: %v", err)
		}
		if len(tracks) != 0 {
			t.Errorf("expected empty result for unknown status, got %d", len(tracks))
		}
	})
}

func TestSeedDemoTracks(t *testing.T) {
	repo := NewMemoryTrackRepository()
	if err := SeedDemoTracks(repo); err != nil {
		t.Fatalf("seeding failed: %v", err)
	}

	tracks, err := repo.ListTracks()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tracks) != 3 {
		t.Fatalf("expected 3 demo tracks, got %d", len(tracks))
	}

	released, err := repo.FilterTracksByStatus(model.StatusReleased)
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(released) != 1 || released[0].Title != "Midnight Dreams" {
		t.Errorf("expected Midnight Dreams to be released, got %+v", released)
	}
	if released[0].Streams != 125432 {
		t.Errorf("expected 125432 streams, got %d", released[0].Streams)
	}
}
