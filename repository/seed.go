package repository

import (
	"time"

	"DistroFM/model"
)

// SeedDemoTracks loads a small demo catalog into the repository. Intended
// for local development; enabled with SEED_DEMO_DATA=true.
func SeedDemoTracks(repo TrackRepository) error {
	samples := []struct {
		fields model.NewTrack
		update model.TrackUpdate
	}{
		{
			fields: model.NewTrack{
				Title:       "Midnight Dreams",
				Artist:      "Sarah Johnson",
				ReleaseDate: "2024-03-15",
				Genre:       "Pop",
				Description: "A captivating pop ballad exploring themes of love and hope.",
			},
			update: model.TrackUpdate{
				Status:   ptr(model.StatusReleased),
				Duration: ptr("3:24"),
				Streams:  ptrInt64(125432),
				Likes:    ptrInt64(8234),
				Shares:   ptrInt64(1542),
				Earnings: ptr("234.56"),
			},
		},
		{
			fields: model.NewTrack{
				Title:       "Electric Vibes",
				Artist:      "DJ Mike Chen",
				ReleaseDate: "2024-02-28",
				Genre:       "Electronic",
				Description: "High-energy electronic track with pulsating beats.",
			},
			update: model.TrackUpdate{Duration: ptr("4:12")},
		},
		{
			fields: model.NewTrack{
				Title:       "Summer Nights",
				Artist:      "The Wavelengths",
				ReleaseDate: "2024-04-02",
				Genre:       "Alternative",
				Description: "Indie rock anthem celebrating summer freedom.",
			},
			update: model.TrackUpdate{
				Status:   ptr(model.StatusProcessing),
				Duration: ptr("3:45"),
			},
		},
	}

	for _, s := range samples {
		track, err := repo.CreateTrack(s.fields)
		if err != nil {
			return err
		}
		if _, err := repo.UpdateTrack(track.ID, s.update); err != nil {
			return err
		}
		// Keep the demo creation timestamps apart so the default ordering
		// is visible in the UI.
		time.Sleep(time.Millisecond)
	}
	return nil
}

func ptr(s string) *string    { return &s }
func ptrInt64(n int64) *int64 { return &n }
