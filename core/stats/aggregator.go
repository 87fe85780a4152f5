// Package stats derives dashboard summary counters from a track snapshot.
// The summary is recomputed fresh on every call; there is no caching or
// incremental maintenance.
package stats

import "DistroFM/model"

// Aggregate folds the given tracks into a DashboardStats. An empty input
// yields all-zero stats.
func Aggregate(tracks []*model.Track) model.DashboardStats {
	var s model.DashboardStats
	s.TotalTracks = len(tracks)
	for _, t := range tracks {
		switch t.Status {
		case model.StatusReleased:
			s.ReleasedTracks++
		case model.StatusPending:
			s.PendingTracks++
		case model.StatusProcessing:
			s.ProcessingTracks++
		}
		if t.Streams > 0 {
			s.TotalStreams += t.Streams
		}
	}
	return s
}
