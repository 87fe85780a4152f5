package model

// DashboardStats is a derived summary over the whole track collection,
// recomputed fresh on every request.
type DashboardStats struct {
	TotalTracks      int   `json:"totalTracks"`
	ReleasedTracks   int   `json:"releasedTracks"`
	PendingTracks    int   `json:"pendingTracks"`
	ProcessingTracks int   `json:"processingTracks"`
	TotalStreams     int64 `json:"totalStreams"`
}
