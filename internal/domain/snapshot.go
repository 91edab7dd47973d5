package domain

// Snapshot is a one-shot reading of the counter, used outside the TUI
type Snapshot struct {
	Commits    int
	LastCommit LastCommit
	Owner      string
	Repo       string
	Sample     ElapsedSample // Zero unless the anchor is set
	AnchorSet  bool
	AnchorMs   int64
}
