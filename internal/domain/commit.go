package domain

// Placeholder glyphs for values that have not resolved
const (
	SymbolMissing = "–" // No discoverable commit
	SymbolPending = "…" // Resolution still in flight
)

// CommitCount is the estimated number of commits in a repository.
// Known is false until the resolver has answered.
type CommitCount struct {
	Known bool
	Value int
}

// ResolvedCommitCount returns a known commit count
func ResolvedCommitCount(n int) CommitCount {
	if n < 0 {
		n = 0
	}
	return CommitCount{Known: true, Value: n}
}

// LastCommitState describes how far last-commit resolution has progressed
type LastCommitState int

const (
	LastCommitUnknown LastCommitState = iota // Resolution in flight
	LastCommitNone                           // Repository or branch has no discoverable commit
	LastCommitKnown                          // Millis holds the timestamp
)

// LastCommit is the most recent push/commit time of a repository
type LastCommit struct {
	Millis int64 // Epoch milliseconds, only meaningful when State is LastCommitKnown
	State  LastCommitState
}

// ResolvedLastCommit builds a LastCommit from a resolver answer
func ResolvedLastCommit(millis int64, found bool) LastCommit {
	if !found {
		return LastCommit{State: LastCommitNone}
	}
	return LastCommit{Millis: millis, State: LastCommitKnown}
}

// IsResolved reports whether resolution has finished, with or without a commit
func (c LastCommit) IsResolved() bool {
	return c.State != LastCommitUnknown
}
