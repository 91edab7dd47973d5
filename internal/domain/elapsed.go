package domain

// MillisPerDay is the number of milliseconds in a day
const MillisPerDay int64 = 24 * 60 * 60 * 1000

// ElapsedSample is the derived display value recomputed on every clock tick.
// It is always replaced wholesale, never mutated.
type ElapsedSample struct {
	Days      int64
	ElapsedMs int64
}

// Anchor is the reference instant elapsed time is measured from.
// A fixed anchor comes from configuration; a dynamic one is set once from the
// fetched last-commit time. Once Set, the anchor does not move for the
// lifetime of a view.
type Anchor struct {
	Fixed  bool
	Millis int64
	Set    bool
}

// FixedAnchor returns an anchor that is already set from configuration
func FixedAnchor(millis int64) Anchor {
	return Anchor{Fixed: true, Millis: millis, Set: true}
}

// DynamicAnchor returns an unset anchor that waits for the last-commit time
func DynamicAnchor() Anchor {
	return Anchor{}
}

// Resolve sets a dynamic anchor the first time it is called.
// Fixed or already-set anchors are returned unchanged.
func (a Anchor) Resolve(millis int64) Anchor {
	if a.Set {
		return a
	}
	return Anchor{Millis: millis, Set: true}
}
