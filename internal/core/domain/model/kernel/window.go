package kernel

import "time"

// EffectiveWindow bounds the validity of a configuration record.
// A nil bound is unbounded on that side. Both bounds are inclusive.
type EffectiveWindow struct {
	From  *time.Time
	Until *time.Time
}

// Contains reports whether now falls inside the window.
func (w EffectiveWindow) Contains(now time.Time) bool {
	if w.From != nil && now.Before(*w.From) {
		return false
	}
	if w.Until != nil && now.After(*w.Until) {
		return false
	}
	return true
}
