// Package lunch finds the longest lock/unlock interval inside the midday window.
package lunch

import (
	"time"

	"github.com/codeGROOVE-dev/workday/pkg/session"
	"github.com/codeGROOVE-dev/workday/pkg/timeline"
)

// The candidate window, in local time-of-day hours: [11:00, 14:00).
const (
	WindowStartHour = 11
	WindowEndHour   = 14
)

// Break is a Lock→Unlock pair, both endpoints inside the lunch window.
type Break struct {
	Start timeline.Event
	End   timeline.Event
}

// Duration is the elapsed time between lock and unlock.
func (b Break) Duration() time.Duration {
	return b.End.Time.Sub(b.Start.Time)
}

// FindLongestBreak scans the day's events once and returns the longest
// Lock→Unlock pair whose endpoints both fall inside the lunch window, or nil
// when no pair exists.
//
// The scan keeps a single open-lock slot. A Lock inside the window overwrites
// any earlier unclosed lock. An Unlock inside the window closes the open lock
// into a candidate and clears the slot; the candidate is kept only while no
// longer pair has been seen. An Unlock with no open lock is ignored, as is
// every event outside the window — a Lock at 13:59 whose Unlock lands at 14:05
// is never paired, just abandoned.
func FindLongestBreak(events []timeline.Event) *Break {
	var open *timeline.Event
	var best *Break

	for i := range events {
		ev := events[i]
		if !InWindow(ev.Time) {
			continue
		}
		switch ev.Action.Kind {
		case session.KindLock:
			open = &events[i]
		case session.KindUnlock:
			if open == nil {
				continue
			}
			candidate := Break{Start: *open, End: ev}
			if best == nil || candidate.Duration() > best.Duration() {
				best = &candidate
			}
			open = nil
		default:
		}
	}
	return best
}

// InWindow reports whether t's local time-of-day falls in [11:00, 14:00).
func InWindow(t time.Time) bool {
	h := t.Hour()
	return h >= WindowStartHour && h < WindowEndHour
}
