// Package workday derives the day summary from an ordered session timeline.
package workday

import (
	"time"

	"github.com/codeGROOVE-dev/workday/pkg/lunch"
	"github.com/codeGROOVE-dev/workday/pkg/timeline"
)

// Summary is the condensed result for one day: first and last session events,
// the lunch break when one was found, and the net work time. First and Last
// are nil when the day has no events. Ongoing marks the still-open current
// day, where work time runs up to "now" instead of the last event.
type Summary struct {
	Date     time.Time
	First    *timeline.Event
	Last     *timeline.Event
	Lunch    *lunch.Break
	WorkTime time.Duration
	Ongoing  bool
}

// Summarize computes the day summary. For a closed day the work span is
// last event minus first event; for the ongoing day it is now minus the first
// event. The lunch duration, when present, is subtracted from the span.
// Negative results are not clamped.
func Summarize(day time.Time, events []timeline.Event, lb *lunch.Break, now time.Time, pastDay bool) Summary {
	s := Summary{
		Date:    day,
		Lunch:   lb,
		Ongoing: !pastDay,
	}
	if len(events) == 0 {
		return s
	}

	s.First = &events[0]
	s.Last = &events[len(events)-1]

	if pastDay {
		s.WorkTime = s.Last.Time.Sub(s.First.Time)
	} else {
		s.WorkTime = now.Sub(s.First.Time)
	}
	if lb != nil {
		s.WorkTime -= lb.Duration()
	}
	return s
}
