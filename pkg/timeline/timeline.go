// Package timeline turns raw log records into one day's ordered session events.
package timeline

import (
	"errors"
	"sort"
	"time"

	"github.com/codeGROOVE-dev/workday/pkg/eventlog"
	"github.com/codeGROOVE-dev/workday/pkg/session"
)

// Event is one classified session event in a day's sequence. Index is the
// 0-based position in the fully sorted, recognized day sequence and is
// assigned before any range restriction, so a sliced view still shows true
// positions. Listing-only Unknown rows carry UnknownIndex.
type Event struct {
	Time   time.Time
	Action session.Action
	Index  int
}

// UnknownIndex marks listing-only rows that hold no position in the
// recognized day sequence.
const UnknownIndex = -1

// Build selects the records for one calendar day and provider, classifies
// them, and returns the recognized session events sorted ascending by
// timestamp. The day interval is half-open: midnight is included, the next
// midnight is not. Equal timestamps keep their source log order (stable sort).
func Build(records []eventlog.Record, day time.Time, provider string) []Event {
	events := collect(records, day, provider, false)
	for i := range events {
		events[i].Index = i
	}
	return events
}

// BuildListing returns the rows for the full listing: the recognized day
// sequence with the provider's unrecognized messages interleaved in timestamp
// order. Recognized rows carry the same Index Build assigns; Unknown rows
// carry UnknownIndex and take no part in analysis or range bounds.
func BuildListing(records []eventlog.Record, day time.Time, provider string) []Event {
	events := collect(records, day, provider, true)
	index := 0
	for i := range events {
		if events[i].Action.Recognized() {
			events[i].Index = index
			index++
		} else {
			events[i].Index = UnknownIndex
		}
	}
	return events
}

func collect(records []eventlog.Record, day time.Time, provider string, withUnknown bool) []Event {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var events []Event
	for _, rec := range records {
		if rec.Provider != provider {
			continue
		}
		if rec.Time.Before(dayStart) || !rec.Time.Before(dayEnd) {
			continue
		}
		action := session.Classify(rec.Message)
		if !withUnknown && !action.Recognized() {
			continue
		}
		events = append(events, Event{Time: rec.Time, Action: action})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	return events
}

// Range restricts a day sequence to an inclusive [From, To] index window.
// Nil bounds are open ends.
type Range struct {
	From *int
	To   *int
}

// Validation errors for range bounds, one per violated rule.
var (
	ErrFromNegative = errors.New("from must be ≥ 0")
	ErrFromTooLarge = errors.New("from must be less than total event count")
	ErrToTooLarge   = errors.New("to must be less than total event count")
	ErrToTooSmall   = errors.New("to must be ≥ 1")
	ErrFromAfterTo  = errors.New("from must be ≤ to")
)

// Apply returns the subsequence selected by the range. Bounds are validated
// against the full sequence before anything else; a violated rule aborts with
// its error and no subsequence. Events keep the Index they were assigned in
// the full sequence.
func (r Range) Apply(events []Event) ([]Event, error) {
	count := len(events)
	if r.From != nil {
		if *r.From < 0 {
			return nil, ErrFromNegative
		}
		if *r.From >= count {
			return nil, ErrFromTooLarge
		}
	}
	if r.To != nil {
		if *r.To >= count {
			return nil, ErrToTooLarge
		}
		if *r.To < 1 {
			return nil, ErrToTooSmall
		}
	}
	if r.From != nil && r.To != nil && *r.From > *r.To {
		return nil, ErrFromAfterTo
	}

	from := 0
	if r.From != nil {
		from = *r.From
	}
	to := count - 1
	if r.To != nil {
		to = *r.To
	}
	if count == 0 {
		return events, nil
	}
	return events[from : to+1], nil
}
