package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/workday/pkg/lunch"
	"github.com/codeGROOVE-dev/workday/pkg/session"
	"github.com/codeGROOVE-dev/workday/pkg/timeline"
	"github.com/codeGROOVE-dev/workday/pkg/workday"
)

var day = time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)

func ev(index, hour, minute int, kind session.Kind) timeline.Event {
	return timeline.Event{
		Time:   day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute),
		Action: session.Action{Kind: kind},
		Index:  index,
	}
}

func plainOutput(t *testing.T, f func(p *Printer)) string {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	f(New(&buf, true))
	return buf.String()
}

func TestEventsListing(t *testing.T) {
	out := plainOutput(t, func(p *Printer) {
		p.Events([]timeline.Event{
			ev(0, 8, 12, session.KindLogin),
			ev(1, 12, 1, session.KindLock),
			ev(2, 12, 47, session.KindUnlock),
		})
	})
	for _, want := range []string{
		"[  0]  08:12:00  Login",
		"[  1]  12:01:00  Lock",
		"[  2]  12:47:00  Unlock",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestEventsListingUnknownRow(t *testing.T) {
	unknown := timeline.Event{
		Time:   day.Add(9*time.Hour + 30*time.Minute),
		Action: session.Classify("The shell has started."),
		Index:  timeline.UnknownIndex,
	}
	out := plainOutput(t, func(p *Printer) {
		p.Events([]timeline.Event{
			ev(0, 8, 12, session.KindLogin),
			unknown,
		})
	})
	if !strings.Contains(out, "[   ]  09:30:00  The shell has started.") {
		t.Errorf("Unknown row missing or misrendered:\n%s", out)
	}
	if strings.Contains(out, "[ -1]") {
		t.Errorf("Unknown row rendered a numeric index:\n%s", out)
	}
}

func TestEventsListingWithoutIndex(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	New(&buf, false).Events([]timeline.Event{ev(5, 8, 12, session.KindLogin)})
	out := buf.String()
	if strings.Contains(out, "[") {
		t.Errorf("index column shown without ShowIndex:\n%s", out)
	}
	if !strings.Contains(out, "08:12:00  Login") {
		t.Errorf("listing missing row:\n%s", out)
	}
}

func TestSummaryFullDay(t *testing.T) {
	first := ev(0, 9, 0, session.KindLogin)
	last := ev(3, 17, 30, session.KindLogout)
	lockEv := ev(1, 12, 0, session.KindLock)
	unlockEv := ev(2, 12, 45, session.KindUnlock)
	s := workday.Summary{
		Date:     day,
		First:    &first,
		Last:     &last,
		Lunch:    &lunch.Break{Start: lockEv, End: unlockEv},
		WorkTime: 7*time.Hour + 45*time.Minute,
	}

	out := plainOutput(t, func(p *Printer) { p.Summary(s) })

	for _, want := range []string{
		"Friday 2026-08-28",
		"First login:   09:00:00",
		"12:00:00 → 12:45:00 (45m00s)",
		"Work time:     7h45m",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "until now") {
		t.Errorf("closed day marked ongoing:\n%s", out)
	}
}

func TestSummaryOngoingDay(t *testing.T) {
	first := ev(0, 9, 0, session.KindLogin)
	s := workday.Summary{
		Date:     day,
		First:    &first,
		Last:     &first,
		WorkTime: 3 * time.Hour,
		Ongoing:  true,
	}
	out := plainOutput(t, func(p *Printer) { p.Summary(s) })
	if !strings.Contains(out, "3h00m (until now)") {
		t.Errorf("ongoing annotation missing:\n%s", out)
	}
	if !strings.Contains(out, "no lunch break found") {
		t.Errorf("missing no-lunch line:\n%s", out)
	}
}

func TestSummaryEmptyDayWording(t *testing.T) {
	today := plainOutput(t, func(p *Printer) {
		p.Summary(workday.Summary{Date: day, Ongoing: true})
	})
	if !strings.Contains(today, "No session events found for today (yet).") {
		t.Errorf("today wording missing:\n%s", today)
	}

	past := plainOutput(t, func(p *Printer) {
		p.Summary(workday.Summary{Date: day})
	})
	if !strings.Contains(past, "No session events found on 2026-08-28.") {
		t.Errorf("past-day wording missing:\n%s", past)
	}
	if strings.Contains(past, "First login") {
		t.Errorf("empty day printed summary lines:\n%s", past)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{7*time.Hour + 45*time.Minute, "7h45m"},
		{7*time.Hour + 45*time.Minute + 12*time.Second, "7h45m"},
		{49*time.Minute + 25*time.Second, "49m25s"},
		{8 * time.Second, "8s"},
		{0, "0s"},
		{-90 * time.Minute, "-1h30m"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
