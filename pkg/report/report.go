// Package report renders the day's events and summary to the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/workday/pkg/session"
	"github.com/codeGROOVE-dev/workday/pkg/timeline"
	"github.com/codeGROOVE-dev/workday/pkg/workday"
)

// Printer writes the report. ShowIndex adds the original-index column to the
// full event listing.
type Printer struct {
	out       io.Writer
	showIndex bool
}

// New returns a Printer writing to out.
func New(out io.Writer, showIndex bool) *Printer {
	return &Printer{out: out, showIndex: showIndex}
}

var (
	headerColor  = color.New(color.Bold)
	loginColor   = color.New(color.FgGreen)
	lockColor    = color.New(color.FgYellow)
	unlockColor  = color.New(color.FgCyan)
	logoutColor  = color.New(color.FgRed)
	unknownColor = color.New(color.Faint)
)

func actionColor(kind session.Kind) *color.Color {
	switch kind {
	case session.KindLogin:
		return loginColor
	case session.KindLock:
		return lockColor
	case session.KindUnlock:
		return unlockColor
	case session.KindLogout:
		return logoutColor
	default:
		return unknownColor
	}
}

// Events prints the full annotated listing, one row per event. The index
// column shows each event's position in the unsliced day sequence; Unknown
// rows have no position and get an empty index cell.
func (p *Printer) Events(events []timeline.Event) {
	for _, ev := range events {
		label := actionColor(ev.Action.Kind).Sprint(ev.Action.String())
		if p.showIndex {
			index := "   "
			if ev.Index != timeline.UnknownIndex {
				index = fmt.Sprintf("%3d", ev.Index)
			}
			fmt.Fprintf(p.out, "  [%s]  %s  %s\n", index, ev.Time.Format("15:04:05"), label)
		} else {
			fmt.Fprintf(p.out, "  %s  %s\n", ev.Time.Format("15:04:05"), label)
		}
	}
	fmt.Fprintln(p.out)
}

// Summary prints the condensed day report: first login, lunch break, net work
// time. An empty day prints only the "no events" line.
func (p *Printer) Summary(s workday.Summary) {
	fmt.Fprintf(p.out, "📅 %s\n", headerColor.Sprint(s.Date.Format("Monday 2006-01-02")))
	fmt.Fprintln(p.out, strings.Repeat("─", 50))

	if s.First == nil {
		if s.Ongoing {
			fmt.Fprintln(p.out, "No session events found for today (yet).")
		} else {
			fmt.Fprintf(p.out, "No session events found on %s.\n", s.Date.Format("2006-01-02"))
		}
		return
	}

	fmt.Fprintf(p.out, "🔑 First login:   %s\n", s.First.Time.Format("15:04:05"))

	if s.Lunch != nil {
		fmt.Fprintf(p.out, "🍽️  Lunch break:   %s → %s (%s)\n",
			s.Lunch.Start.Time.Format("15:04:05"),
			s.Lunch.End.Time.Format("15:04:05"),
			formatDuration(s.Lunch.Duration()))
	} else {
		fmt.Fprintln(p.out, "🍽️  Lunch break:   no lunch break found")
	}

	workLine := formatDuration(s.WorkTime)
	if s.Ongoing {
		workLine += " (until now)"
	}
	fmt.Fprintf(p.out, "⏱️  Work time:     %s\n", workLine)
}

// formatDuration renders a duration as compact hours/minutes/seconds, e.g.
// "7h45m", "49m25s", "8s". Seconds are dropped once hours are involved.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	switch {
	case h > 0:
		return fmt.Sprintf("%s%dh%02dm", sign, h, m)
	case m > 0:
		return fmt.Sprintf("%s%dm%02ds", sign, m, s)
	default:
		return fmt.Sprintf("%s%ds", sign, s)
	}
}
