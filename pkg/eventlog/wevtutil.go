package eventlog

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// WevtutilSource reads records from the Windows event log by shelling out to
// wevtutil in rendered-XML mode. Channel is the event channel to query, e.g.
// "Microsoft-Windows-Winlogon/Operational".
type WevtutilSource struct {
	Logger  *slog.Logger
	Channel string
}

// winEvent mirrors the pieces of the rendered event XML we consume: the
// provider name and creation time from <System>, the rendered message text
// from <RenderingInfo>.
type winEvent struct {
	System struct {
		Provider struct {
			Name string `xml:"Name,attr"`
		} `xml:"Provider"`
		TimeCreated struct {
			SystemTime string `xml:"SystemTime,attr"`
		} `xml:"TimeCreated"`
	} `xml:"System"`
	RenderingInfo struct {
		Message string `xml:"Message"`
	} `xml:"RenderingInfo"`
}

// Records implements Source by querying the configured channel.
func (w *WevtutilSource) Records(ctx context.Context, provider string) ([]Record, error) {
	channel := w.Channel
	if channel == "" {
		channel = provider
	}
	cmd := exec.CommandContext(ctx, "wevtutil", "qe", channel, "/f:renderedxml")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running wevtutil: %w", err)
	}

	records, err := parseRenderedEvents(bytes.NewReader(out))
	if err != nil {
		return nil, err
	}
	if w.Logger != nil {
		w.Logger.Debug("event channel read", "channel", channel, "records", len(records))
	}
	return records, nil
}

// parseRenderedEvents decodes a stream of concatenated <Event> elements, the
// shape wevtutil emits (no wrapping root element).
func parseRenderedEvents(r io.Reader) ([]Record, error) {
	var records []Record
	dec := xml.NewDecoder(r)
	for {
		var ev winEvent
		err := dec.Decode(&ev)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding event XML: %w", err)
		}

		created, err := time.Parse(time.RFC3339Nano, ev.System.TimeCreated.SystemTime)
		if err != nil {
			// Events without a parseable creation time are useless to the
			// timeline; skip rather than fail the whole fetch.
			continue
		}
		records = append(records, Record{
			Time:     created.Local(),
			Provider: ev.System.Provider.Name,
			Message:  strings.TrimSpace(ev.RenderingInfo.Message),
		})
	}
}
