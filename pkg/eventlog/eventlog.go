// Package eventlog reads session lifecycle records from the host's event log.
//
// The rest of the pipeline only needs the Source interface: given a provider
// name, return every available record with a timestamp and a message. Filtering
// to one day happens downstream, so sources stay dumb and replayable.
package eventlog

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Record is one raw entry from the event log.
type Record struct {
	Time     time.Time `json:"time"`
	Provider string    `json:"provider"`
	Message  string    `json:"message"`
}

// Source supplies all available log records for a provider. A failed fetch is
// fatal to the run; sources never retry.
type Source interface {
	Records(ctx context.Context, provider string) ([]Record, error)
}

// FileSource replays records captured to a newline-delimited JSON file, one
// Record object per line. Blank lines are skipped.
type FileSource struct {
	Path   string
	Logger *slog.Logger
}

// Records implements Source.
func (f *FileSource) Records(_ context.Context, _ string) ([]Record, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening replay file: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only

	var records []Record
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s line %d: %w", f.Path, line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Path, err)
	}
	if f.Logger != nil {
		f.Logger.Debug("replay file loaded", "path", f.Path, "records", len(records))
	}
	return records, nil
}
