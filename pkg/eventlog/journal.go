package eventlog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"time"
)

// JournalSource reads records from systemd-journald by shelling out to
// journalctl in JSON output mode. One journal entry per line.
type JournalSource struct {
	Logger *slog.Logger
}

// journalEntry is the subset of journalctl -o json fields we care about.
// MESSAGE is a RawMessage because the journal emits non-UTF-8 payloads as a
// byte array instead of a string; those entries are skipped.
type journalEntry struct {
	RealtimeTimestamp string          `json:"__REALTIME_TIMESTAMP"`
	SourceTimestamp   string          `json:"_SOURCE_REALTIME_TIMESTAMP"`
	Message           json.RawMessage `json:"MESSAGE"`
	SyslogIdentifier  string          `json:"SYSLOG_IDENTIFIER"`
}

// Records implements Source by running journalctl filtered to the provider's
// syslog identifier.
func (j *JournalSource) Records(ctx context.Context, provider string) ([]Record, error) {
	cmd := exec.CommandContext(ctx, "journalctl",
		"--output=json", "--no-pager", "--quiet",
		"-t", provider)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running journalctl: %w", err)
	}

	var records []Record
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 256*1024), 1024*1024)
	skipped := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		rec, ok, err := parseJournalLine(line)
		if err != nil {
			return nil, fmt.Errorf("decoding journal entry: %w", err)
		}
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning journalctl output: %w", err)
	}
	if j.Logger != nil {
		j.Logger.Debug("journal read", "provider", provider, "records", len(records), "skipped", skipped)
	}
	return records, nil
}

// parseJournalLine decodes one journalctl JSON line into a Record. The second
// return is false for entries without a usable timestamp or string message.
func parseJournalLine(line []byte) (Record, bool, error) {
	var entry journalEntry
	if err := json.Unmarshal(line, &entry); err != nil {
		return Record{}, false, err
	}

	// Prefer the source timestamp (when the originator logged it) over the
	// journal's own receive time.
	stamp := entry.SourceTimestamp
	if stamp == "" {
		stamp = entry.RealtimeTimestamp
	}
	if stamp == "" {
		return Record{}, false, nil
	}
	usec, err := strconv.ParseInt(stamp, 10, 64)
	if err != nil {
		return Record{}, false, nil
	}

	var message string
	if err := json.Unmarshal(entry.Message, &message); err != nil {
		// Non-string MESSAGE (byte array for non-UTF-8 data): skip.
		return Record{}, false, nil
	}

	return Record{
		Time:     time.UnixMicro(usec).Local(),
		Provider: entry.SyslogIdentifier,
		Message:  message,
	}, true, nil
}
