//go:build linux

package eventlog

import "log/slog"

// DefaultProvider is the log provider queried when none is given. On Linux the
// session lifecycle notifications come from systemd-logind.
const DefaultProvider = "systemd-logind"

// NewSystemSource returns the platform's native event log source.
func NewSystemSource(logger *slog.Logger) Source {
	return &JournalSource{Logger: logger}
}
