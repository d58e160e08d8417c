//go:build windows

package eventlog

import "log/slog"

// DefaultProvider is the log provider queried when none is given. Winlogon
// emits the SessionLogon/SessionLock/SessionUnlock/SessionLogoff
// notifications.
const DefaultProvider = "Microsoft-Windows-Winlogon"

// NewSystemSource returns the platform's native event log source.
func NewSystemSource(logger *slog.Logger) Source {
	return &WevtutilSource{
		Logger:  logger,
		Channel: DefaultProvider + "/Operational",
	}
}
