//go:build !linux && !windows

package eventlog

import (
	"context"
	"errors"
	"log/slog"
)

// DefaultProvider is the log provider queried when none is given.
const DefaultProvider = "systemd-logind"

// NewSystemSource returns a source that always fails: there is no native
// event log reader on this platform. Use a replay file instead.
func NewSystemSource(_ *slog.Logger) Source {
	return unsupportedSource{}
}

type unsupportedSource struct{}

func (unsupportedSource) Records(context.Context, string) ([]Record, error) {
	return nil, errors.New("no system event log source on this platform")
}
