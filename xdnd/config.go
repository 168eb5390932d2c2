package xdnd

import (
	"log/slog"
	"time"
)

// Config configures an Engine. Zero values are replaced with sensible
// defaults by NewEngine, matching dfx's own Config/New() pattern (app.go).
type Config struct {
	// ProtocolVersion is the XDND protocol version this destination
	// negotiates (default 5). An enter message advertising a higher
	// version is refused rather than mis-negotiated.
	ProtocolVersion int

	// ResponseTimeout is the bounded delay the engine waits for a source
	// response before treating it as a fault (default 3000ms).
	ResponseTimeout time.Duration

	// Log receives warnings for malformed property reads, selection
	// failures and message send failures, and one debug-level entry when
	// the watchdog cancels a drag; individual state transitions are not
	// logged. Defaults to slog.Default().
	Log *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.ProtocolVersion == 0 {
		c.ProtocolVersion = XDNDVersion
	}
	if c.ResponseTimeout == 0 {
		c.ResponseTimeout = ResponseTimeout
	}
	if c.Log == nil {
		c.Log = slog.Default()
	}
	return c
}
