// Package probe implements the reachability checks the watchdog judges
// connectivity by. A probe answers one question: can this host be
// reached right now. Failures carry the last attempt's error.
package probe

import (
	"context"
	"fmt"
	"time"

	"grimm.is/wifiwatch/internal/config"
)

// Prober checks whether the configured target is reachable.
type Prober interface {
	// Probe returns nil when the target is reachable.
	Probe(ctx context.Context) error
	// Describe returns a short human-readable probe description for logs.
	Describe() string
}

// New builds a Prober from the probe configuration.
func New(cfg *config.Config) (Prober, error) {
	pc := cfg.Probe
	switch pc.Type {
	case "http":
		return NewHTTPProber(pc.Target, cfg.ProbeRetries(), cfg.ProbeTimeout()), nil
	case "ping":
		return NewPingProber(pc.Target, cfg.ProbeRetries(), cfg.ProbeTimeout()), nil
	case "dns":
		return NewDNSProber(pc.Target, pc.Resolver, cfg.ProbeRetries(), cfg.ProbeTimeout()), nil
	}
	return nil, fmt.Errorf("unknown probe type %q", pc.Type)
}

// attempt runs fn up to retries+1 times, stopping on first success or
// when ctx is done.
func attempt(ctx context.Context, retries int, fn func(ctx context.Context) error) error {
	var lastErr error
	for i := 0; i <= retries; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}
	}
	return lastErr
}

// withTimeout derives a per-attempt context.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
