package probe

import (
	"context"
	"fmt"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// PingProber checks reachability with a single ICMP echo per attempt.
// Unprivileged (UDP) mode, so it works from a user service on hosts
// with ping_group_range configured.
type PingProber struct {
	target  string
	retries int
	timeout time.Duration
}

// NewPingProber creates an ICMP prober.
func NewPingProber(target string, retries int, timeout time.Duration) *PingProber {
	return &PingProber{target: target, retries: retries, timeout: timeout}
}

// Probe implements Prober.
func (p *PingProber) Probe(ctx context.Context) error {
	return attempt(ctx, p.retries, func(ctx context.Context) error {
		pinger, err := probing.NewPinger(p.target)
		if err != nil {
			return fmt.Errorf("failed to create pinger: %w", err)
		}

		pinger.Count = 1
		pinger.Timeout = p.timeout
		pinger.SetPrivileged(false)

		if err := pinger.RunWithContext(ctx); err != nil {
			return fmt.Errorf("ping %s failed: %w", p.target, err)
		}
		if pinger.Statistics().PacketsRecv == 0 {
			return fmt.Errorf("ping %s: packet loss", p.target)
		}
		return nil
	})
}

// Describe implements Prober.
func (p *PingProber) Describe() string {
	return fmt.Sprintf("ping %s", p.target)
}
