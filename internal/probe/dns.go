package probe

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/miekg/dns"
)

// DNSProber resolves an A record against a specific resolver. Useful on
// networks where ICMP is filtered and captive portals hijack HTTP: a
// well-formed DNS response (even NXDOMAIN) proves the path to the
// resolver works.
type DNSProber struct {
	name     string
	resolver string
	retries  int
	timeout  time.Duration
}

// NewDNSProber creates a DNS prober. With an empty resolver the target
// itself is queried on port 53.
func NewDNSProber(target, resolver string, retries int, timeout time.Duration) *DNSProber {
	if resolver == "" {
		resolver = target
	}
	if _, _, err := net.SplitHostPort(resolver); err != nil {
		resolver = net.JoinHostPort(resolver, strconv.Itoa(53))
	}
	return &DNSProber{
		name:     target,
		resolver: resolver,
		retries:  retries,
		timeout:  timeout,
	}
}

// Probe implements Prober.
func (p *DNSProber) Probe(ctx context.Context) error {
	client := &dns.Client{Timeout: p.timeout}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(p.name), dns.TypeA)

	return attempt(ctx, p.retries, func(ctx context.Context) error {
		resp, _, err := client.ExchangeContext(ctx, msg, p.resolver)
		if err != nil {
			return fmt.Errorf("dns probe via %s failed: %w", p.resolver, err)
		}
		if resp == nil {
			return fmt.Errorf("dns probe via %s: empty response", p.resolver)
		}
		return nil
	})
}

// Describe implements Prober.
func (p *DNSProber) Describe() string {
	return fmt.Sprintf("dns %s via %s", p.name, p.resolver)
}
