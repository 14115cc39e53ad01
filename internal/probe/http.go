package probe

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPProber issues a spider-style HEAD request. Any HTTP response,
// including 4xx/5xx, proves the network path works; only transport
// errors count as unreachable.
type HTTPProber struct {
	url     string
	retries int
	timeout time.Duration
	client  *http.Client
}

// NewHTTPProber creates an HTTP prober for the given host or URL.
func NewHTTPProber(target string, retries int, timeout time.Duration) *HTTPProber {
	url := target
	if !strings.Contains(url, "://") {
		url = "http://" + url + "/"
	}
	return &HTTPProber{
		url:     url,
		retries: retries,
		timeout: timeout,
		client: &http.Client{
			// Redirects still prove reachability; don't follow them.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Probe implements Prober.
func (p *HTTPProber) Probe(ctx context.Context) error {
	return attempt(ctx, p.retries, func(ctx context.Context) error {
		attemptCtx, cancel := withTimeout(ctx, p.timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(attemptCtx, http.MethodHead, p.url, nil)
		if err != nil {
			return fmt.Errorf("building probe request: %w", err)
		}

		resp, err := p.client.Do(req)
		if err != nil {
			return fmt.Errorf("http probe to %s failed: %w", p.url, err)
		}
		resp.Body.Close()
		return nil
	})
}

// Describe implements Prober.
func (p *HTTPProber) Describe() string {
	return fmt.Sprintf("http %s", p.url)
}
