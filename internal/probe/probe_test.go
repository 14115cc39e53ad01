package probe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/wifiwatch/internal/config"
)

func TestNew(t *testing.T) {
	cfg := config.Default()

	cfg.Probe.Type = "http"
	p, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &HTTPProber{}, p)

	cfg.Probe.Type = "ping"
	p, err = New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &PingProber{}, p)

	cfg.Probe.Type = "dns"
	p, err = New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &DNSProber{}, p)

	cfg.Probe.Type = "carrier-pigeon"
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestAttempt_RetriesThenSucceeds(t *testing.T) {
	calls := 0
	err := attempt(context.Background(), 2, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestAttempt_ExhaustsRetries(t *testing.T) {
	calls := 0
	err := attempt(context.Background(), 2, func(ctx context.Context) error {
		calls++
		return errors.New("down")
	})
	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestAttempt_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := attempt(ctx, 5, func(ctx context.Context) error {
		calls++
		return errors.New("down")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestHTTPProber_AnyResponseIsReachable(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusInternalServerError, http.StatusNotFound} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodHead, r.Method)
			w.WriteHeader(status)
		}))

		p := NewHTTPProber(srv.URL, 0, 2*time.Second)
		assert.NoError(t, p.Probe(context.Background()), "status %d", status)
		srv.Close()
	}
}

func TestHTTPProber_RedirectNotFollowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://127.0.0.1:1/", http.StatusFound)
	}))
	defer srv.Close()

	p := NewHTTPProber(srv.URL, 0, 2*time.Second)
	assert.NoError(t, p.Probe(context.Background()))
}

func TestHTTPProber_TransportErrorFails(t *testing.T) {
	// Nothing listens on this port; the request fails at the dial.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	p := NewHTTPProber(addr, 1, time.Second)
	err := p.Probe(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "http probe")
}

func TestHTTPProber_BareHostGetsScheme(t *testing.T) {
	p := NewHTTPProber("www.google.com", 0, time.Second)
	assert.Equal(t, "http http://www.google.com/", p.Describe())

	p = NewHTTPProber("https://example.net/health", 0, time.Second)
	assert.Equal(t, "http https://example.net/health", p.Describe())
}

func TestHTTPProber_RetriesUntilServerResponds(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 2 {
			// Hijack and drop the connection to force a transport error.
			conn, _, err := w.(http.Hijacker).Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewHTTPProber(srv.URL, 2, 2*time.Second)
	assert.NoError(t, p.Probe(context.Background()))
	assert.Equal(t, 2, hits)
}

func TestDNSProber_ResolverNormalization(t *testing.T) {
	tests := []struct {
		target   string
		resolver string
		want     string
	}{
		{"example.com", "1.1.1.1", "dns example.com via 1.1.1.1:53"},
		{"example.com", "1.1.1.1:5353", "dns example.com via 1.1.1.1:5353"},
		{"9.9.9.9", "", "dns 9.9.9.9 via 9.9.9.9:53"},
	}
	for _, tt := range tests {
		p := NewDNSProber(tt.target, tt.resolver, 0, time.Second)
		assert.Equal(t, tt.want, p.Describe())
	}
}

func TestDNSProber_UnreachableResolverFails(t *testing.T) {
	p := NewDNSProber("example.com", "127.0.0.1:1", 0, 500*time.Millisecond)
	err := p.Probe(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dns probe")
}

func TestPingProber_Describe(t *testing.T) {
	p := NewPingProber("192.168.1.1", 2, time.Second)
	assert.Equal(t, "ping 192.168.1.1", p.Describe())
}
