package logging

import (
	"bytes"
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// udpSink is a throwaway UDP listener standing in for a syslog server.
type udpSink struct {
	conn net.PacketConn
	port int
}

func listenUDP(t *testing.T) (*udpSink, error) {
	t.Helper()
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	return &udpSink{
		conn: conn,
		port: conn.LocalAddr().(*net.UDPAddr).Port,
	}, nil
}

func (s *udpSink) read(t *testing.T) string {
	t.Helper()
	s.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 4096)
	n, _, err := s.conn.ReadFrom(buf)
	require.NoError(t, err)
	return string(buf[:n])
}

func (s *udpSink) close() {
	s.conn.Close()
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf})

	logger.Info("connectivity lost", "interface", "wlan0")

	out := buf.String()
	assert.Contains(t, out, "wifiwatch[")
	assert.Contains(t, out, "[info]")
	assert.Contains(t, out, "connectivity lost")
	assert.Contains(t, out, "interface=wlan0")
}

func TestConsoleOutput_ComponentPromotedToHeader(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf}).WithComponent("watchdog")

	logger.Info("cycle complete")

	out := buf.String()
	assert.Contains(t, out, "watchdog: cycle complete")
	assert.NotContains(t, out, "component=")
}

func TestConsoleOutput_QuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf})

	logger.Warn("probe failed", "error", "no route to host")

	assert.Contains(t, buf.String(), `error="no route to host"`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")

	logger.SetLevel(LevelDebug)
	logger.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf, JSON: true}).WithComponent("nm")

	logger.Info("radio enabled", "interface", "wlan0")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "radio enabled", rec["msg"])
	assert.Equal(t, "nm", rec["component"])
	assert.Equal(t, "wlan0", rec["interface"])
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf}).
		WithFields(map[string]any{"connection": "home"})

	logger.Info("bringing connection up")

	assert.Contains(t, buf.String(), "connection=home")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"", LevelInfo, false},
		{"info", LevelInfo, false},
		{"debug", LevelDebug, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestSyslogWriter_RequiresHost(t *testing.T) {
	_, err := NewSyslogWriter(SyslogConfig{Enabled: true})
	assert.Error(t, err)
}

func TestSyslogWriter_WritesRFC3164(t *testing.T) {
	pc, err := listenUDP(t)
	require.NoError(t, err)
	defer pc.close()

	w, err := NewSyslogWriter(SyslogConfig{
		Enabled:  true,
		Host:     "127.0.0.1",
		Port:     pc.port,
		Protocol: "udp",
		Facility: 1,
	})
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Write([]byte("probe failed"))
	require.NoError(t, err)

	msg := pc.read(t)
	assert.True(t, strings.HasPrefix(msg, "<14>"), "priority header, got %q", msg)
	assert.Contains(t, msg, "wifiwatch")
	assert.Contains(t, msg, "probe failed")
}
