// Package nm wraps the NetworkManager CLI (nmcli) for the operations the
// watchdog needs: device state, radio state, and connection activation.
// All queries shell out and parse text output; nothing talks D-Bus.
package nm

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DeviceState is NetworkManager's numeric state code for a device.
type DeviceState int

// Known device states. NetworkManager defines more transitional codes;
// these four are the ones the remediation sequence branches on.
const (
	StateUnknown      DeviceState = 0
	StateUnmanaged    DeviceState = 10
	StateUnavailable  DeviceState = 20
	StateDisconnected DeviceState = 30
	StateConnected    DeviceState = 100
)

// String returns the nmcli name for the state.
func (s DeviceState) String() string {
	switch s {
	case StateUnmanaged:
		return "unmanaged"
	case StateUnavailable:
		return "unavailable"
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// stateRe matches the numeric code in nmcli's "GENERAL.STATE:100 (connected)"
// output, tolerating table-style output as well.
var stateRe = regexp.MustCompile(`(\d+)\s*\(([^)]*)\)`)

// Client issues nmcli commands through a CommandExecutor.
type Client struct {
	executor CommandExecutor
}

// NewClient creates a Client using the default executor.
func NewClient() *Client {
	return &Client{executor: DefaultCommandExecutor}
}

// NewClientWithExecutor creates a Client with an injected executor (tests).
func NewClientWithExecutor(exec CommandExecutor) *Client {
	return &Client{executor: exec}
}

// DeviceState queries the state code of a single device.
func (c *Client) DeviceState(ctx context.Context, iface string) (DeviceState, error) {
	out, err := c.executor.RunCommand(ctx, "nmcli", "-f", "GENERAL.STATE", "device", "show", iface)
	if err != nil {
		return StateUnknown, fmt.Errorf("device state query for %s failed: %w", iface, err)
	}
	return ParseDeviceState(out)
}

// ParseDeviceState extracts the numeric state code from nmcli output.
func ParseDeviceState(out string) (DeviceState, error) {
	m := stateRe.FindStringSubmatch(out)
	if m == nil {
		return StateUnknown, fmt.Errorf("no state code in output %q", strings.TrimSpace(out))
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return StateUnknown, fmt.Errorf("bad state code %q: %w", m[1], err)
	}
	switch s := DeviceState(code); s {
	case StateUnmanaged, StateUnavailable, StateDisconnected, StateConnected:
		return s, nil
	default:
		// Transitional codes (40-90) and anything newer pass through so
		// callers can log them verbatim.
		return DeviceState(code), nil
	}
}

// RadioEnabled reports whether the WiFi radio is administratively enabled.
func (c *Client) RadioEnabled(ctx context.Context) (bool, error) {
	out, err := c.executor.RunCommand(ctx, "nmcli", "radio", "wifi")
	if err != nil {
		return false, fmt.Errorf("radio state query failed: %w", err)
	}
	return strings.HasPrefix(strings.TrimSpace(out), "enabled"), nil
}

// EnableRadio turns the WiFi radio on. Requires privilege; the caller is
// expected to run under a scheduler entry with the needed rights.
func (c *Client) EnableRadio(ctx context.Context) error {
	if _, err := c.executor.RunCommand(ctx, "nmcli", "radio", "wifi", "on"); err != nil {
		return fmt.Errorf("radio enable failed: %w", err)
	}
	return nil
}

// ActiveConnectionCount counts active connections with the given name.
func (c *Client) ActiveConnectionCount(ctx context.Context, name string) (int, error) {
	out, err := c.executor.RunCommand(ctx, "nmcli", "-t", "-f", "NAME", "connection", "show", "--active")
	if err != nil {
		return 0, fmt.Errorf("active connection query failed: %w", err)
	}
	count := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == name {
			count++
		}
	}
	return count, nil
}

// ConnectionUp activates the named connection profile.
func (c *Client) ConnectionUp(ctx context.Context, name string) error {
	if _, err := c.executor.RunCommand(ctx, "nmcli", "connection", "up", "id", name); err != nil {
		return fmt.Errorf("connection up %s failed: %w", name, err)
	}
	return nil
}
