package config

import (
	"fmt"
	"time"
)

// Validate checks the configuration for semantic errors.
// It assumes normalize has already run.
func (c *Config) Validate() error {
	if c.Interface == "" {
		return fmt.Errorf("interface is required")
	}
	if c.Connection == "" {
		return fmt.Errorf("connection is required")
	}

	switch c.Probe.Type {
	case "http", "ping", "dns":
	default:
		return fmt.Errorf("probe type must be http, ping or dns, got %q", c.Probe.Type)
	}
	if c.Probe.Target == "" {
		return fmt.Errorf("probe target is required")
	}
	if c.ProbeRetries() < 0 {
		return fmt.Errorf("probe retries must not be negative")
	}

	for _, d := range []struct {
		name  string
		value string
	}{
		{"probe.timeout", c.Probe.Timeout},
		{"recovery.radio_settle", c.Recovery.RadioSettle},
		{"recovery.action_settle", c.Recovery.ActionSettle},
		{"watch.interval", c.Watch.Interval},
	} {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", d.name, err)
		}
		if parsed <= 0 {
			return fmt.Errorf("%s must be positive", d.name)
		}
	}

	if c.Recovery.FailThreshold < 1 {
		return fmt.Errorf("recovery.fail_threshold must be at least 1")
	}

	if s := c.Log.Syslog; s != nil && s.Enabled {
		if s.Host == "" {
			return fmt.Errorf("log.syslog.host is required when syslog is enabled")
		}
		switch s.Protocol {
		case "", "udp", "tcp":
		default:
			return fmt.Errorf("log.syslog.protocol must be udp or tcp, got %q", s.Protocol)
		}
	}

	if c.Log.Level != "" {
		switch c.Log.Level {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("unknown log level %q", c.Log.Level)
		}
	}

	return nil
}
