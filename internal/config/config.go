// Package config provides HCL configuration handling for the watchdog.
package config

import (
	"time"
)

// Default values matching the original hard-coded deployment.
const (
	DefaultInterface  = "wlan0"
	DefaultConnection = "home"

	DefaultProbeType    = "http"
	DefaultProbeTarget  = "www.google.com"
	DefaultProbeRetries = 2

	DefaultProbeTimeout  = 5 * time.Second
	DefaultRadioSettle   = 10 * time.Second
	DefaultActionSettle  = 5 * time.Second
	DefaultFailThreshold = 1
	DefaultWatchInterval = 60 * time.Second
)

// Config is the root configuration.
type Config struct {
	Interface  string `hcl:"interface,optional"`
	Connection string `hcl:"connection,optional"`

	Probe    *ProbeConfig    `hcl:"probe,block"`
	Recovery *RecoveryConfig `hcl:"recovery,block"`
	Log      *LogConfig      `hcl:"log,block"`
	Watch    *WatchConfig    `hcl:"watch,block"`
}

// ProbeConfig selects and tunes the reachability probe.
type ProbeConfig struct {
	Type     string `hcl:"type,optional"`     // http | ping | dns
	Target   string `hcl:"target,optional"`   // host to probe
	Resolver string `hcl:"resolver,optional"` // dns probe only; host:port
	// Pointer so an explicit retries = 0 survives defaulting.
	Retries *int   `hcl:"retries,optional"`
	Timeout string `hcl:"timeout,optional"` // per-attempt
}

// RecoveryConfig tunes the remediation sequence.
type RecoveryConfig struct {
	RadioSettle   string `hcl:"radio_settle,optional"`  // wait after radio on
	ActionSettle  string `hcl:"action_settle,optional"` // wait before re-probe
	FailThreshold int    `hcl:"fail_threshold,optional"`
}

// LogConfig configures the log sink.
type LogConfig struct {
	Level  string        `hcl:"level,optional"`
	JSON   bool          `hcl:"json,optional"`
	Syslog *SyslogConfig `hcl:"syslog,block"`
}

// SyslogConfig configures the remote syslog sink.
type SyslogConfig struct {
	Enabled  bool   `hcl:"enabled,optional"`
	Host     string `hcl:"host,optional"`
	Port     int    `hcl:"port,optional"`
	Protocol string `hcl:"protocol,optional"`
	Tag      string `hcl:"tag,optional"`
}

// WatchConfig configures continuous mode.
type WatchConfig struct {
	Interval      string `hcl:"interval,optional"`
	MetricsListen string `hcl:"metrics_listen,optional"` // empty disables /metrics
}

// Default returns a config populated with built-in defaults.
func Default() *Config {
	c := &Config{}
	c.normalize()
	return c
}

// normalize fills in nil blocks and unset scalars so accessors never
// have to nil-check.
func (c *Config) normalize() {
	if c.Interface == "" {
		c.Interface = DefaultInterface
	}
	if c.Connection == "" {
		c.Connection = DefaultConnection
	}
	if c.Probe == nil {
		c.Probe = &ProbeConfig{}
	}
	if c.Probe.Type == "" {
		c.Probe.Type = DefaultProbeType
	}
	if c.Probe.Target == "" {
		c.Probe.Target = DefaultProbeTarget
	}
	if c.Probe.Retries == nil {
		r := DefaultProbeRetries
		c.Probe.Retries = &r
	}
	if c.Recovery == nil {
		c.Recovery = &RecoveryConfig{}
	}
	if c.Recovery.FailThreshold == 0 {
		c.Recovery.FailThreshold = DefaultFailThreshold
	}
	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Watch == nil {
		c.Watch = &WatchConfig{}
	}
}

// parseDuration parses s, falling back to def when s is empty.
func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}

// ProbeRetries returns the probe retry count.
func (c *Config) ProbeRetries() int {
	if c.Probe.Retries == nil {
		return DefaultProbeRetries
	}
	return *c.Probe.Retries
}

// ProbeTimeout returns the per-attempt probe timeout.
func (c *Config) ProbeTimeout() time.Duration {
	d, err := parseDuration(c.Probe.Timeout, DefaultProbeTimeout)
	if err != nil {
		return DefaultProbeTimeout
	}
	return d
}

// RadioSettle returns the delay after enabling the radio.
func (c *Config) RadioSettle() time.Duration {
	d, err := parseDuration(c.Recovery.RadioSettle, DefaultRadioSettle)
	if err != nil {
		return DefaultRadioSettle
	}
	return d
}

// ActionSettle returns the delay between a remediation action and the
// re-probe that judges it.
func (c *Config) ActionSettle() time.Duration {
	d, err := parseDuration(c.Recovery.ActionSettle, DefaultActionSettle)
	if err != nil {
		return DefaultActionSettle
	}
	return d
}

// WatchInterval returns the cycle interval for watch mode.
func (c *Config) WatchInterval() time.Duration {
	d, err := parseDuration(c.Watch.Interval, DefaultWatchInterval)
	if err != nil {
		return DefaultWatchInterval
	}
	return d
}
