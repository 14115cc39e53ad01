// Package cmd contains the entry points for each subcommand.
package cmd

import (
	"fmt"
	"io"
	"os"

	"grimm.is/wifiwatch/internal/config"
	"grimm.is/wifiwatch/internal/logging"
	"grimm.is/wifiwatch/internal/nm"
	"grimm.is/wifiwatch/internal/probe"
	"grimm.is/wifiwatch/internal/watchdog"
)

// buildLogger assembles the log sink from config: console or JSON to
// stderr, optionally teed to remote syslog.
func buildLogger(cfg *config.Config) *logging.Logger {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logging.LevelInfo
	}

	var out io.Writer = os.Stderr
	if s := cfg.Log.Syslog; s != nil && s.Enabled {
		sw, err := logging.NewSyslogWriter(logging.SyslogConfig{
			Enabled:  true,
			Host:     s.Host,
			Port:     s.Port,
			Protocol: s.Protocol,
			Tag:      s.Tag,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "syslog unavailable, logging to stderr only: %v\n", err)
		} else {
			out = logging.MultiWriter(os.Stderr, sw)
		}
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Output: out,
		JSON:   cfg.Log.JSON,
	})
	logging.SetDefault(logger)
	return logger
}

// buildWatchdog wires the watchdog from config.
func buildWatchdog(cfg *config.Config, logger *logging.Logger) (*watchdog.Watchdog, error) {
	prober, err := probe.New(cfg)
	if err != nil {
		return nil, err
	}
	client := nm.NewClient()
	return watchdog.New(cfg, client, nm.DefaultNetlinker, prober, logger), nil
}

// loadConfig loads the config file, falling back to defaults on error so
// the watchdog still runs; the error is returned for logging.
func loadConfig(configFile string) (*config.Config, error) {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return config.Default(), err
	}
	return cfg, nil
}
