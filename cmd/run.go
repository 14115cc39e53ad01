package cmd

import (
	"context"

	"grimm.is/wifiwatch/internal/config"
)

// RunOnce performs a single check-and-recover cycle. It always returns
// nil: the contract for scheduler-driven invocation is that outcomes go
// to the log sink, never to the exit code.
func RunOnce(configFile string) error {
	cfg, cfgErr := loadConfig(configFile)
	logger := buildLogger(cfg)
	if cfgErr != nil {
		logger.Error("config unusable, running with defaults",
			"file", configFile, "error", cfgErr)
	}

	// One-shot mode has no cycle history to smooth over; act on the
	// first failure regardless of the configured threshold.
	cfg.Recovery.FailThreshold = config.DefaultFailThreshold

	wd, err := buildWatchdog(cfg, logger)
	if err != nil {
		logger.Error("cannot build watchdog", "error", err)
		return nil
	}

	wd.RunCycle(context.Background())
	return nil
}
