package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"grimm.is/wifiwatch/internal/metrics"
	"grimm.is/wifiwatch/internal/scheduler"
)

// RunWatch runs check cycles continuously on the configured interval
// until SIGINT/SIGTERM.
func RunWatch(configFile string) error {
	cfg, cfgErr := loadConfig(configFile)
	logger := buildLogger(cfg)
	if cfgErr != nil {
		logger.Error("config unusable, running with defaults",
			"file", configFile, "error", cfgErr)
	}

	wd, err := buildWatchdog(cfg, logger)
	if err != nil {
		return err
	}

	if addr := cfg.Watch.MetricsListen; addr != "" {
		go func() {
			logger.Info("metrics listener starting", "addr", addr)
			if err := metrics.Serve(addr); err != nil {
				logger.Error("metrics listener failed", "addr", addr, "error", err)
			}
		}()
	}

	sched := scheduler.New(logger)
	interval := cfg.WatchInterval()
	if err := sched.AddTask(&scheduler.Task{
		ID:         "check-cycle",
		Name:       "connectivity check cycle",
		Schedule:   scheduler.Every(interval),
		Enabled:    true,
		RunOnStart: true,
		// A cycle blocked on nmcli must not outlive its slot.
		Timeout: interval,
		Func: func(ctx context.Context) error {
			wd.RunCycle(ctx)
			return nil
		},
	}); err != nil {
		return err
	}

	logger.Info("watch mode started",
		"interface", cfg.Interface,
		"connection", cfg.Connection,
		"interval", interval)

	sched.Start()
	defer sched.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	logger.Info("shutting down", "signal", s.String())
	return nil
}
