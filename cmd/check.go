package cmd

import (
	"fmt"
	"os"

	"grimm.is/wifiwatch/internal/brand"
	"grimm.is/wifiwatch/internal/config"
)

// RunCheck validates the configuration file syntax and semantics.
// Unlike run, this exits non-zero on bad config: validation is the
// whole point of the command.
func RunCheck(configFile string, verbose bool) error {
	if configFile == "" {
		return fmt.Errorf("usage: %s check [-v] <config-file>", brand.BinaryName)
	}
	if _, err := os.Stat(configFile); err != nil {
		return fmt.Errorf("cannot read %s: %w", configFile, err)
	}

	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	fmt.Println("Configuration valid!")
	if verbose {
		fmt.Printf("Interface:      %s\n", cfg.Interface)
		fmt.Printf("Connection:     %s\n", cfg.Connection)
		fmt.Printf("Probe:          %s %s (retries %d, timeout %s)\n",
			cfg.Probe.Type, cfg.Probe.Target, cfg.ProbeRetries(), cfg.ProbeTimeout())
		fmt.Printf("Radio settle:   %s\n", cfg.RadioSettle())
		fmt.Printf("Action settle:  %s\n", cfg.ActionSettle())
		fmt.Printf("Fail threshold: %d\n", cfg.Recovery.FailThreshold)
		fmt.Printf("Watch interval: %s\n", cfg.WatchInterval())
	}
	return nil
}
