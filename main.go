package main

import (
	"flag"
	"fmt"
	"os"

	"grimm.is/wifiwatch/cmd"
	"grimm.is/wifiwatch/internal/brand"
)

func main() {
	// No arguments means a single check-and-recover cycle with the
	// default config: the bare scheduler-invocation contract.
	if len(os.Args) < 2 {
		cmd.RunOnce(brand.DefaultConfigPath())
		return
	}

	switch os.Args[1] {
	case "run":
		runFlags := flag.NewFlagSet("run", flag.ExitOnError)
		configFile := runFlags.String("config", brand.DefaultConfigPath(), "Configuration file")
		runFlags.StringVar(configFile, "c", brand.DefaultConfigPath(), "Configuration file (short)")
		runFlags.Parse(os.Args[2:])

		// Always exits 0; outcomes go to the log sink.
		cmd.RunOnce(*configFile)

	case "watch":
		watchFlags := flag.NewFlagSet("watch", flag.ExitOnError)
		configFile := watchFlags.String("config", brand.DefaultConfigPath(), "Configuration file")
		watchFlags.StringVar(configFile, "c", brand.DefaultConfigPath(), "Configuration file (short)")
		watchFlags.Parse(os.Args[2:])

		if err := cmd.RunWatch(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Watch failed: %v\n", err)
			os.Exit(1)
		}

	case "status":
		statusFlags := flag.NewFlagSet("status", flag.ExitOnError)
		configFile := statusFlags.String("config", brand.DefaultConfigPath(), "Configuration file")
		statusFlags.StringVar(configFile, "c", brand.DefaultConfigPath(), "Configuration file (short)")
		statusFlags.Parse(os.Args[2:])

		if err := cmd.RunStatus(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}

	case "check":
		checkFlags := flag.NewFlagSet("check", flag.ExitOnError)
		verbose := checkFlags.Bool("verbose", false, "Verbose output")
		checkFlags.BoolVar(verbose, "v", false, "Verbose output (short)")
		checkFlags.Parse(os.Args[2:])

		configFile := brand.DefaultConfigPath()
		if len(checkFlags.Args()) > 0 {
			configFile = checkFlags.Arg(0)
		}

		if err := cmd.RunCheck(configFile, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Check failed: %v\n", err)
			os.Exit(1)
		}

	case "version":
		fmt.Printf("%s version %s\n", brand.Name, brand.Version)
		fmt.Printf("Build: %s\n", brand.BuildTime)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - %s

Usage:
  %s [command] [options]

Commands:
  run       Single check-and-recover cycle (default when no command given)
            Options: --config (-c) <file>
  watch     Continuous mode: run cycles on an interval
            Options: --config (-c) <file>
  status    Show radio, device, connection and reachability state
            Options: --config (-c) <file>
  check     Validate a configuration file
            Options: --verbose (-v)
  version   Print version info

Examples:
  %s                       # one cycle, default config
  %s run -c ./wifiwatch.hcl
  %s watch                 # daemon mode
  %s check -v /etc/wifiwatch/wifiwatch.hcl
`,
		brand.Name, brand.Description,
		brand.LowerName,
		brand.LowerName, brand.LowerName, brand.LowerName, brand.LowerName)
}
