package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"grimm.is/wifiwatch/internal/nm"
	"grimm.is/wifiwatch/internal/probe"
	"grimm.is/wifiwatch/internal/watchdog"
)

// RunStatus prints a read-only snapshot of radio, device, connection and
// reachability state. No remediation happens.
func RunStatus(configFile string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	prober, err := probe.New(cfg)
	if err != nil {
		return err
	}

	st := watchdog.Snapshot(context.Background(), cfg, nm.NewClient(), nm.DefaultNetlinker, prober)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Interface:\t%s\n", st.Interface)
	fmt.Fprintf(w, "Connection:\t%s\n", st.Connection)
	if st.LinkError != "" {
		fmt.Fprintf(w, "Link:\tmissing (%s)\n", st.LinkError)
	} else {
		fmt.Fprintf(w, "Link:\t%s\n", st.LinkOper)
	}
	if st.RadioError != "" {
		fmt.Fprintf(w, "Radio:\tunknown (%s)\n", st.RadioError)
	} else {
		fmt.Fprintf(w, "Radio:\t%s\n", onOff(st.RadioEnabled))
	}
	if st.DeviceError != "" {
		fmt.Fprintf(w, "Device:\tunknown (%s)\n", st.DeviceError)
	} else {
		fmt.Fprintf(w, "Device:\t%s (%d)\n", st.DeviceState.String(), int(st.DeviceState))
	}
	fmt.Fprintf(w, "Active connections:\t%d\n", st.ActiveConnections)
	if st.Reachable {
		fmt.Fprintf(w, "Reachability:\tok (%s)\n", prober.Describe())
	} else {
		fmt.Fprintf(w, "Reachability:\tFAILED (%s): %s\n", prober.Describe(), st.ProbeError)
	}
	return w.Flush()
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
