package watchdog

import (
	"context"

	"grimm.is/wifiwatch/internal/config"
	"grimm.is/wifiwatch/internal/nm"
	"grimm.is/wifiwatch/internal/probe"
)

// Status is a read-only snapshot of the link, taken without remediation.
type Status struct {
	Interface         string
	Connection        string
	LinkOper          string
	LinkError         string
	RadioEnabled      bool
	RadioError        string
	DeviceState       nm.DeviceState
	DeviceError       string
	ActiveConnections int
	Reachable         bool
	ProbeError        string
}

// Snapshot queries everything the watchdog would look at, but acts on
// nothing. Individual query failures land in the per-field error slots.
func Snapshot(ctx context.Context, cfg *config.Config, nmc NetworkManager, nl nm.Netlinker, prober probe.Prober) Status {
	st := Status{
		Interface:  cfg.Interface,
		Connection: cfg.Connection,
	}

	if oper, err := nl.LinkOperState(cfg.Interface); err != nil {
		st.LinkError = err.Error()
	} else {
		st.LinkOper = oper
	}

	if enabled, err := nmc.RadioEnabled(ctx); err != nil {
		st.RadioError = err.Error()
	} else {
		st.RadioEnabled = enabled
	}

	if state, err := nmc.DeviceState(ctx, cfg.Interface); err != nil {
		st.DeviceError = err.Error()
	} else {
		st.DeviceState = state
	}

	if count, err := nmc.ActiveConnectionCount(ctx, cfg.Connection); err == nil {
		st.ActiveConnections = count
	}

	if err := prober.Probe(ctx); err != nil {
		st.ProbeError = err.Error()
	} else {
		st.Reachable = true
	}

	return st
}
