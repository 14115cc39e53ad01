// Package watchdog probes reachability and walks a bounded remediation
// sequence on failure: enable the radio, re-check the device, bring up
// the connection, re-probing after each action. All failures are local
// and non-fatal.
package watchdog

import (
	"context"

	"grimm.is/wifiwatch/internal/clock"
	"grimm.is/wifiwatch/internal/config"
	"grimm.is/wifiwatch/internal/logging"
	"grimm.is/wifiwatch/internal/metrics"
	"grimm.is/wifiwatch/internal/nm"
	"grimm.is/wifiwatch/internal/probe"
)

// NetworkManager is the slice of the nmcli client the watchdog drives.
type NetworkManager interface {
	DeviceState(ctx context.Context, iface string) (nm.DeviceState, error)
	RadioEnabled(ctx context.Context) (bool, error)
	EnableRadio(ctx context.Context) error
	ActiveConnectionCount(ctx context.Context, name string) (int, error)
	ConnectionUp(ctx context.Context, name string) error
}

// Remediation actions, used as log fields and metric labels.
const (
	ActionRadioOn      = "radio_on"
	ActionConnectionUp = "connection_up"
)

// Outcome summarizes one cycle.
type Outcome struct {
	Reachable   bool
	Recovered   bool // was unreachable, reachable after remediation
	Actions     []string
	DeviceState nm.DeviceState
}

// Watchdog runs check cycles. Not safe for concurrent use; one cycle at
// a time, matching the single-interface contract.
type Watchdog struct {
	cfg    *config.Config
	nmc    NetworkManager
	nl     nm.Netlinker
	prober probe.Prober
	clk    clock.Clock
	logger *logging.Logger

	// In-memory only; nothing persists between processes.
	recovering bool
	failures   int
}

// New creates a Watchdog.
func New(cfg *config.Config, nmc NetworkManager, nl nm.Netlinker, prober probe.Prober, logger *logging.Logger) *Watchdog {
	if logger == nil {
		logger = logging.New(logging.DefaultConfig())
	}
	return &Watchdog{
		cfg:    cfg,
		nmc:    nmc,
		nl:     nl,
		prober: prober,
		clk:    &clock.RealClock{},
		logger: logger.WithComponent("watchdog"),
	}
}

// SetClock injects a clock (tests).
func (w *Watchdog) SetClock(clk clock.Clock) {
	w.clk = clk
}

// Recovering reports whether the last cycle left the recovery flag set.
func (w *Watchdog) Recovering() bool {
	return w.recovering
}

// RunCycle performs one check-and-recover cycle. It never returns an
// error: every failure is logged and the cycle proceeds to its end.
func (w *Watchdog) RunCycle(ctx context.Context) Outcome {
	m := metrics.Get()
	m.CyclesTotal.Inc()
	defer func() { m.LastCycleUnix.Set(float64(w.clk.Now().Unix())) }()

	out := Outcome{}

	start := w.clk.Now()
	probeErr := w.prober.Probe(ctx)
	m.ProbeDurationMs.Observe(float64(w.clk.Since(start).Milliseconds()))

	if probeErr == nil {
		m.LastProbeOK.Set(1)
		if w.recovering {
			// Link came back without our help.
			w.logger.Info("connectivity restored", "probe", w.prober.Describe())
			w.recovering = false
		} else {
			w.logger.Debug("reachable", "probe", w.prober.Describe())
		}
		w.failures = 0
		out.Reachable = true
		return out
	}

	m.LastProbeOK.Set(0)
	m.ProbeFailures.Inc()
	w.failures++

	if w.failures < w.cfg.Recovery.FailThreshold {
		w.logger.Warn("probe failed",
			"probe", w.prober.Describe(),
			"error", probeErr,
			"consecutive", w.failures,
			"threshold", w.cfg.Recovery.FailThreshold)
		return out
	}

	w.recovering = true
	w.logger.Warn("connectivity lost, starting recovery",
		"probe", w.prober.Describe(),
		"error", probeErr,
		"interface", w.cfg.Interface)

	// A missing kernel device means the cause is outside our reach
	// (hardware gone, driver unloaded); don't loop through nmcli.
	if oper, err := w.nl.LinkOperState(w.cfg.Interface); err != nil {
		w.logger.Error("interface not present, cannot recover",
			"interface", w.cfg.Interface, "error", err)
		return out
	} else {
		w.logger.Debug("link state", "interface", w.cfg.Interface, "oper", oper)
	}

	// Phase 1: radio.
	if enabled, err := w.nmc.RadioEnabled(ctx); err != nil {
		w.logger.Error("radio state query failed", "error", err)
	} else {
		m.RadioEnabled.Set(boolGauge(enabled))
		if !enabled {
			w.logger.Warn("radio disabled, enabling")
			if err := w.nmc.EnableRadio(ctx); err != nil {
				w.logger.Error("radio enable failed", "error", err)
			} else {
				m.Remediations.WithLabelValues(ActionRadioOn).Inc()
				m.RadioEnabled.Set(1)
				out.Actions = append(out.Actions, ActionRadioOn)
				w.clk.Sleep(w.cfg.RadioSettle())
				if w.reprobe(ctx, ActionRadioOn, &out) {
					return out
				}
			}
		}
	}

	// Phase 2: device and connection.
	state, err := w.nmc.DeviceState(ctx, w.cfg.Interface)
	if err != nil {
		w.logger.Error("device state query failed",
			"interface", w.cfg.Interface, "error", err)
		return out
	}
	out.DeviceState = state
	m.DeviceState.Set(float64(state))

	switch state {
	case nm.StateConnected:
		count, err := w.nmc.ActiveConnectionCount(ctx, w.cfg.Connection)
		if err != nil {
			w.logger.Error("active connection query failed", "error", err)
			return out
		}
		if count > 0 {
			// Device and connection are up; the outage is upstream.
			w.logger.Error("connection active but target unreachable, cause is upstream",
				"connection", w.cfg.Connection)
			return out
		}
		w.connectionUp(ctx, &out)

	case nm.StateDisconnected:
		w.connectionUp(ctx, &out)

	case nm.StateUnavailable, nm.StateUnmanaged:
		w.logger.Error("device not recoverable from here",
			"interface", w.cfg.Interface, "state", state.String())

	default:
		w.logger.Warn("device in transitional state, leaving it alone",
			"interface", w.cfg.Interface, "state", state.String())
	}

	if !out.Reachable {
		w.logger.Error("recovery did not restore connectivity",
			"interface", w.cfg.Interface,
			"actions", len(out.Actions))
	}
	return out
}

// connectionUp brings the configured connection up and re-probes.
func (w *Watchdog) connectionUp(ctx context.Context, out *Outcome) {
	w.logger.Warn("bringing connection up", "connection", w.cfg.Connection)
	if err := w.nmc.ConnectionUp(ctx, w.cfg.Connection); err != nil {
		w.logger.Error("connection up failed",
			"connection", w.cfg.Connection, "error", err)
		return
	}
	metrics.Get().Remediations.WithLabelValues(ActionConnectionUp).Inc()
	out.Actions = append(out.Actions, ActionConnectionUp)
	w.clk.Sleep(w.cfg.ActionSettle())
	w.reprobe(ctx, ActionConnectionUp, out)
}

// reprobe re-checks reachability after a remediation action. Returns
// true and clears the recovery flag on success.
func (w *Watchdog) reprobe(ctx context.Context, action string, out *Outcome) bool {
	if err := w.prober.Probe(ctx); err != nil {
		w.logger.Warn("still unreachable after action",
			"action", action, "error", err)
		return false
	}
	m := metrics.Get()
	m.LastProbeOK.Set(1)
	m.Recoveries.Inc()
	w.logger.Info("connectivity recovered", "action", action)
	w.recovering = false
	w.failures = 0
	out.Reachable = true
	out.Recovered = true
	return true
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
