//go:build !linux

package nm

import "fmt"

// StubNetlinker satisfies Netlinker on platforms without netlink.
// Development convenience only; the watchdog targets Linux.
type StubNetlinker struct{}

// DefaultNetlinker is the platform netlinker.
var DefaultNetlinker Netlinker = &StubNetlinker{}

// LinkOperState always fails on non-Linux platforms.
func (s *StubNetlinker) LinkOperState(name string) (string, error) {
	return "", fmt.Errorf("netlink not supported on this platform")
}
