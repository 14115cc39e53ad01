//go:build linux

package nm

import (
	"github.com/vishvananda/netlink"
)

// RealNetlinker reads link state from the kernel via netlink.
type RealNetlinker struct{}

// DefaultNetlinker is the platform netlinker.
var DefaultNetlinker Netlinker = &RealNetlinker{}

// LinkOperState returns the operational state string of the named link
// (e.g. "up", "down", "dormant"). A missing link returns an error.
func (r *RealNetlinker) LinkOperState(name string) (string, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return "", err
	}
	return link.Attrs().OperState.String(), nil
}
