package ipv6

import (
	"fmt"
	"net"
	"net/netip"
	"regexp"
	"strings"

	"github.com/mdlayher/netx/eui64"
)

// macPattern matches exactly six colon separated two digit hex octets.
var macPattern = regexp.MustCompile(`^[0-9A-Fa-f]{2}(:[0-9A-Fa-f]{2}){5}$`)

// ParseMAC parses a 48-bit MAC address written as six colon separated hex
// octets, e.g. 00:1A:2B:3C:4D:5E. Other notations accepted by net.ParseMAC
// (dashes, dotted quads, EUI-64 or InfiniBand lengths) are rejected.
// Surrounding whitespace is ignored.
func ParseMAC(s string) (net.HardwareAddr, error) {
	in := strings.TrimSpace(s)
	if !macPattern.MatchString(in) {
		return nil, fmt.Errorf("%w %q: want 6 colon separated hex octets", ErrInvalidMAC, s)
	}
	mac, err := net.ParseMAC(in)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidMAC, s, err)
	}
	return mac, nil
}

// EUI64 derives the modified EUI-64 address for mac inside p: the
// universal/local bit of the first octet is flipped, ff:fe is inserted after
// the third octet and the resulting interface identifier fills the low 64
// bits of the network address. The result depends only on its inputs.
func EUI64(p Prefix, mac net.HardwareAddr) (netip.Addr, error) {
	if !p.IsValid() {
		return netip.Addr{}, fmt.Errorf("%w: zero prefix", ErrInvalidPrefix)
	}
	if len(mac) != 6 {
		return netip.Addr{}, fmt.Errorf("%w: %d octets, want 6", ErrInvalidMAC, len(mac))
	}
	ip, err := eui64.ParseMAC(p.Network().AsSlice(), mac)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("ipv6: eui-64 for %s in %s: %w", mac, p, err)
	}
	addr, ok := netip.AddrFromSlice(ip)
	if !ok {
		return netip.Addr{}, fmt.Errorf("ipv6: bad eui-64 address %v", ip)
	}
	return addr, nil
}

// DeriveEUI64 parses mac with ParseMAC and derives its address inside p.
func DeriveEUI64(p Prefix, mac string) (netip.Addr, error) {
	hw, err := ParseMAC(mac)
	if err != nil {
		return netip.Addr{}, err
	}
	return EUI64(p, hw)
}
