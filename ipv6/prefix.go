// Package ipv6 provides the IPv6 side of address pool generation: bounded
// prefix validation, random address generation inside a prefix and modified
// EUI-64 address derivation from a MAC address.
package ipv6

import (
	"errors"
	"fmt"
	"math/big"
	"net"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// Prefix length bounds accepted by ParsePrefix.
const (
	MinPrefixLength = 16
	MaxPrefixLength = 64
)

// Sentinel errors
var (
	ErrInvalidPrefix = errors.New("ipv6: invalid prefix")
	ErrInvalidMAC    = errors.New("ipv6: invalid mac address")
	ErrInvalidCount  = errors.New("ipv6: invalid address count")
)

// Prefix is a validated IPv6 network: a masked base address plus a prefix
// length in [MinPrefixLength, MaxPrefixLength]. The zero value is not valid.
type Prefix struct {
	p netip.Prefix
}

// ParsePrefix parses "address/length" text. Host bits in the address are
// masked off rather than rejected, whatever they spell, including an
// IPv4-mapped tail.
func ParsePrefix(s string) (Prefix, error) {
	in := strings.TrimSpace(s)
	p, err := netip.ParsePrefix(in)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w %q: not an IPv6 network", ErrInvalidPrefix, s)
	}
	if !p.Addr().Is6() {
		return Prefix{}, fmt.Errorf("%w %q: not an IPv6 network", ErrInvalidPrefix, s)
	}
	if p.Bits() < MinPrefixLength || p.Bits() > MaxPrefixLength {
		return Prefix{}, fmt.Errorf("%w %q: length must be between /%d and /%d", ErrInvalidPrefix, s, MinPrefixLength, MaxPrefixLength)
	}
	return Prefix{p: p.Masked()}, nil
}

// MustParsePrefix is like ParsePrefix but panics on error.
func MustParsePrefix(s string) Prefix {
	p, err := ParsePrefix(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the network in canonical form.
func (p Prefix) String() string { return p.p.String() }

// Network returns the network (base) address.
func (p Prefix) Network() netip.Addr { return p.p.Addr() }

// Bits returns the prefix length.
func (p Prefix) Bits() int { return p.p.Bits() }

// HostBits returns the number of bits left for the host portion.
func (p Prefix) HostBits() int { return 128 - p.p.Bits() }

// IsValid reports whether p was produced by ParsePrefix.
func (p Prefix) IsValid() bool { return p.p.IsValid() }

// Contains reports whether a lies inside the network.
func (p Prefix) Contains(a netip.Addr) bool { return p.p.Contains(a) }

// IPNet converts the prefix to the older net package form.
func (p Prefix) IPNet() *net.IPNet {
	return &net.IPNet{
		IP:   p.p.Addr().AsSlice(),
		Mask: net.CIDRMask(p.p.Bits(), 128),
	}
}

// First returns the first address of the network (the network address).
func (p Prefix) First() netip.Addr { return netipx.RangeOfPrefix(p.p).From() }

// Last returns the last address of the network.
func (p Prefix) Last() netip.Addr { return netipx.RangeOfPrefix(p.p).To() }

// HostCount returns the number of addresses in the network.
func (p Prefix) HostCount() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(p.HostBits()))
}
