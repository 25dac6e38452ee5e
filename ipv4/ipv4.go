// Package ipv4 generates random IPv4 addresses over the whole 32-bit space.
package ipv4

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/netip"

	"github.com/zlobste/ip6pool/addrset"
)

// Sentinel errors
var (
	ErrInvalidCount          = errors.New("ipv4: invalid address count")
	ErrAddressSpaceExhausted = errors.New("ipv4: address count exceeds the 32-bit space")
)

const (
	spaceSize   = 1 << 32
	maxPrealloc = 1 << 20
)

// Generator draws random IPv4 addresses.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading entropy from r, or from
// crypto/rand when r is nil.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// Random returns exactly n distinct addresses drawn uniformly from the full
// IPv4 space. Reserved and special purpose ranges are not excluded.
func (g *Generator) Random(n int) (*addrset.Set, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if uint64(n) > spaceSize {
		return nil, fmt.Errorf("%w: %d", ErrAddressSpaceExhausted, n)
	}

	var buf [4]byte
	set := addrset.New(min(n, maxPrealloc))
	for set.Len() < n {
		if _, err := io.ReadFull(g.rand, buf[:]); err != nil {
			return nil, fmt.Errorf("ipv4: read entropy: %w", err)
		}
		set.Add(FromUint32(binary.BigEndian.Uint32(buf[:])))
	}
	return set, nil
}

// FromUint32 returns the address whose big-endian value is v.
func FromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}
