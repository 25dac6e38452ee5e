package ipv6

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"net/netip"

	gocidr "github.com/apparentlymart/go-cidr/cidr"

	"github.com/zlobste/ip6pool/addrset"
)

// maxPrealloc bounds the initial set allocation for very large counts.
const maxPrealloc = 1 << 20

// Generator draws random addresses inside a prefix. It holds no state other
// than its entropy source, so one Generator may serve any number of calls.
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

// Random returns exactly n distinct addresses from p. Every address keeps the
// network bits of p and carries a uniformly random host part. Duplicate draws
// are discarded and redrawn until the set holds n members. A valid prefix
// leaves at least 64 host bits, so any int count fits in its host space.
func (g *Generator) Random(p Prefix, n int) (*addrset.Set, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: zero prefix", ErrInvalidPrefix)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	base := p.IPNet()
	set := addrset.New(min(n, maxPrealloc))
	for set.Len() < n {
		suffix, err := randomBits(g.rand, p.HostBits())
		if err != nil {
			return nil, err
		}
		ip, err := gocidr.HostBig(base, suffix)
		if err != nil {
			return nil, fmt.Errorf("ipv6: host %s in %s: %w", suffix, p, err)
		}
		addr, ok := netip.AddrFromSlice(ip)
		if !ok {
			return nil, fmt.Errorf("ipv6: bad host address %v", ip)
		}
		set.Add(addr)
	}
	return set, nil
}

// randomBits reads a uniformly random non-negative integer of the given bit
// width from r.
func randomBits(r io.Reader, bits int) (*big.Int, error) {
	if bits <= 0 {
		return new(big.Int), nil
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("ipv6: read entropy: %w", err)
	}
	if extra := len(buf)*8 - bits; extra > 0 {
		buf[0] &= 0xff >> extra
	}
	return new(big.Int).SetBytes(buf), nil
}
