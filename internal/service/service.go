// Package service exposes the address pool operations behind one interface so
// that command surfaces share validation, generation and logging.
package service

import (
	"net/netip"

	"github.com/zlobste/ip6pool/addrset"
	"github.com/zlobste/ip6pool/internal/export"
	"github.com/zlobste/ip6pool/ipv4"
	"github.com/zlobste/ip6pool/ipv6"
)

// Service is the set of operations offered to callers.
type Service interface {
	ValidatePrefix(prefix string) (ipv6.Prefix, error)
	GenerateIPv6(prefix ipv6.Prefix, count int) (*addrset.Set, error)
	GenerateIPv4(count int) (*addrset.Set, error)
	DeriveEUI64(prefix ipv6.Prefix, mac string) (netip.Addr, error)
	Save(path string, addrs []string, format export.Format) error
}

type service struct {
	v6 *ipv6.Generator
	v4 *ipv4.Generator
}

// New returns a Service backed by the given generators. Nil generators use
// crypto/rand.
func New(v6 *ipv6.Generator, v4 *ipv4.Generator) Service {
	if v6 == nil {
		v6 = ipv6.NewGenerator(nil)
	}
	if v4 == nil {
		v4 = ipv4.NewGenerator(nil)
	}
	return &service{v6: v6, v4: v4}
}

func (s *service) ValidatePrefix(prefix string) (ipv6.Prefix, error) {
	return ipv6.ParsePrefix(prefix)
}

func (s *service) GenerateIPv6(prefix ipv6.Prefix, count int) (*addrset.Set, error) {
	return s.v6.Random(prefix, count)
}

func (s *service) GenerateIPv4(count int) (*addrset.Set, error) {
	return s.v4.Random(count)
}

func (s *service) DeriveEUI64(prefix ipv6.Prefix, mac string) (netip.Addr, error) {
	return ipv6.DeriveEUI64(prefix, mac)
}

func (s *service) Save(path string, addrs []string, format export.Format) error {
	return export.Save(path, addrs, format)
}
