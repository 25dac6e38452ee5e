// Package addrset holds generated IP addresses with set semantics.
package addrset

import (
	"net/netip"
	"slices"

	"github.com/samber/lo"
)

// Set is an unordered collection of distinct addresses. It is not safe for
// concurrent use.
type Set struct {
	m map[netip.Addr]struct{}
}

// New returns an empty set sized for capacity addresses.
func New(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{m: make(map[netip.Addr]struct{}, capacity)}
}

// Of returns a set holding addrs.
func Of(addrs ...netip.Addr) *Set {
	s := New(len(addrs))
	for _, a := range addrs {
		s.Add(a)
	}
	return s
}

// Add inserts a and reports whether it was not already present.
func (s *Set) Add(a netip.Addr) bool {
	if _, ok := s.m[a]; ok {
		return false
	}
	s.m[a] = struct{}{}
	return true
}

// Contains reports whether a is in the set.
func (s *Set) Contains(a netip.Addr) bool {
	_, ok := s.m[a]
	return ok
}

// Len returns the number of addresses.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Addrs returns the members in ascending order.
func (s *Set) Addrs() []netip.Addr {
	if s == nil {
		return nil
	}
	out := lo.Keys(s.m)
	slices.SortFunc(out, netip.Addr.Compare)
	return out
}

// Strings returns the members in ascending order, formatted.
func (s *Set) Strings() []string {
	return lo.Map(s.Addrs(), func(a netip.Addr, _ int) string { return a.String() })
}
