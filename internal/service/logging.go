package service

import (
	"net/netip"

	"github.com/go-logr/logr"

	"github.com/zlobste/ip6pool/addrset"
	"github.com/zlobste/ip6pool/internal/export"
	"github.com/zlobste/ip6pool/ipv6"
)

type loggingService struct {
	logger logr.Logger
	next   Service
}

// NewLogging wraps next so that every failure and every save is logged.
// Returned values are passed through untouched.
func NewLogging(logger logr.Logger, next Service) Service {
	if next == nil || logger.GetSink() == nil {
		return next
	}

	return &loggingService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingService) ValidatePrefix(prefix string) (ipv6.Prefix, error) {
	p, err := s.next.ValidatePrefix(prefix)
	if err != nil {
		s.logger.Error(err, "Invalid IPv6 prefix", "prefix", prefix)
	}
	return p, err
}

func (s *loggingService) GenerateIPv6(prefix ipv6.Prefix, count int) (*addrset.Set, error) {
	set, err := s.next.GenerateIPv6(prefix, count)
	if err != nil {
		s.logger.Error(err, "Generate IPv6 addresses failed", "prefix", prefix.String(), "count", count)
		return nil, err
	}

	s.logger.V(1).Info("Generated IPv6 addresses", "prefix", prefix.String(), "count", set.Len())
	return set, nil
}

func (s *loggingService) GenerateIPv4(count int) (*addrset.Set, error) {
	set, err := s.next.GenerateIPv4(count)
	if err != nil {
		s.logger.Error(err, "Generate IPv4 addresses failed", "count", count)
		return nil, err
	}

	s.logger.V(1).Info("Generated IPv4 addresses", "count", set.Len())
	return set, nil
}

func (s *loggingService) DeriveEUI64(prefix ipv6.Prefix, mac string) (netip.Addr, error) {
	addr, err := s.next.DeriveEUI64(prefix, mac)
	if err != nil {
		s.logger.Error(err, "Derive EUI-64 address failed", "prefix", prefix.String(), "mac", mac)
		return netip.Addr{}, err
	}

	s.logger.V(1).Info("Derived EUI-64 address", "prefix", prefix.String(), "mac", mac, "address", addr.String())
	return addr, nil
}

func (s *loggingService) Save(path string, addrs []string, format export.Format) error {
	if err := s.next.Save(path, addrs, format); err != nil {
		s.logger.Error(err, "Save addresses failed", "file", path, "format", string(format))
		return err
	}

	s.logger.Info("Saved addresses", "count", len(addrs), "file", path, "format", string(format))
	return nil
}
