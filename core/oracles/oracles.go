package oracles

import (
	"sync"

	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/libs/num"
)

// PriceOracle supplies the spot exchange rate from a base asset into a
// quote asset. The bool is the staleness indicator: a stale value must
// abort the enclosing transaction, it is never usable as a fallback.
type PriceOracle interface {
	Spot(base, quote string) (num.Decimal, bool, error)
}

// RateOracle supplies the interest accrual factor for a series.
type RateOracle interface {
	Accrual(seriesID string) (num.Decimal, bool, error)
}

// Service resolves oracle names from the registry into live oracle
// instances. Values are read at the point of use inside a transaction and
// never cached across transactions.
type Service struct {
	mu     sync.RWMutex
	prices map[string]PriceOracle
	rates  map[string]RateOracle
}

func NewService() *Service {
	return &Service{
		prices: map[string]PriceOracle{},
		rates:  map[string]RateOracle{},
	}
}

func (s *Service) RegisterPriceOracle(name string, o PriceOracle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[name] = o
}

func (s *Service) RegisterRateOracle(name string, o RateOracle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[name] = o
}

// Spot looks up the named price oracle and returns the live rate.
// Fails with StaleOracle if the oracle flags its value stale.
func (s *Service) Spot(name, base, quote string) (num.Decimal, error) {
	s.mu.RLock()
	o, ok := s.prices[name]
	s.mu.RUnlock()
	if !ok {
		return num.DecimalZero(), types.ErrOracleNotFound
	}
	rate, stale, err := o.Spot(base, quote)
	if err != nil {
		return num.DecimalZero(), err
	}
	if stale {
		return num.DecimalZero(), types.ErrStaleOracle
	}
	return rate, nil
}

// Accrual looks up the named rate oracle and returns the live accrual
// factor for the series.
func (s *Service) Accrual(name, seriesID string) (num.Decimal, error) {
	s.mu.RLock()
	o, ok := s.rates[name]
	s.mu.RUnlock()
	if !ok {
		return num.DecimalZero(), types.ErrOracleNotFound
	}
	rate, stale, err := o.Accrual(seriesID)
	if err != nil {
		return num.DecimalZero(), err
	}
	if stale {
		return num.DecimalZero(), types.ErrStaleOracle
	}
	return rate, nil
}
