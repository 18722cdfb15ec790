package oracles

import (
	"fmt"
	"sync"

	"github.com/crucible-fi/crucible/libs/num"
)

// Builtin is a settable in-memory oracle, the single oracle implementation
// a standalone node runs with. The operator (or a test) pushes values in,
// the engines read them out. Implements both PriceOracle and RateOracle.
type Builtin struct {
	mu    sync.RWMutex
	spots map[string]num.Decimal // base|quote -> rate
	rates map[string]num.Decimal // series -> accrual
	stale bool
}

func NewBuiltin() *Builtin {
	return &Builtin{
		spots: map[string]num.Decimal{},
		rates: map[string]num.Decimal{},
	}
}

func spotKey(base, quote string) string {
	return fmt.Sprintf("%s|%s", base, quote)
}

func (b *Builtin) SetSpot(base, quote string, rate num.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.spots[spotKey(base, quote)] = rate
}

func (b *Builtin) SetAccrual(seriesID string, rate num.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rates[seriesID] = rate
}

// SetStale marks every value served by this oracle stale, used to
// exercise the abort path.
func (b *Builtin) SetStale(stale bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stale = stale
}

func (b *Builtin) Spot(base, quote string) (num.Decimal, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rate, ok := b.spots[spotKey(base, quote)]
	if !ok {
		return num.DecimalZero(), false, fmt.Errorf("no spot source for %s/%s", base, quote)
	}
	return rate, b.stale, nil
}

func (b *Builtin) Accrual(seriesID string) (num.Decimal, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rate, ok := b.rates[seriesID]
	if !ok {
		return num.DecimalZero(), false, fmt.Errorf("no accrual source for series %s", seriesID)
	}
	return rate, b.stale, nil
}
