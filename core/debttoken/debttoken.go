package debttoken

import (
	"sync"

	"github.com/crucible-fi/crucible/libs/num"

	"github.com/pkg/errors"
)

var (
	ErrInsufficientBalance = errors.New("insufficient debt token balance")
	ErrUnknownToken        = errors.New("unknown debt token")
)

// Adapter mints and burns the fixed maturity debt instrument in lockstep
// with the ledger's art changes. The ledger only tracks the numeric debt,
// the adapter owns the token level effect.
type Adapter interface {
	Mint(tokenID, to string, amount *num.Uint) error
	Burn(tokenID, from string, amount *num.Uint) error
	BalanceOf(tokenID, holder string) (*num.Uint, error)
	TotalSupply(tokenID string) (*num.Uint, error)
}

// Builtin is the in-memory debt token implementation used by a standalone
// node and by tests.
type Builtin struct {
	mu     sync.Mutex
	tokens map[string]*token
}

type token struct {
	balances map[string]*num.Uint
	supply   *num.Uint
}

func NewBuiltin() *Builtin {
	return &Builtin{
		tokens: map[string]*token{},
	}
}

// EnableToken registers a debt token. Idempotent.
func (b *Builtin) EnableToken(tokenID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.tokens[tokenID]; !ok {
		b.tokens[tokenID] = &token{
			balances: map[string]*num.Uint{},
			supply:   num.UintZero(),
		}
	}
}

func (b *Builtin) Mint(tokenID, to string, amount *num.Uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.tokens[tokenID]
	if !ok {
		return errors.Wrap(ErrUnknownToken, tokenID)
	}
	bal, ok := t.balances[to]
	if !ok {
		bal = num.UintZero()
		t.balances[to] = bal
	}
	bal.AddSum(amount)
	t.supply.AddSum(amount)
	return nil
}

func (b *Builtin) Burn(tokenID, from string, amount *num.Uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.tokens[tokenID]
	if !ok {
		return errors.Wrap(ErrUnknownToken, tokenID)
	}
	bal, ok := t.balances[from]
	if !ok || bal.LT(amount) {
		return errors.Wrapf(ErrInsufficientBalance, "burn %s of %s from %s", amount, tokenID, from)
	}
	bal.Sub(bal, amount)
	t.supply.Sub(t.supply, amount)
	return nil
}

func (b *Builtin) BalanceOf(tokenID, holder string) (*num.Uint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.tokens[tokenID]
	if !ok {
		return nil, errors.Wrap(ErrUnknownToken, tokenID)
	}
	bal, ok := t.balances[holder]
	if !ok {
		return num.UintZero(), nil
	}
	return bal.Clone(), nil
}

func (b *Builtin) TotalSupply(tokenID string) (*num.Uint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.tokens[tokenID]
	if !ok {
		return nil, errors.Wrap(ErrUnknownToken, tokenID)
	}
	return t.supply.Clone(), nil
}
