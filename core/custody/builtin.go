package custody

import (
	"sync"

	"github.com/crucible-fi/crucible/libs/num"

	"github.com/pkg/errors"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownAsset      = errors.New("unknown asset")
)

// Builtin is an in-memory custody gateway for a standalone node and for
// tests. Each registered asset tracks per-holder free balances plus the
// amount held in the join (system custody).
type Builtin struct {
	mu     sync.Mutex
	assets map[string]*join
}

type join struct {
	balances map[string]*num.Uint
	held     *num.Uint
}

func NewBuiltin() *Builtin {
	return &Builtin{
		assets: map[string]*join{},
	}
}

// EnableAsset registers an asset with the gateway. Idempotent.
func (b *Builtin) EnableAsset(assetID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.assets[assetID]; !ok {
		b.assets[assetID] = &join{
			balances: map[string]*num.Uint{},
			held:     num.UintZero(),
		}
	}
}

// Mint credits a holder with new units of the asset. Test and bootstrap
// only, real deployments would receive deposits from a chain bridge.
func (b *Builtin) Mint(assetID, holder string, amount *num.Uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	j, ok := b.assets[assetID]
	if !ok {
		return errors.Wrap(ErrUnknownAsset, assetID)
	}
	bal, ok := j.balances[holder]
	if !ok {
		bal = num.UintZero()
		j.balances[holder] = bal
	}
	bal.AddSum(amount)
	return nil
}

func (b *Builtin) Deposit(assetID, from string, amount *num.Uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	j, ok := b.assets[assetID]
	if !ok {
		return errors.Wrap(ErrUnknownAsset, assetID)
	}
	bal, ok := j.balances[from]
	if !ok || bal.LT(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "deposit %s of %s from %s", amount, assetID, from)
	}
	bal.Sub(bal, amount)
	j.held.AddSum(amount)
	return nil
}

func (b *Builtin) Withdraw(assetID, to string, amount *num.Uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	j, ok := b.assets[assetID]
	if !ok {
		return errors.Wrap(ErrUnknownAsset, assetID)
	}
	if j.held.LT(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "withdraw %s of %s to %s", amount, assetID, to)
	}
	j.held.Sub(j.held, amount)
	bal, ok := j.balances[to]
	if !ok {
		bal = num.UintZero()
		j.balances[to] = bal
	}
	bal.AddSum(amount)
	return nil
}

func (b *Builtin) BalanceOf(assetID, holder string) (*num.Uint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	j, ok := b.assets[assetID]
	if !ok {
		return nil, errors.Wrap(ErrUnknownAsset, assetID)
	}
	bal, ok := j.balances[holder]
	if !ok {
		return num.UintZero(), nil
	}
	return bal.Clone(), nil
}

// Held reports the total amount of the asset in custody.
func (b *Builtin) Held(assetID string) (*num.Uint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	j, ok := b.assets[assetID]
	if !ok {
		return nil, errors.Wrap(ErrUnknownAsset, assetID)
	}
	return j.held.Clone(), nil
}
