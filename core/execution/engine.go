package execution

import (
	"context"
	"sync"

	"github.com/crucible-fi/crucible/core/custody"
	"github.com/crucible-fi/crucible/core/debttoken"
	"github.com/crucible-fi/crucible/core/ledger"
	"github.com/crucible-fi/crucible/core/liquidation"
	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/libs/num"
	"github.com/crucible-fi/crucible/logging"
)

// SeriesSource resolves a series id to its record, the facade needs it to
// find the debt token behind a vault.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/series_source_mock.go -package mocks github.com/crucible-fi/crucible/core/execution SeriesSource
type SeriesSource interface {
	Series(id string) (*types.Series, error)
}

// Engine is the outer transaction surface. It serializes every state
// changing call behind one lock and performs the custody and debt token
// side effects in lockstep with the ledger writes, so from the outside a
// transaction either fully happens or leaves no trace.
type Engine struct {
	Config
	log     *logging.Logger
	ledger  *ledger.Engine
	liq     *liquidation.Engine
	custody custody.Gateway
	tokens  debttoken.Adapter
	series  SeriesSource

	// the global transaction lock
	mu sync.Mutex
}

func New(
	log *logging.Logger,
	config Config,
	ledgerEngine *ledger.Engine,
	liqEngine *liquidation.Engine,
	gateway custody.Gateway,
	tokens debttoken.Adapter,
	series SeriesSource,
) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Engine{
		Config:  config,
		log:     log,
		ledger:  ledgerEngine,
		liq:     liqEngine,
		custody: gateway,
		tokens:  tokens,
		series:  series,
	}
}

// ReloadConf updates the internal configuration of the engine.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}
	e.Config = cfg
}

// BuildVault creates an empty vault.
func (e *Engine) BuildVault(ctx context.Context, owner, seriesID, ilkID string) (*types.Vault, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Build(ctx, owner, seriesID, ilkID)
}

// DestroyVault removes an empty vault.
func (e *Engine) DestroyVault(ctx context.Context, vaultID, party string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Destroy(ctx, vaultID, party)
}

// TweakVault rebinds a vault to a new series and/or collateral.
func (e *Engine) TweakVault(ctx context.Context, vaultID, party, newSeriesID, newIlkID string) (*types.Vault, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Tweak(ctx, vaultID, party, newSeriesID, newIlkID)
}

// GiveVault transfers vault ownership.
func (e *Engine) GiveVault(ctx context.Context, vaultID, party, newOwner string) (*types.Vault, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Give(ctx, vaultID, party, newOwner)
}

// StirVaults moves collateral and/or debt between two vaults of one
// owner. No custody movement happens, the assets stay inside the system.
func (e *Engine) StirVaults(ctx context.Context, srcID, dstID, party string, ink, art *num.Uint) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Stir(ctx, srcID, dstID, party, ink, art)
}

// RollVault moves a vault's debt to a new series at oracle-equivalent
// value. Debt tokens are burnt in the old series and minted in the new
// one for the party funding the roll.
func (e *Engine) RollVault(ctx context.Context, vaultID, party, newSeriesID string) (*types.Balances, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, err := e.ledger.Vault(vaultID)
	if err != nil {
		return nil, err
	}
	oldSeries, err := e.series.Series(v.Series)
	if err != nil {
		return nil, err
	}
	newSeries, err := e.series.Series(newSeriesID)
	if err != nil {
		return nil, err
	}
	before, err := e.ledger.Balances(vaultID)
	if err != nil {
		return nil, err
	}

	after, err := e.ledger.Roll(ctx, vaultID, party, newSeriesID)
	if err != nil {
		return nil, err
	}

	// the old debt is retired, the new one issued against the party
	if !before.Art.IsZero() {
		if err := e.tokens.Burn(oldSeries.DebtToken, party, before.Art); err != nil {
			e.log.Panic("debt token burn failed after ledger roll",
				logging.VaultID(vaultID),
				logging.Error(err),
			)
		}
	}
	if !after.Art.IsZero() {
		if err := e.tokens.Mint(newSeries.DebtToken, party, after.Art); err != nil {
			e.log.Panic("debt token mint failed after ledger roll",
				logging.VaultID(vaultID),
				logging.Error(err),
			)
		}
	}
	return after, nil
}

// Pour applies collateral and debt deltas to a vault together with their
// custody side effects: positive ink pulls collateral in, negative ink
// releases it, positive art mints debt tokens to the owner, negative art
// burns them. A failed transfer aborts the whole transaction, the ledger
// is only written once every side effect has gone through.
func (e *Engine) Pour(ctx context.Context, vaultID, party string, inkDelta, artDelta *num.Int) (*types.Balances, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, err := e.ledger.Vault(vaultID)
	if err != nil {
		return nil, err
	}
	series, err := e.series.Series(v.Series)
	if err != nil {
		return nil, err
	}

	res, err := e.ledger.PreparePour(ctx, vaultID, party, inkDelta, artDelta)
	if err != nil {
		return nil, err
	}

	// side effects run before the ledger write, each with a compensation
	// in case a later one fails
	undo := []func(){}
	rollback := func() {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
	}

	if inkDelta.IsPositive() {
		if err := e.custody.Deposit(v.Ilk, party, inkDelta.U); err != nil {
			return nil, err
		}
		undo = append(undo, func() {
			if err := e.custody.Withdraw(v.Ilk, party, inkDelta.U); err != nil {
				e.log.Panic("custody rollback failed", logging.Error(err))
			}
		})
	}
	if inkDelta.IsNegative() {
		if err := e.custody.Withdraw(v.Ilk, party, inkDelta.U); err != nil {
			rollback()
			return nil, err
		}
		undo = append(undo, func() {
			if err := e.custody.Deposit(v.Ilk, party, inkDelta.U); err != nil {
				e.log.Panic("custody rollback failed", logging.Error(err))
			}
		})
	}
	if artDelta.IsNegative() {
		if err := e.tokens.Burn(series.DebtToken, party, artDelta.U); err != nil {
			rollback()
			return nil, err
		}
	}
	if artDelta.IsPositive() {
		if err := e.tokens.Mint(series.DebtToken, party, artDelta.U); err != nil {
			rollback()
			return nil, err
		}
	}

	return res.Commit(), nil
}

// StartAuction opens a liquidation auction on an undercollateralized
// vault.
func (e *Engine) StartAuction(ctx context.Context, vaultID, caller string) (*types.Auction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.liq.StartAuction(ctx, vaultID, caller)
}

// PayDebt lets a bidder clear auctioned debt for collateral. The bidder's
// debt tokens are burnt first, the settled transaction then releases the
// granted collateral from custody to the bidder.
func (e *Engine) PayDebt(ctx context.Context, vaultID, bidder string, maxDebtRepay *num.Uint) (debtRepaid, collateralGranted *num.Uint, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.liq.Auction(vaultID); err != nil {
		return nil, nil, err
	}
	v, err := e.ledger.Vault(vaultID)
	if err != nil {
		return nil, nil, err
	}
	series, err := e.series.Series(v.Series)
	if err != nil {
		return nil, nil, err
	}
	bal, err := e.ledger.Balances(vaultID)
	if err != nil {
		return nil, nil, err
	}

	// burn exactly what the auction will clear, computed under the same
	// lock the auction settles under
	repay := num.Min(maxDebtRepay, bal.Art)
	if !repay.IsZero() {
		if err := e.tokens.Burn(series.DebtToken, bidder, repay); err != nil {
			return nil, nil, err
		}
	}

	debtRepaid, collateralGranted, err = e.liq.PayDebt(ctx, vaultID, bidder, repay)
	if err != nil {
		if !repay.IsZero() {
			if mintErr := e.tokens.Mint(series.DebtToken, bidder, repay); mintErr != nil {
				e.log.Panic("debt token rollback failed", logging.Error(mintErr))
			}
		}
		return nil, nil, err
	}

	if !collateralGranted.IsZero() {
		if err := e.custody.Withdraw(v.Ilk, bidder, collateralGranted); err != nil {
			// custody holds every unit of recorded ink, a failed
			// release is unrecoverable corruption
			e.log.Panic("custody release failed after auction fill",
				logging.VaultID(vaultID),
				logging.Error(err),
			)
		}
	}
	return debtRepaid, collateralGranted, nil
}

// CancelAuction removes an auction on a vault the market has made whole
// again.
func (e *Engine) CancelAuction(ctx context.Context, vaultID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.liq.Cancel(ctx, vaultID)
}
