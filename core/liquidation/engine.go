package liquidation

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/crucible-fi/crucible/core/broker"
	"github.com/crucible-fi/crucible/core/events"
	"github.com/crucible-fi/crucible/core/metrics"
	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/libs/num"
	"github.com/crucible-fi/crucible/logging"
)

// VaultLedger is the slice of the ledger engine the liquidation engine
// depends on. EnterLiquidation and Seize are the privileged writes, every
// other mutation stays locked out while the auction mark is set.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/vault_ledger_mock.go -package mocks github.com/crucible-fi/crucible/core/liquidation VaultLedger
type VaultLedger interface {
	Vault(vaultID string) (*types.Vault, error)
	Balances(vaultID string) (*types.Balances, error)
	IsUndercollateralized(vaultID string) (bool, error)
	EnterLiquidation(vaultID string) (*types.Balances, error)
	ExitLiquidation(vaultID string) error
	Seize(ctx context.Context, vaultID string, ink, art *num.Uint) (*types.Balances, error)
}

// ParamSource supplies the per-collateral auction configuration. Read
// once at auction start and frozen for that auction's lifetime.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/param_source_mock.go -package mocks github.com/crucible-fi/crucible/core/liquidation ParamSource
type ParamSource interface {
	AuctionParams(ilkID string) (*types.AuctionParams, error)
}

// TimeService supplies the current time.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/time_service_mock.go -package mocks github.com/crucible-fi/crucible/core/liquidation TimeService
type TimeService interface {
	GetTimeNow() time.Time
}

// Engine runs the dutch auctions that clear undercollateralized vaults.
// One auction per vault, priced against the balance snapshot taken when
// the auction started.
type Engine struct {
	Config
	log     *logging.Logger
	ledger  VaultLedger
	params  ParamSource
	timeSvc TimeService
	broker  broker.Interface

	mu       sync.RWMutex
	auctions map[string]*types.Auction
}

func New(log *logging.Logger, config Config, ledger VaultLedger, params ParamSource, timeSvc TimeService, broker broker.Interface) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Engine{
		Config:   config,
		log:      log,
		ledger:   ledger,
		params:   params,
		timeSvc:  timeSvc,
		broker:   broker,
		auctions: map[string]*types.Auction{},
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

// StartAuction opens an auction on an undercollateralized vault. The
// caller is recorded as the auctioneer, balances are snapshotted, and the
// collateral terms in force for the vault's ilk are frozen onto the
// auction record.
func (e *Engine) StartAuction(ctx context.Context, vaultID, caller string) (*types.Auction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.auctions[vaultID]; ok {
		return nil, types.ErrAlreadyAuctioning
	}
	under, err := e.ledger.IsUndercollateralized(vaultID)
	if err != nil {
		return nil, err
	}
	if !under {
		return nil, types.ErrStillCollateralized
	}
	v, err := e.ledger.Vault(vaultID)
	if err != nil {
		return nil, err
	}
	params, err := e.params.AuctionParams(v.Ilk)
	if err != nil {
		return nil, err
	}
	snap, err := e.ledger.EnterLiquidation(vaultID)
	if err != nil {
		return nil, err
	}

	a := &types.Auction{
		VaultID:    vaultID,
		Auctioneer: caller,
		Start:      e.timeSvc.GetTimeNow(),
		Ink0:       snap.Ink,
		Art0:       snap.Art,
		Params:     *params,
	}
	e.auctions[vaultID] = a

	e.log.Info("auction started",
		logging.VaultID(vaultID),
		logging.Party(caller),
		logging.String("ink0", a.Ink0.String()),
		logging.String("art0", a.Art0.String()),
	)
	metrics.AuctionTransition("started")
	metrics.SetActiveAuctions(len(e.auctions))
	e.broker.Send(events.NewAuctionStartedEvent(ctx, a))
	return a.Clone(), nil
}

// Price returns the collateral proportion released per unit of debt at
// the given time: linear from the initial proportion down to the floor
// over the auction duration, flat at the floor afterwards. The auction
// never expires, the vault stays clearable at the floor until empty.
func (e *Engine) Price(vaultID string, now time.Time) (num.Decimal, error) {
	e.mu.RLock()
	a, ok := e.auctions[vaultID]
	e.mu.RUnlock()
	if !ok {
		return num.DecimalZero(), types.ErrNotAuctioning
	}
	return priceAt(a, now), nil
}

func priceAt(a *types.Auction, now time.Time) num.Decimal {
	elapsed := now.Sub(a.Start)
	if elapsed <= 0 {
		return a.Params.InitialProportion
	}
	if elapsed >= a.Params.Duration {
		return a.Params.FloorProportion
	}
	span := a.Params.InitialProportion.Sub(a.Params.FloorProportion)
	frac := num.DecimalFromInt64(elapsed.Nanoseconds()).Div(num.DecimalFromInt64(a.Params.Duration.Nanoseconds()))
	return a.Params.InitialProportion.Sub(span.Mul(frac))
}

// PayDebt clears up to maxDebtRepay of the vault's debt against a
// proportional share of the snapshotted collateral at the current price.
// Granted collateral rounds down and is capped at what the vault still
// holds. Clearing the last unit of debt closes the auction and returns
// the vault, leftover collateral included, to its owner.
func (e *Engine) PayDebt(ctx context.Context, vaultID, caller string, maxDebtRepay *num.Uint) (debtRepaid, collateralGranted *num.Uint, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.auctions[vaultID]
	if !ok {
		return nil, nil, types.ErrNotAuctioning
	}

	bal, err := e.ledger.Balances(vaultID)
	if err != nil {
		return nil, nil, err
	}
	// a zero-debt snapshot cannot be priced, drive it straight to closed
	if a.Art0.IsZero() || bal.Art.IsZero() {
		e.close(ctx, a, bal.Ink)
		return nil, nil, types.ErrNotAuctioning
	}

	repay := num.Min(maxDebtRepay, bal.Art)
	proportion := priceAt(a, e.timeSvc.GetTimeNow())
	granted, _ := num.UintFromDecimal(
		repay.ToDecimal().
			Mul(a.Ink0.ToDecimal()).
			Mul(proportion).
			Div(a.Art0.ToDecimal()),
	)
	granted = num.Min(granted, bal.Ink)

	after, err := e.ledger.Seize(ctx, vaultID, granted, repay)
	if err != nil {
		return nil, nil, err
	}

	metrics.AuctionTransition("fill")
	e.broker.Send(events.NewAuctionFillEvent(ctx, vaultID, caller, repay, granted))
	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("auction fill",
			logging.VaultID(vaultID),
			logging.Party(caller),
			logging.String("debtRepaid", repay.String()),
			logging.String("collateralGranted", granted.String()),
		)
	}

	if after.Art.IsZero() {
		e.close(ctx, a, after.Ink)
	}
	return repay, granted, nil
}

// Cancel removes the auction if live oracle prices show the vault solvent
// again. Anyone may call it, the vault owner regains control.
func (e *Engine) Cancel(ctx context.Context, vaultID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.auctions[vaultID]; !ok {
		return types.ErrNotAuctioning
	}
	under, err := e.ledger.IsUndercollateralized(vaultID)
	if err != nil {
		return err
	}
	if under {
		return types.ErrStillUndercollateralized
	}
	if err := e.ledger.ExitLiquidation(vaultID); err != nil {
		return err
	}
	delete(e.auctions, vaultID)

	e.log.Info("auction cancelled", logging.VaultID(vaultID))
	metrics.AuctionTransition("cancelled")
	metrics.SetActiveAuctions(len(e.auctions))
	e.broker.Send(events.NewAuctionCancelledEvent(ctx, vaultID))
	return nil
}

// close ends an auction whose debt is fully cleared. Called with the
// engine lock held.
func (e *Engine) close(ctx context.Context, a *types.Auction, leftoverInk *num.Uint) {
	if err := e.ledger.ExitLiquidation(a.VaultID); err != nil {
		// the auction record and the ledger mark only ever move together
		e.log.Panic("auction record without ledger liquidation mark",
			logging.VaultID(a.VaultID),
			logging.Error(err),
		)
	}
	delete(e.auctions, a.VaultID)

	e.log.Info("auction closed",
		logging.VaultID(a.VaultID),
		logging.String("leftoverInk", leftoverInk.String()),
	)
	metrics.AuctionTransition("closed")
	metrics.SetActiveAuctions(len(e.auctions))
	e.broker.Send(events.NewAuctionClosedEvent(ctx, a.VaultID, leftoverInk))
}

// --- reads ---

func (e *Engine) Auction(vaultID string) (*types.Auction, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	a, ok := e.auctions[vaultID]
	if !ok {
		return nil, types.ErrNotAuctioning
	}
	return a.Clone(), nil
}

// Auctions lists every active auction, sorted by vault id.
func (e *Engine) Auctions() []*types.Auction {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*types.Auction, 0, len(e.auctions))
	for _, a := range e.auctions {
		out = append(out, a.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VaultID < out[j].VaultID })
	return out
}
