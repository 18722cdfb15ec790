package ledger

import (
	"context"
	"sort"
	"sync"

	"github.com/crucible-fi/crucible/core/broker"
	"github.com/crucible-fi/crucible/core/events"
	"github.com/crucible-fi/crucible/core/metrics"
	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/libs/num"
	"github.com/crucible-fi/crucible/logging"

	uuid "github.com/satori/go.uuid"
)

// ConfigStore gives the engine read access to the governance side
// configuration: series, accepted collateral, limits and terms. Writes
// happen elsewhere, the ledger only ever reads.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/config_store_mock.go -package mocks github.com/crucible-fi/crucible/core/ledger ConfigStore
type ConfigStore interface {
	Series(id string) (*types.Series, error)
	IlkAccepted(seriesID, ilkID string) bool
	DebtLimits(seriesID, ilkID string) (*types.DebtLimits, error)
	CollateralTerms(seriesID, ilkID string) (*types.CollateralTerms, error)
	LendingOracle(seriesID string) (string, error)
}

// OracleService resolves oracle names into live values. Values are read
// at the point of use inside a transaction, never cached across them.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/oracle_service_mock.go -package mocks github.com/crucible-fi/crucible/core/ledger OracleService
type OracleService interface {
	Spot(name, base, quote string) (num.Decimal, error)
	Accrual(name, seriesID string) (num.Decimal, error)
}

type pairKey struct {
	series string
	ilk    string
}

// Engine is the vault ledger: the authoritative record of every vault,
// its balances, and the aggregate debt per series x collateral pair.
// All mutations are validate-then-commit: nothing is written until every
// check has passed.
type Engine struct {
	Config
	log     *logging.Logger
	cfg     ConfigStore
	oracles OracleService
	broker  broker.Interface

	mu        sync.RWMutex
	vaults    map[string]*types.Vault
	balances  map[string]*types.Balances
	inAuction map[string]struct{}
	totalDebt map[pairKey]*num.Uint

	// bumped on every committed mutation, guards prepared pours
	// against interleaved writes
	txSeq uint64
}

func New(log *logging.Logger, config Config, cfg ConfigStore, oracles OracleService, broker broker.Interface) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Engine{
		Config:    config,
		log:       log,
		cfg:       cfg,
		oracles:   oracles,
		broker:    broker,
		vaults:    map[string]*types.Vault{},
		balances:  map[string]*types.Balances{},
		inAuction: map[string]struct{}{},
		totalDebt: map[pairKey]*num.Uint{},
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

// Build creates an empty vault bound to the given series and collateral.
func (e *Engine) Build(ctx context.Context, owner, seriesID, ilkID string) (v *types.Vault, err error) {
	tc := metrics.NewTimeCounter("ledger", "build")
	defer func() {
		tc.EngineTimeCounterAdd()
		opResult("build", err)
	}()

	if _, err = e.cfg.Series(seriesID); err != nil {
		return nil, err
	}
	if !e.cfg.IlkAccepted(seriesID, ilkID) {
		return nil, types.ErrUnsupportedCollateral
	}

	v = &types.Vault{
		ID:     uuid.NewV4().String(),
		Owner:  owner,
		Series: seriesID,
		Ilk:    ilkID,
	}

	e.mu.Lock()
	e.vaults[v.ID] = v
	e.balances[v.ID] = types.NewBalances()
	e.txSeq++
	e.mu.Unlock()

	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("vault created",
			logging.VaultID(v.ID),
			logging.Party(owner),
			logging.SeriesID(seriesID),
			logging.AssetID(ilkID),
		)
	}
	e.broker.Send(events.NewVaultCreatedEvent(ctx, v))
	return v.Clone(), nil
}

// Destroy removes an empty vault. A vault holding any collateral or debt
// cannot be destroyed, it has to be emptied first.
func (e *Engine) Destroy(ctx context.Context, vaultID, party string) (err error) {
	defer func() { opResult("destroy", err) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.vaults[vaultID]
	if !ok {
		return types.ErrVaultNotFound
	}
	if v.Owner != party {
		return types.ErrNotOwner
	}
	if !e.balances[vaultID].IsZero() {
		return types.ErrVaultHasDebtOrCollateral
	}
	if _, ok := e.inAuction[vaultID]; ok {
		return types.ErrVaultInAuction
	}

	delete(e.vaults, vaultID)
	delete(e.balances, vaultID)
	e.txSeq++

	e.broker.Send(events.NewVaultDestroyedEvent(ctx, vaultID))
	return nil
}

// Tweak rebinds a vault to a new series and/or collateral without touching
// its balances. The rebound position has to pass the full set of solvency,
// dust and ceiling checks under the new pair's terms.
func (e *Engine) Tweak(ctx context.Context, vaultID, party, newSeriesID, newIlkID string) (v *types.Vault, err error) {
	defer func() { opResult("tweak", err) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	cur, ok := e.vaults[vaultID]
	if !ok {
		return nil, types.ErrVaultNotFound
	}
	if cur.Owner != party {
		return nil, types.ErrNotOwner
	}
	if _, ok := e.inAuction[vaultID]; ok {
		return nil, types.ErrVaultInAuction
	}

	seriesID, ilkID := cur.Series, cur.Ilk
	if newSeriesID != "" {
		seriesID = newSeriesID
	}
	if newIlkID != "" {
		ilkID = newIlkID
	}
	if seriesID == cur.Series && ilkID == cur.Ilk {
		return cur.Clone(), nil
	}

	series, err := e.cfg.Series(seriesID)
	if err != nil {
		return nil, err
	}
	if !e.cfg.IlkAccepted(seriesID, ilkID) {
		return nil, types.ErrUnsupportedCollateral
	}

	bal := e.balances[vaultID]
	if err = e.checkPosition(series, ilkID, bal, bal.Art); err != nil {
		return nil, err
	}
	oldPair := pairKey{cur.Series, cur.Ilk}
	newPair := pairKey{seriesID, ilkID}
	if err = e.checkCeiling(newPair, num.UintZero(), bal.Art); err != nil {
		return nil, err
	}

	e.moveDebt(oldPair, newPair, bal.Art, bal.Art)
	cur.Series = seriesID
	cur.Ilk = ilkID
	e.txSeq++

	e.broker.Send(events.NewBalancesUpdatedEvent(ctx, vaultID, bal))
	return cur.Clone(), nil
}

// Give transfers vault ownership. Ownership is a back reference only, it
// does not touch balances, so it is allowed even during an auction.
func (e *Engine) Give(ctx context.Context, vaultID, party, newOwner string) (v *types.Vault, err error) {
	defer func() { opResult("give", err) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	cur, ok := e.vaults[vaultID]
	if !ok {
		return nil, types.ErrVaultNotFound
	}
	if cur.Owner != party {
		return nil, types.ErrNotOwner
	}

	old := cur.Owner
	cur.Owner = newOwner
	e.txSeq++

	e.broker.Send(events.NewVaultOwnerChangedEvent(ctx, vaultID, old, newOwner))
	return cur.Clone(), nil
}

// PourResult is a fully validated pour, held back from the ledger until
// Commit. The caller performs the custody and debt token side effects in
// between, so a failed transfer leaves the ledger untouched.
type PourResult struct {
	engine   *Engine
	vaultID  string
	balances *types.Balances
	pair     pairKey
	oldArt   *num.Uint
	seq      uint64
	evt      events.Event
}

// Balances returns the post-pour balances the commit will write.
func (p *PourResult) Balances() *types.Balances {
	return p.balances.Clone()
}

// Commit writes the prepared balances. Callers serialize transactions, a
// ledger write between prepare and commit is a programming error and
// panics.
func (p *PourResult) Commit() *types.Balances {
	e := p.engine
	e.mu.Lock()
	if e.txSeq != p.seq {
		e.mu.Unlock()
		e.log.Panic("ledger mutated between pour prepare and commit",
			logging.VaultID(p.vaultID),
		)
	}
	e.balances[p.vaultID] = p.balances
	e.moveDebt(p.pair, p.pair, p.oldArt, p.balances.Art)
	e.txSeq++
	e.mu.Unlock()

	e.broker.Send(p.evt)
	opResult("pour", nil)
	return p.balances.Clone()
}

// PreparePour validates a balance mutation without applying it. Check
// order: oracle-derived solvency first (skipped only in comparison when
// the resulting debt is zero), then the dust floor, then the pair debt
// ceiling. A delta that would take either balance below zero fails with
// InsufficientBalance.
func (e *Engine) PreparePour(ctx context.Context, vaultID, party string, inkDelta, artDelta *num.Int) (res *PourResult, err error) {
	defer func() {
		if err != nil {
			opResult("pour", err)
		}
	}()

	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.vaults[vaultID]
	if !ok {
		return nil, types.ErrVaultNotFound
	}
	if v.Owner != party {
		return nil, types.ErrNotOwner
	}
	if _, ok := e.inAuction[vaultID]; ok {
		return nil, types.ErrVaultInAuction
	}

	cur := e.balances[vaultID]
	next := &types.Balances{}
	if next.Ink, ok = inkDelta.ApplyTo(cur.Ink); !ok {
		return nil, types.ErrInsufficientBalance
	}
	if next.Art, ok = artDelta.ApplyTo(cur.Art); !ok {
		return nil, types.ErrInsufficientBalance
	}

	series, err := e.cfg.Series(v.Series)
	if err != nil {
		return nil, err
	}
	if err = e.checkPosition(series, v.Ilk, next, cur.Art); err != nil {
		return nil, err
	}
	pair := pairKey{v.Series, v.Ilk}
	if err = e.checkCeiling(pair, cur.Art, next.Art); err != nil {
		return nil, err
	}

	return &PourResult{
		engine:   e,
		vaultID:  vaultID,
		balances: next,
		pair:     pair,
		oldArt:   cur.Art.Clone(),
		seq:      e.txSeq,
		evt:      events.NewBalancesUpdatedEvent(ctx, vaultID, next),
	}, nil
}

// Pour validates and immediately commits a balance mutation. Callers that
// need custody side effects between validation and write use PreparePour.
func (e *Engine) Pour(ctx context.Context, vaultID, party string, inkDelta, artDelta *num.Int) (*types.Balances, error) {
	tc := metrics.NewTimeCounter("ledger", "pour")
	defer tc.EngineTimeCounterAdd()

	res, err := e.PreparePour(ctx, vaultID, party, inkDelta, artDelta)
	if err != nil {
		return nil, err
	}
	return res.Commit(), nil
}

// Stir moves collateral and/or debt between two vaults owned by the same
// party. Collateral moves require matching ilks, debt moves matching
// series, the amounts are denominated in those assets. Both vaults have to
// pass the full check set afterwards.
func (e *Engine) Stir(ctx context.Context, srcID, dstID, party string, ink, art *num.Uint) (err error) {
	defer func() { opResult("stir", err) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	src, ok := e.vaults[srcID]
	if !ok {
		return types.ErrVaultNotFound
	}
	dst, ok := e.vaults[dstID]
	if !ok {
		return types.ErrVaultNotFound
	}
	if src.Owner != party || dst.Owner != party {
		return types.ErrNotOwner
	}
	if _, ok := e.inAuction[srcID]; ok {
		return types.ErrVaultInAuction
	}
	if _, ok := e.inAuction[dstID]; ok {
		return types.ErrVaultInAuction
	}
	if !ink.IsZero() && src.Ilk != dst.Ilk {
		return types.ErrUnsupportedCollateral
	}
	if !art.IsZero() && src.Series != dst.Series {
		return types.ErrSeriesMismatch
	}

	srcCur, dstCur := e.balances[srcID], e.balances[dstID]
	if srcCur.Ink.LT(ink) || srcCur.Art.LT(art) {
		return types.ErrInsufficientBalance
	}

	srcNext := &types.Balances{
		Ink: num.UintZero().Sub(srcCur.Ink, ink),
		Art: num.UintZero().Sub(srcCur.Art, art),
	}
	dstNext := &types.Balances{
		Ink: num.Sum(dstCur.Ink, ink),
		Art: num.Sum(dstCur.Art, art),
	}

	srcSeries, err := e.cfg.Series(src.Series)
	if err != nil {
		return err
	}
	dstSeries, err := e.cfg.Series(dst.Series)
	if err != nil {
		return err
	}
	if err = e.checkPosition(srcSeries, src.Ilk, srcNext, srcCur.Art); err != nil {
		return err
	}
	if err = e.checkPosition(dstSeries, dst.Ilk, dstNext, dstCur.Art); err != nil {
		return err
	}

	srcPair := pairKey{src.Series, src.Ilk}
	dstPair := pairKey{dst.Series, dst.Ilk}
	if srcPair != dstPair {
		if err = e.checkCeiling(dstPair, dstCur.Art, dstNext.Art); err != nil {
			return err
		}
		e.moveDebt(srcPair, srcPair, srcCur.Art, srcNext.Art)
		e.moveDebt(dstPair, dstPair, dstCur.Art, dstNext.Art)
	}
	e.balances[srcID] = srcNext
	e.balances[dstID] = dstNext
	e.txSeq++

	e.broker.SendBatch([]events.Event{
		events.NewBalancesUpdatedEvent(ctx, srcID, srcNext),
		events.NewBalancesUpdatedEvent(ctx, dstID, dstNext),
	})
	return nil
}

// Roll closes the vault's debt in its current series and reopens the
// equivalent value in a new one, converting through each series' accrual
// oracle. The converted debt rounds up, so value is preserved against the
// system rather than the vault owner, within one unit of debt.
func (e *Engine) Roll(ctx context.Context, vaultID, party, newSeriesID string) (b *types.Balances, err error) {
	defer func() { opResult("roll", err) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.vaults[vaultID]
	if !ok {
		return nil, types.ErrVaultNotFound
	}
	if v.Owner != party {
		return nil, types.ErrNotOwner
	}
	if _, ok := e.inAuction[vaultID]; ok {
		return nil, types.ErrVaultInAuction
	}
	newSeries, err := e.cfg.Series(newSeriesID)
	if err != nil {
		return nil, err
	}
	if !e.cfg.IlkAccepted(newSeriesID, v.Ilk) {
		return nil, types.ErrUnsupportedCollateral
	}

	cur := e.balances[vaultID]
	newArt := cur.Art.Clone()
	if !cur.Art.IsZero() {
		oldName, err := e.cfg.LendingOracle(v.Series)
		if err != nil {
			return nil, err
		}
		newName, err := e.cfg.LendingOracle(newSeriesID)
		if err != nil {
			return nil, err
		}
		oldAccrual, err := e.oracles.Accrual(oldName, v.Series)
		if err != nil {
			return nil, err
		}
		newAccrual, err := e.oracles.Accrual(newName, newSeriesID)
		if err != nil {
			return nil, err
		}
		converted := cur.Art.ToDecimal().Mul(oldAccrual).Div(newAccrual).Ceil()
		var overflow bool
		if newArt, overflow = num.UintFromDecimal(converted); overflow {
			return nil, types.ErrCeilingExceeded
		}
	}

	next := &types.Balances{Ink: cur.Ink.Clone(), Art: newArt}
	if err = e.checkPosition(newSeries, v.Ilk, next, num.UintZero()); err != nil {
		return nil, err
	}
	oldPair := pairKey{v.Series, v.Ilk}
	newPair := pairKey{newSeriesID, v.Ilk}
	if err = e.checkCeiling(newPair, num.UintZero(), next.Art); err != nil {
		return nil, err
	}

	e.moveDebt(oldPair, oldPair, cur.Art, num.UintZero())
	e.moveDebt(newPair, newPair, num.UintZero(), next.Art)
	e.balances[vaultID] = next
	v.Series = newSeriesID
	e.txSeq++

	e.broker.Send(events.NewBalancesUpdatedEvent(ctx, vaultID, next))
	return next.Clone(), nil
}

// IsUndercollateralized recomputes the solvency inequality with live
// oracle values. A vault with no debt is never undercollateralized.
func (e *Engine) IsUndercollateralized(vaultID string) (bool, error) {
	level, err := e.Level(vaultID)
	if err != nil {
		return false, err
	}
	return level.IsNegative(), nil
}

// Level returns the vault's collateral value minus its required value,
// both in base asset terms at live oracle prices. Negative means the
// vault is eligible for liquidation.
func (e *Engine) Level(vaultID string) (num.Decimal, error) {
	e.mu.RLock()
	v, ok := e.vaults[vaultID]
	if !ok {
		e.mu.RUnlock()
		return num.DecimalZero(), types.ErrVaultNotFound
	}
	bal := e.balances[vaultID].Clone()
	ilk, seriesID := v.Ilk, v.Series
	e.mu.RUnlock()

	series, err := e.cfg.Series(seriesID)
	if err != nil {
		return num.DecimalZero(), err
	}
	collateral, required, err := e.position(series, ilk, bal)
	if err != nil {
		return num.DecimalZero(), err
	}
	return collateral.Sub(required), nil
}

// EnterLiquidation marks the vault as under auction and returns the
// balance snapshot the auction prices against. Only the liquidation
// engine calls this.
func (e *Engine) EnterLiquidation(vaultID string) (*types.Balances, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.vaults[vaultID]; !ok {
		return nil, types.ErrVaultNotFound
	}
	if _, ok := e.inAuction[vaultID]; ok {
		return nil, types.ErrAlreadyAuctioning
	}
	e.inAuction[vaultID] = struct{}{}
	e.txSeq++
	return e.balances[vaultID].Clone(), nil
}

// ExitLiquidation clears the auction mark, returning the vault to user
// control.
func (e *Engine) ExitLiquidation(vaultID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.inAuction[vaultID]; !ok {
		return types.ErrNotAuctioning
	}
	delete(e.inAuction, vaultID)
	e.txSeq++
	return nil
}

// Seize removes collateral and debt from a vault under auction. This is
// the settlement write for auction fills, it bypasses solvency, dust and
// ceiling checks because the auction is driving the vault to a terminal
// state.
func (e *Engine) Seize(ctx context.Context, vaultID string, ink, art *num.Uint) (b *types.Balances, err error) {
	defer func() { opResult("seize", err) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.vaults[vaultID]
	if !ok {
		return nil, types.ErrVaultNotFound
	}
	if _, ok := e.inAuction[vaultID]; !ok {
		return nil, types.ErrNotAuctioning
	}

	cur := e.balances[vaultID]
	if cur.Ink.LT(ink) || cur.Art.LT(art) {
		return nil, types.ErrInsufficientBalance
	}
	next := &types.Balances{
		Ink: num.UintZero().Sub(cur.Ink, ink),
		Art: num.UintZero().Sub(cur.Art, art),
	}
	e.moveDebt(pairKey{v.Series, v.Ilk}, pairKey{v.Series, v.Ilk}, cur.Art, next.Art)
	e.balances[vaultID] = next
	e.txSeq++

	e.broker.Send(events.NewBalancesUpdatedEvent(ctx, vaultID, next))
	return next.Clone(), nil
}

// --- reads ---

func (e *Engine) Vault(vaultID string) (*types.Vault, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.vaults[vaultID]
	if !ok {
		return nil, types.ErrVaultNotFound
	}
	return v.Clone(), nil
}

func (e *Engine) Balances(vaultID string) (*types.Balances, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	b, ok := e.balances[vaultID]
	if !ok {
		return nil, types.ErrVaultNotFound
	}
	return b.Clone(), nil
}

// Vaults lists every vault, sorted by id for deterministic output.
func (e *Engine) Vaults() []*types.Vault {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*types.Vault, 0, len(e.vaults))
	for _, v := range e.vaults {
		out = append(out, v.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TotalDebt returns the aggregate debt recorded for a series x collateral
// pair.
func (e *Engine) TotalDebt(seriesID, ilkID string) *num.Uint {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if t, ok := e.totalDebt[pairKey{seriesID, ilkID}]; ok {
		return t.Clone()
	}
	return num.UintZero()
}

func (e *Engine) InAuction(vaultID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, ok := e.inAuction[vaultID]
	return ok
}

// --- checks ---

// position returns collateral value and required value in base terms at
// live oracle prices.
func (e *Engine) position(series *types.Series, ilkID string, b *types.Balances) (num.Decimal, num.Decimal, error) {
	terms, err := e.cfg.CollateralTerms(series.ID, ilkID)
	if err != nil {
		return num.DecimalZero(), num.DecimalZero(), err
	}
	spot, err := e.oracles.Spot(terms.Oracle, ilkID, series.BaseAsset)
	if err != nil {
		return num.DecimalZero(), num.DecimalZero(), err
	}
	oracleName, err := e.cfg.LendingOracle(series.ID)
	if err != nil {
		return num.DecimalZero(), num.DecimalZero(), err
	}
	debtPrice, err := e.oracles.Accrual(oracleName, series.ID)
	if err != nil {
		return num.DecimalZero(), num.DecimalZero(), err
	}

	collateral := b.Ink.ToDecimal().Mul(spot)
	required := b.Art.ToDecimal().Mul(debtPrice).Mul(terms.Ratio)
	return collateral, required, nil
}

// checkPosition runs the ratio and dust checks on a candidate balance
// state. Oracle values are always recomputed, the ratio comparison alone
// is skipped when the resulting debt is zero. The dust floor is not
// re-applied when debt is left unchanged, so a sub-dust position can
// always adjust collateral or close.
func (e *Engine) checkPosition(series *types.Series, ilkID string, next *types.Balances, oldArt *num.Uint) error {
	collateral, required, err := e.position(series, ilkID, next)
	if err != nil {
		return err
	}
	if !next.Art.IsZero() && collateral.LessThan(required) {
		return types.ErrUndercollateralized
	}

	if next.Art.IsZero() || next.Art.EQ(oldArt) {
		return nil
	}
	limits, err := e.cfg.DebtLimits(series.ID, ilkID)
	if err != nil {
		return err
	}
	floor := num.UintZero().Mul(limits.Floor, num.Pow10(limits.Decimals))
	if next.Art.LT(floor) {
		return types.ErrDustLimitBreached
	}
	return nil
}

// checkCeiling verifies the pair's aggregate debt after replacing oldArt
// with newArt stays under the configured ceiling. Debt reductions always
// pass.
func (e *Engine) checkCeiling(pair pairKey, oldArt, newArt *num.Uint) error {
	if newArt.LTE(oldArt) {
		return nil
	}
	limits, err := e.cfg.DebtLimits(pair.series, pair.ilk)
	if err != nil {
		return err
	}
	total := num.UintZero()
	if t, ok := e.totalDebt[pair]; ok {
		total = t.Clone()
	}
	total.Add(total, newArt)
	total.Sub(total, oldArt)

	ceiling := num.UintZero().Mul(limits.Ceiling, num.Pow10(limits.Decimals))
	if total.GT(ceiling) {
		return types.ErrCeilingExceeded
	}
	return nil
}

// moveDebt replaces oldArt with newArt in the per-pair totals. Callers
// hold the engine lock and have run checkCeiling where the total grows.
func (e *Engine) moveDebt(from, to pairKey, oldArt, newArt *num.Uint) {
	if !oldArt.IsZero() {
		t := e.totalDebt[from]
		t.Sub(t, oldArt)
		if t.IsZero() {
			delete(e.totalDebt, from)
		}
	}
	if !newArt.IsZero() {
		t, ok := e.totalDebt[to]
		if !ok {
			t = num.UintZero()
			e.totalDebt[to] = t
		}
		t.Add(t, newArt)
	}
}

func opResult(op string, err error) {
	if err != nil {
		metrics.LedgerOp(op, "error")
		return
	}
	metrics.LedgerOp(op, "ok")
}
