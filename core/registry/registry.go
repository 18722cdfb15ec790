package registry

import (
	"sync"
	"time"

	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/libs/num"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// pair keys everything configured per Series x collateral.
type pair struct {
	series string
	ilk    string
}

// Registry is the configuration store shared by the engines: asset types,
// series, accepted collateral sets, debt limits, collateral terms and
// auction parameters. The engines hold a reference and only ever read;
// writes go through the governance engine. There are deliberately no
// package level singletons, the node constructs one registry and threads
// it everywhere.
type Registry struct {
	mu sync.RWMutex

	assets         map[string]*types.AssetType
	series         map[string]*types.Series
	ilks           map[pair]struct{}
	debtLimits     map[pair]*types.DebtLimits
	terms          map[pair]*types.CollateralTerms
	auctionParams  map[string]*types.AuctionParams
	lendingOracles map[string]string // series -> accrual oracle name
}

func New() *Registry {
	return &Registry{
		assets:         map[string]*types.AssetType{},
		series:         map[string]*types.Series{},
		ilks:           map[pair]struct{}{},
		debtLimits:     map[pair]*types.DebtLimits{},
		terms:          map[pair]*types.CollateralTerms{},
		auctionParams:  map[string]*types.AuctionParams{},
		lendingOracles: map[string]string{},
	}
}

// --- writes, governance only ---

// AddAsset registers an asset type. Assets are immutable once created, a
// second registration under the same id is rejected.
func (r *Registry) AddAsset(a *types.AssetType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assets[a.ID]; ok {
		return ErrAlreadyExists
	}
	r.assets[a.ID] = a.Clone()
	return nil
}

func (r *Registry) AddSeries(s *types.Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.series[s.ID]; ok {
		return ErrAlreadyExists
	}
	if _, ok := r.assets[s.BaseAsset]; !ok {
		return types.ErrAssetNotFound
	}
	r.series[s.ID] = s.Clone()
	return nil
}

// AddIlks grows the accepted collateral set for a series. The set never
// shrinks, removal of a configured ilk is not supported.
func (r *Registry) AddIlks(seriesID string, ilkIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.series[seriesID]; !ok {
		return types.ErrSeriesNotFound
	}
	for _, ilk := range ilkIDs {
		if _, ok := r.assets[ilk]; !ok {
			return types.ErrAssetNotFound
		}
	}
	for _, ilk := range ilkIDs {
		r.ilks[pair{seriesID, ilk}] = struct{}{}
	}
	return nil
}

func (r *Registry) SetDebtLimits(seriesID, ilkID string, limits *types.DebtLimits) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ilks[pair{seriesID, ilkID}]; !ok {
		return types.ErrIlkNotConfigured
	}
	r.debtLimits[pair{seriesID, ilkID}] = limits.Clone()
	return nil
}

func (r *Registry) SetCollateralTerms(seriesID, ilkID string, terms *types.CollateralTerms) error {
	if terms.Ratio.LessThan(num.DecimalOne()) {
		return ErrRatioBelowOne
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ilks[pair{seriesID, ilkID}]; !ok {
		return types.ErrIlkNotConfigured
	}
	r.terms[pair{seriesID, ilkID}] = terms.Clone()
	return nil
}

func (r *Registry) SetAuctionParams(ilkID string, params *types.AuctionParams) error {
	if params.Duration <= 0 {
		return ErrInvalidAuctionParams
	}
	if params.FloorProportion.GreaterThan(params.InitialProportion) {
		return ErrInvalidAuctionParams
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assets[ilkID]; !ok {
		return types.ErrAssetNotFound
	}
	r.auctionParams[ilkID] = params.Clone()
	return nil
}

func (r *Registry) SetLendingOracle(seriesID, oracle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.series[seriesID]; !ok {
		return types.ErrSeriesNotFound
	}
	r.lendingOracles[seriesID] = oracle
	return nil
}

// --- reads ---

func (r *Registry) Asset(id string) (*types.AssetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.assets[id]
	if !ok {
		return nil, types.ErrAssetNotFound
	}
	return a.Clone(), nil
}

func (r *Registry) Series(id string) (*types.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.series[id]
	if !ok {
		return nil, types.ErrSeriesNotFound
	}
	return s.Clone(), nil
}

// IlkAccepted reports whether the series accepts the given collateral.
func (r *Registry) IlkAccepted(seriesID, ilkID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.ilks[pair{seriesID, ilkID}]
	return ok
}

func (r *Registry) DebtLimits(seriesID, ilkID string) (*types.DebtLimits, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.debtLimits[pair{seriesID, ilkID}]
	if !ok {
		return nil, types.ErrIlkNotConfigured
	}
	return l.Clone(), nil
}

func (r *Registry) CollateralTerms(seriesID, ilkID string) (*types.CollateralTerms, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.terms[pair{seriesID, ilkID}]
	if !ok {
		return nil, types.ErrIlkNotConfigured
	}
	return t.Clone(), nil
}

func (r *Registry) AuctionParams(ilkID string) (*types.AuctionParams, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.auctionParams[ilkID]
	if !ok {
		return nil, ErrNoAuctionParams
	}
	return p.Clone(), nil
}

func (r *Registry) LendingOracle(seriesID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.lendingOracles[seriesID]
	if !ok {
		return "", types.ErrOracleNotFound
	}
	return o, nil
}

// Assets returns all registered assets, for the API read surface.
func (r *Registry) Assets() []*types.AssetType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := maps.Keys(r.assets)
	slices.Sort(ids)
	out := make([]*types.AssetType, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.assets[id].Clone())
	}
	return out
}

// AllSeries returns all registered series, for the API read surface.
func (r *Registry) AllSeries() []*types.Series {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := maps.Keys(r.series)
	slices.Sort(ids)
	out := make([]*types.Series, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.series[id].Clone())
	}
	return out
}

// MaturedSeries lists series whose maturity has passed, used by the node
// for operator visibility.
func (r *Registry) MaturedSeries(now time.Time) []*types.Series {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*types.Series{}
	for _, s := range r.series {
		if s.Matured(now) {
			out = append(out, s.Clone())
		}
	}
	return out
}
