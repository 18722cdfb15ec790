package registry

import (
	"encoding/json"
	"sort"

	"github.com/crucible-fi/crucible/core/types"
)

type ilkEntry struct {
	Series string `json:"series"`
	Ilk    string `json:"ilk"`
}

type debtLimitsEntry struct {
	Series string            `json:"series"`
	Ilk    string            `json:"ilk"`
	Limits *types.DebtLimits `json:"limits"`
}

type termsEntry struct {
	Series string                 `json:"series"`
	Ilk    string                 `json:"ilk"`
	Terms  *types.CollateralTerms `json:"terms"`
}

type state struct {
	Assets         []*types.AssetType              `json:"assets"`
	Series         []*types.Series                 `json:"series"`
	Ilks           []ilkEntry                      `json:"ilks"`
	DebtLimits     []debtLimitsEntry               `json:"debtLimits"`
	Terms          []termsEntry                    `json:"terms"`
	AuctionParams  map[string]*types.AuctionParams `json:"auctionParams"`
	LendingOracles map[string]string               `json:"lendingOracles"`
}

// Checkpoint serializes the whole configuration. Slices are sorted so the
// output is deterministic for a given state.
func (r *Registry) Checkpoint() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := state{
		AuctionParams:  map[string]*types.AuctionParams{},
		LendingOracles: map[string]string{},
	}
	for _, a := range r.assets {
		s.Assets = append(s.Assets, a.Clone())
	}
	sort.Slice(s.Assets, func(i, j int) bool { return s.Assets[i].ID < s.Assets[j].ID })

	for _, sr := range r.series {
		s.Series = append(s.Series, sr.Clone())
	}
	sort.Slice(s.Series, func(i, j int) bool { return s.Series[i].ID < s.Series[j].ID })

	for p := range r.ilks {
		s.Ilks = append(s.Ilks, ilkEntry{Series: p.series, Ilk: p.ilk})
	}
	sort.Slice(s.Ilks, func(i, j int) bool {
		if s.Ilks[i].Series != s.Ilks[j].Series {
			return s.Ilks[i].Series < s.Ilks[j].Series
		}
		return s.Ilks[i].Ilk < s.Ilks[j].Ilk
	})

	for p, l := range r.debtLimits {
		s.DebtLimits = append(s.DebtLimits, debtLimitsEntry{Series: p.series, Ilk: p.ilk, Limits: l.Clone()})
	}
	sort.Slice(s.DebtLimits, func(i, j int) bool {
		if s.DebtLimits[i].Series != s.DebtLimits[j].Series {
			return s.DebtLimits[i].Series < s.DebtLimits[j].Series
		}
		return s.DebtLimits[i].Ilk < s.DebtLimits[j].Ilk
	})

	for p, t := range r.terms {
		s.Terms = append(s.Terms, termsEntry{Series: p.series, Ilk: p.ilk, Terms: t.Clone()})
	}
	sort.Slice(s.Terms, func(i, j int) bool {
		if s.Terms[i].Series != s.Terms[j].Series {
			return s.Terms[i].Series < s.Terms[j].Series
		}
		return s.Terms[i].Ilk < s.Terms[j].Ilk
	})

	for ilk, p := range r.auctionParams {
		s.AuctionParams[ilk] = p.Clone()
	}
	for sr, o := range r.lendingOracles {
		s.LendingOracles[sr] = o
	}

	return json.Marshal(s)
}

// Load replaces the registry content with the checkpointed state.
func (r *Registry) Load(data []byte) error {
	s := state{}
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.assets = map[string]*types.AssetType{}
	r.series = map[string]*types.Series{}
	r.ilks = map[pair]struct{}{}
	r.debtLimits = map[pair]*types.DebtLimits{}
	r.terms = map[pair]*types.CollateralTerms{}
	r.auctionParams = map[string]*types.AuctionParams{}
	r.lendingOracles = map[string]string{}

	for _, a := range s.Assets {
		r.assets[a.ID] = a
	}
	for _, sr := range s.Series {
		r.series[sr.ID] = sr
	}
	for _, e := range s.Ilks {
		r.ilks[pair{e.Series, e.Ilk}] = struct{}{}
	}
	for _, e := range s.DebtLimits {
		r.debtLimits[pair{e.Series, e.Ilk}] = e.Limits
	}
	for _, e := range s.Terms {
		r.terms[pair{e.Series, e.Ilk}] = e.Terms
	}
	for ilk, p := range s.AuctionParams {
		r.auctionParams[ilk] = p
	}
	for sr, o := range s.LendingOracles {
		r.lendingOracles[sr] = o
	}
	return nil
}
