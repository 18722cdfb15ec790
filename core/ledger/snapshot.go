package ledger

import (
	"encoding/json"
	"sort"

	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/libs/num"
)

type vaultEntry struct {
	Vault    *types.Vault    `json:"vault"`
	Balances *types.Balances `json:"balances"`
}

type debtEntry struct {
	Series string    `json:"series"`
	Ilk    string    `json:"ilk"`
	Total  *num.Uint `json:"total"`
}

type state struct {
	Vaults    []vaultEntry `json:"vaults"`
	InAuction []string     `json:"inAuction"`
	TotalDebt []debtEntry  `json:"totalDebt"`
}

// Checkpoint serializes every vault, its balances, the auction marks and
// the per-pair debt totals. Output is sorted so the same state always
// serializes to the same bytes.
func (e *Engine) Checkpoint() ([]byte, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := state{}
	for id, v := range e.vaults {
		s.Vaults = append(s.Vaults, vaultEntry{
			Vault:    v.Clone(),
			Balances: e.balances[id].Clone(),
		})
	}
	sort.Slice(s.Vaults, func(i, j int) bool { return s.Vaults[i].Vault.ID < s.Vaults[j].Vault.ID })

	for id := range e.inAuction {
		s.InAuction = append(s.InAuction, id)
	}
	sort.Strings(s.InAuction)

	for p, t := range e.totalDebt {
		s.TotalDebt = append(s.TotalDebt, debtEntry{Series: p.series, Ilk: p.ilk, Total: t.Clone()})
	}
	sort.Slice(s.TotalDebt, func(i, j int) bool {
		if s.TotalDebt[i].Series != s.TotalDebt[j].Series {
			return s.TotalDebt[i].Series < s.TotalDebt[j].Series
		}
		return s.TotalDebt[i].Ilk < s.TotalDebt[j].Ilk
	})

	return json.Marshal(s)
}

// Load replaces the ledger content with the checkpointed state.
func (e *Engine) Load(data []byte) error {
	s := state{}
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.vaults = map[string]*types.Vault{}
	e.balances = map[string]*types.Balances{}
	e.inAuction = map[string]struct{}{}
	e.totalDebt = map[pairKey]*num.Uint{}

	for _, entry := range s.Vaults {
		e.vaults[entry.Vault.ID] = entry.Vault
		e.balances[entry.Vault.ID] = entry.Balances
	}
	for _, id := range s.InAuction {
		e.inAuction[id] = struct{}{}
	}
	for _, entry := range s.TotalDebt {
		e.totalDebt[pairKey{entry.Series, entry.Ilk}] = entry.Total
	}
	e.txSeq++
	return nil
}
