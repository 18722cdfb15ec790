package debttoken

import (
	"encoding/json"
	"sort"

	"github.com/crucible-fi/crucible/libs/num"
)

type holderEntry struct {
	Holder  string    `json:"holder"`
	Balance *num.Uint `json:"balance"`
}

type tokenEntry struct {
	Token    string        `json:"token"`
	Supply   *num.Uint     `json:"supply"`
	Balances []holderEntry `json:"balances"`
}

type state struct {
	Tokens []tokenEntry `json:"tokens"`
}

// Checkpoint serializes every enabled token with its holder balances and
// total supply, sorted for deterministic output.
func (b *Builtin) Checkpoint() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := state{}
	for id, t := range b.tokens {
		entry := tokenEntry{Token: id, Supply: t.supply.Clone()}
		for holder, bal := range t.balances {
			entry.Balances = append(entry.Balances, holderEntry{Holder: holder, Balance: bal.Clone()})
		}
		sort.Slice(entry.Balances, func(i, k int) bool { return entry.Balances[i].Holder < entry.Balances[k].Holder })
		s.Tokens = append(s.Tokens, entry)
	}
	sort.Slice(s.Tokens, func(i, k int) bool { return s.Tokens[i].Token < s.Tokens[k].Token })

	return json.Marshal(s)
}

// Load replaces the adapter content with the checkpointed state.
func (b *Builtin) Load(data []byte) error {
	s := state{}
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = map[string]*token{}
	for _, entry := range s.Tokens {
		t := &token{
			balances: map[string]*num.Uint{},
			supply:   entry.Supply,
		}
		for _, h := range entry.Balances {
			t.balances[h.Holder] = h.Balance
		}
		b.tokens[entry.Token] = t
	}
	return nil
}
