package custody

import (
	"encoding/json"
	"sort"

	"github.com/crucible-fi/crucible/libs/num"
)

type holderEntry struct {
	Holder  string    `json:"holder"`
	Balance *num.Uint `json:"balance"`
}

type assetEntry struct {
	Asset    string        `json:"asset"`
	Held     *num.Uint     `json:"held"`
	Balances []holderEntry `json:"balances"`
}

type state struct {
	Assets []assetEntry `json:"assets"`
}

// Checkpoint serializes every enabled asset with its free balances and the
// amount in custody. Output is sorted so the same state always serializes
// to the same bytes.
func (b *Builtin) Checkpoint() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := state{}
	for id, j := range b.assets {
		entry := assetEntry{Asset: id, Held: j.held.Clone()}
		for holder, bal := range j.balances {
			entry.Balances = append(entry.Balances, holderEntry{Holder: holder, Balance: bal.Clone()})
		}
		sort.Slice(entry.Balances, func(i, k int) bool { return entry.Balances[i].Holder < entry.Balances[k].Holder })
		s.Assets = append(s.Assets, entry)
	}
	sort.Slice(s.Assets, func(i, k int) bool { return s.Assets[i].Asset < s.Assets[k].Asset })

	return json.Marshal(s)
}

// Load replaces the gateway content with the checkpointed state.
func (b *Builtin) Load(data []byte) error {
	s := state{}
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.assets = map[string]*join{}
	for _, entry := range s.Assets {
		j := &join{
			balances: map[string]*num.Uint{},
			held:     entry.Held,
		}
		for _, h := range entry.Balances {
			j.balances[h.Holder] = h.Balance
		}
		b.assets[entry.Asset] = j
	}
	return nil
}
