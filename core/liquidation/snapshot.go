package liquidation

import (
	"encoding/json"
	"sort"

	"github.com/crucible-fi/crucible/core/metrics"
	"github.com/crucible-fi/crucible/core/types"
)

type state struct {
	Auctions []*types.Auction `json:"auctions"`
}

// Checkpoint serializes the active auctions, sorted by vault id for
// deterministic output.
func (e *Engine) Checkpoint() ([]byte, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := state{}
	for _, a := range e.auctions {
		s.Auctions = append(s.Auctions, a.Clone())
	}
	sort.Slice(s.Auctions, func(i, j int) bool { return s.Auctions[i].VaultID < s.Auctions[j].VaultID })
	return json.Marshal(s)
}

// Load replaces the active auction set with the checkpointed state.
func (e *Engine) Load(data []byte) error {
	s := state{}
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.auctions = map[string]*types.Auction{}
	for _, a := range s.Auctions {
		e.auctions[a.VaultID] = a
	}
	metrics.SetActiveAuctions(len(e.auctions))
	return nil
}
