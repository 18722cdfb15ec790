package custody

import (
	"github.com/crucible-fi/crucible/libs/num"
)

// Gateway moves underlying assets in and out of the system's custody.
// Amounts are in the asset's native decimal precision. Implementations are
// trusted to faithfully report balances; a failed transfer aborts the
// enclosing ledger transaction.
type Gateway interface {
	// Deposit takes amount of the asset from the holder into custody.
	Deposit(assetID, from string, amount *num.Uint) error
	// Withdraw releases amount of the asset from custody to the holder.
	Withdraw(assetID, to string, amount *num.Uint) error
	// BalanceOf reports the holder's free balance for the asset.
	BalanceOf(assetID, holder string) (*num.Uint, error)
}
