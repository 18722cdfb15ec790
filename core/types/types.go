package types

import (
	"time"

	"github.com/crucible-fi/crucible/libs/num"
)

// AssetType describes an underlying asset accepted by the system.
// Immutable once registered.
type AssetType struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

func (a AssetType) Clone() *AssetType {
	cpy := a
	return &cpy
}

// Series is a cohort of debt sharing one fixed maturity and one base asset.
// Immutable after creation except for its accepted collateral set, which
// lives in the registry and only grows.
type Series struct {
	ID        string    `json:"id"`
	BaseAsset string    `json:"baseAsset"`
	Maturity  time.Time `json:"maturity"`
	DebtToken string    `json:"debtToken"`
}

func (s Series) Clone() *Series {
	cpy := s
	return &cpy
}

func (s Series) Matured(now time.Time) bool {
	return !now.Before(s.Maturity)
}

// DebtLimits bounds the debt a Series x collateral pair may carry.
// Ceiling is the maximum total debt across all vaults in the pair,
// Floor is the minimum non-zero debt per vault (the dust floor).
type DebtLimits struct {
	Ceiling  *num.Uint `json:"ceiling"`
	Floor    *num.Uint `json:"floor"`
	Decimals uint8     `json:"decimals"`
}

func (d DebtLimits) Clone() *DebtLimits {
	return &DebtLimits{
		Ceiling:  d.Ceiling.Clone(),
		Floor:    d.Floor.Clone(),
		Decimals: d.Decimals,
	}
}

// CollateralTerms sets the collateralization requirement for a
// Series x collateral pair. Ratio is minimum collateral value over debt
// value, never below one.
type CollateralTerms struct {
	Ratio  num.Decimal `json:"ratio"`
	Oracle string      `json:"oracle"`
}

func (c CollateralTerms) Clone() *CollateralTerms {
	cpy := c
	return &cpy
}

// Vault is a single borrower position. Balances are tracked separately so
// a vault record itself is cheap to copy around.
type Vault struct {
	ID     string `json:"id"`
	Owner  string `json:"owner"`
	Series string `json:"series"`
	Ilk    string `json:"ilk"`
}

func (v Vault) Clone() *Vault {
	cpy := v
	return &cpy
}

// Balances holds the collateral (ink) and debt (art) recorded against a
// vault. Art is in debt instrument units before rate accrual.
type Balances struct {
	Ink *num.Uint `json:"ink"`
	Art *num.Uint `json:"art"`
}

func NewBalances() *Balances {
	return &Balances{
		Ink: num.UintZero(),
		Art: num.UintZero(),
	}
}

func (b Balances) Clone() *Balances {
	return &Balances{
		Ink: b.Ink.Clone(),
		Art: b.Art.Clone(),
	}
}

func (b Balances) IsZero() bool {
	return b.Ink.IsZero() && b.Art.IsZero()
}

// AuctionParams is the per-ilk liquidation configuration, read at auction
// start and frozen for that auction's lifetime.
type AuctionParams struct {
	Duration          time.Duration `json:"duration"`
	InitialProportion num.Decimal   `json:"initialProportion"`
	FloorProportion   num.Decimal   `json:"floorProportion"`
}

func (p AuctionParams) Clone() *AuctionParams {
	cpy := p
	return &cpy
}

// Auction is the record of a vault under liquidation. Ink0 and Art0 are the
// balances snapshotted when the auction started, the decaying price always
// refers back to them.
type Auction struct {
	VaultID    string        `json:"vaultId"`
	Auctioneer string        `json:"auctioneer"`
	Start      time.Time     `json:"start"`
	Ink0       *num.Uint     `json:"ink0"`
	Art0       *num.Uint     `json:"art0"`
	Params     AuctionParams `json:"params"`
}

func (a Auction) Clone() *Auction {
	cpy := a
	cpy.Ink0 = a.Ink0.Clone()
	cpy.Art0 = a.Art0.Clone()
	return &cpy
}
