package types

import "errors"

// The full error taxonomy surfaced by the ledger and the liquidation
// engine. Every entry point either fully commits or fails with one of
// these, there is no partial application.
var (
	ErrNotOwner                 = errors.New("caller is not the vault owner")
	ErrUnsupportedCollateral    = errors.New("collateral not accepted by series")
	ErrUndercollateralized      = errors.New("vault would be undercollateralized")
	ErrDustLimitBreached        = errors.New("debt below the dust floor")
	ErrCeilingExceeded          = errors.New("series debt ceiling exceeded")
	ErrInsufficientBalance      = errors.New("balance would go negative")
	ErrVaultInAuction           = errors.New("vault is under liquidation")
	ErrAlreadyAuctioning        = errors.New("vault already has an active auction")
	ErrNotAuctioning            = errors.New("vault has no active auction")
	ErrStillCollateralized      = errors.New("vault is still collateralized")
	ErrStillUndercollateralized = errors.New("vault is still undercollateralized")
	ErrStaleOracle              = errors.New("oracle value is stale")
	ErrVaultHasDebtOrCollateral = errors.New("vault still holds debt or collateral")

	ErrVaultNotFound    = errors.New("vault not found")
	ErrSeriesNotFound   = errors.New("series not found")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrOracleNotFound   = errors.New("oracle not found")
	ErrIlkNotConfigured = errors.New("no terms configured for series and collateral pair")
	ErrSeriesMismatch   = errors.New("vaults belong to different series")
)
