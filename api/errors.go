package api

import (
	"errors"
	"net/http"

	"github.com/crucible-fi/crucible/core/registry"
	"github.com/crucible-fi/crucible/core/types"
)

// statusFor maps the engine error taxonomy onto HTTP status codes.
// Anything unmapped is a plain bad request, the engines never leak
// internal failures as typed errors.
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrVaultNotFound),
		errors.Is(err, types.ErrSeriesNotFound),
		errors.Is(err, types.ErrAssetNotFound),
		errors.Is(err, types.ErrOracleNotFound),
		errors.Is(err, types.ErrNotAuctioning):
		return http.StatusNotFound
	case errors.Is(err, types.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, types.ErrVaultInAuction),
		errors.Is(err, types.ErrAlreadyAuctioning),
		errors.Is(err, types.ErrStillCollateralized),
		errors.Is(err, types.ErrStillUndercollateralized),
		errors.Is(err, types.ErrVaultHasDebtOrCollateral),
		errors.Is(err, registry.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, types.ErrStaleOracle):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}
