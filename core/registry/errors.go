package registry

import "errors"

var (
	ErrAlreadyExists        = errors.New("record already exists")
	ErrRatioBelowOne        = errors.New("collateralization ratio below one")
	ErrInvalidAuctionParams = errors.New("invalid auction parameters")
	ErrNoAuctionParams      = errors.New("no auction parameters for collateral")
)
