package events

import (
	"context"

	"github.com/crucible-fi/crucible/core/types"
	"github.com/crucible-fi/crucible/libs/num"
)

type AuctionStarted struct {
	*Base
	auction types.Auction
}

func NewAuctionStartedEvent(ctx context.Context, auction *types.Auction) *AuctionStarted {
	return &AuctionStarted{
		Base:    newBase(ctx, AuctionStartedEvent),
		auction: *auction.Clone(),
	}
}

func (e AuctionStarted) Auction() types.Auction {
	return e.auction
}

// AuctionFill is emitted for every partial or full settlement against an
// auctioned vault.
type AuctionFill struct {
	*Base
	vaultID           string
	bidder            string
	debtRepaid        *num.Uint
	collateralGranted *num.Uint
}

func NewAuctionFillEvent(ctx context.Context, vaultID, bidder string, debtRepaid, collateralGranted *num.Uint) *AuctionFill {
	return &AuctionFill{
		Base:              newBase(ctx, AuctionFillEvent),
		vaultID:           vaultID,
		bidder:            bidder,
		debtRepaid:        debtRepaid.Clone(),
		collateralGranted: collateralGranted.Clone(),
	}
}

func (e AuctionFill) VaultID() string {
	return e.vaultID
}

func (e AuctionFill) Bidder() string {
	return e.bidder
}

func (e AuctionFill) DebtRepaid() *num.Uint {
	return e.debtRepaid.Clone()
}

func (e AuctionFill) CollateralGranted() *num.Uint {
	return e.collateralGranted.Clone()
}

type AuctionCancelled struct {
	*Base
	vaultID string
}

func NewAuctionCancelledEvent(ctx context.Context, vaultID string) *AuctionCancelled {
	return &AuctionCancelled{
		Base:    newBase(ctx, AuctionCancelledEvent),
		vaultID: vaultID,
	}
}

func (e AuctionCancelled) VaultID() string {
	return e.vaultID
}

// AuctionClosed is emitted when an auctioned vault's debt reaches zero and
// the vault, with any leftover collateral, returns to its owner's control.
type AuctionClosed struct {
	*Base
	vaultID     string
	leftoverInk *num.Uint
}

func NewAuctionClosedEvent(ctx context.Context, vaultID string, leftoverInk *num.Uint) *AuctionClosed {
	return &AuctionClosed{
		Base:        newBase(ctx, AuctionClosedEvent),
		vaultID:     vaultID,
		leftoverInk: leftoverInk.Clone(),
	}
}

func (e AuctionClosed) VaultID() string {
	return e.vaultID
}

func (e AuctionClosed) LeftoverInk() *num.Uint {
	return e.leftoverInk.Clone()
}
