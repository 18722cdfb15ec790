package events

import (
	"context"
	"sync/atomic"
)

type Type int

const (
	// All is used by subscribers that want every event, it has no
	// corresponding payload.
	All Type = iota
	VaultCreatedEvent
	VaultDestroyedEvent
	VaultOwnerChangedEvent
	BalancesUpdatedEvent
	AuctionStartedEvent
	AuctionFillEvent
	AuctionCancelledEvent
	AuctionClosedEvent
)

var eventStrings = map[Type]string{
	All:                    "ALL",
	VaultCreatedEvent:      "VaultCreated",
	VaultDestroyedEvent:    "VaultDestroyed",
	VaultOwnerChangedEvent: "VaultOwnerChanged",
	BalancesUpdatedEvent:   "BalancesUpdated",
	AuctionStartedEvent:    "AuctionStarted",
	AuctionFillEvent:       "AuctionFill",
	AuctionCancelledEvent:  "AuctionCancelled",
	AuctionClosedEvent:     "AuctionClosed",
}

func (t Type) String() string {
	s, ok := eventStrings[t]
	if !ok {
		return "UNKNOWN"
	}
	return s
}

type Event interface {
	Type() Type
	Context() context.Context
	Sequence() uint64
}

var eventSeq uint64

// Base is the common denominator all bus events share.
type Base struct {
	ctx context.Context
	seq uint64
	et  Type
}

func newBase(ctx context.Context, t Type) *Base {
	return &Base{
		ctx: ctx,
		seq: atomic.AddUint64(&eventSeq, 1),
		et:  t,
	}
}

func (b Base) Type() Type {
	return b.et
}

func (b Base) Context() context.Context {
	return b.ctx
}

func (b Base) Sequence() uint64 {
	return b.seq
}
