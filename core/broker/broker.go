package broker

import (
	"sync"

	"github.com/crucible-fi/crucible/core/events"
	"github.com/crucible-fi/crucible/logging"
)

const namedLogger = "broker"

// Interface is the bit of the broker the engines depend on.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks github.com/crucible-fi/crucible/core/broker Interface
type Interface interface {
	Send(event events.Event)
	SendBatch(events []events.Event)
}

// Subscriber receives events pushed to the broker for the types it
// declares. Push is called synchronously from the sending transaction, so
// subscribers must not block.
type Subscriber interface {
	Push(evts ...events.Event)
	Types() []events.Type
}

type subscription struct {
	Subscriber
	id int
}

// Broker fans events out to subscribers. It is deliberately synchronous:
// the ledger processes one transaction at a time, and events for a
// transaction are observed before the next one starts.
type Broker struct {
	Config
	log *logging.Logger

	mu     sync.Mutex
	nextID int
	subs   map[int]subscription
	tSubs  map[events.Type]map[int]struct{}
}

func New(log *logging.Logger, config Config) *Broker {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Broker{
		Config: config,
		log:    log,
		subs:   map[int]subscription{},
		tSubs:  map[events.Type]map[int]struct{}{},
	}
}

// Subscribe registers the subscriber for the event types it declares and
// returns the key to unsubscribe with.
func (b *Broker) Subscribe(s Subscriber) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[id] = subscription{Subscriber: s, id: id}
	for _, t := range s.Types() {
		if _, ok := b.tSubs[t]; !ok {
			b.tSubs[t] = map[int]struct{}{}
		}
		b.tSubs[t][id] = struct{}{}
	}
	return id
}

func (b *Broker) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, ok := b.subs[id]
	if !ok {
		return
	}
	for _, t := range sub.Types() {
		delete(b.tSubs[t], id)
	}
	delete(b.subs, id)
}

func (b *Broker) Send(event events.Event) {
	b.SendBatch([]events.Event{event})
}

func (b *Broker) SendBatch(evts []events.Event) {
	if len(evts) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, e := range evts {
		if b.log.GetLevel() == logging.DebugLevel {
			b.log.Debug("sending event",
				logging.String("type", e.Type().String()),
				logging.Uint64("seq", e.Sequence()),
			)
		}
		for id := range b.tSubs[e.Type()] {
			b.subs[id].Push(e)
		}
		for id := range b.tSubs[events.All] {
			b.subs[id].Push(e)
		}
	}
}
