package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/crucible-fi/crucible/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "crucible"

var (
	setupOnce sync.Once

	ledgerOpCounter   *prometheus.CounterVec
	auctionCounter    *prometheus.CounterVec
	activeAuctions    prometheus.Gauge
	engineTimeCounter *prometheus.CounterVec
)

func setup() {
	ledgerOpCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Ledger operations processed, by operation and outcome",
		},
		[]string{"op", "status"},
	)
	auctionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "liquidation",
			Name:      "auctions_total",
			Help:      "Auction lifecycle transitions, by transition",
		},
		[]string{"transition"},
	)
	activeAuctions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "liquidation",
			Name:      "active_auctions",
			Help:      "Number of vaults currently under liquidation",
		},
	)
	engineTimeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engine_seconds_total",
			Help:      "Total time spent in engine calls, by engine and function",
		},
		[]string{"engine", "fn"},
	)

	prometheus.MustRegister(ledgerOpCounter, auctionCounter, activeAuctions, engineTimeCounter)
}

// LedgerOp increments the ledger operation counter, status is either
// "ok" or "error".
func LedgerOp(op, status string) {
	if ledgerOpCounter == nil {
		return
	}
	ledgerOpCounter.WithLabelValues(op, status).Inc()
}

// AuctionTransition records one of started/fill/cancelled/closed.
func AuctionTransition(transition string) {
	if auctionCounter == nil {
		return
	}
	auctionCounter.WithLabelValues(transition).Inc()
}

func SetActiveAuctions(n int) {
	if activeAuctions == nil {
		return
	}
	activeAuctions.Set(float64(n))
}

// Start registers the collectors and serves /metrics on the configured
// address. Call once from the node.
func Start(log *logging.Logger, conf Config) {
	if !conf.Enabled {
		return
	}
	setupOnce.Do(setup)

	mux := http.NewServeMux()
	mux.Handle(conf.Path, promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(conf.Address, mux); err != nil {
			log.Error("metrics server stopped", logging.Error(err))
		}
	}()
}

// StartForTests registers the collectors without serving them.
func StartForTests() {
	setupOnce.Do(setup)
}

// TimeCounter holds the start time and labels for one engine call, hiding
// the start time from being accidentally overwritten and removing the need
// to repeat the label values.
type TimeCounter struct {
	labelValues []string
	start       time.Time
}

// NewTimeCounter returns a new TimeCounter with the start time already recorded.
func NewTimeCounter(labelValues ...string) *TimeCounter {
	return &TimeCounter{
		labelValues: labelValues,
		start:       time.Now(),
	}
}

// EngineTimeCounterAdd adds the elapsed time to the engine time counter.
func (t *TimeCounter) EngineTimeCounterAdd() {
	if engineTimeCounter == nil {
		return
	}
	engineTimeCounter.WithLabelValues(t.labelValues...).Add(time.Since(t.start).Seconds())
}
