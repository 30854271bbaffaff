package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auctionsCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctiond",
		Name:      "auctions_created_total",
		Help:      "Number of auctions created.",
	})
	bidsPlacedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctiond",
		Name:      "bids_placed_total",
		Help:      "Number of accepted bids.",
	})
	auctionsSettledCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctiond",
		Name:      "auctions_settled_total",
		Help:      "Number of auctions brought to the Ended status.",
	})
	auctionsCancelledCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctiond",
		Name:      "auctions_cancelled_total",
		Help:      "Number of cancelled auctions.",
	})
	withdrawalsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctiond",
		Name:      "withdrawals_total",
		Help:      "Number of non-empty ledger withdrawals.",
	})
	upkeepRunsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctiond",
		Name:      "upkeep_runs_total",
		Help:      "Number of performed upkeep actions.",
	})
	randomnessFulfilledCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auctiond",
		Name:      "randomness_fulfilled_total",
		Help:      "Number of consumed randomness fulfillments.",
	})
)
