package ports

import (
	"context"

	"github.com/auctionward/auctiond/internal/core/domain"
)

// RepoManager gives access to every repository of the engine and to the
// transaction primitive tying their changes together. Monetary effects are
// always committed in the same transaction as the state transition that
// caused them.
type RepoManager interface {
	AuctionRepository() domain.AuctionRepository
	LedgerRepository() domain.LedgerRepository
	FeeRepository() domain.FeeRepository
	RandomnessRepository() domain.RandomnessRepository

	Close()

	RunTransaction(
		ctx context.Context,
		readOnly bool,
		handler func(ctx context.Context) (interface{}, error),
	) (interface{}, error)
}

// Transaction interface defines the method to commit or discard a database
// transaction.
type Transaction interface {
	Commit() error
	Discard()
}
