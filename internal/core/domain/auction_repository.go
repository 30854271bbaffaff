package domain

import "context"

// AuctionRepository is the abstraction for any kind of database intended to
// persist Auctions.
type AuctionRepository interface {
	// AddAuction persists a new auction. It returns ErrAlreadyListed if a
	// non-terminal auction already exists for the same asset id.
	AddAuction(ctx context.Context, auction *Auction) error
	// GetAuction returns the auction for the given asset id, or
	// ErrAuctionNotFound.
	GetAuction(ctx context.Context, assetID string) (*Auction, error)
	// GetAllAuctions returns all the auctions stored in the repository.
	GetAllAuctions(ctx context.Context) ([]Auction, error)
	// GetExpiredActiveAuctions returns all the active auctions whose end time
	// has elapsed at the given timestamp.
	GetExpiredActiveAuctions(ctx context.Context, now int64) ([]Auction, error)
	// UpdateAuction allows to commit multiple changes to the same auction in
	// a transactional way.
	UpdateAuction(
		ctx context.Context,
		assetID string,
		updateFn func(a *Auction) (*Auction, error),
	) error
}
