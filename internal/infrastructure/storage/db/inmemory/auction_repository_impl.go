package inmemory

import (
	"context"

	"github.com/auctionward/auctiond/internal/core/domain"
)

type auctionRepositoryImpl struct {
	store *inmemoryStore
}

// NewAuctionRepositoryImpl returns a new inmemory AuctionRepository
// implementation.
func NewAuctionRepositoryImpl(store *inmemoryStore) domain.AuctionRepository {
	return &auctionRepositoryImpl{store}
}

func (r auctionRepositoryImpl) AddAuction(
	_ context.Context, auction *domain.Auction,
) error {
	r.store.auctionsLocker.Lock()
	defer r.store.auctionsLocker.Unlock()

	if existing, ok := r.store.auctions[auction.AssetID]; ok && !existing.IsTerminal() {
		return domain.ErrAlreadyListed
	}

	copied := *auction
	r.store.auctions[auction.AssetID] = &copied
	return nil
}

func (r auctionRepositoryImpl) GetAuction(
	_ context.Context, assetID string,
) (*domain.Auction, error) {
	r.store.auctionsLocker.RLock()
	defer r.store.auctionsLocker.RUnlock()

	auction, ok := r.store.auctions[assetID]
	if !ok {
		return nil, domain.ErrAuctionNotFound
	}
	copied := *auction
	return &copied, nil
}

func (r auctionRepositoryImpl) GetAllAuctions(
	_ context.Context,
) ([]domain.Auction, error) {
	r.store.auctionsLocker.RLock()
	defer r.store.auctionsLocker.RUnlock()

	auctions := make([]domain.Auction, 0, len(r.store.auctions))
	for _, a := range r.store.auctions {
		auctions = append(auctions, *a)
	}
	return auctions, nil
}

func (r auctionRepositoryImpl) GetExpiredActiveAuctions(
	_ context.Context, now int64,
) ([]domain.Auction, error) {
	r.store.auctionsLocker.RLock()
	defer r.store.auctionsLocker.RUnlock()

	auctions := make([]domain.Auction, 0)
	for _, a := range r.store.auctions {
		if a.IsActive() && a.IsExpired(now) {
			auctions = append(auctions, *a)
		}
	}
	return auctions, nil
}

func (r auctionRepositoryImpl) UpdateAuction(
	ctx context.Context,
	assetID string,
	updateFn func(a *domain.Auction) (*domain.Auction, error),
) error {
	r.store.auctionsLocker.Lock()
	defer r.store.auctionsLocker.Unlock()

	currentAuction, ok := r.store.auctions[assetID]
	if !ok {
		return domain.ErrAuctionNotFound
	}

	copied := *currentAuction
	updatedAuction, err := updateFn(&copied)
	if err != nil {
		return err
	}

	r.store.auctions[assetID] = updatedAuction
	return nil
}
