package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/auctionward/auctiond/internal/core/domain"
)

type auctionRepositoryImpl struct {
	store *badgerhold.Store
}

func newAuctionRepositoryImpl(store *badgerhold.Store) domain.AuctionRepository {
	return auctionRepositoryImpl{store}
}

func (r auctionRepositoryImpl) AddAuction(
	ctx context.Context, auction *domain.Auction,
) error {
	existing, err := r.getAuction(ctx, auction.AssetID)
	if err != nil && err != domain.ErrAuctionNotFound {
		return err
	}
	if existing != nil && !existing.IsTerminal() {
		return domain.ErrAlreadyListed
	}

	return r.upsertAuction(ctx, *auction)
}

func (r auctionRepositoryImpl) GetAuction(
	ctx context.Context, assetID string,
) (*domain.Auction, error) {
	return r.getAuction(ctx, assetID)
}

func (r auctionRepositoryImpl) GetAllAuctions(
	ctx context.Context,
) ([]domain.Auction, error) {
	return r.findAuctions(ctx, &badgerhold.Query{})
}

func (r auctionRepositoryImpl) GetExpiredActiveAuctions(
	ctx context.Context, now int64,
) ([]domain.Auction, error) {
	query := badgerhold.
		Where("Status").Eq(domain.AuctionStatusActive).
		And("EndTime").Le(now)
	return r.findAuctions(ctx, query)
}

func (r auctionRepositoryImpl) UpdateAuction(
	ctx context.Context,
	assetID string,
	updateFn func(a *domain.Auction) (*domain.Auction, error),
) error {
	currentAuction, err := r.getAuction(ctx, assetID)
	if err != nil {
		return err
	}

	updatedAuction, err := updateFn(currentAuction)
	if err != nil {
		return err
	}

	return r.upsertAuction(ctx, *updatedAuction)
}

func (r auctionRepositoryImpl) getAuction(
	ctx context.Context, assetID string,
) (*domain.Auction, error) {
	var auction domain.Auction
	var err error
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = r.store.TxGet(tx, assetID, &auction)
	} else {
		err = r.store.Get(assetID, &auction)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrAuctionNotFound
		}
		return nil, err
	}

	return &auction, nil
}

func (r auctionRepositoryImpl) findAuctions(
	ctx context.Context, query *badgerhold.Query,
) ([]domain.Auction, error) {
	var auctions []domain.Auction
	var err error
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = r.store.TxFind(tx, &auctions, query)
	} else {
		err = r.store.Find(&auctions, query)
	}

	return auctions, err
}

func (r auctionRepositoryImpl) upsertAuction(
	ctx context.Context, auction domain.Auction,
) error {
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		return r.store.TxUpsert(tx, auction.AssetID, auction)
	}
	return r.store.Upsert(auction.AssetID, auction)
}
