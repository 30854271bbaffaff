package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/auctionward/auctiond/internal/core/domain"
)

type randomnessRepositoryImpl struct {
	store *badgerhold.Store
}

func newRandomnessRepositoryImpl(store *badgerhold.Store) domain.RandomnessRepository {
	return randomnessRepositoryImpl{store}
}

func (r randomnessRepositoryImpl) AddRequest(
	ctx context.Context, request *domain.RandomnessRequest,
) error {
	query := badgerhold.Where("AssetID").Eq(request.AssetID)
	pending, err := r.findRequests(ctx, query)
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		return domain.ErrRequestAlreadyPending
	}

	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		return r.store.TxInsert(tx, request.ID, *request)
	}
	return r.store.Insert(request.ID, *request)
}

func (r randomnessRepositoryImpl) GetRequest(
	ctx context.Context, requestID string,
) (*domain.RandomnessRequest, error) {
	var request domain.RandomnessRequest
	var err error
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = r.store.TxGet(tx, requestID, &request)
	} else {
		err = r.store.Get(requestID, &request)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrUnknownRequest
		}
		return nil, err
	}

	return &request, nil
}

func (r randomnessRepositoryImpl) DeleteRequest(
	ctx context.Context, requestID string,
) error {
	var err error
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = r.store.TxDelete(tx, requestID, domain.RandomnessRequest{})
	} else {
		err = r.store.Delete(requestID, domain.RandomnessRequest{})
	}
	if err == badgerhold.ErrNotFound {
		return domain.ErrUnknownRequest
	}
	return err
}

func (r randomnessRepositoryImpl) findRequests(
	ctx context.Context, query *badgerhold.Query,
) ([]domain.RandomnessRequest, error) {
	var requests []domain.RandomnessRequest
	var err error
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = r.store.TxFind(tx, &requests, query)
	} else {
		err = r.store.Find(&requests, query)
	}

	return requests, err
}
