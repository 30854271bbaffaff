package dbbadger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/auctionward/auctiond/internal/core/domain"
)

const feeConfigKey = "fee_config"

var errFeeConfigNotInitialized = errors.New("fee configuration is not initialized")

type feeRepositoryImpl struct {
	store *badgerhold.Store
}

func newFeeRepositoryImpl(store *badgerhold.Store) domain.FeeRepository {
	return feeRepositoryImpl{store}
}

func (r feeRepositoryImpl) InitFeeConfig(
	ctx context.Context, config *domain.FeeConfig,
) error {
	existing, err := r.getFeeConfig(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	return r.upsertFeeConfig(ctx, *config)
}

func (r feeRepositoryImpl) GetFeeConfig(
	ctx context.Context,
) (*domain.FeeConfig, error) {
	config, err := r.getFeeConfig(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, errFeeConfigNotInitialized
	}
	return config, nil
}

func (r feeRepositoryImpl) UpdateFeeConfig(
	ctx context.Context,
	updateFn func(c *domain.FeeConfig) (*domain.FeeConfig, error),
) error {
	currentConfig, err := r.getFeeConfig(ctx)
	if err != nil {
		return err
	}
	if currentConfig == nil {
		return errFeeConfigNotInitialized
	}

	updatedConfig, err := updateFn(currentConfig)
	if err != nil {
		return err
	}

	return r.upsertFeeConfig(ctx, *updatedConfig)
}

func (r feeRepositoryImpl) getFeeConfig(
	ctx context.Context,
) (*domain.FeeConfig, error) {
	var config domain.FeeConfig
	var err error
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = r.store.TxGet(tx, feeConfigKey, &config)
	} else {
		err = r.store.Get(feeConfigKey, &config)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &config, nil
}

func (r feeRepositoryImpl) upsertFeeConfig(
	ctx context.Context, config domain.FeeConfig,
) error {
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		return r.store.TxUpsert(tx, feeConfigKey, config)
	}
	return r.store.Upsert(feeConfigKey, config)
}
