package inmemory

import (
	"context"
	"errors"

	"github.com/auctionward/auctiond/internal/core/domain"
)

var errFeeConfigNotInitialized = errors.New("fee configuration is not initialized")

type feeRepositoryImpl struct {
	store *inmemoryStore
}

// NewFeeRepositoryImpl returns a new inmemory FeeRepository implementation.
func NewFeeRepositoryImpl(store *inmemoryStore) domain.FeeRepository {
	return &feeRepositoryImpl{store}
}

func (r feeRepositoryImpl) InitFeeConfig(
	_ context.Context, config *domain.FeeConfig,
) error {
	r.store.feeLocker.Lock()
	defer r.store.feeLocker.Unlock()

	if r.store.feeConfig != nil {
		return nil
	}
	copied := *config
	r.store.feeConfig = &copied
	return nil
}

func (r feeRepositoryImpl) GetFeeConfig(
	_ context.Context,
) (*domain.FeeConfig, error) {
	r.store.feeLocker.RLock()
	defer r.store.feeLocker.RUnlock()

	if r.store.feeConfig == nil {
		return nil, errFeeConfigNotInitialized
	}
	copied := *r.store.feeConfig
	return &copied, nil
}

func (r feeRepositoryImpl) UpdateFeeConfig(
	ctx context.Context,
	updateFn func(c *domain.FeeConfig) (*domain.FeeConfig, error),
) error {
	r.store.feeLocker.Lock()
	defer r.store.feeLocker.Unlock()

	if r.store.feeConfig == nil {
		return errFeeConfigNotInitialized
	}

	copied := *r.store.feeConfig
	updatedConfig, err := updateFn(&copied)
	if err != nil {
		return err
	}

	r.store.feeConfig = updatedConfig
	return nil
}
