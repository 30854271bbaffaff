package inmemory

import (
	"context"

	"github.com/auctionward/auctiond/internal/core/domain"
)

type ledgerRepositoryImpl struct {
	store *inmemoryStore
}

// NewLedgerRepositoryImpl returns a new inmemory LedgerRepository
// implementation.
func NewLedgerRepositoryImpl(store *inmemoryStore) domain.LedgerRepository {
	return &ledgerRepositoryImpl{store}
}

func (r ledgerRepositoryImpl) CreditBalance(
	_ context.Context, identity string, amount uint64,
) error {
	if amount == 0 {
		return domain.ErrInvalidAmount
	}

	r.store.ledgerLocker.Lock()
	defer r.store.ledgerLocker.Unlock()

	r.store.balances[identity] += amount
	return nil
}

func (r ledgerRepositoryImpl) WithdrawAll(
	_ context.Context, identity string,
) (uint64, error) {
	r.store.ledgerLocker.Lock()
	defer r.store.ledgerLocker.Unlock()

	amount := r.store.balances[identity]
	delete(r.store.balances, identity)
	return amount, nil
}

func (r ledgerRepositoryImpl) GetBalance(
	_ context.Context, identity string,
) (uint64, error) {
	r.store.ledgerLocker.RLock()
	defer r.store.ledgerLocker.RUnlock()

	return r.store.balances[identity], nil
}

func (r ledgerRepositoryImpl) GetAllBalances(
	_ context.Context,
) ([]domain.LedgerEntry, error) {
	r.store.ledgerLocker.RLock()
	defer r.store.ledgerLocker.RUnlock()

	entries := make([]domain.LedgerEntry, 0, len(r.store.balances))
	for identity, balance := range r.store.balances {
		if balance > 0 {
			entries = append(entries, domain.LedgerEntry{
				Identity: identity,
				Balance:  balance,
			})
		}
	}
	return entries, nil
}

func (r ledgerRepositoryImpl) RecordDeposit(
	_ context.Context, amount uint64,
) error {
	r.store.ledgerLocker.Lock()
	defer r.store.ledgerLocker.Unlock()

	r.store.stats.TotalDeposited += amount
	return nil
}

func (r ledgerRepositoryImpl) RecordWithdrawal(
	_ context.Context, amount uint64,
) error {
	r.store.ledgerLocker.Lock()
	defer r.store.ledgerLocker.Unlock()

	r.store.stats.TotalWithdrawn += amount
	return nil
}

func (r ledgerRepositoryImpl) GetStats(
	_ context.Context,
) (*domain.LedgerStats, error) {
	r.store.ledgerLocker.RLock()
	defer r.store.ledgerLocker.RUnlock()

	stats := *r.store.stats
	return &stats, nil
}
