package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/auctionward/auctiond/internal/core/domain"
)

const ledgerStatsKey = "ledger_stats"

type ledgerRepositoryImpl struct {
	store *badgerhold.Store
}

func newLedgerRepositoryImpl(store *badgerhold.Store) domain.LedgerRepository {
	return ledgerRepositoryImpl{store}
}

func (r ledgerRepositoryImpl) CreditBalance(
	ctx context.Context, identity string, amount uint64,
) error {
	if amount == 0 {
		return domain.ErrInvalidAmount
	}

	entry, err := r.getEntry(ctx, identity)
	if err != nil {
		return err
	}
	if entry == nil {
		entry = &domain.LedgerEntry{Identity: identity}
	}
	entry.Balance += amount

	return r.upsertEntry(ctx, *entry)
}

func (r ledgerRepositoryImpl) WithdrawAll(
	ctx context.Context, identity string,
) (uint64, error) {
	entry, err := r.getEntry(ctx, identity)
	if err != nil {
		return 0, err
	}
	if entry == nil || entry.Balance == 0 {
		return 0, nil
	}

	amount := entry.Balance
	entry.Balance = 0
	if err := r.upsertEntry(ctx, *entry); err != nil {
		return 0, err
	}
	return amount, nil
}

func (r ledgerRepositoryImpl) GetBalance(
	ctx context.Context, identity string,
) (uint64, error) {
	entry, err := r.getEntry(ctx, identity)
	if err != nil {
		return 0, err
	}
	if entry == nil {
		return 0, nil
	}
	return entry.Balance, nil
}

func (r ledgerRepositoryImpl) GetAllBalances(
	ctx context.Context,
) ([]domain.LedgerEntry, error) {
	query := badgerhold.Where("Balance").Gt(uint64(0))

	var entries []domain.LedgerEntry
	var err error
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = r.store.TxFind(tx, &entries, query)
	} else {
		err = r.store.Find(&entries, query)
	}

	return entries, err
}

func (r ledgerRepositoryImpl) RecordDeposit(
	ctx context.Context, amount uint64,
) error {
	stats, err := r.getStats(ctx)
	if err != nil {
		return err
	}
	stats.TotalDeposited += amount
	return r.upsertStats(ctx, *stats)
}

func (r ledgerRepositoryImpl) RecordWithdrawal(
	ctx context.Context, amount uint64,
) error {
	stats, err := r.getStats(ctx)
	if err != nil {
		return err
	}
	stats.TotalWithdrawn += amount
	return r.upsertStats(ctx, *stats)
}

func (r ledgerRepositoryImpl) GetStats(
	ctx context.Context,
) (*domain.LedgerStats, error) {
	return r.getStats(ctx)
}

func (r ledgerRepositoryImpl) getEntry(
	ctx context.Context, identity string,
) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	var err error
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = r.store.TxGet(tx, identity, &entry)
	} else {
		err = r.store.Get(identity, &entry)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

func (r ledgerRepositoryImpl) upsertEntry(
	ctx context.Context, entry domain.LedgerEntry,
) error {
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		return r.store.TxUpsert(tx, entry.Identity, entry)
	}
	return r.store.Upsert(entry.Identity, entry)
}

func (r ledgerRepositoryImpl) getStats(
	ctx context.Context,
) (*domain.LedgerStats, error) {
	var stats domain.LedgerStats
	var err error
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		err = r.store.TxGet(tx, ledgerStatsKey, &stats)
	} else {
		err = r.store.Get(ledgerStatsKey, &stats)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return &domain.LedgerStats{}, nil
		}
		return nil, err
	}

	return &stats, nil
}

func (r ledgerRepositoryImpl) upsertStats(
	ctx context.Context, stats domain.LedgerStats,
) error {
	if ctx.Value("tx") != nil {
		tx := ctx.Value("tx").(*badger.Txn)
		return r.store.TxUpsert(tx, ledgerStatsKey, stats)
	}
	return r.store.Upsert(ledgerStatsKey, stats)
}
