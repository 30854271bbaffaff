package domain

import "context"

// LedgerRepository is the abstraction for any kind of database intended to
// persist the pull-withdrawal table.
type LedgerRepository interface {
	// CreditBalance increments the withdrawable balance of an identity.
	CreditBalance(ctx context.Context, identity string, amount uint64) error
	// WithdrawAll zeroes the balance of an identity and returns the amount
	// that was standing. A zero return on a missing identity is not an error.
	WithdrawAll(ctx context.Context, identity string) (uint64, error)
	// GetBalance returns the standing balance of an identity, zero if none.
	GetBalance(ctx context.Context, identity string) (uint64, error)
	// GetAllBalances returns every non-zero ledger entry.
	GetAllBalances(ctx context.Context) ([]LedgerEntry, error)
	// RecordDeposit increments the monotonic total of value deposited.
	RecordDeposit(ctx context.Context, amount uint64) error
	// RecordWithdrawal increments the monotonic total of value paid out.
	RecordWithdrawal(ctx context.Context, amount uint64) error
	// GetStats returns the deposit/withdrawal totals.
	GetStats(ctx context.Context) (*LedgerStats, error)
}
