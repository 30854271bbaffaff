package ports

import "context"

// Treasury is the external payment rail holding the funds escrowed by the
// engine. Collect pulls a bidder's funds into escrow, Payout releases a
// ledger balance to its owner.
type Treasury interface {
	Collect(ctx context.Context, from string, amount uint64) error
	Payout(ctx context.Context, to string, amount uint64) error
}
