package domain

// LedgerEntry maps an identity to its withdrawable balance. Balances are
// global across auctions: they are credited when a bidder is outbid, when an
// auction with a standing bid is cancelled, and with the seller/platform
// proceeds at settlement. They are zeroed on withdrawal.
type LedgerEntry struct {
	Identity string
	Balance  uint64
}

// LedgerStats tracks the monotonic totals of value that ever entered and left
// the engine. Together with the standing balances and the escrowed highest
// bids they express the fund-conservation invariant.
type LedgerStats struct {
	TotalDeposited uint64
	TotalWithdrawn uint64
}
