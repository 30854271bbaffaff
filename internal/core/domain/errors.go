package domain

import "errors"

var (
	// ErrInvalidWindow is thrown when creating an auction whose start time is
	// not strictly before its end time.
	ErrInvalidWindow = errors.New("auction start time must be before end time")
	// ErrAlreadyListed is thrown when creating an auction for an asset that
	// already has a non-terminal one.
	ErrAlreadyListed = errors.New("asset already has a live auction")
	// ErrNotOwner is thrown when the seller is not the verified owner of the
	// asset being listed.
	ErrNotOwner = errors.New("seller is not the owner of the asset")
	// ErrAuctionNotFound ...
	ErrAuctionNotFound = errors.New("auction not found")
	// ErrStateConflict is thrown by the transition primitive when the current
	// state does not match the expected one.
	ErrStateConflict = errors.New("auction is not in the expected state")
	// ErrAuctionNotActive is thrown when bidding or cancelling an auction that
	// is resolving or already terminal.
	ErrAuctionNotActive = errors.New("auction is not active")
	// ErrWindowClosed is thrown when bidding outside the auction time window.
	ErrWindowClosed = errors.New("auction bidding window is closed")
	// ErrBidTooLow is thrown when a bid does not strictly exceed the current
	// highest bid. Ties are rejected.
	ErrBidTooLow = errors.New("bid must strictly exceed the current highest bid")
	// ErrRequestAlreadyPending is thrown when requesting randomness for an
	// auction that already has an outstanding request.
	ErrRequestAlreadyPending = errors.New("auction already has a pending randomness request")
	// ErrUnknownRequest is thrown when a randomness fulfillment references a
	// request id that was never issued or already consumed.
	ErrUnknownRequest = errors.New("unknown or already consumed randomness request")
	// ErrDenied is thrown on privileged operations invoked by a caller without
	// the required capability.
	ErrDenied = errors.New("caller is not allowed to perform this operation")
	// ErrTransferFailed is thrown when the external asset registry or treasury
	// refuses a transfer.
	ErrTransferFailed = errors.New("external transfer failed")
	// ErrReserveMet is thrown when cancelling an auction whose highest bid
	// already qualifies against the reserve price.
	ErrReserveMet = errors.New("auction cannot be cancelled once the reserve is met")
	// ErrAuctionStillRunning is thrown when finalizing an auction before its
	// end time without the force condition.
	ErrAuctionStillRunning = errors.New("auction end time not reached yet")
	// ErrInvalidFeeBasisPoint ...
	ErrInvalidFeeBasisPoint = errors.New("platform fee must be expressed in basis points in range [0, 10000)")
	// ErrNullFeeRecipient ...
	ErrNullFeeRecipient = errors.New("fee recipient must not be null")
	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)
