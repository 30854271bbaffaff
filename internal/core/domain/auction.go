package domain

// AuctionStatus represents the different statuses that an auction can assume.
type AuctionStatus int

const (
	// AuctionStatusActive is the status of an auction open for bidding.
	AuctionStatusActive AuctionStatus = iota
	// AuctionStatusResolving is the transient status of an auction waiting for
	// a randomness fulfillment before completing its settlement.
	AuctionStatusResolving
	// AuctionStatusEnded is the terminal status of a settled auction, whether
	// or not the reserve was met.
	AuctionStatusEnded
	// AuctionStatusCancelled is the terminal status of a cancelled auction.
	AuctionStatusCancelled
)

func (s AuctionStatus) String() string {
	switch s {
	case AuctionStatusActive:
		return "active"
	case AuctionStatusResolving:
		return "resolving"
	case AuctionStatusEnded:
		return "ended"
	case AuctionStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Auction is the data structure representing an auction entity for a single
// asset. One non-terminal auction can exist per asset id at any time.
type Auction struct {
	AssetID            string
	Seller             string
	ReservePrice       uint64
	StartTime          int64
	EndTime            int64
	Status             AuctionStatus
	HighestBid         uint64
	HighestBidder      string
	RequiresRandomness bool
	PendingRequestID   string
	WinningSeed        uint64
	CreatedAt          int64
	ClosedAt           int64
}

// NewAuction returns an active auction after validating the time window.
func NewAuction(
	assetID, seller string, reservePrice uint64,
	startTime, endTime, now int64, requiresRandomness bool,
) (*Auction, error) {
	if startTime >= endTime {
		return nil, ErrInvalidWindow
	}

	return &Auction{
		AssetID:            assetID,
		Seller:             seller,
		ReservePrice:       reservePrice,
		StartTime:          startTime,
		EndTime:            endTime,
		Status:             AuctionStatusActive,
		RequiresRandomness: requiresRandomness,
		CreatedAt:          now,
	}, nil
}

// IsActive returns whether the auction is open for bidding.
func (a *Auction) IsActive() bool {
	return a.Status == AuctionStatusActive
}

// IsResolving returns whether the auction is waiting for a randomness
// fulfillment.
func (a *Auction) IsResolving() bool {
	return a.Status == AuctionStatusResolving
}

// IsEnded returns whether the auction reached the Ended terminal status.
func (a *Auction) IsEnded() bool {
	return a.Status == AuctionStatusEnded
}

// IsCancelled returns whether the auction reached the Cancelled terminal
// status.
func (a *Auction) IsCancelled() bool {
	return a.Status == AuctionStatusCancelled
}

// IsTerminal returns whether the auction reached a terminal status. No
// transition leaves a terminal status.
func (a *Auction) IsTerminal() bool {
	return a.IsEnded() || a.IsCancelled()
}

// HasBid returns whether at least one bid was accepted.
func (a *Auction) HasBid() bool {
	return len(a.HighestBidder) > 0
}

// IsReserveMet returns whether the standing highest bid qualifies against the
// reserve price.
func (a *Auction) IsReserveMet() bool {
	return a.HasBid() && a.HighestBid >= a.ReservePrice
}

// IsExpired returns whether the bidding window has elapsed.
func (a *Auction) IsExpired(now int64) bool {
	return now >= a.EndTime
}

// Transition is the compare-and-set primitive every status change goes
// through. It fails with ErrStateConflict if the current status differs from
// the expected one.
func (a *Auction) Transition(from, to AuctionStatus) error {
	if a.Status != from {
		return ErrStateConflict
	}
	a.Status = to
	return nil
}

// ApplyBid validates a bid against the auction and applies it, returning the
// identity and amount of the outbid leader, if any, so that the caller can
// credit the refund.
func (a *Auction) ApplyBid(bidder string, amount uint64, now int64) (
	outbidBidder string, outbidAmount uint64, err error,
) {
	if !a.IsActive() {
		return "", 0, ErrAuctionNotActive
	}
	if now < a.StartTime || now >= a.EndTime {
		return "", 0, ErrWindowClosed
	}
	if amount == 0 || amount <= a.HighestBid {
		return "", 0, ErrBidTooLow
	}

	outbidBidder, outbidAmount = a.HighestBidder, a.HighestBid
	a.HighestBidder = bidder
	a.HighestBid = amount
	return outbidBidder, outbidAmount, nil
}

// MarkResolving brings an active auction to the Resolving status, recording
// the correlation id of the randomness request it is waiting for.
func (a *Auction) MarkResolving(requestID string) error {
	if len(a.PendingRequestID) > 0 {
		return ErrRequestAlreadyPending
	}
	if err := a.Transition(AuctionStatusActive, AuctionStatusResolving); err != nil {
		return err
	}
	a.PendingRequestID = requestID
	return nil
}

// MarkEnded brings the auction to the Ended terminal status, from Active or
// Resolving, consuming any pending randomness marker.
func (a *Auction) MarkEnded(now int64) error {
	from := AuctionStatusActive
	if a.IsResolving() {
		from = AuctionStatusResolving
	}
	if err := a.Transition(from, AuctionStatusEnded); err != nil {
		return err
	}
	a.PendingRequestID = ""
	a.ClosedAt = now
	return nil
}

// MarkCancelled brings an active auction to the Cancelled terminal status.
func (a *Auction) MarkCancelled(now int64) error {
	if err := a.Transition(AuctionStatusActive, AuctionStatusCancelled); err != nil {
		return err
	}
	a.ClosedAt = now
	return nil
}
