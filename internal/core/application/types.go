package application

import (
	"encoding/json"
	"sync"

	"github.com/auctionward/auctiond/internal/core/domain"
)

// Topics published through the PubSubService.
const (
	TopicNewBid           = "new-bid"
	TopicAuctionEnded     = "auction-ended"
	TopicAuctionCancelled = "auction-cancelled"
)

// CreateAuctionRequest groups the arguments for listing an asset.
type CreateAuctionRequest struct {
	AssetID            string `json:"asset_id"`
	Seller             string `json:"seller"`
	ReservePrice       uint64 `json:"reserve_price"`
	StartTime          int64  `json:"start_time"`
	EndTime            int64  `json:"end_time"`
	RequiresRandomness bool   `json:"requires_randomness"`
}

// AuctionInfo is the read-model representation of an auction.
type AuctionInfo struct {
	AssetID            string `json:"asset_id"`
	Seller             string `json:"seller"`
	ReservePrice       uint64 `json:"reserve_price"`
	StartTime          int64  `json:"start_time"`
	EndTime            int64  `json:"end_time"`
	Status             string `json:"status"`
	HighestBid         uint64 `json:"highest_bid"`
	HighestBidder      string `json:"highest_bidder,omitempty"`
	RequiresRandomness bool   `json:"requires_randomness"`
	WinningSeed        uint64 `json:"winning_seed,omitempty"`
	ClosedAt           int64  `json:"closed_at,omitempty"`
}

// FeeInfo is the read-model representation of the fee configuration.
type FeeInfo struct {
	PercentageFee uint64 `json:"percentage_fee"`
	FeeRecipient  string `json:"fee_recipient"`
}

type newBidNotification struct {
	AssetID string `json:"asset_id"`
	Bidder  string `json:"bidder"`
	Amount  uint64 `json:"amount"`
}

type auctionClosedNotification struct {
	AssetID    string `json:"asset_id"`
	Status     string `json:"status"`
	Winner     string `json:"winner,omitempty"`
	WinningBid uint64 `json:"winning_bid,omitempty"`
	ReserveMet bool   `json:"reserve_met"`
}

func auctionInfo(a *domain.Auction) *AuctionInfo {
	return &AuctionInfo{
		AssetID:            a.AssetID,
		Seller:             a.Seller,
		ReservePrice:       a.ReservePrice,
		StartTime:          a.StartTime,
		EndTime:            a.EndTime,
		Status:             a.Status.String(),
		HighestBid:         a.HighestBid,
		HighestBidder:      a.HighestBidder,
		RequiresRandomness: a.RequiresRandomness,
		WinningSeed:        a.WinningSeed,
		ClosedAt:           a.ClosedAt,
	}
}

func marshalMessage(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// AssetLocker serializes the state-changing operations targeting the same
// asset id. Operations on different assets proceed without coordination.
type AssetLocker struct {
	mutex *sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAssetLocker returns an empty locker shared by the bidding and settlement
// services.
func NewAssetLocker() *AssetLocker {
	return &AssetLocker{
		mutex: &sync.Mutex{},
		locks: map[string]*sync.Mutex{},
	}
}

func (l *AssetLocker) lockFor(assetID string) *sync.Mutex {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if _, ok := l.locks[assetID]; !ok {
		l.locks[assetID] = &sync.Mutex{}
	}
	return l.locks[assetID]
}

// Lock acquires the per-asset lock.
func (l *AssetLocker) Lock(assetID string) {
	l.lockFor(assetID).Lock()
}

// Unlock releases the per-asset lock.
func (l *AssetLocker) Unlock(assetID string) {
	l.lockFor(assetID).Unlock()
}
