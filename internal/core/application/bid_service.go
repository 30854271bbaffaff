package application

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/auctionward/auctiond/internal/core/domain"
	"github.com/auctionward/auctiond/internal/core/ports"
)

// BidService covers competitive bidding and the pull-withdrawal surface.
type BidService interface {
	PlaceBid(ctx context.Context, assetID, bidder string, amount uint64) (*AuctionInfo, error)
	Withdraw(ctx context.Context, identity string) (uint64, error)
}

type bidService struct {
	repoManager ports.RepoManager
	treasury    ports.Treasury
	pubsub      ports.PubSubService
	locker      *AssetLocker
}

func NewBidService(
	repoManager ports.RepoManager,
	treasury ports.Treasury,
	pubsub ports.PubSubService,
	locker *AssetLocker,
) BidService {
	return &bidService{
		repoManager: repoManager,
		treasury:    treasury,
		pubsub:      pubsub,
		locker:      locker,
	}
}

// PlaceBid validates and applies a bid. The previous leader, if any, is
// credited on the ledger as a withdrawable balance in the same transaction
// that records the new highest bid, never paid out synchronously.
func (s *bidService) PlaceBid(
	ctx context.Context, assetID, bidder string, amount uint64,
) (*AuctionInfo, error) {
	s.locker.Lock(assetID)
	defer s.locker.Unlock(assetID)

	now := time.Now().Unix()

	// Validate against a copy before pulling the bidder's funds into escrow.
	auction, err := s.repoManager.AuctionRepository().GetAuction(ctx, assetID)
	if err != nil {
		return nil, err
	}
	probe := *auction
	if _, _, err := probe.ApplyBid(bidder, amount, now); err != nil {
		return nil, err
	}

	if err := s.treasury.Collect(ctx, bidder, amount); err != nil {
		log.WithError(err).Warnf("failed to collect bid funds from %s", bidder)
		return nil, domain.ErrTransferFailed
	}

	var updated *domain.Auction
	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if err := s.repoManager.AuctionRepository().UpdateAuction(
				ctx, assetID, func(a *domain.Auction) (*domain.Auction, error) {
					outbidBidder, outbidAmount, err := a.ApplyBid(bidder, amount, now)
					if err != nil {
						return nil, err
					}
					if len(outbidBidder) > 0 {
						if err := s.repoManager.LedgerRepository().CreditBalance(
							ctx, outbidBidder, outbidAmount,
						); err != nil {
							return nil, err
						}
					}
					updated = a
					return a, nil
				},
			); err != nil {
				return nil, err
			}
			return nil, s.repoManager.LedgerRepository().RecordDeposit(ctx, amount)
		},
	); err != nil {
		// The escrowed funds go straight back if the bid could not be applied.
		if payoutErr := s.treasury.Payout(ctx, bidder, amount); payoutErr != nil {
			log.WithError(payoutErr).Errorf(
				"failed to return escrowed funds to %s after rejected bid", bidder,
			)
		}
		return nil, err
	}

	bidsPlacedCounter.Inc()
	s.publish(TopicNewBid, marshalMessage(newBidNotification{
		AssetID: assetID,
		Bidder:  bidder,
		Amount:  amount,
	}))
	return auctionInfo(updated), nil
}

// Withdraw pays out the full standing ledger balance of an identity. The
// balance is zeroed before any external transfer is attempted and calling it
// with an empty balance is a no-op.
func (s *bidService) Withdraw(
	ctx context.Context, identity string,
) (uint64, error) {
	var amount uint64
	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			amt, err := s.repoManager.LedgerRepository().WithdrawAll(ctx, identity)
			if err != nil {
				return nil, err
			}
			amount = amt
			return nil, nil
		},
	); err != nil {
		return 0, err
	}

	if amount == 0 {
		return 0, nil
	}

	if err := s.treasury.Payout(ctx, identity, amount); err != nil {
		log.WithError(err).Warnf("failed to pay out %d to %s", amount, identity)
		// Restore the balance so the withdrawal can be retried.
		if _, creditErr := s.repoManager.RunTransaction(
			ctx, false, func(ctx context.Context) (interface{}, error) {
				return nil, s.repoManager.LedgerRepository().CreditBalance(
					ctx, identity, amount,
				)
			},
		); creditErr != nil {
			log.WithError(creditErr).Errorf(
				"failed to restore balance of %s after failed payout", identity,
			)
		}
		return 0, domain.ErrTransferFailed
	}

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.LedgerRepository().RecordWithdrawal(ctx, amount)
		},
	); err != nil {
		log.WithError(err).Error("failed to record withdrawal total")
	}

	withdrawalsCounter.Inc()
	return amount, nil
}

func (s *bidService) publish(topic, message string) {
	if s.pubsub == nil {
		return
	}
	if err := s.pubsub.Publish(topic, message); err != nil {
		log.WithError(err).Warnf("failed to publish %s notification", topic)
	}
}
