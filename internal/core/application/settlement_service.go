package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/auctionward/auctiond/internal/core/domain"
	"github.com/auctionward/auctiond/internal/core/ports"
)

// SettlementService finalizes and cancels auctions, and owns the two-phase
// randomness protocol used by randomness-gated settlements.
type SettlementService interface {
	// Finalize settles an expired auction. It is an idempotent no-op on
	// terminal auctions and on auctions waiting for a randomness fulfillment.
	Finalize(ctx context.Context, assetID string, force bool) error
	// Cancel aborts an active auction on behalf of the seller or the
	// administrator, refunding the standing sub-reserve bid if any.
	Cancel(ctx context.Context, assetID, caller string) error
	// Fulfill is the inbound randomness callback. Unknown or already consumed
	// request ids are ignored without touching any state.
	Fulfill(ctx context.Context, requestID string, value uint64) error
}

type settlementService struct {
	repoManager ports.RepoManager
	registry    ports.AssetRegistry
	oracle      ports.RandomnessOracle
	pubsub      ports.PubSubService
	locker      *AssetLocker
}

func NewSettlementService(
	repoManager ports.RepoManager,
	registry ports.AssetRegistry,
	oracle ports.RandomnessOracle,
	pubsub ports.PubSubService,
	locker *AssetLocker,
) SettlementService {
	return &settlementService{
		repoManager: repoManager,
		registry:    registry,
		oracle:      oracle,
		pubsub:      pubsub,
		locker:      locker,
	}
}

func (s *settlementService) Finalize(
	ctx context.Context, assetID string, force bool,
) error {
	s.locker.Lock(assetID)
	defer s.locker.Unlock(assetID)

	now := time.Now().Unix()

	auction, err := s.repoManager.AuctionRepository().GetAuction(ctx, assetID)
	if err != nil {
		return err
	}
	if auction.IsTerminal() {
		return nil
	}
	if auction.IsResolving() {
		// Already waiting for the oracle callback.
		return nil
	}
	if !auction.IsExpired(now) && !force {
		return domain.ErrAuctionStillRunning
	}

	if !auction.IsReserveMet() {
		return s.settleReserveNotMet(ctx, assetID, now)
	}

	if auction.RequiresRandomness {
		return s.requestRandomness(ctx, auction, now)
	}

	return s.settle(ctx, auction, 0, now)
}

// settleReserveNotMet ends an auction that received no qualifying bid. The
// asset stays with the seller and the standing sub-reserve escrow, if any,
// goes back to its bidder through the ledger.
func (s *settlementService) settleReserveNotMet(
	ctx context.Context, assetID string, now int64,
) error {
	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.AuctionRepository().UpdateAuction(
				ctx, assetID, func(a *domain.Auction) (*domain.Auction, error) {
					if a.HasBid() {
						if err := s.repoManager.LedgerRepository().CreditBalance(
							ctx, a.HighestBidder, a.HighestBid,
						); err != nil {
							return nil, err
						}
					}
					if err := a.MarkEnded(now); err != nil {
						return nil, err
					}
					return a, nil
				},
			)
		},
	); err != nil {
		return err
	}

	auctionsSettledCounter.Inc()
	log.Infof("auction for asset %s ended, reserve not met", assetID)
	s.publish(TopicAuctionEnded, marshalMessage(auctionClosedNotification{
		AssetID:    assetID,
		Status:     domain.AuctionStatusEnded.String(),
		ReserveMet: false,
	}))
	return nil
}

// settle runs the payout path: the asset moves to the winner first, then the
// proceeds are split and credited on the ledger in the same transaction that
// closes the auction. A refused asset transfer aborts the whole settlement
// with the state unchanged so it can be retried later.
func (s *settlementService) settle(
	ctx context.Context, auction *domain.Auction, seed uint64, now int64,
) error {
	if err := s.registry.Transfer(
		ctx, auction.AssetID, auction.Seller, auction.HighestBidder,
	); err != nil {
		log.WithError(err).Warnf(
			"asset registry refused transfer of %s, settlement aborted", auction.AssetID,
		)
		return domain.ErrTransferFailed
	}

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			feeConfig, err := s.repoManager.FeeRepository().GetFeeConfig(ctx)
			if err != nil {
				return nil, err
			}

			return nil, s.repoManager.AuctionRepository().UpdateAuction(
				ctx, auction.AssetID, func(a *domain.Auction) (*domain.Auction, error) {
					sellerShare, platformCut := feeConfig.SplitProceeds(a.HighestBid)
					if err := s.repoManager.LedgerRepository().CreditBalance(
						ctx, a.Seller, sellerShare,
					); err != nil {
						return nil, err
					}
					if platformCut > 0 {
						if err := s.repoManager.LedgerRepository().CreditBalance(
							ctx, feeConfig.FeeRecipient, platformCut,
						); err != nil {
							return nil, err
						}
					}
					if len(a.PendingRequestID) > 0 {
						if err := s.repoManager.RandomnessRepository().DeleteRequest(
							ctx, a.PendingRequestID,
						); err != nil {
							return nil, err
						}
					}
					a.WinningSeed = seed
					if err := a.MarkEnded(now); err != nil {
						return nil, err
					}
					return a, nil
				},
			)
		},
	); err != nil {
		return err
	}

	auctionsSettledCounter.Inc()
	log.Infof(
		"auction for asset %s settled, winner %s with bid %d",
		auction.AssetID, auction.HighestBidder, auction.HighestBid,
	)
	s.publish(TopicAuctionEnded, marshalMessage(auctionClosedNotification{
		AssetID:    auction.AssetID,
		Status:     domain.AuctionStatusEnded.String(),
		Winner:     auction.HighestBidder,
		WinningBid: auction.HighestBid,
		ReserveMet: true,
	}))
	return nil
}

// requestRandomness opens the two-phase protocol: the auction moves to the
// Resolving status and a pending request is recorded under a fresh
// correlation id, then the request is forwarded to the oracle. If the oracle
// refuses it, everything is rolled back so a later upkeep can retry.
func (s *settlementService) requestRandomness(
	ctx context.Context, auction *domain.Auction, now int64,
) error {
	requestID := uuid.New().String()

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if err := s.repoManager.AuctionRepository().UpdateAuction(
				ctx, auction.AssetID, func(a *domain.Auction) (*domain.Auction, error) {
					if err := a.MarkResolving(requestID); err != nil {
						return nil, err
					}
					return a, nil
				},
			); err != nil {
				return nil, err
			}
			return nil, s.repoManager.RandomnessRepository().AddRequest(
				ctx, &domain.RandomnessRequest{
					ID:        requestID,
					AssetID:   auction.AssetID,
					CreatedAt: now,
				},
			)
		},
	); err != nil {
		return err
	}

	if err := s.oracle.Request(ctx, requestID); err != nil {
		log.WithError(err).Warnf(
			"oracle refused randomness request for asset %s, rolling back", auction.AssetID,
		)
		if _, rollbackErr := s.repoManager.RunTransaction(
			ctx, false, func(ctx context.Context) (interface{}, error) {
				if err := s.repoManager.RandomnessRepository().DeleteRequest(
					ctx, requestID,
				); err != nil {
					return nil, err
				}
				return nil, s.repoManager.AuctionRepository().UpdateAuction(
					ctx, auction.AssetID, func(a *domain.Auction) (*domain.Auction, error) {
						if err := a.Transition(
							domain.AuctionStatusResolving, domain.AuctionStatusActive,
						); err != nil {
							return nil, err
						}
						a.PendingRequestID = ""
						return a, nil
					},
				)
			},
		); rollbackErr != nil {
			log.WithError(rollbackErr).Errorf(
				"failed to roll back randomness request for asset %s", auction.AssetID,
			)
		}
		return err
	}

	log.Infof(
		"randomness requested for asset %s with correlation id %s",
		auction.AssetID, requestID,
	)
	return nil
}

func (s *settlementService) Fulfill(
	ctx context.Context, requestID string, value uint64,
) error {
	request, err := s.repoManager.RandomnessRepository().GetRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownRequest) {
			// Spoofed, duplicate or late callback: nothing to do.
			log.Debugf("ignoring fulfillment for unknown request %s", requestID)
			return nil
		}
		return err
	}

	s.locker.Lock(request.AssetID)
	defer s.locker.Unlock(request.AssetID)

	now := time.Now().Unix()

	auction, err := s.repoManager.AuctionRepository().GetAuction(ctx, request.AssetID)
	if err != nil {
		return err
	}
	if !auction.IsResolving() || auction.PendingRequestID != requestID {
		// Stale entry left behind by a concurrent settlement: consume it
		// without applying anything.
		if _, err := s.repoManager.RunTransaction(
			ctx, false, func(ctx context.Context) (interface{}, error) {
				return nil, s.repoManager.RandomnessRepository().DeleteRequest(ctx, requestID)
			},
		); err != nil {
			return err
		}
		return nil
	}

	if err := s.settle(ctx, auction, value, now); err != nil {
		return err
	}

	randomnessFulfilledCounter.Inc()
	return nil
}

func (s *settlementService) Cancel(
	ctx context.Context, assetID, caller string,
) error {
	s.locker.Lock(assetID)
	defer s.locker.Unlock(assetID)

	now := time.Now().Unix()

	var cancelled *domain.Auction
	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			feeConfig, err := s.repoManager.FeeRepository().GetFeeConfig(ctx)
			if err != nil {
				return nil, err
			}

			return nil, s.repoManager.AuctionRepository().UpdateAuction(
				ctx, assetID, func(a *domain.Auction) (*domain.Auction, error) {
					if !a.IsActive() {
						return nil, domain.ErrAuctionNotActive
					}
					if caller != a.Seller && !feeConfig.IsAdmin(caller) {
						return nil, domain.ErrDenied
					}
					if a.IsReserveMet() {
						return nil, domain.ErrReserveMet
					}
					if a.HasBid() {
						if err := s.repoManager.LedgerRepository().CreditBalance(
							ctx, a.HighestBidder, a.HighestBid,
						); err != nil {
							return nil, err
						}
					}
					if err := a.MarkCancelled(now); err != nil {
						return nil, err
					}
					cancelled = a
					return a, nil
				},
			)
		},
	); err != nil {
		return err
	}

	auctionsCancelledCounter.Inc()
	log.Infof("auction for asset %s cancelled by %s", assetID, caller)
	s.publish(TopicAuctionCancelled, marshalMessage(auctionClosedNotification{
		AssetID:    assetID,
		Status:     domain.AuctionStatusCancelled.String(),
		ReserveMet: cancelled.IsReserveMet(),
	}))
	return nil
}

func (s *settlementService) publish(topic, message string) {
	if s.pubsub == nil {
		return
	}
	if err := s.pubsub.Publish(topic, message); err != nil {
		log.WithError(err).Warnf("failed to publish %s notification", topic)
	}
}
