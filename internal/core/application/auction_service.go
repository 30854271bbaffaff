package application

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/auctionward/auctiond/internal/core/domain"
	"github.com/auctionward/auctiond/internal/core/ports"
)

// AuctionService covers the listing and read surface of the engine.
type AuctionService interface {
	CreateAuction(ctx context.Context, req CreateAuctionRequest) (*AuctionInfo, error)
	GetAuction(ctx context.Context, assetID string) (*AuctionInfo, error)
	GetHighestBidder(ctx context.Context, assetID string) (string, uint64, error)
	GetLedgerBalance(ctx context.Context, identity string) (uint64, error)
}

type auctionService struct {
	repoManager ports.RepoManager
	registry    ports.AssetRegistry
}

func NewAuctionService(
	repoManager ports.RepoManager, registry ports.AssetRegistry,
) AuctionService {
	return &auctionService{
		repoManager: repoManager,
		registry:    registry,
	}
}

// CreateAuction lists an asset for auction after verifying that the seller is
// its current owner on the external registry.
func (s *auctionService) CreateAuction(
	ctx context.Context, req CreateAuctionRequest,
) (*AuctionInfo, error) {
	now := time.Now().Unix()

	auction, err := domain.NewAuction(
		req.AssetID, req.Seller, req.ReservePrice,
		req.StartTime, req.EndTime, now, req.RequiresRandomness,
	)
	if err != nil {
		return nil, err
	}

	owner, err := s.registry.OwnerOf(ctx, req.AssetID)
	if err != nil {
		log.WithError(err).Warn("failed to query asset registry")
		return nil, err
	}
	if owner != req.Seller {
		return nil, domain.ErrNotOwner
	}

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.AuctionRepository().AddAuction(ctx, auction)
		},
	); err != nil {
		return nil, err
	}

	auctionsCreatedCounter.Inc()
	log.Infof("auction created for asset %s by %s", req.AssetID, req.Seller)
	return auctionInfo(auction), nil
}

func (s *auctionService) GetAuction(
	ctx context.Context, assetID string,
) (*AuctionInfo, error) {
	auction, err := s.repoManager.AuctionRepository().GetAuction(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return auctionInfo(auction), nil
}

func (s *auctionService) GetHighestBidder(
	ctx context.Context, assetID string,
) (string, uint64, error) {
	auction, err := s.repoManager.AuctionRepository().GetAuction(ctx, assetID)
	if err != nil {
		return "", 0, err
	}
	return auction.HighestBidder, auction.HighestBid, nil
}

func (s *auctionService) GetLedgerBalance(
	ctx context.Context, identity string,
) (uint64, error) {
	return s.repoManager.LedgerRepository().GetBalance(ctx, identity)
}
