package application

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/auctionward/auctiond/internal/core/domain"
	"github.com/auctionward/auctiond/internal/core/ports"
)

// UpkeepService is the surface an external automation poller calls with
// at-least-once, possibly delayed semantics. Both entry points tolerate
// duplicate delivery.
type UpkeepService interface {
	// CheckUpkeep returns the asset ids of the active auctions whose end time
	// has elapsed. Read-only, no side effects.
	CheckUpkeep(ctx context.Context) ([]string, error)
	// PerformUpkeep finalizes one previously identified auction. Calling it
	// on an id already finalized by a duplicate trigger is a no-op.
	PerformUpkeep(ctx context.Context, assetID string) error
}

type upkeepService struct {
	repoManager   ports.RepoManager
	settlementSvc SettlementService
}

func NewUpkeepService(
	repoManager ports.RepoManager, settlementSvc SettlementService,
) UpkeepService {
	return &upkeepService{
		repoManager:   repoManager,
		settlementSvc: settlementSvc,
	}
}

func (s *upkeepService) CheckUpkeep(ctx context.Context) ([]string, error) {
	now := time.Now().Unix()

	auctions, err := s.repoManager.AuctionRepository().GetExpiredActiveAuctions(ctx, now)
	if err != nil {
		return nil, err
	}

	assetIDs := make([]string, 0, len(auctions))
	for _, a := range auctions {
		assetIDs = append(assetIDs, a.AssetID)
	}
	return assetIDs, nil
}

func (s *upkeepService) PerformUpkeep(ctx context.Context, assetID string) error {
	err := s.settlementSvc.Finalize(ctx, assetID, false)
	if err == nil {
		upkeepRunsCounter.Inc()
		return nil
	}

	// Duplicate or late triggers find nothing to do, which is not an error
	// for a caller that cannot retry meaningfully.
	if errors.Is(err, domain.ErrAuctionNotFound) ||
		errors.Is(err, domain.ErrAuctionStillRunning) {
		log.Debugf("nothing to do for asset %s", assetID)
		return nil
	}

	return err
}

// UpkeepTarget adapts an UpkeepService to the poller target interface for
// deployments running the embedded automation loop.
type UpkeepTarget struct {
	Svc UpkeepService
}

func (t UpkeepTarget) Check(ctx context.Context) ([]string, error) {
	return t.Svc.CheckUpkeep(ctx)
}

func (t UpkeepTarget) Perform(ctx context.Context, assetID string) error {
	return t.Svc.PerformUpkeep(ctx, assetID)
}
