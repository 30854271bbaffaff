package application_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/auctionward/auctiond/internal/core/application"
	"github.com/auctionward/auctiond/internal/core/domain"
	"github.com/auctionward/auctiond/internal/core/ports"
	"github.com/auctionward/auctiond/internal/infrastructure/storage/db/inmemory"
)

const (
	admin        = "admin"
	feeRecipient = "platform"
	feeBps       = 500

	seller = "seller"
	alice  = "alice"
	bob    = "bob"
)

var ctx = context.Background()

func TestCreateAuction(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().Unix()

	env.registry.owners["asset-1"] = seller

	t.Run("valid request", func(t *testing.T) {
		info, err := env.auctionSvc.CreateAuction(ctx, application.CreateAuctionRequest{
			AssetID:      "asset-1",
			Seller:       seller,
			ReservePrice: 100,
			StartTime:    now - 10,
			EndTime:      now + 3600,
		})
		require.NoError(t, err)
		require.Equal(t, domain.AuctionStatusActive.String(), info.Status)
	})

	t.Run("relisting while active", func(t *testing.T) {
		_, err := env.auctionSvc.CreateAuction(ctx, application.CreateAuctionRequest{
			AssetID:   "asset-1",
			Seller:    seller,
			StartTime: now - 10,
			EndTime:   now + 3600,
		})
		require.EqualError(t, err, domain.ErrAlreadyListed.Error())
	})

	t.Run("seller does not own the asset", func(t *testing.T) {
		env.registry.owners["asset-2"] = "somebody-else"
		_, err := env.auctionSvc.CreateAuction(ctx, application.CreateAuctionRequest{
			AssetID:   "asset-2",
			Seller:    seller,
			StartTime: now - 10,
			EndTime:   now + 3600,
		})
		require.EqualError(t, err, domain.ErrNotOwner.Error())
	})

	t.Run("invalid window", func(t *testing.T) {
		_, err := env.auctionSvc.CreateAuction(ctx, application.CreateAuctionRequest{
			AssetID:   "asset-3",
			Seller:    seller,
			StartTime: now + 3600,
			EndTime:   now + 3600,
		})
		require.EqualError(t, err, domain.ErrInvalidWindow.Error())
	})
}

func TestPlaceBid(t *testing.T) {
	env := newTestEnv(t)
	assetID := env.listActiveAuction(t, "asset-1", 100)

	t.Run("first bid goes into escrow", func(t *testing.T) {
		info, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 50)
		require.NoError(t, err)
		require.Equal(t, alice, info.HighestBidder)
		require.Equal(t, uint64(50), info.HighestBid)
		require.Equal(t, uint64(50), env.treasury.collected[alice])
		require.Len(t, env.pubsub.published[application.TopicNewBid], 1)
	})

	t.Run("outbid leader becomes withdrawable", func(t *testing.T) {
		_, err := env.bidSvc.PlaceBid(ctx, assetID, bob, 120)
		require.NoError(t, err)

		balance, err := env.auctionSvc.GetLedgerBalance(ctx, alice)
		require.NoError(t, err)
		require.Equal(t, uint64(50), balance)

		bidder, amount, err := env.auctionSvc.GetHighestBidder(ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, bob, bidder)
		require.Equal(t, uint64(120), amount)
	})

	t.Run("matching the highest bid is rejected", func(t *testing.T) {
		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 120)
		require.EqualError(t, err, domain.ErrBidTooLow.Error())
	})

	t.Run("refused escrow leaves no trace", func(t *testing.T) {
		env.treasury.collectErr = fmt.Errorf("payment rail down")
		defer func() { env.treasury.collectErr = nil }()

		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 200)
		require.EqualError(t, err, domain.ErrTransferFailed.Error())

		bidder, amount, err := env.auctionSvc.GetHighestBidder(ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, bob, bidder)
		require.Equal(t, uint64(120), amount)
	})

	t.Run("window not open yet", func(t *testing.T) {
		now := time.Now().Unix()
		env.addAuction(t, "asset-future", 0, now+1000, now+2000)

		_, err := env.bidSvc.PlaceBid(ctx, "asset-future", alice, 10)
		require.EqualError(t, err, domain.ErrWindowClosed.Error())
	})

	t.Run("window elapsed", func(t *testing.T) {
		now := time.Now().Unix()
		env.addAuction(t, "asset-past", 0, now-2000, now-1000)

		_, err := env.bidSvc.PlaceBid(ctx, "asset-past", alice, 10)
		require.EqualError(t, err, domain.ErrWindowClosed.Error())
	})

	t.Run("unknown auction", func(t *testing.T) {
		_, err := env.bidSvc.PlaceBid(ctx, "missing", alice, 10)
		require.EqualError(t, err, domain.ErrAuctionNotFound.Error())
	})
}

func TestWithdraw(t *testing.T) {
	env := newTestEnv(t)
	assetID := env.listActiveAuction(t, "asset-1", 100)

	_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 50)
	require.NoError(t, err)
	_, err = env.bidSvc.PlaceBid(ctx, assetID, bob, 120)
	require.NoError(t, err)

	t.Run("withdraw credited refund", func(t *testing.T) {
		amount, err := env.bidSvc.Withdraw(ctx, alice)
		require.NoError(t, err)
		require.Equal(t, uint64(50), amount)
		require.Equal(t, uint64(50), env.treasury.paid[alice])
	})

	t.Run("second withdrawal is a no-op", func(t *testing.T) {
		amount, err := env.bidSvc.Withdraw(ctx, alice)
		require.NoError(t, err)
		require.Zero(t, amount)
	})

	t.Run("failed payout restores the balance", func(t *testing.T) {
		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 200)
		require.NoError(t, err)

		env.treasury.payoutErr = fmt.Errorf("payment rail down")
		amount, err := env.bidSvc.Withdraw(ctx, bob)
		require.EqualError(t, err, domain.ErrTransferFailed.Error())
		require.Zero(t, amount)

		balance, err := env.auctionSvc.GetLedgerBalance(ctx, bob)
		require.NoError(t, err)
		require.Equal(t, uint64(120), balance)

		env.treasury.payoutErr = nil
		amount, err = env.bidSvc.Withdraw(ctx, bob)
		require.NoError(t, err)
		require.Equal(t, uint64(120), amount)
	})
}

func TestFinalize(t *testing.T) {
	t.Run("reserve met settles with fee split", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listActiveAuction(t, "asset-1", 100)

		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 1000)
		require.NoError(t, err)

		require.NoError(t, env.settlementSvc.Finalize(ctx, assetID, true))

		info, err := env.auctionSvc.GetAuction(ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, domain.AuctionStatusEnded.String(), info.Status)

		require.Equal(t, alice, env.registry.owners[assetID])

		sellerBalance, err := env.auctionSvc.GetLedgerBalance(ctx, seller)
		require.NoError(t, err)
		require.Equal(t, uint64(950), sellerBalance)

		platformBalance, err := env.auctionSvc.GetLedgerBalance(ctx, feeRecipient)
		require.NoError(t, err)
		require.Equal(t, uint64(50), platformBalance)
	})

	t.Run("finalize is idempotent", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listActiveAuction(t, "asset-1", 100)

		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 1000)
		require.NoError(t, err)

		require.NoError(t, env.settlementSvc.Finalize(ctx, assetID, true))
		require.NoError(t, env.settlementSvc.Finalize(ctx, assetID, true))

		sellerBalance, err := env.auctionSvc.GetLedgerBalance(ctx, seller)
		require.NoError(t, err)
		require.Equal(t, uint64(950), sellerBalance)
	})

	t.Run("still running without force", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listActiveAuction(t, "asset-1", 100)

		err := env.settlementSvc.Finalize(ctx, assetID, false)
		require.EqualError(t, err, domain.ErrAuctionStillRunning.Error())
	})

	t.Run("reserve not met refunds the standing bid", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listActiveAuction(t, "asset-1", 100)

		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 80)
		require.NoError(t, err)

		require.NoError(t, env.settlementSvc.Finalize(ctx, assetID, true))

		info, err := env.auctionSvc.GetAuction(ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, domain.AuctionStatusEnded.String(), info.Status)

		// The asset stays with the seller and no proceeds are disbursed.
		require.Equal(t, seller, env.registry.owners[assetID])

		aliceBalance, err := env.auctionSvc.GetLedgerBalance(ctx, alice)
		require.NoError(t, err)
		require.Equal(t, uint64(80), aliceBalance)

		sellerBalance, err := env.auctionSvc.GetLedgerBalance(ctx, seller)
		require.NoError(t, err)
		require.Zero(t, sellerBalance)
	})

	t.Run("refused asset transfer aborts the settlement", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listActiveAuction(t, "asset-1", 100)

		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 1000)
		require.NoError(t, err)

		env.registry.transferErr = fmt.Errorf("registry down")
		err = env.settlementSvc.Finalize(ctx, assetID, true)
		require.EqualError(t, err, domain.ErrTransferFailed.Error())

		info, err := env.auctionSvc.GetAuction(ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, domain.AuctionStatusActive.String(), info.Status)

		// A later retry succeeds.
		env.registry.transferErr = nil
		require.NoError(t, env.settlementSvc.Finalize(ctx, assetID, true))
	})
}

func TestCancel(t *testing.T) {
	t.Run("seller cancels and the standing bid is refunded", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listActiveAuction(t, "asset-1", 100)

		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 50)
		require.NoError(t, err)

		require.NoError(t, env.settlementSvc.Cancel(ctx, assetID, seller))

		info, err := env.auctionSvc.GetAuction(ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, domain.AuctionStatusCancelled.String(), info.Status)

		balance, err := env.auctionSvc.GetLedgerBalance(ctx, alice)
		require.NoError(t, err)
		require.Equal(t, uint64(50), balance)
	})

	t.Run("admin can cancel on behalf of the seller", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listActiveAuction(t, "asset-1", 100)

		require.NoError(t, env.settlementSvc.Cancel(ctx, assetID, admin))
	})

	t.Run("anybody else is denied", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listActiveAuction(t, "asset-1", 100)

		err := env.settlementSvc.Cancel(ctx, assetID, bob)
		require.EqualError(t, err, domain.ErrDenied.Error())
	})

	t.Run("reserve met blocks cancellation", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listActiveAuction(t, "asset-1", 100)

		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 150)
		require.NoError(t, err)

		err = env.settlementSvc.Cancel(ctx, assetID, seller)
		require.EqualError(t, err, domain.ErrReserveMet.Error())
	})

	t.Run("terminal auction cannot be cancelled", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listActiveAuction(t, "asset-1", 100)

		require.NoError(t, env.settlementSvc.Cancel(ctx, assetID, seller))
		err := env.settlementSvc.Cancel(ctx, assetID, seller)
		require.EqualError(t, err, domain.ErrAuctionNotActive.Error())
	})
}

func TestRandomnessResolution(t *testing.T) {
	t.Run("two-phase settlement", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listRandomnessAuction(t, "asset-1", 100)

		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 1000)
		require.NoError(t, err)

		require.NoError(t, env.settlementSvc.Finalize(ctx, assetID, true))
		require.Len(t, env.oracle.requests, 1)

		info, err := env.auctionSvc.GetAuction(ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, domain.AuctionStatusResolving.String(), info.Status)

		// Duplicate upkeep while resolving is a no-op.
		require.NoError(t, env.settlementSvc.Finalize(ctx, assetID, true))
		require.Len(t, env.oracle.requests, 1)

		requestID := env.oracle.requests[0]
		require.NoError(t, env.settlementSvc.Fulfill(ctx, requestID, 42))

		info, err = env.auctionSvc.GetAuction(ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, domain.AuctionStatusEnded.String(), info.Status)
		require.Equal(t, uint64(42), info.WinningSeed)
		require.Equal(t, alice, env.registry.owners[assetID])
	})

	t.Run("unknown fulfillment is ignored", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listRandomnessAuction(t, "asset-1", 100)

		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 1000)
		require.NoError(t, err)
		require.NoError(t, env.settlementSvc.Finalize(ctx, assetID, true))

		require.NoError(t, env.settlementSvc.Fulfill(ctx, "never-requested", 7))

		info, err := env.auctionSvc.GetAuction(ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, domain.AuctionStatusResolving.String(), info.Status)
	})

	t.Run("fulfillment is consumed exactly once", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listRandomnessAuction(t, "asset-1", 100)

		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 1000)
		require.NoError(t, err)
		require.NoError(t, env.settlementSvc.Finalize(ctx, assetID, true))

		requestID := env.oracle.requests[0]
		require.NoError(t, env.settlementSvc.Fulfill(ctx, requestID, 42))

		// The replay finds no pending request and changes nothing.
		require.NoError(t, env.settlementSvc.Fulfill(ctx, requestID, 43))

		info, err := env.auctionSvc.GetAuction(ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, uint64(42), info.WinningSeed)
	})

	t.Run("refused oracle request rolls back", func(t *testing.T) {
		env := newTestEnv(t)
		assetID := env.listRandomnessAuction(t, "asset-1", 100)

		_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 1000)
		require.NoError(t, err)

		env.oracle.requestErr = fmt.Errorf("oracle down")
		require.Error(t, env.settlementSvc.Finalize(ctx, assetID, true))

		info, err := env.auctionSvc.GetAuction(ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, domain.AuctionStatusActive.String(), info.Status)

		// The retry opens a fresh request.
		env.oracle.requestErr = nil
		require.NoError(t, env.settlementSvc.Finalize(ctx, assetID, true))
		require.Len(t, env.oracle.requests, 2)
	})
}

func TestUpkeep(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().Unix()

	env.addAuctionWithBid(t, "asset-expired", 0, now-2000, now-1000, alice, 50)
	env.listActiveAuction(t, "asset-running", 100)

	t.Run("check returns only expired active auctions", func(t *testing.T) {
		assetIDs, err := env.upkeepSvc.CheckUpkeep(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"asset-expired"}, assetIDs)
	})

	t.Run("perform settles the expired auction", func(t *testing.T) {
		require.NoError(t, env.upkeepSvc.PerformUpkeep(ctx, "asset-expired"))

		info, err := env.auctionSvc.GetAuction(ctx, "asset-expired")
		require.NoError(t, err)
		require.Equal(t, domain.AuctionStatusEnded.String(), info.Status)

		assetIDs, err := env.upkeepSvc.CheckUpkeep(ctx)
		require.NoError(t, err)
		require.Empty(t, assetIDs)
	})

	t.Run("duplicate trigger is a no-op", func(t *testing.T) {
		require.NoError(t, env.upkeepSvc.PerformUpkeep(ctx, "asset-expired"))
	})

	t.Run("unknown asset is a no-op", func(t *testing.T) {
		require.NoError(t, env.upkeepSvc.PerformUpkeep(ctx, "missing"))
	})

	t.Run("still running auction is a no-op", func(t *testing.T) {
		require.NoError(t, env.upkeepSvc.PerformUpkeep(ctx, "asset-running"))

		info, err := env.auctionSvc.GetAuction(ctx, "asset-running")
		require.NoError(t, err)
		require.Equal(t, domain.AuctionStatusActive.String(), info.Status)
	})
}

func TestOperator(t *testing.T) {
	env := newTestEnv(t)

	t.Run("admin updates the fee", func(t *testing.T) {
		require.NoError(t, env.operatorSvc.ChangeFee(ctx, admin, 1000))

		info, err := env.operatorSvc.GetFeeConfig(ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(1000), info.PercentageFee)
	})

	t.Run("non admin is denied", func(t *testing.T) {
		err := env.operatorSvc.ChangeFee(ctx, bob, 1000)
		require.EqualError(t, err, domain.ErrDenied.Error())

		err = env.operatorSvc.ChangeFeeRecipient(ctx, bob, "elsewhere")
		require.EqualError(t, err, domain.ErrDenied.Error())
	})

	t.Run("fee cap", func(t *testing.T) {
		err := env.operatorSvc.ChangeFee(ctx, admin, 10000)
		require.EqualError(t, err, domain.ErrInvalidFeeBasisPoint.Error())
	})

	t.Run("fee recipient update", func(t *testing.T) {
		require.NoError(t, env.operatorSvc.ChangeFeeRecipient(ctx, admin, "elsewhere"))

		info, err := env.operatorSvc.GetFeeConfig(ctx)
		require.NoError(t, err)
		require.Equal(t, "elsewhere", info.FeeRecipient)
	})
}

func TestFundConservation(t *testing.T) {
	env := newTestEnv(t)
	assetID := env.listActiveAuction(t, "asset-1", 100)

	_, err := env.bidSvc.PlaceBid(ctx, assetID, alice, 400)
	require.NoError(t, err)
	_, err = env.bidSvc.PlaceBid(ctx, assetID, bob, 1000)
	require.NoError(t, err)

	require.NoError(t, env.settlementSvc.Finalize(ctx, assetID, true))

	_, err = env.bidSvc.Withdraw(ctx, alice)
	require.NoError(t, err)
	_, err = env.bidSvc.Withdraw(ctx, seller)
	require.NoError(t, err)

	stats, err := env.repoManager.LedgerRepository().GetStats(ctx)
	require.NoError(t, err)

	entries, err := env.repoManager.LedgerRepository().GetAllBalances(ctx)
	require.NoError(t, err)

	var held uint64
	for _, e := range entries {
		held += e.Balance
	}
	require.Equal(t, stats.TotalDeposited-stats.TotalWithdrawn, held)
}

type testEnv struct {
	repoManager   ports.RepoManager
	registry      *fakeRegistry
	treasury      *fakeTreasury
	oracle        *fakeOracle
	pubsub        *fakePubSub
	auctionSvc    application.AuctionService
	bidSvc        application.BidService
	settlementSvc application.SettlementService
	upkeepSvc     application.UpkeepService
	operatorSvc   application.OperatorService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repoManager := inmemory.NewRepoManager()
	feeConfig, err := domain.NewFeeConfig(feeBps, feeRecipient, admin)
	require.NoError(t, err)
	require.NoError(t, repoManager.FeeRepository().InitFeeConfig(ctx, feeConfig))

	registry := newFakeRegistry()
	treasury := newFakeTreasury()
	oracle := &fakeOracle{}
	pubsub := newFakePubSub()
	locker := application.NewAssetLocker()

	settlementSvc := application.NewSettlementService(
		repoManager, registry, oracle, pubsub, locker,
	)

	return &testEnv{
		repoManager:   repoManager,
		registry:      registry,
		treasury:      treasury,
		oracle:        oracle,
		pubsub:        pubsub,
		auctionSvc:    application.NewAuctionService(repoManager, registry),
		bidSvc:        application.NewBidService(repoManager, treasury, pubsub, locker),
		settlementSvc: settlementSvc,
		upkeepSvc:     application.NewUpkeepService(repoManager, settlementSvc),
		operatorSvc:   application.NewOperatorService(repoManager, pubsub),
	}
}

func (env *testEnv) listActiveAuction(
	t *testing.T, assetID string, reservePrice uint64,
) string {
	t.Helper()

	now := time.Now().Unix()
	env.registry.owners[assetID] = seller
	_, err := env.auctionSvc.CreateAuction(ctx, application.CreateAuctionRequest{
		AssetID:      assetID,
		Seller:       seller,
		ReservePrice: reservePrice,
		StartTime:    now - 10,
		EndTime:      now + 3600,
	})
	require.NoError(t, err)
	return assetID
}

func (env *testEnv) listRandomnessAuction(
	t *testing.T, assetID string, reservePrice uint64,
) string {
	t.Helper()

	now := time.Now().Unix()
	env.registry.owners[assetID] = seller
	_, err := env.auctionSvc.CreateAuction(ctx, application.CreateAuctionRequest{
		AssetID:            assetID,
		Seller:             seller,
		ReservePrice:       reservePrice,
		StartTime:          now - 10,
		EndTime:            now + 3600,
		RequiresRandomness: true,
	})
	require.NoError(t, err)
	return assetID
}

func (env *testEnv) addAuction(
	t *testing.T, assetID string, reservePrice uint64, startTime, endTime int64,
) {
	t.Helper()

	env.registry.owners[assetID] = seller
	auction, err := domain.NewAuction(
		assetID, seller, reservePrice, startTime, endTime, startTime, false,
	)
	require.NoError(t, err)
	require.NoError(t, env.repoManager.AuctionRepository().AddAuction(ctx, auction))
}

func (env *testEnv) addAuctionWithBid(
	t *testing.T, assetID string, reservePrice uint64, startTime, endTime int64,
	bidder string, amount uint64,
) {
	t.Helper()

	env.registry.owners[assetID] = seller
	auction, err := domain.NewAuction(
		assetID, seller, reservePrice, startTime, endTime, startTime, false,
	)
	require.NoError(t, err)
	_, _, err = auction.ApplyBid(bidder, amount, startTime)
	require.NoError(t, err)
	require.NoError(t, env.repoManager.AuctionRepository().AddAuction(ctx, auction))
	require.NoError(t, env.repoManager.LedgerRepository().RecordDeposit(ctx, amount))
}

type fakeRegistry struct {
	owners      map[string]string
	transferErr error
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{owners: map[string]string{}}
}

func (r *fakeRegistry) OwnerOf(_ context.Context, assetID string) (string, error) {
	owner, ok := r.owners[assetID]
	if !ok {
		return "", fmt.Errorf("unknown asset %s", assetID)
	}
	return owner, nil
}

func (r *fakeRegistry) Transfer(_ context.Context, assetID, from, to string) error {
	if r.transferErr != nil {
		return r.transferErr
	}
	if r.owners[assetID] != from {
		return fmt.Errorf("%s does not own %s", from, assetID)
	}
	r.owners[assetID] = to
	return nil
}

type fakeTreasury struct {
	collected  map[string]uint64
	paid       map[string]uint64
	collectErr error
	payoutErr  error
}

func newFakeTreasury() *fakeTreasury {
	return &fakeTreasury{
		collected: map[string]uint64{},
		paid:      map[string]uint64{},
	}
}

func (tr *fakeTreasury) Collect(_ context.Context, from string, amount uint64) error {
	if tr.collectErr != nil {
		return tr.collectErr
	}
	tr.collected[from] += amount
	return nil
}

func (tr *fakeTreasury) Payout(_ context.Context, to string, amount uint64) error {
	if tr.payoutErr != nil {
		return tr.payoutErr
	}
	tr.paid[to] += amount
	return nil
}

type fakeOracle struct {
	requests   []string
	requestErr error
}

func (o *fakeOracle) Request(_ context.Context, requestID string) error {
	if o.requestErr != nil {
		return o.requestErr
	}
	o.requests = append(o.requests, requestID)
	return nil
}

type fakePubSub struct {
	published map[string][]string
}

func newFakePubSub() *fakePubSub {
	return &fakePubSub{published: map[string][]string{}}
}

func (p *fakePubSub) Subscribe(topic, endpoint, _ string) (string, error) {
	return "sub-id", nil
}

func (p *fakePubSub) Unsubscribe(_ string) error { return nil }

func (p *fakePubSub) ListSubscriptionsForTopic(_ string) []ports.Subscription {
	return nil
}

func (p *fakePubSub) Publish(topic, message string) error {
	p.published[topic] = append(p.published[topic], message)
	return nil
}

func (p *fakePubSub) Close() {}
