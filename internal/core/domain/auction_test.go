package domain_test

import (
	"testing"
	"time"

	"github.com/auctionward/auctiond/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestNewAuction(t *testing.T) {
	now := time.Now().Unix()

	t.Run("valid_window", func(t *testing.T) {
		auction, err := domain.NewAuction(
			"asset1", "seller1", 100, now, now+3600, now, false,
		)
		require.NoError(t, err)
		require.NotNil(t, auction)
		require.True(t, auction.IsActive())
		require.False(t, auction.HasBid())
		require.Zero(t, auction.HighestBid)
		require.Empty(t, auction.HighestBidder)
	})

	t.Run("invalid_window", func(t *testing.T) {
		auction, err := domain.NewAuction(
			"asset1", "seller1", 100, now+3600, now, now, false,
		)
		require.EqualError(t, err, domain.ErrInvalidWindow.Error())
		require.Nil(t, auction)

		auction, err = domain.NewAuction(
			"asset1", "seller1", 100, now, now, now, false,
		)
		require.EqualError(t, err, domain.ErrInvalidWindow.Error())
		require.Nil(t, auction)
	})
}

func TestAuctionApplyBid(t *testing.T) {
	now := time.Now().Unix()

	t.Run("first_bid", func(t *testing.T) {
		auction := newActiveAuction(now)

		outbidBidder, outbidAmount, err := auction.ApplyBid("bidderA", 10, now)
		require.NoError(t, err)
		require.Empty(t, outbidBidder)
		require.Zero(t, outbidAmount)
		require.Equal(t, "bidderA", auction.HighestBidder)
		require.Equal(t, uint64(10), auction.HighestBid)
	})

	t.Run("outbid_returns_previous_leader", func(t *testing.T) {
		auction := newActiveAuction(now)
		_, _, err := auction.ApplyBid("bidderA", 10, now)
		require.NoError(t, err)

		outbidBidder, outbidAmount, err := auction.ApplyBid("bidderB", 15, now)
		require.NoError(t, err)
		require.Equal(t, "bidderA", outbidBidder)
		require.Equal(t, uint64(10), outbidAmount)
		require.Equal(t, "bidderB", auction.HighestBidder)
		require.Equal(t, uint64(15), auction.HighestBid)
	})

	t.Run("tie_rejected", func(t *testing.T) {
		auction := newActiveAuction(now)
		_, _, err := auction.ApplyBid("bidderA", 10, now)
		require.NoError(t, err)

		_, _, err = auction.ApplyBid("bidderB", 10, now)
		require.EqualError(t, err, domain.ErrBidTooLow.Error())
		require.Equal(t, "bidderA", auction.HighestBidder)
	})

	t.Run("zero_bid_rejected", func(t *testing.T) {
		auction := newActiveAuction(now)
		_, _, err := auction.ApplyBid("bidderA", 0, now)
		require.EqualError(t, err, domain.ErrBidTooLow.Error())
	})

	t.Run("window_not_started", func(t *testing.T) {
		auction, err := domain.NewAuction(
			"asset1", "seller1", 100, now+100, now+3600, now, false,
		)
		require.NoError(t, err)

		_, _, err = auction.ApplyBid("bidderA", 10, now)
		require.EqualError(t, err, domain.ErrWindowClosed.Error())
	})

	t.Run("window_elapsed", func(t *testing.T) {
		auction := newActiveAuction(now)
		_, _, err := auction.ApplyBid("bidderA", 10, auction.EndTime)
		require.EqualError(t, err, domain.ErrWindowClosed.Error())
	})

	t.Run("not_active", func(t *testing.T) {
		auction := newActiveAuction(now)
		require.NoError(t, auction.MarkResolving("req1"))

		_, _, err := auction.ApplyBid("bidderA", 10, now)
		require.EqualError(t, err, domain.ErrAuctionNotActive.Error())
	})
}

func TestAuctionMonotonicBidding(t *testing.T) {
	now := time.Now().Unix()
	auction := newActiveAuction(now)

	amounts := []uint64{5, 9, 10, 42, 100}
	var lastAccepted uint64
	for i, amount := range amounts {
		_, _, err := auction.ApplyBid("bidder", amount, now)
		require.NoError(t, err, "bid %d", i)
		require.Greater(t, amount, lastAccepted)
		lastAccepted = amount
	}
	require.Equal(t, uint64(100), auction.HighestBid)
}

func TestAuctionTransitions(t *testing.T) {
	now := time.Now().Unix()

	t.Run("active_to_ended", func(t *testing.T) {
		auction := newActiveAuction(now)
		require.NoError(t, auction.MarkEnded(now))
		require.True(t, auction.IsEnded())
		require.True(t, auction.IsTerminal())
	})

	t.Run("active_to_cancelled", func(t *testing.T) {
		auction := newActiveAuction(now)
		require.NoError(t, auction.MarkCancelled(now))
		require.True(t, auction.IsCancelled())
	})

	t.Run("resolving_to_ended_consumes_pending_marker", func(t *testing.T) {
		auction := newActiveAuction(now)
		require.NoError(t, auction.MarkResolving("req1"))
		require.Equal(t, "req1", auction.PendingRequestID)

		require.NoError(t, auction.MarkEnded(now))
		require.True(t, auction.IsEnded())
		require.Empty(t, auction.PendingRequestID)
	})

	t.Run("double_resolving_rejected", func(t *testing.T) {
		auction := newActiveAuction(now)
		require.NoError(t, auction.MarkResolving("req1"))

		err := auction.MarkResolving("req2")
		require.EqualError(t, err, domain.ErrRequestAlreadyPending.Error())
	})

	t.Run("terminal_states_absorb", func(t *testing.T) {
		ended := newActiveAuction(now)
		require.NoError(t, ended.MarkEnded(now))
		require.EqualError(t, ended.MarkCancelled(now), domain.ErrStateConflict.Error())
		require.EqualError(t, ended.MarkResolving("req1"), domain.ErrStateConflict.Error())

		cancelled := newActiveAuction(now)
		require.NoError(t, cancelled.MarkCancelled(now))
		require.EqualError(t, cancelled.MarkEnded(now), domain.ErrStateConflict.Error())
	})

	t.Run("resolving_cannot_be_cancelled", func(t *testing.T) {
		auction := newActiveAuction(now)
		require.NoError(t, auction.MarkResolving("req1"))
		require.EqualError(t, auction.MarkCancelled(now), domain.ErrStateConflict.Error())
	})
}

func TestAuctionReserve(t *testing.T) {
	now := time.Now().Unix()
	auction := newActiveAuction(now)
	require.False(t, auction.IsReserveMet())

	_, _, err := auction.ApplyBid("bidderA", 80, now)
	require.NoError(t, err)
	require.False(t, auction.IsReserveMet())

	_, _, err = auction.ApplyBid("bidderB", 100, now)
	require.NoError(t, err)
	require.True(t, auction.IsReserveMet())
}

func newActiveAuction(now int64) *domain.Auction {
	auction, _ := domain.NewAuction(
		"asset1", "seller1", 100, now-60, now+3600, now, false,
	)
	return auction
}
