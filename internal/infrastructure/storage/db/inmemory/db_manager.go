package inmemory

import (
	"context"
	"sync"

	"github.com/auctionward/auctiond/internal/core/domain"
	"github.com/auctionward/auctiond/internal/core/ports"
)

// RepoManager is an in-memory implementation of ports.RepoManager, used in
// tests and throwaway deployments.
type RepoManager struct {
	auctionRepository    domain.AuctionRepository
	ledgerRepository     domain.LedgerRepository
	feeRepository        domain.FeeRepository
	randomnessRepository domain.RandomnessRepository

	locker *sync.Mutex
}

func NewRepoManager() ports.RepoManager {
	store := newInmemoryStore()

	return &RepoManager{
		auctionRepository:    NewAuctionRepositoryImpl(store),
		ledgerRepository:     NewLedgerRepositoryImpl(store),
		feeRepository:        NewFeeRepositoryImpl(store),
		randomnessRepository: NewRandomnessRepositoryImpl(store),
		locker:               &sync.Mutex{},
	}
}

func (d *RepoManager) AuctionRepository() domain.AuctionRepository {
	return d.auctionRepository
}

func (d *RepoManager) LedgerRepository() domain.LedgerRepository {
	return d.ledgerRepository
}

func (d *RepoManager) FeeRepository() domain.FeeRepository {
	return d.feeRepository
}

func (d *RepoManager) RandomnessRepository() domain.RandomnessRepository {
	return d.randomnessRepository
}

func (d *RepoManager) Close() {}

// RunTransaction serializes handlers on a single lock. The in-memory stores
// mutate maps in place, so handlers are expected to validate before mutating,
// which all the application services do.
func (d *RepoManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	d.locker.Lock()
	defer d.locker.Unlock()
	return handler(ctx)
}

// Each store family carries its own lock because the application nests
// ledger and randomness writes inside auction updates.
type inmemoryStore struct {
	auctionsLocker *sync.RWMutex
	auctions       map[string]*domain.Auction

	ledgerLocker *sync.RWMutex
	balances     map[string]uint64
	stats        *domain.LedgerStats

	feeLocker *sync.RWMutex
	feeConfig *domain.FeeConfig

	requestsLocker *sync.RWMutex
	requests       map[string]*domain.RandomnessRequest
}

func newInmemoryStore() *inmemoryStore {
	return &inmemoryStore{
		auctionsLocker: &sync.RWMutex{},
		auctions:       map[string]*domain.Auction{},
		ledgerLocker:   &sync.RWMutex{},
		balances:       map[string]uint64{},
		stats:          &domain.LedgerStats{},
		feeLocker:      &sync.RWMutex{},
		requestsLocker: &sync.RWMutex{},
		requests:       map[string]*domain.RandomnessRequest{},
	}
}
