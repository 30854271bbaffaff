package inmemory

import (
	"context"

	"github.com/auctionward/auctiond/internal/core/domain"
)

type randomnessRepositoryImpl struct {
	store *inmemoryStore
}

// NewRandomnessRepositoryImpl returns a new inmemory RandomnessRepository
// implementation.
func NewRandomnessRepositoryImpl(store *inmemoryStore) domain.RandomnessRepository {
	return &randomnessRepositoryImpl{store}
}

func (r randomnessRepositoryImpl) AddRequest(
	_ context.Context, request *domain.RandomnessRequest,
) error {
	r.store.requestsLocker.Lock()
	defer r.store.requestsLocker.Unlock()

	for _, pending := range r.store.requests {
		if pending.AssetID == request.AssetID {
			return domain.ErrRequestAlreadyPending
		}
	}

	copied := *request
	r.store.requests[request.ID] = &copied
	return nil
}

func (r randomnessRepositoryImpl) GetRequest(
	_ context.Context, requestID string,
) (*domain.RandomnessRequest, error) {
	r.store.requestsLocker.RLock()
	defer r.store.requestsLocker.RUnlock()

	request, ok := r.store.requests[requestID]
	if !ok {
		return nil, domain.ErrUnknownRequest
	}
	copied := *request
	return &copied, nil
}

func (r randomnessRepositoryImpl) DeleteRequest(
	_ context.Context, requestID string,
) error {
	r.store.requestsLocker.Lock()
	defer r.store.requestsLocker.Unlock()

	if _, ok := r.store.requests[requestID]; !ok {
		return domain.ErrUnknownRequest
	}
	delete(r.store.requests, requestID)
	return nil
}
