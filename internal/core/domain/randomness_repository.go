package domain

import "context"

// RandomnessRepository is the abstraction for any kind of database intended
// to persist pending randomness requests.
type RandomnessRepository interface {
	// AddRequest persists a pending request. It returns
	// ErrRequestAlreadyPending if the auction already has an outstanding one.
	AddRequest(ctx context.Context, request *RandomnessRequest) error
	// GetRequest returns the pending request with the given correlation id,
	// or ErrUnknownRequest.
	GetRequest(ctx context.Context, requestID string) (*RandomnessRequest, error)
	// DeleteRequest consumes a pending request. Deleting an unknown id
	// returns ErrUnknownRequest.
	DeleteRequest(ctx context.Context, requestID string) error
}
