package ports

import "context"

// RandomnessOracle is the outbound half of the two-phase randomness protocol.
// The inbound half is the fulfill callback, which arrives on its own
// execution context through the HTTP interface.
type RandomnessOracle interface {
	// Request forwards a randomness request identified by its correlation id.
	Request(ctx context.Context, requestID string) error
}
