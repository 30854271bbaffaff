package domain

// RandomnessRequest correlates an outstanding oracle request id to the
// auction that issued it. At most one pending request exists per auction; the
// entry is consumed by the matching fulfillment and a fulfillment for an
// unknown id is rejected.
type RandomnessRequest struct {
	ID        string
	AssetID   string
	CreatedAt int64
}
