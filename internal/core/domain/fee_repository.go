package domain

import "context"

// FeeRepository is the abstraction for any kind of database intended to
// persist the fee configuration singleton.
type FeeRepository interface {
	// InitFeeConfig persists the given configuration only if none exists yet.
	InitFeeConfig(ctx context.Context, config *FeeConfig) error
	// GetFeeConfig returns the current fee configuration.
	GetFeeConfig(ctx context.Context) (*FeeConfig, error)
	// UpdateFeeConfig allows to commit changes to the fee configuration in a
	// transactional way.
	UpdateFeeConfig(
		ctx context.Context,
		updateFn func(c *FeeConfig) (*FeeConfig, error),
	) error
}
