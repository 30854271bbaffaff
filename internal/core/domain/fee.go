package domain

import "github.com/auctionward/auctiond/pkg/mathutil"

// FeeConfig is the singleton holding the platform fee rate, the identity that
// collects it and the single administrator allowed to change either.
type FeeConfig struct {
	// PercentageFee is the platform fee expressed in basis points.
	PercentageFee uint64
	// FeeRecipient is the identity credited with the platform cut at
	// settlement.
	FeeRecipient string
	// Admin is the only identity allowed to change the fee configuration.
	Admin string
}

// NewFeeConfig returns a validated fee configuration.
func NewFeeConfig(percentageFee uint64, feeRecipient, admin string) (*FeeConfig, error) {
	if !isValidBasisPoint(percentageFee) {
		return nil, ErrInvalidFeeBasisPoint
	}
	if len(feeRecipient) <= 0 {
		return nil, ErrNullFeeRecipient
	}
	return &FeeConfig{
		PercentageFee: percentageFee,
		FeeRecipient:  feeRecipient,
		Admin:         admin,
	}, nil
}

// IsAdmin returns whether the caller holds the administrator capability.
func (f *FeeConfig) IsAdmin(caller string) bool {
	return len(caller) > 0 && caller == f.Admin
}

// ChangeFee updates the platform fee rate. Only the administrator is allowed.
func (f *FeeConfig) ChangeFee(caller string, percentageFee uint64) error {
	if !f.IsAdmin(caller) {
		return ErrDenied
	}
	if !isValidBasisPoint(percentageFee) {
		return ErrInvalidFeeBasisPoint
	}
	f.PercentageFee = percentageFee
	return nil
}

// ChangeFeeRecipient updates the identity collecting the platform cut. Only
// the administrator is allowed.
func (f *FeeConfig) ChangeFeeRecipient(caller, feeRecipient string) error {
	if !f.IsAdmin(caller) {
		return ErrDenied
	}
	if len(feeRecipient) <= 0 {
		return ErrNullFeeRecipient
	}
	f.FeeRecipient = feeRecipient
	return nil
}

// SplitProceeds splits a winning bid into the seller share and the platform
// cut according to the current fee rate.
func (f *FeeConfig) SplitProceeds(amount uint64) (sellerShare, platformCut uint64) {
	return mathutil.SplitFee(amount, f.PercentageFee)
}

func isValidBasisPoint(bp uint64) bool {
	return bp < mathutil.TenThousands
}
