package mathutil

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// TenThousands ...
var TenThousands = uint64(10000)

// SplitFee splits an amount into the net part and the fee part, given a fee
// expressed in basis points (ie. 0.25% = 25).
func SplitFee(amount, feeAsBasisPoint uint64) (net, calculatedFee uint64) {
	feeDecimal := decimal.NewFromBigInt(new(big.Int).SetUint64(feeAsBasisPoint), 0)
	amountDecimal := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0)
	tenThousandsDecimal := decimal.NewFromBigInt(new(big.Int).SetUint64(TenThousands), 0)

	calculatedFeeDecimal := amountDecimal.Div(tenThousandsDecimal).Mul(feeDecimal).Floor()
	netDecimal := amountDecimal.Sub(calculatedFeeDecimal)

	return netDecimal.BigInt().Uint64(), calculatedFeeDecimal.BigInt().Uint64()
}
