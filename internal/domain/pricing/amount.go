package pricing

import (
	"errors"
	"math/bits"
)

var ErrArithmeticOverflow = errors.New("arithmetic overflow in amount computation")

// Amount is a monetary quantity in the platform's smallest unit. All
// money math is integer-only and checked: an overflow aborts the
// calling operation instead of wrapping.
type Amount uint64

func (a Amount) CheckedAdd(b Amount) (Amount, error) {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		return 0, ErrArithmeticOverflow
	}
	return Amount(sum), nil
}

// SaturatingSub floors at zero instead of failing; used for refunds
// where a configured cost may exceed the attached funds.
func (a Amount) SaturatingSub(b Amount) Amount {
	if b >= a {
		return 0
	}
	return a - b
}

func (a Amount) CheckedMul(b Amount) (Amount, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 {
		return 0, ErrArithmeticOverflow
	}
	return Amount(lo), nil
}
