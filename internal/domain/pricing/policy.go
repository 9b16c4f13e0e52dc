package pricing

import (
	"errors"
	"math"
	"math/bits"
)

var (
	ErrUnknownPolicyKind  = errors.New("unknown pricing policy kind")
	ErrZeroRefundWindow   = errors.New("refund window must be positive")
	ErrIntervalNotOrdered = errors.New("interval end must be after begin")
)

type Kind string

const (
	// KindFlatRent charges a flat per-millisecond rent and refunds the
	// full price unconditionally on cancellation.
	KindFlatRent Kind = "flat_rent"
	// KindDecayingRefundRent adds a fixed base fee and decays the
	// refund quadratically as the slot start approaches.
	KindDecayingRefundRent Kind = "decaying_refund_rent"
)

// refundPrecision is the fixed-point scale of the decay curve. The
// curve is evaluated entirely in integers; one part in a thousand is
// the refund granularity.
const refundPrecision Amount = 1000

// Policy is a closed sum over the supported pricing variants. The
// variant set is small, fixed and sits on the booking hot path, so it
// is a tagged struct with exhaustive switches rather than an interface.
type Policy struct {
	Kind           Kind   `json:"kind"`
	PricePerMs     Amount `json:"price_per_ms"`
	BaseFee        Amount `json:"base_fee,omitempty"`         // decaying_refund_rent only
	RefundWindowMs int64  `json:"refund_window_ms,omitempty"` // decaying_refund_rent only
}

func FlatRent(pricePerMs Amount) Policy {
	return Policy{Kind: KindFlatRent, PricePerMs: pricePerMs}
}

func DecayingRefundRent(baseFee, pricePerMs Amount, refundWindowMs int64) Policy {
	return Policy{
		Kind:           KindDecayingRefundRent,
		BaseFee:        baseFee,
		PricePerMs:     pricePerMs,
		RefundWindowMs: refundWindowMs,
	}
}

func (p Policy) Validate() error {
	switch p.Kind {
	case KindFlatRent:
		return nil
	case KindDecayingRefundRent:
		if p.RefundWindowMs <= 0 {
			return ErrZeroRefundWindow
		}
		return nil
	default:
		return ErrUnknownPolicyKind
	}
}

// Price returns the amount due for the half-open slot [beginMs, endMs).
// Pure; overflow fails with ErrArithmeticOverflow instead of wrapping.
func (p Policy) Price(beginMs, endMs int64) (Amount, error) {
	if endMs <= beginMs {
		return 0, ErrIntervalNotOrdered
	}
	rent, err := Amount(endMs - beginMs).CheckedMul(p.PricePerMs)
	if err != nil {
		return 0, err
	}
	switch p.Kind {
	case KindFlatRent:
		return rent, nil
	case KindDecayingRefundRent:
		return p.BaseFee.CheckedAdd(rent)
	default:
		return 0, ErrUnknownPolicyKind
	}
}

// Refund returns the amount returned to the booker when a booking of
// [beginMs, endMs) is cancelled at nowMs. Always <= Price.
func (p Policy) Refund(beginMs, endMs, nowMs int64) (Amount, error) {
	price, err := p.Price(beginMs, endMs)
	if err != nil {
		return 0, err
	}
	switch p.Kind {
	case KindFlatRent:
		// Full refund regardless of timing; mirrors the platform's
		// documented simplification for the flat variant.
		return price, nil
	case KindDecayingRefundRent:
		if nowMs >= beginMs {
			// No refund once the slot has started.
			return 0, nil
		}
		distance := beginMs - nowMs
		if distance >= p.RefundWindowMs {
			return price, nil
		}
		return decayedRefund(price, p.RefundWindowMs, distance)
	default:
		return 0, ErrUnknownPolicyKind
	}
}

// decayedRefund evaluates the quadratic-in-progress curve
//
//	factor = P * (W^2 - (W-d)^2) / W^2
//	refund = price * factor / P
//
// with P = refundPrecision, W = refund window, d = distance to the slot
// start. Integer division only; the factor is in [0, P]. The squares
// exceed uint64 for windows beyond ~2^32 ms (50 days), so the
// intermediates are 128-bit; the factor and the refund always fit.
func decayedRefund(price Amount, windowMs, distanceMs int64) (Amount, error) {
	p := uint64(refundPrecision)
	w := uint64(windowMs)
	progress := uint64(windowMs - distanceMs)

	wsqHi, wsqLo := bits.Mul64(w, w)
	if wsqHi >= math.MaxUint64/p {
		return 0, ErrArithmeticOverflow
	}
	psqHi, psqLo := bits.Mul64(progress, progress)

	diffLo, borrow := bits.Sub64(wsqLo, psqLo, 0)
	diffHi, _ := bits.Sub64(wsqHi, psqHi, borrow)

	carry, numLo := bits.Mul64(diffLo, p)
	numHi := diffHi*p + carry

	// factor = num / W^2. The quotient is bounded by refundPrecision,
	// so a bounded search stands in for a general 128-bit division.
	var factor uint64
	for lo, hi := uint64(0), p; lo <= hi; {
		mid := lo + (hi-lo)/2
		candCarry, candLo := bits.Mul64(wsqLo, mid)
		candHi := wsqHi*mid + candCarry
		if candHi < numHi || (candHi == numHi && candLo <= numLo) {
			factor = mid
			lo = mid + 1
		} else {
			if mid == 0 {
				break
			}
			hi = mid - 1
		}
	}

	scaled, err := price.CheckedMul(Amount(factor))
	if err != nil {
		return 0, err
	}
	return scaled / refundPrecision, nil
}
