package booking

import "errors"

var ErrInvalidInterval = errors.New("invalid interval")

// Interval is a half-open time range [BeginMs, EndMs) in milliseconds
// since the epoch. Half-open semantics let bookings sit back-to-back.
type Interval struct {
	BeginMs int64
	EndMs   int64
}

func NewInterval(beginMs, endMs int64) (Interval, error) {
	if endMs <= beginMs {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{BeginMs: beginMs, EndMs: endMs}, nil
}

func (iv Interval) DurationMs() int64 {
	return iv.EndMs - iv.BeginMs
}

// Overlaps reports whether two half-open intervals share any instant.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.BeginMs < other.EndMs && iv.EndMs > other.BeginMs
}
