//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"chershare/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyValidate(t *testing.T) {
	cases := []struct {
		name   string
		policy pricing.Policy
		errIs  error
	}{
		{name: "flat rent", policy: pricing.FlatRent(3)},
		{name: "decaying refund rent", policy: pricing.DecayingRefundRent(100, 3, 86_400_000)},
		{
			name:   "decaying refund rent with zero window",
			policy: pricing.DecayingRefundRent(100, 3, 0),
			errIs:  pricing.ErrZeroRefundWindow,
		},
		{
			name:   "decaying refund rent with negative window",
			policy: pricing.DecayingRefundRent(100, 3, -1),
			errIs:  pricing.ErrZeroRefundWindow,
		},
		{
			name:   "unknown kind",
			policy: pricing.Policy{Kind: "hourly"},
			errIs:  pricing.ErrUnknownPolicyKind,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.policy.Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPolicyPrice(t *testing.T) {
	t.Run("flat rent is duration times rate", func(t *testing.T) {
		p := pricing.FlatRent(3)
		price, err := p.Price(1_000, 2_000)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount(3_000), price)
	})

	t.Run("decaying refund rent adds the base fee", func(t *testing.T) {
		p := pricing.DecayingRefundRent(500, 3, 86_400_000)
		price, err := p.Price(1_000, 2_000)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount(3_500), price)
	})

	t.Run("unordered interval is rejected", func(t *testing.T) {
		p := pricing.FlatRent(3)
		_, err := p.Price(2_000, 2_000)
		assert.ErrorIs(t, err, pricing.ErrIntervalNotOrdered)
		_, err = p.Price(2_000, 1_000)
		assert.ErrorIs(t, err, pricing.ErrIntervalNotOrdered)
	})

	t.Run("overflow is an error, never a wrap", func(t *testing.T) {
		p := pricing.FlatRent(math.MaxUint64)
		_, err := p.Price(0, 2)
		assert.ErrorIs(t, err, pricing.ErrArithmeticOverflow)

		p = pricing.DecayingRefundRent(math.MaxUint64, 1, 1_000)
		_, err = p.Price(0, 1)
		assert.ErrorIs(t, err, pricing.ErrArithmeticOverflow)
	})
}

func TestPolicyRefund(t *testing.T) {
	t.Run("flat rent refunds the full price at any time", func(t *testing.T) {
		p := pricing.FlatRent(2)
		for _, nowMs := range []int64{0, 999, 1_000, 1_500, 10_000} {
			refund, err := p.Refund(1_000, 2_000, nowMs)
			require.NoError(t, err)
			assert.Equal(t, pricing.Amount(2_000), refund)
		}
	})

	t.Run("decaying: full refund at or beyond the window", func(t *testing.T) {
		p := pricing.DecayingRefundRent(500, 3, 10_000)
		price, err := p.Price(20_000, 21_000)
		require.NoError(t, err)

		refund, err := p.Refund(20_000, 21_000, 10_000) // distance == window
		require.NoError(t, err)
		assert.Equal(t, price, refund)

		refund, err = p.Refund(20_000, 21_000, 0) // distance > window
		require.NoError(t, err)
		assert.Equal(t, price, refund)
	})

	t.Run("decaying: zero refund once the slot has started", func(t *testing.T) {
		p := pricing.DecayingRefundRent(500, 3, 10_000)
		for _, nowMs := range []int64{20_000, 20_500, 30_000} {
			refund, err := p.Refund(20_000, 21_000, nowMs)
			require.NoError(t, err)
			assert.Equal(t, pricing.Amount(0), refund)
		}
	})

	t.Run("decaying: exact quadratic values inside the window", func(t *testing.T) {
		// price 1000, window 1000ms
		p := pricing.DecayingRefundRent(0, 1, 1_000)
		begin, end := int64(100_000), int64(101_000)

		cases := []struct {
			distanceMs int64
			expect     pricing.Amount
		}{
			// factor = 1000 * (W^2 - (W-d)^2) / W^2
			{distanceMs: 500, expect: 750},
			{distanceMs: 100, expect: 190},
			{distanceMs: 900, expect: 990},
			{distanceMs: 1, expect: 1},
		}
		for _, tc := range cases {
			refund, err := p.Refund(begin, end, begin-tc.distanceMs)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, refund, "distance %dms", tc.distanceMs)
		}
	})

	t.Run("decaying: multi-month window stays exact", func(t *testing.T) {
		// W^2 exceeds uint64 for windows beyond ~50 days; a 60-day
		// window is an ordinary configuration and must still price.
		const window = int64(60 * 24 * 3_600_000)
		p := pricing.DecayingRefundRent(0, 1, window)
		begin, end := window, window+3_600_000
		price, err := p.Price(begin, end)
		require.NoError(t, err)
		require.Equal(t, pricing.Amount(3_600_000), price)

		// halfway in: factor = 1000 * (1 - 1/4) = 750
		refund, err := p.Refund(begin, end, begin-window/2)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount(2_700_000), refund)

		// a quarter in: factor = floor(1000 * 7/16) = 437
		refund, err = p.Refund(begin, end, begin-window/4)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount(1_573_200), refund)

		// boundaries unchanged
		refund, err = p.Refund(begin, end, begin-window)
		require.NoError(t, err)
		assert.Equal(t, price, refund)
		refund, err = p.Refund(begin, end, begin)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount(0), refund)
	})

	t.Run("decaying: refund never exceeds the price and never increases toward the start", func(t *testing.T) {
		p := pricing.DecayingRefundRent(250, 7, 50_000)
		begin, end := int64(1_000_000), int64(1_036_000)
		price, err := p.Price(begin, end)
		require.NoError(t, err)

		prev := price
		for d := int64(50_000); d >= 0; d -= 1_000 {
			refund, err := p.Refund(begin, end, begin-d)
			require.NoError(t, err)
			assert.LessOrEqual(t, refund, price)
			assert.LessOrEqual(t, refund, prev, "refund must not grow as the start approaches")
			prev = refund
		}
	})
}
