//go:build unit

package resource_test

import (
	"testing"

	"chershare/internal/domain/booking"
	"chershare/internal/domain/pricing"
	"chershare/internal/domain/resource"
	"chershare/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hourMs = 3_600_000

func newHourlyResource(t *testing.T) *resource.Resource {
	t.Helper()
	// one-hour minimum, one unit per millisecond
	res, err := builder.NewResourceBuilder().
		WithMinDuration(hourMs).
		WithPricing(pricing.FlatRent(1)).
		BuildDomain()
	require.NoError(t, err)
	return res
}

func TestNewResource(t *testing.T) {
	t.Run("params are returned exactly as supplied", func(t *testing.T) {
		b := builder.NewResourceBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)

		if diff := cmp.Diff(b.BuildParams(), res.Params()); diff != "" {
			t.Errorf("params mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ResourceBuilder)
			errIs  error
		}{
			{
				name:   "empty title",
				mutate: func(b *builder.ResourceBuilder) { b.Title = "   " },
				errIs:  resource.ErrEmptyTitle,
			},
			{
				name: "title too long",
				mutate: func(b *builder.ResourceBuilder) {
					long := make([]byte, resource.MaxTitleLength+1)
					for i := range long {
						long[i] = 'x'
					}
					b.Title = string(long)
				},
				errIs: resource.ErrTitleTooLong,
			},
			{
				name:   "negative minimum duration",
				mutate: func(b *builder.ResourceBuilder) { b.MinDurationMs = -1 },
				errIs:  resource.ErrNegativeMinDuration,
			},
			{
				name:   "invalid pricing policy",
				mutate: func(b *builder.ResourceBuilder) { b.Pricing = pricing.Policy{Kind: "hourly"} },
				errIs:  pricing.ErrUnknownPolicyKind,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewResourceBuilder().With(tc.mutate).BuildDomain()
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestResourceBook(t *testing.T) {
	begin := int64(10_000_000)

	t.Run("charges exactly the quoted price", func(t *testing.T) {
		res := newHourlyResource(t)

		quoted, err := res.Quote(begin, begin+hourMs)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount(hourMs), quoted)

		b, err := res.Book("alice.test", begin, begin+hourMs, quoted)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), b.ID)
		assert.Equal(t, quoted, b.PriceCharged)
		assert.Equal(t, 1, res.Bookings())
	})

	t.Run("surplus attached funds are kept, not refunded", func(t *testing.T) {
		res := newHourlyResource(t)
		b, err := res.Book("alice.test", begin, begin+hourMs, pricing.Amount(hourMs)+12_345)
		require.NoError(t, err)
		// the record keeps the price, not the attachment
		assert.Equal(t, pricing.Amount(hourMs), b.PriceCharged)
	})

	t.Run("insufficient funds reports the exact shortfall and books nothing", func(t *testing.T) {
		res := newHourlyResource(t)
		_, err := res.Book("alice.test", begin, begin+hourMs, pricing.Amount(hourMs)-1)
		require.ErrorIs(t, err, resource.ErrInsufficientFunds)

		var ife *resource.InsufficientFundsError
		require.ErrorAs(t, err, &ife)
		assert.Equal(t, pricing.Amount(hourMs), ife.Required)
		assert.Equal(t, pricing.Amount(hourMs)-1, ife.Provided)
		assert.Equal(t, 0, res.Bookings())
	})

	t.Run("shorter than the minimum duration", func(t *testing.T) {
		res := newHourlyResource(t)
		_, err := res.Book("alice.test", begin, begin+hourMs-1, pricing.Amount(hourMs))
		assert.ErrorIs(t, err, resource.ErrDurationTooShort)

		_, err = res.Quote(begin, begin+hourMs-1)
		assert.ErrorIs(t, err, resource.ErrDurationTooShort)
	})

	t.Run("invalid interval", func(t *testing.T) {
		res := newHourlyResource(t)
		_, err := res.Book("alice.test", begin, begin, pricing.Amount(hourMs))
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("colliding slot is rejected, touching slot is not", func(t *testing.T) {
		res := newHourlyResource(t)
		_, err := res.Book("alice.test", begin, begin+hourMs, pricing.Amount(hourMs))
		require.NoError(t, err)

		_, err = res.Book("bob.test", begin+hourMs-1, begin+2*hourMs, pricing.Amount(hourMs+1))
		assert.ErrorIs(t, err, booking.ErrCollision)

		_, err = res.Book("bob.test", begin+hourMs, begin+2*hourMs, pricing.Amount(hourMs))
		assert.NoError(t, err)
	})
}

func TestResourceCancel(t *testing.T) {
	begin := int64(10_000_000)

	t.Run("flat rent refunds the full price and frees the slot", func(t *testing.T) {
		res := newHourlyResource(t)
		b, err := res.Book("alice.test", begin, begin+hourMs, pricing.Amount(hourMs))
		require.NoError(t, err)

		canceled, refund, err := res.Cancel("alice.test", b.ID, begin-1)
		require.NoError(t, err)
		assert.Equal(t, b, canceled)
		assert.Equal(t, b.PriceCharged, refund)
		assert.Equal(t, 0, res.Bookings())

		// the slot is bookable again
		_, err = res.Book("bob.test", begin, begin+hourMs, pricing.Amount(hourMs))
		assert.NoError(t, err)
	})

	t.Run("only the booker may cancel", func(t *testing.T) {
		res := newHourlyResource(t)
		b, err := res.Book("alice.test", begin, begin+hourMs, pricing.Amount(hourMs))
		require.NoError(t, err)

		_, _, err = res.Cancel("mallory.test", b.ID, begin-1)
		assert.ErrorIs(t, err, resource.ErrNotBooker)
		assert.Equal(t, 1, res.Bookings())
	})

	t.Run("unknown booking", func(t *testing.T) {
		res := newHourlyResource(t)
		_, _, err := res.Cancel("alice.test", 42, begin)
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	})

	t.Run("decaying policy refunds per the curve at cancellation time", func(t *testing.T) {
		// price 1000 for the hour, window 1000ms
		res, err := builder.NewResourceBuilder().
			WithMinDuration(0).
			WithPricing(pricing.DecayingRefundRent(0, 1, 1_000)).
			BuildDomain()
		require.NoError(t, err)

		b, err := res.Book("alice.test", begin, begin+1_000, 1_000)
		require.NoError(t, err)

		_, refund, err := res.Cancel("alice.test", b.ID, begin-500)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount(750), refund)
	})
}
