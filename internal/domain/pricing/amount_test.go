//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"chershare/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountCheckedArithmetic(t *testing.T) {
	maxAmount := pricing.Amount(math.MaxUint64)

	t.Run("add", func(t *testing.T) {
		sum, err := pricing.Amount(40).CheckedAdd(2)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount(42), sum)

		_, err = maxAmount.CheckedAdd(1)
		assert.ErrorIs(t, err, pricing.ErrArithmeticOverflow)
	})

	t.Run("mul", func(t *testing.T) {
		prod, err := pricing.Amount(6).CheckedMul(7)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount(42), prod)

		_, err = maxAmount.CheckedMul(2)
		assert.ErrorIs(t, err, pricing.ErrArithmeticOverflow)
	})

	t.Run("saturating sub floors at zero", func(t *testing.T) {
		assert.Equal(t, pricing.Amount(5), pricing.Amount(15).SaturatingSub(10))
		assert.Equal(t, pricing.Amount(0), pricing.Amount(10).SaturatingSub(10))
		assert.Equal(t, pricing.Amount(0), pricing.Amount(5).SaturatingSub(10))
	})
}
