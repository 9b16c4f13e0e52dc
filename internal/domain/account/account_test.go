//go:build unit

package account_test

import (
	"strings"
	"testing"

	"chershare/internal/domain/account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	valid := []string{
		"ab",
		"alice.test",
		"factory-app_7.platform",
		strings.Repeat("a", account.MaxIDLength),
	}
	for _, raw := range valid {
		t.Run("valid "+raw, func(t *testing.T) {
			id, err := account.NewID(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, id.String())
		})
	}

	invalid := []string{
		"",
		"a",
		"Alice.test",
		".alice",
		"alice.",
		"ali..ce",
		"ali ce",
		"alice!",
		strings.Repeat("a", account.MaxIDLength+1),
	}
	for _, raw := range invalid {
		t.Run("invalid "+raw, func(t *testing.T) {
			_, err := account.NewID(raw)
			assert.ErrorIs(t, err, account.ErrInvalidAccountID)
		})
	}
}

func TestSub(t *testing.T) {
	parent, err := account.NewID("factory.app")
	require.NoError(t, err)

	sub, err := parent.Sub("beach-hut")
	require.NoError(t, err)
	assert.Equal(t, account.ID("beach-hut.factory.app"), sub)

	_, err = parent.Sub("Beach")
	assert.ErrorIs(t, err, account.ErrInvalidAccountID)
}
