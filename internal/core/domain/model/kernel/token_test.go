package kernel_test

import (
	"testing"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_Validate(t *testing.T) {
	t.Run("should accept positive tokens", func(t *testing.T) {
		require.NoError(t, kernel.MinToken.Validate())
		require.NoError(t, kernel.Token(42).Validate())
	})

	t.Run("should reject zero and negative tokens", func(t *testing.T) {
		for _, token := range []kernel.Token{0, -1} {
			err := token.Validate()

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestTokenFromString(t *testing.T) {
	t.Run("should parse decimal token", func(t *testing.T) {
		token, err := kernel.TokenFromString("17")

		require.NoError(t, err)
		assert.Equal(t, kernel.Token(17), token)
		assert.Equal(t, "17", token.String())
	})

	t.Run("should reject non numeric input", func(t *testing.T) {
		_, err := kernel.TokenFromString("seventeen")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"seventeen" is not an integer`)
	})

	t.Run("should reject zero", func(t *testing.T) {
		_, err := kernel.TokenFromString("0")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
