package kernel_test

import (
	"strings"
	"testing"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("3.5"))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "3.50", m.StringFixed())
	})

	t.Run("should allow zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "$0.00", m.String())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m kernel.Money

		require.ErrorIs(t, m.Validate(), errs.ErrValueIsRequired)
	})
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "2.50", want: "2.50"},
		{name: "integer", input: "4", want: "4.00"},
		{name: "dollar sign", input: "$0.75", want: "0.75"},
		{name: "whitespace", input: "  1.2 ", want: "1.20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := kernel.ParseMoney(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, m.StringFixed())
		})
	}

	t.Run("should reject blank input", func(t *testing.T) {
		_, err := kernel.ParseMoney("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unparsable input", func(t *testing.T) {
		_, err := kernel.ParseMoney("cheap")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative input", func(t *testing.T) {
		_, err := kernel.ParseMoney("-0.10")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseMoney_Bounds(t *testing.T) {
	t.Run("should reject exponent notation", func(t *testing.T) {
		for _, input := range []string{"1e3", "1E3", "1e5000000", "5e-5000000"} {
			_, err := kernel.ParseMoney(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})

	t.Run("should round to two places", func(t *testing.T) {
		m, err := kernel.ParseMoney("3.505")

		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.RequireFromString("3.51")))
		assert.Equal(t, "$7.02", m.Multiply(2).String())
	})

	t.Run("should accept the maximum amount", func(t *testing.T) {
		m, err := kernel.ParseMoney("1000000.00")

		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(kernel.MaxAmount))
	})

	t.Run("should reject amounts above the maximum", func(t *testing.T) {
		_, err := kernel.ParseMoney("1000000.01")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject long digit strings", func(t *testing.T) {
		_, err := kernel.ParseMoney("1" + strings.Repeat("0", 5000))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewMoney_RejectsHugeExponent(t *testing.T) {
	_, err := kernel.NewMoney(decimal.New(1, 5_000_000))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMoney_Multiply(t *testing.T) {
	t.Run("should multiply exactly", func(t *testing.T) {
		total := kernel.MustParseMoney("3.50").Multiply(2)

		assert.True(t, total.IsEqual(kernel.MustParseMoney("7")))
		assert.Equal(t, "$7.00", total.String())
		require.NoError(t, total.Validate())
	})

	t.Run("should not drift like binary floats", func(t *testing.T) {
		total := kernel.MustParseMoney("0.10").Multiply(3)

		assert.Equal(t, "0.30", total.StringFixed())
		assert.True(t, total.Amount().Equal(decimal.RequireFromString("0.3")))
	})
}

func TestMustParseMoney_Panics(t *testing.T) {
	assert.Panics(t, func() { kernel.MustParseMoney("n/a") })
}
