package kernel

import (
	"fmt"
	"strings"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// MoneyScale is the number of decimal places a Money keeps.
	MoneyScale = 2

	// maxExponent bounds the decimal exponent accepted before rounding.
	maxExponent = 18
)

// MaxAmount is the largest amount a single Money may hold.
var MaxAmount = decimal.NewFromInt(1_000_000)

// ErrMoneyIsNotConstructed is returned when a zero-value Money is validated.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or ParseMoney constructors")

// Money is a non-negative amount of the canteen's single currency.
// It wraps github.com/shopspring/decimal so prices multiply without
// floating point drift: 2 x 3.50 is exactly 7.00.
//
// The zero value of Money is not constructed and fails Validate. A
// constructed Money may still hold zero (a free item).
//
// Example:
//
//	price, err := kernel.ParseMoney("3.50")
//	if err != nil {
//	    // unparsable or negative
//	}
//	total := price.Multiply(2)
//	fmt.Println(total) // $7.00
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates Money from a decimal amount rounded to MoneyScale places.
//
// Returns:
//   - Money: the constructed value
//   - error: ValueIsInvalidError if amount is negative or its exponent is
//     out of range, ValueIsOutOfRangeError if it exceeds MaxAmount
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}
	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}
	return m, nil
}

// ParseMoney parses customer input such as "3.5", "3.50" or "$3.50".
// Surrounding whitespace and a leading dollar sign are ignored. Scientific
// notation ("1e3") is rejected and the amount is rounded to two places.
//
// Returns:
//   - Money: the parsed amount
//   - error: ValueIsRequiredError for blank input, ValueIsInvalidError for
//     unparsable, exponent or negative input, ValueIsOutOfRangeError above MaxAmount
func ParseMoney(s string) (Money, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "$")
	if raw == "" {
		return Money{}, errs.NewValueIsRequiredError("unitPrice")
	}
	if strings.ContainsAny(raw, "eE") {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%q uses an exponent", s))
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%q is not a number", s))
	}
	return NewMoney(amount)
}

// MustParseMoney is ParseMoney for literals known to be valid. It panics on error.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate reports whether the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Multiply returns the amount multiplied by a quantity.
// The result keeps the receiver's constructed state.
func (m Money) Multiply(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  m.guard,
	}
}

// IsEqual compares amounts numerically, so 7 equals 7.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// StringFixed returns the amount rounded to two places without a currency sign.
func (m Money) StringFixed() string {
	return m.amount.StringFixed(2)
}

// String formats the amount as on the printed slip, e.g. "$7.00".
func (m Money) String() string {
	return "$" + m.StringFixed()
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	// checked first: rescaling a huge exponent is itself expensive
	if exp := amount.Exponent(); exp > maxExponent || exp < -maxExponent {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("exponent %d is out of range", exp))
	}
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", amount.String()))
	}

	rounded := amount.Round(MoneyScale)
	if rounded.GreaterThan(MaxAmount) {
		return errs.NewValueIsOutOfRangeError("unitPrice", rounded.String(), "0", MaxAmount.String())
	}

	m.amount = rounded
	return nil
}
