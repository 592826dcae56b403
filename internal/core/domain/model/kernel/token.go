package kernel

import (
	"fmt"
	"math"
	"strconv"

	"canteen/internal/pkg/errs"
)

// Token is the sequential number handed to a customer when an order is placed.
// It is the external lookup key of an order: the admin board completes orders
// by token and the receipt surface renders the slip for a token.
//
// Tokens are assigned by the order ledger from a TokenSequence and are never
// reused within one ledger. Valid tokens are strictly positive.
//
// Example:
//
//	token, err := kernel.TokenFromString("12")
//	if err != nil {
//	    // not a positive integer
//	}
//	fmt.Printf("Token #%s", token)
type Token int64

const (
	// MinToken is the smallest valid token value.
	MinToken Token = 1

	// MaxTokenStart is the largest configurable first token. It leaves
	// room for more tokens than a process can ever hand out.
	MaxTokenStart Token = math.MaxInt64 / 2
)

// Validate checks that the token is positive.
//
// Returns:
//   - nil if the token is at least MinToken
//   - ValueIsOutOfRangeError otherwise
func (t Token) Validate() error {
	if t < MinToken {
		return errs.NewValueIsOutOfRangeError("token", int64(t), int64(MinToken), int64(math.MaxInt64))
	}
	return nil
}

// String returns the decimal representation of the token.
func (t Token) String() string {
	return strconv.FormatInt(int64(t), 10)
}

// TokenFromString parses a decimal token and validates it.
//
// Example:
//
//	token, err := kernel.TokenFromString(c.Param("token"))
func TokenFromString(s string) (Token, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("token", fmt.Errorf("%q is not an integer", s))
	}

	token := Token(v)
	if err = token.Validate(); err != nil {
		return 0, err
	}
	return token, nil
}
