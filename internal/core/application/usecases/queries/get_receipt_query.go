package queries

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrGetReceiptQueryIsNotConstructed = errors.New(
	"GetReceiptQuery must be created via NewGetReceiptQuery constructor",
)

// GetReceiptQuery retrieves the slip details of one order by token.
type GetReceiptQuery struct { //nolint:recvcheck //using for validation
	token kernel.Token

	guard guard.ConstructorGuard
}

// NewGetReceiptQuery creates the query; the token must be positive.
func NewGetReceiptQuery(token kernel.Token) (GetReceiptQuery, error) {
	if err := token.Validate(); err != nil {
		return GetReceiptQuery{}, err
	}

	return GetReceiptQuery{
		token: token,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiptQueryIsNotConstructed)
}

func (q GetReceiptQuery) Token() kernel.Token {
	return q.token
}

// GetReceiptQueryResponse holds the printed fields of an order slip.
// Money values are pre-formatted with a dollar sign and two decimals and the
// time uses the fixed "YYYY-MM-DD HH:MM:SS" layout.
type GetReceiptQueryResponse struct {
	Token        kernel.Token
	ItemName     string
	Quantity     int
	PricePerItem string
	Total        string
	OrderTime    string
	Status       string
}
