package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand is the admin's request to mark an order as served.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	token kernel.Token

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates the command; the token must be positive.
func NewCompleteOrderCommand(token kernel.Token) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setToken(token); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) Token() kernel.Token {
	return c.token
}

func (c *CompleteOrderCommand) setToken(token kernel.Token) error {
	if err := token.Validate(); err != nil {
		return err
	}

	c.token = token
	return nil
}
