package commands

import (
	"errors"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

const (
	// MinQuantity and MaxQuantity bound the quantity a customer may order at once.
	MinQuantity = 1
	MaxQuantity = 100
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's order form submission.
//
// Example:
//
//	price, err := kernel.ParseMoney(form.Price)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewPlaceOrderCommand(form.ItemName, form.Quantity, price)
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
//	fmt.Printf("Order placed - Token #%s", placed.Token())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	itemName  string
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates a form submission.
// The item name is trimmed and must not be empty, quantity must be within
// [MinQuantity, MaxQuantity] and the unit price must be a constructed,
// non-negative Money. All violations are reported together.
func NewPlaceOrderCommand(itemName string, quantity int, unitPrice kernel.Money) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemName(itemName),
		cmd.setQuantity(quantity),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) ItemName() string {
	return c.itemName
}

func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

func (c PlaceOrderCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c *PlaceOrderCommand) setItemName(itemName string) error {
	trimmed := strings.TrimSpace(itemName)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("itemName")
	}

	c.itemName = trimmed
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}

	c.quantity = quantity
	return nil
}

func (c *PlaceOrderCommand) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	c.unitPrice = unitPrice
	return nil
}
