package http

import (
	"fmt"
	"strings"

	"canteen/internal/core/application/usecases/queries"
)

// RenderReceipt prints the order slip handed to the customer.
func RenderReceipt(r queries.GetReceiptQueryResponse) string {
	var b strings.Builder

	b.WriteString("--- Canteen Order Slip ---\n")
	fmt.Fprintf(&b, "Token Number: %s\n", r.Token)
	fmt.Fprintf(&b, "Item Name: %s\n", r.ItemName)
	fmt.Fprintf(&b, "Quantity: %d\n", r.Quantity)
	fmt.Fprintf(&b, "Price per Item: %s\n", r.PricePerItem)
	fmt.Fprintf(&b, "Total: %s\n", r.Total)
	fmt.Fprintf(&b, "Order Time: %s\n", r.OrderTime)
	fmt.Fprintf(&b, "Status: %s\n", r.Status)

	return b.String()
}
