// Package kernel provides the value objects shared by the canteen domain model.
//
// The package includes:
//   - Token: the sequential, positive order number handed to customers
//   - Money: a non-negative decimal amount with exact multiplication
//   - UUID: an identifier for records exported outside the process
//
// Money and UUID reject their zero values in Validate so that a value which
// bypassed its constructor is caught before it reaches an order.
package kernel
