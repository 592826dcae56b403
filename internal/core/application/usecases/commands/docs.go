// Package commands contains the operations that change the order ledger.
// Commands validate customer and admin input in their constructors, the way
// the order form did before an order reached the ledger; handlers then call
// the ledger, which trusts what it is given.
package commands
