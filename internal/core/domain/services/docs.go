// Package services provides the order ledger, the domain service that owns
// every order placed in the process.
//
// The package includes:
//   - OrderLedger: order storage, token assignment and change notification
//   - TokenSequence: the monotonic token counter injected into the ledger
//   - ListenerFuncs: adapts plain functions to ports.OrderListener
//
// Key business rules:
//   - Tokens are strictly increasing and never reused
//   - Orders are kept in placement order and never removed
//   - Listeners are notified in subscription order
//   - Completing an unknown token is a silent miss reported as false
package services
