// Package queries contains the read operations behind the admin board and
// the receipt surface. Handlers return plain response structs built from
// ledger snapshots, so callers never hold domain objects.
package queries
