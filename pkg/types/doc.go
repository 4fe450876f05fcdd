// Package types defines the stockroom configuration and the quantity
// coercion rules shared by the CLI, the inventory store, and the journal.
package types
