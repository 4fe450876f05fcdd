// Package inventory implements the stockroom ledger: a mapping from item
// name to signed quantity with add, remove, query, low-stock filtering,
// JSON persistence, and report output.
//
// A Store is an explicit value owned by the caller; there is no package
// state. Diagnostics go to an optional slog.Logger, but every outcome is
// also carried by the return values, so callers never need to inspect
// logs to distinguish failure modes.
package inventory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Store operation errors.
var (
	// ErrInvalidItem reports an item name that is empty or whitespace-only.
	ErrInvalidItem = errors.New("invalid item name")

	// ErrItemNotFound reports a remove against an item not in the ledger.
	ErrItemNotFound = errors.New("item not found")
)

// Store holds the item to quantity mapping. Items keep their insertion
// order; the low-stock filter and Save observe it.
//
// A Store is not safe for concurrent use.
type Store struct {
	items map[string]int64
	order []string
	log   *slog.Logger
}

// New creates an empty Store. A nil logger discards diagnostics.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		items: make(map[string]int64),
		log:   logger,
	}
}

// validItem reports whether name is non-empty after trimming whitespace.
// Names are stored as given; trimming is only a validity check.
func validItem(name string) bool {
	return strings.TrimSpace(name) != ""
}

// Add credits qty of item to the ledger. Negative quantities are
// permitted and may leave the item with a negative resting total; unlike
// Remove, Add never deletes an entry.
func (s *Store) Add(item string, qty int64) error {
	if !validItem(item) {
		s.log.Error("add: invalid item name", "item", item)
		return fmt.Errorf("add %q: %w", item, ErrInvalidItem)
	}

	if _, ok := s.items[item]; !ok {
		s.order = append(s.order, item)
	}
	s.items[item] += qty
	s.log.Info("added to inventory",
		"at", time.Now().Format(time.RFC3339), "delta", qty, "item", item)
	return nil
}

// Remove debits qty of item from the ledger. When the remaining quantity
// drops to zero or below the entry is deleted entirely. Removing an item
// not in the ledger returns ErrItemNotFound and changes nothing.
func (s *Store) Remove(item string, qty int64) error {
	if !validItem(item) {
		s.log.Error("remove: invalid item name", "item", item)
		return fmt.Errorf("remove %q: %w", item, ErrInvalidItem)
	}

	current, ok := s.items[item]
	if !ok {
		s.log.Warn("remove: item not in inventory", "item", item)
		return fmt.Errorf("remove %q: %w", item, ErrItemNotFound)
	}

	remaining := current - qty
	if remaining <= 0 {
		delete(s.items, item)
		s.dropOrder(item)
		s.log.Info("removed from inventory", "item", item)
	} else {
		s.items[item] = remaining
		s.log.Info("reduced inventory", "item", item, "delta", qty, "remaining", remaining)
	}
	return nil
}

// Query returns the current quantity of item. An absent item yields 0
// with a nil error; an invalid name yields 0 with ErrInvalidItem, so the
// two zero cases stay distinguishable to the caller.
func (s *Store) Query(item string) (int64, error) {
	if !validItem(item) {
		s.log.Error("query: invalid item name", "item", item)
		return 0, fmt.Errorf("query %q: %w", item, ErrInvalidItem)
	}
	return s.items[item], nil
}

// LowStock returns the names of items whose quantity is strictly below
// threshold, in insertion order. The result is a snapshot; later
// mutations do not affect it.
func (s *Store) LowStock(threshold int64) []string {
	names := make([]string, 0, len(s.order))
	for _, item := range s.order {
		if s.items[item] < threshold {
			names = append(names, item)
		}
	}
	return names
}

// Len returns the number of items in the ledger.
func (s *Store) Len() int {
	return len(s.items)
}

// Snapshot returns a copy of the item to quantity mapping.
func (s *Store) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(s.items))
	for k, v := range s.items {
		out[k] = v
	}
	return out
}

// Report writes a plain-text listing to w: a header line followed by one
// "<name> -> <quantity>" line per item, sorted by name.
func (s *Store) Report(w io.Writer) {
	fmt.Fprintln(w, "Items Report")
	names := make([]string, 0, len(s.items))
	for name := range s.items {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s -> %d\n", name, s.items[name])
	}
}

// reset replaces the ledger with an empty mapping.
func (s *Store) reset() {
	s.items = make(map[string]int64)
	s.order = nil
}

// dropOrder removes item from the insertion-order index.
func (s *Store) dropOrder(item string) {
	for i, name := range s.order {
		if name == item {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
