// Shared helpers for stockroom CLI commands.
package main

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/dukaforge/stockroom/internal/journal"
	"github.com/dukaforge/stockroom/pkg/inventory"
)

// openStore creates a Store and loads the configured inventory file.
// A missing file is the documented empty-start path; every other load
// failure is also non-fatal and already logged by the store, so commands
// always get a usable store back.
func openStore() *inventory.Store {
	s := inventory.New(log)
	if err := s.Load(cfg.InventoryFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("continuing with in-memory state", "file", cfg.InventoryFile)
	}
	return s
}

// saveStore persists the store to the configured inventory file.
func saveStore(s *inventory.Store) error {
	return s.Save(cfg.InventoryFile)
}

// journalPath returns the journal database location inside the data dir.
func journalPath() string {
	return filepath.Join(cfg.DataDir, journal.DefaultFileName)
}

// recordEvent appends a mutation to the journal when journaling is
// enabled. Journal failures are logged and swallowed; the inventory file
// is the source of truth and the journal never gates an operation.
func recordEvent(op, item string, delta, remaining int64) {
	if !cfg.Journal {
		return
	}

	j, err := journal.Open(journalPath())
	if err != nil {
		log.Warn("journal unavailable", "error", err)
		return
	}
	defer j.Close()

	if err := j.Record(op, item, delta, remaining); err != nil {
		log.Warn("journal write failed", "error", err)
	}
}
