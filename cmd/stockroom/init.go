// Init command creates the configuration, inventory file, and journal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/stockroom/internal/journal"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize stockroom in the current directory",
	Long: `Init writes a default config.yaml, creates an empty inventory file
if none exists, and initializes the journal database.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Config dir and default config.yaml were created while resolving
	// configuration; only the inventory file and journal remain.
	if _, err := os.Stat(cfg.InventoryFile); os.IsNotExist(err) {
		if err := os.WriteFile(cfg.InventoryFile, []byte("{}"), 0o644); err != nil {
			return fmt.Errorf("create inventory file: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("stat inventory file: %w", err)
	}

	if cfg.Journal {
		j, err := journal.Open(journalPath())
		if err != nil {
			return fmt.Errorf("init journal: %w", err)
		}
		if err := j.Close(); err != nil {
			return fmt.Errorf("close journal: %w", err)
		}
	}

	fmt.Println("Stockroom initialized")
	return nil
}
