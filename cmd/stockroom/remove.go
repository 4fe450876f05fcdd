// Remove command debits quantity from an item.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/stockroom/internal/journal"
	"github.com/dukaforge/stockroom/pkg/types"
)

var removeCmd = &cobra.Command{
	Use:   "remove <item> <quantity>",
	Short: "Remove quantity of an item from the inventory",
	Long: `Remove debits the given quantity from an item. When the remaining
quantity drops to zero or below, the item is deleted from the inventory.

Example:
  stockroom remove apple 3`,
	Args: cobra.ExactArgs(2),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	item := args[0]
	qty, err := types.ParseQuantity(args[1])
	if err != nil {
		log.Error("remove: quantity must be an integer", "value", args[1])
		return err
	}

	s := openStore()
	if err := s.Remove(item, qty); err != nil {
		return err
	}
	if err := saveStore(s); err != nil {
		return err
	}

	// A kept entry always has a positive total, so zero means deleted.
	remaining, _ := s.Query(item)
	recordEvent(journal.OpRemove, item, qty, remaining)

	if flagJSON {
		out, err := json.Marshal(map[string]any{"item": item, "delta": qty, "quantity": remaining})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	if remaining == 0 {
		fmt.Printf("Removed %s from inventory\n", item)
	} else {
		fmt.Printf("Removed %d of %s (remaining %d)\n", qty, item, remaining)
	}
	return nil
}
