// Add command credits quantity to an item.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/stockroom/internal/journal"
	"github.com/dukaforge/stockroom/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add <item> <quantity>",
	Short: "Add quantity of an item to the inventory",
	Long: `Add credits the given quantity to an item, creating it if needed.

Quantities are integers and may be negative; a negative add can leave an
item with a negative total.

Example:
  stockroom add apple 10
  stockroom add banana -- -2`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	item := args[0]
	qty, err := types.ParseQuantity(args[1])
	if err != nil {
		log.Error("add: quantity must be an integer", "value", args[1])
		return err
	}

	s := openStore()
	if err := s.Add(item, qty); err != nil {
		return err
	}
	if err := saveStore(s); err != nil {
		return err
	}

	total, _ := s.Query(item)
	recordEvent(journal.OpAdd, item, qty, total)

	if flagJSON {
		out, err := json.Marshal(map[string]any{"item": item, "delta": qty, "quantity": total})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Printf("Added %d of %s (now %d)\n", qty, item, total)
	return nil
}
