// Get command prints the current quantity of an item.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <item>",
	Short: "Print the current quantity of an item",
	Long: `Get prints the quantity currently held for an item. An item not in
the inventory reports 0.

Example:
  stockroom get apple
  stockroom get apple --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	s := openStore()
	qty, err := s.Query(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.Marshal(map[string]any{"item": args[0], "quantity": qty})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(qty)
	return nil
}
