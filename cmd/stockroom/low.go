// Low command lists items below a threshold.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/stockroom/pkg/types"
)

var flagThreshold string

var lowCmd = &cobra.Command{
	Use:   "low",
	Short: "List items whose quantity is below a threshold",
	Long: `Low lists the items whose quantity is strictly below the threshold,
in the order they entered the inventory.

The threshold defaults to low_stock_threshold from config.yaml (5 unless
overridden).

Example:
  stockroom low
  stockroom low --threshold 10`,
	Args: cobra.NoArgs,
	RunE: runLow,
}

func init() {
	lowCmd.Flags().StringVar(&flagThreshold, "threshold", "", "low-stock threshold (default: from config)")
}

func runLow(cmd *cobra.Command, args []string) error {
	threshold := cfg.LowStockThreshold
	if flagThreshold != "" {
		n, err := types.ParseQuantity(flagThreshold)
		if err != nil {
			log.Error("low: threshold must be an integer", "value", flagThreshold)
			return err
		}
		threshold = n
	}

	s := openStore()
	items := s.LowStock(threshold)

	if flagJSON {
		out, err := json.Marshal(items)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	for _, item := range items {
		fmt.Println(item)
	}
	return nil
}
