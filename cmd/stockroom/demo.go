// Demo command runs a fixed demonstration sequence against a fresh
// store, exercising the validation and logging paths end to end.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/stockroom/internal/logging"
	"github.com/dukaforge/stockroom/pkg/inventory"
	"github.com/dukaforge/stockroom/pkg/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the demonstration sequence",
	Long: `Demo runs a fixed sequence of inventory operations against
inventory.json in the current directory: valid and invalid adds, removes
of present and absent items, a query, the low-stock list, a save/load
round trip, and the final report.

Invalid inputs inside the sequence are logged and skipped; the demo
always exits 0.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	demoLog := logging.New(&logging.Config{Level: slog.LevelInfo, Output: os.Stderr})
	s := inventory.New(demoLog)

	demoAdd(s, demoLog, "apple", "10")
	demoAdd(s, demoLog, "banana", "-2") // net-negative total is permitted
	demoAdd(s, demoLog, "pear", "3")
	demoAdd(s, demoLog, "   ", "ten") // rejected, no state change

	_ = s.Remove("apple", 3)
	_ = s.Remove("orange", 1) // not present, logged as a warning

	qty, _ := s.Query("apple")
	fmt.Printf("Apple stock: %d\n", qty)
	fmt.Printf("Low items: %v\n", s.LowStock(types.DefaultLowStockThreshold))

	_ = s.Save(types.DefaultInventoryFile)
	_ = s.Load(types.DefaultInventoryFile)
	s.Report(os.Stdout)

	demoLog.Info("demo: finished sample run")
	return nil
}

// demoAdd parses the quantity like an untyped caller would and adds it.
// Both a bad name and a bad quantity leave the store unchanged.
func demoAdd(s *inventory.Store, demoLog *slog.Logger, item, qty string) {
	n, err := types.ParseQuantity(qty)
	if err != nil {
		demoLog.Error("add: quantity must be an integer", "item", item, "value", qty)
		return
	}
	_ = s.Add(item, n)
}
