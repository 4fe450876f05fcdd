// History command lists journaled mutations.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukaforge/stockroom/internal/journal"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history [item]",
	Short: "List recorded inventory mutations, newest first",
	Long: `History lists the mutations recorded in the journal, newest first,
optionally filtered to a single item.

Example:
  stockroom history
  stockroom history apple --limit 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "maximum number of events (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if !cfg.Journal {
		return fmt.Errorf("journaling is disabled in config")
	}

	item := ""
	if len(args) == 1 {
		item = args[0]
	}

	j, err := journal.Open(journalPath())
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	events, err := j.List(item, flagLimit)
	if err != nil {
		return fmt.Errorf("list journal: %w", err)
	}

	if flagJSON {
		type eventOut struct {
			EventID    string `json:"event_id"`
			RecordedAt string `json:"recorded_at"`
			Op         string `json:"op"`
			Item       string `json:"item"`
			Delta      int64  `json:"delta"`
			Remaining  int64  `json:"remaining"`
		}
		out := make([]eventOut, 0, len(events))
		for _, e := range events {
			out = append(out, eventOut{
				EventID:    e.EventID,
				RecordedAt: e.RecordedAt.Format(time.RFC3339Nano),
				Op:         e.Op,
				Item:       e.Item,
				Delta:      e.Delta,
				Remaining:  e.Remaining,
			})
		}
		data, err := json.Marshal(out)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, e := range events {
		fmt.Printf("%s  %-6s  %s  delta=%d remaining=%d\n",
			e.RecordedAt.Format(time.RFC3339), e.Op, e.Item, e.Delta, e.Remaining)
	}
	return nil
}
