// Report command prints the full inventory listing.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the full inventory report",
	Long: `Report prints a header line followed by one "<name> -> <quantity>"
line per item, sorted by name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		s.Report(os.Stdout)
		return nil
	},
}
