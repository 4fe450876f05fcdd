// Root command for the stockroom CLI.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dukaforge/stockroom/internal/logging"
	"github.com/dukaforge/stockroom/internal/paths"
	"github.com/dukaforge/stockroom/pkg/types"
)

// Version is the stockroom release version.
const Version = "0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagFile      string
	flagJSON      bool
)

// cfg holds the effective configuration, resolved by PersistentPreRunE
// from flags, config.yaml, and defaults.
var cfg types.Config

// log is the process-wide logger, created by PersistentPreRunE.
var log *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "stockroom",
	Short: "Stockroom is a JSON-file inventory ledger",
	Long: `Stockroom keeps an inventory of named items and signed quantities
in a JSON file, with add, remove, query, low-stock, and report commands.
Applied mutations are recorded in a SQLite journal.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logging.New(logging.DefaultConfig())
		return resolveConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.stockroom)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.stockroom-db)")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "inventory file (default: inventory.json)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(lowCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(demoCmd)
}

// resolveConfig loads config.yaml and merges it with flags into cfg.
func resolveConfig() error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	cfg = types.DefaultConfig()
	cfg.InventoryFile = v.GetString(cfgKeyInventoryFile)
	cfg.Journal = v.GetBool(cfgKeyJournal)
	cfg.LowStockThreshold = v.GetInt64(cfgKeyThreshold)
	if flagFile != "" {
		cfg.InventoryFile = flagFile
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	cfg.DataDir = dataDir

	return cfg.Validate()
}
