package types

import "errors"

// DefaultInventoryFile is the inventory file used when no override is given.
// It is resolved relative to the working directory.
const DefaultInventoryFile = "inventory.json"

// DefaultLowStockThreshold is the threshold used by the low-stock filter
// when the caller does not supply one.
const DefaultLowStockThreshold = 5

// Config holds the settings a stockroom CLI invocation runs with.
type Config struct {
	// InventoryFile is the path of the JSON inventory file.
	InventoryFile string `json:"inventory_file" yaml:"inventory_file"`

	// DataDir is the directory holding derived state (the mutation journal).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Journal enables recording applied mutations to the journal database.
	Journal bool `json:"journal" yaml:"journal"`

	// LowStockThreshold is the default threshold for the low-stock filter.
	LowStockThreshold int64 `json:"low_stock_threshold" yaml:"low_stock_threshold"`
}

// Config validation errors.
var (
	ErrInventoryFileEmpty = errors.New("inventory file must not be empty")
)

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		InventoryFile:     DefaultInventoryFile,
		Journal:           true,
		LowStockThreshold: DefaultLowStockThreshold,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.InventoryFile == "" {
		return ErrInventoryFileEmpty
	}
	return nil
}
