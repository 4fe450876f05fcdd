package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultInventoryFile, cfg.InventoryFile)
	assert.Equal(t, int64(DefaultLowStockThreshold), cfg.LowStockThreshold)
	assert.True(t, cfg.Journal)

	cfg.InventoryFile = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInventoryFileEmpty)
}
