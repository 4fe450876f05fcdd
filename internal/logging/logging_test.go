package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerLineFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: slog.LevelInfo, Output: &buf})

	log.Info("loaded inventory", "count", 3)
	log.Warn("item not in inventory", "item", "orange")
	log.Error("invalid item name")

	assert.Equal(t,
		"INFO: loaded inventory count=3\n"+
			"WARNING: item not in inventory item=orange\n"+
			"ERROR: invalid item name\n",
		buf.String())
}

func TestHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: slog.LevelWarn, Output: &buf})

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")

	assert.Equal(t, "WARNING: shown\n", buf.String())
}

func TestHandlerWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: slog.LevelDebug, Output: &buf})

	log.With("op", "add").WithGroup("item").Info("applied", "name", "apple")

	assert.Equal(t, "INFO: applied op=add item.name=apple\n", buf.String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelInfo, cfg.Level)
	assert.NotNil(t, cfg.Output)
}
