package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "inventory.json")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := tempPath(t)

	s := New(nil)
	require.NoError(t, s.Add("apple", 10))
	require.NoError(t, s.Add("banana", -2))
	require.NoError(t, s.Add("pear", 3))
	require.NoError(t, s.Save(path))

	loaded := New(nil)
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, s.Snapshot(), loaded.Snapshot())
	assert.Equal(t, []string{"apple", "banana", "pear"}, loaded.LowStock(100),
		"document order becomes insertion order")
}

func TestLoadMissingFile(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Add("apple", 1))

	err := s.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len(), "missing file resets the ledger")
}

func TestLoadMalformedJSON(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(nil)
	require.NoError(t, s.Add("apple", 1))

	err := s.Load(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRootNotObject)
	assert.Equal(t, 0, s.Len(), "malformed JSON resets the ledger")
}

func TestLoadRootNotObject(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "array", content: "[]"},
		{name: "scalar", content: "42"},
		{name: "string", content: `"apple"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tempPath(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			s := New(nil)
			require.NoError(t, s.Add("apple", 1))
			before := s.Snapshot()

			err := s.Load(path)
			assert.ErrorIs(t, err, ErrRootNotObject)
			assert.Equal(t, before, s.Snapshot(), "non-object root leaves state untouched")
		})
	}
}

func TestLoadCoercesAndDropsValues(t *testing.T) {
	path := tempPath(t)
	content := `{
  "apple": 10,
  "ghost": "ten",
  "pear": "3",
  "half": 2.9,
  "flag": true,
  "none": null
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := New(nil)
	require.NoError(t, s.Load(path))

	assert.Equal(t, map[string]int64{
		"apple": 10,
		"pear":  3,
		"half":  2,
		"flag":  1,
	}, s.Snapshot())
	assert.Equal(t, []string{"apple", "pear", "half", "flag"}, s.LowStock(100))
}

func TestLoadReplacesWholesale(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"pear": 5}`), 0o644))

	s := New(nil)
	require.NoError(t, s.Add("apple", 10))
	require.NoError(t, s.Load(path))

	assert.Equal(t, map[string]int64{"pear": 5}, s.Snapshot(),
		"load replaces, never merges")
}

func TestSaveFormat(t *testing.T) {
	path := tempPath(t)

	s := New(nil)
	require.NoError(t, s.Add("apple", 10))
	require.NoError(t, s.Add("banana", -2))
	require.NoError(t, s.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"apple\": 10,\n  \"banana\": -2\n}", string(data))
}

func TestSaveEmpty(t *testing.T) {
	path := tempPath(t)

	s := New(nil)
	require.NoError(t, s.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestSaveUnwritablePath(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Add("apple", 1))

	err := s.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "inventory.json"))
	assert.Error(t, err)
}
