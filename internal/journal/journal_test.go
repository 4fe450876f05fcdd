package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "data", DefaultFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestRecordAndList(t *testing.T) {
	j := openTemp(t)

	require.NoError(t, j.Record(OpAdd, "apple", 10, 10))
	require.NoError(t, j.Record(OpRemove, "apple", 3, 7))
	require.NoError(t, j.Record(OpAdd, "pear", 3, 3))

	events, err := j.List("", 0)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Newest first: UUIDv7 ids sort in creation order.
	assert.Equal(t, "pear", events[0].Item)
	assert.Equal(t, OpRemove, events[1].Op)
	assert.Equal(t, int64(7), events[1].Remaining)
	assert.Equal(t, OpAdd, events[2].Op)
	assert.Equal(t, int64(10), events[2].Delta)
	for _, e := range events {
		assert.NotEmpty(t, e.EventID)
		assert.False(t, e.RecordedAt.IsZero())
	}
}

func TestListFilterAndLimit(t *testing.T) {
	j := openTemp(t)

	require.NoError(t, j.Record(OpAdd, "apple", 1, 1))
	require.NoError(t, j.Record(OpAdd, "banana", 2, 2))
	require.NoError(t, j.Record(OpAdd, "apple", 3, 4))

	apples, err := j.List("apple", 0)
	require.NoError(t, err)
	require.Len(t, apples, 2)
	assert.Equal(t, int64(3), apples[0].Delta)

	one, err := j.List("", 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "apple", one[0].Item)
}

func TestListEmpty(t *testing.T) {
	j := openTemp(t)

	events, err := j.List("", 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestOpenReusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	j, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j.Record(OpAdd, "apple", 1, 1))
	require.NoError(t, j.Close())

	j2, err := Open(path)
	require.NoError(t, err)
	defer j2.Close()

	events, err := j2.List("", 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
