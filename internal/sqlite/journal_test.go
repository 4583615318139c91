package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/hutch/pkg/types"
)

func TestUndo_EmptyJournalIsNoOp(t *testing.T) {
	store := newTestStore(t)

	description, ok, err := store.Undo()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, description)
}

func TestUndo_AddLocationRoundTrip(t *testing.T) {
	store := newTestStore(t)

	before, err := store.Locations()
	require.NoError(t, err)

	_, err = store.AddLocation("Test", 16)
	require.NoError(t, err)

	description, ok, err := store.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "add location Test", description)

	after, err := store.Locations()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUndo_AddItem(t *testing.T) {
	store := newTestStore(t)
	test, _, _ := populate(t, store)

	item, err := store.AddItem(test.LocationID, 4, "Test item", types.SizeSmall)
	require.NoError(t, err)

	description, ok, err := store.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "add item Test item", description)

	items, err := store.Items()
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = store.ItemByID(item.ItemID)
	assert.ErrorIs(t, err, types.ErrItemNotFound)
}

func TestUndo_UpdateRestoresExactRow(t *testing.T) {
	store := newTestStore(t)
	test, _, _ := populate(t, store)

	item, err := store.AddItem(test.LocationID, 4, "Test item", types.SizeSmall)
	require.NoError(t, err)

	// Backdate the row so the update visibly bumps updated_at.
	_, err = store.db.Exec("UPDATE items SET updated_at = ? WHERE item_id = ?",
		"2026-01-02T03:04:05Z", item.ItemID)
	require.NoError(t, err)
	before, err := store.ItemByID(item.ItemID)
	require.NoError(t, err)

	newName := "Renamed item"
	err = store.UpdateItem(item.ItemID, types.ItemPatch{Name: &newName})
	require.NoError(t, err)

	description, ok, err := store.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "update item Test item", description)

	// Every column, updated_at included, is back to its prior value.
	after, err := store.ItemByID(item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUndo_DeleteRestoresItems(t *testing.T) {
	store := newTestStore(t)
	test, _, _ := populate(t, store)

	item, err := store.AddItem(test.LocationID, 4, "Test item", types.SizeMedium)
	require.NoError(t, err)

	err = store.DeleteItems([]types.Item{item}, "delete items matching Test")
	require.NoError(t, err)

	description, ok, err := store.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "delete items matching Test", description)

	restored, err := store.ItemByID(item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, item.ItemID, restored.ItemID)
	assert.Equal(t, "Test item", restored.Name)
	assert.Equal(t, 4, restored.BinNo)
	assert.Equal(t, types.SizeMedium, restored.Size)
}

func TestUndo_IsSequential(t *testing.T) {
	store := newTestStore(t)
	test, _, _ := populate(t, store)

	_, err := store.AddItem(test.LocationID, 1, "first", types.SizeSmall)
	require.NoError(t, err)
	_, err = store.AddItem(test.LocationID, 2, "second", types.SizeSmall)
	require.NoError(t, err)

	// LIFO: the most recent mutation reverses first.
	description, ok, err := store.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "add item second", description)

	description, ok, err = store.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "add item first", description)
}

func TestJournalLen_TracksMutations(t *testing.T) {
	store := newTestStore(t)

	n, err := store.JournalLen()
	require.NoError(t, err)
	assert.Zero(t, n)

	test, _, _ := populate(t, store)
	_, err = store.AddItem(test.LocationID, 1, "Test item", types.SizeSmall)
	require.NoError(t, err)

	n, err = store.JournalLen()
	require.NoError(t, err)
	assert.Equal(t, 4, n) // three locations + one item

	_, _, err = store.Undo()
	require.NoError(t, err)

	n, err = store.JournalLen()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
