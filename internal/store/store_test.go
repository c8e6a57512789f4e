package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddNoteRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddNote("meeting", "discuss roadmap"))

	content, err := s.GetNote("meeting")
	require.NoError(t, err)
	assert.Equal(t, "discuss roadmap", content)
}

func TestAddNoteOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddNote("meeting", "v1"))
	require.NoError(t, s.AddNote("meeting", "v2"))

	content, err := s.GetNote("meeting")
	require.NoError(t, err)
	assert.Equal(t, "v2", content)

	notes, err := s.ListNotes()
	require.NoError(t, err)
	require.Len(t, notes, 1)
}

func TestListNotesInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddNote("b", "2"))
	require.NoError(t, s.AddNote("a", "1"))
	require.NoError(t, s.AddNote("c", "3"))
	// Overwriting must not move a note to the end.
	require.NoError(t, s.AddNote("b", "2b"))

	notes, err := s.ListNotes()
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "b", notes[0].Name)
	assert.Equal(t, "2b", notes[0].Content)
	assert.Equal(t, "a", notes[1].Name)
	assert.Equal(t, "c", notes[2].Name)
}

func TestGetNoteMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetNote("nope")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Note not found: nope", err.Error())
}

func TestNotesChangedObserver(t *testing.T) {
	s := newTestStore(t)

	calls := 0
	s.OnNotesChanged(func() { calls++ })

	require.NoError(t, s.AddNote("a", "1"))
	require.NoError(t, s.AddNote("a", "2"))
	assert.Equal(t, 2, calls)
}

func TestCreateCatalogConflict(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateCatalog("products", "our products"))

	err := s.CreateCatalog("products", "different description")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Catalog 'products' already exists", err.Error())

	catalogs, err := s.ListCatalogs()
	require.NoError(t, err)
	require.Len(t, catalogs, 1)
	assert.Equal(t, "our products", catalogs[0].Description)
	assert.False(t, catalogs[0].CreatedAt.IsZero())
}

func TestCreateItemRequiresCatalog(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateCatalogItem("ghost", "p1", "Widget", "", nil)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Catalog 'ghost' does not exist", err.Error())
}

func TestCreateItemDuplicateKeepsFirst(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateCatalog("products", ""))
	require.NoError(t, s.CreateCatalogItem("products", "p1", "Widget", "", nil))

	err := s.CreateCatalogItem("products", "p1", "Gadget", "", nil)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Item 'p1' already exists in catalog 'products'", err.Error())

	items, err := s.ListCatalogItems("products")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
}

func TestCatalogScenario(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateCatalog("products", ""))
	require.NoError(t, s.CreateCatalogItem("products", "p1", "Widget", "", nil))

	items, err := s.ListCatalogItems("products")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "Widget", items[0].Name)
	assert.Empty(t, items[0].Description)
	assert.Empty(t, items[0].Attributes)
}

func TestListItemsInsertionOrderAndAttributes(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateCatalog("products", ""))
	require.NoError(t, s.CreateCatalogItem("products", "p2", "Gadget", "second", map[string]any{"color": "red"}))
	require.NoError(t, s.CreateCatalogItem("products", "p1", "Widget", "first", nil))

	items, err := s.ListCatalogItems("products")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, map[string]any{"color": "red"}, items[0].Attributes)
	assert.Equal(t, "p1", items[1].ID)
	assert.Equal(t, map[string]any{}, items[1].Attributes)
}

func TestListItemsMissingCatalog(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ListCatalogItems("ghost")
	assert.True(t, errors.As(err, new(*NotFoundError)))
}
