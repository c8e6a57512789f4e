package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alucardeht/braze-mcp/internal/store"
	"github.com/alucardeht/braze-mcp/internal/tools"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndListCatalogs(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	listTool := NewListCatalogsTool(st)
	out, err := listTool.Execute(ctx, tools.Arguments{})
	require.NoError(t, err)
	assert.Equal(t, "No catalogs found", out)

	out, err = NewCreateCatalogTool(st).Execute(ctx, tools.Arguments{
		"name":        "products",
		"description": "Product catalog",
	})
	require.NoError(t, err)
	assert.Equal(t, "Created catalog 'products' with description: Product catalog", out)

	out, err = listTool.Execute(ctx, tools.Arguments{})
	require.NoError(t, err)
	assert.Equal(t, "Available catalogs:\n- products: Product catalog", out)
}

func TestCreateAndListItems(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.CreateCatalog("products", ""))

	listTool := NewListItemsTool(st)
	out, err := listTool.Execute(ctx, tools.Arguments{"catalog_name": "products"})
	require.NoError(t, err)
	assert.Equal(t, "No items found in catalog 'products'", out)

	out, err = NewCreateItemTool(st).Execute(ctx, tools.Arguments{
		"catalog_name": "products",
		"item_id":      "p1",
		"name":         "Widget",
		"description":  "A widget",
	})
	require.NoError(t, err)
	assert.Equal(t, "Created item 'p1' in catalog 'products'", out)

	out, err = listTool.Execute(ctx, tools.Arguments{"catalog_name": "products"})
	require.NoError(t, err)
	assert.Equal(t, "Items in catalog 'products':\n- p1: Widget (A widget)", out)
}

func TestItemErrorsPassThrough(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := NewCreateItemTool(st).Execute(ctx, tools.Arguments{
		"catalog_name": "ghost",
		"item_id":      "p1",
		"name":         "Widget",
	})
	var notFound *store.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = NewListItemsTool(st).Execute(ctx, tools.Arguments{"catalog_name": "ghost"})
	assert.ErrorAs(t, err, &notFound)
}

func TestCatalogToolsAreGated(t *testing.T) {
	for _, tool := range GetTools(newTestStore(t)) {
		assert.True(t, tool.RequiresAuth(), tool.Name())
	}
}
