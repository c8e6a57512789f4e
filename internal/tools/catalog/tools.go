// Package catalog provides the Braze catalog tools. Catalogs and their
// items live in the local entity store; a real deployment would push them
// to the Braze catalogs API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alucardeht/braze-mcp/internal/store"
	"github.com/alucardeht/braze-mcp/internal/tools"
)

func GetTools(st *store.Store) []tools.Tool {
	return []tools.Tool{
		NewCreateCatalogTool(st),
		NewListCatalogsTool(st),
		NewCreateItemTool(st),
		NewListItemsTool(st),
	}
}

type CreateCatalogTool struct {
	store *store.Store
}

func NewCreateCatalogTool(st *store.Store) *CreateCatalogTool {
	return &CreateCatalogTool{store: st}
}

func (t *CreateCatalogTool) Name() string {
	return "create-catalog"
}

func (t *CreateCatalogTool) Description() string {
	return "Create a new Braze catalog"
}

func (t *CreateCatalogTool) Annotations() map[string]bool {
	return tools.NonIdempotentWriteAnnotations()
}

func (t *CreateCatalogTool) RequiresAuth() bool {
	return true
}

func (t *CreateCatalogTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"name": {
				"type": "string",
				"description": "Name of the catalog"
			},
			"description": {
				"type": "string",
				"description": "Description of the catalog"
			}
		},
		"required": ["name"]
	}`)
}

func (t *CreateCatalogTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	name := args.String("name")
	description := args.String("description")

	if err := t.store.CreateCatalog(name, description); err != nil {
		return "", err
	}
	return fmt.Sprintf("Created catalog '%s' with description: %s", name, description), nil
}

type ListCatalogsTool struct {
	store *store.Store
}

func NewListCatalogsTool(st *store.Store) *ListCatalogsTool {
	return &ListCatalogsTool{store: st}
}

func (t *ListCatalogsTool) Name() string {
	return "list-catalogs"
}

func (t *ListCatalogsTool) Description() string {
	return "List all Braze catalogs"
}

func (t *ListCatalogsTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ListCatalogsTool) RequiresAuth() bool {
	return true
}

func (t *ListCatalogsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {}
	}`)
}

func (t *ListCatalogsTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	catalogs, err := t.store.ListCatalogs()
	if err != nil {
		return "", err
	}
	if len(catalogs) == 0 {
		return "No catalogs found", nil
	}

	lines := make([]string, len(catalogs))
	for i, c := range catalogs {
		lines[i] = fmt.Sprintf("- %s: %s", c.Name, c.Description)
	}
	return "Available catalogs:\n" + strings.Join(lines, "\n"), nil
}

type CreateItemTool struct {
	store *store.Store
}

func NewCreateItemTool(st *store.Store) *CreateItemTool {
	return &CreateItemTool{store: st}
}

func (t *CreateItemTool) Name() string {
	return "create-catalog-item"
}

func (t *CreateItemTool) Description() string {
	return "Create a new item in a Braze catalog"
}

func (t *CreateItemTool) Annotations() map[string]bool {
	return tools.NonIdempotentWriteAnnotations()
}

func (t *CreateItemTool) RequiresAuth() bool {
	return true
}

func (t *CreateItemTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"catalog_name": {
				"type": "string",
				"description": "Name of the catalog"
			},
			"item_id": {
				"type": "string",
				"description": "Unique identifier for the item"
			},
			"name": {
				"type": "string",
				"description": "Name of the item"
			},
			"description": {
				"type": "string",
				"description": "Description of the item"
			},
			"attributes": {
				"type": "object",
				"description": "Additional attributes for the item"
			}
		},
		"required": ["catalog_name", "item_id", "name"]
	}`)
}

func (t *CreateItemTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	catalogName := args.String("catalog_name")
	itemID := args.String("item_id")

	err := t.store.CreateCatalogItem(
		catalogName,
		itemID,
		args.String("name"),
		args.String("description"),
		args.Object("attributes"),
	)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created item '%s' in catalog '%s'", itemID, catalogName), nil
}

type ListItemsTool struct {
	store *store.Store
}

func NewListItemsTool(st *store.Store) *ListItemsTool {
	return &ListItemsTool{store: st}
}

func (t *ListItemsTool) Name() string {
	return "list-catalog-items"
}

func (t *ListItemsTool) Description() string {
	return "List items in a Braze catalog"
}

func (t *ListItemsTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ListItemsTool) RequiresAuth() bool {
	return true
}

func (t *ListItemsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"catalog_name": {
				"type": "string",
				"description": "Name of the catalog"
			}
		},
		"required": ["catalog_name"]
	}`)
}

func (t *ListItemsTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	catalogName := args.String("catalog_name")

	items, err := t.store.ListCatalogItems(catalogName)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return fmt.Sprintf("No items found in catalog '%s'", catalogName), nil
	}

	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("- %s: %s (%s)", item.ID, item.Name, item.Description)
	}
	return fmt.Sprintf("Items in catalog '%s':\n%s", catalogName, strings.Join(lines, "\n")), nil
}
