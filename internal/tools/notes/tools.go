// Package notes provides the add-note tool. Notes double as the server's
// resources, so every write also re-announces the resource list.
package notes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alucardeht/braze-mcp/internal/store"
	"github.com/alucardeht/braze-mcp/internal/tools"
)

func GetTools(st *store.Store) []tools.Tool {
	return []tools.Tool{
		NewAddNoteTool(st),
	}
}

type AddNoteTool struct {
	store *store.Store
}

func NewAddNoteTool(st *store.Store) *AddNoteTool {
	return &AddNoteTool{store: st}
}

func (t *AddNoteTool) Name() string {
	return "add-note"
}

func (t *AddNoteTool) Description() string {
	return "Add a new note"
}

func (t *AddNoteTool) Annotations() map[string]bool {
	return tools.SafeWriteAnnotations()
}

func (t *AddNoteTool) RequiresAuth() bool {
	return false
}

func (t *AddNoteTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"content": {"type": "string"}
		},
		"required": ["name", "content"]
	}`)
}

func (t *AddNoteTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	name := args.String("name")
	content := args.String("content")

	if err := t.store.AddNote(name, content); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added note '%s' with content: %s", name, content), nil
}
