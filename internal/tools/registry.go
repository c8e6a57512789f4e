// Package tools defines the tool contract and the registry that dispatches
// validated calls to handlers.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Tool is one named operation exposed over tools/list and tools/call.
// Schema returns the JSON-Schema input contract; the registry compiles it
// once at registration and validates arguments before Execute runs, so
// Execute only ever sees arguments that satisfy the schema.
type Tool interface {
	Name() string
	Description() string
	Schema() json.RawMessage
	Annotations() map[string]bool

	// RequiresAuth marks the tool as gated behind configure-braze.
	RequiresAuth() bool

	Execute(ctx context.Context, args Arguments) (string, error)
}

// Arguments is a validated argument map with defaults applied.
type Arguments map[string]any

// String returns the named argument as a string, or "" when absent.
func (a Arguments) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// Int returns the named argument as an int, or def when absent.
func (a Arguments) Int(key string, def int) int {
	if v, ok := a[key].(int); ok {
		return v
	}
	return def
}

// Object returns the named argument as a map, or nil when absent.
func (a Arguments) Object(key string) map[string]any {
	m, _ := a[key].(map[string]any)
	return m
}

// Has reports whether the argument was supplied (or defaulted).
func (a Arguments) Has(key string) bool {
	_, ok := a[key]
	return ok
}

type entry struct {
	tool   Tool
	schema *inputSchema
}

// Registry holds the fixed tool catalog in registration order and applies
// the cross-cutting auth gate on dispatch.
type Registry struct {
	mu         sync.RWMutex
	entries    map[string]*entry
	order      []string
	configured func() bool
}

// NewRegistry creates an empty registry. configured is consulted before
// every gated dispatch; a nil func means nothing is ever gated.
func NewRegistry(configured func() bool) *Registry {
	return &Registry{
		entries:    make(map[string]*entry),
		configured: configured,
	}
}

func (r *Registry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("tool '%s' already registered", name)
	}

	schema, err := compileSchema(tool.Schema())
	if err != nil {
		return fmt.Errorf("tool '%s': %w", name, err)
	}

	r.entries[name] = &entry{tool: tool, schema: schema}
	r.order = append(r.order, name)
	return nil
}

// List returns the tools in registration order.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.entries[name].tool)
	}
	return result
}

func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.tool, true
}

// Dispatch routes one call: registry lookup, auth gate, argument
// validation, handler invocation. Validation happens strictly before the
// handler runs, so a failed call never mutates state.
func (r *Registry) Dispatch(ctx context.Context, name string, rawArgs json.RawMessage) (string, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	configured := r.configured
	r.mu.RUnlock()

	if !ok {
		return "", &UnknownToolError{Name: name}
	}

	if e.tool.RequiresAuth() && configured != nil && !configured() {
		return "", &NotConfiguredError{}
	}

	args := map[string]any{}
	if len(rawArgs) > 0 {
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return "", &ValidationError{Reason: "arguments must be a JSON object"}
		}
	}

	validated, err := e.schema.Validate(args)
	if err != nil {
		return "", err
	}

	return e.tool.Execute(ctx, validated)
}
