// Package registry wires the full tool catalog into a dispatch registry.
package registry

import (
	"github.com/alucardeht/braze-mcp/internal/braze"
	"github.com/alucardeht/braze-mcp/internal/store"
	"github.com/alucardeht/braze-mcp/internal/tools"
	"github.com/alucardeht/braze-mcp/internal/tools/auth"
	"github.com/alucardeht/braze-mcp/internal/tools/catalog"
	"github.com/alucardeht/braze-mcp/internal/tools/email"
	"github.com/alucardeht/braze-mcp/internal/tools/notes"
	"github.com/alucardeht/braze-mcp/internal/tools/segments"
)

// New builds the registry with every tool registered in catalog order.
// The gate closes over the Braze credential state.
func New(brazeCfg *braze.Config, st *store.Store) (*tools.Registry, error) {
	registry := tools.NewRegistry(brazeCfg.IsConfigured)

	groups := [][]tools.Tool{
		auth.GetTools(brazeCfg),
		notes.GetTools(st),
		catalog.GetTools(st),
		email.GetTools(),
		segments.GetTools(),
	}
	for _, group := range groups {
		for _, t := range group {
			if err := registry.Register(t); err != nil {
				return nil, err
			}
		}
	}
	return registry, nil
}
