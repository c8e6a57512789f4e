// Package auth provides the configure-braze tool, the only tool that is
// allowed to run before credentials are set.
package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alucardeht/braze-mcp/internal/braze"
	"github.com/alucardeht/braze-mcp/internal/tools"
)

func GetTools(cfg *braze.Config) []tools.Tool {
	return []tools.Tool{
		NewConfigureTool(cfg),
	}
}

type ConfigureTool struct {
	cfg *braze.Config
}

func NewConfigureTool(cfg *braze.Config) *ConfigureTool {
	return &ConfigureTool{cfg: cfg}
}

func (t *ConfigureTool) Name() string {
	return "configure-braze"
}

func (t *ConfigureTool) Description() string {
	return "Configure Braze API settings including authentication token"
}

func (t *ConfigureTool) Annotations() map[string]bool {
	return tools.SafeWriteAnnotations()
}

func (t *ConfigureTool) RequiresAuth() bool {
	return false
}

func (t *ConfigureTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"api_token": {
				"type": "string",
				"description": "Braze API token"
			},
			"base_url": {
				"type": "string",
				"description": "Braze API base URL (optional, defaults to US-01 instance)"
			}
		},
		"required": ["api_token"]
	}`)
}

func (t *ConfigureTool) Execute(ctx context.Context, args tools.Arguments) (string, error) {
	if err := t.cfg.Configure(args.String("api_token"), args.String("base_url")); err != nil {
		return "", err
	}
	return fmt.Sprintf("Braze API configured successfully with base URL: %s", t.cfg.BaseURL()), nil
}
