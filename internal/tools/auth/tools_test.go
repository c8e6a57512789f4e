package auth

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alucardeht/braze-mcp/internal/braze"
	"github.com/alucardeht/braze-mcp/internal/tools"
)

func TestConfigureTool(t *testing.T) {
	cfg := braze.NewConfig()
	tool := NewConfigureTool(cfg)

	assert.Equal(t, "configure-braze", tool.Name())
	assert.False(t, tool.RequiresAuth())

	out, err := tool.Execute(context.Background(), tools.Arguments{
		"api_token": "token123",
		"base_url":  braze.DefaultBaseURL,
	})
	require.NoError(t, err)
	assert.Equal(t, "Braze API configured successfully with base URL: https://rest.iad-01.braze.com", out)
	assert.True(t, cfg.IsConfigured())
}

func TestConfigureToolCustomURL(t *testing.T) {
	cfg := braze.NewConfig()

	_, err := NewConfigureTool(cfg).Execute(context.Background(), tools.Arguments{
		"api_token": "token123",
		"base_url":  "https://rest.fra-01.braze.eu",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://rest.fra-01.braze.eu", cfg.BaseURL())
}

// Reconfiguring with only a token must keep a previously set base URL; the
// schema carries no server-side default that could clobber it on dispatch.
func TestReconfigureKeepsCustomBaseURL(t *testing.T) {
	cfg := braze.NewConfig()
	ctx := context.Background()

	reg := tools.NewRegistry(cfg.IsConfigured)
	require.NoError(t, reg.Register(NewConfigureTool(cfg)))

	_, err := reg.Dispatch(ctx, "configure-braze", json.RawMessage(
		`{"api_token": "token123", "base_url": "https://rest.fra-01.braze.eu"}`))
	require.NoError(t, err)
	require.Equal(t, "https://rest.fra-01.braze.eu", cfg.BaseURL())

	out, err := reg.Dispatch(ctx, "configure-braze", json.RawMessage(`{"api_token": "token456"}`))
	require.NoError(t, err)
	assert.Equal(t, "Braze API configured successfully with base URL: https://rest.fra-01.braze.eu", out)
	assert.Equal(t, "https://rest.fra-01.braze.eu", cfg.BaseURL())
	assert.Equal(t, "token456", cfg.APIToken())
}
