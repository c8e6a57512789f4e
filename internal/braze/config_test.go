package braze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.False(t, cfg.IsConfigured())
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL())
	assert.Empty(t, cfg.APIToken())
}

func TestConfigureRejectsEmptyToken(t *testing.T) {
	cfg := NewConfig()

	err := cfg.Configure("", "https://rest.fra-01.braze.eu")
	require.ErrorIs(t, err, ErrMissingToken)
	assert.False(t, cfg.IsConfigured())
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL())
}

func TestConfigureSetsTokenAndURL(t *testing.T) {
	cfg := NewConfig()

	require.NoError(t, cfg.Configure("token123", "https://rest.fra-01.braze.eu"))
	assert.True(t, cfg.IsConfigured())
	assert.Equal(t, "token123", cfg.APIToken())
	assert.Equal(t, "https://rest.fra-01.braze.eu", cfg.BaseURL())
}

func TestConfigureKeepsBaseURLWhenOmitted(t *testing.T) {
	cfg := NewConfig()

	require.NoError(t, cfg.Configure("token123", ""))
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL())
}

func TestSetBaseURL(t *testing.T) {
	cfg := NewConfig()

	cfg.SetBaseURL("https://rest.iad-02.braze.com")
	assert.Equal(t, "https://rest.iad-02.braze.com", cfg.BaseURL())
	assert.False(t, cfg.IsConfigured())

	cfg.SetBaseURL("")
	assert.Equal(t, "https://rest.iad-02.braze.com", cfg.BaseURL())
}
