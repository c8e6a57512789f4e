// Package braze holds the API credential state shared by every gated tool.
package braze

import (
	"errors"
	"sync"
)

// DefaultBaseURL points at the US-01 Braze REST instance.
const DefaultBaseURL = "https://rest.iad-01.braze.com"

var ErrMissingToken = errors.New("api token is required")

// Config is the process-wide credential cell. It is written by the
// configure-braze tool (and the credentials file watcher) and read by the
// dispatch auth gate.
type Config struct {
	mu       sync.RWMutex
	apiToken string
	baseURL  string
}

func NewConfig() *Config {
	return &Config{baseURL: DefaultBaseURL}
}

// Configure sets the token and, when non-empty, the base URL. An empty
// token is rejected and leaves the current state untouched.
func (c *Config) Configure(apiToken, baseURL string) error {
	if apiToken == "" {
		return ErrMissingToken
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiToken = apiToken
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return nil
}

// SetBaseURL overrides the base URL without touching the token. Used when
// a config file supplies an endpoint before any credentials exist.
func (c *Config) SetBaseURL(baseURL string) {
	if baseURL == "" {
		return
	}
	c.mu.Lock()
	c.baseURL = baseURL
	c.mu.Unlock()
}

// IsConfigured reports whether an API token has been set.
func (c *Config) IsConfigured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiToken != ""
}

func (c *Config) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

func (c *Config) APIToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiToken
}
