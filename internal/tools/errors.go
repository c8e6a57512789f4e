package tools

import "fmt"

// ValidationError reports a missing, empty or out-of-range argument.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid argument '%s': %s", e.Field, e.Reason)
}

// NotConfiguredError is returned when a gated tool runs before
// configure-braze has supplied an API token.
type NotConfiguredError struct{}

func (e *NotConfiguredError) Error() string {
	return "Braze API is not configured. Please use configure-braze tool first."
}

// UnknownToolError reports a tool name absent from the registry.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}
