package protocol

import "encoding/json"

// Tool is the descriptor returned by tools/list.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
	Annotations map[string]bool `json:"annotations,omitempty"`
}

// TextContent is the single content block shape this server emits.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextContent wraps text in a "text" content block.
func NewTextContent(text string) TextContent {
	return TextContent{Type: "text", Text: text}
}

// Resource describes one entry of resources/list.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceContents is one entry of a resources/read result.
type ResourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text"`
}

// Prompt describes one entry of prompts/list.
type Prompt struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Arguments   []PromptArgument `json:"arguments,omitempty"`
}

type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

type PromptMessage struct {
	Role    string      `json:"role"`
	Content TextContent `json:"content"`
}

type GetPromptResult struct {
	Description string          `json:"description,omitempty"`
	Messages    []PromptMessage `json:"messages"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    Capabilities `json:"capabilities"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
}

// Capabilities advertises the server feature set. Resources carry a
// listChanged flag because add-note mutates the resource list at runtime.
type Capabilities struct {
	Tools     map[string]any      `json:"tools"`
	Resources ResourcesCapability `json:"resources"`
	Prompts   map[string]any      `json:"prompts"`
}

type ResourcesCapability struct {
	ListChanged bool `json:"listChanged"`
}

type CallToolResult struct {
	Content []TextContent `json:"content"`
}

type ListToolsResult struct {
	Tools []Tool `json:"tools"`
}

type ListResourcesResult struct {
	Resources []Resource `json:"resources"`
}

type ReadResourceResult struct {
	Contents []ResourceContents `json:"contents"`
}

type ListPromptsResult struct {
	Prompts []Prompt `json:"prompts"`
}
