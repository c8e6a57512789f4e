package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"runtime/debug"
	"strings"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/alucardeht/braze-mcp/internal/logger"
	"github.com/alucardeht/braze-mcp/internal/store"
	"github.com/alucardeht/braze-mcp/internal/tools"
	"github.com/alucardeht/braze-mcp/pkg/protocol"
	"github.com/alucardeht/braze-mcp/pkg/version"
)

var log = logger.ForComponent("mcp")

// Server-specific JSON-RPC error codes, outside the reserved -32700..-32600
// band.
const (
	codeNotFound      = -32001
	codeNotConfigured = -32002
	codeConflict      = -32009
)

const promptSummarizeNotes = "summarize-notes"

// Handler implements jsonrpc2.Handler for one client session. It is
// invoked synchronously from the connection's read loop, so at most one
// request is in flight at a time.
type Handler struct {
	registry   *tools.Registry
	store      *store.Store
	clientInfo ClientInfo
}

func NewHandler(registry *tools.Registry, st *store.Store) *Handler {
	return &Handler{
		registry: registry,
		store:    st,
	}
}

func (h *Handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Notif {
		h.handleNotification(req)
		return
	}

	result, err := h.dispatch(ctx, req)
	if err != nil {
		if replyErr := conn.ReplyWithError(ctx, req.ID, toRPCError(err)); replyErr != nil {
			log.Error("failed to send error reply", "method", req.Method, "error", replyErr)
		}
		return
	}
	if err := conn.Reply(ctx, req.ID, result); err != nil {
		log.Error("failed to send reply", "method", req.Method, "error", err)
	}
}

func (h *Handler) dispatch(ctx context.Context, req *jsonrpc2.Request) (any, error) {
	switch req.Method {
	case "initialize":
		return h.handleInitialize(req)
	case "ping":
		return map[string]any{}, nil
	case "tools/list":
		return h.handleListTools(), nil
	case "tools/call":
		return h.handleCallTool(ctx, req)
	case "resources/list":
		return h.handleListResources()
	case "resources/read":
		return h.handleReadResource(req)
	case "prompts/list":
		return h.handleListPrompts(), nil
	case "prompts/get":
		return h.handleGetPrompt(req)
	default:
		return nil, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeMethodNotFound,
			Message: fmt.Sprintf("Method not found: %s", req.Method),
		}
	}
}

func (h *Handler) handleNotification(req *jsonrpc2.Request) {
	switch req.Method {
	case "notifications/initialized":
		log.Debug("client initialized", "name", h.clientInfo.Name)
	case "notifications/cancelled":
		// No in-flight work to cancel: handlers are synchronous and local.
	default:
		log.Debug("ignoring notification", "method", req.Method)
	}
}

func (h *Handler) handleInitialize(req *jsonrpc2.Request) (any, error) {
	var params initializeParams
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}

	h.clientInfo = ClientInfo{Name: params.ClientInfo.Name, Version: params.ClientInfo.Version}
	log.Info("client connected", "name", h.clientInfo.Name, "version", h.clientInfo.Version)

	return protocol.InitializeResult{
		ProtocolVersion: negotiateProtocolVersion(params.ProtocolVersion),
		Capabilities: protocol.Capabilities{
			Tools:     map[string]any{},
			Resources: protocol.ResourcesCapability{ListChanged: true},
			Prompts:   map[string]any{},
		},
		ServerInfo: protocol.ServerInfo{
			Name:    "braze-mcp",
			Version: version.Version,
		},
	}, nil
}

func negotiateProtocolVersion(clientVersion string) string {
	for _, v := range version.SupportedProtocolVersions {
		if clientVersion == v {
			return v
		}
	}
	return version.ProtocolVersion
}

func (h *Handler) handleListTools() protocol.ListToolsResult {
	list := h.registry.List()
	out := make([]protocol.Tool, len(list))
	for i, t := range list {
		out[i] = protocol.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.Schema(),
			Annotations: t.Annotations(),
		}
	}
	return protocol.ListToolsResult{Tools: out}
}

func (h *Handler) handleCallTool(ctx context.Context, req *jsonrpc2.Request) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool execution panicked: %v", r)
			log.Error("tool panic recovered", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	var params callToolParams
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	if params.Name == "" {
		return nil, &tools.ValidationError{Field: "name", Reason: "tool name is required"}
	}

	text, err := h.registry.Dispatch(ctx, params.Name, params.Arguments)
	if err != nil {
		return nil, err
	}

	return protocol.CallToolResult{
		Content: []protocol.TextContent{protocol.NewTextContent(text)},
	}, nil
}

func (h *Handler) handleListResources() (any, error) {
	notes, err := h.store.ListNotes()
	if err != nil {
		return nil, err
	}

	resources := make([]protocol.Resource, len(notes))
	for i, n := range notes {
		resources[i] = protocol.Resource{
			URI:         fmt.Sprintf("note://internal/%s", n.Name),
			Name:        fmt.Sprintf("Note: %s", n.Name),
			Description: fmt.Sprintf("A simple note named %s", n.Name),
			MimeType:    "text/plain",
		}
	}
	return protocol.ListResourcesResult{Resources: resources}, nil
}

func (h *Handler) handleReadResource(req *jsonrpc2.Request) (any, error) {
	var params readResourceParams
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}

	u, err := url.Parse(params.URI)
	if err != nil {
		return nil, &tools.ValidationError{Field: "uri", Reason: fmt.Sprintf("invalid URI: %v", err)}
	}
	if u.Scheme != "note" {
		return nil, &tools.ValidationError{Field: "uri", Reason: fmt.Sprintf("Unsupported URI scheme: %s", u.Scheme)}
	}

	name := strings.TrimPrefix(u.Path, "/")
	content, err := h.store.GetNote(name)
	if err != nil {
		return nil, err
	}

	return protocol.ReadResourceResult{
		Contents: []protocol.ResourceContents{{
			URI:      params.URI,
			MimeType: "text/plain",
			Text:     content,
		}},
	}, nil
}

func (h *Handler) handleListPrompts() protocol.ListPromptsResult {
	return protocol.ListPromptsResult{
		Prompts: []protocol.Prompt{{
			Name:        promptSummarizeNotes,
			Description: "Creates a summary of all notes",
			Arguments: []protocol.PromptArgument{{
				Name:        "style",
				Description: "Style of the summary (brief/detailed)",
				Required:    false,
			}},
		}},
	}
}

func (h *Handler) handleGetPrompt(req *jsonrpc2.Request) (any, error) {
	var params getPromptParams
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	if params.Name != promptSummarizeNotes {
		return nil, &tools.ValidationError{Field: "name", Reason: fmt.Sprintf("Unknown prompt: %s", params.Name)}
	}

	detail := ""
	if params.Arguments["style"] == "detailed" {
		detail = " Give extensive details."
	}

	notes, err := h.store.ListNotes()
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(notes))
	for i, n := range notes {
		lines[i] = fmt.Sprintf("- %s: %s", n.Name, n.Content)
	}

	return protocol.GetPromptResult{
		Description: "Summarize the current notes",
		Messages: []protocol.PromptMessage{{
			Role:    "user",
			Content: protocol.NewTextContent(fmt.Sprintf("Here are the current notes to summarize:%s\n\n%s", detail, strings.Join(lines, "\n"))),
		}},
	}, nil
}

func unmarshalParams(req *jsonrpc2.Request, v any) error {
	if req.Params == nil {
		return nil
	}
	if err := json.Unmarshal(*req.Params, v); err != nil {
		return &jsonrpc2.Error{
			Code:    jsonrpc2.CodeInvalidParams,
			Message: fmt.Sprintf("failed to parse %s params: %v", req.Method, err),
		}
	}
	return nil
}

// toRPCError maps the typed tool and store errors onto JSON-RPC codes.
func toRPCError(err error) *jsonrpc2.Error {
	var rpcErr *jsonrpc2.Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	code := int64(jsonrpc2.CodeInternalError)

	var (
		validationErr    *tools.ValidationError
		notConfiguredErr *tools.NotConfiguredError
		unknownToolErr   *tools.UnknownToolError
		notFoundErr      *store.NotFoundError
		conflictErr      *store.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		code = jsonrpc2.CodeInvalidParams
	case errors.As(err, &unknownToolErr):
		code = jsonrpc2.CodeMethodNotFound
	case errors.As(err, &notConfiguredErr):
		code = codeNotConfigured
	case errors.As(err, &notFoundErr):
		code = codeNotFound
	case errors.As(err, &conflictErr):
		code = codeConflict
	}

	return &jsonrpc2.Error{Code: code, Message: err.Error()}
}
