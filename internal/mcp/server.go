// Package mcp implements the stdio MCP session: newline-delimited JSON-RPC
// 2.0 framing over stdin/stdout, handled one request at a time.
package mcp

import (
	"context"
	"io"
	"os"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/alucardeht/braze-mcp/internal/store"
	"github.com/alucardeht/braze-mcp/internal/tools"
)

type Server struct {
	handler *Handler
	store   *store.Store
}

func NewServer(registry *tools.Registry, st *store.Store) *Server {
	return &Server{
		handler: NewHandler(registry, st),
		store:   st,
	}
}

// Serve runs one session over rwc until the peer disconnects or ctx is
// cancelled. The handler is not wrapped in jsonrpc2.AsyncHandler, so
// requests are processed sequentially in arrival order.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.PlainObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, s.handler)
	defer conn.Close()

	s.store.OnNotesChanged(func() {
		if err := conn.Notify(ctx, "notifications/resources/list_changed", struct{}{}); err != nil {
			log.Warn("failed to notify resource list change", "error", err)
		}
	})
	defer s.store.OnNotesChanged(nil)

	select {
	case <-conn.DisconnectNotify():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ServeStdio runs the session over the process's stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Serve(ctx, stdrwc{})
}

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
