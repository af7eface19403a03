// Command cssls-lsp is a Language Server Protocol server for CSS.
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rlch/cssls/lsp"
)

var debugFlag = flag.Bool("debug", false, "Enable debug logging")

func main() {
	flag.Parse()

	// Logs go to stderr; stdout carries the LSP stream.
	level := zapcore.InfoLevel
	if *debugFlag {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	stderrCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	bootLogger := zap.New(stderrCore)
	bootLogger.Info("Starting cssls-lsp server")

	ctx := context.Background()

	if err := run(ctx, stderrCore, level, os.Stdin, os.Stdout); err != nil {
		bootLogger.Fatal("Server error", zap.Error(err))
	}
}

func run(ctx context.Context, fallback zapcore.Core, level zapcore.Level, in io.Reader, out io.Writer) error {
	// JSON-RPC over stdio
	stream := jsonrpc2.NewStream(&readWriteCloser{in, out})
	conn := jsonrpc2.NewConn(stream)

	// Client handle for notifications back to the editor
	client := protocol.ClientDispatcher(conn, zap.New(fallback))

	// Logs reach both stderr and the editor's log viewer.
	logger := lsp.NewClientLogger(client, fallback, level)
	defer func() {
		_ = logger.Sync()
	}()

	server := lsp.NewServer(client, logger, nil)

	conn.Go(ctx, protocol.ServerHandler(server, nil))

	<-conn.Done()

	return conn.Err()
}

// readWriteCloser wraps separate reader/writer into io.ReadWriteCloser.
type readWriteCloser struct {
	io.Reader
	io.Writer
}

func (rwc *readWriteCloser) Close() error {
	if c, ok := rwc.Writer.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
