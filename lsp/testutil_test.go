package lsp_test

import (
	"context"
	"sync"
	"testing"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/rlch/cssls/lsp"
)

// mockClient records notifications sent by the server.
type mockClient struct {
	mu          sync.Mutex
	diagnostics []*protocol.PublishDiagnosticsParams
	logMessages []*protocol.LogMessageParams
}

func (m *mockClient) Progress(_ context.Context, _ *protocol.ProgressParams) error {
	return nil
}

func (m *mockClient) WorkDoneProgressCreate(_ context.Context, _ *protocol.WorkDoneProgressCreateParams) error {
	return nil
}

func (m *mockClient) LogMessage(_ context.Context, params *protocol.LogMessageParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logMessages = append(m.logMessages, params)

	return nil
}

func (m *mockClient) PublishDiagnostics(_ context.Context, params *protocol.PublishDiagnosticsParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.diagnostics = append(m.diagnostics, params)

	return nil
}

func (m *mockClient) ShowMessage(_ context.Context, _ *protocol.ShowMessageParams) error {
	return nil
}

func (m *mockClient) ShowMessageRequest(_ context.Context, _ *protocol.ShowMessageRequestParams) (*protocol.MessageActionItem, error) {
	return nil, nil //nolint:nilnil // no action chosen
}

func (m *mockClient) Telemetry(_ context.Context, _ interface{}) error {
	return nil
}

func (m *mockClient) RegisterCapability(_ context.Context, _ *protocol.RegistrationParams) error {
	return nil
}

func (m *mockClient) UnregisterCapability(_ context.Context, _ *protocol.UnregistrationParams) error {
	return nil
}

func (m *mockClient) ApplyEdit(_ context.Context, _ *protocol.ApplyWorkspaceEditParams) (bool, error) {
	return false, nil
}

func (m *mockClient) Configuration(_ context.Context, _ *protocol.ConfigurationParams) ([]interface{}, error) {
	return nil, nil
}

func (m *mockClient) WorkspaceFolders(_ context.Context) ([]protocol.WorkspaceFolder, error) {
	return nil, nil
}

// lastDiagnostics returns the most recent publish for the given URI.
func (m *mockClient) lastDiagnostics(uri protocol.DocumentURI) *protocol.PublishDiagnosticsParams {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.diagnostics) - 1; i >= 0; i-- {
		if m.diagnostics[i].URI == uri {
			return m.diagnostics[i]
		}
	}

	return nil
}

func newTestServer(t *testing.T) (*lsp.Server, *mockClient) {
	t.Helper()

	client := &mockClient{}
	server := lsp.NewServer(client, zap.NewNop(), nil)

	return server, client
}

// openDoc initializes the server and opens a document with the given text.
func openDoc(t *testing.T, server *lsp.Server, text string) protocol.DocumentURI {
	t.Helper()

	ctx := context.Background()

	if _, err := server.Initialize(ctx, &protocol.InitializeParams{}); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	if err := server.Initialized(ctx, &protocol.InitializedParams{}); err != nil {
		t.Fatalf("Initialized() error: %v", err)
	}

	uri := protocol.DocumentURI("file:///test.css")

	err := server.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "css",
			Version:    1,
			Text:       text,
		},
	})
	if err != nil {
		t.Fatalf("DidOpen() error: %v", err)
	}

	return uri
}

// position converts a byte offset in text to an LSP position.
func position(text string, offset int) protocol.Position {
	return lsp.PositionAt(text, offset)
}
