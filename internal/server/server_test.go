package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/palette-tools-mcp/internal/config"
)

func TestNew(t *testing.T) {
	s := New(nil, nil)
	require.NotNil(t, s)
	require.NotNil(t, s.images, "image cache not initialized")
	require.NotNil(t, s.assembler.Converter().Cache(), "default config should enable the conversion cache")
}

func TestNew_CacheDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Enabled = false

	s := New(cfg, nil)
	assert.Nil(t, s.assembler.Converter().Cache())
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			require.NoError(t, json.Unmarshal([]byte(tt.json), &req))

			assert.Equal(t, tt.wantID, req.ID)
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, "2.0", req.JSONRPC)
		})
	}
}

func TestMCPRequest_WithParams(t *testing.T) {
	jsonStr := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"palette_generate","arguments":{"color":"#ff0000"}}}`

	var req MCPRequest
	require.NoError(t, json.Unmarshal([]byte(jsonStr), &req))
	require.NotNil(t, req.Params)

	var params map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Params, &params))
	assert.Equal(t, "palette_generate", params["name"])
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := New(nil, nil)

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	assert.Equal(t, 1, resp.ID)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "Result should be a map")
	assert.Equal(t, "2024-11-05", result["protocolVersion"])
}

func TestHandleRequest_Ping(t *testing.T) {
	s := New(nil, nil)

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: "ping-1", Method: "ping"})
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	assert.Equal(t, "ping-1", resp.ID)
}

func TestHandleRequest_ToolsList(t *testing.T) {
	s := New(nil, nil)

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "Result should be a map")

	toolsList, ok := result["tools"].([]Tool)
	require.True(t, ok, "tools should be a slice of Tool")
	assert.Len(t, toolsList, len(GetToolDefinitions()))
}

func TestHandleRequest_NotificationsInitialized(t *testing.T) {
	s := New(nil, nil)

	// Notifications don't get responses
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"})
	assert.Nil(t, resp)
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	s := New(nil, nil)

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "nonexistent/method"})
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
}

func TestHandleInitialize(t *testing.T) {
	s := New(nil, nil)

	resp := s.handleInitialize(&MCPRequest{JSONRPC: "2.0", ID: "init-1"})
	assert.Equal(t, "init-1", resp.ID)
	assert.Equal(t, "2.0", resp.JSONRPC)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "Result should be a map")

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	require.True(t, ok, "serverInfo should be a map")
	assert.Equal(t, "palette-tools-mcp", serverInfo["name"])
	assert.Equal(t, Version, serverInfo["version"])
}

func TestServe(t *testing.T) {
	s := New(nil, nil)

	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"palette_generate","arguments":{"color":"#ff0000","type":"monochromatic"}}}`,
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, s.Serve(strings.NewReader(in), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3, out.String())

	var parseErr MCPResponse
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &parseErr))
	require.NotNil(t, parseErr.Error, lines[1])
	assert.Equal(t, -32700, parseErr.Error.Code)

	assert.Contains(t, lines[2], "#ff6666")
}

func TestServe_OversizedSwatchKeepsServing(t *testing.T) {
	s := New(nil, nil)

	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"palette_swatch","arguments":{"color":"#ff0000","scale":1e6}}}`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, s.Serve(strings.NewReader(in), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2, out.String())

	var swatchErr MCPResponse
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &swatchErr))
	require.NotNil(t, swatchErr.Error)
	assert.Equal(t, -32000, swatchErr.Error.Code)

	var pong MCPResponse
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &pong))
	assert.Nil(t, pong.Error)
}
