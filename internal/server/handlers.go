package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/palette-tools-mcp/internal/colorspace"
	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "palette_generate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	log := s.log.WithFields(map[string]interface{}{"tool": params.Name})
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.Error(err, "tool execution failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	log.Debug("tool executed")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Palette Operations
	case "palette_generate":
		return s.handlePaletteGenerate(args)
	case "palette_types":
		return s.handlePaletteTypes(args)
	case "palette_from_image":
		return s.handlePaletteFromImage(args)
	case "palette_swatch":
		return s.handlePaletteSwatch(args)

	// Color Operations
	case "color_convert":
		return s.handleColorConvert(args)

	// Cache Management
	case "palette_cache_stats":
		return s.handleCacheStats(args)
	case "palette_cache_clear":
		return s.handleCacheClear(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, treating absent arguments as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// resolveType maps a requested type token to a palette type. An empty token
// selects the configured default.
func (s *Server) resolveType(token string) (palette.Type, bool) {
	if token == "" {
		token = s.cfg.DefaultType
	}
	t, ok := palette.LookupType(token)
	if !ok {
		s.log.WithFields(map[string]interface{}{"type": token}).Warn("unknown palette type, using monochromatic")
	}
	return t, ok
}

// === Palette Handlers ===

type paletteResult struct {
	*palette.Palette
	TypeRecognized bool `json:"type_recognized"`
}

type paletteGenerateArgs struct {
	Color string `json:"color"`
	Type  string `json:"type"`
}

func (s *Server) generate(color, token string) (*paletteResult, error) {
	t, ok := s.resolveType(token)
	p, err := s.assembler.Generate(color, t)
	if err != nil {
		return nil, err
	}
	return &paletteResult{Palette: p, TypeRecognized: ok}, nil
}

func (s *Server) handlePaletteGenerate(args json.RawMessage) (interface{}, error) {
	var a paletteGenerateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.generate(a.Color, a.Type)
}

func (s *Server) handlePaletteTypes(args json.RawMessage) (interface{}, error) {
	return map[string]interface{}{
		"types":   palette.Types,
		"default": palette.ParseType(s.cfg.DefaultType),
	}, nil
}

type paletteFromImageArgs struct {
	Path   string          `json:"path"`
	Type   string          `json:"type"`
	Region *imaging.Region `json:"region"`
}

type paletteFromImageResult struct {
	Image   *imaging.ImageInfo `json:"image"`
	Palette *paletteResult     `json:"palette"`
}

func (s *Server) handlePaletteFromImage(args json.RawMessage) (interface{}, error) {
	var a paletteFromImageArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	img, info, err := imaging.LoadImageInfo(s.images, a.Path)
	if err != nil {
		return nil, err
	}

	base, err := imaging.DominantColor(img, a.Region)
	if err != nil {
		return nil, err
	}

	p, err := s.generate(base, a.Type)
	if err != nil {
		return nil, err
	}
	return &paletteFromImageResult{Image: info, Palette: p}, nil
}

type paletteSwatchArgs struct {
	Color      string  `json:"color"`
	Type       string  `json:"type"`
	OutputPath string  `json:"output_path"`
	Scale      float64 `json:"scale"`
}

func (s *Server) handlePaletteSwatch(args json.RawMessage) (interface{}, error) {
	var a paletteSwatchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	p, err := s.generate(a.Color, a.Type)
	if err != nil {
		return nil, err
	}

	opts := imaging.SwatchOptions{
		Width:  s.cfg.Swatch.Width,
		Height: s.cfg.Swatch.Height,
		Labels: s.cfg.Swatch.Labels,
		Scale:  a.Scale,
	}
	img, err := imaging.RenderSwatches(p.Hexes(), opts)
	if err != nil {
		return nil, err
	}

	if a.OutputPath != "" {
		if err := imaging.SaveSwatches(a.OutputPath, img); err != nil {
			return nil, err
		}
	}

	result, err := imaging.EncodeSwatches(img, p.Hexes())
	if err != nil {
		return nil, err
	}
	result.SavedTo = a.OutputPath
	return result, nil
}

// === Color Handlers ===

type colorConvertArgs struct {
	Color string `json:"color"`
}

type colorConvertResult struct {
	Hex string         `json:"hex"`
	RGB colorspace.RGB `json:"rgb"`
	HSL colorspace.HSL `json:"hsl"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	rgb, err := colorspace.HexToRGB(a.Color)
	if err != nil {
		return nil, err
	}
	return &colorConvertResult{
		Hex: colorspace.RGBToHex(rgb),
		RGB: rgb,
		HSL: s.assembler.Converter().RGBToHSL(rgb),
	}, nil
}

// === Cache Handlers ===

type cacheStatsResult struct {
	CacheEnabled bool                  `json:"cache_enabled"`
	Conversions  colorspace.CacheStats `json:"conversions"`
	ImagesCached int                   `json:"images_cached"`
}

func (s *Server) cacheStats() *cacheStatsResult {
	conv := s.assembler.Converter()
	return &cacheStatsResult{
		CacheEnabled: conv.Cache() != nil,
		Conversions:  conv.Stats(),
		ImagesCached: s.images.Len(),
	}
}

func (s *Server) handleCacheStats(args json.RawMessage) (interface{}, error) {
	return s.cacheStats(), nil
}

func (s *Server) handleCacheClear(args json.RawMessage) (interface{}, error) {
	if c := s.assembler.Converter().Cache(); c != nil {
		c.Clear()
	}
	s.images.Clear()
	return s.cacheStats(), nil
}
