package server

import "github.com/ironsheep/palette-tools-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var paletteTypeSchema = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"monochromatic", "analogous", "triadic", "complementary"},
	"description": "Palette strategy. Defaults to the server's configured type; unknown values fall back to monochromatic",
}

var colorSchema = map[string]interface{}{
	"type":        "string",
	"pattern":     "^#[0-9a-fA-F]{6}$",
	"description": "Base color as #RRGGBB",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Palette Operations
		{
			Name:        "palette_generate",
			Description: "Generate a five-color harmonious palette from a base color. Colors are sorted by hue and returned as hex, RGB and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema,
					"type":  paletteTypeSchema,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "palette_types",
			Description: "List the supported palette types.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "palette_from_image",
			Description: "Find the dominant color of an image (or a region of it) and generate a palette from it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a PNG, JPEG or GIF file",
					},
					"type": paletteTypeSchema,
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region to analyze: {x1, y1, x2, y2} with x2/y2 exclusive",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "palette_swatch",
			Description: "Render a generated palette as a PNG strip of labelled swatches, returned base64-encoded and optionally written to disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema,
					"type":  paletteTypeSchema,
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file path to also save the PNG to",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the rendered strip. Default 1.0",
						"default":     1.0,
						"minimum":     0,
						"maximum":     imaging.MaxSwatchScale,
					},
				},
				"required": []string{"color"},
			},
		},

		// Color Operations
		{
			Name:        "color_convert",
			Description: "Convert a hex color to RGB and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema,
				},
				"required": []string{"color"},
			},
		},

		// Cache Management
		{
			Name:        "palette_cache_stats",
			Description: "Report conversion cache hits, misses and entries, and the number of cached images.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "palette_cache_clear",
			Description: "Empty the conversion cache and the image cache.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
