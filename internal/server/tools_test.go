package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
)

func toolByName(t *testing.T, name string) Tool {
	t.Helper()
	for _, tool := range GetToolDefinitions() {
		if tool.Name == name {
			return tool
		}
	}
	require.FailNow(t, "tool not found", name)
	return Tool{}
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"palette_generate",
		"palette_types",
		"palette_from_image",
		"palette_swatch",
		"color_convert",
		"palette_cache_stats",
		"palette_cache_clear",
	}

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, expectedTools, names)
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			assert.NotEmpty(t, tool.Description)
			require.NotNil(t, tool.InputSchema)
			assert.Equal(t, "object", tool.InputSchema["type"])
			assert.NotNil(t, tool.InputSchema["properties"], "InputSchema missing 'properties' field")
		})
	}
}

func TestToolDefinitions_RequiredArguments(t *testing.T) {
	tests := []struct {
		tool     string
		required string
	}{
		{"palette_generate", "color"},
		{"palette_swatch", "color"},
		{"color_convert", "color"},
		{"palette_from_image", "path"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			tool := toolByName(t, tt.tool)

			requiredList, ok := tool.InputSchema["required"].([]string)
			require.True(t, ok, "'required' should be a string slice")
			assert.Contains(t, requiredList, tt.required)
		})
	}
}

func TestToolDefinitions_PaletteTypeEnum(t *testing.T) {
	tool := toolByName(t, "palette_generate")

	props := tool.InputSchema["properties"].(map[string]interface{})
	typeProp := props["type"].(map[string]interface{})
	enum, ok := typeProp["enum"].([]string)
	require.True(t, ok, "type enum should be a string slice")
	assert.Equal(t, []string{"monochromatic", "analogous", "triadic", "complementary"}, enum)
}

func TestToolDefinitions_SwatchScaleBounds(t *testing.T) {
	tool := toolByName(t, "palette_swatch")

	props := tool.InputSchema["properties"].(map[string]interface{})
	scale := props["scale"].(map[string]interface{})
	assert.Equal(t, 0, scale["minimum"])
	assert.Equal(t, imaging.MaxSwatchScale, scale["maximum"])
}
