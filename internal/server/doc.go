// Package server implements the MCP (Model Context Protocol) server for palette tools.
//
// This package exposes color conversion and palette generation through a
// JSON-RPC 2.0 server so MCP clients can derive harmonious color sets from a
// base color or from an image.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//   - Logs: stderr
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Palette Operations:
//   - palette_generate: Five-color palette from a base hex color
//   - palette_types: List the supported palette types
//   - palette_from_image: Palette seeded by an image's dominant color
//   - palette_swatch: Render a palette as a labelled PNG strip
//
// Color Operations:
//   - color_convert: Hex, RGB and HSL forms of one color
//
// Cache Management:
//   - palette_cache_stats: Conversion and image cache statistics
//   - palette_cache_clear: Empty both caches
//
// # Palette Types
//
// The type argument accepts monochromatic, analogous, triadic or
// complementary. An empty type uses the configured default; any other value
// falls back to monochromatic and is reported via type_recognized=false.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
