package palette

import "strings"

// Type selects the strategy used to derive a palette from a base color.
type Type int

// Palette types. Monochromatic is the zero value so an unset Type behaves
// like an unrecognized token.
const (
	Monochromatic Type = iota
	Analogous
	Triadic
	Complementary
)

// Types lists every palette type in canonical order.
var Types = []Type{Monochromatic, Analogous, Triadic, Complementary}

// String returns the lowercase token for t.
func (t Type) String() string {
	switch t {
	case Analogous:
		return "analogous"
	case Triadic:
		return "triadic"
	case Complementary:
		return "complementary"
	default:
		return "monochromatic"
	}
}

// LookupType resolves a token to a Type. Matching ignores case and
// surrounding whitespace. The boolean reports whether the token was
// recognized; on false the returned Type is Monochromatic.
func LookupType(token string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "monochromatic":
		return Monochromatic, true
	case "analogous":
		return Analogous, true
	case "triadic":
		return Triadic, true
	case "complementary":
		return Complementary, true
	}
	return Monochromatic, false
}

// ParseType resolves a token to a Type, falling back to Monochromatic for
// anything unrecognized.
func ParseType(token string) Type {
	t, _ := LookupType(token)
	return t
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same fallback
// as ParseType.
func (t *Type) UnmarshalText(text []byte) error {
	*t = ParseType(string(text))
	return nil
}
