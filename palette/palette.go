// Package palette resolves colour tokens against a three-colour palette.
//
// Layers refer to colours by token: "primary", "light" or "dark". Literal
// hex colours ("#RRGGBB", "#RGB", with optional alpha) pass through. Anything
// else resolves to black.
package palette

import (
	"strings"

	"github.com/gogpu/gg"

	cover "github.com/gogpu/gg-cover"
)

// Colour tokens.
const (
	TokenPrimary = "primary"
	TokenLight   = "light"
	TokenDark    = "dark"
)

// Palette holds the three colours of a profile as hex strings.
type Palette struct {
	Primary string `yaml:"primary"`
	Light   string `yaml:"light"`
	Dark    string `yaml:"dark"`
}

// Default is used when a cover has no palette of its own.
var Default = Palette{
	Primary: "#000000",
	Light:   "#FFFFFF",
	Dark:    "#000000",
}

// Black is the fallback colour.
var Black = gg.RGBA{A: 1}

// Swap maps token to the hex string it stands for. Literal colours are
// returned unchanged; unknown tokens return "".
func (p Palette) Swap(token string) string {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case TokenPrimary:
		return p.Primary
	case TokenLight:
		return p.Light
	case TokenDark:
		return p.Dark
	}
	if IsHex(token) {
		return token
	}
	return ""
}

// Resolve maps token to a colour. Unresolvable tokens yield Black.
func (p Palette) Resolve(token string) gg.RGBA {
	hex := p.Swap(token)
	if !IsHex(hex) {
		if token != "" {
			cover.Logger().Warn("palette: unknown colour token", "token", token)
		}
		return Black
	}
	return gg.Hex(hex)
}

// WithDefaults fills empty or malformed entries from Default.
func (p Palette) WithDefaults() Palette {
	if !IsHex(p.Primary) {
		p.Primary = Default.Primary
	}
	if !IsHex(p.Light) {
		p.Light = Default.Light
	}
	if !IsHex(p.Dark) {
		p.Dark = Default.Dark
	}
	return p
}

// IsHex reports whether s is a hex colour gg.Hex understands.
func IsHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
