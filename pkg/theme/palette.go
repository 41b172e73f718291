package theme

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Palette maps color roles to concrete colors.
type Palette map[Role]color.RGBA

// DefaultPalette returns the built-in flat palette.
func DefaultPalette() Palette {
	return Palette{
		RoleForeground:       colornames.Black,
		RoleBackground:       colornames.White,
		RoleWeakForeground:   colornames.Dimgray,
		RoleStrongForeground: colornames.Darkslategray,
	}
}

// paletteFile is the optional theme.yaml layout.
type paletteFile struct {
	Colors map[string]string `yaml:"colors"`
}

// LoadPalette reads a palette from a YAML file of the form:
//
//	colors:
//	  foreground: black
//	  background: "#1e1e2e"
//
// Color values are SVG 1.1 color names or #rgb/#rrggbb hex. Roles not
// listed fall back to the default palette.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParsePalette(data)
}

// ParsePalette parses the YAML palette format from memory.
func ParsePalette(data []byte) (Palette, error) {
	var file paletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	p := DefaultPalette()
	for role, value := range file.Colors {
		c, err := ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", role, err)
		}
		p[Role(role)] = c
	}
	return p, nil
}

// ParseColor resolves an SVG 1.1 color name or a #rgb/#rrggbb hex
// literal.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color value")
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color name %q", s)
}

func parseHex(s string) (color.RGBA, error) {
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("hex color must be #rgb or #rrggbb, got #%s", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color #%s", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
