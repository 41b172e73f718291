// Package theme provides the visual-vocabulary contract between
// components and a rendering collaborator: named colors and named
// painters producing abstract display commands. No pixels are
// produced here; a renderer interprets the command lists.
package theme

import "image/color"

// Role names a semantic color in a theme's palette.
type Role string

// Standard color roles used by the kit package. For a theme to support
// kit, it must resolve all of these.
const (
	// RoleForeground is used by text and other foreground elements.
	RoleForeground Role = "foreground"
	// RoleBackground fills general background elements.
	RoleBackground Role = "background"
	// RoleWeakForeground is a less contrasting foreground.
	RoleWeakForeground Role = "weak_foreground"
	// RoleStrongForeground is a more contrasting foreground.
	RoleStrongForeground Role = "strong_foreground"
)

// Standard painter names used by the kit package.
const (
	PainterButton = "button"
	PainterLabel  = "label"
)

// Op identifies a display command operation.
type Op int

const (
	// OpFill fills the component's bounds with a color.
	OpFill Op = iota
	// OpStroke outlines the component's bounds with a color.
	OpStroke
	// OpText draws a text run in a color.
	OpText
)

func (o Op) String() string {
	switch o {
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Command is one abstract display instruction.
type Command struct {
	Op    Op
	Color color.RGBA
	Text  string
}

// Size is a painter's preferred extent in logical units.
type Size struct {
	W, H float64
}

// TextSource is implemented by components whose painter draws a text
// run.
type TextSource interface {
	PaintText() string
}

// Painter turns one component's state into display commands. Painters
// are owned by the component instance and stateless with respect to
// the tree.
type Painter interface {
	Paint(obj any) []Command
	SizeHint(obj any) Size
}

// Theme resolves named painters and semantic colors.
type Theme interface {
	// Painter returns the painter registered under the name, or nil if
	// the theme does not support it.
	Painter(name string) Painter
	// Color resolves a semantic role. Unknown roles resolve to the
	// zero color.
	Color(role Role) color.RGBA
}
