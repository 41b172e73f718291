package theme

import "image/color"

// Flat is the built-in minimal theme: solid fills, no ornament.
type Flat struct {
	palette Palette
}

// NewFlat creates a flat theme over the given palette. A nil palette
// uses the defaults.
func NewFlat(p Palette) *Flat {
	if p == nil {
		p = DefaultPalette()
	}
	return &Flat{palette: p}
}

func (f *Flat) Color(role Role) color.RGBA {
	return f.palette[role]
}

func (f *Flat) Painter(name string) Painter {
	switch name {
	case PainterButton:
		return &flatButtonPainter{theme: f}
	case PainterLabel:
		return &flatLabelPainter{theme: f}
	default:
		return nil
	}
}

type flatButtonPainter struct {
	theme *Flat
}

func (p *flatButtonPainter) Paint(obj any) []Command {
	cmds := []Command{
		{Op: OpFill, Color: p.theme.Color(RoleBackground)},
		{Op: OpStroke, Color: p.theme.Color(RoleWeakForeground)},
	}
	if ts, ok := obj.(TextSource); ok {
		cmds = append(cmds, Command{
			Op:    OpText,
			Color: p.theme.Color(RoleForeground),
			Text:  ts.PaintText(),
		})
	}
	return cmds
}

func (p *flatButtonPainter) SizeHint(obj any) Size {
	s := Size{W: 24, H: 24}
	if ts, ok := obj.(TextSource); ok {
		s.W += float64(len(ts.PaintText())) * 8
	}
	return s
}

type flatLabelPainter struct {
	theme *Flat
}

func (p *flatLabelPainter) Paint(obj any) []Command {
	if ts, ok := obj.(TextSource); ok {
		return []Command{{
			Op:    OpText,
			Color: p.theme.Color(RoleForeground),
			Text:  ts.PaintText(),
		}}
	}
	return nil
}

func (p *flatLabelPainter) SizeHint(obj any) Size {
	if ts, ok := obj.(TextSource); ok {
		return Size{W: float64(len(ts.PaintText())) * 8, H: 16}
	}
	return Size{}
}
