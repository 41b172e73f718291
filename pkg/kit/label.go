package kit

import (
	"fmt"

	"github.com/jazzfool/vx/pkg/theme"
	"github.com/jazzfool/vx/pkg/vx"
)

// LabelRef is a typed handle to a Label.
type LabelRef = vx.Ref[*Label]

// Label is a text component. Its text is mutated through SetText,
// which requests a repaint without propagating.
type Label struct {
	vx.ComponentBase

	text    string
	painter theme.Painter
	cref    LabelRef
}

// NewLabel mounts an empty Label under parent.
func NewLabel(g *vx.Registry, parent vx.AnyRef, th theme.Theme) (LabelRef, error) {
	return vx.Child(g, parent, func(g *vx.Registry, cref LabelRef) (*Label, error) {
		painter := th.Painter(theme.PainterLabel)
		if painter == nil {
			return nil, fmt.Errorf("theme does not support painter %q", theme.PainterLabel)
		}
		return &Label{painter: painter, cref: cref}, nil
	})
}

// Text returns the current text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text and marks the label repaint-dirty. Call it
// with the label checked out mutably; Update touches only topology and
// scheduler state, never the label's own checkout.
func (l *Label) SetText(g *vx.Registry, text string) error {
	l.text = text
	return g.Update(l.cref.AsAny(), vx.RepaintYes, vx.PropagateNo)
}

// PaintText returns the text for the theme painter.
func (l *Label) PaintText() string { return l.text }

// Display produces the label's display commands.
func (l *Label) Display() []theme.Command {
	return l.painter.Paint(l)
}

// SizeHint returns the label's preferred extent.
func (l *Label) SizeHint() theme.Size {
	return l.painter.SizeHint(l)
}
