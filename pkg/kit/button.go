package kit

import (
	"fmt"

	"github.com/jazzfool/vx/pkg/theme"
	"github.com/jazzfool/vx/pkg/vx"
)

// ButtonRef is a typed handle to a Button.
type ButtonRef = vx.Ref[*Button]

// Button is a clickable component exposing a "click" event slot.
type Button struct {
	vx.ComponentBase

	// OnClick fires once per click with a ClickEvent.
	OnClick vx.Slot

	// Text is the button caption.
	Text string

	painter theme.Painter
}

// NewButton mounts a Button under parent.
func NewButton(g *vx.Registry, parent vx.AnyRef, th theme.Theme) (ButtonRef, error) {
	return vx.Child(g, parent, func(g *vx.Registry, cref ButtonRef) (*Button, error) {
		click, err := g.DeclareSlot(cref.AsAny(), "click")
		if err != nil {
			return nil, err
		}
		painter := th.Painter(theme.PainterButton)
		if painter == nil {
			return nil, fmt.Errorf("theme does not support painter %q", theme.PainterButton)
		}
		return &Button{OnClick: click, painter: painter}, nil
	})
}

// PaintText returns the caption for the theme painter.
func (b *Button) PaintText() string { return b.Text }

// Display produces the button's display commands.
func (b *Button) Display() []theme.Command {
	return b.painter.Paint(b)
}

// SizeHint returns the button's preferred extent.
func (b *Button) SizeHint() theme.Size {
	return b.painter.SizeHint(b)
}

// Click fires the button's click slot, as a host input collaborator
// would on a pointer press.
func Click(g *vx.Registry, btn ButtonRef) error {
	var slot vx.Slot
	err := vx.Borrow(g, btn, func(_ *vx.Registry, b *Button) error {
		slot = b.OnClick
		return nil
	})
	if err != nil {
		return err
	}
	return g.Emit(slot, ClickEvent{})
}
