package theme

import (
	"image/color"
	"testing"
)

type fakeText string

func (f fakeText) PaintText() string { return string(f) }

func TestFlat_ResolvesKitRolesAndPainters(t *testing.T) {
	th := NewFlat(nil)

	for _, role := range []Role{RoleForeground, RoleBackground, RoleWeakForeground, RoleStrongForeground} {
		if th.Color(role) == (color.RGBA{}) {
			t.Errorf("role %q resolves to the zero color", role)
		}
	}
	if th.Color("nonsense") != (color.RGBA{}) {
		t.Error("unknown role did not resolve to the zero color")
	}

	for _, name := range []string{PainterButton, PainterLabel} {
		if th.Painter(name) == nil {
			t.Errorf("painter %q not supported", name)
		}
	}
	if th.Painter("nonsense") != nil {
		t.Error("unknown painter name resolved")
	}
}

func TestFlat_ButtonPainter(t *testing.T) {
	th := NewFlat(Palette{
		RoleForeground:     color.RGBA{1, 2, 3, 0xff},
		RoleBackground:     color.RGBA{4, 5, 6, 0xff},
		RoleWeakForeground: color.RGBA{7, 8, 9, 0xff},
	})
	p := th.Painter(PainterButton)

	cmds := p.Paint(fakeText("OK"))
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	if cmds[0].Op != OpFill || cmds[0].Color != (color.RGBA{4, 5, 6, 0xff}) {
		t.Errorf("fill command = %+v", cmds[0])
	}
	if cmds[1].Op != OpStroke || cmds[1].Color != (color.RGBA{7, 8, 9, 0xff}) {
		t.Errorf("stroke command = %+v", cmds[1])
	}
	if cmds[2].Op != OpText || cmds[2].Text != "OK" || cmds[2].Color != (color.RGBA{1, 2, 3, 0xff}) {
		t.Errorf("text command = %+v", cmds[2])
	}

	// Longer captions hint wider.
	short := p.SizeHint(fakeText("OK"))
	long := p.SizeHint(fakeText("A longer caption"))
	if long.W <= short.W {
		t.Errorf("SizeHint did not grow with text: %v vs %v", short, long)
	}
}

func TestFlat_LabelPainter(t *testing.T) {
	th := NewFlat(nil)
	p := th.Painter(PainterLabel)

	cmds := p.Paint(fakeText("hello"))
	if len(cmds) != 1 || cmds[0].Op != OpText || cmds[0].Text != "hello" {
		t.Fatalf("commands = %+v", cmds)
	}

	// A non-text object paints nothing.
	if cmds := p.Paint(struct{}{}); cmds != nil {
		t.Errorf("non-text paint = %+v, want nil", cmds)
	}
	if s := p.SizeHint(struct{}{}); s != (Size{}) {
		t.Errorf("non-text size hint = %+v, want zero", s)
	}
}
