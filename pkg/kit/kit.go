// Package kit provides basic components built on the vx registry.
//
// Nothing in this package is core machinery: every widget here goes
// through the same public factory, slot, and checkout surface that any
// external component would.
package kit

import "github.com/jazzfool/vx/pkg/theme"

// Displayer is implemented by components that produce display
// commands. A rendering collaborator drains the frame scheduler and
// calls Display on each dirty component under a checkout.
type Displayer interface {
	Display() []theme.Command
}

// ClickEvent is emitted by a Button's click slot.
type ClickEvent struct{}
