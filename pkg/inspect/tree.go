package inspect

import (
	"github.com/jazzfool/vx/pkg/vx"
)

// TreeNode is one node in the serialized component tree.
type TreeNode struct {
	Ref      string     `json:"ref"`
	Kind     string     `json:"kind"`
	Depth    int        `json:"depth"`
	Slots    []SlotNode `json:"slots,omitempty"`
	Children []TreeNode `json:"children,omitempty"`
}

// SlotNode describes one declared event slot.
type SlotNode struct {
	Name      string `json:"name"`
	Listeners int    `json:"listeners"`
	Firing    bool   `json:"firing,omitempty"`
}

// Snapshot serializes the registry's tree from the root. It must run
// on the registry thread; publish the result to a Server for handlers
// to read. An empty registry snapshots to a zero TreeNode.
func Snapshot(g *vx.Registry) (TreeNode, error) {
	root := g.Root()
	if root.IsNil() {
		return TreeNode{}, nil
	}
	return snapshotNode(g, root)
}

func snapshotNode(g *vx.Registry, h vx.AnyRef) (TreeNode, error) {
	view, err := g.Node(h)
	if err != nil {
		return TreeNode{}, err
	}
	slots, err := g.Slots(h)
	if err != nil {
		return TreeNode{}, err
	}
	node := TreeNode{
		Ref:   h.String(),
		Kind:  view.Kind,
		Depth: view.Depth,
	}
	for _, s := range slots {
		node.Slots = append(node.Slots, SlotNode{
			Name:      s.Name,
			Listeners: s.Listeners,
			Firing:    s.Firing,
		})
	}
	for _, child := range view.Children {
		cn, err := snapshotNode(g, child)
		if err != nil {
			return TreeNode{}, err
		}
		node.Children = append(node.Children, cn)
	}
	return node, nil
}
