package panzoom

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter; panzoom is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a box in a retained layout tree. It implements Element and, through
// NodeGeometry, the measurements Panzoom reads when it takes a Dimensions
// snapshot. A single flat struct is used for documents, elements, and text.
type Node struct {
	// Identity
	ID      uint32
	Name    string
	Type    NodeType
	SVG     bool
	Classes []string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout size of the box, unaffected by any pan/zoom transform.
	Width, Height float64
	// GraphicsBox is the intrinsic geometry box of an SVG graphics element.
	GraphicsBox Rect
	// Bounds is the rendered bounding box in client space.
	Bounds Rect

	Margin  Box
	Border  Box
	Padding Box

	// Image is drawn by the Viewer for the panned element. Optional.
	Image *ebiten.Image
	// Fill is the background drawn by the Viewer behind the element when
	// this node is the parent. Zero means transparent.
	Fill Color

	// Metadata
	UserData any

	disposed bool
}

// Color is an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
}

// NewDocument creates the root of a connected tree.
func NewDocument(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeDocument}
	nodeDefaults(n)
	return n
}

// NewElement creates a layout-box element with the given rendered bounds.
// Width and Height default to the bounds' size.
func NewElement(name string, bounds Rect) *Node {
	n := &Node{
		Name:   name,
		Type:   NodeTypeElement,
		Bounds: bounds,
		Width:  bounds.Width,
		Height: bounds.Height,
	}
	nodeDefaults(n)
	return n
}

// NewSVGElement creates an SVG graphics element whose geometry box is box.
func NewSVGElement(name string, bounds, box Rect) *Node {
	n := NewElement(name, bounds)
	n.SVG = true
	n.GraphicsBox = box
	return n
}

// NewText creates a text node. Text nodes are never attachable.
func NewText(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeText}
	nodeDefaults(n)
	return n
}

// --- Element implementation ---

// NodeType implements Element.
func (n *Node) NodeType() NodeType { return n.Type }

// IsSVG implements Element.
func (n *Node) IsSVG() bool { return n.SVG }

// ParentElement implements Element. It returns a nil interface (not a
// typed nil) at the root.
func (n *Node) ParentElement() Element {
	if n.Parent == nil {
		return nil
	}
	return n.Parent
}

// HasClass implements Element.
func (n *Node) HasClass(name string) bool {
	return slices.Contains(n.Classes, name)
}

// AddClass appends a class name if not already present.
func (n *Node) AddClass(name string) {
	if !n.HasClass(name) {
		n.Classes = append(n.Classes, name)
	}
}

// Connected implements Element: the node is connected when a document is
// among its ancestors (or it is one).
func (n *Node) Connected() bool {
	if n.disposed {
		return false
	}
	for p := n; p != nil; p = p.Parent {
		if p.Type == NodeTypeDocument {
			return true
		}
	}
	return false
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, either node is disposed, or child is an ancestor
// of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("panzoom: cannot add nil child")
	}
	debugCheckDisposed(n, "AddChild")
	debugCheckDisposed(child, "AddChild")
	if isAncestor(child, n) {
		panic("panzoom: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("panzoom: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Image = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Hit testing ---

// hitTest returns the deepest node under (x, y) within n's subtree, searching
// later children first since they paint on top. Returns nil on a miss.
func (n *Node) hitTest(x, y float64) *Node {
	if n.Type == NodeTypeText || !n.Bounds.Contains(x, y) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].hitTest(x, y); hit != nil {
			return hit
		}
	}
	return n
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
