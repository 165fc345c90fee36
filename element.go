package panzoom

import (
	"errors"
	"slices"
)

// Element is the visual target of a Panzoom and the unit of the exclusion
// check. Node is the package's own implementation; hosts with their own
// retained tree can implement it directly.
type Element interface {
	// NodeType reports the kind of node. Only NodeTypeElement can be
	// panned and zoomed.
	NodeType() NodeType
	// IsSVG reports whether the node is an SVG graphics element.
	IsSVG() bool
	// ParentElement returns the parent node, or nil at the root.
	ParentElement() Element
	// HasClass reports whether the node carries the given class name.
	HasClass(name string) bool
	// Connected reports whether the node is attached to a live document.
	Connected() bool
}

// Construction errors returned by New. Use errors.Is to match them.
var (
	ErrNoElement  = errors.New("panzoom requires an element")
	ErrNotElement = errors.New("panzoom requires a node of element type")
	ErrDetached   = errors.New("panzoom requires an element attached to a document")
)

// checkAttachable validates a construction target.
func checkAttachable(elem Element) error {
	if isNil(elem) {
		return ErrNoElement
	}
	if elem.NodeType() != NodeTypeElement {
		return ErrNotElement
	}
	if !elem.Connected() || isNil(elem.ParentElement()) {
		return ErrDetached
	}
	return nil
}

// isNil catches both a nil interface and a typed nil *Node.
func isNil(elem Element) bool {
	if elem == nil {
		return true
	}
	n, ok := elem.(*Node)
	return ok && n == nil
}

// isExcluded walks from target up to, but not including, the document and
// reports whether any node carries excludeClass or appears in exclude.
func isExcluded(target Element, exclude []Element, excludeClass string) bool {
	for cur := target; !isNil(cur); cur = cur.ParentElement() {
		if cur.NodeType() == NodeTypeDocument {
			return false
		}
		if excludeClass != "" && cur.HasClass(excludeClass) {
			return true
		}
		if slices.Contains(exclude, cur) {
			return true
		}
	}
	return false
}
