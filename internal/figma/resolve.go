package figma

import "strconv"

// MaxTreeDepth bounds every recursive walk. Well-formed documents are
// acyclic, but the tree comes from an external export; a cycle or
// pathological nesting must degrade into a truncated walk, not a stack
// overflow.
const MaxTreeDepth = 512

// FindDescendants returns the nodes under root matching pred, depth-first
// in child order. When includeRoot is true the root itself is tested first.
// The result order is deterministic and mirrors the document.
func FindDescendants(root *Node, includeRoot bool, pred func(*Node) bool) []*Node {
	if root == nil {
		return nil
	}
	var result []*Node
	if includeRoot && pred(root) {
		result = append(result, root)
	}
	collectDescendants(root, pred, &result, 0)
	return result
}

func collectDescendants(n *Node, pred func(*Node) bool, result *[]*Node, depth int) {
	if depth > MaxTreeDepth {
		return
	}
	for _, child := range n.Children {
		if pred(child) {
			*result = append(*result, child)
		}
		collectDescendants(child, pred, result, depth+1)
	}
}

// TextNodes returns every text descendant of root, including root itself
// if it is text.
func TextNodes(root *Node) []*Node {
	return FindDescendants(root, true, func(n *Node) bool { return n.IsText() })
}

// FirstSolidFill returns the color of the first visible solid paint on the
// node. The second return is false when the node has no fills or none
// qualify.
func FirstSolidFill(n *Node) (Color, bool) {
	for _, p := range n.Fills {
		if p.IsSolid() && p.IsVisible() {
			return p.Color, true
		}
	}
	return Color{}, false
}

// EffectiveBackground resolves the background a node sits on by walking
// strictly upward through its parents and returning the first visible solid
// fill found. When the entire ancestor chain is un-filled the document
// default of opaque white is returned, so contrast checks on un-backed text
// always have a defined backdrop.
func EffectiveBackground(n *Node) Color {
	depth := 0
	for p := n.Parent; p != nil && depth <= MaxTreeDepth; p = p.Parent {
		if c, ok := FirstSolidFill(p); ok {
			return c
		}
		depth++
	}
	return White
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
