package figma

import "testing"

// tree wires parents for a handcrafted node, mirroring what ParseDocument
// does for real documents.
func tree(root *Node) *Node {
	var wire func(n *Node)
	wire = func(n *Node) {
		for _, c := range n.Children {
			c.Parent = n
			wire(c)
		}
	}
	wire(root)
	return root
}

func solid(r, g, b float64) Paint {
	return Paint{Type: PaintSolid, Color: Color{R: r, G: g, B: b}}
}

func TestFindDescendants_PreOrder(t *testing.T) {
	root := tree(&Node{ID: "root", Type: NodeFrame, Children: []*Node{
		{ID: "a", Type: NodeFrame, Children: []*Node{
			{ID: "a1", Type: NodeText},
			{ID: "a2", Type: NodeText},
		}},
		{ID: "b", Type: NodeText},
	}})

	texts := FindDescendants(root, true, func(n *Node) bool { return n.IsText() })
	want := []string{"a1", "a2", "b"}
	if len(texts) != len(want) {
		t.Fatalf("got %d text nodes, want %d", len(texts), len(want))
	}
	for i, id := range want {
		if texts[i].ID != id {
			t.Errorf("texts[%d] = %s, want %s", i, texts[i].ID, id)
		}
	}
}

func TestFindDescendants_IncludeRoot(t *testing.T) {
	root := tree(&Node{ID: "root", Type: NodeText})
	if got := FindDescendants(root, true, (*Node).IsText); len(got) != 1 {
		t.Errorf("includeRoot=true: got %d, want 1", len(got))
	}
	if got := FindDescendants(root, false, (*Node).IsText); len(got) != 0 {
		t.Errorf("includeRoot=false: got %d, want 0", len(got))
	}
}

func TestFirstSolidFill(t *testing.T) {
	hidden := false
	n := &Node{Fills: []Paint{
		{Type: "GRADIENT_LINEAR"},
		{Type: PaintSolid, Visible: &hidden, Color: Color{R: 1}},
		solid(0, 0.5, 1),
	}}
	c, ok := FirstSolidFill(n)
	if !ok {
		t.Fatal("expected a solid fill")
	}
	if c != (Color{R: 0, G: 0.5, B: 1}) {
		t.Errorf("got %v, want the first visible solid fill", c)
	}

	if _, ok := FirstSolidFill(&Node{}); ok {
		t.Error("node without fills should have no solid fill")
	}
}

func TestEffectiveBackground_NearestAncestorWins(t *testing.T) {
	text := &Node{ID: "t", Type: NodeText}
	root := tree(&Node{ID: "root", Type: NodeFrame, Fills: []Paint{solid(1, 0, 0)}, Children: []*Node{
		{ID: "card", Type: NodeFrame, Fills: []Paint{solid(0, 0, 1)}, Children: []*Node{text}},
	}})
	_ = root

	if got := EffectiveBackground(text); got != (Color{B: 1}) {
		t.Errorf("background = %v, want the card blue, not the root red", got)
	}
}

func TestEffectiveBackground_DefaultsToWhite(t *testing.T) {
	text := &Node{ID: "t", Type: NodeText}
	tree(&Node{ID: "root", Type: NodeFrame, Children: []*Node{
		{ID: "group", Type: NodeGroup, Children: []*Node{text}},
	}})

	if got := EffectiveBackground(text); got != White {
		t.Errorf("background = %v, want exactly white", got)
	}
}

func TestEffectiveBackground_IgnoresOwnFill(t *testing.T) {
	text := &Node{ID: "t", Type: NodeText, Fills: []Paint{solid(0, 0, 0)}}
	tree(&Node{ID: "root", Type: NodeFrame, Fills: []Paint{solid(0, 1, 0)}, Children: []*Node{text}})

	if got := EffectiveBackground(text); got != (Color{G: 1}) {
		t.Errorf("background = %v; the walk must start at the parent, not the node itself", got)
	}
}

func TestFindDescendants_CyclicTreeIsBounded(t *testing.T) {
	a := &Node{ID: "a", Type: NodeFrame}
	b := &Node{ID: "b", Type: NodeFrame}
	a.Children = []*Node{b}
	b.Children = []*Node{a} // malformed host input

	// Must terminate rather than overflow the stack.
	got := FindDescendants(a, false, func(*Node) bool { return true })
	if len(got) == 0 {
		t.Error("expected some nodes from the bounded walk")
	}
}
