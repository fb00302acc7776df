package figma

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Document is a parsed design file: the node tree plus an ID index.
type Document struct {
	Name string
	Root *Node

	byID map[string]*Node
}

// ParseDocument decodes a Figma-style JSON export ({"name": ..., "document":
// {...}}), wires parent pointers, and indexes nodes by ID. The returned
// document is ready for selection queries and audit traversal.
func ParseDocument(r io.Reader) (*Document, error) {
	var file struct {
		Name     string `json:"name"`
		Document *Node  `json:"document"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if file.Document == nil {
		return nil, fmt.Errorf("parse document: no document root")
	}

	d := &Document{
		Name: file.Name,
		Root: file.Document,
		byID: make(map[string]*Node),
	}
	if err := d.index(file.Document, nil, 0); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseDocumentFile is ParseDocument over a file on disk.
func ParseDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	d, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(baseName(path), ".json")
	}
	return d, nil
}

// index walks the tree once, wiring Parent pointers, checking IDs are
// present and unique, and rejecting non-finite geometry. Depth is bounded
// so a malformed (cyclic) export fails instead of recursing forever.
func (d *Document) index(n *Node, parent *Node, depth int) error {
	if depth > MaxTreeDepth {
		return fmt.Errorf("parse document: tree deeper than %d levels at node %q", MaxTreeDepth, n.ID)
	}
	if n.ID == "" {
		return fmt.Errorf("parse document: node %q has no id", n.Name)
	}
	if _, dup := d.byID[n.ID]; dup {
		return fmt.Errorf("parse document: duplicate node id %q", n.ID)
	}
	for _, v := range [4]float64{n.Bounds.X, n.Bounds.Y, n.Bounds.Width, n.Bounds.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("parse document: node %q has non-finite bounds", n.ID)
		}
	}

	d.byID[n.ID] = n
	n.Parent = parent
	for _, child := range n.Children {
		if child == nil {
			return fmt.Errorf("parse document: node %q has a null child", n.ID)
		}
		if err := d.index(child, n, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Node returns the node with the given ID, or nil.
func (d *Document) Node(id string) *Node {
	return d.byID[id]
}

// Len returns the number of nodes in the document.
func (d *Document) Len() int {
	return len(d.byID)
}

// Pages returns the document's canvas nodes in order.
func (d *Document) Pages() []*Node {
	var pages []*Node
	for _, child := range d.Root.Children {
		if child.Type == NodeCanvas {
			pages = append(pages, child)
		}
	}
	return pages
}

// Page returns the first page whose name matches (case-insensitive), or nil.
func (d *Document) Page(name string) *Node {
	for _, p := range d.Pages() {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// FindByName returns every node whose name contains the given text,
// case-insensitive, in tree order.
func (d *Document) FindByName(text string) []*Node {
	lower := strings.ToLower(text)
	return FindDescendants(d.Root, true, func(n *Node) bool {
		return strings.Contains(strings.ToLower(n.Name), lower)
	})
}

// FrameRoots returns the top-level auditable containers of a page: direct
// children that are valid audit roots.
func FrameRoots(page *Node) []*Node {
	var frames []*Node
	for _, child := range page.Children {
		if IsAuditRoot(child) {
			frames = append(frames, child)
		}
	}
	return frames
}

// IsAuditRoot reports whether a node may serve as the root of an audit:
// frame-like containers, groups, sections, and component variants. Text and
// shape nodes are analyzed as part of a subtree, never on their own.
func IsAuditRoot(n *Node) bool {
	switch n.Type {
	case NodeFrame, NodeGroup, NodeSection, NodeComponent, NodeComponentSet, NodeInstance:
		return true
	}
	return false
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
