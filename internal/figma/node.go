package figma

// NodeType is the concrete type string of a node in a design document,
// matching the values used by Figma-style JSON exports.
type NodeType string

const (
	NodeDocument     NodeType = "DOCUMENT"
	NodeCanvas       NodeType = "CANVAS"
	NodeFrame        NodeType = "FRAME"
	NodeGroup        NodeType = "GROUP"
	NodeSection      NodeType = "SECTION"
	NodeComponent    NodeType = "COMPONENT"
	NodeComponentSet NodeType = "COMPONENT_SET"
	NodeInstance     NodeType = "INSTANCE"
	NodeText         NodeType = "TEXT"
	NodeRectangle    NodeType = "RECTANGLE"
	NodeEllipse      NodeType = "ELLIPSE"
	NodeVector       NodeType = "VECTOR"
	NodeLine         NodeType = "LINE"
	NodeStar         NodeType = "STAR"
	NodePolygon      NodeType = "POLYGON"
	NodeBooleanOp    NodeType = "BOOLEAN_OPERATION"
	NodeSlice        NodeType = "SLICE"
)

// Kind is the coarse element class the audit rules dispatch on.
type Kind string

const (
	KindRoot      Kind = "root"
	KindContainer Kind = "container"
	KindGroup     Kind = "group"
	KindInstance  Kind = "instance"
	KindText      Kind = "text"
	KindShape     Kind = "shape"
	KindOther     Kind = "other"
)

// KindMap collapses concrete node types to coarse kinds.
var KindMap = map[NodeType]Kind{
	NodeDocument:     KindRoot,
	NodeCanvas:       KindRoot,
	NodeFrame:        KindContainer,
	NodeSection:      KindContainer,
	NodeGroup:        KindGroup,
	NodeComponent:    KindInstance,
	NodeComponentSet: KindInstance,
	NodeInstance:     KindInstance,
	NodeText:         KindText,
	NodeRectangle:    KindShape,
	NodeEllipse:      KindShape,
	NodeVector:       KindShape,
	NodeLine:         KindShape,
	NodeStar:         KindShape,
	NodePolygon:      KindShape,
	NodeBooleanOp:    KindShape,
}

// KindOf returns the coarse kind for a node type, KindOther when unknown.
func KindOf(t NodeType) Kind {
	if k, ok := KindMap[t]; ok {
		return k
	}
	return KindOther
}

// Color is an RGB triple with channels in [0,1]. Alpha is carried on the
// enclosing Paint, not here; contrast math reads only the channels.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// White is the document default background, used when no ancestor of a node
// carries a resolvable solid fill.
var White = Color{R: 1, G: 1, B: 1}

// PaintSolid is the paint type whose color the auditor interprets. Every
// other type (gradients, images) is opaque to the rules.
const PaintSolid = "SOLID"

// Paint is one fill entry attached to a node.
type Paint struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"` // nil means visible
	Opacity float64 `json:"opacity,omitempty"`
	Color   Color   `json:"color"`
}

// IsVisible reports whether the paint renders. The exported JSON omits the
// field for visible paints, so nil counts as visible.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// IsSolid reports whether the paint is a plain solid color.
func (p Paint) IsSolid() bool {
	return p.Type == PaintSolid
}

// Box is an axis-aligned bounding box in absolute document coordinates.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TypeStyle carries the text styling fields the audit rules read. FontSize
// is a pointer because a text node spanning several sizes exports the
// mixed-value sentinel (null) instead of a number.
type TypeStyle struct {
	FontFamily string   `json:"fontFamily,omitempty"`
	FontStyle  string   `json:"fontStyle,omitempty"`
	FontWeight float64  `json:"fontWeight,omitempty"`
	FontSize   *float64 `json:"fontSize,omitempty"`
}

// Reaction marks a prototype interaction attached to a node. The auditor
// only cares that at least one exists (the node is a tap target); the
// trigger and action types ride along for reporting.
type Reaction struct {
	Trigger string `json:"trigger,omitempty"`
	Action  string `json:"action,omitempty"`
}

// Node is one element of the document tree. Nodes are supplied by the host
// export and treated as read-only: rules never mutate them and never retain
// them past the end of an audit call.
type Node struct {
	ID        string     `json:"id"`
	Type      NodeType   `json:"type"`
	Name      string     `json:"name"`
	Visible   *bool      `json:"visible,omitempty"` // nil means visible
	Bounds    Box        `json:"absoluteBoundingBox"`
	Fills     []Paint    `json:"fills,omitempty"`
	Reactions []Reaction `json:"reactions,omitempty"`

	// Text-only fields.
	Characters string     `json:"characters,omitempty"`
	Style      *TypeStyle `json:"style,omitempty"`

	Children []*Node `json:"children,omitempty"`

	// Parent is wired during parsing and never serialized.
	Parent *Node `json:"-"`
}

// Kind returns the coarse kind of the node.
func (n *Node) Kind() Kind {
	return KindOf(n.Type)
}

// IsVisible reports whether the node renders.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// IsText reports whether the node is a text element.
func (n *Node) IsText() bool {
	return n.Type == NodeText
}

// FontSize returns the numeric font size and true, or 0 and false when the
// node is not text or carries the mixed-value sentinel.
func (n *Node) FontSize() (float64, bool) {
	if n.Style == nil || n.Style.FontSize == nil {
		return 0, false
	}
	return *n.Style.FontSize, true
}

// StyleSignature returns the "family/style/size" identity used by the
// type-variety heuristic. Mixed-size text contributes the literal "mixed"
// so two mixed runs collapse to one signature.
func (n *Node) StyleSignature() string {
	if n.Style == nil {
		return ""
	}
	size := "mixed"
	if n.Style.FontSize != nil {
		size = trimFloat(*n.Style.FontSize)
	}
	return n.Style.FontFamily + "/" + n.Style.FontStyle + "/" + size
}
