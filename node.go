// Node types for the document tree.
//
// Three kinds of node exist: pages, folders and shapes. They share one
// struct with a Kind tag rather than an interface per kind, because every
// kind carries the same identity fields and a Children index, and the
// snapshot shape is a single tagged record. Fields that do not apply to a
// kind are left at their zero value and omitted from JSON.
package pagetree

import "strings"

// Kind tags a node as a page, folder or shape.
type Kind string

// Node kinds. The string values are the snapshot "type" field.
const (
	KindPage   Kind = "page"
	KindFolder Kind = "folder"
	KindShape  Kind = "shape"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindPage, KindFolder, KindShape:
		return true
	}
	return false
}

// Holds reports whether a node of kind k may contain a child of kind c.
// The zero Kind stands for the document root.
func (k Kind) Holds(c Kind) bool {
	switch k {
	case "", KindPage, KindFolder:
		return c.Valid()
	case KindShape:
		return c == KindShape
	}
	return false
}

// Properties is the open style record of a shape. The named fields are the
// ones the editor knows about; Extra carries anything else verbatim.
type Properties struct {
	BackgroundColor string            `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	LineColor       string            `json:"lineColor,omitempty" yaml:"lineColor,omitempty"`
	LineThickness   float64           `json:"lineThickness,omitempty" yaml:"lineThickness,omitempty"`
	Extra           map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// clone returns a copy sharing no mutable state with p.
func (p *Properties) clone() *Properties {
	if p == nil {
		return nil
	}
	out := *p
	if p.Extra != nil {
		out.Extra = make(map[string]string, len(p.Extra))
		for k, v := range p.Extra {
			out.Extra[k] = v
		}
	}
	return &out
}

// Geometry is the position and size of a page or shape. The engine stores
// these values but never interprets them.
type Geometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Node is one element of the document tree.
type Node struct {
	ID       string `json:"id" yaml:"id"`
	Kind     Kind   `json:"type" yaml:"type"`
	Name     string `json:"name" yaml:"name"`
	ParentID string `json:"parentId" yaml:"parentId"` // empty at the root

	// Page only.
	IsHome bool    `json:"isHome,omitempty" yaml:"isHome,omitempty"`
	Scale  float64 `json:"scale,omitempty" yaml:"scale,omitempty"`

	// Pages and shapes.
	X      float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`

	// Shape only.
	Properties *Properties `json:"properties,omitempty" yaml:"properties,omitempty"`

	Children *Index `json:"children" yaml:"children"`
}

// Geometry returns the node's position and size.
func (n *Node) Geometry() Geometry {
	return Geometry{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// setGeometry overwrites the node's position and size.
func (n *Node) setGeometry(g Geometry) {
	n.X, n.Y, n.Width, n.Height = g.X, g.Y, g.Width, g.Height
}

// matches reports whether the node name contains the already lowercased
// query.
func (n *Node) matches(lower string) bool {
	return strings.Contains(strings.ToLower(n.Name), lower)
}

// ensure gives the node a usable Children index. Nodes decoded from JSON or
// built by callers may omit it, or pass a zero Index with no lookup map.
func (n *Node) ensure() {
	if n.Children == nil {
		n.Children = NewIndex()
		return
	}
	if n.Children.List == nil {
		n.Children.List = []string{}
	}
	if n.Children.Detail == nil {
		n.Children.Detail = make(map[string]*Node)
	}
}
