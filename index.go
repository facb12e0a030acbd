// Sibling index for one level of the tree.
//
// List is the authoritative display order; Detail is the lookup. The two are
// always changed together by the helpers in this file and nowhere else, so
// every id in List has exactly one Detail entry and vice versa.
package pagetree

import "slices"

// Index is one level of siblings: ordered ids plus the nodes they name.
type Index struct {
	List   []string         `json:"list" yaml:"list"`
	Detail map[string]*Node `json:"detail" yaml:"detail"`
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{List: []string{}, Detail: make(map[string]*Node)}
}

// Len returns the number of direct children.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.List)
}

// Count returns the number of nodes at every depth below x.
func (x *Index) Count() int {
	n := 0
	walk(x, nil, func(Location) bool {
		n++
		return true
	})
	return n
}

// IDs returns a copy of the sibling order.
func (x *Index) IDs() []string {
	if x == nil {
		return nil
	}
	return slices.Clone(x.List)
}

// Get returns the direct child with the given id. It does not descend.
func (x *Index) Get(id string) (*Node, bool) {
	if x == nil {
		return nil, false
	}
	n, ok := x.Detail[id]
	return n, ok
}

// At returns the i-th child in display order.
func (x *Index) At(i int) (*Node, bool) {
	if x == nil || i < 0 || i >= len(x.List) {
		return nil, false
	}
	return x.Detail[x.List[i]], true
}

// position returns the order position of a direct child, or -1.
func (x *Index) position(id string) int {
	return slices.Index(x.List, id)
}

// insert places n at position at, clamped to the list bounds. A negative
// position appends.
func (x *Index) insert(at int, n *Node) {
	if at < 0 || at > len(x.List) {
		at = len(x.List)
	}
	x.List = slices.Insert(x.List, at, n.ID)
	x.Detail[n.ID] = n
}

// push appends n to the end of the order.
func (x *Index) push(n *Node) {
	x.insert(-1, n)
}

// remove drops a direct child from both order and lookup and returns it with
// the position it held.
func (x *Index) remove(id string) (*Node, int) {
	n, ok := x.Detail[id]
	if !ok {
		return nil, -1
	}
	pos := x.position(id)
	if pos >= 0 {
		x.List = slices.Delete(x.List, pos, pos+1)
	}
	delete(x.Detail, id)
	return n, pos
}

// copyIndex deep copies an index keeping every id. Used for snapshots;
// Clone in clone.go re-keys instead.
func copyIndex(x *Index) *Index {
	out := NewIndex()
	if x == nil {
		return out
	}
	out.List = slices.Clone(x.List)
	if out.List == nil {
		out.List = []string{}
	}
	for id, n := range x.Detail {
		out.Detail[id] = copyNode(n)
	}
	return out
}

// copyNode deep copies a node and its subtree keeping every id.
func copyNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	out := *n
	out.Properties = n.Properties.clone()
	out.Children = copyIndex(n.Children)
	return &out
}
