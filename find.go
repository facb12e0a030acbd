// Node lookup by id and by name.
//
// Both searches are depth-first and visit siblings in List order, so results
// are deterministic for a given tree. Absence is a normal outcome reported
// through the ok result, never an error.
//
// FindByName keeps scanning below a node that already matched: a page named
// "Shapes" containing a shape named "Shape1" yields both. Every matching node
// is reported exactly once, in pre-order.
package pagetree

import "strings"

// Location is the result of an id lookup: the node itself, the index that
// directly holds it, and the node owning that index (nil at the root).
type Location struct {
	Node   *Node
	Parent *Index
	Owner  *Node
}

// ParentID returns the id of the owning node, or "" at the root.
func (l Location) ParentID() string {
	if l.Owner == nil {
		return ""
	}
	return l.Owner.ID
}

// walk visits every node below x in pre-order. fn returns false to stop the
// walk; walk reports whether it ran to completion.
func walk(x *Index, owner *Node, fn func(Location) bool) bool {
	if x == nil {
		return true
	}
	for _, id := range x.List {
		n := x.Detail[id]
		if n == nil {
			continue
		}
		if !fn(Location{Node: n, Parent: x, Owner: owner}) {
			return false
		}
		if !walk(n.Children, n, fn) {
			return false
		}
	}
	return true
}

// Find searches the subtree below x for id.
func (x *Index) Find(id string) (Location, bool) {
	var found Location
	ok := false
	walk(x, nil, func(l Location) bool {
		if l.Node.ID == id {
			found, ok = l, true
			return false
		}
		return true
	})
	return found, ok
}

// FindByName returns every node below x whose name contains query,
// ignoring case, in pre-order.
func (x *Index) FindByName(query string) []*Node {
	lower := strings.ToLower(query)
	var out []*Node
	walk(x, nil, func(l Location) bool {
		if l.Node.matches(lower) {
			out = append(out, l.Node)
		}
		return true
	})
	return out
}

// path returns the ids from the root down to id, inclusive.
func path(x *Index, id string) ([]string, bool) {
	for _, cid := range x.List {
		n := x.Detail[cid]
		if n == nil {
			continue
		}
		if n.ID == id {
			return []string{id}, true
		}
		if p, ok := path(n.Children, id); ok {
			return append([]string{n.ID}, p...), true
		}
	}
	return nil, false
}

// Find returns the node with the given id. The node is live: mutate it only
// through Document methods when the document is shared between goroutines.
func (d *Document) Find(id string) (*Node, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	l, ok := d.root.Find(id)
	return l.Node, ok
}

// Locate returns the node with the given id together with its containing
// index and owner.
func (d *Document) Locate(id string) (Location, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.root.Find(id)
}

// FindByName returns every node whose name contains query, ignoring case,
// in pre-order.
func (d *Document) FindByName(query string) []*Node {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.root.FindByName(query)
}

// Path returns the ids from the top-level ancestor down to id.
func (d *Document) Path(id string) ([]string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return path(d.root, id)
}
