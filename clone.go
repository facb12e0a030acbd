// Subtree cloning with fresh identities.
//
// Clone copies a node and everything below it, giving every copied node a
// new id from the document's IDSource and pointing every ParentID at the
// copied parent. The copy is built detached from the document, pre-order,
// with each child's lookup entry written alongside its order entry. It is
// attached only once complete, so a colliding id from the source aborts the
// clone with the document untouched.
package pagetree

import "fmt"

// Clone deep copies the node with the given id and appends the copy as the
// last sibling of the original. The copy is never the home page. Cloning a
// page selects the copy.
func (d *Document) Clone(id string) (*Node, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.root.Find(id)
	if !ok {
		d.log.Debug("clone rejected", "id", id, "err", ErrNotFound)
		return nil, fmt.Errorf("clone %s: %w", id, ErrNotFound)
	}

	c, err := rekey(l.Node, l.ParentID(), d.config.IDs, d.ids())
	if err != nil {
		d.log.Debug("clone rejected", "id", id, "err", err)
		return nil, fmt.Errorf("clone %s: %w", id, err)
	}

	l.Parent.push(c)
	if c.Kind == KindPage {
		d.sel.Page = c.ID
	}

	d.log.Debug("clone", "id", id, "clone", c.ID, "kind", c.Kind, "parent", c.ParentID)
	return c, nil
}

// rekey returns a deep copy of n in which every node has a fresh id from
// src. seen holds the ids already taken and is extended with the new ones.
func rekey(n *Node, parentID string, src IDSource, seen map[string]bool) (*Node, error) {
	id := src.NewID()
	if id == "" || seen[id] {
		return nil, fmt.Errorf("%q: %w", id, ErrIDCollision)
	}
	seen[id] = true

	out := *n
	out.ID = id
	out.ParentID = parentID
	out.IsHome = false
	out.Properties = n.Properties.clone()
	out.Children = NewIndex()

	if n.Children == nil {
		return &out, nil
	}
	for _, cid := range n.Children.List {
		child, ok := n.Children.Detail[cid]
		if !ok || child == nil {
			continue
		}
		c, err := rekey(child, id, src, seen)
		if err != nil {
			return nil, err
		}
		out.Children.push(c)
	}
	return &out, nil
}
