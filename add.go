// Node insertion.
//
// AddChild validates the whole incoming subtree before touching the
// document: kinds against the containment rules, ids against every id
// already present, index shape, page scale. If any check fails nothing is
// written. Only then is the node appended to the parent's order and lookup
// and its ParentID (and every descendant's) linked to its new owner.
package pagetree

import "fmt"

// AddChild appends n as the last child of parentID, or of the root when
// parentID is empty. n may carry a subtree. Returns ErrNotFound if the
// parent does not exist, ErrInvalidTarget if n (or anything below it) may
// not live there, and ErrIDCollision if any id in n is already in use.
func (d *Document) AddChild(parentID string, n *Node) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.addChild(parentID, n)
}

// AddPage creates a page with default geometry under parentID (root when
// empty) and returns it.
func (d *Document) AddPage(parentID string) (*Node, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.newPage()
	if err := d.addChild(parentID, n); err != nil {
		return nil, err
	}
	return n, nil
}

// AddFolder creates an empty folder under parentID and returns it.
func (d *Document) AddFolder(parentID string) (*Node, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.newFolder()
	if err := d.addChild(parentID, n); err != nil {
		return nil, err
	}
	return n, nil
}

// AddShape creates a shape with default size under parentID and returns it.
func (d *Document) AddShape(parentID string) (*Node, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.newShape()
	if err := d.addChild(parentID, n); err != nil {
		return nil, err
	}
	return n, nil
}

// addChild does the work of AddChild. The write lock must be held.
func (d *Document) addChild(parentID string, n *Node) error {
	target, owner, err := d.container(parentID)
	if err != nil {
		d.log.Debug("add rejected", "parent", parentID, "err", err)
		return err
	}

	if err := admit(n, owner, d.ids()); err != nil {
		d.log.Debug("add rejected", "parent", parentID, "err", err)
		return err
	}

	link(n, parentID)
	target.push(n)

	d.log.Debug("add", "id", n.ID, "kind", n.Kind, "parent", parentID)
	return nil
}

// container resolves a parent id to the index new children go into and the
// kind of its owner. The empty id is the root, whose kind is "".
func (d *Document) container(parentID string) (*Index, Kind, error) {
	if parentID == "" {
		return d.root, "", nil
	}
	l, ok := d.root.Find(parentID)
	if !ok {
		return nil, "", fmt.Errorf("parent %s: %w", parentID, ErrNotFound)
	}
	l.Node.ensure()
	return l.Node.Children, l.Node.Kind, nil
}

// ids collects every id in the document.
func (d *Document) ids() map[string]bool {
	seen := make(map[string]bool)
	walk(d.root, nil, func(l Location) bool {
		seen[l.Node.ID] = true
		return true
	})
	return seen
}

// admit checks that the subtree rooted at n may be placed under a node of
// kind owner in a document whose ids are in seen. seen is extended with the
// ids of n's subtree.
func admit(n *Node, owner Kind, seen map[string]bool) error {
	if n == nil {
		return fmt.Errorf("nil node: %w", ErrInvalidTarget)
	}
	if n.ID == "" {
		return fmt.Errorf("empty id: %w", ErrInvalidTarget)
	}
	if !n.Kind.Valid() {
		return fmt.Errorf("%s: kind %q: %w", n.ID, n.Kind, ErrInvalidTarget)
	}
	if !owner.Holds(n.Kind) {
		return fmt.Errorf("%s: %s inside %s: %w", n.ID, n.Kind, ownerName(owner), ErrInvalidTarget)
	}
	if n.IsHome {
		return fmt.Errorf("%s: second home page: %w", n.ID, ErrInvalidTarget)
	}
	if n.Kind == KindPage && n.Scale <= 0 {
		return fmt.Errorf("%s: scale %v: %w", n.ID, n.Scale, ErrInvalidValue)
	}
	if seen[n.ID] {
		return fmt.Errorf("%s: %w", n.ID, ErrIDCollision)
	}
	seen[n.ID] = true

	if n.Children == nil {
		return nil
	}
	if errs := shape(n.Children); len(errs) > 0 {
		return fmt.Errorf("%s: %v: %w", n.ID, errs[0], ErrInvalidTarget)
	}
	for _, id := range n.Children.List {
		if err := admit(n.Children.Detail[id], n.Kind, seen); err != nil {
			return err
		}
	}
	return nil
}

// link sets n's ParentID and rewrites the ParentID of every descendant to
// its direct owner. Missing Children indexes are created.
func link(n *Node, parentID string) {
	n.ParentID = parentID
	n.ensure()
	for _, id := range n.Children.List {
		link(n.Children.Detail[id], n.ID)
	}
}

func ownerName(k Kind) string {
	if k == "" {
		return "root"
	}
	return string(k)
}
