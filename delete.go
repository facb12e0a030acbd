// Node deletion.
//
// Delete removes a node's order entry and lookup entry from its containing
// index in one step, which drops the whole subtree with it. Deleting an
// absent id is a no-op, and so is deleting the home page or any node whose
// subtree contains it: the home page always survives.
//
// Selection is repaired for removed nodes only. A selected page inside the
// removed subtree falls back to the home page; selected nodes inside it are
// dropped. No nearby sibling is chosen.
package pagetree

// Delete removes the node with the given id and its subtree. It reports
// whether anything was removed: false means the id was absent or protected.
func (d *Document) Delete(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.root.Find(id)
	if !ok {
		d.log.Debug("delete skipped", "id", id, "err", ErrNotFound)
		return false
	}

	removed := map[string]bool{id: true}
	protected := l.Node.IsHome
	walk(l.Node.Children, l.Node, func(c Location) bool {
		removed[c.Node.ID] = true
		if c.Node.IsHome {
			protected = true
		}
		return true
	})
	if protected {
		d.log.Debug("delete skipped", "id", id, "err", ErrProtected)
		return false
	}

	l.Parent.remove(id)
	d.deselect(removed)

	d.log.Debug("delete", "id", id, "kind", l.Node.Kind, "parent", l.ParentID(), "nodes", len(removed))
	return true
}
