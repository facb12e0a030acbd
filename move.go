// Reparenting and reordering.
package pagetree

import "fmt"

// Move detaches the node with the given id and inserts it under parentID
// (the root when empty) at position at. Positions past the end, and negative
// ones, append. Moving within the same index reorders. A node cannot move
// into its own subtree, and the home page cannot leave the top level.
func (d *Document) Move(id, parentID string, at int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.move(id, parentID, at); err != nil {
		d.log.Debug("move rejected", "id", id, "parent", parentID, "err", err)
		return fmt.Errorf("move %s: %w", id, err)
	}
	d.log.Debug("move", "id", id, "parent", parentID, "at", at)
	return nil
}

func (d *Document) move(id, parentID string, at int) error {
	l, ok := d.root.Find(id)
	if !ok {
		return ErrNotFound
	}
	n := l.Node

	if parentID == id {
		return fmt.Errorf("into itself: %w", ErrInvalidTarget)
	}
	if parentID != "" {
		if _, inside := n.Children.Find(parentID); inside {
			return fmt.Errorf("into own subtree: %w", ErrInvalidTarget)
		}
	}
	target, owner, err := d.container(parentID)
	if err != nil {
		return err
	}
	if !owner.Holds(n.Kind) {
		return fmt.Errorf("%s inside %s: %w", n.Kind, ownerName(owner), ErrInvalidTarget)
	}
	if n.IsHome && parentID != "" {
		return ErrProtected
	}

	l.Parent.remove(id)
	target.insert(at, n)
	n.ParentID = parentID
	return nil
}
