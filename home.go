// Home page promotion.
//
// SetHome is a structural move plus two flag changes: the old home is
// demoted (flag cleared, renamed), the target is lifted out of whatever
// index holds it and placed first in the root order, then marked home and
// renamed. All validation happens first, and the whole sequence runs under
// the write lock, so no reader ever sees zero or two home pages.
package pagetree

import "fmt"

// SetHome makes the page with the given id the home page and moves it to
// the front of the top level. Returns ErrNotFound for an unknown id and
// ErrInvalidTarget when the node is not a page. The new home is selected.
func (d *Document) SetHome(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.root.Find(id)
	if !ok {
		d.log.Debug("set home rejected", "id", id, "err", ErrNotFound)
		return fmt.Errorf("set home %s: %w", id, ErrNotFound)
	}
	target := l.Node
	if target.Kind != KindPage {
		d.log.Debug("set home rejected", "id", id, "kind", target.Kind, "err", ErrInvalidTarget)
		return fmt.Errorf("set home %s: %s is not a page: %w", id, target.Kind, ErrInvalidTarget)
	}

	old := d.home()
	if old != nil && old != target {
		old.IsHome = false
		old.Name = d.config.DemotedName
	}

	l.Parent.remove(id)
	d.root.insert(0, target)
	target.ParentID = ""
	target.IsHome = true
	target.Name = d.config.HomeName
	d.sel.Page = id

	var from string
	if old != nil {
		from = old.ID
	}
	d.log.Debug("set home", "id", id, "previous", from, "parent", l.ParentID())
	return nil
}
