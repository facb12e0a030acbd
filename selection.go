// Selection state.
//
// The editor tracks one selected page and any number of selected canvas
// nodes. Selection never affects the tree; the tree operations keep it
// pointing at nodes that exist (see Delete, Clone and SetHome).
package pagetree

import (
	"fmt"
	"slices"
)

// Selection is the currently selected page and canvas nodes.
type Selection struct {
	Page  string   `json:"page" yaml:"page"`
	Nodes []string `json:"nodes" yaml:"nodes"`
}

// Selection returns a copy of the current selection.
func (d *Document) Selection() Selection {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return Selection{Page: d.sel.Page, Nodes: slices.Clone(d.sel.Nodes)}
}

// SelectPage makes id the selected page.
func (d *Document) SelectPage(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.root.Find(id)
	if !ok {
		return fmt.Errorf("select %s: %w", id, ErrNotFound)
	}
	if l.Node.Kind != KindPage {
		return fmt.Errorf("select %s: %s is not a page: %w", id, l.Node.Kind, ErrInvalidTarget)
	}
	d.sel.Page = id
	return nil
}

// SelectNodes replaces the node selection. Every id must exist; otherwise
// the selection is left unchanged.
func (d *Document) SelectNodes(ids ...string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, id := range ids {
		if _, ok := d.root.Find(id); !ok {
			return fmt.Errorf("select %s: %w", id, ErrNotFound)
		}
	}
	nodes := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(nodes, id) {
			nodes = append(nodes, id)
		}
	}
	d.sel.Nodes = nodes
	return nil
}

// ClearSelection empties the node selection. The selected page stays.
func (d *Document) ClearSelection() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.sel.Nodes = nil
}

// deselect drops removed ids from the selection. The write lock must be
// held.
func (d *Document) deselect(removed map[string]bool) {
	if removed[d.sel.Page] {
		d.sel.Page = ""
		if h := d.home(); h != nil {
			d.sel.Page = h.ID
		}
	}
	d.sel.Nodes = slices.DeleteFunc(d.sel.Nodes, func(id string) bool {
		return removed[id]
	})
}
