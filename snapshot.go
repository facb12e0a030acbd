// External data shape.
//
// A snapshot is a deep copy of the root index: the ordered top-level ids
// plus the id-to-node mapping, nested through each node's children. It is
// the only thing that leaves or enters the engine; persistence and
// transport are left to callers. JSON field names follow the editor's
// store (list, detail, type, parentId, ...).
package pagetree

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Snapshot returns a deep copy of the tree. Mutating it never affects the
// document.
func (d *Document) Snapshot() *Index {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return copyIndex(d.root)
}

// Restore builds a document from a snapshot. The snapshot is copied, so the
// caller may keep using it. Missing children indexes are filled in before
// Verify runs; any remaining problem is returned and no document is built.
// The home page is selected.
func Restore(root *Index, config Config) (*Document, error) {
	tree := copyIndex(root)
	walk(tree, nil, func(l Location) bool {
		l.Node.ensure()
		return true
	})
	if err := Verify(tree); err != nil {
		return nil, err
	}

	config = config.withDefaults()
	d := &Document{
		root:   tree,
		config: config,
		log:    config.Logger,
	}
	d.sel.Page = d.home().ID

	d.log.Debug("document restored", "home", d.sel.Page, "top", tree.Len())
	return d, nil
}

// Marshal encodes a document snapshot as JSON.
func Marshal(d *Document) ([]byte, error) {
	data, _, err := MarshalCount(d)
	return data, err
}

// MarshalCount is Marshal that also returns the number of nodes in the
// encoded snapshot. Both come from the same snapshot, so a concurrent
// writer cannot make them disagree.
func MarshalCount(d *Document) ([]byte, int, error) {
	root := d.Snapshot()
	data, err := json.Marshal(root)
	if err != nil {
		return nil, 0, err
	}
	return data, root.Count(), nil
}

// Unmarshal decodes a JSON snapshot and restores a document from it.
func Unmarshal(data []byte, config Config) (*Document, error) {
	var root Index
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTree, err)
	}
	return Restore(&root, config)
}
