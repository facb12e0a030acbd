// Whole-document enumeration.
//
// All and Outline walk the tree in pre-order, siblings in display order.
// Both hold the read lock for the duration of the range loop, so the loop
// body must not call Document mutators; break out first. Callers can break
// early to stop the walk.
package pagetree

import "iter"

// All yields every node in pre-order.
func (d *Document) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		d.mu.RLock()
		defer d.mu.RUnlock()

		walk(d.root, nil, func(l Location) bool {
			return yield(l.Node)
		})
	}
}

// Outline yields every node in pre-order with its depth; top-level nodes
// have depth 0.
func (d *Document) Outline() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		d.mu.RLock()
		defer d.mu.RUnlock()

		var visit func(x *Index, depth int) bool
		visit = func(x *Index, depth int) bool {
			if x == nil {
				return true
			}
			for _, id := range x.List {
				n := x.Detail[id]
				if n == nil {
					continue
				}
				if !yield(depth, n) || !visit(n.Children, depth+1) {
					return false
				}
			}
			return true
		}
		visit(d.root, 0)
	}
}
