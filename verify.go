// Structural verification.
//
// Verify walks a whole tree and reports every broken invariant it finds
// rather than stopping at the first, so a damaged snapshot can be diagnosed
// in one pass. Each problem wraps ErrCorruptTree (or ErrNoHome) and the
// results are joined with errors.Join.
package pagetree

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Verify checks a tree for id uniqueness, order/lookup agreement, parent
// links, kind containment, page scale and a single home page.
func Verify(root *Index) error {
	var errs []error
	seen := make(map[string]bool)
	homes := 0

	var check func(x *Index, owner *Node)
	check = func(x *Index, owner *Node) {
		if x == nil {
			return
		}
		for _, err := range shape(x) {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrCorruptTree, where(owner), err))
		}
		ownerKind, ownerID := Kind(""), ""
		if owner != nil {
			ownerKind, ownerID = owner.Kind, owner.ID
		}
		for _, id := range x.List {
			n := x.Detail[id]
			if n == nil || n.ID != id {
				continue // reported by shape
			}
			if seen[id] {
				errs = append(errs, fmt.Errorf("%w: duplicate id %s", ErrCorruptTree, id))
				continue
			}
			seen[id] = true

			if !n.Kind.Valid() {
				errs = append(errs, fmt.Errorf("%w: %s: unknown kind %q", ErrCorruptTree, id, n.Kind))
			} else if !ownerKind.Holds(n.Kind) {
				errs = append(errs, fmt.Errorf("%w: %s: %s inside %s", ErrCorruptTree, id, n.Kind, ownerName(ownerKind)))
			}
			if n.ParentID != ownerID {
				errs = append(errs, fmt.Errorf("%w: %s: parentId %q, held by %q", ErrCorruptTree, id, n.ParentID, ownerID))
			}
			if n.IsHome {
				if n.Kind != KindPage {
					errs = append(errs, fmt.Errorf("%w: %s: %s marked home", ErrCorruptTree, id, n.Kind))
				}
				homes++
			}
			if n.Kind == KindPage && n.Scale <= 0 {
				errs = append(errs, fmt.Errorf("%w: %s: scale %v", ErrCorruptTree, id, n.Scale))
			}
			check(n.Children, n)
		}
	}
	check(root, nil)

	switch {
	case homes == 0:
		errs = append(errs, ErrNoHome)
	case homes > 1:
		errs = append(errs, fmt.Errorf("%w: %d home pages", ErrCorruptTree, homes))
	}
	return errors.Join(errs...)
}

// shape checks that an index's order and lookup name the same nodes.
func shape(x *Index) []error {
	var errs []error
	listed := make(map[string]bool, len(x.List))
	for _, id := range x.List {
		if listed[id] {
			errs = append(errs, fmt.Errorf("id %s listed twice", id))
			continue
		}
		listed[id] = true
		n, ok := x.Detail[id]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("id %s listed without detail", id))
		case n == nil:
			errs = append(errs, fmt.Errorf("id %s has nil detail", id))
		case n.ID != id:
			errs = append(errs, fmt.Errorf("detail %s holds node %s", id, n.ID))
		}
	}
	for _, id := range slices.Sorted(maps.Keys(x.Detail)) {
		if !listed[id] {
			errs = append(errs, fmt.Errorf("detail %s not listed", id))
		}
	}
	return errs
}

func where(owner *Node) string {
	if owner == nil {
		return "root"
	}
	return owner.ID
}
