// Package pagetree is the in-memory document model of a design editor: a
// tree of pages, folders and shapes held in nested ordered indexes.
//
// Every level of the tree is an Index: an ordered list of sibling ids plus a
// map from id to Node. Pages and folders hold pages, folders or shapes;
// shapes hold only shapes. Exactly one page is the home page. It always
// lives in the root index, where SetHome places it first, and can never be
// deleted. Move may reorder it among the top-level nodes.
//
// A Document owns the root index, the selection and the id source. All
// mutation goes through Document methods, which hold the document lock for
// the whole operation, so no caller can observe a half-applied change (for
// example two home pages during SetHome). Parents are recorded as plain ids,
// never pointers; the containing index is found by a root-down search.
package pagetree

import "errors"

// Sentinel errors for programmatic handling. Callers use errors.Is to
// separate expected outcomes (ErrNotFound, ErrProtected) from contract
// violations (ErrIDCollision) and damaged input (ErrCorruptTree).
var (
	ErrNotFound      = errors.New("node not found")
	ErrInvalidTarget = errors.New("invalid target for operation")
	ErrProtected     = errors.New("home page is protected")
	ErrIDCollision   = errors.New("identifier already in use")
	ErrInvalidValue  = errors.New("invalid value")
	ErrNoHome        = errors.New("document has no home page")
	ErrCorruptTree   = errors.New("corrupt tree")
)
