// Document handle and lifecycle.
//
// A Document owns the root index, the selection state and the id source.
// Every public operation takes the document lock for its whole duration:
// mutators take the write lock, lookups the read lock. The tree itself is
// plain data; the lock is what lets a document be shared between goroutines.
package pagetree

import (
	"io"
	"log/slog"
	"sync"
)

// Default names and sizes, taken from the editor's page store.
const (
	DefaultHomeName    = "home"
	DefaultDemotedName = "page"
	DefaultPageName    = "page"
	DefaultFolderName  = "folder"
	DefaultShapeName   = "shape"

	DefaultPageWidth   = 1980
	DefaultPageHeight  = 1020
	DefaultShapeWidth  = 100
	DefaultShapeHeight = 150
)

// Config holds document options. Zero values are replaced by defaults.
type Config struct {
	IDs    IDSource     // Fresh identifiers (default UUID v4)
	Logger *slog.Logger // Mutation log (default discards)

	HomeName    string // Name given to a page promoted to home
	DemotedName string // Name given to the previous home page
	PageName    string // Name of pages created by AddPage
	FolderName  string // Name of folders created by AddFolder
	ShapeName   string // Name of shapes created by AddShape

	PageSize  [2]float64 // Width, height of new pages
	ShapeSize [2]float64 // Width, height of new shapes
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.IDs == nil {
		c.IDs = UUID()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.HomeName == "" {
		c.HomeName = DefaultHomeName
	}
	if c.DemotedName == "" {
		c.DemotedName = DefaultDemotedName
	}
	if c.PageName == "" {
		c.PageName = DefaultPageName
	}
	if c.FolderName == "" {
		c.FolderName = DefaultFolderName
	}
	if c.ShapeName == "" {
		c.ShapeName = DefaultShapeName
	}
	if c.PageSize == [2]float64{} {
		c.PageSize = [2]float64{DefaultPageWidth, DefaultPageHeight}
	}
	if c.ShapeSize == [2]float64{} {
		c.ShapeSize = [2]float64{DefaultShapeWidth, DefaultShapeHeight}
	}
	return c
}

// Document is an editable tree of pages, folders and shapes.
type Document struct {
	root   *Index
	sel    Selection
	config Config
	log    *slog.Logger
	mu     sync.RWMutex
}

// New creates a document holding a single home page, which is selected.
func New(config Config) *Document {
	config = config.withDefaults()
	d := &Document{
		root:   NewIndex(),
		config: config,
		log:    config.Logger,
	}

	home := d.newPage()
	home.IsHome = true
	home.Name = config.HomeName
	d.root.push(home)
	d.sel.Page = home.ID

	d.log.Debug("document created", "home", home.ID)
	return d
}

// Home returns the home page.
func (d *Document) Home() *Node {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.home()
}

// home finds the home page. The lock must be held.
func (d *Document) home() *Node {
	var h *Node
	walk(d.root, nil, func(l Location) bool {
		if l.Node.Kind == KindPage && l.Node.IsHome {
			h = l.Node
			return false
		}
		return true
	})
	return h
}

// Root returns the top-level index. It is live; use Snapshot for a copy.
func (d *Document) Root() *Index {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.root
}

// Len returns the number of nodes in the document.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.root.Count()
}

// newPage builds a page with a fresh id and default geometry.
func (d *Document) newPage() *Node {
	return &Node{
		ID:       d.config.IDs.NewID(),
		Kind:     KindPage,
		Name:     d.config.PageName,
		Scale:    1,
		Width:    d.config.PageSize[0],
		Height:   d.config.PageSize[1],
		Children: NewIndex(),
	}
}

// newFolder builds an empty folder with a fresh id.
func (d *Document) newFolder() *Node {
	return &Node{
		ID:       d.config.IDs.NewID(),
		Kind:     KindFolder,
		Name:     d.config.FolderName,
		Children: NewIndex(),
	}
}

// newShape builds a shape with a fresh id, default size and no style.
func (d *Document) newShape() *Node {
	return &Node{
		ID:         d.config.IDs.NewID(),
		Kind:       KindShape,
		Name:       d.config.ShapeName,
		Width:      d.config.ShapeSize[0],
		Height:     d.config.ShapeSize[1],
		Properties: &Properties{},
		Children:   NewIndex(),
	}
}
