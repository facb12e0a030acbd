// In-place updates of non-identity fields.
//
// None of these touch ids, parent links or order. Each validates the target
// kind first and changes nothing on error.
package pagetree

import "fmt"

// Rename sets a node's name.
func (d *Document) Rename(id, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.root.Find(id)
	if !ok {
		return fmt.Errorf("rename %s: %w", id, ErrNotFound)
	}
	old := l.Node.Name
	l.Node.Name = name
	d.log.Debug("rename", "id", id, "from", old, "to", name)
	return nil
}

// SetGeometry sets the position and size of a page or shape. Folders carry
// no geometry and are rejected with ErrInvalidTarget.
func (d *Document) SetGeometry(id string, g Geometry) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.root.Find(id)
	if !ok {
		return fmt.Errorf("set geometry %s: %w", id, ErrNotFound)
	}
	if l.Node.Kind == KindFolder {
		return fmt.Errorf("set geometry %s: folder: %w", id, ErrInvalidTarget)
	}
	l.Node.setGeometry(g)
	d.log.Debug("set geometry", "id", id, "x", g.X, "y", g.Y, "width", g.Width, "height", g.Height)
	return nil
}

// SetScale sets a page's zoom factor, which must be positive.
func (d *Document) SetScale(id string, scale float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.root.Find(id)
	if !ok {
		return fmt.Errorf("set scale %s: %w", id, ErrNotFound)
	}
	if l.Node.Kind != KindPage {
		return fmt.Errorf("set scale %s: %s: %w", id, l.Node.Kind, ErrInvalidTarget)
	}
	if scale <= 0 {
		return fmt.Errorf("set scale %s: %v: %w", id, scale, ErrInvalidValue)
	}
	l.Node.Scale = scale
	d.log.Debug("set scale", "id", id, "scale", scale)
	return nil
}

// SetProperties replaces a shape's style record. The document keeps its own
// copy of p.
func (d *Document) SetProperties(id string, p Properties) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.root.Find(id)
	if !ok {
		return fmt.Errorf("set properties %s: %w", id, ErrNotFound)
	}
	if l.Node.Kind != KindShape {
		return fmt.Errorf("set properties %s: %s: %w", id, l.Node.Kind, ErrInvalidTarget)
	}
	l.Node.Properties = p.clone()
	d.log.Debug("set properties", "id", id)
	return nil
}
