package pagetree

import (
	"errors"
	"testing"
)

func TestAddChildAppendsAndLinks(t *testing.T) {
	d := newTestDoc(t)
	page := mustAdd(t, d, KindPage, "")

	n := &Node{ID: "custom", Kind: KindShape, Name: "box"}
	if err := d.AddChild(page.ID, n); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	got, ok := d.Find("custom")
	if !ok {
		t.Fatal("Find after AddChild: not found")
	}
	if got.ParentID != page.ID {
		t.Errorf("ParentID = %q, want %q", got.ParentID, page.ID)
	}
	if got.Children == nil {
		t.Error("Children not initialised")
	}
	if ids := page.Children.IDs(); len(ids) != 1 || ids[0] != "custom" {
		t.Errorf("page children = %v, want [custom]", ids)
	}
	mustVerify(t, d)
}

func TestAddChildOrder(t *testing.T) {
	d := newTestDoc(t)
	a := mustAdd(t, d, KindPage, "")
	b := mustAdd(t, d, KindFolder, "")
	c := mustAdd(t, d, KindShape, "")

	want := []string{"n1", a.ID, b.ID, c.ID}
	got := d.Root().IDs()
	if len(got) != len(want) {
		t.Fatalf("root order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("root[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestAddChildRelinksSubtree(t *testing.T) {
	d := newTestDoc(t)

	inner := &Node{ID: "s2", Kind: KindShape, ParentID: "stale"}
	outer := &Node{ID: "s1", Kind: KindShape, ParentID: "stale", Children: NewIndex()}
	outer.Children.push(inner)

	if err := d.AddChild("n1", outer); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if outer.ParentID != "n1" {
		t.Errorf("outer ParentID = %q, want n1", outer.ParentID)
	}
	if inner.ParentID != "s1" {
		t.Errorf("inner ParentID = %q, want s1", inner.ParentID)
	}
	mustVerify(t, d)
}

func TestAddChildErrors(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		node   func() *Node
		want   error
	}{
		{"missing parent", "nope", func() *Node { return &Node{ID: "a", Kind: KindShape} }, ErrNotFound},
		{"nil node", "", func() *Node { return nil }, ErrInvalidTarget},
		{"empty id", "", func() *Node { return &Node{Kind: KindFolder} }, ErrInvalidTarget},
		{"unknown kind", "", func() *Node { return &Node{ID: "a", Kind: "layer"} }, ErrInvalidTarget},
		{"page in shape", "s", func() *Node { return &Node{ID: "a", Kind: KindPage, Scale: 1} }, ErrInvalidTarget},
		{"folder in shape", "s", func() *Node { return &Node{ID: "a", Kind: KindFolder} }, ErrInvalidTarget},
		{"second home", "", func() *Node { return &Node{ID: "a", Kind: KindPage, Scale: 1, IsHome: true} }, ErrInvalidTarget},
		{"zero scale", "", func() *Node { return &Node{ID: "a", Kind: KindPage} }, ErrInvalidValue},
		{"existing id", "", func() *Node { return &Node{ID: "n1", Kind: KindFolder} }, ErrIDCollision},
		{"existing nested id", "", func() *Node { return &Node{ID: "s", Kind: KindShape} }, ErrIDCollision},
		{"repeated inside subtree", "", func() *Node {
			n := &Node{ID: "a", Kind: KindFolder, Children: NewIndex()}
			n.Children.push(&Node{ID: "a", Kind: KindShape})
			return n
		}, ErrIDCollision},
		{"bad index shape", "", func() *Node {
			n := &Node{ID: "a", Kind: KindFolder, Children: NewIndex()}
			n.Children.List = append(n.Children.List, "ghost")
			return n
		}, ErrInvalidTarget},
		{"page under shape in subtree", "", func() *Node {
			n := &Node{ID: "a", Kind: KindShape, Children: NewIndex()}
			n.Children.push(&Node{ID: "b", Kind: KindPage, Scale: 1})
			return n
		}, ErrInvalidTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDoc(t)
			if err := d.AddChild("n1", &Node{ID: "s", Kind: KindShape}); err != nil {
				t.Fatalf("setup: %v", err)
			}
			before := d.Len()

			err := d.AddChild(tt.parent, tt.node())
			if !errors.Is(err, tt.want) {
				t.Fatalf("AddChild err = %v, want %v", err, tt.want)
			}
			if d.Len() != before {
				t.Errorf("Len = %d after failed add, want %d", d.Len(), before)
			}
			mustVerify(t, d)
		})
	}
}

func TestAddWithCollidingSource(t *testing.T) {
	d := New(Config{IDs: IDFunc(func() string { return "same" })})

	_, err := d.AddPage("")
	if !errors.Is(err, ErrIDCollision) {
		t.Fatalf("AddPage err = %v, want ErrIDCollision", err)
	}
	if d.Len() != 1 {
		t.Errorf("Len = %d, want 1", d.Len())
	}
}

func TestAddKinds(t *testing.T) {
	d := newTestDoc(t)
	folder := mustAdd(t, d, KindFolder, "")
	page := mustAdd(t, d, KindPage, folder.ID)
	sub := mustAdd(t, d, KindFolder, page.ID)
	shape := mustAdd(t, d, KindShape, sub.ID)
	mustAdd(t, d, KindShape, shape.ID)

	if _, err := d.AddFolder(shape.ID); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("AddFolder under shape err = %v, want ErrInvalidTarget", err)
	}
	if _, err := d.AddPage(shape.ID); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("AddPage under shape err = %v, want ErrInvalidTarget", err)
	}
	if shape.Properties == nil {
		t.Error("new shape has nil Properties")
	}
	mustVerify(t, d)
}

// TestAddChildZeroIndex adds nodes carrying a zero Index, with no lookup
// map, and checks that children can be added beneath them afterwards.
func TestAddChildZeroIndex(t *testing.T) {
	d := newTestDoc(t)
	f := &Node{ID: "f", Kind: KindFolder, Children: &Index{}}
	p := &Node{ID: "p", Kind: KindPage, Scale: 1, Children: &Index{List: []string{}}}

	if err := d.AddChild("", f); err != nil {
		t.Fatalf("AddChild(folder): %v", err)
	}
	if err := d.AddChild(f.ID, p); err != nil {
		t.Fatalf("AddChild(page): %v", err)
	}
	s := mustAdd(t, d, KindShape, p.ID)
	mustAdd(t, d, KindFolder, f.ID)

	if _, err := d.Clone(f.ID); err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if err := d.Move(s.ID, f.ID, 0); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if got := f.Children.Len(); got != 3 {
		t.Errorf("folder holds %d children, want 3", got)
	}
	mustVerify(t, d)
}
