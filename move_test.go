package pagetree

import (
	"errors"
	"slices"
	"testing"
)

func TestMoveReparents(t *testing.T) {
	d := newTestDoc(t)
	folder := mustAdd(t, d, KindFolder, "")
	page := mustAdd(t, d, KindPage, "")
	shape := mustAdd(t, d, KindShape, page.ID)

	if err := d.Move(page.ID, folder.ID, -1); err != nil {
		t.Fatalf("Move: %v", err)
	}
	l, _ := d.Locate(page.ID)
	if l.ParentID() != folder.ID || page.ParentID != folder.ID {
		t.Errorf("page owner = %q, ParentID = %q, want %q", l.ParentID(), page.ParentID, folder.ID)
	}
	if s, _ := d.Find(shape.ID); s.ParentID != page.ID {
		t.Errorf("shape ParentID = %q, want %q", s.ParentID, page.ID)
	}
	if _, ok := d.Root().Get(page.ID); ok {
		t.Error("page still at top level")
	}
	mustVerify(t, d)
}

func TestMoveReorders(t *testing.T) {
	d := newTestDoc(t)
	a := mustAdd(t, d, KindPage, "")
	b := mustAdd(t, d, KindPage, "")

	if err := d.Move(b.ID, "", 1); err != nil {
		t.Fatalf("Move: %v", err)
	}
	want := []string{"n1", b.ID, a.ID}
	if got := d.Root().IDs(); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	if err := d.Move(b.ID, "", 99); err != nil {
		t.Fatalf("Move: %v", err)
	}
	want = []string{"n1", a.ID, b.ID}
	if got := d.Root().IDs(); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	mustVerify(t, d)
}

func TestMoveRejected(t *testing.T) {
	d := newTestDoc(t)
	folder := mustAdd(t, d, KindFolder, "")
	sub := mustAdd(t, d, KindFolder, folder.ID)
	shape := mustAdd(t, d, KindShape, "n1")
	page := mustAdd(t, d, KindPage, "")

	tests := []struct {
		name   string
		id     string
		parent string
		want   error
	}{
		{"missing node", "missing", "", ErrNotFound},
		{"missing parent", page.ID, "missing", ErrNotFound},
		{"into itself", folder.ID, folder.ID, ErrInvalidTarget},
		{"into own subtree", folder.ID, sub.ID, ErrInvalidTarget},
		{"page into shape", page.ID, shape.ID, ErrInvalidTarget},
		{"home away from root", "n1", folder.ID, ErrProtected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := Marshal(d)
			if err := d.Move(tt.id, tt.parent, -1); !errors.Is(err, tt.want) {
				t.Fatalf("Move err = %v, want %v", err, tt.want)
			}
			after, _ := Marshal(d)
			if string(before) != string(after) {
				t.Error("rejected Move changed the document")
			}
		})
	}
}

func TestMoveHomeWithinRoot(t *testing.T) {
	d := newTestDoc(t)
	p := mustAdd(t, d, KindPage, "")

	if err := d.Move("n1", "", -1); err != nil {
		t.Fatalf("Move: %v", err)
	}
	want := []string{p.ID, "n1"}
	if got := d.Root().IDs(); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if l, _ := d.Locate("n1"); l.Owner != nil || !l.Node.IsHome {
		t.Errorf("home left the top level: owner %v", l.Owner)
	}

	// SetHome puts the home page back in front.
	if err := d.SetHome("n1"); err != nil {
		t.Fatalf("SetHome: %v", err)
	}
	want = []string{"n1", p.ID}
	if got := d.Root().IDs(); !slices.Equal(got, want) {
		t.Errorf("order after SetHome = %v, want %v", got, want)
	}
}
