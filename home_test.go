package pagetree

import (
	"errors"
	"testing"
)

func TestSetHomePromotesNestedPage(t *testing.T) {
	d := newTestDoc(t)
	folder := mustAdd(t, d, KindFolder, "")
	page := mustAdd(t, d, KindPage, folder.ID)
	shape := mustAdd(t, d, KindShape, page.ID)

	if err := d.SetHome(page.ID); err != nil {
		t.Fatalf("SetHome: %v", err)
	}

	if first, _ := d.Root().At(0); first.ID != page.ID {
		t.Errorf("root[0] = %s, want %s", first.ID, page.ID)
	}
	if page.ParentID != "" {
		t.Errorf("ParentID = %q, want empty", page.ParentID)
	}
	if folder.Children.Len() != 0 {
		t.Errorf("folder still holds %v", folder.Children.IDs())
	}
	if page.Name != DefaultHomeName || !page.IsHome {
		t.Errorf("new home = %q home=%v", page.Name, page.IsHome)
	}
	old, _ := d.Find("n1")
	if old.IsHome || old.Name != DefaultDemotedName {
		t.Errorf("old home = %q home=%v", old.Name, old.IsHome)
	}
	if s, ok := d.Find(shape.ID); !ok || s.ParentID != page.ID {
		t.Errorf("shape moved incorrectly: %+v", s)
	}
	if d.Home() != page {
		t.Error("Home() is not the promoted page")
	}
	if got := d.Selection().Page; got != page.ID {
		t.Errorf("selected page = %q, want %q", got, page.ID)
	}
	mustVerify(t, d)
}

func TestSetHomeExactlyOneHome(t *testing.T) {
	d := newTestDoc(t)
	var pages []*Node
	for range 5 {
		pages = append(pages, mustAdd(t, d, KindPage, ""))
	}

	for _, p := range pages {
		if err := d.SetHome(p.ID); err != nil {
			t.Fatalf("SetHome(%s): %v", p.ID, err)
		}
		homes := 0
		for n := range d.All() {
			if n.IsHome {
				homes++
			}
		}
		if homes != 1 {
			t.Fatalf("after SetHome(%s): %d homes", p.ID, homes)
		}
	}
	mustVerify(t, d)
}

func TestSetHomeAlreadyHome(t *testing.T) {
	d := newTestDoc(t)
	mustAdd(t, d, KindPage, "")

	if err := d.SetHome("n1"); err != nil {
		t.Fatalf("SetHome: %v", err)
	}
	home := d.Home()
	if home.ID != "n1" || home.Name != DefaultHomeName {
		t.Errorf("home = %s %q", home.ID, home.Name)
	}
	if d.Root().Len() != 2 {
		t.Errorf("root len = %d, want 2", d.Root().Len())
	}
	mustVerify(t, d)
}

func TestSetHomeRejected(t *testing.T) {
	d := newTestDoc(t)
	folder := mustAdd(t, d, KindFolder, "")
	shape := mustAdd(t, d, KindShape, "n1")

	tests := []struct {
		name string
		id   string
		want error
	}{
		{"missing", "missing", ErrNotFound},
		{"folder", folder.ID, ErrInvalidTarget},
		{"shape", shape.ID, ErrInvalidTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := Marshal(d)
			if err := d.SetHome(tt.id); !errors.Is(err, tt.want) {
				t.Fatalf("SetHome err = %v, want %v", err, tt.want)
			}
			after, _ := Marshal(d)
			if string(before) != string(after) {
				t.Error("rejected SetHome changed the document")
			}
		})
	}
}

func TestSetHomeCustomNames(t *testing.T) {
	d := New(Config{IDs: Sequence("n"), HomeName: "Main", DemotedName: "Old"})
	p := mustAdd(t, d, KindPage, "")

	d.SetHome(p.ID)

	if p.Name != "Main" {
		t.Errorf("new home name = %q, want Main", p.Name)
	}
	old, _ := d.Find("n1")
	if old.Name != "Old" {
		t.Errorf("old home name = %q, want Old", old.Name)
	}
}
