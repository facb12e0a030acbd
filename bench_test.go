package pagetree

import (
	"strconv"
	"testing"
)

// benchDoc builds a document of top-level pages, each holding shapes.
func benchDoc(b *testing.B, pages, shapes int) *Document {
	b.Helper()
	d := New(Config{IDs: Sequence("b")})
	for range pages {
		p, _ := d.AddPage("")
		for range shapes {
			d.AddShape(p.ID)
		}
	}
	return d
}

func BenchmarkAddShape(b *testing.B) {
	d := New(Config{IDs: Sequence("b")})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.AddShape("b1")
	}
}

func BenchmarkFind(b *testing.B) {
	d := benchDoc(b, 20, 50)
	last := "b" + strconv.Itoa(d.Len())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Find(last)
	}
}

func BenchmarkFindByName(b *testing.B) {
	d := benchDoc(b, 20, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.FindByName("SHAPE")
	}
}

func BenchmarkClonePage(b *testing.B) {
	d := benchDoc(b, 1, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Clone("b2")
	}
}

func BenchmarkMarshal(b *testing.B) {
	d := benchDoc(b, 20, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Marshal(d)
	}
}
