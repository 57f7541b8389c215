package methodmap

import "testing"

func newBenchAttached(b *testing.B) *Attached[string] {
	b.Helper()
	bp := New[string]()
	regs := []struct {
		key string
		fn  any
	}{
		{"a", containerFoo},
		{"b", containerBar},
		{"c", (*container).jugem},
		{"d", (*container).gokoo},
		{"e", containerSuri},
	}
	for _, reg := range regs {
		if err := Register[*container](bp, reg.key, reg.fn); err != nil {
			b.Fatalf("Register error: %v", err)
		}
	}
	a, err := Finalize[*container](bp)
	if err != nil {
		b.Fatalf("Finalize error: %v", err)
	}
	return a
}

func BenchmarkViewFor(b *testing.B) {
	a := newBenchAttached(b)
	c := &container{sampleInstAttrs: "inst sample"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.ViewFor(c); err != nil {
			b.Fatalf("ViewFor error: %v", err)
		}
	}
}

func BenchmarkView_boundCall(b *testing.B) {
	a := newBenchAttached(b)
	c := &container{sampleInstAttrs: "inst sample"}
	view, err := a.ViewFor(c)
	if err != nil {
		b.Fatalf("ViewFor error: %v", err)
	}
	fn, ok := view.Get("c")
	if !ok {
		b.Fatalf("missing key %q", "c")
	}
	jugem := fn.(func() string)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = jugem()
	}
}

func BenchmarkView_Call(b *testing.B) {
	a := newBenchAttached(b)
	view, err := a.ViewFor(&container{sampleInstAttrs: "inst sample"})
	if err != nil {
		b.Fatalf("ViewFor error: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := view.Call("a", "spam"); err != nil {
			b.Fatalf("Call error: %v", err)
		}
	}
}
