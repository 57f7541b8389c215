package methodmap

import (
	"reflect"
	"testing"
)

// container mirrors an owning type publishing methods of all three binding
// kinds through one blueprint.
type container struct {
	sampleInstAttrs string
	maps            View[string]
}

// containerClassAttrs emulates type-level state readable by type-bound methods.
var containerClassAttrs = map[reflect.Type]string{
	reflect.TypeOf((*container)(nil)): "cls sample",
}

func containerFoo(additional string) string { return additional + "_foo" }
func containerBar(additional string) string { return additional + "_bar" }

func (c *container) jugem() string {
	return c.sampleInstAttrs + ", " + containerClassAttrs[reflect.TypeOf(c)]
}

func (c *container) gokoo() string { return "gokoo" }

func containerSuri(t reflect.Type) string { return containerClassAttrs[t] }

// otherContainer is a second, distinct owning type for ownership tests.
type otherContainer struct{}

func (c *otherContainer) baz(additional string) string { return additional + "_baz" }

func newContainer(t *testing.T, a *Attached[string]) *container {
	t.Helper()
	c := &container{sampleInstAttrs: "inst sample"}
	view, err := a.ViewFor(c)
	if err != nil {
		t.Fatalf("ViewFor error: %v", err)
	}
	c.maps = view
	return c
}

// newSampleBlueprint registers the five sample methods on a fresh blueprint.
func newSampleBlueprint(t *testing.T) *Blueprint[string] {
	t.Helper()
	b := New[string](WithName[string]("SampleMapper"))
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
		if err := Register[*container](b, reg.key, reg.fn); err != nil {
			t.Fatalf("Register(%q) error: %v", reg.key, err)
		}
	}
	return b
}
