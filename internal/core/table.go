package core

import (
	"fmt"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/methodmap/binding"
	"github.com/ygrebnov/methodmap/errors"
)

// Table is a blueprint's backing table: key -> wrapped method. Keys are
// unique for the table's lifetime; an existing entry is never overwritten.
//
// Registration is a load-time, single-goroutine phase, so the table is not
// guarded. Once the owning type is attached the table is logically frozen
// and reads are safe from any goroutine.
type Table[K comparable] struct {
	entries map[K]*binding.Method
	keys    []K // insertion order, for deterministic diagnostics
}

func NewTable[K comparable]() *Table[K] {
	return &Table[K]{
		entries: make(map[K]*binding.Method),
	}
}

// Insert adds key -> method. A nil or zero-value table reports
// ErrUnusableBlueprint; an existing key reports ErrDuplicateKey and leaves
// the first registration intact.
func (t *Table[K]) Insert(key K, m *binding.Method) error {
	if t == nil || t.entries == nil {
		return errors.ErrUnusableBlueprint
	}
	if _, exists := t.entries[key]; exists {
		return errorc.With(
			errors.ErrDuplicateKey,
			errorc.String(errors.ErrorFieldKey, fmt.Sprint(key)),
		)
	}
	t.entries[key] = m
	t.keys = append(t.keys, key)
	return nil
}

// Get returns the method registered under key.
func (t *Table[K]) Get(key K) (*binding.Method, bool) {
	if t == nil {
		return nil, false
	}
	m, ok := t.entries[key]
	return m, ok
}

// Keys returns the registered keys in insertion order.
func (t *Table[K]) Keys() []K {
	if t == nil {
		return nil
	}
	keys := make([]K, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Len returns the number of registered entries.
func (t *Table[K]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Range calls fn for every entry in insertion order until fn returns false.
func (t *Table[K]) Range(fn func(key K, m *binding.Method) bool) {
	if t == nil {
		return
	}
	for _, key := range t.keys {
		if !fn(key, t.entries[key]) {
			return
		}
	}
}
