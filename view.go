package methodmap

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/methodmap/errors"
)

// View is a read-only key -> bound-callable map produced for one receiver.
// It is a snapshot: it does not observe later registrations, and it exposes
// no mutating operations.
type View[K comparable] struct {
	entries map[K]any
	keys    []K
}

// Get returns the bound callable registered under key.
func (v View[K]) Get(key K) (any, bool) {
	fn, ok := v.entries[key]
	return fn, ok
}

// Len returns the number of entries.
func (v View[K]) Len() int {
	return len(v.entries)
}

// Keys returns the keys in registration order.
func (v View[K]) Keys() []K {
	keys := make([]K, len(v.keys))
	copy(keys, v.keys)
	return keys
}

// Filter returns a sub-view containing only the given keys. Keys absent from
// the view are ignored. The blueprint is agnostic to this filtering; owning
// types layer it on top of ViewFor to expose disjoint registries populated
// through separate registration entry points.
func (v View[K]) Filter(keys ...K) View[K] {
	wanted := make(map[K]struct{}, len(keys))
	for _, key := range keys {
		wanted[key] = struct{}{}
	}
	entries := make(map[K]any, len(keys))
	ordered := make([]K, 0, len(keys))
	for _, key := range v.keys {
		if _, ok := wanted[key]; !ok {
			continue
		}
		entries[key] = v.entries[key]
		ordered = append(ordered, key)
	}
	return View[K]{entries: entries, keys: ordered}
}

// Call invokes the callable registered under key with the given arguments
// and returns its results. It is a convenience over Get for callers that do
// not want to type-assert the callable themselves.
func (v View[K]) Call(key K, args ...any) ([]any, error) {
	fn, ok := v.entries[key]
	if !ok {
		return nil, errorc.With(
			errors.ErrKeyNotFound,
			errorc.String(errors.ErrorFieldKey, fmt.Sprint(key)),
		)
	}

	fv := reflect.ValueOf(fn)
	ft := fv.Type()

	if ft.IsVariadic() {
		if len(args) < ft.NumIn()-1 {
			return nil, argumentMismatch(key, ft, len(args))
		}
	} else if len(args) != ft.NumIn() {
		return nil, argumentMismatch(key, ft, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := paramType(ft, i)
		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			return nil, argumentMismatch(key, ft, len(args))
		}
		in[i] = av
	}

	out := fv.Call(in)
	results := make([]any, len(out))
	for i, r := range out {
		results[i] = r.Interface()
	}
	return results, nil
}

func argumentMismatch[K comparable](key K, ft reflect.Type, got int) error {
	return errorc.With(
		errors.ErrArgumentMismatch,
		errorc.String(errors.ErrorFieldKey, fmt.Sprint(key)),
		errorc.String(errors.ErrorFieldMethodType, ft.String()),
		errorc.String(errors.ErrorFieldArguments, fmt.Sprint(got)),
	)
}

// paramType returns the effective parameter type at position i, unrolling
// the variadic tail.
func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}
