package methodmap

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/methodmap/binding"
	"github.com/ygrebnov/methodmap/errors"
	"github.com/ygrebnov/methodmap/internal/core"
)

// Attached is the handle produced by attaching a blueprint to its owning
// type. It is the only value able to build views, so no view can exist
// before the ownership check has passed.
type Attached[K comparable] struct {
	name  string
	owner reflect.Type
	table *core.Table[K]
}

// Attach claims the blueprint for the given owning type and returns the view
// handle. The first distinct type claims the blueprint; attaching the same
// type again returns an equivalent handle; a second distinct type fails with
// ErrMultipleOwners naming the blueprint.
//
// Every registered entry's signature is checked against the owner here, so a
// misregistered method surfaces at type-assembly time, before any instance
// exists.
func (b *Blueprint[K]) Attach(owner reflect.Type) (*Attached[K], error) {
	if b == nil || b.table == nil {
		return nil, errors.ErrUnusableBlueprint
	}
	if err := b.guard.Claim(b.Name(), owner); err != nil {
		return nil, err
	}

	var bad error
	b.table.Range(func(key K, m *binding.Method) bool {
		if !m.ReceiverCompatible(owner) {
			bad = errorc.With(
				errors.ErrReceiverMismatch,
				errorc.String(errors.ErrorFieldBlueprint, b.Name()),
				errorc.String(errors.ErrorFieldKey, fmt.Sprint(key)),
				errorc.String(errors.ErrorFieldOwnerType, owner.String()),
				errorc.String(errors.ErrorFieldMethodType, m.Type().String()),
			)
			return false
		}
		return true
	})
	if bad != nil {
		return nil, bad
	}

	if b.logger != nil {
		b.logger.Debug("attaching blueprint",
			"blueprint", b.Name(),
			"owner", owner.String(),
			"entries", b.table.Len(),
		)
	}

	return &Attached[K]{name: b.Name(), owner: owner, table: b.table}, nil
}

// Finalize attaches the blueprint to the owning type C. C is the receiver
// type exactly as the owning type's methods declare it.
func Finalize[C any, K comparable](b *Blueprint[K]) (*Attached[K], error) {
	return b.Attach(ownerType[C]())
}

// MustFinalize is Finalize, panicking on error. Intended for init functions.
func MustFinalize[C any, K comparable](b *Blueprint[K]) *Attached[K] {
	a, err := Finalize[C](b)
	if err != nil {
		panic(err)
	}
	return a
}

// Owner returns the owning type the blueprint was attached to.
func (a *Attached[K]) Owner() reflect.Type {
	return a.owner
}

// Keys returns the registered keys in registration order.
func (a *Attached[K]) Keys() []K {
	return a.table.Keys()
}

// ViewFor binds every registered entry to receiver and returns the frozen
// view. Calling it repeatedly for the same receiver yields independently
// allocated, value-identical views; no caching is performed. Safe to call
// concurrently once attachment has completed.
func (a *Attached[K]) ViewFor(receiver any) (View[K], error) {
	if receiver == nil {
		return View[K]{}, errorc.With(
			errors.ErrNilReceiver,
			errorc.String(errors.ErrorFieldBlueprint, a.name),
		)
	}
	rt := reflect.TypeOf(receiver)
	if !rt.AssignableTo(a.owner) {
		return View[K]{}, errorc.With(
			errors.ErrReceiverMismatch,
			errorc.String(errors.ErrorFieldBlueprint, a.name),
			errorc.String(errors.ErrorFieldReceiverType, rt.String()),
			errorc.String(errors.ErrorFieldOwnerType, a.owner.String()),
		)
	}

	entries := make(map[K]any, a.table.Len())
	var bindErr error
	a.table.Range(func(key K, m *binding.Method) bool {
		bound, err := m.Bind(receiver)
		if err != nil {
			bindErr = err
			return false
		}
		entries[key] = bound
		return true
	})
	if bindErr != nil {
		return View[K]{}, bindErr
	}

	return View[K]{entries: entries, keys: a.table.Keys()}, nil
}
