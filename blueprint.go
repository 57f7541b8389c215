package methodmap

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/ygrebnov/methodmap/binding"
	"github.com/ygrebnov/methodmap/constants"
	"github.com/ygrebnov/methodmap/errors"
	"github.com/ygrebnov/methodmap/internal/core"
)

// Blueprint is a per-owning-type registry definition. It collects key->method
// registrations while the owning type is being assembled and is later
// attached to exactly one owning type, after which instances of that type can
// request frozen views of the table.
//
// Registration and attachment are load-time, single-goroutine phases; the
// blueprint is not internally guarded. View production after attachment is
// read-only and safe for concurrent use.
type Blueprint[K comparable] struct {
	name   string
	logger *slog.Logger
	table  *core.Table[K]
	guard  core.OwnerGuard
}

// New creates an empty blueprint. A zero-value Blueprint has no backing
// table; registering against it fails with ErrUnusableBlueprint.
func New[K comparable](opts ...Option[K]) *Blueprint[K] {
	b := &Blueprint[K]{table: core.NewTable[K]()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the blueprint's configured name, or a namespace default.
func (b *Blueprint[K]) Name() string {
	if b == nil || b.name == "" {
		return constants.Namespace + ".Blueprint"
	}
	return b.name
}

// Register wraps fn with the inferred binding kind of the owning type C and
// stores it under key. C is the receiver type exactly as the owning type's
// methods declare it. The callable itself is not altered; the owning type
// keeps using it as a normal method.
func Register[C any, K comparable](b *Blueprint[K], key K, fn any) error {
	owner := ownerType[C]()
	kind := binding.Classify(reflect.TypeOf(fn), owner)
	return b.RegisterKind(key, fn, kind)
}

// MustRegister is Register, panicking on error. Intended for package-level
// var blocks and init functions.
func MustRegister[C any, K comparable](b *Blueprint[K], key K, fn any) {
	if err := Register[C](b, key, fn); err != nil {
		panic(err)
	}
}

// RegisterKind stores fn under key with an explicitly stated binding kind.
func (b *Blueprint[K]) RegisterKind(key K, fn any, kind binding.Kind) error {
	if b == nil || b.table == nil {
		return errors.ErrUnusableBlueprint
	}
	m, err := binding.Wrap(fn, kind)
	if err != nil {
		return err
	}
	if err = b.table.Insert(key, m); err != nil {
		return err
	}
	if b.logger != nil {
		b.logger.Debug("registering method",
			"blueprint", b.Name(),
			"key", fmt.Sprint(key),
			"kind", kind.String(),
		)
	}
	return nil
}

// MustRegisterKind is RegisterKind, panicking on error.
func (b *Blueprint[K]) MustRegisterKind(key K, fn any, kind binding.Kind) {
	if err := b.RegisterKind(key, fn, kind); err != nil {
		panic(err)
	}
}

// Len returns the number of registered entries.
func (b *Blueprint[K]) Len() int {
	if b == nil {
		return 0
	}
	return b.table.Len()
}

// Keys returns the registered keys in registration order.
func (b *Blueprint[K]) Keys() []K {
	if b == nil {
		return nil
	}
	return b.table.Keys()
}

// ownerType captures the reflect.Type of C without instantiating it. The
// zero value of *C is never dereferenced.
func ownerType[C any]() reflect.Type {
	return reflect.TypeOf((*C)(nil)).Elem()
}
