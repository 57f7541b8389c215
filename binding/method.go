// Package binding classifies callables by calling convention and binds them
// to concrete receivers.
package binding

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/methodmap/errors"
)

// typeType is the reflect.Type of reflect.Type itself, used to recognize
// type-bound first parameters.
var typeType = reflect.TypeOf((*reflect.Type)(nil)).Elem()

// Method wraps one raw callable together with its Kind. The kind is decided
// once, at wrap time, from the callable's declared parameter types; it is
// never revised from the runtime receiver.
type Method struct {
	kind Kind
	fn   reflect.Value
}

// Wrap validates fn against the given kind and returns the wrapped method.
func Wrap(fn any, kind Kind) (*Method, error) {
	if fn == nil {
		return nil, errors.ErrNilMethod
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, errorc.With(
			errors.ErrNotFunction,
			errorc.String(errors.ErrorFieldMethodType, v.Type().String()),
		)
	}
	if v.IsNil() {
		return nil, errors.ErrNilMethod
	}
	t := v.Type()

	switch kind {
	case Unbound:
		// Any function shape is acceptable.
	case InstanceBound, TypeBound:
		// The first parameter is consumed by binding; a variadic parameter
		// cannot serve as the receiver slot.
		if t.NumIn() == 0 || (t.IsVariadic() && t.NumIn() == 1) {
			return nil, errorc.With(
				errors.ErrMissingReceiverParam,
				errorc.String(errors.ErrorFieldKind, kind.String()),
				errorc.String(errors.ErrorFieldMethodType, t.String()),
			)
		}
		if kind == TypeBound && t.In(0) != typeType {
			return nil, errorc.With(
				errors.ErrTypeParamMismatch,
				errorc.String(errors.ErrorFieldMethodType, t.String()),
			)
		}
	default:
		return nil, errorc.With(
			errors.ErrInvalidKind,
			errorc.String(errors.ErrorFieldKind, kind.String()),
		)
	}

	return &Method{kind: kind, fn: v}, nil
}

// Classify infers the binding kind of a function type from its first declared
// parameter: the owner type (or a type the owner is assignable to) means
// instance-bound, reflect.Type means type-bound, anything else means unbound.
// Only declared parameter types are consulted.
func Classify(fnType reflect.Type, owner reflect.Type) Kind {
	if fnType == nil || fnType.Kind() != reflect.Func || fnType.NumIn() == 0 {
		return Unbound
	}
	if fnType.IsVariadic() && fnType.NumIn() == 1 {
		// The sole parameter is variadic; it cannot be a receiver slot.
		return Unbound
	}
	in0 := fnType.In(0)
	if in0 == typeType {
		return TypeBound
	}
	if owner != nil && owner.AssignableTo(in0) {
		return InstanceBound
	}
	return Unbound
}

// Kind returns the method's binding kind.
func (m *Method) Kind() Kind {
	return m.kind
}

// Func returns the original callable as registered.
func (m *Method) Func() any {
	return m.fn.Interface()
}

// Type returns the reflect.Type of the original callable.
func (m *Method) Type() reflect.Type {
	return m.fn.Type()
}

// ReceiverCompatible reports whether a receiver of the given owner type can
// be bound to the method. Unbound and type-bound methods accept any owner.
func (m *Method) ReceiverCompatible(owner reflect.Type) bool {
	if m.kind != InstanceBound {
		return true
	}
	if owner == nil {
		return false
	}
	return owner.AssignableTo(m.fn.Type().In(0))
}

// Bind resolves the method against a concrete receiver.
//
// Instance-bound methods yield a new callable of the original type minus its
// first parameter, invoking the original with the receiver prepended.
// Type-bound methods do the same with the receiver's reflect.Type.
// Unbound methods are returned untouched; the receiver is ignored.
func (m *Method) Bind(receiver any) (any, error) {
	if m.kind == Unbound {
		return m.fn.Interface(), nil
	}
	if receiver == nil {
		return nil, errorc.With(
			errors.ErrNilReceiver,
			errorc.String(errors.ErrorFieldMethodType, m.fn.Type().String()),
		)
	}

	var first reflect.Value
	switch m.kind {
	case InstanceBound:
		first = reflect.ValueOf(receiver)
		if !first.Type().AssignableTo(m.fn.Type().In(0)) {
			return nil, errorc.With(
				errors.ErrReceiverMismatch,
				errorc.String(errors.ErrorFieldReceiverType, first.Type().String()),
				errorc.String(errors.ErrorFieldMethodType, m.fn.Type().String()),
			)
		}
	case TypeBound:
		first = reflect.ValueOf(reflect.TypeOf(receiver))
	}

	fn := m.fn
	t := fn.Type()
	in := make([]reflect.Type, 0, t.NumIn()-1)
	for i := 1; i < t.NumIn(); i++ {
		in = append(in, t.In(i))
	}
	out := make([]reflect.Type, 0, t.NumOut())
	for i := 0; i < t.NumOut(); i++ {
		out = append(out, t.Out(i))
	}
	boundType := reflect.FuncOf(in, out, t.IsVariadic())

	bound := reflect.MakeFunc(boundType, func(args []reflect.Value) []reflect.Value {
		full := make([]reflect.Value, 0, len(args)+1)
		full = append(full, first)
		full = append(full, args...)
		if t.IsVariadic() {
			// MakeFunc delivers the variadic tail already collected into a slice.
			return fn.CallSlice(full)
		}
		return fn.Call(full)
	})

	return bound.Interface(), nil
}
