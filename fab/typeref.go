package fab

import "reflect"

// TypeRef is a comparable token identifying one concrete Go type within the
// running process.
//
// Two TypeRef values are equal iff they denote the same concrete type.
// There is no coercion between related types: int, int32 and a defined
// `type Celsius int` all carry distinct refs.
//
// The zero TypeRef denotes no type at all (see Valid) and never equals a
// ref obtained from TypeOf or TypeOfValue.
type TypeRef struct {
	t reflect.Type
}

// TypeOf returns the identity token for T.
//
// No instance is required, which is what lets a factory report its output
// and argument types before it has ever produced a value. When T is an
// interface type, the token denotes the interface itself, not any
// implementation.
func TypeOf[T any]() TypeRef { return TypeRef{t: reflect.TypeFor[T]()} }

// TypeOfValue returns the identity token for v's dynamic type.
//
// A nil interface yields the zero (invalid) TypeRef.
func TypeOfValue(v any) TypeRef { return TypeRef{t: reflect.TypeOf(v)} }

// Is reports whether ref denotes exactly the concrete type T.
func Is[T any](ref TypeRef) bool { return ref.t == reflect.TypeFor[T]() }

// Equal reports whether both refs denote the same concrete type.
func (r TypeRef) Equal(o TypeRef) bool { return r.t == o.t }

// Valid reports whether the ref denotes a type at all.
func (r TypeRef) Valid() bool { return r.t != nil }

// String returns the Go notation for the denoted type, e.g. "[]int" or
// "*bytes.Buffer". The zero ref renders as "<none>".
func (r TypeRef) String() string {
	if r.t == nil {
		return "<none>"
	}
	return r.t.String()
}
