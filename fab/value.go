package fab

// Value is a type-erased container pairing one concrete value with its
// TypeRef.
//
// A Value is produced by invoking a Getter (or directly via Wrap/WrapAny)
// and is owned by the caller that produced it. The stored value's concrete
// type always matches the carried ref, so a successful Unwrap is always
// sound.
type Value struct {
	ref TypeRef
	raw any
}

// Wrap erases v behind its static type T.
//
// Using the static type matters when T is an interface: the Value is tagged
// with the interface identity, not the identity of whatever implementation
// happens to be inside.
func Wrap[T any](v T) Value { return Value{ref: TypeOf[T](), raw: v} }

// WrapAny erases v behind its dynamic type.
//
// This is the entry point for values whose type is only known at run time,
// e.g. literals decoded from configuration.
func WrapAny(v any) Value { return Value{ref: TypeOfValue(v), raw: v} }

// Type returns the identity of the stored value.
func (v Value) Type() TypeRef { return v.ref }

// Any returns the stored value without a type assertion.
func (v Value) Any() any { return v.raw }

// Unwrap recovers the concrete value of type T.
//
// It returns a TypeMismatchError carrying both identities if the Value does
// not hold exactly a T. There is no coercion: a Value holding an int32 does
// not unwrap as int.
func Unwrap[T any](v Value) (T, error) {
	if !Is[T](v.ref) {
		var zero T
		return zero, TypeMismatchError{Expected: TypeOf[T](), Actual: v.ref}
	}
	// The identity matched, so the assertion can only miss when the Value
	// holds a nil interface; the zero T is the right answer there.
	out, _ := v.raw.(T)
	return out, nil
}

// MustUnwrap recovers the concrete value of type T or panics.
//
// It is meant for call sites where a mismatch is a programming error, not
// an expected outcome: the unwraps inside a wired Getter tree, where New
// already validated every slot.
func MustUnwrap[T any](v Value) T {
	out, err := Unwrap[T](v)
	if err != nil {
		panic(err)
	}
	return out
}
