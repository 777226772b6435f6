package fab

// Getter is a bound, zero-argument producer created by a successful wiring.
//
// Invoke re-runs the underlying logic on every call, recursively invoking
// the child Getters bound at wiring time. Nothing is cached; with constant
// leaves the produced value is the same on every call only because the
// logic is deterministic.
//
// A Getter is immutable. Children are bound at construction from
// already-completed Getters, so a tree can never contain a cycle.
type Getter interface {
	// OutputType is the identity of the values Invoke produces.
	OutputType() TypeRef

	// Invoke evaluates the bound tree and returns the result type-erased.
	Invoke() Value
}

// Factory is a reusable wiring template.
//
// It reports its output type and the ordered types of its argument slots
// before any wiring occurs, and binds child producers into a Getter via
// New. A Factory is a template, not a binding: New may be called any
// number of times with different children, and a failed call leaves both
// the factory and the rejected children untouched and reusable.
type Factory interface {
	// OutputType is the identity of the values this factory's Getters
	// will produce.
	OutputType() TypeRef

	// ArgTypes lists the declared argument slot types in order. A nil or
	// empty result means a leaf factory.
	ArgTypes() []TypeRef

	// New validates children against the declared slots and binds them.
	//
	// It fails with ArityMismatchError when the child count is wrong, or
	// with ArgTypeMismatchError for the first (lowest-index) slot whose
	// child reports a different output type. Validation stops at the
	// first mismatch.
	New(children ...Getter) (Getter, error)
}

// validateWiring implements the wiring check shared by every Factory in
// this package: arity first, then per-slot identity left to right,
// first error wins.
func validateWiring(want []TypeRef, children []Getter) error {
	if len(children) != len(want) {
		return ArityMismatchError{Expected: len(want), Actual: len(children)}
	}
	for i, c := range children {
		if !c.OutputType().Equal(want[i]) {
			return ArgTypeMismatchError{Index: i, Expected: want[i], Actual: c.OutputType()}
		}
	}
	return nil
}

// boundGetter adapts a zero-argument closure into a Getter. Every wiring in
// this package ultimately produces one of these.
type boundGetter[T any] struct {
	take func() T
}

func (g boundGetter[T]) OutputType() TypeRef { return TypeOf[T]() }

func (g boundGetter[T]) Invoke() Value { return Wrap(g.take()) }

// Const returns a leaf factory that produces v on every invocation.
//
// It is the degenerate arity-0 case of the Factory contract: ArgTypes is
// empty and New succeeds whenever it is called without children.
func Const[T any](v T) Factory { return constFactory[T]{v: v} }

type constFactory[T any] struct {
	v T
}

func (f constFactory[T]) OutputType() TypeRef { return TypeOf[T]() }

func (f constFactory[T]) ArgTypes() []TypeRef { return nil }

func (f constFactory[T]) New(children ...Getter) (Getter, error) {
	if err := validateWiring(nil, children); err != nil {
		return nil, err
	}
	v := f.v
	return boundGetter[T]{take: func() T { return v }}, nil
}

// ConstAny returns a leaf factory for a value whose concrete type is only
// known at run time, e.g. a literal decoded from configuration.
//
// The factory's output identity is v's dynamic type. A nil interface is
// not a value of any type; ConstAny panics on it rather than minting a
// factory with an invalid identity.
func ConstAny(v any) Factory {
	ref := TypeOfValue(v)
	if !ref.Valid() {
		panic("fab: ConstAny called with a nil interface")
	}
	return anyConstFactory{v: v, ref: ref}
}

type anyConstFactory struct {
	v   any
	ref TypeRef
}

func (f anyConstFactory) OutputType() TypeRef { return f.ref }

func (f anyConstFactory) ArgTypes() []TypeRef { return nil }

func (f anyConstFactory) New(children ...Getter) (Getter, error) {
	if err := validateWiring(nil, children); err != nil {
		return nil, err
	}
	return anyConstGetter{v: f.v, ref: f.ref}, nil
}

type anyConstGetter struct {
	v   any
	ref TypeRef
}

func (g anyConstGetter) OutputType() TypeRef { return g.ref }

func (g anyConstGetter) Invoke() Value { return Value{ref: g.ref, raw: g.v} }

// Arg binds a constant in one step.
//
// It is shorthand for Const(v).New() for the common case of feeding plain
// values into argument slots. Wiring an arity-0 factory cannot fail, so
// Arg returns the Getter directly.
func Arg[T any](v T) Getter {
	g, err := Const(v).New()
	if err != nil {
		panic(err)
	}
	return g
}
