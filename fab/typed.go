package fab

// TypedGetter narrows an opaque Getter back to a concrete output type.
//
// It is obtained via AsGetterOf or TypedFactory.New, which prove the
// identity match up front; Take then performs the final unwrap so callers
// never handle Value themselves.
//
// TypedGetter also implements Getter, so a narrowed handle can still be
// wired into other factories as a child.
type TypedGetter[T any] struct {
	g Getter
}

// AsGetterOf narrows g to a producer of T.
//
// ok is false when g is nil or its output identity is not exactly T. A
// mismatch is an expected outcome, not a fault: callers probing several
// candidate types just branch on ok.
func AsGetterOf[T any](g Getter) (TypedGetter[T], bool) {
	if g == nil || !Is[T](g.OutputType()) {
		return TypedGetter[T]{}, false
	}
	return TypedGetter[T]{g: g}, true
}

// Take invokes the underlying tree and returns the concrete result.
func (t TypedGetter[T]) Take() T { return MustUnwrap[T](t.g.Invoke()) }

// OutputType implements Getter.
func (t TypedGetter[T]) OutputType() TypeRef { return TypeOf[T]() }

// Invoke implements Getter.
func (t TypedGetter[T]) Invoke() Value { return t.g.Invoke() }

// TypedFactory narrows an opaque Factory to a known output type while
// keeping the wiring step. Its New delegates to the underlying factory and
// returns an already-narrowed TypedGetter.
type TypedFactory[T any] struct {
	f Factory
}

// AsFactoryOf narrows f to a factory producing T.
//
// ok is false when f is nil or its declared output identity is not exactly
// T. Like AsGetterOf, a mismatch is an expected, branchable outcome.
func AsFactoryOf[T any](f Factory) (TypedFactory[T], bool) {
	if f == nil || !Is[T](f.OutputType()) {
		return TypedFactory[T]{}, false
	}
	return TypedFactory[T]{f: f}, true
}

// OutputType reports the narrowed output identity.
func (t TypedFactory[T]) OutputType() TypeRef { return TypeOf[T]() }

// ArgTypes delegates to the underlying factory.
func (t TypedFactory[T]) ArgTypes() []TypeRef { return t.f.ArgTypes() }

// New wires children via the underlying factory and narrows the result.
// Wiring errors pass through unchanged.
func (t TypedFactory[T]) New(children ...Getter) (TypedGetter[T], error) {
	g, err := t.f.New(children...)
	if err != nil {
		return TypedGetter[T]{}, err
	}
	return TypedGetter[T]{g: g}, nil
}
