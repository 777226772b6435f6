package fab

// Function adapters: one constructor per supported arity, all behind the
// same Factory contract.
//
// The set is deliberately closed and enumerated (0 through 8 arguments)
// instead of reaching for reflect.Call-style variadic dispatch. Each
// adapter reads the output and argument identities straight from the
// function's own signature, so ArgTypes/OutputType are available before
// any wiring, and the bound Getter calls the function directly with
// statically-typed arguments.
//
// Functions with more than 8 parameters can be adapted by currying a
// struct through a lower arity.

// Func0 adapts a zero-argument function. Its New succeeds whenever it is
// called without children, any number of times.
func Func0[R any](fn func() R) Factory { return func0[R]{fn: fn} }

type func0[R any] struct {
	fn func() R
}

func (f func0[R]) OutputType() TypeRef { return TypeOf[R]() }

func (f func0[R]) ArgTypes() []TypeRef { return nil }

func (f func0[R]) New(children ...Getter) (Getter, error) {
	if err := validateWiring(nil, children); err != nil {
		return nil, err
	}
	return boundGetter[R]{take: f.fn}, nil
}

// Func1 adapts a one-argument function.
func Func1[A1, R any](fn func(A1) R) Factory { return func1[A1, R]{fn: fn} }

type func1[A1, R any] struct {
	fn func(A1) R
}

func (f func1[A1, R]) OutputType() TypeRef { return TypeOf[R]() }

func (f func1[A1, R]) ArgTypes() []TypeRef { return []TypeRef{TypeOf[A1]()} }

func (f func1[A1, R]) New(children ...Getter) (Getter, error) {
	if err := validateWiring(f.ArgTypes(), children); err != nil {
		return nil, err
	}
	a1 := children[0]
	return boundGetter[R]{take: func() R {
		return f.fn(MustUnwrap[A1](a1.Invoke()))
	}}, nil
}

// Func2 adapts a two-argument function.
func Func2[A1, A2, R any](fn func(A1, A2) R) Factory { return func2[A1, A2, R]{fn: fn} }

type func2[A1, A2, R any] struct {
	fn func(A1, A2) R
}

func (f func2[A1, A2, R]) OutputType() TypeRef { return TypeOf[R]() }

func (f func2[A1, A2, R]) ArgTypes() []TypeRef {
	return []TypeRef{TypeOf[A1](), TypeOf[A2]()}
}

func (f func2[A1, A2, R]) New(children ...Getter) (Getter, error) {
	if err := validateWiring(f.ArgTypes(), children); err != nil {
		return nil, err
	}
	a1, a2 := children[0], children[1]
	return boundGetter[R]{take: func() R {
		return f.fn(
			MustUnwrap[A1](a1.Invoke()),
			MustUnwrap[A2](a2.Invoke()),
		)
	}}, nil
}

// Func3 adapts a three-argument function.
func Func3[A1, A2, A3, R any](fn func(A1, A2, A3) R) Factory {
	return func3[A1, A2, A3, R]{fn: fn}
}

type func3[A1, A2, A3, R any] struct {
	fn func(A1, A2, A3) R
}

func (f func3[A1, A2, A3, R]) OutputType() TypeRef { return TypeOf[R]() }

func (f func3[A1, A2, A3, R]) ArgTypes() []TypeRef {
	return []TypeRef{TypeOf[A1](), TypeOf[A2](), TypeOf[A3]()}
}

func (f func3[A1, A2, A3, R]) New(children ...Getter) (Getter, error) {
	if err := validateWiring(f.ArgTypes(), children); err != nil {
		return nil, err
	}
	a1, a2, a3 := children[0], children[1], children[2]
	return boundGetter[R]{take: func() R {
		return f.fn(
			MustUnwrap[A1](a1.Invoke()),
			MustUnwrap[A2](a2.Invoke()),
			MustUnwrap[A3](a3.Invoke()),
		)
	}}, nil
}

// Func4 adapts a four-argument function.
func Func4[A1, A2, A3, A4, R any](fn func(A1, A2, A3, A4) R) Factory {
	return func4[A1, A2, A3, A4, R]{fn: fn}
}

type func4[A1, A2, A3, A4, R any] struct {
	fn func(A1, A2, A3, A4) R
}

func (f func4[A1, A2, A3, A4, R]) OutputType() TypeRef { return TypeOf[R]() }

func (f func4[A1, A2, A3, A4, R]) ArgTypes() []TypeRef {
	return []TypeRef{TypeOf[A1](), TypeOf[A2](), TypeOf[A3](), TypeOf[A4]()}
}

func (f func4[A1, A2, A3, A4, R]) New(children ...Getter) (Getter, error) {
	if err := validateWiring(f.ArgTypes(), children); err != nil {
		return nil, err
	}
	a1, a2, a3, a4 := children[0], children[1], children[2], children[3]
	return boundGetter[R]{take: func() R {
		return f.fn(
			MustUnwrap[A1](a1.Invoke()),
			MustUnwrap[A2](a2.Invoke()),
			MustUnwrap[A3](a3.Invoke()),
			MustUnwrap[A4](a4.Invoke()),
		)
	}}, nil
}

// Func5 adapts a five-argument function.
func Func5[A1, A2, A3, A4, A5, R any](fn func(A1, A2, A3, A4, A5) R) Factory {
	return func5[A1, A2, A3, A4, A5, R]{fn: fn}
}

type func5[A1, A2, A3, A4, A5, R any] struct {
	fn func(A1, A2, A3, A4, A5) R
}

func (f func5[A1, A2, A3, A4, A5, R]) OutputType() TypeRef { return TypeOf[R]() }

func (f func5[A1, A2, A3, A4, A5, R]) ArgTypes() []TypeRef {
	return []TypeRef{TypeOf[A1](), TypeOf[A2](), TypeOf[A3](), TypeOf[A4](), TypeOf[A5]()}
}

func (f func5[A1, A2, A3, A4, A5, R]) New(children ...Getter) (Getter, error) {
	if err := validateWiring(f.ArgTypes(), children); err != nil {
		return nil, err
	}
	a1, a2, a3, a4, a5 := children[0], children[1], children[2], children[3], children[4]
	return boundGetter[R]{take: func() R {
		return f.fn(
			MustUnwrap[A1](a1.Invoke()),
			MustUnwrap[A2](a2.Invoke()),
			MustUnwrap[A3](a3.Invoke()),
			MustUnwrap[A4](a4.Invoke()),
			MustUnwrap[A5](a5.Invoke()),
		)
	}}, nil
}

// Func6 adapts a six-argument function.
func Func6[A1, A2, A3, A4, A5, A6, R any](fn func(A1, A2, A3, A4, A5, A6) R) Factory {
	return func6[A1, A2, A3, A4, A5, A6, R]{fn: fn}
}

type func6[A1, A2, A3, A4, A5, A6, R any] struct {
	fn func(A1, A2, A3, A4, A5, A6) R
}

func (f func6[A1, A2, A3, A4, A5, A6, R]) OutputType() TypeRef { return TypeOf[R]() }

func (f func6[A1, A2, A3, A4, A5, A6, R]) ArgTypes() []TypeRef {
	return []TypeRef{
		TypeOf[A1](), TypeOf[A2](), TypeOf[A3](),
		TypeOf[A4](), TypeOf[A5](), TypeOf[A6](),
	}
}

func (f func6[A1, A2, A3, A4, A5, A6, R]) New(children ...Getter) (Getter, error) {
	if err := validateWiring(f.ArgTypes(), children); err != nil {
		return nil, err
	}
	a1, a2, a3 := children[0], children[1], children[2]
	a4, a5, a6 := children[3], children[4], children[5]
	return boundGetter[R]{take: func() R {
		return f.fn(
			MustUnwrap[A1](a1.Invoke()),
			MustUnwrap[A2](a2.Invoke()),
			MustUnwrap[A3](a3.Invoke()),
			MustUnwrap[A4](a4.Invoke()),
			MustUnwrap[A5](a5.Invoke()),
			MustUnwrap[A6](a6.Invoke()),
		)
	}}, nil
}

// Func7 adapts a seven-argument function.
func Func7[A1, A2, A3, A4, A5, A6, A7, R any](fn func(A1, A2, A3, A4, A5, A6, A7) R) Factory {
	return func7[A1, A2, A3, A4, A5, A6, A7, R]{fn: fn}
}

type func7[A1, A2, A3, A4, A5, A6, A7, R any] struct {
	fn func(A1, A2, A3, A4, A5, A6, A7) R
}

func (f func7[A1, A2, A3, A4, A5, A6, A7, R]) OutputType() TypeRef { return TypeOf[R]() }

func (f func7[A1, A2, A3, A4, A5, A6, A7, R]) ArgTypes() []TypeRef {
	return []TypeRef{
		TypeOf[A1](), TypeOf[A2](), TypeOf[A3](), TypeOf[A4](),
		TypeOf[A5](), TypeOf[A6](), TypeOf[A7](),
	}
}

func (f func7[A1, A2, A3, A4, A5, A6, A7, R]) New(children ...Getter) (Getter, error) {
	if err := validateWiring(f.ArgTypes(), children); err != nil {
		return nil, err
	}
	a1, a2, a3, a4 := children[0], children[1], children[2], children[3]
	a5, a6, a7 := children[4], children[5], children[6]
	return boundGetter[R]{take: func() R {
		return f.fn(
			MustUnwrap[A1](a1.Invoke()),
			MustUnwrap[A2](a2.Invoke()),
			MustUnwrap[A3](a3.Invoke()),
			MustUnwrap[A4](a4.Invoke()),
			MustUnwrap[A5](a5.Invoke()),
			MustUnwrap[A6](a6.Invoke()),
			MustUnwrap[A7](a7.Invoke()),
		)
	}}, nil
}

// Func8 adapts an eight-argument function.
func Func8[A1, A2, A3, A4, A5, A6, A7, A8, R any](fn func(A1, A2, A3, A4, A5, A6, A7, A8) R) Factory {
	return func8[A1, A2, A3, A4, A5, A6, A7, A8, R]{fn: fn}
}

type func8[A1, A2, A3, A4, A5, A6, A7, A8, R any] struct {
	fn func(A1, A2, A3, A4, A5, A6, A7, A8) R
}

func (f func8[A1, A2, A3, A4, A5, A6, A7, A8, R]) OutputType() TypeRef { return TypeOf[R]() }

func (f func8[A1, A2, A3, A4, A5, A6, A7, A8, R]) ArgTypes() []TypeRef {
	return []TypeRef{
		TypeOf[A1](), TypeOf[A2](), TypeOf[A3](), TypeOf[A4](),
		TypeOf[A5](), TypeOf[A6](), TypeOf[A7](), TypeOf[A8](),
	}
}

func (f func8[A1, A2, A3, A4, A5, A6, A7, A8, R]) New(children ...Getter) (Getter, error) {
	if err := validateWiring(f.ArgTypes(), children); err != nil {
		return nil, err
	}
	a1, a2, a3, a4 := children[0], children[1], children[2], children[3]
	a5, a6, a7, a8 := children[4], children[5], children[6], children[7]
	return boundGetter[R]{take: func() R {
		return f.fn(
			MustUnwrap[A1](a1.Invoke()),
			MustUnwrap[A2](a2.Invoke()),
			MustUnwrap[A3](a3.Invoke()),
			MustUnwrap[A4](a4.Invoke()),
			MustUnwrap[A5](a5.Invoke()),
			MustUnwrap[A6](a6.Invoke()),
			MustUnwrap[A7](a7.Invoke()),
			MustUnwrap[A8](a8.Invoke()),
		)
	}}, nil
}
