package fab

// Aggregate collects any number of same-typed producers into a single
// Getter that yields a slice.
//
// It is not a Factory: a Factory declares a fixed argument list, while an
// aggregate accepts however many children it is given. Everything else
// follows the Factory rules: children are validated against the element
// identity before binding, and the bound Getter re-invokes every child on
// each call, in order.
//
// An aggregate's Getter produces []T, so it can itself be wired into a
// factory slot that expects a slice:
//
//	all := fab.NewAggregate[bool]()
//	flags, err := all.New(g1, g2, g3) // each gi produces bool
//	// flags produces []bool
type Aggregate[T any] struct{}

// NewAggregate returns an aggregate for element type T.
func NewAggregate[T any]() Aggregate[T] { return Aggregate[T]{} }

// ElemType is the identity every child must produce.
func (Aggregate[T]) ElemType() TypeRef { return TypeOf[T]() }

// OutputType is the identity of the slice the bound Getter produces.
func (Aggregate[T]) OutputType() TypeRef { return TypeOf[[]T]() }

// New validates that every child produces T and binds them into a Getter
// producing []T, in child order. Zero children are fine; the Getter then
// produces an empty slice.
func (Aggregate[T]) New(children ...Getter) (Getter, error) {
	want := TypeOf[T]()
	for i, c := range children {
		if !c.OutputType().Equal(want) {
			return nil, ArgTypeMismatchError{Index: i, Expected: want, Actual: c.OutputType()}
		}
	}
	kids := append([]Getter(nil), children...)
	return boundGetter[[]T]{take: func() []T {
		out := make([]T, 0, len(kids))
		for _, c := range kids {
			out = append(out, MustUnwrap[T](c.Invoke()))
		}
		return out
	}}, nil
}
