package fab

import "strconv"

// ArityMismatchError is returned by Factory.New when the number of supplied
// children does not match the factory's declared argument count.
type ArityMismatchError struct {
	// Expected is the factory's declared argument count.
	Expected int

	// Actual is the number of children supplied to New.
	Actual int
}

// Error implements the error interface.
func (e ArityMismatchError) Error() string {
	// Example: fab: arity mismatch (expected 2 children, got 3)
	return "fab: arity mismatch (expected " + strconv.Itoa(e.Expected) +
		" children, got " + strconv.Itoa(e.Actual) + ")"
}

// ArgTypeMismatchError is returned by Factory.New when a child's output type
// disagrees with the declared type of its argument slot.
//
// Validation is left to right and stops at the first mismatch, so Index is
// always the lowest mismatching position.
type ArgTypeMismatchError struct {
	// Index is the zero-based argument slot that failed.
	Index int

	// Expected is the declared type of the slot.
	Expected TypeRef

	// Actual is the output type reported by the supplied child.
	Actual TypeRef
}

// Error implements the error interface.
func (e ArgTypeMismatchError) Error() string {
	// Example: fab: argument 1 expects int, child produces string
	return "fab: argument " + strconv.Itoa(e.Index) + " expects " +
		e.Expected.String() + ", child produces " + e.Actual.String()
}

// TypeMismatchError is returned by Unwrap when the requested type does not
// match the type stored in a Value.
//
// Inside an already-wired tree this error is unreachable: wiring proved all
// the types up front, which is why the internal unwraps use MustUnwrap.
type TypeMismatchError struct {
	// Expected is the type requested by the caller.
	Expected TypeRef

	// Actual is the type the Value actually holds.
	Actual TypeRef
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	// Example: fab: cannot unwrap string as int
	return "fab: cannot unwrap " + e.Actual.String() + " as " + e.Expected.String()
}
