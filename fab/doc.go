// Package fab assembles trees of value factories at run time.
//
// A Factory is a reusable template built from a plain function, closure, or
// constant. It knows its output type and the type of every argument slot
// before any wiring happens. Calling New with a list of bound child
// producers (Getters) validates arity and per-slot types, and either
// returns a new Getter or a typed wiring error. Invoking a Getter walks
// the bound tree, feeding child values positionally into the wrapped
// function, and returns the result as a type-erased Value.
//
// Design goals:
//   - Dynamic wiring, static checking: connections are decided at run time
//     (by code or configuration), but every connection is validated against
//     the real function signature at the moment it is made.
//   - Values only: a Getter always produces a new value. No singletons, no
//     caching, no lifecycle. Anything like that belongs to higher layers.
//   - Errors as values: wiring is expected to fail routinely during dynamic
//     composition, so every wiring failure is a returned typed error, never
//     a panic. A failed attempt leaves factory and children reusable.
//   - Test-friendly: factories expose OutputType/ArgTypes for introspection
//     before any wiring occurs.
//
// The package is synchronous and lock-free. Wiring and invocation never
// mutate the tree, so a Getter may be invoked concurrently as long as the
// wrapped functions are themselves safe to call concurrently.
//
// Typical usage:
//
//	sum := fab.Func2(func(a, b int) int { return a + b })
//	twice := fab.Func1(func(v int) int { return v * 2 })
//
//	inner, err := sum.New(fab.Arg(3), fab.Arg(2))
//	if err != nil { ... }
//	outer, err := twice.New(inner)
//	if err != nil { ... }
//
//	getter, ok := fab.AsGetterOf[int](outer)
//	if !ok { ... }
//	fmt.Println(getter.Take()) // 10
package fab
