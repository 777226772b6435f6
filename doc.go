// Package fabrik is the repository root for a small runtime factory-wiring
// toolkit.
//
// The hard problem it solves: connections between value producers are
// decided at run time (by code, or by a configuration file), yet every
// connection must still be checked against real static type information
// (argument types and return types read from actual Go function
// signatures) at the moment it is made, and the result must be
// recoverable as a strongly-typed producer afterwards.
//
// It is intentionally low level: no singletons, no lifecycle, no scoping.
// Factories only ever produce new values; dependency injection or plugin
// layers can be built on top.
//
// See subpackages:
//   - fab: the core library (type identity, type-erased values, the
//     Factory/Getter contracts, function adapters, typed narrowing)
//   - blueprint: wiring graphs loaded from YAML/JSON configuration
//   - cmd/fabc: CLI for evaluating blueprint files
//   - examples/calc: runnable end-to-end walkthrough
package fabrik
