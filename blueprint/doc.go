// Package blueprint wires fab factory trees from configuration files.
//
// A blueprint is a declarative graph of named nodes loaded from YAML or
// JSON. Each node either references a factory registered by the host
// program (plus the names of the nodes feeding its argument slots) or
// holds a literal constant. Building a blueprint against a Registry
// resolves the graph into a bound fab.Getter, with all of fab's arity and
// type validation applied per node.
//
//	target: total
//	nodes:
//	  a:     { const: 3 }
//	  b:     { const: 4 }
//	  sum:   { factory: add,    args: [a, b] }
//	  total: { factory: double, args: [sum] }
//
// Shared nodes are built once and reused, so a node may feed several
// parents. Unlike the core package, where cycles are structurally
// unrepresentable, a config file can reference nodes in a loop; Build
// detects that and fails with a CycleError instead of recursing forever.
//
// All failures are typed, returned errors. Core wiring errors surface
// wrapped in a NodeError so errors.As still reaches the fab error
// underneath.
package blueprint
