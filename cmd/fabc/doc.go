// Command fabc evaluates fabrik blueprints from the command line.
//
// It ships a small registry of built-in demo factories (integer and float
// arithmetic, string helpers) so wiring graphs can be tried out without
// writing a host program:
//
//	fabc factories
//	fabc eval -b calc.yaml
//	fabc eval -b calc.yaml -t sum
//
// With a blueprint like:
//
//	target: total
//	nodes:
//	  a:     { const: 3 }
//	  b:     { const: 4 }
//	  sum:   { factory: add,    args: [a, b] }
//	  total: { factory: double, args: [sum] }
//
// `fabc eval` loads the file, builds the requested node against the
// built-in registry, invokes the resulting getter once, and prints the
// produced value on stdout. Diagnostics go to stderr as structured logs.
//
// Real programs are expected to register their own factories and call the
// blueprint package directly; this binary exists for poking at blueprint
// files and as a worked example of the wiring flow.
package main
