package blueprint

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoNodes is returned when a blueprint defines no nodes at all.
var ErrNoNodes = errors.New("blueprint: no nodes defined")

// ErrNoTarget is returned when a blueprint does not name a target node.
var ErrNoTarget = errors.New("blueprint: no target node set")

// UnsupportedFormatError is returned by Load for file extensions other
// than .yaml/.yml/.json.
type UnsupportedFormatError struct{ Ext string }

// Error implements the error interface.
func (e UnsupportedFormatError) Error() string {
	// Example: blueprint: unsupported config format ".toml"
	return "blueprint: unsupported config format " + strconv.Quote(e.Ext)
}

// InvalidNodeError is returned when a node definition is malformed, e.g.
// it names both a factory and a constant, or neither.
type InvalidNodeError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e InvalidNodeError) Error() string {
	// Example: blueprint: invalid node "sum": names both factory and const
	return "blueprint: invalid node " + strconv.Quote(e.Name) + ": " + e.Reason
}

// UnknownNodeError is returned when a node reference does not resolve to a
// defined node.
type UnknownNodeError struct{ Name string }

// Error implements the error interface.
func (e UnknownNodeError) Error() string {
	// Example: blueprint: unknown node "sum"
	return "blueprint: unknown node " + strconv.Quote(e.Name)
}

// UnknownFactoryError is returned when a node references a factory name
// absent from the registry.
type UnknownFactoryError struct {
	Node    string
	Factory string
}

// Error implements the error interface.
func (e UnknownFactoryError) Error() string {
	// Example: blueprint: node "sum" references unknown factory "add"
	return "blueprint: node " + strconv.Quote(e.Node) +
		" references unknown factory " + strconv.Quote(e.Factory)
}

// CycleError is returned when node references form a loop. Stack holds the
// reference chain from the first node on the loop back to itself.
type CycleError struct{ Stack []string }

// Error implements the error interface.
func (e CycleError) Error() string {
	// Example: blueprint: node cycle a -> b -> a
	return "blueprint: node cycle " + strings.Join(e.Stack, " -> ")
}

// NodeError wraps a core wiring error with the name of the node whose
// wiring failed. errors.As reaches the fab error underneath.
type NodeError struct {
	Node string
	Err  error
}

// Error implements the error interface.
func (e NodeError) Error() string {
	// Example: blueprint: node "sum": fab: arity mismatch (...)
	return "blueprint: node " + strconv.Quote(e.Node) + ": " + e.Err.Error()
}

// Unwrap exposes the wrapped wiring error.
func (e NodeError) Unwrap() error { return e.Err }
