package blueprint

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/fabrikgo/fabrik/fab"
)

// Node describes one value in the graph.
//
// Exactly one of Factory or Const must be set. A factory node names a
// registered factory and the nodes feeding its argument slots, in order.
// A const node holds a literal; its concrete type follows the parser's
// native decoding (YAML integers decode as int, JSON numbers as float64),
// and the usual exact-identity matching applies when it is wired into a
// slot.
type Node struct {
	Factory string   `json:"factory"`
	Args    []string `json:"args"`
	Const   any      `json:"const"`
}

// Blueprint is a declarative wiring graph: a bag of named nodes plus the
// name of the node to build by default.
type Blueprint struct {
	Target string          `json:"target"`
	Nodes  map[string]Node `json:"nodes"`
}

// Load reads a blueprint from a YAML or JSON file, chosen by extension,
// and validates its shape. Wiring against a registry happens later, in
// Build.
//
// Node names must not contain "." (the config key delimiter).
func Load(path string) (*Blueprint, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, UnsupportedFormatError{Ext: ext}
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	var bp Blueprint
	if err := k.UnmarshalWithConf("", &bp, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return &bp, nil
}

// Validate checks the blueprint's shape: nodes exist, the target is one of
// them, and every node is either a factory node or a const node. It does
// not touch a registry and does not check arity or types; that is Build's
// job.
func (bp *Blueprint) Validate() error {
	if len(bp.Nodes) == 0 {
		return ErrNoNodes
	}
	if bp.Target == "" {
		return ErrNoTarget
	}
	if _, ok := bp.Nodes[bp.Target]; !ok {
		return UnknownNodeError{Name: bp.Target}
	}
	for name, node := range bp.Nodes {
		switch {
		case node.Factory != "" && node.Const != nil:
			return InvalidNodeError{Name: name, Reason: "names both factory and const"}
		case node.Factory == "" && node.Const == nil:
			return InvalidNodeError{Name: name, Reason: "names neither factory nor const"}
		case node.Const != nil && len(node.Args) > 0:
			return InvalidNodeError{Name: name, Reason: "const node cannot take args"}
		}
	}
	return nil
}

// Build resolves the target node against the registry and returns the
// bound getter. See BuildNode.
func (bp *Blueprint) Build(reg *Registry) (fab.Getter, error) {
	return bp.BuildNode(reg, bp.Target)
}

// BuildNode resolves a specific node against the registry.
//
// Nodes are built depth-first and memoized, so a node referenced by
// several parents is built once and its getter shared. Reference cycles
// fail with CycleError; per-node wiring failures surface as NodeError
// wrapping the fab error.
func (bp *Blueprint) BuildNode(reg *Registry, name string) (fab.Getter, error) {
	b := &builder{
		bp:       bp,
		reg:      reg,
		done:     map[string]fab.Getter{},
		visiting: map[string]bool{},
	}
	return b.build(name)
}

// builder carries the per-Build memo and cycle-detection state.
type builder struct {
	bp       *Blueprint
	reg      *Registry
	done     map[string]fab.Getter
	visiting map[string]bool
	stack    []string
}

func (b *builder) build(name string) (fab.Getter, error) {
	if g, ok := b.done[name]; ok {
		return g, nil
	}
	if b.visiting[name] {
		return nil, CycleError{Stack: append(append([]string(nil), b.stack...), name)}
	}
	node, ok := b.bp.Nodes[name]
	if !ok {
		return nil, UnknownNodeError{Name: name}
	}

	b.visiting[name] = true
	b.stack = append(b.stack, name)
	defer func() {
		delete(b.visiting, name)
		b.stack = b.stack[:len(b.stack)-1]
	}()

	var g fab.Getter
	if node.Const != nil {
		bound, err := fab.ConstAny(node.Const).New()
		if err != nil {
			return nil, NodeError{Node: name, Err: err}
		}
		g = bound
	} else {
		f, ok := b.reg.Get(node.Factory)
		if !ok {
			return nil, UnknownFactoryError{Node: name, Factory: node.Factory}
		}
		children := make([]fab.Getter, 0, len(node.Args))
		for _, ref := range node.Args {
			child, err := b.build(ref)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		bound, err := f.New(children...)
		if err != nil {
			return nil, NodeError{Node: name, Err: err}
		}
		g = bound
	}

	b.done[name] = g
	return g, nil
}
