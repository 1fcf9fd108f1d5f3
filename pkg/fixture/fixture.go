// Package fixture reads Groovy syntax trees described in yaml.
//
//	kind: file
//	children:
//	  - kind: class
//	    name: Foo
//	    children:
//	      - {kind: method, name: bar}
//	  - kind: reference
//	    name: Foo
//	    mark: here
package fixture

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stackb/groovy-resolve/pkg/groovy"
	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/types"
)

var (
	// ErrUnknownKind is returned for a node whose kind is not a psi.Kind name.
	ErrUnknownKind = errors.New("unknown node kind")
	// ErrNodeNotFound is returned when no node carries the requested mark.
	ErrNodeNotFound = errors.New("marked node not found")
)

// NodeSpec is the yaml form of a tree node.
type NodeSpec struct {
	Kind     string     `yaml:"kind"`
	Name     string     `yaml:"name,omitempty"`
	Type     string     `yaml:"type,omitempty"`
	Mark     string     `yaml:"mark,omitempty"`
	Children []NodeSpec `yaml:"children,omitempty"`
}

// Tree is a built fixture.
type Tree struct {
	*psi.Tree
	Marks map[string]psi.Node
}

// Lookup returns the node carrying the given mark.
func (t *Tree) Lookup(mark string) (psi.Node, error) {
	n, ok := t.Marks[mark]
	if !ok {
		return psi.Node{}, fmt.Errorf("%q: %w", mark, ErrNodeNotFound)
	}
	return n, nil
}

// ReadTree reads and builds a yaml tree fixture.
func ReadTree(filename string) (*Tree, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return ParseTree(data)
}

// ParseTree parses and builds a yaml tree fixture.
func ParseTree(data []byte) (*Tree, error) {
	var root NodeSpec
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	spec, err := root.ToSpec()
	if err != nil {
		return nil, err
	}
	tree, marks, err := groovy.Build(spec)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	return &Tree{Tree: tree, Marks: marks}, nil
}

// ToSpec converts the yaml node to a psi.Spec.
func (n *NodeSpec) ToSpec() (*psi.Spec, error) {
	kind, ok := psi.ParseKind(n.Kind)
	if !ok {
		return nil, fmt.Errorf("%q (name=%q): %w", n.Kind, n.Name, ErrUnknownKind)
	}
	spec := psi.S(kind, n.Name).As(n.Mark)
	if n.Type != "" {
		spec.Typed(types.ParseType(n.Type))
	}
	for i := range n.Children {
		child, err := n.Children[i].ToSpec()
		if err != nil {
			return nil, err
		}
		spec.Children = append(spec.Children, child)
	}
	return spec, nil
}
