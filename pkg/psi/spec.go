package psi

import (
	"fmt"

	"github.com/stackb/groovy-resolve/pkg/types"
)

// Spec describes a subtree to be built.
type Spec struct {
	NodeData
	// Mark, when set, names the built node in the marks map returned by
	// Build.
	Mark     string
	Children []*Spec
}

// S constructs a new spec pointer with the given arguments.
func S(kind Kind, name string, children ...*Spec) *Spec {
	return &Spec{
		NodeData: NodeData{Kind: kind, Name: name},
		Children: children,
	}
}

// As sets the mark of the spec and returns it.
func (s *Spec) As(mark string) *Spec {
	s.Mark = mark
	return s
}

// Typed sets the type of the spec and returns it.
func (s *Spec) Typed(t types.Type) *Spec {
	s.Type = t
	return s
}

// Build creates a new tree in the given language from the root spec.  The
// returned map holds the nodes of all marked specs.
func Build(lang Language, root *Spec) (*Tree, map[string]Node, error) {
	tree := NewTree(lang)
	marks := make(map[string]Node)
	if err := tree.addSpec(Node{}, root, marks); err != nil {
		return nil, nil, err
	}
	return tree, marks, nil
}

// MustBuild is like Build but panics on error.
func MustBuild(lang Language, root *Spec) (*Tree, map[string]Node) {
	tree, marks, err := Build(lang, root)
	if err != nil {
		panic(err)
	}
	return tree, marks
}

func (t *Tree) addSpec(parent Node, spec *Spec, marks map[string]Node) error {
	if spec.Kind == KindInvalid {
		return fmt.Errorf("invalid node kind (name=%q)", spec.Name)
	}
	n := t.Add(parent, spec.NodeData)
	if spec.Mark != "" {
		if _, ok := marks[spec.Mark]; ok {
			return fmt.Errorf("duplicate mark %q", spec.Mark)
		}
		marks[spec.Mark] = n
	}
	for _, child := range spec.Children {
		if err := t.addSpec(n, child, marks); err != nil {
			return err
		}
	}
	return nil
}
