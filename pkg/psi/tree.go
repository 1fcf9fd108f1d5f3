package psi

import (
	"fmt"
	"strings"

	"github.com/stackb/groovy-resolve/pkg/types"
)

// ID addresses a node within its tree.
type ID int32

const noID ID = -1

// NodeData is the shape of a node when it is added to a tree.
type NodeData struct {
	// Kind is the node kind.
	Kind Kind
	// Name is the declared name (classes, methods, variables, parameters),
	// the referenced name (references, calls) or the label (labeled
	// statements).
	Name string
	// Type is the declared type (variables, fields, parameters), the return
	// type (methods) or the referenced type (class literals).
	Type types.Type
}

type node struct {
	NodeData
	parent   ID
	index    int
	children []ID
}

// Tree owns the nodes of one syntax tree.  Relations between nodes are
// plain indices; nodes never own each other.
type Tree struct {
	lang  Language
	nodes []node
}

// NewTree constructs a new, empty tree whose nodes process declarations
// using the given language.
func NewTree(lang Language) *Tree {
	return &Tree{lang: lang}
}

// Language returns the language of the tree.
func (t *Tree) Language() Language {
	return t.lang
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the first node added without a parent.
func (t *Tree) Root() Node {
	for i := range t.nodes {
		if t.nodes[i].parent == noID {
			return Node{t, ID(i)}
		}
	}
	return Node{}
}

// Node returns the node having the given ID.
func (t *Tree) Node(id ID) Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node{}
	}
	return Node{t, id}
}

// Add appends a new node as the last child of parent.  An absent parent
// creates a root.
func (t *Tree) Add(parent Node, data NodeData) Node {
	id := ID(len(t.nodes))
	n := node{NodeData: data, parent: noID}
	if !parent.IsNil() {
		if parent.tree != t {
			panic(fmt.Sprintf("psi: parent %v belongs to another tree", parent))
		}
		p := &t.nodes[parent.id]
		n.parent = parent.id
		n.index = len(p.children)
		p.children = append(p.children, id)
	}
	t.nodes = append(t.nodes, n)
	return Node{t, id}
}

// Node is a handle to a node of a Tree.  The zero Node is absent.  Nodes are
// comparable: two handles are equal when they address the same node.
type Node struct {
	tree *Tree
	id   ID
}

// IsNil reports whether the node is absent.
func (n Node) IsNil() bool {
	return n.tree == nil
}

// Tree returns the tree the node belongs to.
func (n Node) Tree() *Tree {
	return n.tree
}

// ID returns the node index within its tree.
func (n Node) ID() ID {
	return n.id
}

func (n Node) data() *node {
	return &n.tree.nodes[n.id]
}

// Kind implements part of the Element interface.
func (n Node) Kind() Kind {
	if n.IsNil() {
		return KindInvalid
	}
	return n.data().Kind
}

// Name implements part of the Element interface.
func (n Node) Name() string {
	if n.IsNil() {
		return ""
	}
	return n.data().Name
}

// Type returns the declared type of the node, if any.
func (n Node) Type() types.Type {
	if n.IsNil() {
		return nil
	}
	return n.data().Type
}

// Context returns the enclosing node, or an absent node at the root.
func (n Node) Context() Node {
	if n.IsNil() {
		return Node{}
	}
	return n.tree.Node(n.data().parent)
}

// PrevSibling returns the sibling immediately preceding n.
func (n Node) PrevSibling() Node {
	return n.sibling(-1)
}

// NextSibling returns the sibling immediately following n.
func (n Node) NextSibling() Node {
	return n.sibling(1)
}

func (n Node) sibling(delta int) Node {
	parent := n.Context()
	if parent.IsNil() {
		return Node{}
	}
	i := n.data().index + delta
	children := parent.data().children
	if i < 0 || i >= len(children) {
		return Node{}
	}
	return Node{n.tree, children[i]}
}

// FirstChild returns the first child of n.
func (n Node) FirstChild() Node {
	if n.IsNil() || len(n.data().children) == 0 {
		return Node{}
	}
	return Node{n.tree, n.data().children[0]}
}

// LastChild returns the last child of n.
func (n Node) LastChild() Node {
	if n.IsNil() {
		return Node{}
	}
	children := n.data().children
	if len(children) == 0 {
		return Node{}
	}
	return Node{n.tree, children[len(children)-1]}
}

// Children returns the children of n in order.
func (n Node) Children() []Node {
	if n.IsNil() {
		return nil
	}
	children := make([]Node, len(n.data().children))
	for i, id := range n.data().children {
		children[i] = Node{n.tree, id}
	}
	return children
}

// ChildrenOfKind returns the children of n having the given kind.
func (n Node) ChildrenOfKind(kind Kind) (children []Node) {
	for _, child := range n.Children() {
		if child.Kind() == kind {
			children = append(children, child)
		}
	}
	return
}

// Child returns the first child of n having the given kind.
func (n Node) Child(kind Kind) Node {
	for run := n.FirstChild(); !run.IsNil(); run = run.NextSibling() {
		if run.Kind() == kind {
			return run
		}
	}
	return Node{}
}

// IsAncestorOf reports whether n is a proper ancestor of other.
func (n Node) IsAncestorOf(other Node) bool {
	if n.IsNil() {
		return false
	}
	for run := other.Context(); !run.IsNil(); run = run.Context() {
		if run == n {
			return true
		}
	}
	return false
}

// ProcessDeclarations reports the declarations this node makes visible, as
// implemented by the tree language.  Nodes of a tree without a language
// declare nothing.
func (n Node) ProcessDeclarations(processor ScopeProcessor, sub types.Substitutor, lastParent, place Node) bool {
	if n.IsNil() || n.tree.lang == nil {
		return true
	}
	return n.tree.lang.ProcessDeclarations(n, processor, sub, lastParent, place)
}

// Path returns the kinds and names from the root down to n, e.g.
// "file/class:Foo/method:bar".
func (n Node) Path() string {
	var parts []string
	for run := n; !run.IsNil(); run = run.Context() {
		parts = append(parts, run.label())
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

func (n Node) label() string {
	if name := n.Name(); name != "" {
		return n.Kind().String() + ":" + name
	}
	return n.Kind().String()
}

// String implements fmt.Stringer
func (n Node) String() string {
	if n.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%d", n.label(), n.id)
}
