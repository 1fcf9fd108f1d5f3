package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dghubble/trie"
)

// Hierarchy supplies the declared supertypes of a type.
type Hierarchy interface {
	// SuperTypes returns the direct supertypes of the given type, in
	// declaration order.
	SuperTypes(t Type) []Type
}

// ClassInfo records the declared supertypes of a class.
type ClassInfo struct {
	// Name is the fully-qualified class name.
	Name string
	// TypeParams are the names of the type parameters of the class.
	TypeParams []string
	// Supers are the declared supertypes (superclass first, then interfaces).
	Supers []Type
}

// String implements fmt.Stringer
func (c *ClassInfo) String() string {
	name := c.Name
	if len(c.TypeParams) > 0 {
		name += "<" + strings.Join(c.TypeParams, ", ") + ">"
	}
	return fmt.Sprintf("%s %v", name, c.Supers)
}

// ClassHierarchy implements Hierarchy over registered classes, indexed by
// qualified name.
type ClassHierarchy struct {
	classes *trie.PathTrie
}

// NewClassHierarchy constructs a new, empty ClassHierarchy.
func NewClassHierarchy() *ClassHierarchy {
	return &ClassHierarchy{
		classes: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: QualifiedNameSegmenter,
		}),
	}
}

// PutClass registers a class.  It is an error to register the same class
// twice.
func (h *ClassHierarchy) PutClass(info *ClassInfo) error {
	if info.Name == "" {
		return fmt.Errorf("class name is required")
	}
	if _, ok := h.GetClass(info.Name); ok {
		return fmt.Errorf("duplicate class registration: %s", info.Name)
	}
	h.classes.Put(info.Name, info)
	return nil
}

// GetClass returns the class registered under the given qualified name.
func (h *ClassHierarchy) GetClass(name string) (*ClassInfo, bool) {
	if value := h.classes.Get(name); value != nil {
		return value.(*ClassInfo), true
	}
	return nil, false
}

// GetClasses returns all registered classes,
// sorted by name.
func (h *ClassHierarchy) GetClasses() (classes []*ClassInfo) {
	h.classes.Walk(func(key string, value interface{}) error {
		classes = append(classes, value.(*ClassInfo))
		return nil
	})
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].Name < classes[j].Name
	})
	return
}

// SuperTypes implements the Hierarchy interface.  Type arguments of a
// parameterized type are substituted into the declared supertypes.  Classes
// without declared supertypes extend java.lang.Object.
func (h *ClassHierarchy) SuperTypes(t Type) []Type {
	ct, ok := t.(*ClassType)
	if !ok {
		return nil
	}
	if ct.Name == Object.Name {
		return nil
	}
	info, ok := h.GetClass(ct.Name)
	if !ok || len(info.Supers) == 0 {
		return []Type{Object}
	}
	var sub Substitutor
	if len(ct.Args) == len(info.TypeParams) {
		for i, param := range info.TypeParams {
			sub = sub.Put(param, ct.Args[i])
		}
	}
	supers := make([]Type, len(info.Supers))
	for i, super := range info.Supers {
		supers[i] = substitute(super, sub)
	}
	return supers
}

// substitute replaces type parameter references in t with their bindings.
func substitute(t Type, sub Substitutor) Type {
	if len(sub) == 0 {
		return t
	}
	switch t := t.(type) {
	case *ClassType:
		if len(t.Args) == 0 {
			return sub.Substitute(t.Name, t)
		}
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = substitute(arg, sub)
		}
		return NewClassType(t.Name, args...)
	case *ArrayType:
		return NewArrayType(substitute(t.Component, sub))
	}
	return t
}

// QualifiedNameSegmenter segments string key paths by dot separators. For
// example, ".a.b.c" -> (".a", 2), (".b", 4), (".c", -1) in successive calls.
// It does not allocate any heap memory.
func QualifiedNameSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
