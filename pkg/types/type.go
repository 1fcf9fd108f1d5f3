package types

import (
	"strings"
)

// Type is a resolved type as seen by name resolution.
type Type interface {
	// CanonicalText returns the fully-qualified text of the type, including
	// type arguments.  An empty string means no canonical text is available
	// (wildcards, unresolved types).
	CanonicalText() string
	// String implements fmt.Stringer
	String() string
}

// ClassType is a reference to a class or interface, possibly parameterized.
type ClassType struct {
	// Name is the fully-qualified class name.
	Name string
	// Args are the type arguments, if any.
	Args []Type
}

// NewClassType constructs a new class type pointer with the given arguments.
func NewClassType(name string, args ...Type) *ClassType {
	return &ClassType{
		Name: name,
		Args: args,
	}
}

// CanonicalText implements part of the Type interface.
func (t *ClassType) CanonicalText() string {
	if t.Name == "" {
		return ""
	}
	if len(t.Args) == 0 {
		return t.Name
	}
	var buf strings.Builder
	buf.WriteString(t.Name)
	buf.WriteRune('<')
	for i, arg := range t.Args {
		if i > 0 {
			buf.WriteString(", ")
		}
		text := arg.CanonicalText()
		if text == "" {
			text = "?"
		}
		buf.WriteString(text)
	}
	buf.WriteRune('>')
	return buf.String()
}

// String implements fmt.Stringer
func (t *ClassType) String() string {
	return t.CanonicalText()
}

// IsRaw reports whether the type carries no type arguments.
func (t *ClassType) IsRaw() bool {
	return len(t.Args) == 0
}

// ArrayType is an array of a component type.
type ArrayType struct {
	Component Type
}

// NewArrayType constructs an array of the given component type.
func NewArrayType(component Type) *ArrayType {
	return &ArrayType{Component: component}
}

// CanonicalText implements part of the Type interface.
func (t *ArrayType) CanonicalText() string {
	text := t.Component.CanonicalText()
	if text == "" {
		return ""
	}
	return text + "[]"
}

// String implements fmt.Stringer
func (t *ArrayType) String() string {
	return t.Component.String() + "[]"
}

// WildcardType is a "?" type argument with an optional bound.
type WildcardType struct {
	// Bound is the upper bound, or nil.
	Bound Type
}

// CanonicalText implements part of the Type interface.  Wildcards have no
// canonical text.
func (t *WildcardType) CanonicalText() string {
	return ""
}

// String implements fmt.Stringer
func (t *WildcardType) String() string {
	if t.Bound == nil {
		return "?"
	}
	return "? extends " + t.Bound.String()
}

// PrimitiveType is one of the builtin value types (int, boolean, ...).
type PrimitiveType string

const (
	Int     PrimitiveType = "int"
	Long    PrimitiveType = "long"
	Boolean PrimitiveType = "boolean"
	Double  PrimitiveType = "double"
	Void    PrimitiveType = "void"
)

// CanonicalText implements part of the Type interface.
func (t PrimitiveType) CanonicalText() string {
	return string(t)
}

// String implements fmt.Stringer
func (t PrimitiveType) String() string {
	return string(t)
}

// well-known types
var (
	Object       = NewClassType("java.lang.Object")
	Comparable   = NewClassType("java.lang.Comparable")
	Serializable = NewClassType("java.io.Serializable")
	String       = NewClassType("java.lang.String")
	Class        = NewClassType("java.lang.Class")
	Closure      = NewClassType("groovy.lang.Closure")
	List         = NewClassType("java.util.List")
)

// ArrayPseudoSuperTypes returns the implicit supertypes of every array type,
// in lookup order.
func ArrayPseudoSuperTypes() []Type {
	return []Type{Object, Comparable, Serializable}
}

// RawCanonicalText returns the canonical text of the type with generic
// argument lists removed, e.g. "java.util.List<String>" -> "java.util.List".
// The boolean result is false when the type has no canonical text.
func RawCanonicalText(t Type) (string, bool) {
	if t == nil {
		return "", false
	}
	text := t.CanonicalText()
	if text == "" {
		return "", false
	}
	if i := strings.IndexRune(text, '<'); i > 0 {
		return text[:i], true
	}
	return text, true
}

// Erasure returns the raw form of the given type.
func Erasure(t Type) Type {
	switch t := t.(type) {
	case *ClassType:
		if t.IsRaw() {
			return t
		}
		return NewClassType(t.Name)
	case *ArrayType:
		return NewArrayType(Erasure(t.Component))
	case *WildcardType:
		if t.Bound == nil {
			return Object
		}
		return Erasure(t.Bound)
	}
	return t
}

// ParseType parses a canonical type text such as "java.util.Map<K, V>" or
// "java.lang.String[]" into a Type.  Single uppercase-initial names without a
// package (type parameters) and "?" are accepted.
func ParseType(text string) Type {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return nil
	case text == "?":
		return &WildcardType{}
	case strings.HasPrefix(text, "? extends "):
		return &WildcardType{Bound: ParseType(strings.TrimPrefix(text, "? extends "))}
	case strings.HasSuffix(text, "[]"):
		return NewArrayType(ParseType(strings.TrimSuffix(text, "[]")))
	}
	switch PrimitiveType(text) {
	case Int, Long, Boolean, Double, Void:
		return PrimitiveType(text)
	}
	open := strings.IndexRune(text, '<')
	if open < 0 || !strings.HasSuffix(text, ">") {
		return NewClassType(text)
	}
	var args []Type
	for _, arg := range splitTypeArgs(text[open+1 : len(text)-1]) {
		args = append(args, ParseType(arg))
	}
	return NewClassType(text[:open], args...)
}

// splitTypeArgs splits a comma separated argument list at nesting depth zero.
func splitTypeArgs(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
