package psi

import (
	"github.com/stackb/groovy-resolve/pkg/types"
)

// Element is a named program entity that can be offered to a ScopeProcessor.
// Tree nodes are elements, as are the synthetic members contributed by
// registries.
type Element interface {
	// Name is the simple name of the element.
	Name() string
	// Kind classifies the element.
	Kind() Kind
}

// TypedElement is an Element with a declared type.
type TypedElement interface {
	Element
	Type() types.Type
}

// MethodElement is an Element with a method signature.
type MethodElement interface {
	Element
	Signature() types.MethodSignature
}

// ScopeProcessor receives candidate declarations one at a time during a
// scope walk.
type ScopeProcessor interface {
	// NameHint returns the only name the processor is interested in, if any.
	NameHint() (string, bool)
	// Execute offers an element to the processor.  Returning false stops the
	// walk.
	Execute(element Element, sub types.Substitutor) bool
}

// Language supplies the declaration-processing behavior of each node kind.
type Language interface {
	// ProcessDeclarations reports the declarations n makes visible to the
	// place.  lastParent is the child of n the walk came up from (absent
	// when n is visited from outside).  Returning false stops the walk.
	ProcessDeclarations(n Node, processor ScopeProcessor, sub types.Substitutor, lastParent, place Node) bool
}
