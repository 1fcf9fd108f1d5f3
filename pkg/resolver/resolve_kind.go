package resolver

import (
	"github.com/stackb/groovy-resolve/pkg/psi"
)

// ResolveKind is the broad category of a candidate declaration.
type ResolveKind int

const (
	// ResolveKindProperty covers variables and bare name references.
	ResolveKindProperty ResolveKind = iota
	// ResolveKindMethod covers methods.
	ResolveKindMethod
	// ResolveKindClassOrPackage covers everything else.
	ResolveKindClassOrPackage
)

// String implements fmt.Stringer
func (k ResolveKind) String() string {
	switch k {
	case ResolveKindProperty:
		return "PROPERTY"
	case ResolveKindMethod:
		return "METHOD"
	}
	return "CLASS_OR_PACKAGE"
}

// GetResolveKind classifies an element by its kind.
func GetResolveKind(element psi.Element) ResolveKind {
	kind := element.Kind()
	switch {
	case kind.IsVariable():
		return ResolveKindProperty
	case kind == psi.KindReferenceExpression:
		return ResolveKindProperty
	case kind == psi.KindMethod:
		return ResolveKindMethod
	}
	return ResolveKindClassOrPackage
}
