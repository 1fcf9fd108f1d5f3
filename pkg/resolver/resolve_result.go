package resolver

import (
	"fmt"

	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/types"
)

// ResolveResult is a candidate declaration found by a resolution query.
type ResolveResult struct {
	// Element is the candidate declaration.
	Element psi.Element
	// Substitutor binds the type parameters of the element at the place.
	Substitutor types.Substitutor
	// ResolveContext is the category "use" call that made the element
	// visible, if any.
	ResolveContext psi.Node
}

// String implements fmt.Stringer
func (r *ResolveResult) String() string {
	if r.ResolveContext.IsNil() {
		return fmt.Sprintf("%s(%s)", r.Element.Kind(), r.Element.Name())
	}
	return fmt.Sprintf("%s(%s) via %v", r.Element.Kind(), r.Element.Name(), r.ResolveContext)
}

// MapToElements returns the elements of the given results.
func MapToElements(candidates []*ResolveResult) []psi.Element {
	elements := make([]psi.Element, len(candidates))
	for i, candidate := range candidates {
		elements[i] = candidate.Element
	}
	return elements
}
