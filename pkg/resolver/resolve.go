package resolver

import (
	"github.com/stackb/groovy-resolve/pkg/psi"
)

// ResolveProperty returns the nearest variable or script binding named name
// that is visible from place, other than place itself.  The result is a tree
// node except for the implicit parameter of a closure.
func ResolveProperty(place psi.Node, name string) (psi.Element, bool) {
	processor := NewPropertyResolverProcessor(name, place, false)
	return resolveExistingElement(place, processor,
		psi.KindVariable,
		psi.KindField,
		psi.KindParameter,
		psi.KindReferenceExpression,
	)
}

// ResolveClass returns the nearest class named name that is visible from
// place, other than place itself.
func ResolveClass(place psi.Node, name string) (psi.Node, bool) {
	processor := NewClassResolverProcessor(name, place, false)
	element, ok := resolveExistingElement(place, processor, psi.KindClass)
	if !ok {
		return psi.Node{}, false
	}
	class, ok := element.(psi.Node)
	return class, ok
}

func resolveExistingElement(place psi.Node, processor *ResolverProcessor, kinds ...psi.Kind) (psi.Element, bool) {
	TreeWalkUp(place, processor)
	for _, candidate := range processor.Candidates() {
		element := candidate.Element
		if node, ok := element.(psi.Node); ok && node == place {
			continue
		}
		for _, kind := range kinds {
			if element.Kind() == kind {
				return element, true
			}
		}
	}
	return nil, false
}
