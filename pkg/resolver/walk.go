package resolver

import (
	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/types"
)

// TreeWalkUp offers the declarations of every scope enclosing place to the
// processor, innermost scope first.  Each scope is told which of its children
// the walk came up from so it only offers what is visible from there.  It
// returns false as soon as the processor asks to stop.
func TreeWalkUp(place psi.Node, processor psi.ScopeProcessor) bool {
	var lastParent psi.Node
	for run := place; !run.IsNil(); run = run.Context() {
		if !run.ProcessDeclarations(processor, types.EmptySubstitutor, lastParent, place) {
			return false
		}
		lastParent = run
	}
	return true
}

// ProcessChildren offers the declarations of the children of element,
// walking backward from the sibling preceding lastParent (or from the last
// child when lastParent is absent).  Each child is visited in full.
func ProcessChildren(element psi.Node, processor psi.ScopeProcessor, sub types.Substitutor, lastParent, place psi.Node) bool {
	run := element.LastChild()
	if !lastParent.IsNil() {
		run = lastParent.PrevSibling()
	}
	for ; !run.IsNil(); run = run.PrevSibling() {
		if !run.ProcessDeclarations(processor, sub, psi.Node{}, place) {
			return false
		}
	}
	return true
}

// ProcessElement offers a named element to the processor when it matches the
// processor's name hint.  Elements that do not match are skipped and the walk
// continues.
func ProcessElement(processor psi.ScopeProcessor, element psi.Element) bool {
	if name, ok := processor.NameHint(); ok && name != element.Name() {
		return true
	}
	return processor.Execute(element, types.EmptySubstitutor)
}
