// Package groovy implements declaration processing for the node kinds of a
// Groovy syntax tree.
package groovy

import (
	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/resolver"
	"github.com/stackb/groovy-resolve/pkg/types"
)

// ImplicitParameterName is the name of the parameter a closure declares when
// it declares none explicitly.
const ImplicitParameterName = "it"

// Language implements psi.Language for Groovy.
type Language struct{}

// NewTree constructs a new, empty Groovy tree.
func NewTree() *psi.Tree {
	return psi.NewTree(Language{})
}

// Build builds a Groovy tree from a spec.
func Build(root *psi.Spec) (*psi.Tree, map[string]psi.Node, error) {
	return psi.Build(Language{}, root)
}

// MustBuild is like Build but panics on error.
func MustBuild(root *psi.Spec) (*psi.Tree, map[string]psi.Node) {
	return psi.MustBuild(Language{}, root)
}

// ProcessDeclarations implements the psi.Language interface.
func (Language) ProcessDeclarations(n psi.Node, processor psi.ScopeProcessor, sub types.Substitutor, lastParent, place psi.Node) bool {
	switch n.Kind() {
	case psi.KindFile:
		return processFile(n, processor, sub, lastParent, place)
	case psi.KindBlock, psi.KindArgumentList:
		// locals of a block are only visible inside it
		if lastParent.IsNil() {
			return true
		}
		return resolver.ProcessChildren(n, processor, sub, lastParent, place)
	case psi.KindClosableBlock:
		return processClosure(n, processor, sub, lastParent, place)
	case psi.KindClass:
		return processClass(n, processor)
	case psi.KindMethod:
		return processMethod(n, processor, lastParent)
	case psi.KindVariableDeclaration:
		return processVariableDeclaration(n, processor, lastParent)
	case psi.KindVariable, psi.KindField, psi.KindParameter:
		// a variable is not in scope within its own initializer
		if !lastParent.IsNil() {
			return true
		}
		return resolver.ProcessElement(processor, n)
	case psi.KindForStatement:
		if lastParent.IsNil() {
			return true
		}
		return resolver.ProcessChildren(n, processor, sub, lastParent, place)
	case psi.KindLabeledStatement:
		if !lastParent.IsNil() {
			return true
		}
		return n.LastChild().ProcessDeclarations(processor, sub, psi.Node{}, place)
	case psi.KindAssignment:
		return processAssignment(n, processor, lastParent)
	}
	return true
}

// processFile offers the top-level declarations of a script, last first.
// Classes and script methods are offered themselves rather than their
// members, including the enclosing one and those declared after place.
func processFile(file psi.Node, processor psi.ScopeProcessor, sub types.Substitutor, lastParent, place psi.Node) bool {
	run := file.LastChild()
	if !lastParent.IsNil() {
		run = lastParent.PrevSibling()
	}
	for ; !run.IsNil(); run = run.PrevSibling() {
		switch run.Kind() {
		case psi.KindClass, psi.KindMethod:
			if !resolver.ProcessElement(processor, run) {
				return false
			}
		default:
			if !run.ProcessDeclarations(processor, sub, psi.Node{}, place) {
				return false
			}
		}
	}
	// classes and script methods are visible throughout the file
	if !lastParent.IsNil() {
		for run := lastParent; !run.IsNil(); run = run.NextSibling() {
			if run.Kind() != psi.KindClass && run.Kind() != psi.KindMethod {
				continue
			}
			if !resolver.ProcessElement(processor, run) {
				return false
			}
		}
	}
	return true
}

// processClosure offers the closure's parameters and preceding statements
// when entered from inside.  A closure without parameters declares "it".
func processClosure(closure psi.Node, processor psi.ScopeProcessor, sub types.Substitutor, lastParent, place psi.Node) bool {
	if lastParent.IsNil() {
		return true
	}
	if !resolver.ProcessChildren(closure, processor, sub, lastParent, place) {
		return false
	}
	if len(psi.Parameters(closure)) == 0 {
		return resolver.ProcessElement(processor, &ImplicitParameter{Closure: closure})
	}
	return true
}

// processClass offers the members of a class: nested classes, methods and
// fields.
func processClass(class psi.Node, processor psi.ScopeProcessor) bool {
	for _, member := range class.Children() {
		if !member.Kind().IsMember() {
			continue
		}
		if !resolver.ProcessElement(processor, member) {
			return false
		}
	}
	return true
}

// processMethod offers the parameters of a method when entered from inside
// and the method itself otherwise.
func processMethod(method psi.Node, processor psi.ScopeProcessor, lastParent psi.Node) bool {
	if lastParent.IsNil() {
		return resolver.ProcessElement(processor, method)
	}
	for _, param := range psi.Parameters(method) {
		if !resolver.ProcessElement(processor, param) {
			return false
		}
	}
	return true
}

// processVariableDeclaration offers the variables of a (multi-)variable
// declaration.  Entered from an initializer, only the variables declared
// before it are visible.
func processVariableDeclaration(decl psi.Node, processor psi.ScopeProcessor, lastParent psi.Node) bool {
	run := decl.LastChild()
	if !lastParent.IsNil() {
		run = lastParent.PrevSibling()
	}
	for ; !run.IsNil(); run = run.PrevSibling() {
		if run.Kind() != psi.KindVariable {
			continue
		}
		if !resolver.ProcessElement(processor, run) {
			return false
		}
	}
	return true
}

// processAssignment offers the target of a top-level script assignment
// "x = ...", which declares a binding variable.
func processAssignment(assignment psi.Node, processor psi.ScopeProcessor, lastParent psi.Node) bool {
	if !lastParent.IsNil() || assignment.Context().Kind() != psi.KindFile {
		return true
	}
	target := assignment.FirstChild()
	if !psi.IsUnqualifiedReference(target) {
		return true
	}
	return resolver.ProcessElement(processor, target)
}
