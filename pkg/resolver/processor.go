package resolver

import (
	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/types"
)

// ResolverProcessor implements psi.ScopeProcessor by collecting candidates of
// the requested resolve kinds.  Unless it is collecting for completion, it
// asks the walk to stop once it has found a candidate named like the query
// (other than the place itself).
type ResolverProcessor struct {
	name          string
	kinds         map[ResolveKind]bool
	place         psi.Node
	forCompletion bool
	context       psi.Node
	candidates    []*ResolveResult
}

// NewResolverProcessor constructs a processor for the given name, place and
// target kinds.  When forCompletion is set the processor carries no name
// hint and collects every visible candidate.
func NewResolverProcessor(name string, place psi.Node, forCompletion bool, kinds ...ResolveKind) *ResolverProcessor {
	p := &ResolverProcessor{
		name:          name,
		kinds:         make(map[ResolveKind]bool, len(kinds)),
		place:         place,
		forCompletion: forCompletion,
	}
	for _, kind := range kinds {
		p.kinds[kind] = true
	}
	return p
}

// NewPropertyResolverProcessor returns a processor collecting variables and
// bindings named name.
func NewPropertyResolverProcessor(name string, place psi.Node, forCompletion bool) *ResolverProcessor {
	return NewResolverProcessor(name, place, forCompletion, ResolveKindProperty)
}

// NewClassResolverProcessor returns a processor collecting classes and
// packages named name.
func NewClassResolverProcessor(name string, place psi.Node, forCompletion bool) *ResolverProcessor {
	return NewResolverProcessor(name, place, forCompletion, ResolveKindClassOrPackage)
}

// NewMethodResolverProcessor returns a processor collecting methods named
// name.  It collects every overload and never stops the walk.
func NewMethodResolverProcessor(name string, place psi.Node) *ResolverProcessor {
	return NewResolverProcessor(name, place, false, ResolveKindMethod)
}

// NewCompletionProcessor returns a processor collecting every visible
// candidate of the given kinds.
func NewCompletionProcessor(place psi.Node, kinds ...ResolveKind) *ResolverProcessor {
	return NewResolverProcessor("", place, true, kinds...)
}

// NameHint implements part of the psi.ScopeProcessor interface.
func (p *ResolverProcessor) NameHint() (string, bool) {
	if p.forCompletion || p.name == "" {
		return "", false
	}
	return p.name, true
}

// ShouldProcess reports whether candidates of the given kind are collected.
func (p *ResolverProcessor) ShouldProcess(kind ResolveKind) bool {
	return p.kinds[kind]
}

// Execute implements part of the psi.ScopeProcessor interface.
func (p *ResolverProcessor) Execute(element psi.Element, sub types.Substitutor) bool {
	if !p.ShouldProcess(GetResolveKind(element)) {
		return true
	}
	if name, ok := p.NameHint(); ok && name != element.Name() {
		return true
	}
	p.candidates = append(p.candidates, &ResolveResult{
		Element:        element,
		Substitutor:    sub,
		ResolveContext: p.context,
	})
	if p.forCompletion || p.name == "" || p.isOverloadable() {
		return true
	}
	return element == psi.Element(p.place)
}

func (p *ResolverProcessor) isOverloadable() bool {
	return p.kinds[ResolveKindMethod]
}

// SetCurrentFileResolveContext records the category call that makes the
// candidates offered next visible.  Pass an absent node to clear it.
func (p *ResolverProcessor) SetCurrentFileResolveContext(call psi.Node) {
	p.context = call
}

// CurrentFileResolveContext returns the active category call, if any.
func (p *ResolverProcessor) CurrentFileResolveContext() psi.Node {
	return p.context
}

// Place returns the place the query started from.
func (p *ResolverProcessor) Place() psi.Node {
	return p.place
}

// Candidates returns the collected candidates in discovery order.
func (p *ResolverProcessor) Candidates() []*ResolveResult {
	return p.candidates
}

// HasCandidates reports whether anything has been collected.
func (p *ResolverProcessor) HasCandidates() bool {
	return len(p.candidates) > 0
}
