package resolver

import (
	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/types"
)

// ProcessNonCodeMethods offers the extension members available on t: the
// default methods, then the dynamic methods and properties registered for
// its canonical name, then those of each supertype in declaration order.
// Arrays are treated as extending Object, Comparable and Serializable.  Each
// canonical type is visited at most once per call.
func (r *Resolver) ProcessNonCodeMethods(t types.Type, processor psi.ScopeProcessor) bool {
	return r.processNonCodeMethods(t, processor, make(map[string]bool))
}

func (r *Resolver) processNonCodeMethods(t types.Type, processor psi.ScopeProcessor, visited map[string]bool) bool {
	qName, ok := types.RawCanonicalText(t)
	if !ok {
		return true
	}
	if visited[qName] {
		r.logger.Debug().Str("type", qName).Msg("extension members already visited")
		return true
	}
	visited[qName] = true
	r.logger.Debug().Str("type", qName).Msg("visiting extension members")

	for _, method := range r.defaults.Methods(qName) {
		if !ProcessElement(processor, method) {
			return false
		}
	}

	for _, method := range r.dynamic.Methods(qName) {
		if !ProcessElement(processor, method) {
			return false
		}
	}

	for _, property := range r.dynamic.Properties(qName) {
		if !ProcessElement(processor, property) {
			return false
		}
	}

	if _, ok := t.(*types.ArrayType); ok {
		for _, super := range types.ArrayPseudoSuperTypes() {
			if !r.processNonCodeMethods(super, processor, visited) {
				return false
			}
		}
		return true
	}

	for _, super := range r.hierarchy.SuperTypes(t) {
		if !r.processNonCodeMethods(types.Erasure(super), processor, visited) {
			return false
		}
	}

	return true
}
