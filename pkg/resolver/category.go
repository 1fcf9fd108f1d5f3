package resolver

import (
	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/registry"
	"github.com/stackb/groovy-resolve/pkg/types"
)

// useCategorySignature is the signature of the default method
// Object.use(Class, Closure).
var useCategorySignature = types.NewMethodSignature("use", types.Class, types.Closure)

// ProcessCategoryMembers offers the members of every category class that is
// in use at place.  A category is in use inside the closure argument of a
// call
//
//	use(Category) { ... }
//
// that invokes the default method use(Class, Closure).  The search stops at
// the enclosing member.  While a category's members are offered, the
// processor's resolve context is the use call.
func (r *Resolver) ProcessCategoryMembers(place psi.Node, processor *ResolverProcessor, selfType types.Type) bool {
	var prev psi.Node
	for run := place; !run.IsNil(); prev, run = run, run.Context() {
		if run.Kind().IsMember() {
			break
		}
		if run.Kind() != psi.KindMethodCall {
			continue
		}

		call := run
		invoked := psi.InvokedExpression(call)
		if invoked.Kind() != psi.KindReferenceExpression || invoked.Name() != "use" {
			continue
		}
		closures := psi.ClosureArguments(call)
		if len(closures) != 1 || closures[0] != prev {
			continue
		}
		if !r.useCategoryClass(call, selfType) {
			continue
		}
		args := psi.ExpressionArguments(call)
		if len(args) != 1 || args[0].Kind() != psi.KindReferenceExpression {
			continue
		}
		class, ok := ResolveClass(args[0], args[0].Name())
		if !ok {
			r.logger.Debug().Stringer("call", call).Str("category", args[0].Name()).Msg("category class not resolved")
			continue
		}

		r.logger.Debug().Stringer("call", call).Stringer("category", class).Msg("processing category members")
		if !processCategoryClass(call, class, processor, place) {
			return false
		}
	}

	return true
}

func processCategoryClass(call, class psi.Node, processor *ResolverProcessor, place psi.Node) bool {
	processor.SetCurrentFileResolveContext(call)
	defer processor.SetCurrentFileResolveContext(psi.Node{})

	return class.ProcessDeclarations(processor, types.EmptySubstitutor, psi.Node{}, place)
}

// useCategoryClass reports whether call invokes the default method
// use(Class, Closure).
func (r *Resolver) useCategoryClass(call psi.Node, selfType types.Type) bool {
	resolved, ok := r.ResolveMethodCall(call, selfType)
	if !ok {
		return false
	}
	method, ok := resolved.(*registry.Method)
	if !ok || method.Origin() != registry.OriginDefault {
		return false
	}
	return method.Signature().Equal(useCategorySignature)
}
