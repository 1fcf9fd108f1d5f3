package resolver

import (
	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/types"
)

// ResolveMethod returns the method candidates for a method reference, in
// lookup order.  An unqualified reference sees the methods in lexical scope,
// then the members of the categories in use, then the extension methods of
// selfType (java.lang.Object when nil).  A qualified reference sees the
// extension methods of its qualifier's type.
func (r *Resolver) ResolveMethod(ref psi.Node, selfType types.Type) []*ResolveResult {
	if selfType == nil {
		selfType = types.Object
	}
	processor := NewMethodResolverProcessor(ref.Name(), ref)

	if qualifier := psi.Qualifier(ref); !qualifier.IsNil() {
		if qualifierType := r.TypeOf(qualifier, selfType); qualifierType != nil {
			r.ProcessNonCodeMethods(qualifierType, processor)
		}
		return processor.Candidates()
	}

	if TreeWalkUp(ref, processor) && r.ProcessCategoryMembers(ref, processor, selfType) {
		r.ProcessNonCodeMethods(selfType, processor)
	}
	return processor.Candidates()
}

// ResolveMethodCall returns the method a call invokes: the first candidate
// that takes as many parameters as the call passes arguments (closure
// arguments included) and whose parameter types accept the argument types
// that are known.
func (r *Resolver) ResolveMethodCall(call psi.Node, selfType types.Type) (psi.Element, bool) {
	invoked := psi.InvokedExpression(call)
	if invoked.Kind() != psi.KindReferenceExpression {
		return nil, false
	}
	args := append(psi.ExpressionArguments(call), psi.ClosureArguments(call)...)

	for _, candidate := range r.ResolveMethod(invoked, selfType) {
		method, ok := candidate.Element.(psi.MethodElement)
		if !ok {
			continue
		}
		if r.isApplicable(method.Signature(), args, selfType) {
			r.logger.Debug().Stringer("call", call).Stringer("method", method.Signature()).Msg("resolved method call")
			return method, true
		}
	}
	return nil, false
}

func (r *Resolver) isApplicable(sig types.MethodSignature, args []psi.Node, selfType types.Type) bool {
	if len(sig.Params) != len(args) {
		return false
	}
	for i, arg := range args {
		argType := r.TypeOf(arg, selfType)
		if argType == nil {
			continue
		}
		if !r.IsAssignable(sig.Params[i], argType) {
			return false
		}
	}
	return true
}

// IsAssignable reports whether a value of type from can be passed where to is
// expected, comparing erased types through the supertype closure of from.
func (r *Resolver) IsAssignable(to, from types.Type) bool {
	want, ok := types.RawCanonicalText(types.Erasure(to))
	if !ok || want == types.Object.Name {
		return true
	}
	visited := make(map[string]bool)
	queue := []types.Type{types.Erasure(from)}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		name, ok := types.RawCanonicalText(t)
		if !ok || visited[name] {
			continue
		}
		if name == want {
			return true
		}
		visited[name] = true
		if _, ok := t.(*types.ArrayType); ok {
			queue = append(queue, types.ArrayPseudoSuperTypes()...)
			continue
		}
		for _, super := range r.hierarchy.SuperTypes(t) {
			queue = append(queue, types.Erasure(super))
		}
	}
	return false
}

// TypeOf returns the static type of an expression node when it can be
// determined without full inference, or nil.
func (r *Resolver) TypeOf(expr psi.Node, selfType types.Type) types.Type {
	switch expr.Kind() {
	case psi.KindClosableBlock:
		return types.Closure
	case psi.KindClassLiteral:
		return types.Class
	case psi.KindLiteral:
		return expr.Type()
	case psi.KindReferenceExpression:
		if t := expr.Type(); t != nil {
			return t
		}
		if !psi.Qualifier(expr).IsNil() {
			return nil
		}
		if property, ok := ResolveProperty(expr, expr.Name()); ok {
			if property.Kind() == psi.KindReferenceExpression {
				return nil
			}
			if typed, ok := property.(psi.TypedElement); ok {
				return typed.Type()
			}
			return nil
		}
		if _, ok := ResolveClass(expr, expr.Name()); ok {
			return types.Class
		}
	case psi.KindMethodCall:
		if method, ok := r.ResolveMethodCall(expr, selfType); ok {
			if typed, ok := method.(psi.TypedElement); ok {
				return typed.Type()
			}
		}
	}
	return nil
}

// CompletionVariants returns every candidate visible at place: declarations
// in lexical scope, category members and the extension members of selfType
// (java.lang.Object when nil).
func (r *Resolver) CompletionVariants(place psi.Node, selfType types.Type) []*ResolveResult {
	if selfType == nil {
		selfType = types.Object
	}
	processor := NewCompletionProcessor(place, ResolveKindProperty, ResolveKindMethod, ResolveKindClassOrPackage)
	TreeWalkUp(place, processor)
	r.ProcessCategoryMembers(place, processor, selfType)
	r.ProcessNonCodeMethods(selfType, processor)
	return processor.Candidates()
}
