package psi

import (
	"github.com/stackb/groovy-resolve/pkg/types"
)

// A method call node has the invoked expression as its first child, then an
// optional argument list, then zero or more trailing closure arguments:
//
//	call:use
//	├ reference:use
//	├ argument_list
//	│ └ reference:Foo
//	└ closure
//
// A reference expression may carry its qualifier as its single child.

// InvokedExpression returns the expression a method call invokes.
func InvokedExpression(call Node) Node {
	if call.Kind() != KindMethodCall {
		return Node{}
	}
	return call.FirstChild()
}

// ArgumentList returns the argument list of a method call, if any.
func ArgumentList(call Node) Node {
	if call.Kind() != KindMethodCall {
		return Node{}
	}
	return call.Child(KindArgumentList)
}

// ExpressionArguments returns the parenthesized arguments of a method call.
func ExpressionArguments(call Node) []Node {
	return ArgumentList(call).Children()
}

// ClosureArguments returns the trailing closure arguments of a method call.
func ClosureArguments(call Node) []Node {
	if call.Kind() != KindMethodCall {
		return nil
	}
	return call.ChildrenOfKind(KindClosableBlock)
}

// Qualifier returns the qualifier of a reference expression, if any.
func Qualifier(ref Node) Node {
	if ref.Kind() != KindReferenceExpression {
		return Node{}
	}
	return ref.FirstChild()
}

// IsUnqualifiedReference reports whether n is a reference expression
// without a qualifier.
func IsUnqualifiedReference(n Node) bool {
	return n.Kind() == KindReferenceExpression && Qualifier(n).IsNil()
}

// Parameters returns the parameters declared by a method, closure or for
// statement.
func Parameters(n Node) []Node {
	return n.ChildrenOfKind(KindParameter)
}

// Signature implements the MethodElement interface for method nodes.  Other
// kinds return the zero signature.
func (n Node) Signature() types.MethodSignature {
	if n.Kind() != KindMethod {
		return types.MethodSignature{}
	}
	params := Parameters(n)
	sig := types.MethodSignature{
		Name:   n.Name(),
		Params: make([]types.Type, len(params)),
	}
	for i, param := range params {
		t := param.Type()
		if t == nil {
			t = types.Object
		}
		sig.Params[i] = t
	}
	return sig
}
