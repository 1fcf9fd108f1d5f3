package groovy

import (
	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/types"
)

// File returns the spec of a script file.
func File(statements ...*psi.Spec) *psi.Spec {
	return psi.S(psi.KindFile, "", statements...)
}

// Class returns the spec of a class with the given members.
func Class(name string, members ...*psi.Spec) *psi.Spec {
	return psi.S(psi.KindClass, name, members...)
}

// Method returns the spec of a method.  Children are its parameters followed
// by its body.
func Method(name string, children ...*psi.Spec) *psi.Spec {
	return psi.S(psi.KindMethod, name, children...)
}

// Field returns the spec of a field of the given type.
func Field(name string, t types.Type) *psi.Spec {
	return psi.S(psi.KindField, name).Typed(t)
}

// Param returns the spec of a parameter of the given type.
func Param(name string, t types.Type) *psi.Spec {
	return psi.S(psi.KindParameter, name).Typed(t)
}

// Var returns the spec of a variable with an optional initializer.
func Var(name string, initializer ...*psi.Spec) *psi.Spec {
	return psi.S(psi.KindVariable, name, initializer...)
}

// Decl returns the spec of a (multi-)variable declaration.
func Decl(variables ...*psi.Spec) *psi.Spec {
	return psi.S(psi.KindVariableDeclaration, "", variables...)
}

// Block returns the spec of an open block.
func Block(statements ...*psi.Spec) *psi.Spec {
	return psi.S(psi.KindBlock, "", statements...)
}

// Closure returns the spec of a closure.  Children are its parameters
// followed by its statements.
func Closure(children ...*psi.Spec) *psi.Spec {
	return psi.S(psi.KindClosableBlock, "", children...)
}

// Ref returns the spec of a reference expression with an optional
// qualifier.
func Ref(name string, qualifier ...*psi.Spec) *psi.Spec {
	return psi.S(psi.KindReferenceExpression, name, qualifier...)
}

// Call returns the spec of a call of the named method with the given
// parenthesized arguments and trailing closures.
func Call(name string, args []*psi.Spec, closures ...*psi.Spec) *psi.Spec {
	return Invoke(Ref(name), args, closures...)
}

// Invoke returns the spec of a call of the given invoked expression.
func Invoke(invoked *psi.Spec, args []*psi.Spec, closures ...*psi.Spec) *psi.Spec {
	children := []*psi.Spec{invoked, psi.S(psi.KindArgumentList, "", args...)}
	return psi.S(psi.KindMethodCall, invoked.Name, append(children, closures...)...)
}

// Args is shorthand for an argument slice.
func Args(args ...*psi.Spec) []*psi.Spec {
	return args
}

// Labeled returns the spec of a labeled statement.
func Labeled(label string, statement *psi.Spec) *psi.Spec {
	return psi.S(psi.KindLabeledStatement, label, statement)
}

// For returns the spec of a for-in loop.
func For(param *psi.Spec, body *psi.Spec) *psi.Spec {
	return psi.S(psi.KindForStatement, "", param, body)
}

// Assign returns the spec of an assignment.
func Assign(target, value *psi.Spec) *psi.Spec {
	return psi.S(psi.KindAssignment, "", target, value)
}

// Lit returns the spec of a literal of the given type.
func Lit(t types.Type) *psi.Spec {
	return psi.S(psi.KindLiteral, "").Typed(t)
}

// ClassLit returns the spec of a class literal (Foo.class).
func ClassLit(t types.Type) *psi.Spec {
	return psi.S(psi.KindClassLiteral, "").Typed(t)
}

// Stmt returns the spec of an expression statement.
func Stmt(children ...*psi.Spec) *psi.Spec {
	return psi.S(psi.KindStatement, "", children...)
}
