package psi

import "fmt"

// Kind classifies a syntax tree node (or a synthetic element) by its shape.
type Kind int

const (
	KindInvalid Kind = iota
	KindFile
	KindClass
	KindMethod
	KindField
	KindParameter
	KindVariableDeclaration
	KindVariable
	KindBlock
	KindClosableBlock
	KindForStatement
	KindLabeledStatement
	KindMethodCall
	KindArgumentList
	KindReferenceExpression
	KindClassLiteral
	KindAssignment
	KindLiteral
	KindStatement
	KindPackage
)

var kindNames = map[Kind]string{
	KindInvalid:             "invalid",
	KindFile:                "file",
	KindClass:               "class",
	KindMethod:              "method",
	KindField:               "field",
	KindParameter:           "parameter",
	KindVariableDeclaration: "variable_declaration",
	KindVariable:            "variable",
	KindBlock:               "block",
	KindClosableBlock:       "closure",
	KindForStatement:        "for",
	KindLabeledStatement:    "labeled_statement",
	KindMethodCall:          "call",
	KindArgumentList:        "argument_list",
	KindReferenceExpression: "reference",
	KindClassLiteral:        "class_literal",
	KindAssignment:          "assignment",
	KindLiteral:             "literal",
	KindStatement:           "statement",
	KindPackage:             "package",
}

// String implements fmt.Stringer
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the kind having the given name.
func ParseKind(name string) (Kind, bool) {
	for kind, kindName := range kindNames {
		if kindName == name && kind != KindInvalid {
			return kind, true
		}
	}
	return KindInvalid, false
}

// IsMember reports whether the kind is a member-level declaration (a class,
// method or field).  Category scopes and labels never cross a member.
func (k Kind) IsMember() bool {
	switch k {
	case KindClass, KindMethod, KindField:
		return true
	}
	return false
}

// IsVariable reports whether the kind declares a variable.
func (k Kind) IsVariable() bool {
	switch k {
	case KindVariable, KindField, KindParameter:
		return true
	}
	return false
}
