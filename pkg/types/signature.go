package types

import (
	"strings"
)

// MethodSignature is the name and erased parameter list of a method.
type MethodSignature struct {
	Name   string
	Params []Type
}

// NewMethodSignature constructs a new signature from a name and parameter
// types.
func NewMethodSignature(name string, params ...Type) MethodSignature {
	return MethodSignature{
		Name:   name,
		Params: params,
	}
}

// Equal reports whether both signatures have the same name and the same
// erased parameter types.
func (s MethodSignature) Equal(other MethodSignature) bool {
	if s.Name != other.Name || len(s.Params) != len(other.Params) {
		return false
	}
	for i, p := range s.Params {
		a, aok := RawCanonicalText(Erasure(p))
		b, bok := RawCanonicalText(Erasure(other.Params[i]))
		if !aok || !bok || a != b {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer
func (s MethodSignature) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.String()
	}
	return s.Name + "(" + strings.Join(params, ", ") + ")"
}
