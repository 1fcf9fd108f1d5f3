package types

import (
	"sort"
	"strings"
)

// Substitutor maps type parameter names to the types bound to them at a use
// site.
type Substitutor map[string]Type

// EmptySubstitutor binds nothing.
var EmptySubstitutor = Substitutor(nil)

// Put returns a copy of the substitutor with the given binding added.
func (s Substitutor) Put(param string, t Type) Substitutor {
	next := make(Substitutor, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[param] = t
	return next
}

// Substitute returns the type bound to the given type parameter name, or the
// given fallback when none is bound.
func (s Substitutor) Substitute(param string, fallback Type) Type {
	if t, ok := s[param]; ok {
		return t
	}
	return fallback
}

// String implements fmt.Stringer
func (s Substitutor) String() string {
	if len(s) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var buf strings.Builder
	buf.WriteRune('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(k)
		buf.WriteString(" -> ")
		buf.WriteString(s[k].String())
	}
	buf.WriteRune('}')
	return buf.String()
}
