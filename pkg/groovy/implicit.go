package groovy

import (
	"fmt"

	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/types"
)

// ImplicitParameter is the "it" parameter of a closure that declares no
// parameters.
type ImplicitParameter struct {
	// Closure is the closure declaring the parameter.
	Closure psi.Node
}

// Name implements part of the psi.Element interface.
func (p *ImplicitParameter) Name() string { return ImplicitParameterName }

// Kind implements part of the psi.Element interface.
func (p *ImplicitParameter) Kind() psi.Kind { return psi.KindParameter }

// Type implements part of the psi.TypedElement interface.
func (p *ImplicitParameter) Type() types.Type { return types.Object }

// String implements fmt.Stringer
func (p *ImplicitParameter) String() string {
	return fmt.Sprintf("%s of %v", ImplicitParameterName, p.Closure)
}
