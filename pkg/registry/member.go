package registry

import (
	"errors"
	"fmt"

	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/types"
)

var (
	// ErrMissingName is returned when a member is registered without a name.
	ErrMissingName = errors.New("member name is required")
	// ErrMissingType is returned when a member is registered without the
	// type it extends.
	ErrMissingType = errors.New("member owner type is required")
)

// Origin says which registry a member comes from.
type Origin int

const (
	// OriginDefault members are the statically registered default (GDK)
	// methods.
	OriginDefault Origin = iota
	// OriginDynamic members were added by the user.
	OriginDynamic
)

// String implements fmt.Stringer
func (o Origin) String() string {
	if o == OriginDynamic {
		return "dynamic"
	}
	return "default"
}

// MethodSpec describes an extension method.
type MethodSpec struct {
	// Owner is the canonical name of the type the method extends.
	Owner string `yaml:"owner,omitempty" json:"owner,omitempty"`
	// Name is the method name.
	Name string `yaml:"name" json:"name"`
	// Params are the canonical texts of the parameter types, excluding the
	// receiver.
	Params []string `yaml:"params,omitempty" json:"params,omitempty"`
	// Returns is the canonical text of the return type.
	Returns string `yaml:"returns,omitempty" json:"returns,omitempty"`
	// Static marks methods called on the class rather than an instance.
	Static bool `yaml:"static,omitempty" json:"static,omitempty"`
}

// PropertySpec describes an extension property.
type PropertySpec struct {
	Owner string `yaml:"owner,omitempty" json:"owner,omitempty"`
	Name  string `yaml:"name" json:"name"`
	Type  string `yaml:"type,omitempty" json:"type,omitempty"`
}

// Method is an extension method available on a type without being declared
// in it.  It implements psi.MethodElement.
type Method struct {
	spec     MethodSpec
	params   []types.Type
	returns  types.Type
	origin   Origin
	provider string
}

// NewMethod constructs a method from its spec.
func NewMethod(spec MethodSpec, origin Origin, provider string) (*Method, error) {
	if spec.Name == "" {
		return nil, ErrMissingName
	}
	if spec.Owner == "" {
		return nil, fmt.Errorf("%s: %w", spec.Name, ErrMissingType)
	}
	m := &Method{
		spec:     spec,
		params:   make([]types.Type, len(spec.Params)),
		returns:  types.ParseType(spec.Returns),
		origin:   origin,
		provider: provider,
	}
	for i, param := range spec.Params {
		m.params[i] = types.ParseType(param)
	}
	if m.returns == nil {
		m.returns = types.Object
	}
	return m, nil
}

// Name implements part of the psi.Element interface.
func (m *Method) Name() string { return m.spec.Name }

// Kind implements part of the psi.Element interface.
func (m *Method) Kind() psi.Kind { return psi.KindMethod }

// Type returns the return type of the method.
func (m *Method) Type() types.Type { return m.returns }

// Owner returns the canonical name of the extended type.
func (m *Method) Owner() string { return m.spec.Owner }

// Params returns the parameter types, excluding the receiver.
func (m *Method) Params() []types.Type { return m.params }

// IsStatic reports whether the method is called on the class.
func (m *Method) IsStatic() bool { return m.spec.Static }

// Origin returns the registry the method belongs to.
func (m *Method) Origin() Origin { return m.origin }

// Provider returns the name of the file or source that registered the
// method.
func (m *Method) Provider() string { return m.provider }

// Spec returns the spec the method was built from.
func (m *Method) Spec() MethodSpec { return m.spec }

// Signature implements the psi.MethodElement interface.
func (m *Method) Signature() types.MethodSignature {
	return types.NewMethodSignature(m.spec.Name, m.params...)
}

// String implements fmt.Stringer
func (m *Method) String() string {
	return fmt.Sprintf("%s.%v<%v %s>", m.spec.Owner, m.Signature(), m.origin, m.provider)
}

// Property is an extension property available on a type without being
// declared in it.  It implements psi.TypedElement.
type Property struct {
	spec     PropertySpec
	typ      types.Type
	provider string
}

// NewProperty constructs a property from its spec.
func NewProperty(spec PropertySpec, provider string) (*Property, error) {
	if spec.Name == "" {
		return nil, ErrMissingName
	}
	if spec.Owner == "" {
		return nil, fmt.Errorf("%s: %w", spec.Name, ErrMissingType)
	}
	p := &Property{
		spec:     spec,
		typ:      types.ParseType(spec.Type),
		provider: provider,
	}
	if p.typ == nil {
		p.typ = types.Object
	}
	return p, nil
}

// Name implements part of the psi.Element interface.
func (p *Property) Name() string { return p.spec.Name }

// Kind implements part of the psi.Element interface.  Properties classify as
// variables.
func (p *Property) Kind() psi.Kind { return psi.KindVariable }

// Type implements part of the psi.TypedElement interface.
func (p *Property) Type() types.Type { return p.typ }

// Owner returns the canonical name of the extended type.
func (p *Property) Owner() string { return p.spec.Owner }

// Provider returns the name of the file or source that registered the
// property.
func (p *Property) Provider() string { return p.provider }

// Spec returns the spec the property was built from.
func (p *Property) Spec() PropertySpec { return p.spec }

// String implements fmt.Stringer
func (p *Property) String() string {
	return fmt.Sprintf("%s.%s <%v %s>", p.spec.Owner, p.spec.Name, p.typ, p.provider)
}
