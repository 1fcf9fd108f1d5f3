package resolver

import (
	"github.com/rs/zerolog"

	"github.com/stackb/groovy-resolve/pkg/registry"
	"github.com/stackb/groovy-resolve/pkg/types"
)

// DefaultMethodRegistry supplies the statically registered extension methods
// of a type.
type DefaultMethodRegistry interface {
	// Methods returns the methods registered for the canonical type name,
	// in registration order.
	Methods(qName string) []*registry.Method
}

// DynamicMemberRegistry supplies the user-registered extension members of a
// type.
type DynamicMemberRegistry interface {
	// Methods returns the methods registered for the canonical type name,
	// in registration order.
	Methods(qName string) []*registry.Method
	// Properties returns the properties registered for the canonical type
	// name, in registration order.
	Properties(qName string) []*registry.Property
}

// ClassLookup is implemented by hierarchies that can describe a class by
// name.
type ClassLookup interface {
	GetClass(name string) (*types.ClassInfo, bool)
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver) *Resolver

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.logger = logger
		return r
	}
}

// WithHierarchy sets the type hierarchy used to expand supertypes.
func WithHierarchy(hierarchy types.Hierarchy) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.hierarchy = hierarchy
		return r
	}
}

// WithDefaultMethods sets the static extension method registry.
func WithDefaultMethods(defaults DefaultMethodRegistry) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.defaults = defaults
		return r
	}
}

// WithDynamicMembers sets the dynamic extension member registry.
func WithDynamicMembers(dynamic DynamicMemberRegistry) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.dynamic = dynamic
		return r
	}
}

// Resolver answers resolution queries that need the type system and the
// extension member registries in addition to the syntax tree.  A Resolver
// holds no per-query state.
type Resolver struct {
	logger    zerolog.Logger
	hierarchy types.Hierarchy
	defaults  DefaultMethodRegistry
	dynamic   DynamicMemberRegistry
}

// NewResolver constructs a new Resolver.  Unset collaborators default to
// empty registries and an empty class hierarchy.
func NewResolver(options ...ResolverOption) *Resolver {
	r := &Resolver{
		logger:    zerolog.Nop(),
		hierarchy: types.NewClassHierarchy(),
		defaults:  registry.NewDefaultMethods(),
		dynamic:   registry.NewDynamicMembers(),
	}
	for _, opt := range options {
		r = opt(r)
	}
	return r
}

// FindListClass returns the description of java.util.List, if the hierarchy
// knows it.
func (r *Resolver) FindListClass() (*types.ClassInfo, bool) {
	lookup, ok := r.hierarchy.(ClassLookup)
	if !ok {
		return nil, false
	}
	return lookup.GetClass(types.List.Name)
}

// ListTypeForSpreadOperator returns the type of a spread expression
// (list*.property) whose elements have the given type: java.util.List
// parameterized by it.  It returns nil when java.util.List is unknown or not
// generic.
func (r *Resolver) ListTypeForSpreadOperator(componentType types.Type) types.Type {
	list, ok := r.FindListClass()
	if !ok || len(list.TypeParams) != 1 {
		return nil
	}
	return types.NewClassType(list.Name, componentType)
}
