package registry

import (
	"sort"
	"sync"
)

// DynamicMembers is the registry of methods and properties the user has
// declared on types at runtime, keyed by canonical type name.  Registration
// order is preserved per type.  Edits may happen between queries from other
// goroutines.
type DynamicMembers struct {
	mu    sync.RWMutex
	types map[string]*dynamicType
}

type dynamicType struct {
	methods    []*Method
	properties []*Property
}

// NewDynamicMembers constructs a new, empty DynamicMembers.
func NewDynamicMembers() *DynamicMembers {
	return &DynamicMembers{
		types: make(map[string]*dynamicType),
	}
}

func (r *DynamicMembers) getOrCreate(qName string) *dynamicType {
	t, ok := r.types[qName]
	if !ok {
		t = &dynamicType{}
		r.types[qName] = t
	}
	return t
}

// PutMethod adds a dynamic method.
func (r *DynamicMembers) PutMethod(spec MethodSpec, provider string) (*Method, error) {
	m, err := NewMethod(spec, OriginDynamic, provider)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.getOrCreate(m.Owner())
	t.methods = append(t.methods, m)
	return m, nil
}

// PutProperty adds a dynamic property.
func (r *DynamicMembers) PutProperty(spec PropertySpec, provider string) (*Property, error) {
	p, err := NewProperty(spec, provider)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.getOrCreate(p.Owner())
	t.properties = append(t.properties, p)
	return p, nil
}

// RemoveMethod removes every dynamic method of the type having the given
// name.  It reports whether anything was removed.
func (r *DynamicMembers) RemoveMethod(qName, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.types[qName]
	if !ok {
		return false
	}
	kept := t.methods[:0:0]
	for _, m := range t.methods {
		if m.Name() != name {
			kept = append(kept, m)
		}
	}
	removed := len(kept) != len(t.methods)
	t.methods = kept
	return removed
}

// RemoveProperty removes the dynamic property of the type having the given
// name.  It reports whether anything was removed.
func (r *DynamicMembers) RemoveProperty(qName, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.types[qName]
	if !ok {
		return false
	}
	kept := t.properties[:0:0]
	for _, p := range t.properties {
		if p.Name() != name {
			kept = append(kept, p)
		}
	}
	removed := len(kept) != len(t.properties)
	t.properties = kept
	return removed
}

// Methods returns the dynamic methods of the canonical type name, in
// registration order.
func (r *DynamicMembers) Methods(qName string) []*Method {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[qName]
	if !ok {
		return nil
	}
	return append([]*Method(nil), t.methods...)
}

// Properties returns the dynamic properties of the canonical type name, in
// registration order.
func (r *DynamicMembers) Properties(qName string) []*Property {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[qName]
	if !ok {
		return nil
	}
	return append([]*Property(nil), t.properties...)
}

// Types returns the canonical names of all types having dynamic members,
// sorted.
func (r *DynamicMembers) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name, t := range r.types {
		if len(t.methods) == 0 && len(t.properties) == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
