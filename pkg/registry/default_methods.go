package registry

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/dghubble/trie"
	"gopkg.in/yaml.v3"

	"github.com/stackb/groovy-resolve/pkg/types"
)

//go:embed gdk.yaml
var gdkYaml []byte

// DefaultMethodsSpec is the file format of a default methods description.
type DefaultMethodsSpec struct {
	// Types maps a canonical type name to the methods it is extended with.
	Types []TypeMethodsSpec `yaml:"types"`
}

// TypeMethodsSpec lists the default methods of one type.
type TypeMethodsSpec struct {
	Type    string       `yaml:"type"`
	Methods []MethodSpec `yaml:"methods"`
}

// DefaultMethods is the static registry of default (GDK) methods, keyed by
// the canonical name of the type they extend.  Registration order is
// preserved per type.
type DefaultMethods struct {
	methods *trie.PathTrie
	size    int
}

// NewDefaultMethods constructs a new, empty DefaultMethods.
func NewDefaultMethods() *DefaultMethods {
	return &DefaultMethods{
		methods: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: types.QualifiedNameSegmenter,
		}),
	}
}

// DefaultGDK returns the default methods registry described by the
// embedded GDK description.
func DefaultGDK() (*DefaultMethods, error) {
	spec, err := ParseDefaultMethodsSpec(gdkYaml)
	if err != nil {
		return nil, fmt.Errorf("embedded gdk: %w", err)
	}
	return NewDefaultMethodsFromSpec(spec, "gdk")
}

// NewDefaultMethodsFromSpec builds a registry from a parsed description.
func NewDefaultMethodsFromSpec(spec *DefaultMethodsSpec, provider string) (*DefaultMethods, error) {
	r := NewDefaultMethods()
	if err := r.AddSpec(spec, provider); err != nil {
		return nil, err
	}
	return r, nil
}

// AddSpec registers every method of the given description.
func (r *DefaultMethods) AddSpec(spec *DefaultMethodsSpec, provider string) error {
	for _, typeSpec := range spec.Types {
		for _, methodSpec := range typeSpec.Methods {
			if methodSpec.Owner == "" {
				methodSpec.Owner = typeSpec.Type
			}
			m, err := NewMethod(methodSpec, OriginDefault, provider)
			if err != nil {
				return fmt.Errorf("%s: %w", typeSpec.Type, err)
			}
			r.Put(m)
		}
	}
	return nil
}

// Put appends a method to the methods of its owner type.
func (r *DefaultMethods) Put(m *Method) {
	var list []*Method
	if value := r.methods.Get(m.Owner()); value != nil {
		list = value.([]*Method)
	}
	r.methods.Put(m.Owner(), append(list, m))
	r.size++
}

// Methods returns the default methods registered for the canonical type
// name, in registration order.  The returned slice is a copy.
func (r *DefaultMethods) Methods(qName string) []*Method {
	if value := r.methods.Get(qName); value != nil {
		methods := value.([]*Method)
		return append([]*Method(nil), methods...)
	}
	return nil
}

// Len returns the total number of registered methods.
func (r *DefaultMethods) Len() int {
	return r.size
}

// ReadDefaultMethodsSpec reads a yaml default methods description.
func ReadDefaultMethodsSpec(filename string) (*DefaultMethodsSpec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return ParseDefaultMethodsSpec(data)
}

// ParseDefaultMethodsSpec parses a yaml default methods description.
func ParseDefaultMethodsSpec(data []byte) (*DefaultMethodsSpec, error) {
	var spec DefaultMethodsSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &spec, nil
}
