package resolver_test

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/registry"
	"github.com/stackb/groovy-resolve/pkg/resolver"
)

// describe renders an element for comparison in tests.
func describe(element psi.Element) string {
	switch e := element.(type) {
	case psi.Node:
		return e.Path()
	case *registry.Method:
		return fmt.Sprintf("%s#%s(%v)", e.Owner(), e.Name(), e.Origin())
	case *registry.Property:
		return fmt.Sprintf("%s#%s(property)", e.Owner(), e.Name())
	}
	return fmt.Sprintf("%s:%s", element.Kind(), element.Name())
}

func describeAll(elements []psi.Element) (got []string) {
	for _, element := range elements {
		got = append(got, describe(element))
	}
	return
}

func describeResults(results []*resolver.ResolveResult) []string {
	return describeAll(resolver.MapToElements(results))
}

func testLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}

func mustPutMethod(t *testing.T, r *registry.DefaultMethods, owner, name string, params ...string) {
	t.Helper()
	m, err := registry.NewMethod(registry.MethodSpec{Owner: owner, Name: name, Params: params}, registry.OriginDefault, "test")
	if err != nil {
		t.Fatal(err)
	}
	r.Put(m)
}
