package resolver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackb/groovy-resolve/pkg/registry"
	"github.com/stackb/groovy-resolve/pkg/resolver"
	"github.com/stackb/groovy-resolve/pkg/resolver/mocks"
	"github.com/stackb/groovy-resolve/pkg/types"
)

// diamond is com.A extends com.B, com.C; com.B and com.C both extend com.D.
func diamond(t *testing.T) *types.ClassHierarchy {
	h := types.NewClassHierarchy()
	for _, info := range []*types.ClassInfo{
		{Name: "com.A", Supers: []types.Type{types.NewClassType("com.B"), types.NewClassType("com.C")}},
		{Name: "com.B", Supers: []types.Type{types.NewClassType("com.D")}},
		{Name: "com.C", Supers: []types.Type{types.NewClassType("com.D")}},
		{Name: "com.D"},
		{Name: "com.Box", TypeParams: []string{"T"}},
	} {
		if err := h.PutClass(info); err != nil {
			t.Fatal(err)
		}
	}
	return h
}

func extensionMembers(t *testing.T) *resolver.Resolver {
	defaults := registry.NewDefaultMethods()
	mustPutMethod(t, defaults, "com.A", "a1")
	mustPutMethod(t, defaults, "com.A", "shared")
	mustPutMethod(t, defaults, "com.B", "b1")
	mustPutMethod(t, defaults, "com.C", "c1")
	mustPutMethod(t, defaults, "com.D", "d1")
	mustPutMethod(t, defaults, "com.D", "shared")
	mustPutMethod(t, defaults, "com.Box", "unbox")
	mustPutMethod(t, defaults, types.Object.Name, "o1")
	mustPutMethod(t, defaults, types.Comparable.Name, "cmp1")
	mustPutMethod(t, defaults, types.Serializable.Name, "ser1")

	dynamic := registry.NewDynamicMembers()
	if _, err := dynamic.PutMethod(registry.MethodSpec{Owner: "com.A", Name: "am"}, "test"); err != nil {
		t.Fatal(err)
	}
	if _, err := dynamic.PutProperty(registry.PropertySpec{Owner: "com.A", Name: "ap"}, "test"); err != nil {
		t.Fatal(err)
	}

	return resolver.NewResolver(
		resolver.WithLogger(testLogger(t)),
		resolver.WithHierarchy(diamond(t)),
		resolver.WithDefaultMethods(defaults),
		resolver.WithDynamicMembers(dynamic),
	)
}

func TestProcessNonCodeMethods(t *testing.T) {
	for name, tc := range map[string]struct {
		typ      types.Type
		hint     string
		limit    int
		want     []string
		wantDone bool
	}{
		"supertypes are visited once, depth first": {
			typ: types.NewClassType("com.A"),
			want: []string{
				"com.A#a1(default)",
				"com.A#shared(default)",
				"com.A#am(dynamic)",
				"com.A#ap(property)",
				"com.B#b1(default)",
				"com.D#d1(default)",
				"com.D#shared(default)",
				"java.lang.Object#o1(default)",
				"com.C#c1(default)",
			},
			wantDone: true,
		},
		"members of a type and its supertypes share a name": {
			typ:  types.NewClassType("com.A"),
			hint: "shared",
			want: []string{
				"com.A#shared(default)",
				"com.D#shared(default)",
			},
			wantDone: true,
		},
		"arrays extend object, comparable and serializable": {
			typ: types.NewArrayType(types.NewClassType("com.A")),
			want: []string{
				"java.lang.Object#o1(default)",
				"java.lang.Comparable#cmp1(default)",
				"java.io.Serializable#ser1(default)",
			},
			wantDone: true,
		},
		"type arguments are ignored": {
			typ: types.NewClassType("com.Box", types.String),
			want: []string{
				"com.Box#unbox(default)",
				"java.lang.Object#o1(default)",
			},
			wantDone: true,
		},
		"unknown types extend object": {
			typ: types.NewClassType("com.Unknown"),
			want: []string{
				"java.lang.Object#o1(default)",
			},
			wantDone: true,
		},
		"wildcards contribute nothing": {
			typ:      &types.WildcardType{},
			wantDone: true,
		},
		"stops when the processor does": {
			typ:   types.NewClassType("com.A"),
			limit: 3,
			want: []string{
				"com.A#a1(default)",
				"com.A#shared(default)",
				"com.A#am(dynamic)",
			},
		},
		"stops inside a supertype": {
			typ:   types.NewClassType("com.A"),
			hint:  "d1",
			limit: 1,
			want: []string{
				"com.D#d1(default)",
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			r := extensionMembers(t)
			capturer := mocks.NewElementCapturer(t, tc.hint)
			capturer.Limit = tc.limit

			done := r.ProcessNonCodeMethods(tc.typ, capturer.Processor)

			if diff := cmp.Diff(tc.wantDone, done); diff != "" {
				t.Errorf("done (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.want, describeAll(capturer.Got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestProcessNonCodeMethodsDynamicRemoval(t *testing.T) {
	dynamic := registry.NewDynamicMembers()
	if _, err := dynamic.PutMethod(registry.MethodSpec{Owner: "com.A", Name: "am"}, "test"); err != nil {
		t.Fatal(err)
	}
	r := resolver.NewResolver(resolver.WithDynamicMembers(dynamic))

	capturer := mocks.NewElementCapturer(t, "am")
	r.ProcessNonCodeMethods(types.NewClassType("com.A"), capturer.Processor)
	if diff := cmp.Diff([]string{"am"}, capturer.Names()); diff != "" {
		t.Errorf("before removal (-want +got):\n%s", diff)
	}

	if !dynamic.RemoveMethod("com.A", "am") {
		t.Fatal("want method removed")
	}

	capturer = mocks.NewElementCapturer(t, "am")
	r.ProcessNonCodeMethods(types.NewClassType("com.A"), capturer.Processor)
	if len(capturer.Got) != 0 {
		t.Errorf("after removal: want nothing, got %v", capturer.Names())
	}
}
