package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func propertyNames(properties []*Property) (names []string) {
	for _, p := range properties {
		names = append(names, p.Name())
	}
	return
}

func TestDynamicMembers(t *testing.T) {
	r := NewDynamicMembers()
	for _, spec := range []MethodSpec{
		{Owner: "com.example.Foo", Name: "bar"},
		{Owner: "com.example.Foo", Name: "baz", Params: []string{"int"}},
		{Owner: "com.example.Foo", Name: "bar", Params: []string{"int"}},
		{Owner: "com.example.Qux", Name: "quux"},
	} {
		if _, err := r.PutMethod(spec, "test"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := r.PutProperty(PropertySpec{Owner: "com.example.Foo", Name: "size", Type: "int"}, "test"); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"bar()", "baz(int)", "bar(int)"}, methodNames(r.Methods("com.example.Foo"))); diff != "" {
		t.Errorf("methods (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"size"}, propertyNames(r.Properties("com.example.Foo"))); diff != "" {
		t.Errorf("properties (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"com.example.Foo", "com.example.Qux"}, r.Types()); diff != "" {
		t.Errorf("types (-want +got):\n%s", diff)
	}
	for _, m := range r.Methods("com.example.Foo") {
		if m.Origin() != OriginDynamic {
			t.Errorf("want dynamic origin, got %v", m)
		}
	}

	if !r.RemoveMethod("com.example.Foo", "bar") {
		t.Error("want bar removed")
	}
	if r.RemoveMethod("com.example.Foo", "bar") {
		t.Error("bar removed twice")
	}
	if r.RemoveMethod("com.example.Missing", "bar") {
		t.Error("removed from an unknown type")
	}
	if diff := cmp.Diff([]string{"baz(int)"}, methodNames(r.Methods("com.example.Foo"))); diff != "" {
		t.Errorf("methods after removal (-want +got):\n%s", diff)
	}

	if !r.RemoveMethod("com.example.Qux", "quux") {
		t.Error("want quux removed")
	}
	if !r.RemoveProperty("com.example.Foo", "size") {
		t.Error("want size removed")
	}
	if diff := cmp.Diff([]string{"com.example.Foo"}, r.Types()); diff != "" {
		t.Errorf("types after removal (-want +got):\n%s", diff)
	}
}

func TestDynamicMembersSnapshot(t *testing.T) {
	r := NewDynamicMembers()
	if _, err := r.PutMethod(MethodSpec{Owner: "com.example.Foo", Name: "bar"}, "test"); err != nil {
		t.Fatal(err)
	}

	snapshot := r.Methods("com.example.Foo")
	r.RemoveMethod("com.example.Foo", "bar")

	if diff := cmp.Diff([]string{"bar()"}, methodNames(snapshot)); diff != "" {
		t.Errorf("snapshot changed (-want +got):\n%s", diff)
	}
}

func TestDynamicMembersConcurrentEdits(t *testing.T) {
	r := NewDynamicMembers()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("m%d", i)
			if _, err := r.PutMethod(MethodSpec{Owner: "com.example.Foo", Name: name}, "test"); err != nil {
				t.Error(err)
			}
			r.Methods("com.example.Foo")
			r.Types()
		}(i)
	}
	wg.Wait()

	if got := len(r.Methods("com.example.Foo")); got != 8 {
		t.Errorf("want 8 methods, got %d", got)
	}
}

func TestDynamicMembersInvalid(t *testing.T) {
	r := NewDynamicMembers()
	if _, err := r.PutMethod(MethodSpec{Name: "bar"}, "test"); err == nil {
		t.Error("want error for missing owner")
	}
	if _, err := r.PutProperty(PropertySpec{Owner: "com.example.Foo"}, "test"); err == nil {
		t.Error("want error for missing name")
	}
	if len(r.Types()) != 0 {
		t.Errorf("invalid members registered: %v", r.Types())
	}
}
