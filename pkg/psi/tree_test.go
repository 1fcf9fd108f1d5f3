package psi

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackb/groovy-resolve/pkg/types"
)

func labels(nodes []Node) []string {
	var got []string
	for _, n := range nodes {
		got = append(got, n.label())
	}
	return got
}

func TestTreeLinks(t *testing.T) {
	tree, marks := MustBuild(nil, S(KindFile, "",
		S(KindClass, "Foo",
			S(KindField, "a").As("a"),
			S(KindMethod, "b").As("b"),
		).As("Foo"),
		S(KindStatement, "").As("stmt"),
	).As("file"))

	file := marks["file"]
	if root := tree.Root(); root != file {
		t.Errorf("root: want %v, got %v", file, root)
	}

	for name, tc := range map[string]struct {
		got  Node
		want string
	}{
		"file has no context":       {got: file.Context(), want: "<nil>"},
		"class context":             {got: marks["Foo"].Context(), want: file.String()},
		"prev of first":             {got: marks["Foo"].PrevSibling(), want: "<nil>"},
		"next of first":             {got: marks["Foo"].NextSibling(), want: marks["stmt"].String()},
		"prev of last":              {got: marks["stmt"].PrevSibling(), want: marks["Foo"].String()},
		"next of last":              {got: marks["stmt"].NextSibling(), want: "<nil>"},
		"first child":               {got: marks["Foo"].FirstChild(), want: marks["a"].String()},
		"last child":                {got: marks["Foo"].LastChild(), want: marks["b"].String()},
		"last child of leaf":        {got: marks["b"].LastChild(), want: "<nil>"},
		"child of kind":             {got: marks["Foo"].Child(KindMethod), want: marks["b"].String()},
		"child of kind not present": {got: marks["Foo"].Child(KindClass), want: "<nil>"},
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.got.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}

	if diff := cmp.Diff([]string{"field:a", "method:b"}, labels(marks["Foo"].Children())); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}
	if !file.IsAncestorOf(marks["b"]) {
		t.Error("file should be an ancestor of b")
	}
	if marks["b"].IsAncestorOf(file) || file.IsAncestorOf(file) {
		t.Error("IsAncestorOf must be proper and directed")
	}
	if diff := cmp.Diff("file/class:Foo/method:b", marks["b"].Path()); diff != "" {
		t.Errorf("path (-want +got):\n%s", diff)
	}
}

func TestZeroNode(t *testing.T) {
	var n Node
	if !n.IsNil() {
		t.Fatal("zero node should be nil")
	}
	if n.Kind() != KindInvalid || n.Name() != "" || n.Type() != nil {
		t.Error("zero node should have no data")
	}
	if !n.Context().IsNil() || !n.PrevSibling().IsNil() || !n.LastChild().IsNil() || n.Children() != nil {
		t.Error("zero node should have no relations")
	}
	if !n.ProcessDeclarations(nil, types.EmptySubstitutor, Node{}, Node{}) {
		t.Error("zero node should declare nothing")
	}
}

func TestBuildErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		spec    *Spec
		wantErr string
	}{
		"invalid kind": {
			spec:    S(KindFile, "", S(KindInvalid, "x")),
			wantErr: `invalid node kind (name="x")`,
		},
		"duplicate mark": {
			spec:    S(KindFile, "", S(KindStatement, "").As("m"), S(KindStatement, "").As("m")),
			wantErr: `duplicate mark "m"`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := Build(nil, tc.spec)
			if diff := cmp.Diff(tc.wantErr, fmt.Sprint(err)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddToForeignParentPanics(t *testing.T) {
	a := NewTree(nil)
	b := NewTree(nil)
	root := a.Add(Node{}, NodeData{Kind: KindFile})
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	b.Add(root, NodeData{Kind: KindStatement})
}

func TestSignature(t *testing.T) {
	_, marks := MustBuild(nil, S(KindMethod, "use",
		S(KindParameter, "c").Typed(types.Class),
		S(KindParameter, "untyped"),
		S(KindBlock, ""),
	).As("m"))

	got := marks["m"].Signature().String()
	if diff := cmp.Diff("use(java.lang.Class, java.lang.Object)", got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseKind(t *testing.T) {
	for kind := KindFile; kind <= KindPackage; kind++ {
		got, ok := ParseKind(kind.String())
		if !ok || got != kind {
			t.Errorf("ParseKind(%q): got %v, %v", kind.String(), got, ok)
		}
	}
	if _, ok := ParseKind("invalid"); ok {
		t.Error("invalid should not parse")
	}
}

func ExampleSprint() {
	tree, _ := MustBuild(nil, S(KindFile, "",
		S(KindClass, "Foo",
			S(KindMethod, "bar",
				S(KindParameter, "x").Typed(types.String),
				S(KindBlock, ""),
			),
		),
		S(KindMethodCall, "use",
			S(KindReferenceExpression, "use"),
			S(KindArgumentList, "", S(KindReferenceExpression, "Foo")),
			S(KindClosableBlock, ""),
		),
	))
	fmt.Print(Sprint(tree.Root()))
	// output:
	// file
	// ├ class:Foo
	// │ └ method:bar
	// │   ├ parameter:x <java.lang.String>
	// │   └ block
	// └ call:use
	//   ├ reference:use
	//   ├ argument_list
	//   │ └ reference:Foo
	//   └ closure
}
