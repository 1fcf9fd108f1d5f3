package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func methodNames(methods []*Method) (names []string) {
	for _, m := range methods {
		names = append(names, m.Signature().String())
	}
	return
}

func TestDefaultGDK(t *testing.T) {
	gdk, err := DefaultGDK()
	if err != nil {
		t.Fatal(err)
	}

	for name, tc := range map[string]struct {
		qName string
		want  []string
	}{
		"object starts with the category methods": {
			qName: "java.lang.Object",
			want: []string{
				"use(java.lang.Class, groovy.lang.Closure)",
				"use(java.util.List, groovy.lang.Closure)",
			},
		},
		"comparable": {
			qName: "java.lang.Comparable",
			want:  []string{"compareTo(java.lang.Object)"},
		},
		"serializable has none": {
			qName: "java.io.Serializable",
		},
		"unknown type": {
			qName: "com.example.Foo",
		},
		"package prefix is not a type": {
			qName: "java.lang",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := methodNames(gdk.Methods(tc.qName))
			if len(got) > len(tc.want) {
				got = got[:len(tc.want)]
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}

	for _, m := range gdk.Methods("java.lang.Object") {
		if m.Origin() != OriginDefault || m.Provider() != "gdk" {
			t.Errorf("unexpected origin of %v", m)
		}
	}
}

func TestDefaultMethodsReturnsCopy(t *testing.T) {
	gdk, err := DefaultGDK()
	if err != nil {
		t.Fatal(err)
	}
	methods := gdk.Methods("java.lang.Object")
	if len(methods) == 0 {
		t.Fatal("expected object methods")
	}
	want := methodNames(methods)
	methods[0] = nil

	if diff := cmp.Diff(want, methodNames(gdk.Methods("java.lang.Object"))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseDefaultMethodsSpec(t *testing.T) {
	for name, tc := range map[string]struct {
		yaml    string
		want    map[string][]string
		wantLen int
		wantErr error
	}{
		"owner defaults to the type": {
			yaml: `
types:
  - type: com.example.Foo
    methods:
      - name: bar
        params: [int]
      - name: bar
        params: [int, java.lang.String]
  - type: com.example.Baz
    methods:
      - name: qux
`,
			want: map[string][]string{
				"com.example.Foo": {"bar(int)", "bar(int, java.lang.String)"},
				"com.example.Baz": {"qux()"},
			},
			wantLen: 3,
		},
		"missing name": {
			yaml: `
types:
  - type: com.example.Foo
    methods:
      - params: [int]
`,
			wantErr: ErrMissingName,
		},
		"missing type": {
			yaml: `
types:
  - methods:
      - name: bar
`,
			wantErr: ErrMissingType,
		},
	} {
		t.Run(name, func(t *testing.T) {
			spec, err := ParseDefaultMethodsSpec([]byte(tc.yaml))
			if err != nil {
				t.Fatal(err)
			}
			defaults, err := NewDefaultMethodsFromSpec(spec, "test.yaml")
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			got := make(map[string][]string)
			for qName := range tc.want {
				got[qName] = methodNames(defaults.Methods(qName))
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if defaults.Len() != tc.wantLen {
				t.Errorf("len: want %d, got %d", tc.wantLen, defaults.Len())
			}
		})
	}
}

func TestParseDefaultMethodsSpecSyntaxError(t *testing.T) {
	if _, err := ParseDefaultMethodsSpec([]byte("types: {")); err == nil {
		t.Error("want error, got none")
	}
}

func TestReadDefaultMethodsSpec(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "gdk.yaml")
	if err := os.WriteFile(filename, []byte("types:\n  - type: com.example.Foo\n    methods:\n      - name: bar\n"), os.ModePerm); err != nil {
		t.Fatal(err)
	}

	spec, err := ReadDefaultMethodsSpec(filename)
	if err != nil {
		t.Fatal(err)
	}
	want := &DefaultMethodsSpec{
		Types: []TypeMethodsSpec{{Type: "com.example.Foo", Methods: []MethodSpec{{Name: "bar"}}}},
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if _, err := ReadDefaultMethodsSpec(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want %v, got %v", os.ErrNotExist, err)
	}
}
