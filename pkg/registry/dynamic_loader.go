package registry

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"go.starlark.net/starlark"
	"gopkg.in/yaml.v3"

	"github.com/stackb/groovy-resolve/pkg/starlarkeval"
)

// DynamicMembersSpec is the yaml file format of dynamic member declarations.
type DynamicMembersSpec struct {
	Methods    []MethodSpec   `yaml:"methods,omitempty"`
	Properties []PropertySpec `yaml:"properties,omitempty"`
}

// ParseDynamicMembersSpec parses a yaml dynamic members description.
func ParseDynamicMembersSpec(data []byte) (*DynamicMembersSpec, error) {
	var spec DynamicMembersSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &spec, nil
}

// AddSpec registers every member of the given description.
func (r *DynamicMembers) AddSpec(spec *DynamicMembersSpec, provider string) error {
	for _, m := range spec.Methods {
		if _, err := r.PutMethod(m, provider); err != nil {
			return err
		}
	}
	for _, p := range spec.Properties {
		if _, err := r.PutProperty(p, provider); err != nil {
			return err
		}
	}
	return nil
}

// LoadStarlark executes a starlark file declaring dynamic members with the
// builtins
//
//	dynamic_method(owner, name, params = [], returns = "")
//	dynamic_property(owner, name, type = "")
func (r *DynamicMembers) LoadStarlark(filename string, src []byte, logger zerolog.Logger) error {
	interpreter := starlarkeval.NewInterpreter(func(format string, args ...interface{}) {
		logger.Debug().Str("file", filename).Msgf(format, args...)
	})

	interpreter.Define("dynamic_method", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var spec MethodSpec
		var params *starlark.List
		if err := starlark.UnpackArgs(b.Name(), args, kwargs,
			"owner", &spec.Owner,
			"name", &spec.Name,
			"params?", &params,
			"returns?", &spec.Returns,
			"static?", &spec.Static,
		); err != nil {
			return nil, err
		}
		if params != nil {
			for i := 0; i < params.Len(); i++ {
				param, ok := starlark.AsString(params.Index(i))
				if !ok {
					return nil, fmt.Errorf("%s: params[%d]: want string, got %s", b.Name(), i, params.Index(i).Type())
				}
				spec.Params = append(spec.Params, param)
			}
		}
		if _, err := r.PutMethod(spec, filename); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		return starlark.None, nil
	})

	interpreter.Define("dynamic_property", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var spec PropertySpec
		if err := starlark.UnpackArgs(b.Name(), args, kwargs,
			"owner", &spec.Owner,
			"name", &spec.Name,
			"type?", &spec.Type,
		); err != nil {
			return nil, err
		}
		if _, err := r.PutProperty(spec, filename); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		return starlark.None, nil
	})

	if err := interpreter.Exec(filename, bytes.NewReader(src)); err != nil {
		return fmt.Errorf("exec %s: %w", filename, err)
	}
	return nil
}

// LoadFiles registers the members declared by every file of fsys matching
// the doublestar pattern.  Files ending in .star are executed as starlark,
// .yaml and .yml files are parsed as DynamicMembersSpec.  Files are loaded in
// lexical order.  It returns the matched filenames.
func (r *DynamicMembers) LoadFiles(fsys fs.FS, pattern string, logger zerolog.Logger) ([]string, error) {
	filenames, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(filenames)
	for _, filename := range filenames {
		data, err := fs.ReadFile(fsys, filename)
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
		switch path.Ext(filename) {
		case ".star":
			if err := r.LoadStarlark(filename, data, logger); err != nil {
				return nil, err
			}
		case ".yaml", ".yml":
			spec, err := ParseDynamicMembersSpec(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filename, err)
			}
			if err := r.AddSpec(spec, filename); err != nil {
				return nil, fmt.Errorf("%s: %w", filename, err)
			}
		default:
			logger.Warn().Str("file", filename).Msg("skipping dynamic members file with unknown extension")
			continue
		}
		logger.Debug().Str("file", filename).Msg("loaded dynamic members")
	}
	return filenames, nil
}
