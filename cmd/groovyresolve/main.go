// groovyresolve runs a single name resolution query against a yaml syntax
// tree fixture and prints the candidates it finds.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/stackb/groovy-resolve/pkg/fixture"
	"github.com/stackb/groovy-resolve/pkg/psi"
	"github.com/stackb/groovy-resolve/pkg/registry"
	"github.com/stackb/groovy-resolve/pkg/resolver"
	"github.com/stackb/groovy-resolve/pkg/types"
)

type config struct {
	treeFile      string
	hierarchyFile string
	at            string
	name          string
	kind          string
	gdkFile       string
	dynamicRoot   string
	dynamicGlobs  stringSlice
	selfType      string
	logLevel      string
	dump          bool
}

func main() {
	log.SetPrefix("groovyresolve: ")
	log.SetFlags(0) // don't print timestamps

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet("groovyresolve", flag.ContinueOnError)
	fs.StringVar(&cfg.treeFile, "tree", "", "the yaml syntax tree fixture")
	fs.StringVar(&cfg.hierarchyFile, "hierarchy", "", "optional yaml class hierarchy")
	fs.StringVar(&cfg.at, "at", "", "mark of the node the query starts from")
	fs.StringVar(&cfg.name, "name", "", "name to resolve (defaults to the name of the marked node)")
	fs.StringVar(&cfg.kind, "kind", "property", "query kind: property, class, method, label, members or complete")
	fs.StringVar(&cfg.gdkFile, "gdk", "", "yaml default methods description (defaults to the embedded one)")
	fs.StringVar(&cfg.dynamicRoot, "dynamic_root", ".", "directory the -dynamic pattern is matched in")
	fs.Var(&cfg.dynamicGlobs, "dynamic", "doublestar pattern of .star/.yaml dynamic member files (repeatable)")
	fs.StringVar(&cfg.selfType, "self_type", types.Object.Name, "type of the implicit receiver")
	fs.StringVar(&cfg.logLevel, "log_level", "info", "zerolog level")
	fs.BoolVar(&cfg.dump, "dump", false, "dump the results in full")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.treeFile == "" {
		return nil, fmt.Errorf("-tree is required")
	}
	if cfg.at == "" {
		return nil, fmt.Errorf("-at is required")
	}
	return &cfg, nil
}

func run(cfg *config, out io.Writer) error {
	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("-log_level: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	tree, err := fixture.ReadTree(cfg.treeFile)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.treeFile, err)
	}
	place, err := tree.Lookup(cfg.at)
	if err != nil {
		return err
	}
	name := cfg.name
	if name == "" {
		name = place.Name()
	}

	rslv, err := newResolver(cfg, logger)
	if err != nil {
		return err
	}
	selfType := types.ParseType(cfg.selfType)

	var results []*resolver.ResolveResult
	switch cfg.kind {
	case "property":
		if n, ok := resolver.ResolveProperty(place, name); ok {
			results = append(results, &resolver.ResolveResult{Element: n})
		}
	case "class":
		if n, ok := resolver.ResolveClass(place, name); ok {
			results = append(results, &resolver.ResolveResult{Element: n})
		}
	case "label":
		if n, ok := resolver.ResolveLabeledStatement(name, place); ok {
			results = append(results, &resolver.ResolveResult{Element: n})
		}
	case "method":
		results = rslv.ResolveMethod(place, selfType)
	case "members":
		processor := resolver.NewResolverProcessor(name, place, name == "", resolver.ResolveKindProperty, resolver.ResolveKindMethod)
		rslv.ProcessNonCodeMethods(selfType, processor)
		results = processor.Candidates()
	case "complete":
		results = rslv.CompletionVariants(place, selfType)
	default:
		return fmt.Errorf("unknown -kind %q", cfg.kind)
	}

	logger.Debug().Int("results", len(results)).Str("kind", cfg.kind).Str("name", name).Msg("query done")

	if cfg.dump {
		spew.Fdump(out, results)
		return nil
	}
	for _, result := range results {
		fmt.Fprintln(out, describe(result))
	}
	return nil
}

func newResolver(cfg *config, logger zerolog.Logger) (*resolver.Resolver, error) {
	options := []resolver.ResolverOption{resolver.WithLogger(logger)}

	var defaults *registry.DefaultMethods
	if cfg.gdkFile != "" {
		spec, err := registry.ReadDefaultMethodsSpec(cfg.gdkFile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.gdkFile, err)
		}
		if defaults, err = registry.NewDefaultMethodsFromSpec(spec, cfg.gdkFile); err != nil {
			return nil, err
		}
	} else {
		var err error
		if defaults, err = registry.DefaultGDK(); err != nil {
			return nil, err
		}
	}
	logger.Debug().Int("methods", defaults.Len()).Msg("loaded default methods")
	options = append(options, resolver.WithDefaultMethods(defaults))

	if len(cfg.dynamicGlobs) > 0 {
		dynamic := registry.NewDynamicMembers()
		fsys := os.DirFS(cfg.dynamicRoot)
		for _, pattern := range cfg.dynamicGlobs {
			files, err := dynamic.LoadFiles(fsys, pattern, logger)
			if err != nil {
				return nil, err
			}
			logger.Debug().Str("pattern", pattern).Strs("files", files).Msg("loaded dynamic members")
		}
		options = append(options, resolver.WithDynamicMembers(dynamic))
	}

	if cfg.hierarchyFile != "" {
		hierarchy, err := fixture.ReadHierarchy(cfg.hierarchyFile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.hierarchyFile, err)
		}
		options = append(options, resolver.WithHierarchy(hierarchy))
	}

	return resolver.NewResolver(options...), nil
}

func describe(result *resolver.ResolveResult) string {
	var text string
	switch element := result.Element.(type) {
	case psi.Node:
		text = element.Path()
	case fmt.Stringer:
		text = element.String()
	default:
		text = element.Name()
	}
	if !result.ResolveContext.IsNil() {
		text += " (category " + result.ResolveContext.Path() + ")"
	}
	return fmt.Sprintf("%-8v %s", resolver.GetResolveKind(result.Element), text)
}

// stringSlice is a repeatable string flag.
type stringSlice []string

func (s *stringSlice) String() string {
	return strings.Join(*s, ",")
}

// Set implements the flag.Value interface.
func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}
