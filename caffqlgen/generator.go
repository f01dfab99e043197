// Package caffqlgen generates Go client code from a GraphQL introspection
// schema.
//
// Example:
//
//	caffqlgen.FromFile("schema.json").
//	    Package("starwars").
//	    ScalarMapping("DateTime", "time.Time").
//	    ToFile("./internal/starwars/caffql.go")
package caffqlgen

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/caffql/caffql/caffqlgen/depsort"
	"github.com/caffql/caffql/caffqlgen/golang"
	"github.com/caffql/caffql/caffqlgen/ir"
	"github.com/caffql/caffql/caffqlgen/provider"
	"github.com/caffql/caffql/caffqlgen/query"
	"github.com/caffql/caffql/caffqlgen/sink"
)

// GenerateResult describes a completed generation.
type GenerateResult struct {
	*golang.GenerateResult

	// Content holds the generated source.
	Content []byte
}

// Generator provides a fluent API for code generation.
// Create with FromFile() or FromSchema() and configure with method chaining.
type Generator struct {
	schema *ir.Schema
	cfg    Config
	err    error
}

// FromFile creates a Generator reading the introspection document at path.
func FromFile(path string) *Generator {
	return &Generator{cfg: Config{SchemaPath: path}}
}

// FromSchema creates a Generator for an already decoded schema.
func FromSchema(schema *ir.Schema) *Generator {
	return &Generator{schema: schema}
}

// WithConfig replaces the configuration. SchemaPath is kept when cfg leaves it empty.
func (g *Generator) WithConfig(cfg Config) *Generator {
	if cfg.SchemaPath == "" {
		cfg.SchemaPath = g.cfg.SchemaPath
	}
	g.cfg = cfg
	return g
}

// Package sets the package clause of the generated file.
func (g *Generator) Package(name string) *Generator {
	g.cfg.Package = name
	return g
}

// OptionalStyle controls how nullable values are typed.
// Valid values: "pointer" (default), "generic".
func (g *Generator) OptionalStyle(style string) *Generator {
	g.cfg.OptionalStyle = style
	return g
}

// ScalarMapping maps a custom GraphQL scalar to a Go type, optionally
// qualified by its import path ("github.com/google/uuid.UUID").
func (g *Generator) ScalarMapping(scalar, goType string) *Generator {
	if g.cfg.ScalarMappings == nil {
		g.cfg.ScalarMappings = make(map[string]string)
	}
	g.cfg.ScalarMappings[scalar] = goType
	return g
}

// WithComments emits schema descriptions as doc comments.
func (g *Generator) WithComments() *Generator {
	g.cfg.EmitComments = true
	return g
}

// QueryIndent sets the indentation of the embedded query documents.
func (g *Generator) QueryIndent(indent string) *Generator {
	g.cfg.QueryIndent = indent
	return g
}

// Validate checks every query document against the schema before writing.
func (g *Generator) Validate() *Generator {
	g.cfg.ValidateDocuments = true
	return g
}

// Logger sets the logger receiving progress and warnings.
func (g *Generator) Logger(logger *slog.Logger) *Generator {
	g.cfg.Logger = logger
	return g
}

// Options applies an option string, see ParseOptions. An invalid string
// fails the terminal operation.
func (g *Generator) Options(s string) *Generator {
	if err := ParseOptions(s, &g.cfg); err != nil && g.err == nil {
		g.err = err
	}
	return g
}

// Config returns the configuration with defaults applied.
func (g *Generator) Config() Config {
	return *applyConfigDefaults(&g.cfg)
}

// ToFile generates the file at path.
// This is a terminal operation that writes to disk; nothing is written
// when generation fails.
func (g *Generator) ToFile(path string) (*GenerateResult, error) {
	g.cfg.OutputPath = path
	if path == "" {
		return nil, fmt.Errorf("output path is required")
	}
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return g.run(context.Background(), sink.NewFilesystemSink(dir), name)
}

// Generate returns the generated file in memory without writing to disk.
func (g *Generator) Generate() (*GenerateResult, error) {
	name := golang.DefaultFileName
	if g.cfg.OutputPath != "" {
		name = filepath.Base(g.cfg.OutputPath)
	}
	return g.run(context.Background(), nil, name)
}

// CheckResult describes a completed check.
type CheckResult struct {
	// Types is the number of custom types in dependency order.
	Types int

	// Documents lists the validated query documents.
	Documents []*query.Document
}

// Check orders the custom types, builds every operation document and
// validates the documents against the schema without emitting Go code.
// Scalar mappings are not needed.
func (g *Generator) Check() (*CheckResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	ctx := context.Background()
	cfg := applyConfigDefaults(&g.cfg)

	schema, err := g.loadSchema(ctx, cfg)
	if err != nil {
		return nil, err
	}
	sorted, err := depsort.Sort(schema.Types)
	if err != nil {
		return nil, err
	}
	docs, err := query.BuildAll(schema, query.Options{Indent: cfg.QueryIndent})
	if err != nil {
		return nil, err
	}
	if err := query.Validate(ir.SDL(schema), docs...); err != nil {
		return nil, err
	}
	cfg.Logger.Debug("validated query documents", slog.Int("types", len(sorted)), slog.Int("documents", len(docs)))
	return &CheckResult{Types: len(sorted), Documents: docs}, nil
}

// run generates into memory and, when out is set, copies the file to out.
func (g *Generator) run(ctx context.Context, out sink.OutputSink, fileName string) (*GenerateResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	cfg := applyConfigDefaults(&g.cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	schema, err := g.loadSchema(ctx, cfg)
	if err != nil {
		return nil, err
	}

	memSink := sink.NewMemorySink()
	gen := &golang.GoGenerator{}
	result, err := gen.Generate(ctx, schema, golang.GenerateOptions{
		Sink:   memSink,
		Logger: cfg.Logger,
		Config: golang.GeneratorConfig{
			Package:           cfg.Package,
			FileName:          fileName,
			OptionalStyle:     cfg.OptionalStyle,
			ScalarMappings:    cfg.ScalarMappings,
			EmitComments:      cfg.EmitComments,
			QueryIndent:       cfg.QueryIndent,
			ValidateDocuments: cfg.ValidateDocuments,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate Go code: %w", err)
	}

	files := memSink.Files()
	if out != nil {
		for path, content := range files {
			if err := out.WriteFile(ctx, path, content); err != nil {
				return nil, fmt.Errorf("failed to write output: %w", err)
			}
		}
		cfg.Logger.Debug("wrote output", slog.String("path", g.cfg.OutputPath))
	}
	return &GenerateResult{GenerateResult: result, Content: files[fileName]}, nil
}

func (g *Generator) loadSchema(ctx context.Context, cfg *Config) (*ir.Schema, error) {
	if g.schema != nil {
		if err := validateSchema(g.schema); err != nil {
			return nil, err
		}
		return g.schema, nil
	}
	if cfg.SchemaPath == "" {
		return nil, fmt.Errorf("schema path is required")
	}
	p := &provider.IntrospectionProvider{}
	schema, err := p.BuildSchema(ctx, provider.IntrospectionInputOptions{Path: cfg.SchemaPath})
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	cfg.Logger.Debug("loaded schema", slog.String("path", cfg.SchemaPath), slog.Int("types", len(schema.Types)))
	return schema, nil
}
