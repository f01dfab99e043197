package golang

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/tools/imports"

	"github.com/caffql/caffql/caffqlgen/depsort"
	"github.com/caffql/caffql/caffqlgen/ir"
	"github.com/caffql/caffql/caffqlgen/query"
)

// DefaultFileName is the sink path used when GeneratorConfig.FileName is empty.
const DefaultFileName = "caffql.go"

// GoGenerator generates a single Go source file holding the schema's type
// declarations and one operation unit per root field.
type GoGenerator struct{}

var _ Generator = (*GoGenerator)(nil)

// Name returns "go".
func (g *GoGenerator) Name() string {
	return "go"
}

// Generate sorts the schema's custom types, emits them, formats the file,
// optionally validates the query documents and writes the result to the sink.
// Nothing is written when any step fails.
func (g *GoGenerator) Generate(ctx context.Context, schema *ir.Schema, opts GenerateOptions) (*GenerateResult, error) {
	if schema == nil {
		return nil, fmt.Errorf("schema is nil")
	}
	if opts.Sink == nil {
		return nil, fmt.Errorf("sink is nil")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	config := applyGeneratorDefaults(opts.Config)

	sorted, err := depsort.Sort(schema.Types)
	if err != nil {
		return nil, err
	}
	logger.Debug("sorted types", slog.Int("count", len(sorted)))

	emitter, err := NewEmitter(schema, config)
	if err != nil {
		return nil, err
	}
	out, err := emitter.File(sorted)
	if err != nil {
		return nil, err
	}

	formatted, err := imports.Process(config.FileName, []byte(out.Source), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}

	if config.ValidateDocuments {
		if err := query.Validate(ir.SDL(schema), out.Documents...); err != nil {
			return nil, fmt.Errorf("validating query documents: %w", err)
		}
		logger.Debug("validated query documents", slog.Int("count", len(out.Documents)))
	}

	for _, w := range out.Warnings {
		logger.Warn(w.Message, slog.String("code", w.Code), slog.String("type", w.TypeName))
	}

	if err := opts.Sink.WriteFile(ctx, config.FileName, formatted); err != nil {
		return nil, fmt.Errorf("writing %s: %w", config.FileName, err)
	}
	logger.Debug("wrote generated file",
		slog.String("path", config.FileName),
		slog.Int("types", out.Declarations),
		slog.Int("operations", len(out.Documents)))

	return &GenerateResult{
		Files:          []OutputFile{{Path: config.FileName, Size: int64(len(formatted))}},
		TypesGenerated: out.Declarations,
		Operations:     out.Documents,
		Warnings:       out.Warnings,
	}, nil
}

func applyGeneratorDefaults(config GeneratorConfig) GeneratorConfig {
	if config.Package == "" {
		config.Package = "caffql"
	}
	if config.FileName == "" {
		config.FileName = DefaultFileName
	}
	if config.OptionalStyle == "" {
		config.OptionalStyle = OptionalPointer
	}
	if config.QueryIndent == "" {
		config.QueryIndent = query.DefaultIndent
	}
	return config
}
