package golang

import (
	"context"
	"log/slog"

	"github.com/caffql/caffql/caffqlgen/ir"
	"github.com/caffql/caffql/caffqlgen/query"
	"github.com/caffql/caffql/caffqlgen/sink"
)

// Generator transforms an introspection schema into target language source code.
type Generator interface {
	// Name returns the generator's identifier (e.g., "go").
	Name() string

	// Generate produces source code for the given schema.
	Generate(ctx context.Context, schema *ir.Schema, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures generation behavior.
type GenerateOptions struct {
	// Sink receives generated output files.
	Sink sink.OutputSink

	// Config contains generator configuration.
	Config GeneratorConfig

	// Logger receives progress and warning records. Defaults to slog.Default().
	Logger *slog.Logger
}

// GenerateResult contains generation output metadata.
type GenerateResult struct {
	// Files lists all files that were written.
	Files []OutputFile

	// TypesGenerated is the count of type declarations emitted.
	TypesGenerated int

	// Operations lists the query documents of the emitted operation units.
	Operations []*query.Document

	// Warnings contains non-fatal issues encountered.
	Warnings []ir.Warning
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the relative path of the generated file.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// Optional styles.
const (
	// OptionalPointer renders nullable values as *T.
	OptionalPointer = "pointer"

	// OptionalGeneric renders nullable values as Optional[T].
	OptionalGeneric = "generic"
)

// GeneratorConfig holds the Go generator options.
type GeneratorConfig struct {
	// Package is the package clause of the generated file.
	Package string

	// FileName is the sink path of the generated file.
	FileName string

	// OptionalStyle selects how nullable values are represented:
	// OptionalPointer (default) or OptionalGeneric.
	OptionalStyle string

	// ScalarMappings maps custom GraphQL scalars (or overrides built-in ones)
	// to Go types. Values are Go type expressions, optionally qualified by
	// an import path: "string", "time.Time", "github.com/google/uuid.UUID".
	ScalarMappings map[string]string

	// EmitComments emits schema descriptions as doc comments.
	EmitComments bool

	// QueryIndent is the indentation of the embedded query documents.
	QueryIndent string

	// ValidateDocuments validates every query document against the schema
	// before anything is written.
	ValidateDocuments bool
}
