package golang

import (
	"fmt"
	"slices"
	"strings"

	"github.com/caffql/caffql/caffqlgen/depsort"
	"github.com/caffql/caffql/caffqlgen/ir"
	"github.com/caffql/caffql/caffqlgen/query"
)

// Output is a rendered source file and what went into it.
type Output struct {
	// Source is the unformatted Go source.
	Source string

	// Documents lists the query documents of the emitted operation units.
	Documents []*query.Document

	// Declarations is the number of schema types emitted.
	Declarations int

	Warnings []ir.Warning
}

// File renders the complete source file. sorted must hold the custom types
// in dependency order; root operation types become operation units and every
// other type a declaration.
func (e *Emitter) File(sorted []ir.Type) (*Output, error) {
	out := &Output{Warnings: slices.Clone(e.warnings)}

	var body strings.Builder
	for _, t := range sorted {
		if op, ok := e.schema.RootOperation(t.TypeName()); ok {
			root, isObject := t.(*ir.ObjectType)
			if !isObject {
				return nil, fmt.Errorf("root %s type %s is %s, want OBJECT", op.Keyword(), t.TypeName(), t.Kind())
			}
			text, docs, err := e.emitOperations(op, root)
			if err != nil {
				return nil, err
			}
			body.WriteString(text)
			out.Documents = append(out.Documents, docs...)
			continue
		}

		text, warnings, err := e.EmitType(t)
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", t.TypeName(), err)
		}
		body.WriteString(text)
		body.WriteString("\n")
		out.Warnings = append(out.Warnings, warnings...)
		out.Declarations++
	}

	head, err := e.prelude(e.imports(sorted))
	if err != nil {
		return nil, err
	}
	out.Source = head + "\n" + body.String()
	return out, nil
}

// imports returns the import paths of the mapped scalars referenced by
// types, sorted.
func (e *Emitter) imports(types []ir.Type) []string {
	var paths []string
	for _, t := range types {
		for _, dep := range depsort.Dependencies(t) {
			if _, isScalar := e.types[dep].(*ir.ScalarType); !isScalar {
				continue
			}
			if m, ok := e.scalars[dep]; ok && m.importPath != "" {
				paths = append(paths, m.importPath)
			}
		}
	}
	slices.Sort(paths)
	return slices.Compact(paths)
}
