package query

import (
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.uber.org/multierr"
)

// Parse checks that the document text is syntactically valid GraphQL.
func Parse(doc *Document) error {
	parsed, err := parser.ParseQuery(&ast.Source{Name: doc.Name, Input: doc.Text})
	if err != nil {
		return fmt.Errorf("document %s: %w", doc.Name, err)
	}
	if n := len(parsed.Operations); n != 1 {
		return fmt.Errorf("document %s: got %d operations, want 1", doc.Name, n)
	}
	return nil
}

// Validate checks documents against a schema given as SDL. Built-in scalars
// and directives are supplied by the parser's prelude. Every failing
// document is reported.
func Validate(sdl string, docs ...*Document) error {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: sdl})
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	var errs error
	for _, doc := range docs {
		if _, list := gqlparser.LoadQuery(schema, doc.Text); len(list) > 0 {
			errs = multierr.Append(errs, fmt.Errorf("document %s: %w", doc.Name, list))
		}
	}
	return errs
}
