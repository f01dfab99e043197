// Package query builds GraphQL query documents for root operation fields.
//
// A document selects every field reachable from the root field: leaves are
// selected by name, composite types are expanded recursively, and interfaces
// and unions fan out into one inline fragment per possible type. Every field
// argument becomes a document variable whose name is derived from its path,
// so variables never collide.
package query

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/caffql/caffql/caffqlgen/ir"
)

// DefaultIndent is the indentation used when Options.Indent is empty.
const DefaultIndent = "  "

// Options configures document layout.
type Options struct {
	// Indent is the indentation of one nesting level.
	Indent string
}

// Variable is a document variable introduced for a field argument.
type Variable struct {
	// Name is the variable name without the leading "$".
	Name string

	// ArgName is the name of the argument the variable is bound to.
	ArgName string

	// Type is the declared argument type.
	Type ir.TypeRef
}

// Document is a complete GraphQL operation for one root field.
type Document struct {
	Operation ir.Operation

	// Field is the root field name.
	Field string

	// Name is the operation name, the capitalized root field name.
	Name string

	// Text is the GraphQL source of the operation.
	Text string

	// Variables lists the variables in order of first appearance.
	Variables []Variable
}

// UnknownTypeError reports a field whose type is missing from the type map.
type UnknownTypeError struct {
	Field    string
	TypeName string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("field %q references unknown type %q", e.Field, e.TypeName)
}

// SelectionError reports a field that cannot be turned into a selection.
type SelectionError struct {
	Field  string
	Reason string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("cannot select field %q: %s", e.Field, e.Reason)
}

// Build returns the document selecting field as a root field of op.
func Build(op ir.Operation, field ir.Field, types ir.TypeMap, opts Options) (*Document, error) {
	keyword := op.Keyword()
	if keyword == "" {
		return nil, &ir.UnknownOperationError{Raw: op.String()}
	}
	indent := opts.Indent
	if indent == "" {
		indent = DefaultIndent
	}

	b := &builder{
		types:     types,
		indent:    indent,
		taken:     make(map[string]bool),
		expanding: make(map[string]bool),
	}
	selection, err := b.field(field, []string{field.Name}, 1)
	if err != nil {
		return nil, err
	}

	name := Capitalize(field.Name)
	var sb strings.Builder
	sb.WriteString(keyword + " " + name)
	if len(b.vars) > 0 {
		sb.WriteString("(\n")
		for _, v := range b.vars {
			sb.WriteString(indent + "$" + v.Name + ": " + v.Type.String() + "\n")
		}
		sb.WriteString(")")
	}
	sb.WriteString(" {\n")
	sb.WriteString(selection)
	sb.WriteString("}\n")

	return &Document{
		Operation: op,
		Field:     field.Name,
		Name:      name,
		Text:      sb.String(),
		Variables: b.vars,
	}, nil
}

type builder struct {
	types  ir.TypeMap
	indent string
	vars   []Variable
	taken  map[string]bool

	// expanding holds the composite types on the current selection path.
	expanding map[string]bool
}

// field renders one field selection at depth. segments is the naming path
// of the field, ending with the field's own name.
func (b *builder) field(f ir.Field, segments []string, depth int) (string, error) {
	pad := strings.Repeat(b.indent, depth)

	var sb strings.Builder
	sb.WriteString(pad + f.Name)
	if len(f.Args) > 0 {
		sb.WriteString("(\n")
		for _, arg := range f.Args {
			name := b.variable(append(slices.Clone(segments), arg.Name), arg)
			sb.WriteString(pad + b.indent + arg.Name + ": $" + name + "\n")
		}
		sb.WriteString(pad + ")")
	}

	under := f.Type.Underlying()
	switch under.Kind {
	case ir.KindScalar, ir.KindEnum:
		sb.WriteString("\n")
		return sb.String(), nil
	case ir.KindInputObject:
		return "", &SelectionError{Field: f.Name, Reason: "input object " + under.Name + " is not an output type"}
	}

	t, ok := b.types.Lookup(under.Name)
	if !ok {
		return "", &UnknownTypeError{Field: f.Name, TypeName: under.Name}
	}
	if b.expanding[under.Name] {
		return "", &SelectionError{Field: f.Name, Reason: "type " + under.Name + " selects itself"}
	}
	b.expanding[under.Name] = true
	inner, err := b.selectionSet(t, segments, nil, depth+1)
	delete(b.expanding, under.Name)
	if err != nil {
		return "", err
	}

	sb.WriteString(" {\n")
	sb.WriteString(inner)
	sb.WriteString(pad + "}\n")
	return sb.String(), nil
}

// selectionSet renders the fields of t, skipping the names in exclude.
func (b *builder) selectionSet(t ir.Type, segments []string, exclude map[string]bool, depth int) (string, error) {
	pad := strings.Repeat(b.indent, depth)
	possible := ir.PossibleTypesOf(t)

	var sb strings.Builder
	if len(possible) > 0 {
		sb.WriteString(pad + "__typename\n")
	}

	shared := make(map[string]bool)
	for _, f := range ir.FieldsOf(t) {
		shared[f.Name] = true
		if exclude[f.Name] {
			continue
		}
		text, err := b.field(f, append(slices.Clone(segments), f.Name), depth)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}

	for _, p := range possible {
		pt, ok := b.types.Lookup(p.Name)
		if !ok {
			return "", &UnknownTypeError{Field: segments[len(segments)-1], TypeName: p.Name}
		}
		if b.expanding[p.Name] {
			return "", &SelectionError{Field: segments[len(segments)-1], Reason: "type " + p.Name + " selects itself"}
		}
		b.expanding[p.Name] = true
		inner, err := b.selectionSet(pt, append(slices.Clone(segments), p.Name), shared, depth+1)
		delete(b.expanding, p.Name)
		if err != nil {
			return "", err
		}
		if inner == "" {
			continue
		}
		sb.WriteString(pad + "... on " + p.Name + " {\n")
		sb.WriteString(inner)
		sb.WriteString(pad + "}\n")
	}
	return sb.String(), nil
}

// variable registers a variable for arg and returns its unique name.
func (b *builder) variable(segments []string, arg ir.InputValue) string {
	base := VariableName(segments...)
	name := base
	for n := 2; b.taken[name]; n++ {
		name = base + strconv.Itoa(n)
	}
	b.taken[name] = true
	b.vars = append(b.vars, Variable{Name: name, ArgName: arg.Name, Type: arg.Type})
	return name
}

// VariableName flattens a naming path: the first segment uncapitalized,
// every later segment capitalized.
func VariableName(segments ...string) string {
	var sb strings.Builder
	for i, s := range segments {
		if i == 0 {
			sb.WriteString(Uncapitalize(s))
		} else {
			sb.WriteString(Capitalize(s))
		}
	}
	return sb.String()
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Uncapitalize lower-cases the first letter of s.
func Uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// BuildAll returns one document per field of every root operation type of
// schema, in query, mutation, subscription order.
func BuildAll(schema *ir.Schema, opts Options) ([]*Document, error) {
	types := ir.NewTypeMap(schema.Types)
	var docs []*Document
	for _, op := range []ir.Operation{ir.OperationQuery, ir.OperationMutation, ir.OperationSubscription} {
		rootName, ok := schema.RootTypeName(op)
		if !ok {
			continue
		}
		root, ok := types.Lookup(rootName)
		if !ok {
			return nil, fmt.Errorf("root %s type %q is not defined", op.Keyword(), rootName)
		}
		for _, f := range ir.FieldsOf(root) {
			doc, err := Build(op, f, types, opts)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", rootName, f.Name, err)
			}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}
