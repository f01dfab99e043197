package golang

import (
	"fmt"
	"strings"

	"github.com/caffql/caffql/caffqlgen/ir"
	"github.com/caffql/caffql/caffqlgen/query"
)

// emitOperations emits one operation unit per field of a root type. Each
// unit carries its query document, a request constructor taking one
// parameter per document variable, and a response decoder.
func (e *Emitter) emitOperations(op ir.Operation, root *ir.ObjectType) (string, []*query.Document, error) {
	rootName := e.goTypeName(root.Name)

	var sb strings.Builder
	docs := make([]*query.Document, 0, len(root.Fields))
	for _, f := range root.Fields {
		doc, err := query.Build(op, f, e.types, query.Options{Indent: e.config.QueryIndent})
		if err != nil {
			return "", nil, fmt.Errorf("%s.%s: %w", root.Name, f.Name, err)
		}
		if err := query.Parse(doc); err != nil {
			return "", nil, fmt.Errorf("%s.%s: %w", root.Name, f.Name, err)
		}
		unit, err := e.emitOperation(rootName, f, doc)
		if err != nil {
			return "", nil, fmt.Errorf("%s.%s: %w", root.Name, f.Name, err)
		}
		sb.WriteString(unit)
		sb.WriteString("\n")
		docs = append(docs, doc)
	}
	return sb.String(), docs, nil
}

// operationUnitName is the type declared for field of the root type rootName.
func operationUnitName(rootName, field string) string {
	return rootName + exportedFieldName(field) + "Field"
}

func (e *Emitter) emitOperation(rootName string, f ir.Field, doc *query.Document) (string, error) {
	unit := operationUnitName(rootName, f.Name)
	docConst := unexportedName(unit) + "Document"

	result, err := e.TypeExpr(f.Type)
	if err != nil {
		return "", err
	}

	params := make([]string, len(doc.Variables))
	entries := make([]string, len(doc.Variables))
	for i, v := range doc.Variables {
		typ, err := e.paramType(v.Type)
		if err != nil {
			return "", fmt.Errorf("variable $%s: %w", v.Name, err)
		}
		param := unexportedName(v.Name)
		params[i] = param + " " + typ
		entries[i] = fmt.Sprintf("\t\t\t%q: %s,\n", v.Name, param)
	}

	var sb strings.Builder
	sb.WriteString(e.comment("", f.Description, f.DeprecationReason))
	if e.config.EmitComments && (f.Description != "" || f.DeprecationReason != nil) {
		sb.WriteString("//\n")
	}
	fmt.Fprintf(&sb, "// %s selects %s as a root field of a %s operation.\n", unit, f.Name, doc.Operation.Keyword())
	fmt.Fprintf(&sb, "type %s struct{}\n\n", unit)

	fmt.Fprintf(&sb, "const %s = `%s`\n\n", docConst, doc.Text)

	fmt.Fprintf(&sb, "func (%s) Operation() Operation {\n\treturn Operation%s\n}\n\n", unit, doc.Operation)
	fmt.Fprintf(&sb, "// Document returns the GraphQL source of the operation.\n")
	fmt.Fprintf(&sb, "func (%s) Document() string {\n\treturn %s\n}\n\n", unit, docConst)

	fmt.Fprintf(&sb, "// Request returns the request body binding every document variable.\n")
	fmt.Fprintf(&sb, "func (%s) Request(%s) Request {\n", unit, strings.Join(params, ", "))
	sb.WriteString("\treturn Request{\n")
	fmt.Fprintf(&sb, "\t\tQuery: %s,\n", docConst)
	if len(entries) == 0 {
		sb.WriteString("\t\tVariables: map[string]any{},\n")
	} else {
		sb.WriteString("\t\tVariables: map[string]any{\n")
		sb.WriteString(strings.Join(entries, ""))
		sb.WriteString("\t\t},\n")
	}
	sb.WriteString("\t}\n}\n\n")

	fmt.Fprintf(&sb, "// Response decodes a response payload. A payload carrying an \"errors\"\n// list decodes to those errors.\n")
	fmt.Fprintf(&sb, "func (%s) Response(payload []byte) (GraphqlResponse[%s], error) {\n", unit, result)
	fmt.Fprintf(&sb, "\treturn decodeResponse[%s](payload, %q, %t)\n}\n", result, f.Name, f.Type.IsNonNull())
	return sb.String(), nil
}
