package golang

import (
	"fmt"
	"path"
	"strings"

	"github.com/caffql/caffql/caffqlgen/ir"
)

// builtinScalars maps the built-in GraphQL scalars to Go types.
var builtinScalars = map[ir.Scalar]string{
	ir.ScalarInt:     "int32",
	ir.ScalarFloat:   "float64",
	ir.ScalarString:  "string",
	ir.ScalarBoolean: "bool",
	ir.ScalarID:      "ID",
}

// scalarMapping is a configured Go type for a scalar.
type scalarMapping struct {
	expr       string // e.g. "uuid.UUID"
	importPath string // e.g. "github.com/google/uuid", "" for predeclared types
}

// parseScalarMapping splits a Go type written as [importpath.]Name.
func parseScalarMapping(goType string) (scalarMapping, error) {
	goType = strings.TrimSpace(goType)
	if goType == "" {
		return scalarMapping{}, fmt.Errorf("empty Go type")
	}
	dot := strings.LastIndex(goType, ".")
	if dot < 0 {
		return scalarMapping{expr: goType}, nil
	}
	importPath, name := goType[:dot], goType[dot+1:]
	if importPath == "" || name == "" {
		return scalarMapping{}, fmt.Errorf("invalid Go type %q", goType)
	}
	return scalarMapping{expr: path.Base(importPath) + "." + name, importPath: importPath}, nil
}

// scalarType returns the Go type for a scalar name.
func (e *Emitter) scalarType(name string) (string, error) {
	if m, ok := e.scalars[name]; ok {
		return m.expr, nil
	}
	s, err := ir.ParseScalar(name)
	if err != nil {
		return "", err
	}
	return builtinScalars[s], nil
}

// TypeExpr renders a type reference as a Go type expression.
//
// Named kinds render as their Go name and NonNull as its wrapped type.
// Every nullable rendering is wrapped in the configured optional form, and
// lists render as slices of their element rendering.
func (e *Emitter) TypeExpr(ref ir.TypeRef) (string, error) {
	if ref.Kind == ir.KindNonNull {
		if ref.OfType == nil {
			return "", &ir.InvalidRefError{Kind: ref.Kind, Reason: "missing ofType"}
		}
		return e.nonNullExpr(*ref.OfType)
	}
	inner, err := e.nonNullExpr(ref)
	if err != nil {
		return "", err
	}
	return e.optional(inner), nil
}

// nonNullExpr renders ref without an outer optional wrapper.
func (e *Emitter) nonNullExpr(ref ir.TypeRef) (string, error) {
	switch ref.Kind {
	case ir.KindScalar:
		return e.scalarType(ref.Name)
	case ir.KindObject, ir.KindInterface, ir.KindUnion, ir.KindEnum, ir.KindInputObject:
		return e.goTypeName(ref.Name), nil
	case ir.KindList:
		if ref.OfType == nil {
			return "", &ir.InvalidRefError{Kind: ref.Kind, Reason: "missing ofType"}
		}
		elem, err := e.TypeExpr(*ref.OfType)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case ir.KindNonNull:
		return e.TypeExpr(ref)
	}
	return "", &ir.UnknownKindError{Raw: ref.Kind.String()}
}

func (e *Emitter) optional(inner string) string {
	if e.config.OptionalStyle == OptionalGeneric {
		return "Optional[" + inner + "]"
	}
	return "*" + inner
}

// PassByReference reports whether a value of type ref is large enough to be
// handed to a request constructor by reference. Int, Float, Boolean and
// enums go by value; String, ID, objects, interfaces, unions, input objects
// and lists go by reference. NonNull defers to its wrapped type. Custom
// scalars need a mapping and are passed by reference.
func PassByReference(ref ir.TypeRef, mapped map[string]string) (bool, error) {
	switch ref.Kind {
	case ir.KindNonNull:
		if ref.OfType == nil {
			return false, &ir.InvalidRefError{Kind: ref.Kind, Reason: "missing ofType"}
		}
		return PassByReference(*ref.OfType, mapped)
	case ir.KindScalar:
		if _, ok := mapped[ref.Name]; ok {
			return true, nil
		}
		s, err := ir.ParseScalar(ref.Name)
		if err != nil {
			return false, err
		}
		switch s {
		case ir.ScalarInt, ir.ScalarFloat, ir.ScalarBoolean:
			return false, nil
		}
		return true, nil
	case ir.KindEnum:
		return false, nil
	case ir.KindObject, ir.KindInterface, ir.KindUnion, ir.KindInputObject, ir.KindList:
		return true, nil
	}
	return false, &ir.UnknownKindError{Raw: ref.Kind.String()}
}

// paramType renders the request constructor parameter type for a variable.
// Go strings and slices already share their backing storage, so only
// required input objects gain an explicit pointer.
func (e *Emitter) paramType(ref ir.TypeRef) (string, error) {
	expr, err := e.TypeExpr(ref)
	if err != nil {
		return "", err
	}
	byRef, err := PassByReference(ref, e.config.ScalarMappings)
	if err != nil {
		return "", err
	}
	if byRef && ref.Kind == ir.KindNonNull && ref.OfType.Kind == ir.KindInputObject {
		return "*" + expr, nil
	}
	return expr, nil
}
