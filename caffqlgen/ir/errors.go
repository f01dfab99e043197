package ir

import (
	"fmt"
	"strings"
)

// MalformedError reports a required introspection key that is missing.
type MalformedError struct {
	// Path locates the object that is missing the key, e.g. "types[3].fields[0]".
	Path string

	// Key is the missing JSON key.
	Key string
}

func (e *MalformedError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed schema: missing required key %q", e.Key)
	}
	return fmt.Sprintf("malformed schema: %s: missing required key %q", e.Path, e.Key)
}

// UnknownKindError reports a type kind outside the closed enumeration.
type UnknownKindError struct {
	Raw string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown type kind %q", e.Raw)
}

// UnknownOperationError reports an operation keyword other than query, mutation or subscription.
type UnknownOperationError struct {
	Raw string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q", e.Raw)
}

// UnknownScalarError reports a scalar name outside the built-in set
// that has no configured mapping.
type UnknownScalarError struct {
	Name string
}

func (e *UnknownScalarError) Error() string {
	return fmt.Sprintf("invalid scalar %q (expected one of %s)", e.Name, strings.Join(builtinScalarNames(), ", "))
}

// InvalidRefError reports a TypeRef that breaks the name/ofType invariant.
type InvalidRefError struct {
	Path   string
	Kind   TypeKind
	Reason string
}

func (e *InvalidRefError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid %s type reference: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: invalid %s type reference: %s", e.Path, e.Kind, e.Reason)
}
