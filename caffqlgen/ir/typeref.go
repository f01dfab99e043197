package ir

import "strings"

// TypeRef is a reference to a GraphQL type, possibly wrapped in List/NonNull.
//
// Name is set iff Kind is a named kind. OfType is non-nil iff Kind is a
// wrapper kind. OfType is owned by its parent: Clone copies the whole chain
// and nothing else in this package shares subtrees between references.
type TypeRef struct {
	Kind   TypeKind
	Name   string
	OfType *TypeRef
}

// Named returns a reference to a named type.
func Named(kind TypeKind, name string) TypeRef {
	return TypeRef{Kind: kind, Name: name}
}

// ListOf returns a List reference wrapping elem.
func ListOf(elem TypeRef) TypeRef {
	return TypeRef{Kind: KindList, OfType: &elem}
}

// NonNullOf returns a NonNull reference wrapping inner.
func NonNullOf(inner TypeRef) TypeRef {
	return TypeRef{Kind: KindNonNull, OfType: &inner}
}

// Underlying strips every List/NonNull wrapper and returns the named reference.
// A wrapper with no OfType terminates the walk and is returned as is.
func (r TypeRef) Underlying() TypeRef {
	for r.Kind.IsWrapper() && r.OfType != nil {
		r = *r.OfType
	}
	return r
}

// IsNonNull reports whether the outermost wrapper is NonNull.
func (r TypeRef) IsNonNull() bool {
	return r.Kind == KindNonNull
}

// Clone returns a deep copy of the reference chain.
func (r TypeRef) Clone() TypeRef {
	out := TypeRef{Kind: r.Kind, Name: r.Name}
	if r.OfType != nil {
		inner := r.OfType.Clone()
		out.OfType = &inner
	}
	return out
}

// Equal reports whether two references are structurally identical.
func (r TypeRef) Equal(other TypeRef) bool {
	if r.Kind != other.Kind || r.Name != other.Name {
		return false
	}
	if r.OfType == nil || other.OfType == nil {
		return r.OfType == nil && other.OfType == nil
	}
	return r.OfType.Equal(*other.OfType)
}

// Validate checks the name/ofType invariant along the whole chain.
func (r TypeRef) Validate() error {
	return r.validate("")
}

func (r TypeRef) validate(path string) error {
	switch {
	case r.Kind.IsNamed():
		if r.Name == "" {
			return &InvalidRefError{Path: path, Kind: r.Kind, Reason: "missing name"}
		}
		if r.OfType != nil {
			return &InvalidRefError{Path: path, Kind: r.Kind, Reason: "named kind must not wrap a type"}
		}
		return nil
	case r.Kind.IsWrapper():
		if r.Name != "" {
			return &InvalidRefError{Path: path, Kind: r.Kind, Reason: "wrapper kind must not carry a name"}
		}
		if r.OfType == nil {
			return &InvalidRefError{Path: path, Kind: r.Kind, Reason: "missing ofType"}
		}
		return r.OfType.validate(joinPath(path, "ofType"))
	default:
		return &UnknownKindError{Raw: r.Kind.String()}
	}
}

// String renders the reference in GraphQL type syntax, e.g. "[Episode!]!".
func (r TypeRef) String() string {
	var sb strings.Builder
	r.writeGraphQL(&sb)
	return sb.String()
}

func (r TypeRef) writeGraphQL(sb *strings.Builder) {
	switch r.Kind {
	case KindNonNull:
		if r.OfType != nil {
			r.OfType.writeGraphQL(sb)
		}
		sb.WriteString("!")
	case KindList:
		sb.WriteString("[")
		if r.OfType != nil {
			r.OfType.writeGraphQL(sb)
		}
		sb.WriteString("]")
	default:
		sb.WriteString(r.Name)
	}
}

func joinPath(path, elem string) string {
	if path == "" {
		return elem
	}
	return path + "." + elem
}
