package ir

// TypeKind identifies the category of a GraphQL type or type reference.
type TypeKind int

const (
	// Named kinds (own a name, appear in Schema.Types)
	KindScalar TypeKind = iota
	KindObject
	KindInterface
	KindUnion
	KindEnum
	KindInputObject

	// Wrapper kinds (wrap another TypeRef)
	KindList
	KindNonNull
)

var kindNames = [...]string{
	KindScalar:      "SCALAR",
	KindObject:      "OBJECT",
	KindInterface:   "INTERFACE",
	KindUnion:       "UNION",
	KindEnum:        "ENUM",
	KindInputObject: "INPUT_OBJECT",
	KindList:        "LIST",
	KindNonNull:     "NON_NULL",
}

// String returns the introspection wire name of the kind.
func (k TypeKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// IsNamed reports whether references of this kind carry a name.
func (k TypeKind) IsNamed() bool {
	return k >= KindScalar && k <= KindInputObject
}

// IsWrapper reports whether references of this kind wrap another reference.
func (k TypeKind) IsWrapper() bool {
	return k == KindList || k == KindNonNull
}

// IsCustom reports whether types of this kind get a generated declaration.
// Scalars are named but map onto built-in target types.
func (k TypeKind) IsCustom() bool {
	switch k {
	case KindObject, KindInterface, KindUnion, KindEnum, KindInputObject:
		return true
	}
	return false
}

// ParseTypeKind converts an introspection wire name to a TypeKind.
func ParseTypeKind(s string) (TypeKind, error) {
	for k, name := range kindNames {
		if name == s {
			return TypeKind(k), nil
		}
	}
	return 0, &UnknownKindError{Raw: s}
}

// Operation identifies a GraphQL root operation type.
type Operation int

const (
	OperationQuery Operation = iota
	OperationMutation
	OperationSubscription
)

// String returns the capitalized operation name (e.g. "Query").
func (o Operation) String() string {
	switch o {
	case OperationQuery:
		return "Query"
	case OperationMutation:
		return "Mutation"
	case OperationSubscription:
		return "Subscription"
	default:
		return "Unknown"
	}
}

// Keyword returns the GraphQL document keyword for the operation.
func (o Operation) Keyword() string {
	switch o {
	case OperationQuery:
		return "query"
	case OperationMutation:
		return "mutation"
	case OperationSubscription:
		return "subscription"
	default:
		return ""
	}
}
