package ir

// Scalar identifies one of the built-in GraphQL scalars.
type Scalar int

const (
	ScalarInt Scalar = iota
	ScalarFloat
	ScalarString
	ScalarBoolean
	ScalarID
)

var scalarNames = [...]string{
	ScalarInt:     "Int",
	ScalarFloat:   "Float",
	ScalarString:  "String",
	ScalarBoolean: "Boolean",
	ScalarID:      "ID",
}

// String returns the GraphQL name of the scalar.
func (s Scalar) String() string {
	if s < 0 || int(s) >= len(scalarNames) {
		return "Unknown"
	}
	return scalarNames[s]
}

// ParseScalar converts a GraphQL scalar name to a Scalar.
// Any name outside the five built-ins is an *UnknownScalarError.
func ParseScalar(name string) (Scalar, error) {
	for s, n := range scalarNames {
		if n == name {
			return Scalar(s), nil
		}
	}
	return 0, &UnknownScalarError{Name: name}
}

// IsBuiltinScalar reports whether name is one of the five built-in scalars.
func IsBuiltinScalar(name string) bool {
	_, err := ParseScalar(name)
	return err == nil
}

func builtinScalarNames() []string {
	return scalarNames[:]
}
