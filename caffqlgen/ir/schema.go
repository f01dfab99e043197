package ir

import "slices"

// OperationType names the object type serving as an operation root.
type OperationType struct {
	Name string
}

// Schema is the root of a decoded introspection document.
type Schema struct {
	QueryType        *OperationType
	MutationType     *OperationType
	SubscriptionType *OperationType

	// Types lists every type in the graph, built-in scalars and meta types included.
	Types []Type
}

// RootOperation reports which operation, if any, uses typeName as its root type.
func (s *Schema) RootOperation(typeName string) (Operation, bool) {
	for _, root := range s.roots() {
		if root.typ != nil && root.typ.Name == typeName {
			return root.op, true
		}
	}
	return 0, false
}

// RootTypeName returns the root type name configured for op.
func (s *Schema) RootTypeName(op Operation) (string, bool) {
	for _, root := range s.roots() {
		if root.op == op && root.typ != nil {
			return root.typ.Name, true
		}
	}
	return "", false
}

type rootEntry struct {
	op  Operation
	typ *OperationType
}

func (s *Schema) roots() []rootEntry {
	return []rootEntry{
		{OperationQuery, s.QueryType},
		{OperationMutation, s.MutationType},
		{OperationSubscription, s.SubscriptionType},
	}
}

// TypeMap indexes types by name.
type TypeMap map[string]Type

// NewTypeMap builds a TypeMap from a type list. Wrapper entries are skipped.
func NewTypeMap(types []Type) TypeMap {
	m := make(TypeMap, len(types))
	for _, t := range types {
		if name := t.TypeName(); name != "" {
			m[name] = t
		}
	}
	return m
}

// Lookup returns the type named name and whether it exists.
func (m TypeMap) Lookup(name string) (Type, bool) {
	t, ok := m[name]
	return t, ok
}

// Names returns the type names in lexicographic order.
func (m TypeMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
