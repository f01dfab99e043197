// Package ir defines the in-memory model of a GraphQL introspection schema.
// Values are decoded once from the wire format and treated as immutable by
// every later pass.
package ir

import "strings"

// MetaPrefix marks introspection meta types (e.g. "__Schema").
const MetaPrefix = "__"

// IsMetaName reports whether name belongs to the introspection meta types.
func IsMetaName(name string) bool {
	return strings.HasPrefix(name, MetaPrefix)
}

// Type is a named GraphQL type definition. There is one implementation per
// kind, each carrying only the attributes meaningful for that kind.
type Type interface {
	// Kind returns the kind tag for type switching.
	Kind() TypeKind

	// TypeName returns the GraphQL name, or "" for wrapper entries.
	TypeName() string

	// Doc returns the schema description, if any.
	Doc() string

	sealed()
}

// ScalarType is a scalar definition.
type ScalarType struct {
	Name        string
	Description string
}

func (t *ScalarType) Kind() TypeKind   { return KindScalar }
func (t *ScalarType) TypeName() string { return t.Name }
func (t *ScalarType) Doc() string      { return t.Description }
func (*ScalarType) sealed()            {}

// ObjectType is an object definition.
type ObjectType struct {
	Name        string
	Description string
	Fields      []Field
	Interfaces  []TypeRef
}

func (t *ObjectType) Kind() TypeKind   { return KindObject }
func (t *ObjectType) TypeName() string { return t.Name }
func (t *ObjectType) Doc() string      { return t.Description }
func (*ObjectType) sealed()            {}

// InterfaceType is an interface definition.
type InterfaceType struct {
	Name          string
	Description   string
	Fields        []Field
	PossibleTypes []TypeRef
}

func (t *InterfaceType) Kind() TypeKind   { return KindInterface }
func (t *InterfaceType) TypeName() string { return t.Name }
func (t *InterfaceType) Doc() string      { return t.Description }
func (*InterfaceType) sealed()            {}

// UnionType is a union definition.
type UnionType struct {
	Name          string
	Description   string
	PossibleTypes []TypeRef
}

func (t *UnionType) Kind() TypeKind   { return KindUnion }
func (t *UnionType) TypeName() string { return t.Name }
func (t *UnionType) Doc() string      { return t.Description }
func (*UnionType) sealed()            {}

// EnumType is an enum definition.
type EnumType struct {
	Name        string
	Description string
	Values      []EnumValue
}

func (t *EnumType) Kind() TypeKind   { return KindEnum }
func (t *EnumType) TypeName() string { return t.Name }
func (t *EnumType) Doc() string      { return t.Description }
func (*EnumType) sealed()            {}

// InputObjectType is an input object definition.
type InputObjectType struct {
	Name        string
	Description string
	InputFields []InputValue
}

func (t *InputObjectType) Kind() TypeKind   { return KindInputObject }
func (t *InputObjectType) TypeName() string { return t.Name }
func (t *InputObjectType) Doc() string      { return t.Description }
func (*InputObjectType) sealed()            {}

// WrapperType is a List or NonNull entry in a raw type list.
// It carries nothing and is skipped by every pass.
type WrapperType struct {
	WrapperKind TypeKind
}

func (t *WrapperType) Kind() TypeKind { return t.WrapperKind }
func (*WrapperType) TypeName() string { return "" }
func (*WrapperType) Doc() string      { return "" }
func (*WrapperType) sealed()          {}

// IsCustom reports whether t gets a generated declaration: an object,
// interface, union, enum or input object whose name is not a meta name.
func IsCustom(t Type) bool {
	return t.Kind().IsCustom() && !IsMetaName(t.TypeName())
}

// FieldsOf returns the output fields of an object or interface, nil otherwise.
func FieldsOf(t Type) []Field {
	switch t := t.(type) {
	case *ObjectType:
		return t.Fields
	case *InterfaceType:
		return t.Fields
	}
	return nil
}

// PossibleTypesOf returns the possible types of an interface or union, nil otherwise.
func PossibleTypesOf(t Type) []TypeRef {
	switch t := t.(type) {
	case *InterfaceType:
		return t.PossibleTypes
	case *UnionType:
		return t.PossibleTypes
	}
	return nil
}

// InputValue is a field argument or an input object field.
type InputValue struct {
	Name        string
	Description string
	Type        TypeRef
}

// Equal reports whether two input values are structurally identical.
func (v InputValue) Equal(other InputValue) bool {
	return v.Name == other.Name && v.Description == other.Description && v.Type.Equal(other.Type)
}

// Field is an output field of an object or interface.
type Field struct {
	Name        string
	Description string
	Args        []InputValue
	Type        TypeRef

	// DeprecationReason is non-nil when the field is deprecated.
	DeprecationReason *string
}

// Equal reports whether two fields are structurally identical.
func (f Field) Equal(other Field) bool {
	if f.Name != other.Name || f.Description != other.Description || !f.Type.Equal(other.Type) {
		return false
	}
	if len(f.Args) != len(other.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	if (f.DeprecationReason == nil) != (other.DeprecationReason == nil) {
		return false
	}
	return f.DeprecationReason == nil || *f.DeprecationReason == *other.DeprecationReason
}

// EnumValue is a single enum case.
type EnumValue struct {
	Name        string
	Description string

	// DeprecationReason is non-nil when the value is deprecated.
	DeprecationReason *string
}

// Warning represents a non-fatal issue encountered during generation.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// TypeName is the type that triggered the warning, if applicable.
	TypeName string
}
