package ir

import (
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
)

// Wire shapes of the introspection response. Pointer fields distinguish a
// missing key from a zero value so required keys can be reported.

type wireTypeRef struct {
	Kind   *string      `json:"kind"`
	Name   *string      `json:"name"`
	OfType *wireTypeRef `json:"ofType"`
}

type wireInputValue struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Type        *wireTypeRef `json:"type"`
}

type wireField struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	Args              []wireInputValue `json:"args"`
	Type              *wireTypeRef     `json:"type"`
	IsDeprecated      bool             `json:"isDeprecated"`
	DeprecationReason *string          `json:"deprecationReason"`
}

type wireEnumValue struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	IsDeprecated      bool    `json:"isDeprecated"`
	DeprecationReason *string `json:"deprecationReason"`
}

type wireType struct {
	Kind          *string          `json:"kind"`
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Fields        []wireField      `json:"fields"`
	InputFields   []wireInputValue `json:"inputFields"`
	Interfaces    []wireTypeRef    `json:"interfaces"`
	EnumValues    []wireEnumValue  `json:"enumValues"`
	PossibleTypes []wireTypeRef    `json:"possibleTypes"`
}

type wireOperationType struct {
	Name *string `json:"name"`
}

type wireSchema struct {
	QueryType        *wireOperationType `json:"queryType"`
	MutationType     *wireOperationType `json:"mutationType"`
	SubscriptionType *wireOperationType `json:"subscriptionType"`
	Types            []wireType         `json:"types"`
}

// UnmarshalJSON decodes the "__schema" object of an introspection response.
// Every malformed type is reported; the errors are combined with multierr.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var w wireSchema
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	decoded, err := w.decode()
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// UnmarshalJSON decodes a single introspection type reference.
func (r *TypeRef) UnmarshalJSON(data []byte) error {
	var w wireTypeRef
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	ref, err := w.decode("")
	if err != nil {
		return err
	}
	*r = ref
	return nil
}

func (w *wireSchema) decode() (*Schema, error) {
	const path = "__schema"
	if w.Types == nil {
		return nil, &MalformedError{Path: path, Key: "types"}
	}

	var errs error
	s := &Schema{Types: make([]Type, 0, len(w.Types))}

	var err error
	s.QueryType, err = w.QueryType.decode(path + ".queryType")
	errs = multierr.Append(errs, err)
	s.MutationType, err = w.MutationType.decode(path + ".mutationType")
	errs = multierr.Append(errs, err)
	s.SubscriptionType, err = w.SubscriptionType.decode(path + ".subscriptionType")
	errs = multierr.Append(errs, err)

	for i := range w.Types {
		t, err := w.Types[i].decode(fmt.Sprintf("types[%d]", i))
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		s.Types = append(s.Types, t)
	}
	if errs != nil {
		return nil, errs
	}
	return s, nil
}

func (w *wireOperationType) decode(path string) (*OperationType, error) {
	if w == nil {
		return nil, nil
	}
	if w.Name == nil || *w.Name == "" {
		return nil, &MalformedError{Path: path, Key: "name"}
	}
	return &OperationType{Name: *w.Name}, nil
}

func (w *wireTypeRef) decode(path string) (TypeRef, error) {
	if w.Kind == nil {
		return TypeRef{}, &MalformedError{Path: path, Key: "kind"}
	}
	kind, err := ParseTypeKind(*w.Kind)
	if err != nil {
		return TypeRef{}, fmt.Errorf("%s: %w", path, err)
	}

	ref := TypeRef{Kind: kind}
	if kind.IsNamed() {
		if w.Name == nil || *w.Name == "" {
			return TypeRef{}, &MalformedError{Path: path, Key: "name"}
		}
		ref.Name = *w.Name
		return ref, nil
	}

	if w.OfType == nil {
		return TypeRef{}, &MalformedError{Path: path, Key: "ofType"}
	}
	inner, err := w.OfType.decode(joinPath(path, "ofType"))
	if err != nil {
		return TypeRef{}, err
	}
	ref.OfType = &inner
	return ref, nil
}

func (w *wireInputValue) decode(path string) (InputValue, error) {
	if w.Name == nil {
		return InputValue{}, &MalformedError{Path: path, Key: "name"}
	}
	if w.Type == nil {
		return InputValue{}, &MalformedError{Path: path, Key: "type"}
	}
	ref, err := w.Type.decode(joinPath(path, "type"))
	if err != nil {
		return InputValue{}, err
	}
	return InputValue{Name: *w.Name, Description: deref(w.Description), Type: ref}, nil
}

func (w *wireField) decode(path string) (Field, error) {
	if w.Name == nil {
		return Field{}, &MalformedError{Path: path, Key: "name"}
	}
	if w.Type == nil {
		return Field{}, &MalformedError{Path: path, Key: "type"}
	}
	ref, err := w.Type.decode(joinPath(path, "type"))
	if err != nil {
		return Field{}, err
	}
	args, err := decodeInputValues(joinPath(path, "args"), w.Args)
	if err != nil {
		return Field{}, err
	}
	f := Field{Name: *w.Name, Description: deref(w.Description), Args: args, Type: ref}
	if w.IsDeprecated {
		reason := deref(w.DeprecationReason)
		f.DeprecationReason = &reason
	}
	return f, nil
}

func (w *wireEnumValue) decode(path string) (EnumValue, error) {
	if w.Name == nil {
		return EnumValue{}, &MalformedError{Path: path, Key: "name"}
	}
	v := EnumValue{Name: *w.Name, Description: deref(w.Description)}
	if w.IsDeprecated {
		reason := deref(w.DeprecationReason)
		v.DeprecationReason = &reason
	}
	return v, nil
}

func (w *wireType) decode(path string) (Type, error) {
	if w.Kind == nil {
		return nil, &MalformedError{Path: path, Key: "kind"}
	}
	kind, err := ParseTypeKind(*w.Kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if kind.IsWrapper() {
		return &WrapperType{WrapperKind: kind}, nil
	}
	if w.Name == nil || *w.Name == "" {
		return nil, &MalformedError{Path: path, Key: "name"}
	}
	name, desc := *w.Name, deref(w.Description)
	path = fmt.Sprintf("%s(%s)", path, name)

	switch kind {
	case KindScalar:
		return &ScalarType{Name: name, Description: desc}, nil
	case KindObject:
		fields, err := decodeFields(joinPath(path, "fields"), w.Fields)
		if err != nil {
			return nil, err
		}
		interfaces, err := decodeTypeRefs(joinPath(path, "interfaces"), w.Interfaces)
		if err != nil {
			return nil, err
		}
		return &ObjectType{Name: name, Description: desc, Fields: fields, Interfaces: interfaces}, nil
	case KindInterface:
		fields, err := decodeFields(joinPath(path, "fields"), w.Fields)
		if err != nil {
			return nil, err
		}
		possible, err := decodeTypeRefs(joinPath(path, "possibleTypes"), w.PossibleTypes)
		if err != nil {
			return nil, err
		}
		return &InterfaceType{Name: name, Description: desc, Fields: fields, PossibleTypes: possible}, nil
	case KindUnion:
		possible, err := decodeTypeRefs(joinPath(path, "possibleTypes"), w.PossibleTypes)
		if err != nil {
			return nil, err
		}
		return &UnionType{Name: name, Description: desc, PossibleTypes: possible}, nil
	case KindEnum:
		values := make([]EnumValue, 0, len(w.EnumValues))
		var errs error
		for i := range w.EnumValues {
			v, err := w.EnumValues[i].decode(fmt.Sprintf("%s.enumValues[%d]", path, i))
			errs = multierr.Append(errs, err)
			values = append(values, v)
		}
		if errs != nil {
			return nil, errs
		}
		return &EnumType{Name: name, Description: desc, Values: values}, nil
	case KindInputObject:
		inputFields, err := decodeInputValues(joinPath(path, "inputFields"), w.InputFields)
		if err != nil {
			return nil, err
		}
		return &InputObjectType{Name: name, Description: desc, InputFields: inputFields}, nil
	}
	return nil, fmt.Errorf("%s: %w", path, &UnknownKindError{Raw: *w.Kind})
}

func decodeFields(path string, in []wireField) ([]Field, error) {
	out := make([]Field, 0, len(in))
	var errs error
	for i := range in {
		f, err := in[i].decode(fmt.Sprintf("%s[%d]", path, i))
		errs = multierr.Append(errs, err)
		out = append(out, f)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func decodeInputValues(path string, in []wireInputValue) ([]InputValue, error) {
	out := make([]InputValue, 0, len(in))
	var errs error
	for i := range in {
		v, err := in[i].decode(fmt.Sprintf("%s[%d]", path, i))
		errs = multierr.Append(errs, err)
		out = append(out, v)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func decodeTypeRefs(path string, in []wireTypeRef) ([]TypeRef, error) {
	out := make([]TypeRef, 0, len(in))
	var errs error
	for i := range in {
		r, err := in[i].decode(fmt.Sprintf("%s[%d]", path, i))
		errs = multierr.Append(errs, err)
		out = append(out, r)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
