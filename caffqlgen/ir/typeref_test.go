package ir

import (
	"errors"
	"testing"
)

func TestTypeRef_Underlying(t *testing.T) {
	tests := []struct {
		name string
		ref  TypeRef
		want TypeRef
	}{
		{"named", Named(KindObject, "Human"), Named(KindObject, "Human")},
		{"non-null", NonNullOf(Named(KindScalar, "ID")), Named(KindScalar, "ID")},
		{"list", ListOf(Named(KindEnum, "Episode")), Named(KindEnum, "Episode")},
		{
			"deep",
			NonNullOf(ListOf(NonNullOf(ListOf(Named(KindUnion, "SearchResult"))))),
			Named(KindUnion, "SearchResult"),
		},
		{"dangling wrapper", TypeRef{Kind: KindList}, TypeRef{Kind: KindList}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.Underlying(); !got.Equal(tt.want) {
				t.Errorf("Underlying() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeRef_Clone(t *testing.T) {
	orig := NonNullOf(ListOf(Named(KindObject, "Droid")))
	clone := orig.Clone()

	if !clone.Equal(orig) {
		t.Fatalf("Clone() = %v, want %v", clone, orig)
	}
	if clone.OfType == orig.OfType || clone.OfType.OfType == orig.OfType.OfType {
		t.Fatal("Clone() shares wrapped references with the original")
	}

	clone.OfType.OfType.Name = "Human"
	if orig.Underlying().Name != "Droid" {
		t.Errorf("mutating clone changed original to %q", orig.Underlying().Name)
	}
}

func TestTypeRef_Equal(t *testing.T) {
	a := NonNullOf(ListOf(Named(KindScalar, "Int")))
	tests := []struct {
		name  string
		other TypeRef
		want  bool
	}{
		{"identical", NonNullOf(ListOf(Named(KindScalar, "Int"))), true},
		{"different leaf", NonNullOf(ListOf(Named(KindScalar, "Float"))), false},
		{"missing wrapper", ListOf(Named(KindScalar, "Int")), false},
		{"extra wrapper", NonNullOf(ListOf(NonNullOf(Named(KindScalar, "Int")))), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeRef_String(t *testing.T) {
	tests := []struct {
		ref  TypeRef
		want string
	}{
		{Named(KindScalar, "String"), "String"},
		{NonNullOf(Named(KindScalar, "String")), "String!"},
		{ListOf(Named(KindEnum, "Episode")), "[Episode]"},
		{NonNullOf(ListOf(NonNullOf(Named(KindUnion, "SearchResult")))), "[SearchResult!]!"},
	}
	for _, tt := range tests {
		if got := tt.ref.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTypeRef_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ref     TypeRef
		wantErr bool
	}{
		{"named ok", Named(KindObject, "Human"), false},
		{"wrapped ok", NonNullOf(ListOf(Named(KindObject, "Human"))), false},
		{"named without name", TypeRef{Kind: KindObject}, true},
		{"named with ofType", TypeRef{Kind: KindObject, Name: "Human", OfType: &TypeRef{Kind: KindScalar, Name: "ID"}}, true},
		{"wrapper without ofType", TypeRef{Kind: KindNonNull}, true},
		{"wrapper with name", TypeRef{Kind: KindList, Name: "X", OfType: &TypeRef{Kind: KindScalar, Name: "ID"}}, true},
		{"nested invalid", ListOf(TypeRef{Kind: KindEnum}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ref.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var refErr *InvalidRefError
				if !errors.As(err, &refErr) {
					t.Errorf("Validate() error = %T, want *InvalidRefError", err)
				}
			}
		})
	}
}

func TestTypeKind(t *testing.T) {
	for _, name := range []string{"SCALAR", "OBJECT", "INTERFACE", "UNION", "ENUM", "INPUT_OBJECT", "LIST", "NON_NULL"} {
		k, err := ParseTypeKind(name)
		if err != nil {
			t.Fatalf("ParseTypeKind(%q) error = %v", name, err)
		}
		if k.String() != name {
			t.Errorf("ParseTypeKind(%q).String() = %q", name, k.String())
		}
		if k.IsNamed() == k.IsWrapper() {
			t.Errorf("%s: IsNamed() and IsWrapper() both %v", name, k.IsNamed())
		}
	}

	_, err := ParseTypeKind("TUPLE")
	var kindErr *UnknownKindError
	if !errors.As(err, &kindErr) || kindErr.Raw != "TUPLE" {
		t.Errorf("ParseTypeKind(TUPLE) error = %v, want *UnknownKindError with raw value", err)
	}

	if KindScalar.IsCustom() || KindList.IsCustom() || !KindInputObject.IsCustom() {
		t.Error("IsCustom() classification is wrong")
	}
}

func TestParseScalar(t *testing.T) {
	for _, name := range []string{"Int", "Float", "String", "Boolean", "ID"} {
		s, err := ParseScalar(name)
		if err != nil {
			t.Fatalf("ParseScalar(%q) error = %v", name, err)
		}
		if s.String() != name {
			t.Errorf("ParseScalar(%q).String() = %q", name, s.String())
		}
	}

	_, err := ParseScalar("DateTime")
	var scalarErr *UnknownScalarError
	if !errors.As(err, &scalarErr) || scalarErr.Name != "DateTime" {
		t.Errorf("ParseScalar(DateTime) error = %v, want *UnknownScalarError", err)
	}
}
