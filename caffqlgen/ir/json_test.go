package ir

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/caffql/caffql/internal/testfixtures"
)

func decodeStarWars(t *testing.T) *Schema {
	t.Helper()
	var env struct {
		Data struct {
			Schema Schema `json:"__schema"`
		} `json:"data"`
	}
	if err := json.Unmarshal(testfixtures.StarWars, &env); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return &env.Data.Schema
}

func TestSchema_UnmarshalJSON(t *testing.T) {
	s := decodeStarWars(t)

	if s.QueryType == nil || s.QueryType.Name != "Query" {
		t.Errorf("QueryType = %v, want Query", s.QueryType)
	}
	if s.MutationType == nil || s.MutationType.Name != "Mutation" {
		t.Errorf("MutationType = %v, want Mutation", s.MutationType)
	}
	if s.SubscriptionType != nil {
		t.Errorf("SubscriptionType = %v, want nil", s.SubscriptionType)
	}

	types := NewTypeMap(s.Types)

	human, ok := types.Lookup("Human")
	if !ok {
		t.Fatal("Human not found")
	}
	obj, ok := human.(*ObjectType)
	if !ok {
		t.Fatalf("Human is %T, want *ObjectType", human)
	}
	if len(obj.Fields) != 6 {
		t.Fatalf("Human has %d fields, want 6", len(obj.Fields))
	}
	height := obj.Fields[4]
	if height.Name != "height" || len(height.Args) != 1 || height.Args[0].Type.Name != "LengthUnit" {
		t.Errorf("height field = %+v", height)
	}
	if len(obj.Interfaces) != 1 || obj.Interfaces[0].Name != "Character" {
		t.Errorf("Human interfaces = %v", obj.Interfaces)
	}

	search, _ := types.Lookup("Query")
	searchField := FieldsOf(search)[1]
	if got := searchField.Type.String(); got != "[SearchResult!]!" {
		t.Errorf("search type = %s, want [SearchResult!]!", got)
	}

	character, _ := types.Lookup("Character")
	if got := len(PossibleTypesOf(character)); got != 2 {
		t.Errorf("Character has %d possible types, want 2", got)
	}

	unit, _ := types.Lookup("LengthUnit")
	values := unit.(*EnumType).Values
	if values[2].DeprecationReason == nil || *values[2].DeprecationReason != "Nobody measures in cubits anymore" {
		t.Errorf("CUBIT deprecation = %v", values[2].DeprecationReason)
	}
	if values[0].DeprecationReason != nil {
		t.Errorf("METER should not be deprecated")
	}

	if _, ok := types.Lookup("Starship"); ok {
		t.Error("Lookup(Starship) reported a type that does not exist")
	}
}

func TestTypeRef_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantKey string
	}{
		{
			name:  "named",
			input: `{"kind":"SCALAR","name":"String","ofType":null}`,
			want:  "String",
		},
		{
			name:  "wrapped",
			input: `{"kind":"NON_NULL","name":null,"ofType":{"kind":"LIST","name":null,"ofType":{"kind":"ENUM","name":"Episode","ofType":null}}}`,
			want:  "[Episode]!",
		},
		{
			name:    "missing kind",
			input:   `{"name":"String"}`,
			wantKey: "kind",
		},
		{
			name:    "named kind missing name",
			input:   `{"kind":"OBJECT","ofType":null}`,
			wantKey: "name",
		},
		{
			name:    "wrapper missing ofType",
			input:   `{"kind":"LIST","name":null}`,
			wantKey: "ofType",
		},
		{
			name:    "nested missing kind",
			input:   `{"kind":"NON_NULL","ofType":{"name":"Int"}}`,
			wantKey: "kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref TypeRef
			err := json.Unmarshal([]byte(tt.input), &ref)
			if tt.wantKey != "" {
				var malformed *MalformedError
				if !errors.As(err, &malformed) {
					t.Fatalf("Unmarshal() error = %v, want *MalformedError", err)
				}
				if malformed.Key != tt.wantKey {
					t.Errorf("MalformedError.Key = %q, want %q", malformed.Key, tt.wantKey)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := ref.String(); got != tt.want {
				t.Errorf("decoded %s, want %s", got, tt.want)
			}
			if err := ref.Validate(); err != nil {
				t.Errorf("decoded reference is invalid: %v", err)
			}
		})
	}
}

func TestTypeRef_UnmarshalJSON_UnknownKind(t *testing.T) {
	var ref TypeRef
	err := json.Unmarshal([]byte(`{"kind":"TUPLE","name":"X"}`), &ref)
	var kindErr *UnknownKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("Unmarshal() error = %v, want *UnknownKindError", err)
	}
	if kindErr.Raw != "TUPLE" {
		t.Errorf("Raw = %q, want TUPLE", kindErr.Raw)
	}
}

func TestDecodeTypeEntry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind TypeKind
		wantName string
	}{
		{"scalar", `{"kind":"SCALAR","name":"DateTime"}`, KindScalar, "DateTime"},
		{"enum", `{"kind":"ENUM","name":"Episode","enumValues":[{"name":"JEDI"}]}`, KindEnum, "Episode"},
		{"input", `{"kind":"INPUT_OBJECT","name":"In","inputFields":[{"name":"a","type":{"kind":"SCALAR","name":"Int"}}]}`, KindInputObject, "In"},
		{"union", `{"kind":"UNION","name":"U","possibleTypes":[{"kind":"OBJECT","name":"A"}]}`, KindUnion, "U"},
		{"wrapper entry", `{"kind":"LIST"}`, KindList, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Schema
			if err := json.Unmarshal([]byte(`{"types":[`+tt.input+`]}`), &s); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if len(s.Types) != 1 {
				t.Fatalf("len(Types) = %d, want 1", len(s.Types))
			}
			typ := s.Types[0]
			if typ.Kind() != tt.wantKind || typ.TypeName() != tt.wantName {
				t.Errorf("decoded %s %q, want %s %q", typ.Kind(), typ.TypeName(), tt.wantKind, tt.wantName)
			}
		})
	}
}

func TestSchema_UnmarshalJSON_Malformed(t *testing.T) {
	input := `{
		"queryType": {"name": "Query"},
		"types": [
			{"kind": "OBJECT", "name": "Query", "fields": [{"type": {"kind": "SCALAR", "name": "Int"}}]},
			{"kind": "OBJECT", "name": "Ok", "fields": []},
			{"kind": "ENUM", "enumValues": []},
			{"kind": "OBJECT", "name": "Bad", "fields": [{"name": "x"}]}
		]
	}`

	var s Schema
	err := json.Unmarshal([]byte(input), &s)
	if err == nil {
		t.Fatal("Unmarshal() expected error")
	}

	errs := multierr.Errors(err)
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), err)
	}

	wantPaths := []string{"types[0](Query).fields[0]", "types[2]", "types[3](Bad).fields[0]"}
	wantKeys := []string{"name", "name", "type"}
	for i, e := range errs {
		var malformed *MalformedError
		if !errors.As(e, &malformed) {
			t.Fatalf("error %d = %T, want *MalformedError", i, e)
		}
		if malformed.Path != wantPaths[i] || malformed.Key != wantKeys[i] {
			t.Errorf("error %d = %s/%s, want %s/%s", i, malformed.Path, malformed.Key, wantPaths[i], wantKeys[i])
		}
	}
}

func TestSchema_UnmarshalJSON_MissingTypes(t *testing.T) {
	var s Schema
	err := json.Unmarshal([]byte(`{"queryType":{"name":"Query"}}`), &s)
	var malformed *MalformedError
	if !errors.As(err, &malformed) || malformed.Key != "types" {
		t.Fatalf("Unmarshal() error = %v, want missing types", err)
	}
	if !strings.Contains(err.Error(), "missing required key") {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestSchema_RootOperation(t *testing.T) {
	s := decodeStarWars(t)

	tests := []struct {
		typeName string
		wantOp   Operation
		wantOK   bool
	}{
		{"Query", OperationQuery, true},
		{"Mutation", OperationMutation, true},
		{"Human", 0, false},
	}
	for _, tt := range tests {
		op, ok := s.RootOperation(tt.typeName)
		if ok != tt.wantOK || op != tt.wantOp {
			t.Errorf("RootOperation(%q) = %v, %v; want %v, %v", tt.typeName, op, ok, tt.wantOp, tt.wantOK)
		}
	}

	if _, ok := s.RootTypeName(OperationSubscription); ok {
		t.Error("RootTypeName(Subscription) reported a root type")
	}
}

func TestIsCustom(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{&ObjectType{Name: "Human"}, true},
		{&InputObjectType{Name: "ReviewInput"}, true},
		{&EnumType{Name: "__TypeKind"}, false},
		{&ObjectType{Name: "__Schema"}, false},
		{&ScalarType{Name: "DateTime"}, false},
		{&WrapperType{WrapperKind: KindNonNull}, false},
	}
	for _, tt := range tests {
		if got := IsCustom(tt.typ); got != tt.want {
			t.Errorf("IsCustom(%s %q) = %v, want %v", tt.typ.Kind(), tt.typ.TypeName(), got, tt.want)
		}
	}
}
