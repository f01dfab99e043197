package provider

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/caffql/caffql/caffqlgen/ir"
	"github.com/caffql/caffql/internal/testfixtures"
)

func TestIntrospectionProvider_BuildSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(path, testfixtures.StarWars, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		opts IntrospectionInputOptions
	}{
		{"path", IntrospectionInputOptions{Path: path}},
		{"reader", IntrospectionInputOptions{Reader: strings.NewReader(string(testfixtures.StarWars))}},
		{"data", IntrospectionInputOptions{Data: testfixtures.StarWars}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &IntrospectionProvider{}
			schema, err := p.BuildSchema(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("BuildSchema() error = %v", err)
			}
			if schema.QueryType == nil || schema.QueryType.Name != "Query" {
				t.Errorf("QueryType = %+v, want Query", schema.QueryType)
			}
			if schema.SubscriptionType != nil {
				t.Errorf("SubscriptionType = %+v, want nil", schema.SubscriptionType)
			}
			if _, ok := ir.NewTypeMap(schema.Types).Lookup("Character"); !ok {
				t.Error("type Character not decoded")
			}
		})
	}
}

func TestIntrospectionProvider_BareSchema(t *testing.T) {
	data := []byte(`{"__schema":{"queryType":{"name":"Query"},"types":[
		{"kind":"OBJECT","name":"Query","fields":[
			{"name":"ok","args":[],"type":{"kind":"SCALAR","name":"Boolean","ofType":null}}
		]},
		{"kind":"SCALAR","name":"Boolean"}
	]}}`)

	schema, err := (&IntrospectionProvider{}).BuildSchema(context.Background(), IntrospectionInputOptions{Data: data})
	if err != nil {
		t.Fatalf("BuildSchema() error = %v", err)
	}
	if len(schema.Types) != 2 {
		t.Errorf("len(Types) = %d, want 2", len(schema.Types))
	}
}

func TestIntrospectionProvider_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    IntrospectionInputOptions
		wantErr string
		wantKey string
	}{
		{
			name:    "no input",
			opts:    IntrospectionInputOptions{},
			wantErr: "no introspection input specified",
		},
		{
			name:    "missing file",
			opts:    IntrospectionInputOptions{Path: filepath.Join(t.TempDir(), "missing.json")},
			wantErr: "failed to read schema",
		},
		{
			name:    "invalid json",
			opts:    IntrospectionInputOptions{Data: []byte(`{"data":`)},
			wantErr: "failed to parse introspection document",
		},
		{
			name:    "server errors",
			opts:    IntrospectionInputOptions{Data: []byte(`{"data":null,"errors":[{"message":"introspection disabled"},{"message":"try again"}]}`)},
			wantErr: "introspection response contains errors: introspection disabled; try again",
		},
		{
			name:    "no schema",
			opts:    IntrospectionInputOptions{Data: []byte(`{"data":{}}`)},
			wantKey: "__schema",
		},
		{
			name:    "no types",
			opts:    IntrospectionInputOptions{Data: []byte(`{"data":{"__schema":{"queryType":{"name":"Query"}}}}`)},
			wantKey: "types",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&IntrospectionProvider{}).BuildSchema(context.Background(), tt.opts)
			if err == nil {
				t.Fatal("BuildSchema() error = nil")
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("BuildSchema() error = %q, want containing %q", err, tt.wantErr)
			}
			if tt.wantKey != "" {
				var malformed *ir.MalformedError
				if !errors.As(err, &malformed) {
					t.Fatalf("BuildSchema() error = %v, want *ir.MalformedError", err)
				}
				if malformed.Key != tt.wantKey {
					t.Errorf("Key = %q, want %q", malformed.Key, tt.wantKey)
				}
			}
		})
	}
}

func TestIntrospectionProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&IntrospectionProvider{}).BuildSchema(ctx, IntrospectionInputOptions{Data: testfixtures.StarWars})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("BuildSchema() error = %v, want context.Canceled", err)
	}
}
