// Package provider implements input providers that read GraphQL introspection
// documents and convert them to the intermediate representation.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caffql/caffql/caffqlgen/ir"
)

// IntrospectionProvider decodes a standard introspection query response.
type IntrospectionProvider struct{}

// IntrospectionInputOptions configures where the introspection document is read from.
// Exactly one of Path, Reader or Data is used, checked in that order.
type IntrospectionInputOptions struct {
	// Path is a file containing the introspection response.
	Path string

	// Reader supplies the introspection response.
	Reader io.Reader

	// Data is the raw introspection response.
	Data []byte
}

// envelope accepts both {"data":{"__schema":...}} and a bare {"__schema":...}.
type envelope struct {
	Data *struct {
		Schema json.RawMessage `json:"__schema"`
	} `json:"data"`
	Schema json.RawMessage `json:"__schema"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// BuildSchema reads and decodes the introspection document.
func (p *IntrospectionProvider) BuildSchema(ctx context.Context, opts IntrospectionInputOptions) (*ir.Schema, error) {
	data, err := readInput(opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var env envelope
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to parse introspection document: %w", err)
	}

	raw := env.Schema
	if env.Data != nil && len(env.Data.Schema) > 0 {
		raw = env.Data.Schema
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		if len(env.Errors) > 0 {
			msgs := make([]string, len(env.Errors))
			for i, e := range env.Errors {
				msgs[i] = e.Message
			}
			return nil, fmt.Errorf("introspection response contains errors: %s", strings.Join(msgs, "; "))
		}
		return nil, &ir.MalformedError{Key: "__schema"}
	}

	var schema ir.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	return &schema, nil
}

func readInput(opts IntrospectionInputOptions) ([]byte, error) {
	switch {
	case opts.Path != "":
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema: %w", err)
		}
		return data, nil
	case opts.Reader != nil:
		data, err := io.ReadAll(opts.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema: %w", err)
		}
		return data, nil
	case opts.Data != nil:
		return opts.Data, nil
	}
	return nil, errors.New("no introspection input specified")
}
