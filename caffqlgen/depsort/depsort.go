// Package depsort orders custom GraphQL types so that every type follows the
// types it depends on.
package depsort

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/caffql/caffql/caffqlgen/ir"
)

// CycleError reports that the custom types contain a dependency cycle.
type CycleError struct {
	// Remaining holds the names that could not be ordered, sorted by name.
	// It includes the cycle members and everything depending on them.
	Remaining []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependencies in schema between types: %s", strings.Join(e.Remaining, ", "))
}

// Sort returns the custom types of types in dependency order.
//
// Scalars, wrapper entries and meta types are dropped. Types are emitted in
// layers: each layer holds every remaining type whose dependencies have all
// been emitted, in name order. A type that depends on itself, directly or
// through other custom types, yields a *CycleError.
func Sort(types []ir.Type) ([]ir.Type, error) {
	custom := lo.Filter(types, func(t ir.Type, _ int) bool {
		return ir.IsCustom(t)
	})

	byName := make(map[string]ir.Type, len(custom))
	for _, t := range custom {
		byName[t.TypeName()] = t
	}

	pending := make(map[string]map[string]struct{}, len(custom))
	for _, t := range custom {
		deps := make(map[string]struct{})
		for _, dep := range Dependencies(t) {
			if _, ok := byName[dep]; ok {
				deps[dep] = struct{}{}
			}
		}
		pending[t.TypeName()] = deps
	}

	sorted := make([]ir.Type, 0, len(custom))
	for len(pending) > 0 {
		var layer []string
		for name, deps := range pending {
			if len(deps) == 0 {
				layer = append(layer, name)
			}
		}
		if len(layer) == 0 {
			remaining := lo.Keys(pending)
			slices.Sort(remaining)
			return nil, &CycleError{Remaining: remaining}
		}
		slices.Sort(layer)

		for _, name := range layer {
			delete(pending, name)
			sorted = append(sorted, byName[name])
		}
		for _, deps := range pending {
			for _, name := range layer {
				delete(deps, name)
			}
		}
	}
	return sorted, nil
}

// Dependencies returns the names of the named types t refers to, in
// declaration order without duplicates. Scalars are included; callers
// filter to the types they track.
//
// Objects and interfaces depend on their field and argument types,
// input objects on their input field types, and interfaces and unions on
// their possible types.
func Dependencies(t ir.Type) []string {
	var refs []ir.TypeRef
	for _, f := range ir.FieldsOf(t) {
		refs = append(refs, f.Type)
		for _, arg := range f.Args {
			refs = append(refs, arg.Type)
		}
	}
	if in, ok := t.(*ir.InputObjectType); ok {
		for _, f := range in.InputFields {
			refs = append(refs, f.Type)
		}
	}
	refs = append(refs, ir.PossibleTypesOf(t)...)

	names := lo.Map(refs, func(r ir.TypeRef, _ int) string {
		return r.Underlying().Name
	})
	return lo.Uniq(lo.Compact(names))
}
