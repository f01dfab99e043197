package golang

import (
	"fmt"

	"github.com/caffql/caffql/caffqlgen/ir"
)

// fieldSource is the part of an output field or input value that becomes a
// struct field.
type fieldSource struct {
	name       string
	doc        string
	ref        ir.TypeRef
	deprecated *string
}

func outputFields(fields []ir.Field) []fieldSource {
	out := make([]fieldSource, len(fields))
	for i, f := range fields {
		out[i] = fieldSource{name: f.Name, doc: f.Description, ref: f.Type, deprecated: f.DeprecationReason}
	}
	return out
}

func inputFields(values []ir.InputValue) []fieldSource {
	out := make([]fieldSource, len(values))
	for i, v := range values {
		out[i] = fieldSource{name: v.Name, doc: v.Description, ref: v.Type}
	}
	return out
}

// structField is a resolved struct field.
type structField struct {
	name       string // GraphQL name, used as the JSON key
	goName     string
	goType     string
	ref        ir.TypeRef
	doc        string
	deprecated *string
}

// resolveFields assigns Go names and types to the fields of owner. Names that
// collide after conversion gain a "_" suffix.
func (e *Emitter) resolveFields(owner string, in []fieldSource) ([]structField, []ir.Warning, error) {
	var warnings []ir.Warning
	taken := make(map[string]bool, len(in))
	out := make([]structField, 0, len(in))
	for _, f := range in {
		goType, err := e.TypeExpr(f.ref)
		if err != nil {
			return nil, nil, fmt.Errorf("%s.%s: %w", owner, f.name, err)
		}
		goName := exportedFieldName(f.name)
		if taken[goName] {
			declared := goName
			for taken[goName] {
				goName += "_"
			}
			warnings = append(warnings, ir.Warning{
				Code:     "field_renamed",
				Message:  fmt.Sprintf("field %s.%s is emitted as %s because %s is already declared", owner, f.name, goName, declared),
				TypeName: owner,
			})
		}
		taken[goName] = true
		out = append(out, structField{
			name:       f.name,
			goName:     goName,
			goType:     goType,
			ref:        f.ref,
			doc:        f.doc,
			deprecated: f.deprecated,
		})
	}
	return out, warnings, nil
}

// implCase is a possible type of an interface or union.
type implCase struct {
	name   string
	goName string
	fields map[string]structField
}

func (e *Emitter) possibleCases(owner string, refs []ir.TypeRef) ([]implCase, error) {
	cases := make([]implCase, 0, len(refs))
	for _, ref := range refs {
		name := ref.Underlying().Name
		t, ok := e.types.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%s: possible type %q is not defined", owner, name)
		}
		obj, ok := t.(*ir.ObjectType)
		if !ok {
			return nil, fmt.Errorf("%s: possible type %s is %s, want OBJECT", owner, name, t.Kind())
		}
		resolved, _, err := e.resolveFields(obj.Name, outputFields(obj.Fields))
		if err != nil {
			return nil, err
		}
		c := implCase{name: obj.Name, goName: e.goTypeName(obj.Name), fields: make(map[string]structField, len(resolved))}
		for _, f := range resolved {
			c.fields[f.name] = f
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// field returns the Go field of c that backs the interface field f. A
// missing field or a mismatched Go type is reported, not repaired; the
// generated accessor then fails to compile.
func (c implCase) field(iface string, f structField) (string, *ir.Warning) {
	own, ok := c.fields[f.name]
	if !ok {
		return f.goName, &ir.Warning{
			Code:     "interface_field_missing",
			Message:  fmt.Sprintf("%s does not declare field %s of interface %s", c.name, f.name, iface),
			TypeName: iface,
		}
	}
	if own.goType != f.goType {
		return own.goName, &ir.Warning{
			Code:     "interface_field_type_mismatch",
			Message:  fmt.Sprintf("%s.%s is %s, interface %s declares %s", c.name, f.name, own.goType, iface, f.goType),
			TypeName: iface,
		}
	}
	return own.goName, nil
}
