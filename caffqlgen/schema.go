package caffqlgen

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/caffql/caffql/caffqlgen/ir"
)

// validateSchema checks every type reference of a schema that was built in
// code rather than decoded, where nothing enforced the name/ofType rules.
// All broken references are reported.
func validateSchema(schema *ir.Schema) error {
	var errs error
	check := func(owner, member string, ref ir.TypeRef) {
		if err := ref.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s.%s: %w", owner, member, err))
		}
	}

	for _, t := range schema.Types {
		name := t.TypeName()
		for _, f := range ir.FieldsOf(t) {
			check(name, f.Name, f.Type)
			for _, arg := range f.Args {
				check(name, f.Name+"("+arg.Name+")", arg.Type)
			}
		}
		if in, ok := t.(*ir.InputObjectType); ok {
			for _, f := range in.InputFields {
				check(name, f.Name, f.Type)
			}
		}
		if obj, ok := t.(*ir.ObjectType); ok {
			for _, ref := range obj.Interfaces {
				check(name, "interfaces", ref)
			}
		}
		for _, ref := range ir.PossibleTypesOf(t) {
			check(name, "possibleTypes", ref)
		}
	}
	if errs != nil {
		return fmt.Errorf("invalid schema: %w", errs)
	}
	return nil
}
