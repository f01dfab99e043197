package golang

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/caffql/caffql/caffqlgen/ir"
)

// Emitter renders Go declarations for the types of one schema. Every emit
// method returns its own source fragment; the caller concatenates them.
type Emitter struct {
	schema  *ir.Schema
	types   ir.TypeMap
	config  GeneratorConfig
	scalars map[string]scalarMapping

	// names maps GraphQL type names to their Go names.
	names    map[string]string
	warnings []ir.Warning
}

// NewEmitter prepares an emitter for schema. Go names are assigned to every
// custom type up front so that references render consistently.
func NewEmitter(schema *ir.Schema, config GeneratorConfig) (*Emitter, error) {
	scalars := make(map[string]scalarMapping, len(config.ScalarMappings))
	for name, goType := range config.ScalarMappings {
		m, err := parseScalarMapping(goType)
		if err != nil {
			return nil, fmt.Errorf("scalar mapping for %s: %w", name, err)
		}
		scalars[name] = m
	}

	e := &Emitter{
		schema:  schema,
		types:   ir.NewTypeMap(schema.Types),
		config:  config,
		scalars: scalars,
		names:   make(map[string]string),
	}
	e.assignNames()
	return e, nil
}

// Warnings returns the warnings raised while assigning names.
func (e *Emitter) Warnings() []ir.Warning {
	return e.warnings
}

func (e *Emitter) assignNames() {
	taken := maps.Clone(preludeNames)
	clashes := func(goName string, derived []string) bool {
		return taken[goName] || slices.ContainsFunc(derived, func(n string) bool { return taken[n] })
	}
	for _, name := range e.types.Names() {
		t := e.types[name]
		if !ir.IsCustom(t) {
			continue
		}
		base := exportedTypeName(name)
		goName := base
		for clashes(goName, e.derivedNames(t, goName)) {
			goName += "_"
		}
		if goName != base {
			e.warnings = append(e.warnings, ir.Warning{
				Code:     "type_renamed",
				Message:  fmt.Sprintf("type %s is emitted as %s because %s or a name derived from it is already declared", name, goName, base),
				TypeName: name,
			})
		}
		taken[goName] = true
		for _, n := range e.derivedNames(t, goName) {
			taken[n] = true
		}
		e.names[name] = goName
	}
}

// derivedNames lists the package-level identifiers, besides goName itself,
// that declaring t under goName adds to the file.
func (e *Emitter) derivedNames(t ir.Type, goName string) []string {
	switch t := t.(type) {
	case *ir.EnumType:
		cases, _ := enumCases(t.Values)
		names := []string{goName + "Unknown"}
		for _, c := range cases {
			names = append(names, goName+c)
		}
		return names
	case *ir.InterfaceType, *ir.UnionType:
		return []string{"Unknown" + goName, goName + "Implementation"}
	case *ir.ObjectType:
		if _, ok := e.schema.RootOperation(t.Name); !ok {
			return nil
		}
		names := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			names[i] = operationUnitName(goName, f.Name)
		}
		return names
	}
	return nil
}

// enumCases returns the constant suffix of every enum value. Values whose
// suffix is already in use get "_" appended; renamed lists their indexes.
func enumCases(values []ir.EnumValue) (cases []string, renamed []int) {
	seen := map[string]bool{"Unknown": true}
	cases = make([]string, len(values))
	for i, v := range values {
		c := enumCaseName(v.Name)
		if seen[c] {
			for seen[c] {
				c += "_"
			}
			renamed = append(renamed, i)
		}
		seen[c] = true
		cases[i] = c
	}
	return cases, renamed
}

// goTypeName returns the Go name of a GraphQL type.
func (e *Emitter) goTypeName(name string) string {
	if goName, ok := e.names[name]; ok {
		return goName
	}
	return exportedTypeName(name)
}

// EmitType emits the declaration of a custom type.
func (e *Emitter) EmitType(typ ir.Type) (string, []ir.Warning, error) {
	switch t := typ.(type) {
	case *ir.EnumType:
		return e.emitEnum(t)
	case *ir.ObjectType:
		return e.emitObject(t)
	case *ir.InputObjectType:
		return e.emitInputObject(t)
	case *ir.InterfaceType:
		return e.emitInterface(t)
	case *ir.UnionType:
		return e.emitUnion(t)
	default:
		return "", nil, fmt.Errorf("unsupported top-level type kind: %s", typ.Kind())
	}
}

// emitEnum emits an int-backed enum whose zero value is the synthetic Unknown
// case, plus the name tables used by its JSON methods.
func (e *Emitter) emitEnum(t *ir.EnumType) (string, []ir.Warning, error) {
	name := e.goTypeName(t.Name)
	namesVar := unexportedName(name) + "Names"
	valuesVar := unexportedName(name) + "Values"

	var warnings []ir.Warning
	var sb strings.Builder

	sb.WriteString(e.typeComment(name, t))
	fmt.Fprintf(&sb, "type %s int\n\n", name)

	suffixes, renamed := enumCases(t.Values)
	for _, i := range renamed {
		v := t.Values[i]
		warnings = append(warnings, ir.Warning{
			Code:     "enum_case_renamed",
			Message:  fmt.Sprintf("enum value %s.%s is emitted as %s%s because %s%s is already declared", t.Name, v.Name, name, suffixes[i], name, enumCaseName(v.Name)),
			TypeName: t.Name,
		})
	}

	sb.WriteString("const (\n")
	fmt.Fprintf(&sb, "\t%sUnknown %s = iota\n", name, name)
	cases := make([]string, len(t.Values))
	for i, v := range t.Values {
		cases[i] = name + suffixes[i]
		sb.WriteString(e.comment("\t", v.Description, v.DeprecationReason))
		fmt.Fprintf(&sb, "\t%s\n", cases[i])
	}
	sb.WriteString(")\n\n")

	fmt.Fprintf(&sb, "var %s = map[%s]string{\n", namesVar, name)
	for i, v := range t.Values {
		fmt.Fprintf(&sb, "\t%s: %q,\n", cases[i], v.Name)
	}
	sb.WriteString("}\n\n")

	fmt.Fprintf(&sb, "var %s = map[string]%s{\n", valuesVar, name)
	for i, v := range t.Values {
		fmt.Fprintf(&sb, "\t%q: %s,\n", v.Name, cases[i])
	}
	sb.WriteString("}\n\n")

	fmt.Fprintf(&sb, "func (v %s) String() string {\n", name)
	fmt.Fprintf(&sb, "\tif name, ok := %s[v]; ok {\n\t\treturn name\n\t}\n", namesVar)
	fmt.Fprintf(&sb, "\treturn fmt.Sprintf(\"%s(%%d)\", int(v))\n}\n\n", name)

	fmt.Fprintf(&sb, "// MarshalJSON encodes the GraphQL name of v. %sUnknown encodes as null.\n", name)
	fmt.Fprintf(&sb, "func (v %s) MarshalJSON() ([]byte, error) {\n", name)
	fmt.Fprintf(&sb, "\tname, ok := %s[v]\n", namesVar)
	sb.WriteString("\tif !ok {\n\t\treturn []byte(\"null\"), nil\n\t}\n")
	sb.WriteString("\treturn json.Marshal(name)\n}\n\n")

	fmt.Fprintf(&sb, "// UnmarshalJSON decodes a GraphQL name. Null and names unknown when this\n// code was generated decode as %sUnknown.\n", name)
	fmt.Fprintf(&sb, "func (v *%s) UnmarshalJSON(data []byte) error {\n", name)
	sb.WriteString("\tvar name *string\n")
	sb.WriteString("\tif err := json.Unmarshal(data, &name); err != nil {\n\t\treturn err\n\t}\n")
	fmt.Fprintf(&sb, "\t*v = %sUnknown\n", name)
	sb.WriteString("\tif name != nil {\n")
	fmt.Fprintf(&sb, "\t\tif value, ok := %s[*name]; ok {\n\t\t\t*v = value\n\t\t}\n\t}\n", valuesVar)
	sb.WriteString("\treturn nil\n}\n")

	return sb.String(), warnings, nil
}

// emitObject emits an output object: a struct, an encoder adding the
// "__typename" discriminator and a field-by-field decoder.
func (e *Emitter) emitObject(t *ir.ObjectType) (string, []ir.Warning, error) {
	name := e.goTypeName(t.Name)
	fields, warnings, err := e.resolveFields(t.Name, outputFields(t.Fields))
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(e.typeComment(name, t))
	sb.WriteString(e.renderStruct(name, fields))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "// MarshalJSON encodes v with its \"__typename\" discriminator.\n")
	fmt.Fprintf(&sb, "func (v %s) MarshalJSON() ([]byte, error) {\n", name)
	fmt.Fprintf(&sb, "\ttype wire %s\n", name)
	sb.WriteString("\treturn json.Marshal(struct {\n")
	sb.WriteString("\t\tTypename string `json:\"__typename\"`\n")
	sb.WriteString("\t\twire\n")
	fmt.Fprintf(&sb, "\t}{Typename: %q, wire: wire(v)})\n}\n\n", t.Name)

	sb.WriteString(decoderMethod(name, t.Name, fields))
	return sb.String(), warnings, nil
}

// emitInputObject emits an input object with a field-by-field encoder.
func (e *Emitter) emitInputObject(t *ir.InputObjectType) (string, []ir.Warning, error) {
	name := e.goTypeName(t.Name)
	fields, warnings, err := e.resolveFields(t.Name, inputFields(t.InputFields))
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(e.typeComment(name, t))
	sb.WriteString(e.renderStruct(name, fields))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "func (v %s) MarshalJSON() ([]byte, error) {\n", name)
	fmt.Fprintf(&sb, "\tfields := make(map[string]any, %d)\n", len(fields))
	for _, f := range fields {
		fmt.Fprintf(&sb, "\tfields[%q] = v.%s\n", f.name, f.goName)
	}
	sb.WriteString("\treturn json.Marshal(fields)\n}\n")
	return sb.String(), warnings, nil
}

// emitInterface emits the Unknown record, the wrapper struct holding the
// active implementation, the sealed implementation interface, one accessor
// per interface field and the discriminator-based codec.
func (e *Emitter) emitInterface(t *ir.InterfaceType) (string, []ir.Warning, error) {
	name := e.goTypeName(t.Name)
	unknown := "Unknown" + name

	fields, warnings, err := e.resolveFields(t.Name, outputFields(t.Fields))
	if err != nil {
		return "", nil, err
	}
	cases, err := e.possibleCases(t.Name, t.PossibleTypes)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s holds the %s fields of an implementation unknown when this code was generated.\n", unknown, t.Name)
	sb.WriteString(e.renderStruct(unknown, fields))
	sb.WriteString("\n")
	sb.WriteString(decoderMethod(unknown, t.Name, fields))
	sb.WriteString("\n")

	sb.WriteString(e.polymorphicHead(name, t, cases, unknown))

	for _, f := range fields {
		fmt.Fprintf(&sb, "// %s returns the %s field of the active implementation.\n", f.goName, f.name)
		fmt.Fprintf(&sb, "func (v %s) %s() (value %s) {\n", name, f.goName, f.goType)
		sb.WriteString("\tswitch impl := v.Implementation.(type) {\n")
		for _, c := range cases {
			field, warning := c.field(t.Name, f)
			if warning != nil {
				warnings = append(warnings, *warning)
			}
			fmt.Fprintf(&sb, "\tcase %s:\n\t\tvalue = impl.%s\n", c.goName, field)
		}
		fmt.Fprintf(&sb, "\tcase %s:\n\t\tvalue = impl.%s\n", unknown, f.goName)
		sb.WriteString("\t}\n\treturn value\n}\n\n")
	}

	decodeUnknown := fmt.Sprintf("\t\tvar impl %s\n%s\t\tv.Implementation = impl\n", unknown, decodeInto("data", "&impl"))
	sb.WriteString(polymorphicCodec(name, cases, decodeUnknown))
	return sb.String(), warnings, nil
}

// emitUnion emits the Unknown marker, the wrapper struct, the sealed
// implementation interface and the discriminator-based codec.
func (e *Emitter) emitUnion(t *ir.UnionType) (string, []ir.Warning, error) {
	name := e.goTypeName(t.Name)
	unknown := "Unknown" + name

	cases, err := e.possibleCases(t.Name, t.PossibleTypes)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s marks a %s member unknown when this code was generated.\n", unknown, t.Name)
	fmt.Fprintf(&sb, "type %s struct{}\n\n", unknown)
	sb.WriteString(e.polymorphicHead(name, t, cases, unknown))
	sb.WriteString(polymorphicCodec(name, cases, fmt.Sprintf("\t\tv.Implementation = %s{}\n", unknown)))
	return sb.String(), nil, nil
}

// polymorphicHead emits the wrapper struct, the sealed interface and the
// marker methods shared by interfaces and unions.
func (e *Emitter) polymorphicHead(name string, t ir.Type, cases []implCase, unknown string) string {
	iface := name + "Implementation"
	marker := "is" + name

	members := make([]string, 0, len(cases)+1)
	for _, c := range cases {
		members = append(members, c.goName)
	}
	members = append(members, unknown)

	var sb strings.Builder
	sb.WriteString(e.typeComment(name, t))
	fmt.Fprintf(&sb, "type %s struct {\n\tImplementation %s\n}\n\n", name, iface)

	fmt.Fprintf(&sb, "// %s is implemented by %s.\n", iface, strings.Join(members, ", "))
	fmt.Fprintf(&sb, "type %s interface {\n\t%s()\n}\n\n", iface, marker)
	for _, m := range members {
		fmt.Fprintf(&sb, "func (%s) %s() {}\n", m, marker)
	}
	sb.WriteString("\n")
	return sb.String()
}

// polymorphicCodec emits the MarshalJSON and UnmarshalJSON methods of an
// interface or union wrapper. Unrecognized discriminators run decodeUnknown.
func polymorphicCodec(name string, cases []implCase, decodeUnknown string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "func (v %s) MarshalJSON() ([]byte, error) {\n\treturn json.Marshal(v.Implementation)\n}\n\n", name)

	fmt.Fprintf(&sb, "// UnmarshalJSON selects the implementation named by \"__typename\". Missing\n// or unrecognized names select Unknown%s.\n", name)
	fmt.Fprintf(&sb, "func (v *%s) UnmarshalJSON(data []byte) error {\n", name)
	sb.WriteString("\tswitch decodeTypename(data) {\n")
	for _, c := range cases {
		fmt.Fprintf(&sb, "\tcase %q:\n", c.name)
		fmt.Fprintf(&sb, "\t\tvar impl %s\n", c.goName)
		sb.WriteString(decodeInto("data", "&impl"))
		sb.WriteString("\t\tv.Implementation = impl\n")
	}
	sb.WriteString("\tdefault:\n")
	sb.WriteString(decodeUnknown)
	sb.WriteString("\t}\n\treturn nil\n}\n")
	return sb.String()
}

func decodeInto(data, target string) string {
	return fmt.Sprintf("\t\tif err := json.Unmarshal(%s, %s); err != nil {\n\t\t\treturn err\n\t\t}\n", data, target)
}

// decoderMethod emits a field-by-field UnmarshalJSON. NonNull fields are
// required; nullable fields stay absent when their key is missing.
func decoderMethod(goName, typeName string, fields []structField) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "func (v *%s) UnmarshalJSON(data []byte) error {\n", goName)
	sb.WriteString("\tvar fields map[string]json.RawMessage\n")
	sb.WriteString("\tif err := json.Unmarshal(data, &fields); err != nil {\n\t\treturn err\n\t}\n")
	fmt.Fprintf(&sb, "\t*v = %s{}\n", goName)
	for _, f := range fields {
		fmt.Fprintf(&sb, "\tif err := decodeField(fields, %q, %q, %t, &v.%s); err != nil {\n\t\treturn err\n\t}\n",
			typeName, f.name, f.ref.IsNonNull(), f.goName)
	}
	sb.WriteString("\treturn nil\n}\n")
	return sb.String()
}

// renderStruct emits a struct declaration with JSON tags.
func (e *Emitter) renderStruct(name string, fields []structField) string {
	if len(fields) == 0 {
		return fmt.Sprintf("type %s struct{}\n", name)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "type %s struct {\n", name)
	for _, f := range fields {
		sb.WriteString(e.comment("\t", f.doc, f.deprecated))
		fmt.Fprintf(&sb, "\t%s %s `json:%q`\n", f.goName, f.goType, f.name)
	}
	sb.WriteString("}\n")
	return sb.String()
}

// typeComment renders the doc comment of a declared type: a sentence naming
// the GraphQL type, then its description as a second paragraph.
func (e *Emitter) typeComment(goName string, t ir.Type) string {
	if t.Doc() == "" {
		return ""
	}
	return e.comment("", fmt.Sprintf("%s is the GraphQL %s %s.\n\n%s", goName, kindNoun(t.Kind()), t.TypeName(), t.Doc()), nil)
}

func kindNoun(kind ir.TypeKind) string {
	switch kind {
	case ir.KindEnum:
		return "enum"
	case ir.KindInputObject:
		return "input object"
	case ir.KindInterface:
		return "interface"
	case ir.KindUnion:
		return "union"
	}
	return "object"
}

// comment renders a description and deprecation notice as line comments.
func (e *Emitter) comment(indent, description string, deprecated *string) string {
	if !e.config.EmitComments {
		return ""
	}
	var lines []string
	if description = strings.TrimSpace(description); description != "" {
		lines = strings.Split(description, "\n")
	}
	if deprecated != nil {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		reason := *deprecated
		if reason == "" {
			reason = "No longer supported."
		}
		lines = append(lines, "Deprecated: "+reason)
	}

	var sb strings.Builder
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			sb.WriteString(indent + "//\n")
			continue
		}
		sb.WriteString(indent + "// " + line + "\n")
	}
	return sb.String()
}
