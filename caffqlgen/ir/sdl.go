package ir

import (
	"io"
	"slices"
	"strconv"
	"strings"
)

// PrintSDL writes the custom part of the schema as GraphQL SDL: the schema
// definition, custom scalars and every custom type, ordered by name.
// Built-in scalars and meta types are omitted.
func PrintSDL(w io.Writer, s *Schema) error {
	_, err := io.WriteString(w, SDL(s))
	return err
}

// SDL returns the output of PrintSDL as a string.
func SDL(s *Schema) string {
	var sb strings.Builder

	if roots := schemaDefinition(s); roots != "" {
		sb.WriteString(roots)
	}

	types := slices.Clone(s.Types)
	slices.SortStableFunc(types, func(a, b Type) int {
		return strings.Compare(a.TypeName(), b.TypeName())
	})

	for _, t := range types {
		name := t.TypeName()
		if name == "" || IsMetaName(name) {
			continue
		}
		var block string
		switch t := t.(type) {
		case *ScalarType:
			if IsBuiltinScalar(t.Name) {
				continue
			}
			block = sdlDescription(t.Description, "") + "scalar " + t.Name + "\n"
		case *ObjectType:
			block = sdlObject(t)
		case *InterfaceType:
			block = sdlDescription(t.Description, "") + "interface " + t.Name + sdlFields(t.Fields)
		case *UnionType:
			block = sdlUnion(t)
		case *EnumType:
			block = sdlEnum(t)
		case *InputObjectType:
			block = sdlDescription(t.Description, "") + "input " + t.Name + sdlInputFields(t.InputFields)
		default:
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(block)
	}
	return sb.String()
}

func schemaDefinition(s *Schema) string {
	var lines []string
	for _, root := range s.roots() {
		if root.typ != nil {
			lines = append(lines, "\t"+root.op.Keyword()+": "+root.typ.Name+"\n")
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return "schema {\n" + strings.Join(lines, "") + "}\n"
}

func sdlObject(t *ObjectType) string {
	head := sdlDescription(t.Description, "") + "type " + t.Name
	if len(t.Interfaces) > 0 {
		names := make([]string, len(t.Interfaces))
		for i, iface := range t.Interfaces {
			names[i] = iface.Name
		}
		head += " implements " + strings.Join(names, " & ")
	}
	return head + sdlFields(t.Fields)
}

func sdlUnion(t *UnionType) string {
	names := make([]string, len(t.PossibleTypes))
	for i, p := range t.PossibleTypes {
		names[i] = p.Name
	}
	return sdlDescription(t.Description, "") + "union " + t.Name + " = " + strings.Join(names, " | ") + "\n"
}

func sdlEnum(t *EnumType) string {
	var sb strings.Builder
	sb.WriteString(sdlDescription(t.Description, ""))
	sb.WriteString("enum " + t.Name + " {\n")
	for _, v := range t.Values {
		sb.WriteString(sdlDescription(v.Description, "\t"))
		sb.WriteString("\t" + v.Name + sdlDeprecated(v.DeprecationReason) + "\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

func sdlFields(fields []Field) string {
	var sb strings.Builder
	sb.WriteString(" {\n")
	for _, f := range fields {
		sb.WriteString(sdlDescription(f.Description, "\t"))
		sb.WriteString("\t" + f.Name)
		if len(f.Args) > 0 {
			args := make([]string, len(f.Args))
			for i, a := range f.Args {
				args[i] = a.Name + ": " + a.Type.String()
			}
			sb.WriteString("(" + strings.Join(args, ", ") + ")")
		}
		sb.WriteString(": " + f.Type.String() + sdlDeprecated(f.DeprecationReason) + "\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

func sdlInputFields(fields []InputValue) string {
	var sb strings.Builder
	sb.WriteString(" {\n")
	for _, f := range fields {
		sb.WriteString(sdlDescription(f.Description, "\t"))
		sb.WriteString("\t" + f.Name + ": " + f.Type.String() + "\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

func sdlDescription(desc, indent string) string {
	if desc == "" {
		return ""
	}
	escaped := strings.ReplaceAll(desc, `"""`, `\"""`)
	return indent + `"""` + escaped + `"""` + "\n"
}

func sdlDeprecated(reason *string) string {
	if reason == nil {
		return ""
	}
	if *reason == "" {
		return " @deprecated"
	}
	return " @deprecated(reason: " + strconv.Quote(*reason) + ")"
}
