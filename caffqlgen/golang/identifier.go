package golang

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// commonInitialisms are upper-cased as a whole when they form a word of a
// field name, following the Go naming convention (id -> ID).
var commonInitialisms = map[string]bool{
	"API":  true,
	"HTML": true,
	"HTTP": true,
	"ID":   true,
	"IP":   true,
	"JSON": true,
	"SQL":  true,
	"URI":  true,
	"URL":  true,
	"UUID": true,
	"XML":  true,
}

// reservedMethods are method names every generated type may carry.
// Fields and accessors with these names are suffixed with an underscore.
var reservedMethods = map[string]bool{
	"MarshalJSON":    true,
	"UnmarshalJSON":  true,
	"String":         true,
	"Implementation": true,
}

// escapeKeyword escapes Go keywords by appending an underscore.
func escapeKeyword(name string) string {
	if token.IsKeyword(name) {
		return name + "_"
	}
	return name
}

// sanitizeIdentifier replaces characters not allowed in Go identifiers.
func sanitizeIdentifier(name string) string {
	if name == "" {
		return "_"
	}
	var sb strings.Builder
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
			sb.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				sb.WriteRune('_')
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

// exportedTypeName turns a GraphQL type name into an exported Go identifier.
func exportedTypeName(name string) string {
	name = sanitizeIdentifier(name)
	if strings.HasPrefix(name, "_") {
		return "X" + name
	}
	return capitalize(name)
}

// exportedFieldName turns a GraphQL field name into an exported Go identifier,
// upper-casing common initialisms (homePlanet -> HomePlanet, userId -> UserID).
func exportedFieldName(name string) string {
	name = sanitizeIdentifier(name)
	if strings.HasPrefix(name, "_") {
		name = "X" + name
	}
	var sb strings.Builder
	for _, word := range splitCamel(name) {
		if upper := strings.ToUpper(word); commonInitialisms[upper] {
			sb.WriteString(upper)
			continue
		}
		sb.WriteString(capitalize(word))
	}
	out := sb.String()
	if reservedMethods[out] {
		return out + "_"
	}
	return out
}

// splitCamel splits a camelCase identifier into its words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

// enumCaseName converts a SCREAMING_SNAKE_CASE enum value to PascalCase:
// split on "_", upper-case the first letter of each segment and lower-case
// the rest.
func enumCaseName(value string) string {
	var sb strings.Builder
	for _, segment := range strings.Split(value, "_") {
		if segment == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(segment)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(strings.ToLower(segment[size:]))
	}
	return sanitizeIdentifier(sb.String())
}

// unexportedName lower-cases the first letter of an identifier.
func unexportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return escapeKeyword(string(unicode.ToLower(r)) + name[size:])
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
