// Package testfixtures provides introspection documents used by the caffqlgen tests.
package testfixtures

import _ "embed"

// StarWars is the introspection response of the Star Wars example API.
// It includes an interface, a union, enums, nested input objects and a few
// meta types, and has no dependency cycles between custom types.
//
//go:embed starwars.json
var StarWars []byte

// StarWarsSortOrder is the expected dependency order of the custom types in StarWars.
var StarWarsSortOrder = []string{
	"ColorInput",
	"Episode",
	"LengthUnit",
	"Droid",
	"Human",
	"Review",
	"ReviewInput",
	"Character",
	"Mutation",
	"SearchResult",
	"Query",
}
