package ir

import (
	"bytes"
	"strings"
	"testing"
)

func TestSDL(t *testing.T) {
	s := decodeStarWars(t)

	var buf bytes.Buffer
	if err := PrintSDL(&buf, s); err != nil {
		t.Fatalf("PrintSDL() error = %v", err)
	}
	got := buf.String()

	want := []string{
		"schema {\n\tquery: Query\n\tmutation: Mutation\n}\n",
		"type Human implements Character {\n",
		"\theight(unit: LengthUnit): Float\n",
		"\tsearch(text: String!): [SearchResult!]!\n",
		"union SearchResult = Human | Droid\n",
		"interface Character {\n",
		"input ReviewInput {\n\t\"\"\"0-5 stars\"\"\"\n\tstars: Int!\n",
		"\tCUBIT @deprecated(reason: \"Nobody measures in cubits anymore\")\n",
		"\"\"\"The episodes in the Star Wars trilogy\"\"\"\nenum Episode {\n",
	}
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("SDL missing %q\n\nGot:\n%s", w, got)
		}
	}

	notWant := []string{"__Schema", "__Type", "scalar String", "scalar ID"}
	for _, nw := range notWant {
		if strings.Contains(got, nw) {
			t.Errorf("SDL should not contain %q", nw)
		}
	}

	if strings.Index(got, "enum Episode") > strings.Index(got, "type Human") {
		t.Error("types are not printed in name order")
	}
}

func TestSDL_CustomScalarAndDescriptionEscaping(t *testing.T) {
	s := &Schema{
		Types: []Type{
			&ScalarType{Name: "DateTime", Description: `An "ISO" """timestamp"""`},
			&ScalarType{Name: "Int"},
		},
	}
	got := SDL(s)
	want := "\"\"\"An \"ISO\" \\\"\"\"timestamp\\\"\"\"\"\"\"\nscalar DateTime\n"
	if got != want {
		t.Errorf("SDL() = %q, want %q", got, want)
	}
}
