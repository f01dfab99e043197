// Package starwars is the client generated for the Star Wars example
// schema in internal/testfixtures, checked in to show the generated API.
package starwars

//go:generate go run ../../cmd/caffql gen -s ../testfixtures/starwars.json -o starwars.go -n starwars -c
