// Package data embeds the initial documents written when a store starts empty.
package data

import (
	"embed"
	"fmt"
)

//go:embed seed/*.json
var seeds embed.FS

// Seed returns the initial contents of a document.
func Seed(name string) ([]byte, error) {
	b, err := seeds.ReadFile("seed/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("no seed for document %s: %w", name, err)
	}
	return b, nil
}
