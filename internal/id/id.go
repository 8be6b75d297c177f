// Package id generates record identifiers.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Prefixes for each record type.
const (
	ProductPrefix = "prd"
	GoalPrefix    = "goal"
	LeadPrefix    = "lead"
)

// Generate creates a prefixed unique ID using NanoID
// Format: prefix-nanoid (e.g., "prd-V1StGXR8_Z5jdHi6B-myT")
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}
