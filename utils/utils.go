package utils

import (
	"encoding/json"
	"fmt"
	"sort"
)

// GetKeys returns the keys of m sorted alphabetically.
func GetKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Remarshal copies input into output through its JSON representation, so
// output only sees JSON types (float64, string, bool, maps and slices).
func Remarshal(input interface{}, output interface{}) error {
	b, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("remarshal encode: %w", err)
	}
	err = json.Unmarshal(b, output)
	if err != nil {
		return fmt.Errorf("remarshal decode: %w", err)
	}
	return nil
}
