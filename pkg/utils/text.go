package utils

import "strings"

// CleanProductName strips leading/trailing whitespace from a raw product name.
// Names are never stored with surrounding whitespace.
func CleanProductName(name string) string {
	return strings.TrimSpace(name)
}
