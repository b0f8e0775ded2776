package ai

import (
	"strings"

	"github.com/tidwall/gjson"
)

// CleanJSON strips markdown code fences that models occasionally wrap
// around JSON payloads despite the response MIME type.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// IsValidJSON reports whether the cleaned payload parses as JSON.
func IsValidJSON(input string) bool {
	return gjson.Valid(input)
}
