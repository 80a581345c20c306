package service

import (
	"regexp"
	"strings"
)

var jsonFencePattern = regexp.MustCompile("(?s)```json.*?```")

// Sanitize strips formatting the prompt asks the model to avoid but cannot
// fully prevent. Order matters: fenced json blocks are removed first, then
// bold markers, then surrounding whitespace. The result is idempotent.
func Sanitize(text string) string {
	text = jsonFencePattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "**", "")
	return strings.TrimSpace(text)
}
