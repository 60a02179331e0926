package helper

import (
	"fmt"
	"regexp"
	"strings"
)

var ExtensionRegex = regexp.MustCompile(`\.[A-Za-z0-9]+$`)

// FileExtension returns the lower-cased extension of name including the dot,
// or an empty string when there is none.
func FileExtension(name string) string {
	return strings.ToLower(ExtensionRegex.FindString(name))
}

// NormalizeHeaders trims header cells, names blank ones "Unnamed: <index>"
// and suffixes repeats with ".1", ".2", ...
func NormalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	used := make(map[string]bool, len(headers))
	counts := make(map[string]int, len(headers))

	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}

		name := h
		for used[name] {
			counts[h]++
			name = fmt.Sprintf("%s.%d", h, counts[h])
		}
		used[name] = true
		out[i] = name
	}
	return out
}
