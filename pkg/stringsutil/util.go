package stringsutil

import "strings"

// SplitTrim splits s around sep, trims the spaces around every part and drops
// the parts left empty. It returns nil when nothing remains.
func SplitTrim(s, sep string) []string {
	var result []string

	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}

	return result
}
