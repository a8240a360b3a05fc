package chatexport

import "strings"

// JoinFragments joins rendered content fragments into message text.
// Fragments are trimmed, empty ones are dropped, and the rest are
// separated by blank lines.
func JoinFragments(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, "\n\n")
}
