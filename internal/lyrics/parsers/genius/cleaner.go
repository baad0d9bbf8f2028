package genius

import (
	"regexp"
	"strings"
)

var excessiveBreaksRegex = regexp.MustCompile(`\n{3,}`)

// cleanup trims every line and keeps at most one blank line between stanzas.
func cleanup(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	text = strings.Join(lines, "\n")
	text = excessiveBreaksRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
