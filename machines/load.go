package machines

import (
	"os"
	"strings"
)

// FilterLines splits content into trimmed lines, dropping comments
// ("//"-prefixed) and blank lines. Order is preserved.
func FilterLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// LoadLines reads a machine file and returns its meaningful lines.
func LoadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FilterLines(string(content)), nil
}
