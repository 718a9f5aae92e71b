package machines

import "strings"

// IsProperty reports whether a line is a machine property. Property lines
// are the only ones carrying the ":" separator; everything else belongs to
// a transition pair.
func IsProperty(line string) bool {
	return strings.Contains(line, ":")
}
