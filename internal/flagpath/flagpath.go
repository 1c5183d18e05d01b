// Package flagpath parses caller-supplied flag identifiers of the form
// "name" or "name.field.subfield" into a flag name and a field path.
package flagpath

import (
	"strings"

	"github.com/TimurManjosov/flagresolve/internal/flagerr"
)

// Parse splits identifier on the literal "." character. The first segment is
// the flag name, the remaining segments form the path into the resolved
// structure. Trailing empty segments are dropped, so an all-delimiter input
// such as "..." yields zero segments and is rejected as malformed. An empty
// identifier parses as an empty flag name with no path; the backend rejects
// it as an unknown flag.
func Parse(identifier string) (string, []string, error) {
	if identifier == "" {
		return "", nil, nil
	}

	parts := strings.Split(identifier, ".")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	if len(parts) == 0 {
		return "", nil, flagerr.General("Illegal path string '%s'", identifier)
	}
	return parts[0], parts[1:], nil
}
