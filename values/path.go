package values

import (
	"github.com/TimurManjosov/flagresolve/internal/flagerr"
)

// AtPath walks a dot-derived field path through a resolved value, left to
// right. Every intermediate value must be a structure and every segment must
// name an existing field; a field holding an explicit null is existing and is
// returned as-is. An empty path returns the input unchanged.
func AtPath(v Value, path []string) (Value, error) {
	for _, field := range path {
		fields, ok := v.AsStruct()
		if !ok {
			return Null(), flagerr.TypeMismatch(
				"Illegal attempt to derive field '%s' on non-structure value '%s'", field, v)
		}
		child, ok := fields[field]
		if !ok {
			return Null(), flagerr.TypeMismatch(
				"Illegal attempt to derive non-existing field '%s' on structure value '%s'", field, v)
		}
		v = child
	}
	return v, nil
}
