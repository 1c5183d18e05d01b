package flagresolve

import (
	"github.com/TimurManjosov/flagresolve/values"
)

// TargetingKey is the reserved evaluation-context attribute naming the
// entity being evaluated.
const TargetingKey = "targeting_key"

// EvaluationContext is the caller-supplied snapshot of attributes the
// backend targets on, plus an optional distinguished targeting key. It is
// serialized once per evaluation and never mutated.
//
// Attribute values must be JSON-encodable; values.Value attributes are
// converted to their plain representation.
type EvaluationContext struct {
	TargetingKey string
	Attributes   map[string]any
}

// wireContext builds the wire representation of the context. A non-empty
// targeting key is written under the reserved "targeting_key" name and
// silently overwrites any plain attribute with that name; the structured key
// wins by precedence, not by accident.
func (ec EvaluationContext) wireContext() map[string]any {
	wire := make(map[string]any, len(ec.Attributes)+1)
	for k, v := range ec.Attributes {
		if value, ok := v.(values.Value); ok {
			wire[k] = value.Interface()
			continue
		}
		wire[k] = v
	}
	if ec.TargetingKey != "" {
		wire[TargetingKey] = ec.TargetingKey
	}
	return wire
}
