package values

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/TimurManjosov/flagresolve/internal/flagerr"
)

// intMismatchMessage is the diagnostic for a wire number that does not fit
// the declared 32-bit integer schema. The wire format represents all numbers
// uniformly, so this is the one place precision loss is actively guarded.
const intMismatchMessage = "Mismatch between schema and value: value should be an int, but it is a double/long"

// FromWire converts a decoded wire value into a Value, guided by the schema
// declared for its position. Wire values are the plain types produced by
// decoding JSON with json.Decoder.UseNumber: nil, bool, string, json.Number,
// []any and map[string]any (float64 is accepted too, for callers that decode
// without UseNumber).
//
// A wire null maps to Null regardless of the declared schema. Structure
// fields absent from the wire value are omitted, not defaulted. Mapping is
// pure; it never consults the caller's default or the flag path.
func FromWire(raw any, schema Schema) (Value, error) {
	if raw == nil {
		return Null(), nil
	}

	switch schema.Kind() {
	case SchemaBool:
		b, ok := raw.(bool)
		if !ok {
			return Null(), mismatch(schema, raw)
		}
		return Bool(b), nil

	case SchemaString:
		s, ok := raw.(string)
		if !ok {
			return Null(), mismatch(schema, raw)
		}
		return String(s), nil

	case SchemaDouble:
		d, ok := wireNumber(raw)
		if !ok {
			return Null(), mismatch(schema, raw)
		}
		return Double(d), nil

	case SchemaInt:
		return intFromWire(raw, schema)

	case SchemaList:
		items, ok := raw.([]any)
		if !ok {
			return Null(), mismatch(schema, raw)
		}
		element, ok := schema.Element()
		if !ok {
			return Null(), flagerr.Parse("Mismatch between schema and value: list schema declares no element schema")
		}
		mapped := make([]Value, len(items))
		for i, item := range items {
			child, err := FromWire(item, element)
			if err != nil {
				return Null(), err
			}
			mapped[i] = child
		}
		return Value{kind: KindList, listVal: mapped}, nil

	case SchemaStruct:
		fields, ok := raw.(map[string]any)
		if !ok {
			return Null(), mismatch(schema, raw)
		}
		mapped := make(map[string]Value, len(fields))
		for name, child := range fields {
			childSchema, ok := schema.Field(name)
			if !ok {
				return Null(), flagerr.TypeMismatch(
					"Mismatch between schema and value: no schema declared for field '%s'", name)
			}
			mappedChild, err := FromWire(child, childSchema)
			if err != nil {
				return Null(), err
			}
			mapped[name] = mappedChild
		}
		return Value{kind: KindStruct, structVal: mapped}, nil
	}

	return Null(), flagerr.Parse("Mismatch between schema and value: schema declares no type")
}

// intFromWire narrows a wire number into a 32-bit integer, rejecting
// fractional values and anything outside the int32 range.
func intFromWire(raw any, schema Schema) (Value, error) {
	switch n := raw.(type) {
	case json.Number:
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			// fractional or too large even for int64
			return Null(), flagerr.Parse(intMismatchMessage)
		}
		if i > math.MaxInt32 || i < math.MinInt32 {
			return Null(), flagerr.Parse(intMismatchMessage)
		}
		return Int(int32(i)), nil
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
			return Null(), flagerr.Parse(intMismatchMessage)
		}
		return Int(int32(n)), nil
	default:
		return Null(), mismatch(schema, raw)
	}
}

func wireNumber(raw any) (float64, bool) {
	switch n := raw.(type) {
	case json.Number:
		d, err := n.Float64()
		return d, err == nil
	case float64:
		return n, true
	}
	return 0, false
}

func mismatch(schema Schema, raw any) error {
	return flagerr.TypeMismatch(
		"Mismatch between schema and value: value '%v' does not match the declared %s schema", raw, schema.Kind())
}
