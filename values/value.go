// Package values provides the dynamically-typed value model shared by the
// whole resolution pipeline: a closed variant over null, bool, int, double,
// string, list and structure, plus the schema tree that describes a resolved
// flag's shape and the mapping from wire values into the model.
package values

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindList
	KindStruct
)

// Value is a dynamically-typed flag value. A Value holds exactly one variant
// at a time and is immutable after construction.
type Value struct {
	kind      Kind
	boolVal   bool
	intVal    int32
	doubleVal float64
	stringVal string
	listVal   []Value
	structVal map[string]Value
}

// Null returns the explicit null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolVal: b}
}

// Int returns a 32-bit integer Value.
func Int(i int32) Value {
	return Value{kind: KindInt, intVal: i}
}

// Double returns a 64-bit float Value.
func Double(d float64) Value {
	return Value{kind: KindDouble, doubleVal: d}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, stringVal: s}
}

// List returns an ordered list Value holding the given items.
func List(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{kind: KindList, listVal: copied}
}

// Struct returns a structure Value holding the given fields. The map is
// copied, so later mutation of the argument does not affect the Value.
func Struct(fields map[string]Value) Value {
	copied := make(map[string]Value, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return Value{kind: KindStruct, structVal: copied}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is the explicit null marker.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean payload, or false if the value is not a bool.
func (v Value) AsBool() (bool, bool) {
	return v.boolVal, v.kind == KindBool
}

// AsInt returns the integer payload, or false if the value is not an int.
func (v Value) AsInt() (int32, bool) {
	return v.intVal, v.kind == KindInt
}

// AsDouble returns the float payload, or false if the value is not a double.
func (v Value) AsDouble() (float64, bool) {
	return v.doubleVal, v.kind == KindDouble
}

// AsString returns the string payload, or false if the value is not a string.
func (v Value) AsString() (string, bool) {
	return v.stringVal, v.kind == KindString
}

// AsList returns the list payload, or false if the value is not a list. The
// returned slice must not be mutated.
func (v Value) AsList() ([]Value, bool) {
	return v.listVal, v.kind == KindList
}

// AsStruct returns the structure fields, or false if the value is not a
// structure. The returned map must not be mutated.
func (v Value) AsStruct() (map[string]Value, bool) {
	return v.structVal, v.kind == KindStruct
}

// Field returns the named structure field. The second result is false when
// the value is not a structure or the field is absent. A field holding an
// explicit null is present.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != KindStruct {
		return Null(), false
	}
	child, ok := v.structVal[name]
	return child, ok
}

// Equal reports deep structural equality: element order matters for lists,
// key order does not matter for structures.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindInt:
		return v.intVal == other.intVal
	case KindDouble:
		return v.doubleVal == other.doubleVal
	case KindString:
		return v.stringVal == other.stringVal
	case KindList:
		if len(v.listVal) != len(other.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(other.listVal[i]) {
				return false
			}
		}
		return true
	case KindStruct:
		if len(v.structVal) != len(other.structVal) {
			return false
		}
		for k, child := range v.structVal {
			otherChild, ok := other.structVal[k]
			if !ok || !child.Equal(otherChild) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts the value into plain Go types: nil, bool, int32,
// float64, string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.boolVal
	case KindInt:
		return v.intVal
	case KindDouble:
		return v.doubleVal
	case KindString:
		return v.stringVal
	case KindList:
		items := make([]any, len(v.listVal))
		for i, item := range v.listVal {
			items[i] = item.Interface()
		}
		return items
	case KindStruct:
		fields := make(map[string]any, len(v.structVal))
		for k, child := range v.structVal {
			fields[k] = child.Interface()
		}
		return fields
	}
	return nil
}

// MarshalJSON encodes the value as its plain JSON representation.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// String renders the value for diagnostics. Structure keys are sorted so the
// rendering is deterministic.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindInt:
		return strconv.FormatInt(int64(v.intVal), 10)
	case KindDouble:
		return strconv.FormatFloat(v.doubleVal, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.stringVal)
	case KindList:
		parts := make([]string, len(v.listVal))
		for i, item := range v.listVal {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindStruct:
		keys := make([]string, 0, len(v.structVal))
		for k := range v.structVal {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + v.structVal[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "null"
}
