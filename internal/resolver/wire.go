package resolver

import (
	"github.com/TimurManjosov/flagresolve/internal/flagerr"
	"github.com/TimurManjosov/flagresolve/values"
)

// Wire messages for the flags:resolve call. The shapes are an external
// contract; field names follow the resolver API's lowerCamelCase JSON.

// SDK identifies the calling SDK on every resolve request.
type SDK struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

// ResolveFlagsRequest asks the resolver to resolve the named flags against
// the given evaluation context. Apply reports the evaluation as applied.
type ResolveFlagsRequest struct {
	ClientSecret      string         `json:"clientSecret"`
	Flags             []string       `json:"flags"`
	EvaluationContext map[string]any `json:"evaluationContext"`
	SDK               SDK            `json:"sdk"`
	Apply             bool           `json:"apply"`
}

// ResolveFlagsResponse carries the flags the resolver resolved.
type ResolveFlagsResponse struct {
	ResolvedFlags []ResolvedFlag `json:"resolvedFlags"`
}

// ResolvedFlag is one resolved flag: its fully-qualified name, the variant
// assigned by the backend (empty when no rule matched), the struct-shaped
// value payload and the schema describing that payload.
type ResolvedFlag struct {
	Flag       string            `json:"flag"`
	Variant    string            `json:"variant"`
	Value      map[string]any    `json:"value"`
	FlagSchema *StructFlagSchema `json:"flagSchema"`
}

// FlagSchema is the wire form of a schema node; exactly one of the variant
// fields is set.
type FlagSchema struct {
	BoolSchema   *EmptySchema      `json:"boolSchema,omitempty"`
	StringSchema *EmptySchema      `json:"stringSchema,omitempty"`
	IntSchema    *EmptySchema      `json:"intSchema,omitempty"`
	DoubleSchema *EmptySchema      `json:"doubleSchema,omitempty"`
	ListSchema   *ListFlagSchema   `json:"listSchema,omitempty"`
	StructSchema *StructFlagSchema `json:"structSchema,omitempty"`
}

// EmptySchema marks a primitive schema variant with no further structure.
type EmptySchema struct{}

// ListFlagSchema declares the element schema of a list position.
type ListFlagSchema struct {
	ElementSchema *FlagSchema `json:"elementSchema"`
}

// StructFlagSchema declares the field schemas of a struct position.
type StructFlagSchema struct {
	Schema map[string]FlagSchema `json:"schema"`
}

// ToSchema converts the wire schema node into the in-memory schema tree.
func (s *FlagSchema) ToSchema() (values.Schema, error) {
	switch {
	case s == nil:
		return values.Schema{}, flagerr.Parse("Schema for the flag does not declare a type")
	case s.BoolSchema != nil:
		return values.BoolSchema(), nil
	case s.StringSchema != nil:
		return values.StringSchema(), nil
	case s.IntSchema != nil:
		return values.IntSchema(), nil
	case s.DoubleSchema != nil:
		return values.DoubleSchema(), nil
	case s.ListSchema != nil:
		if s.ListSchema.ElementSchema == nil {
			return values.Schema{}, flagerr.Parse("Schema for the flag declares a list without an element schema")
		}
		element, err := s.ListSchema.ElementSchema.ToSchema()
		if err != nil {
			return values.Schema{}, err
		}
		return values.ListSchema(element), nil
	case s.StructSchema != nil:
		return s.StructSchema.ToSchema()
	}
	return values.Schema{}, flagerr.Parse("Schema for the flag does not declare a type")
}

// ToSchema converts a wire struct schema into the in-memory schema tree.
func (s *StructFlagSchema) ToSchema() (values.Schema, error) {
	fields := make(map[string]values.Schema, len(s.Schema))
	for name, child := range s.Schema {
		converted, err := child.ToSchema()
		if err != nil {
			return values.Schema{}, err
		}
		fields[name] = converted
	}
	return values.StructSchema(fields), nil
}

// Decode maps the resolved flag's wire value against its schema into a Value
// tree. A flag resolved without a schema decodes as an empty structure.
func (rf *ResolvedFlag) Decode() (values.Value, error) {
	schema := values.StructSchema(nil)
	if rf.FlagSchema != nil {
		converted, err := rf.FlagSchema.ToSchema()
		if err != nil {
			return values.Null(), err
		}
		schema = converted
	}
	var raw any
	if rf.Value != nil {
		raw = rf.Value
	}
	return values.FromWire(raw, schema)
}
