package values

// SchemaKind identifies which variant a Schema holds.
type SchemaKind int

const (
	SchemaBool SchemaKind = iota
	SchemaString
	SchemaInt
	SchemaDouble
	SchemaList
	SchemaStruct
)

// Schema is a type descriptor tree mirroring a Value's shape. A resolved
// value must match its schema at every node, except that an explicit null is
// compatible with any schema.
type Schema struct {
	kind    SchemaKind
	element *Schema
	fields  map[string]Schema
}

// BoolSchema declares a boolean position.
func BoolSchema() Schema {
	return Schema{kind: SchemaBool}
}

// StringSchema declares a string position.
func StringSchema() Schema {
	return Schema{kind: SchemaString}
}

// IntSchema declares a 32-bit integer position.
func IntSchema() Schema {
	return Schema{kind: SchemaInt}
}

// DoubleSchema declares a 64-bit float position.
func DoubleSchema() Schema {
	return Schema{kind: SchemaDouble}
}

// ListSchema declares a list position whose elements all follow element.
func ListSchema(element Schema) Schema {
	return Schema{kind: SchemaList, element: &element}
}

// StructSchema declares a structure position with the given field schemas.
// The map is copied.
func StructSchema(fields map[string]Schema) Schema {
	copied := make(map[string]Schema, len(fields))
	for k, s := range fields {
		copied[k] = s
	}
	return Schema{kind: SchemaStruct, fields: copied}
}

// Kind reports which variant the schema holds.
func (s Schema) Kind() SchemaKind {
	return s.kind
}

// Element returns the element schema of a list schema.
func (s Schema) Element() (Schema, bool) {
	if s.kind != SchemaList || s.element == nil {
		return Schema{}, false
	}
	return *s.element, true
}

// Field returns the declared schema for a structure field.
func (s Schema) Field(name string) (Schema, bool) {
	if s.kind != SchemaStruct {
		return Schema{}, false
	}
	fs, ok := s.fields[name]
	return fs, ok
}

func (s SchemaKind) String() string {
	switch s {
	case SchemaBool:
		return "bool"
	case SchemaString:
		return "string"
	case SchemaInt:
		return "int"
	case SchemaDouble:
		return "double"
	case SchemaList:
		return "list"
	case SchemaStruct:
		return "struct"
	}
	return "unknown"
}
