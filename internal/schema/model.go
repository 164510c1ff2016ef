package schema

import "strings"

// Kind classifies a named type in the schema.
type Kind int

const (
	KindScalar Kind = iota
	KindObject
	KindInterface
	KindUnion
	KindEnum
	KindInputObject
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "SCALAR"
	case KindObject:
		return "OBJECT"
	case KindInterface:
		return "INTERFACE"
	case KindUnion:
		return "UNION"
	case KindEnum:
		return "ENUM"
	case KindInputObject:
		return "INPUT_OBJECT"
	default:
		return "UNKNOWN"
	}
}

// Schema is the parsed SDL document. Types are kept in declaration order.
type Schema struct {
	Types  []*TypeDefinition
	byName map[string]*TypeDefinition
}

// Lookup returns the type registered under name.
func (s *Schema) Lookup(name string) (*TypeDefinition, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// NewSchema builds a Schema from types already in the desired order.
// A later type with a duplicate name replaces the earlier one in lookups.
func NewSchema(types ...*TypeDefinition) *Schema {
	s := &Schema{
		Types:  types,
		byName: make(map[string]*TypeDefinition, len(types)),
	}
	for _, t := range types {
		s.byName[t.Name] = t
	}
	return s
}

type TypeDefinition struct {
	Name        string
	Kind        Kind
	Description string
	Fields      []*FieldDefinition // declaration order; extensions follow
	BuiltIn     bool
}

// HasFields reports whether the kind carries a field list that becomes rows.
func (t *TypeDefinition) HasFields() bool {
	return t.Kind == KindObject || t.Kind == KindInputObject
}

type FieldDefinition struct {
	Name        string
	Type        FieldType
	Description string
}

// FieldType is a declared field type: a Named leaf optionally wrapped
// by any chain of NonNull and List.
type FieldType interface {
	String() string
	isFieldType()
}

type Named struct {
	Name string
}

type NonNull struct {
	Of FieldType
}

type List struct {
	Of FieldType
}

func (Named) isFieldType()   {}
func (NonNull) isFieldType() {}
func (List) isFieldType()    {}

func (n Named) String() string { return n.Name }

func (n NonNull) String() string { return innerString(n.Of) + "!" }

func (l List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(innerString(l.Of))
	b.WriteByte(']')
	return b.String()
}

func innerString(t FieldType) string {
	if t == nil {
		return ""
	}
	return t.String()
}
