package schema

import (
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Analyze parses and validates SDL text and returns the schema graph.
// Parser and validator errors are returned unmodified so callers can
// inspect their positions.
func Analyze(name, text string) (*Schema, error) {
	doc, err := gqlparser.LoadSchema(&ast.Source{Name: name, Input: text})
	if err != nil {
		return nil, err
	}
	if !declaresAnything(doc) {
		// A document needs at least one definition.
		return nil, &gqlerror.Error{
			Message:   "Unexpected <EOF>",
			Locations: []gqlerror.Location{{Line: strings.Count(text, "\n") + 1, Column: 1}},
		}
	}

	defs := make([]*ast.Definition, 0, len(doc.Types))
	for _, def := range doc.Types {
		defs = append(defs, def)
	}
	SortDefinitions(defs)

	types := make([]*TypeDefinition, 0, len(defs))
	for _, def := range defs {
		types = append(types, convertDefinition(def))
	}
	return NewSchema(types...), nil
}

// SortDefinitions orders definitions the way they were declared: built-in
// prelude types first, then user types by their offset in the source.
// Names break ties so the result never depends on map iteration order.
func SortDefinitions(defs []*ast.Definition) {
	sort.Slice(defs, func(i, j int) bool {
		a, b := defs[i], defs[j]
		if ba, bb := builtIn(a), builtIn(b); ba != bb {
			return ba
		}
		pa, pb := offset(a), offset(b)
		if pa != pb {
			return pa < pb
		}
		return a.Name < b.Name
	})
}

func declaresAnything(doc *ast.Schema) bool {
	for _, def := range doc.Types {
		if !builtIn(def) {
			return true
		}
	}
	for _, dir := range doc.Directives {
		if dir.Position != nil && dir.Position.Src != nil && !dir.Position.Src.BuiltIn {
			return true
		}
	}
	return false
}

func builtIn(def *ast.Definition) bool {
	if def.BuiltIn {
		return true
	}
	return def.Position != nil && def.Position.Src != nil && def.Position.Src.BuiltIn
}

func offset(def *ast.Definition) int {
	if def.Position == nil {
		return -1
	}
	return def.Position.Start
}

func convertDefinition(def *ast.Definition) *TypeDefinition {
	t := &TypeDefinition{
		Name:        def.Name,
		Kind:        convertKind(def.Kind),
		Description: def.Description,
		BuiltIn:     builtIn(def),
	}
	for _, f := range def.Fields {
		// The validator injects __schema and __type into the query root.
		if strings.HasPrefix(f.Name, "__") {
			continue
		}
		t.Fields = append(t.Fields, &FieldDefinition{
			Name:        f.Name,
			Type:        ConvertType(f.Type),
			Description: f.Description,
		})
	}
	return t
}

func convertKind(k ast.DefinitionKind) Kind {
	switch k {
	case ast.Object:
		return KindObject
	case ast.Interface:
		return KindInterface
	case ast.Union:
		return KindUnion
	case ast.Enum:
		return KindEnum
	case ast.InputObject:
		return KindInputObject
	default:
		return KindScalar
	}
}

// ConvertType maps a gqlparser type reference onto the FieldType variants.
func ConvertType(t *ast.Type) FieldType {
	if t == nil {
		return nil
	}
	var ft FieldType
	if t.Elem != nil {
		ft = List{Of: ConvertType(t.Elem)}
	} else {
		ft = Named{Name: t.NamedType}
	}
	if t.NonNull {
		ft = NonNull{Of: ft}
	}
	return ft
}
