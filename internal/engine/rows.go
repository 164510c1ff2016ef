package engine

import (
	"strings"

	"gql2csv/internal/schema"
)

// Row is one field of the mapping sheet.
type Row struct {
	TypeName          string
	FieldName         string
	InnermostTypeName string
	IsRequired        bool
	IsList            bool
	Description       string
	MappedTo          string // left empty for manual mapping
}

const introspectionPrefix = "__"

var rootOperationTypes = map[string]bool{
	"Query":        true,
	"Mutation":     true,
	"Subscription": true,
}

// Skipped reports whether a type never contributes rows because of its name:
// introspection types and the root operation types.
func Skipped(typeName string) bool {
	return strings.HasPrefix(typeName, introspectionPrefix) || rootOperationTypes[typeName]
}

// BuildRows flattens every object and input object field of s into rows,
// grouped by type in schema order and by field in declaration order.
func BuildRows(s *schema.Schema) []Row {
	if s == nil {
		return nil
	}

	var rows []Row
	for _, t := range s.Types {
		if Skipped(t.Name) || !t.HasFields() {
			continue
		}
		for _, f := range t.Fields {
			innermost, required, list := Resolve(f.Type)
			rows = append(rows, Row{
				TypeName:          t.Name,
				FieldName:         f.Name,
				InnermostTypeName: innermost,
				IsRequired:        required,
				IsList:            list,
				Description:       f.Description,
			})
		}
	}
	return rows
}

// CountTypes returns how many distinct types contributed rows.
func CountTypes(rows []Row) int {
	seen := make(map[string]bool)
	for _, r := range rows {
		seen[r.TypeName] = true
	}
	return len(seen)
}
