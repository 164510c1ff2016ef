package engine

import "gql2csv/internal/schema"

// Resolve unwraps t to its innermost named type.
//
// isRequired is true when a NonNull wrapper appears anywhere in the chain and
// isList is true when a List wrapper does. The flags do not record which
// level carried the wrapper, so [String]! and [String!] resolve identically.
func Resolve(t schema.FieldType) (innermost string, isRequired, isList bool) {
	for t != nil {
		switch v := t.(type) {
		case schema.Named:
			return v.Name, isRequired, isList
		case schema.NonNull:
			isRequired = true
			t = v.Of
		case schema.List:
			isList = true
			t = v.Of
		default:
			return "", isRequired, isList
		}
	}
	return "", isRequired, isList
}
