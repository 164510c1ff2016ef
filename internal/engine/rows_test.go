package engine_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"gql2csv/internal/engine"
	"gql2csv/internal/schema"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func field(name string, t schema.FieldType, desc string) *schema.FieldDefinition {
	return &schema.FieldDefinition{Name: name, Type: t, Description: desc}
}

func TestBuildRows_Filtering(t *testing.T) {
	s := schema.NewSchema(
		&schema.TypeDefinition{Name: "__Type", Kind: schema.KindObject, Fields: []*schema.FieldDefinition{
			field("name", named("String"), ""),
		}},
		&schema.TypeDefinition{Name: "Query", Kind: schema.KindObject, Fields: []*schema.FieldDefinition{
			field("me", named("User"), ""),
		}},
		&schema.TypeDefinition{Name: "Mutation", Kind: schema.KindObject, Fields: []*schema.FieldDefinition{
			field("rename", named("User"), ""),
		}},
		&schema.TypeDefinition{Name: "Subscription", Kind: schema.KindObject, Fields: []*schema.FieldDefinition{
			field("renamed", named("User"), ""),
		}},
		&schema.TypeDefinition{Name: "Node", Kind: schema.KindInterface, Fields: []*schema.FieldDefinition{
			field("id", nonNull(named("ID")), ""),
		}},
		&schema.TypeDefinition{Name: "Role", Kind: schema.KindEnum},
		&schema.TypeDefinition{Name: "Date", Kind: schema.KindScalar},
		&schema.TypeDefinition{Name: "Actor", Kind: schema.KindUnion},
		&schema.TypeDefinition{Name: "User", Kind: schema.KindObject, Fields: []*schema.FieldDefinition{
			field("id", nonNull(named("ID")), "Primary key"),
			field("roles", list(named("Role")), ""),
		}},
		&schema.TypeDefinition{Name: "UserInput", Kind: schema.KindInputObject, Fields: []*schema.FieldDefinition{
			field("name", named("String"), ""),
		}},
	)

	got := engine.BuildRows(s)

	want := []engine.Row{
		{TypeName: "User", FieldName: "id", InnermostTypeName: "ID", IsRequired: true, Description: "Primary key"},
		{TypeName: "User", FieldName: "roles", InnermostTypeName: "Role", IsList: true},
		{TypeName: "UserInput", FieldName: "name", InnermostTypeName: "String"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRows_Nil(t *testing.T) {
	assert.Empty(t, engine.BuildRows(nil))
}

func TestSkipped(t *testing.T) {
	for _, name := range []string{"Query", "Mutation", "Subscription", "__Schema", "__anything"} {
		assert.True(t, engine.Skipped(name), name)
	}
	for _, name := range []string{"Queries", "query", "Book", "_Private"} {
		assert.False(t, engine.Skipped(name), name)
	}
}

func TestBuildRows_Book(t *testing.T) {
	rows, err := engine.Convert(`type Book { title: String! authors: [String!] pageCount: Int }`)
	require.NoError(t, err)

	want := []engine.Row{
		{TypeName: "Book", FieldName: "title", InnermostTypeName: "String", IsRequired: true},
		{TypeName: "Book", FieldName: "authors", InnermostTypeName: "String", IsRequired: true, IsList: true},
		{TypeName: "Book", FieldName: "pageCount", InnermostTypeName: "Int"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	for _, r := range rows {
		assert.Empty(t, r.MappedTo)
	}
	assert.Equal(t, 1, engine.CountTypes(rows))
}

var fieldTypes = []string{"String", "Int", "Float", "Boolean", "ID!", "[String]", "[Int!]!", "[[ID!]]", "Color", "[Color!]"}

func identifier(word string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, word)
}

// Random schemas produce exactly one row per field of every object and
// input object type, regardless of how many root types carry fields.
func TestBuildRows_RowCountMatchesFields(t *testing.T) {
	faker := gofakeit.New(42)

	for round := 0; round < 20; round++ {
		var sdl strings.Builder
		sdl.WriteString("enum Color { RED GREEN }\n")
		sdl.WriteString("type Query { ping: String }\n")
		sdl.WriteString("type Mutation { pong: String }\n")

		want := 0
		types := faker.Number(1, 8)
		for i := 0; i < types; i++ {
			keyword := "type"
			if faker.Bool() {
				keyword = "input"
			}
			fmt.Fprintf(&sdl, "%s T%d%s {\n", keyword, i, identifier(faker.Noun()))
			fields := faker.Number(1, 6)
			for j := 0; j < fields; j++ {
				fmt.Fprintf(&sdl, "  f%d%s: %s\n", j, identifier(faker.Verb()), faker.RandomString(fieldTypes))
			}
			sdl.WriteString("}\n")
			want += fields
		}

		rows, err := engine.Convert(sdl.String())
		require.NoError(t, err, sdl.String())
		require.Len(t, rows, want, sdl.String())
		assert.Equal(t, types, engine.CountTypes(rows))
		for _, r := range rows {
			assert.False(t, engine.Skipped(r.TypeName))
		}
	}
}
