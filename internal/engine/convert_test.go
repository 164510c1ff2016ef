package engine_test

import (
	"errors"
	"testing"

	"gql2csv/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Library(t *testing.T) {
	rows, err := engine.Convert(`
		"""
		Someone who writes.
		"""
		type Author {
		  "Full name"
		  name: String!
		  books: [Book]!
		}

		type Book {
		  title: String
		  author: Author!
		}

		union SearchResult = Author | Book

		type Query {
		  search(term: String!): [SearchResult!]!
		}

		extend type Author {
		  born: Int
		}
	`)
	require.NoError(t, err)

	var got []string
	for _, r := range rows {
		got = append(got, r.TypeName+"."+r.FieldName)
	}
	assert.Equal(t, []string{"Author.name", "Author.books", "Author.born", "Book.title", "Book.author"}, got)
	assert.Equal(t, "Full name", rows[0].Description)
	assert.Equal(t, "Book", rows[1].InnermostTypeName)
	assert.True(t, rows[1].IsRequired)
	assert.True(t, rows[1].IsList)
}

func TestConvert_ParseError(t *testing.T) {
	_, err := engine.ConvertSource("broken.graphql", "type Book {\n  title: String\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrParse))

	var pe *engine.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "broken.graphql", pe.Source)
	assert.Positive(t, pe.Line)
	assert.Contains(t, pe.Error(), "broken.graphql")
}

func TestConvert_DanglingReference(t *testing.T) {
	_, err := engine.Convert(`type Book { author: Writer }`)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrParse)
	assert.Contains(t, err.Error(), "Writer")
}

func TestParseError_Format(t *testing.T) {
	assert.Equal(t, "parse error: boom", (&engine.ParseError{Message: "boom"}).Error())
	assert.Equal(t, "parse error: 3:7: boom", (&engine.ParseError{Line: 3, Column: 7, Message: "boom"}).Error())
	assert.False(t, errors.Is(&engine.ParseError{}, engine.ErrIO))
}

func TestConvert_CustomQueryRoot(t *testing.T) {
	rows, err := engine.Convert("schema { query: Root }\ntype Root { ping: String }\ntype Book { title: String }")
	require.NoError(t, err)

	var got []string
	for _, r := range rows {
		got = append(got, r.TypeName+"."+r.FieldName)
	}
	assert.Equal(t, []string{"Root.ping", "Book.title"}, got)
}

func TestConvert_EmptyDocument(t *testing.T) {
	for _, sdl := range []string{"", "   \n\t", "# only a comment\n"} {
		rows, err := engine.ConvertSource("empty.graphql", sdl)
		assert.ErrorIs(t, err, engine.ErrParse, "%q", sdl)
		assert.Nil(t, rows)

		var pe *engine.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Contains(t, pe.Message, "EOF")
	}
}

func TestConvert_UndefinedTypes(t *testing.T) {
	_, err := engine.Convert(`type A { x: Nope y: Nope2 }`)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrParse)
	assert.Contains(t, err.Error(), "Nope")
}
