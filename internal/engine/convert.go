package engine

import "gql2csv/internal/schema"

// Convert parses SDL text and flattens it into rows.
func Convert(sdlText string) ([]Row, error) {
	return ConvertSource("", sdlText)
}

// ConvertSource is Convert with a source name reported in parse errors.
func ConvertSource(name, sdlText string) ([]Row, error) {
	s, err := schema.Analyze(name, sdlText)
	if err != nil {
		return nil, newParseError(name, err)
	}
	return BuildRows(s), nil
}
