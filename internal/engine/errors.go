package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

var (
	// ErrInvalidArgument reports a bad source or destination path.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound reports a source file that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrParse reports SDL that cannot be parsed or built into a schema.
	ErrParse = errors.New("parse error")
	// ErrIO reports an output directory or file that cannot be written.
	ErrIO = errors.New("io error")
)

// ParseError wraps an SDL parser or validator failure with its position.
type ParseError struct {
	Source  string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.Source != "" && e.Line > 0:
		return fmt.Sprintf("parse error: %s:%d:%d: %s", e.Source, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("parse error: %d:%d: %s", e.Line, e.Column, e.Message)
	default:
		return fmt.Sprintf("parse error: %s", e.Message)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Source: source, Message: err.Error(), Err: err}

	var gerr *gqlerror.Error
	var list gqlerror.List
	switch {
	case errors.As(err, &list) && len(list) > 0:
		gerr = list[0]
		msgs := make([]string, 0, len(list))
		for _, e := range list {
			msgs = append(msgs, e.Message)
		}
		pe.Message = strings.Join(msgs, "; ")
	case errors.As(err, &gerr):
		pe.Message = gerr.Message
	}
	if gerr != nil && len(gerr.Locations) > 0 {
		pe.Line = gerr.Locations[0].Line
		pe.Column = gerr.Locations[0].Column
	}
	return pe
}
