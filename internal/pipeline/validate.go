package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gql2csv/internal/engine"
)

const (
	SchemaExt = ".graphql"
	OutputExt = ".csv"
)

// Validate runs the pre-flight checks on a conversion's paths. The
// destination is checked first, then the source suffix, then the source's
// existence. Nothing is read or written.
func Validate(src, dst string) error {
	if dst == "" {
		return fmt.Errorf("output file path is required: %w", engine.ErrInvalidArgument)
	}
	if !strings.HasSuffix(dst, OutputExt) {
		return fmt.Errorf("output file %q must have a %s extension: %w", dst, OutputExt, engine.ErrInvalidArgument)
	}
	if src == "" {
		return fmt.Errorf("GraphQL file path is required: %w", engine.ErrInvalidArgument)
	}
	if !strings.HasSuffix(src, SchemaExt) {
		return fmt.Errorf("GraphQL file %q must have a %s extension: %w", src, SchemaExt, engine.ErrInvalidArgument)
	}

	info, err := os.Stat(src)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("GraphQL file not found: %s: %w", src, engine.ErrNotFound)
	case err != nil:
		return fmt.Errorf("failed to stat %s: %w: %w", src, engine.ErrIO, err)
	case info.IsDir():
		return fmt.Errorf("GraphQL file %s is a directory: %w", src, engine.ErrInvalidArgument)
	}
	return nil
}
