package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gql2csv/internal/engine"

	"go.uber.org/zap"
)

// Header is the fixed column layout of the mapping sheet.
var Header = []string{
	"Type",
	"Field",
	"Field Type",
	"Is Required",
	"Is List",
	"Description",
	"Mapped To",
}

// BoolStyle selects how boolean columns are spelled.
type BoolStyle int

const (
	BoolGo    BoolStyle = iota // true / false
	BoolTitle                  // True / False
)

// ParseBoolStyle accepts "go" or "title"; empty means go.
func ParseBoolStyle(s string) (BoolStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "go":
		return BoolGo, nil
	case "title":
		return BoolTitle, nil
	default:
		return BoolGo, fmt.Errorf("unknown bool style %q (want go or title): %w", s, engine.ErrInvalidArgument)
	}
}

func (b BoolStyle) String() string {
	if b == BoolTitle {
		return "title"
	}
	return "go"
}

func (b BoolStyle) format(v bool) string {
	if b == BoolTitle {
		if v {
			return "True"
		}
		return "False"
	}
	return strconv.FormatBool(v)
}

type options struct {
	bools  BoolStyle
	logger *zap.Logger
}

type Option func(*options)

func WithBoolStyle(b BoolStyle) Option {
	return func(o *options) { o.bools = b }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WriteResult describes a written mapping sheet.
type WriteResult struct {
	Path       string
	Rows       int
	CreatedDir string // set when the parent directory had to be created
}

// Encode writes the header and one record per row to w.
func Encode(w io.Writer, rows []engine.Row, opts ...Option) error {
	o := newOptions(opts)

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.TypeName,
			r.FieldName,
			r.InnermostTypeName,
			o.bools.format(r.IsRequired),
			o.bools.format(r.IsList),
			r.Description,
			r.MappedTo,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes rows to path, creating the parent directory when missing.
// A failed write removes the partially written file.
func WriteCSV(rows []engine.Row, path string, opts ...Option) (WriteResult, error) {
	o := newOptions(opts)
	res := WriteResult{Path: path, Rows: len(rows)}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return res, fmt.Errorf("failed to create directory %s: %w: %w", dir, engine.ErrIO, err)
			}
			res.CreatedDir = dir
			o.logger.Info("Created directory", zap.String("dir", dir))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return res, fmt.Errorf("failed to create %s: %w: %w", path, engine.ErrIO, err)
	}

	if err := Encode(f, rows, opts...); err != nil {
		f.Close()
		os.Remove(path)
		return res, fmt.Errorf("failed to write %s: %w: %w", path, engine.ErrIO, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return res, fmt.Errorf("failed to close %s: %w: %w", path, engine.ErrIO, err)
	}

	o.logger.Debug("Wrote mapping sheet", zap.String("path", path), zap.Int("rows", len(rows)))
	return res, nil
}
