package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gql2csv/internal/engine"

	"github.com/boyter/gocodewalker"
)

// Discover lists the schema files under root, honouring .gitignore and
// .ignore files. A root that is itself a schema file is returned as-is.
// The result is sorted.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("schema path not found: %s: %w", root, engine.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w: %w", root, engine.ErrIO, err)
	}

	if !info.IsDir() {
		if !strings.HasSuffix(root, SchemaExt) {
			return nil, fmt.Errorf("GraphQL file %q must have a %s extension: %w", root, SchemaExt, engine.ErrInvalidArgument)
		}
		return []string{root}, nil
	}

	var (
		mu    sync.Mutex
		files []string
	)
	if err := walkDir(root, func(path string) {
		mu.Lock()
		files = append(files, path)
		mu.Unlock()
	}); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w: %w", root, engine.ErrIO, err)
	}

	sort.Strings(files)
	return files, nil
}

// walkDir feeds every schema file under root to visit. Walk errors are
// collected and returned together once the walk has finished.
func walkDir(root string, visit func(path string)) error {
	queue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(root, queue)
	walker.AllowListExtensions = []string{strings.TrimPrefix(SchemaExt, ".")}

	var (
		mu   sync.Mutex
		errs []error
	)
	walker.SetErrorHandler(func(e error) bool {
		mu.Lock()
		errs = append(errs, e)
		mu.Unlock()
		return true
	})

	consumed := make(chan struct{})
	go func() {
		defer close(consumed)
		for f := range queue {
			visit(f.Location)
		}
	}()

	startErr := walker.Start()
	<-consumed

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(append([]error{startErr}, errs...)...)
}

// PlanBatch maps each source to a destination under outDir that mirrors the
// source's path relative to root, with the extension swapped for .csv.
func PlanBatch(sources []string, root, outDir string) ([]Job, error) {
	base := root
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		base = filepath.Dir(root)
	}

	jobs := make([]Job, 0, len(sources))
	for _, src := range sources {
		rel, err := filepath.Rel(base, src)
		if err != nil || strings.HasPrefix(rel, "..") {
			return nil, fmt.Errorf("schema %s is outside %s: %w", src, root, engine.ErrInvalidArgument)
		}
		jobs = append(jobs, Job{
			Source:      src,
			Destination: filepath.Join(outDir, strings.TrimSuffix(rel, SchemaExt)+OutputExt),
		})
	}
	return jobs, nil
}
