package sources

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

type localSource struct {
	dir string
}

// NewLocalSource creates a source that yields every regular file under dir
// as one blob. The directory must exist and be readable.
func NewLocalSource(dir string) (Source, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: directory not configured", ErrSourceUnavailable)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceUnavailable, dir)
	}
	return &localSource{dir: dir}, nil
}

func (s *localSource) EachBlob(ctx context.Context, fn func(ctx context.Context, blob *Blob) error) error {
	var paths []string
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	// deterministic enumeration order
	sort.Strings(paths)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}

		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			rel = path
		}

		if err := fn(ctx, &Blob{Key: rel, Text: string(data)}); err != nil {
			return err
		}
	}

	return nil
}
