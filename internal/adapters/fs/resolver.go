package fs

import (
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"
)

// Resolver expands glob patterns into concrete file paths.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve expands patterns relative to root into a sorted, de-duplicated list
// of paths. A pattern that matches nothing is an error.
func (r *Resolver) Resolve(root string, patterns ...string) ([]string, error) {
	uniquePaths := make(map[string]bool)

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(pattern) {
			path = filepath.Join(root, pattern)
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}

		if len(matches) == 0 {
			return nil, zerr.With(zerr.New("input not found"), "path", path)
		}

		for _, match := range matches {
			uniquePaths[match] = true
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	sort.Strings(result)

	return result, nil
}

// Glob resolves patterns up front and returns the matches as a FileSource.
func (r *Resolver) Glob(root string, patterns ...string) (PathList, error) {
	paths, err := r.Resolve(root, patterns...)
	if err != nil {
		return nil, err
	}
	return Paths(paths...), nil
}
