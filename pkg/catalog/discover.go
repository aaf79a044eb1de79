package catalog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Discover expands a category's selection against the project root and
// returns the matching files relative to the root, in lexical order.
func Discover(root string, s Selection) ([]string, error) {
	if s.Glob != "" {
		matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(s.Glob)))
		if err != nil {
			return nil, err
		}

		files := []string{}
		for _, match := range matches {
			rel, err := filepath.Rel(root, match)
			if err != nil {
				return nil, err
			}

			files = append(files, filepath.ToSlash(rel))
		}

		return files, nil
	}

	var exclude glob.Glob
	if s.Exclude != "" {
		e, err := glob.Compile(s.Exclude, '/')
		if err != nil {
			return nil, err
		}

		exclude = e
	}

	base := filepath.Join(root, filepath.FromSlash(s.WalkDir))
	if _, err := os.Stat(base); errors.Is(err, fs.ErrNotExist) {
		// A missing subtree is a zero-match category, not an error
		return []string{}, nil
	}

	files := []string{}
	if err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), s.Suffix) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)
		if exclude != nil && exclude.Match(rel) {
			return nil
		}

		files = append(files, rel)

		return nil
	}); err != nil {
		return nil, err
	}

	return files, nil
}
