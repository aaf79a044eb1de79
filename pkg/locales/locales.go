// Package locales maintains the per-language catalogs that are derived from
// the translation template: merging them against a fresh template, compiling
// them to binary form and reporting their translation status.
package locales

import (
	"path/filepath"
	"strings"
)

// Domain is the gettext text domain the compiled catalogs are installed
// under.
const Domain = "gaupol"

// PoDir is the catalog directory relative to the project root.
const PoDir = "po"

// List returns the locale codes that have a catalog under the project's po
// directory, in lexical order.
func List(root string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(root, PoDir, "*.po"))
	if err != nil {
		return nil, err
	}

	codes := []string{}
	for _, match := range matches {
		codes = append(codes, strings.TrimSuffix(filepath.Base(match), ".po"))
	}

	return codes, nil
}
