package catalog

import (
	"os"
	"path/filepath"
)

// ResolveRoot locates the project tree from the running binary's own resolved
// location, so the tool behaves the same no matter where it is started from.
// A binary installed at <root>/tools/ resolves to <root>.
func ResolveRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}

	return filepath.Dir(filepath.Dir(exe)), nil
}
