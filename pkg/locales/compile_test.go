package locales

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompilerRunsPerCatalogIntoLocaleDir(t *testing.T) {
	root := t.TempDir()
	for _, code := range []string{"de", "fi"} {
		writeCatalog(t, root, code, "")
	}

	tool, calls := stubTool(t, "msgfmt", "")

	compiler := NewCompiler(root, discardLog())
	compiler.Tool = tool
	compiler.Stdout = io.Discard
	compiler.Stderr = io.Discard

	if err := compiler.Run(context.Background()); err != nil {
		t.Fatalf("could not compile catalogs: %v", err)
	}

	want := []string{
		"-o locale/de/LC_MESSAGES/gaupol.mo po/de.po",
		"-o locale/fi/LC_MESSAGES/gaupol.mo po/fi.po",
	}
	if diff := cmp.Diff(want, recordedCalls(t, calls)); diff != "" {
		t.Errorf("unexpected invocations (-want +got):\n%s", diff)
	}

	for _, code := range []string{"de", "fi"} {
		if _, err := os.Stat(filepath.Join(root, LocaleDir, code, "LC_MESSAGES")); err != nil {
			t.Errorf("expected LC_MESSAGES directory for %v: %v", code, err)
		}
	}
}

func TestCompilerStopsAtFirstFailure(t *testing.T) {
	root := t.TempDir()
	for _, code := range []string{"de", "fi", "sv"} {
		writeCatalog(t, root, code, "")
	}

	tool, calls := stubTool(t, "msgfmt", `case "$@" in *fi.po*) exit 1;; esac`)

	compiler := NewCompiler(root, discardLog())
	compiler.Tool = tool
	compiler.Stdout = io.Discard
	compiler.Stderr = io.Discard

	if err := compiler.Run(context.Background()); err == nil {
		t.Fatalf("expected compilation to fail")
	}

	if got := recordedCalls(t, calls); len(got) != 2 {
		t.Errorf("expected the sequence to stop after 2 invocations, got %v: %v", len(got), got)
	}
}
