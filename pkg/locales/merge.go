package locales

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// DefaultMergeTool is the merge tool resolved from PATH.
const DefaultMergeTool = "msgmerge"

// Merger updates every per-language catalog against the translation template,
// one msgmerge run per catalog, sequentially. The first failing run stops the
// sequence.
type Merger struct {
	Root     string
	Template string
	Tool     string

	Stdout io.Writer
	Stderr io.Writer

	log *slog.Logger
}

// NewMerger creates a Merger for the given project root and template path
// (relative to the root).
func NewMerger(root, template string, log *slog.Logger) *Merger {
	return &Merger{
		Root:     root,
		Template: template,
		Tool:     DefaultMergeTool,

		Stdout: os.Stdout,
		Stderr: os.Stderr,

		log: log,
	}
}

// Run merges each catalog in place.
func (m *Merger) Run(ctx context.Context) error {
	codes, err := List(m.Root)
	if err != nil {
		return err
	}

	for _, code := range codes {
		m.log.Debug("Merging catalog", "locale", code)

		cmd := exec.CommandContext(
			ctx,

			m.Tool,

			"--update",
			"--backup=none",
			filepath.Join(PoDir, code+".po"),
			filepath.FromSlash(m.Template),
		)
		cmd.Dir = m.Root
		cmd.Stdout = m.Stdout
		cmd.Stderr = m.Stderr

		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%v: %w", code, err)
		}
	}

	return nil
}
