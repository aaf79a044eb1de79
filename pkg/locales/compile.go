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

// DefaultCompileTool is the catalog compiler resolved from PATH.
const DefaultCompileTool = "msgfmt"

// LocaleDir is the compiled-catalog directory relative to the project root.
// Catalogs are installed as <LocaleDir>/<code>/LC_MESSAGES/<Domain>.mo.
const LocaleDir = "locale"

// Compiler compiles every per-language catalog to binary form, one msgfmt run
// per catalog, sequentially. The first failing run stops the sequence.
type Compiler struct {
	Root string
	Tool string

	Stdout io.Writer
	Stderr io.Writer

	log *slog.Logger
}

// NewCompiler creates a Compiler for the given project root.
func NewCompiler(root string, log *slog.Logger) *Compiler {
	return &Compiler{
		Root: root,
		Tool: DefaultCompileTool,

		Stdout: os.Stdout,
		Stderr: os.Stderr,

		log: log,
	}
}

// Run compiles each catalog into the locale directory.
func (c *Compiler) Run(ctx context.Context) error {
	codes, err := List(c.Root)
	if err != nil {
		return err
	}

	for _, code := range codes {
		messages := filepath.Join(LocaleDir, code, "LC_MESSAGES")
		if err := os.MkdirAll(filepath.Join(c.Root, messages), 0o755); err != nil {
			return err
		}

		c.log.Debug("Compiling catalog", "locale", code)

		cmd := exec.CommandContext(
			ctx,

			c.Tool,

			"-o",
			filepath.Join(messages, Domain+".mo"),
			filepath.Join(PoDir, code+".po"),
		)
		cmd.Dir = c.Root
		cmd.Stdout = c.Stdout
		cmd.Stderr = c.Stderr

		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%v: %w", code, err)
		}
	}

	return nil
}
