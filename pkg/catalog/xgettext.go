package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// DefaultOutput is the template path relative to the project root.
const DefaultOutput = "po/gaupol.pot"

// DefaultTool is the extraction tool resolved from PATH.
const DefaultTool = "xgettext"

// Invocation is one planned extraction run contributing a category to the
// template.
type Invocation struct {
	Category string   `yaml:"category"`
	Tool     string   `yaml:"tool"`
	Args     []string `yaml:"args"`
	Files    []string `yaml:"files"`
}

// Runner updates the translation template by running the extraction tool once
// per category, sequentially and in the fixed category order. Each run joins
// its results into the shared template; the runner never parses the template
// itself.
type Runner struct {
	Root   string
	Output string
	Tool   string

	Stdout io.Writer
	Stderr io.Writer

	log *slog.Logger
}

// NewRunner creates a Runner for the given project root.
func NewRunner(root string, log *slog.Logger) *Runner {
	return &Runner{
		Root:   root,
		Output: DefaultOutput,
		Tool:   DefaultTool,

		Stdout: os.Stdout,
		Stderr: os.Stderr,

		log: log,
	}
}

// arguments builds the extraction tool's argument vector for a category,
// without the input files.
func arguments(c Category, output string) []string {
	args := []string{
		"--output=" + output,
		"--join-existing",
		"--from-code=UTF-8",
	}

	if c.Grammar != GrammarDefault {
		args = append(args, "--language="+string(c.Grammar))
	}

	for _, keyword := range c.Keywords {
		args = append(args, "--keyword="+keyword)
	}

	if c.CommentTag != "" {
		args = append(args, "--add-comments="+c.CommentTag)
	}

	return args
}

// Plan resolves the invocations Update would run, without touching the
// template. Zero-match categories are planned with an empty file list.
func (r *Runner) Plan() ([]Invocation, error) {
	invocations := []Invocation{}
	for _, category := range Categories() {
		files, err := Discover(r.Root, category.Selection)
		if err != nil {
			return nil, err
		}

		invocations = append(invocations, Invocation{
			Category: category.Name,
			Tool:     r.Tool,
			Args:     arguments(category, r.Output),
			Files:    files,
		})
	}

	return invocations, nil
}

// Update truncates the template, then runs one extraction per category in the
// fixed order, joining each result into the template. A category with no
// matching files contributes nothing. The first failing invocation stops the
// sequence; earlier contributions stay on disk.
func (r *Runner) Update(ctx context.Context) error {
	output := filepath.Join(r.Root, filepath.FromSlash(r.Output))

	r.log.Debug("Truncating translation template", "path", output)

	f, err := os.OpenFile(output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	for _, category := range Categories() {
		files, err := Discover(r.Root, category.Selection)
		if err != nil {
			return err
		}

		if len(files) == 0 {
			r.log.Debug("Skipping category without matching files", "category", category.Name)

			continue
		}

		r.log.Debug("Extracting category", "category", category.Name, "files", len(files))

		cmd := exec.CommandContext(ctx, r.Tool, append(arguments(category, r.Output), files...)...)
		cmd.Dir = r.Root
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr

		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%v: %w", category.Name, err)
		}
	}

	return nil
}
