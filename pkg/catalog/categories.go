// Package catalog assembles the translation template for the project tree by
// driving the external xgettext tool across the fixed file categories.
package catalog

// Grammar selects the extraction ruleset xgettext applies to a category.
type Grammar string

const (
	// GrammarDefault leaves the choice to xgettext (it picks per file suffix).
	GrammarDefault Grammar = ""
	GrammarPython  Grammar = "Python"
	GrammarDesktop Grammar = "Desktop"
)

// TranslatorTag marks comments that are carried into the template as
// translator notes.
const TranslatorTag = "TRANSLATORS:"

// Selection names the input files of a category, either as a one-shot glob or
// as a recursive walk with a suffix filter and an optional exclusion pattern.
// All patterns and results are relative to the project root.
type Selection struct {
	Glob    string `yaml:"glob,omitempty"`
	WalkDir string `yaml:"walkDir,omitempty"`
	Suffix  string `yaml:"suffix,omitempty"`
	Exclude string `yaml:"exclude,omitempty"`
}

// Category groups input files that share extraction rules. An empty keyword
// spec clears xgettext's built-in keyword set for the selected grammar.
type Category struct {
	Name       string    `yaml:"name"`
	Grammar    Grammar   `yaml:"grammar,omitempty"`
	Keywords   []string  `yaml:"keywords,omitempty"`
	CommentTag string    `yaml:"commentTag,omitempty"`
	Selection  Selection `yaml:"selection"`
}

// Categories returns the fixed extraction order. The template is the union of
// these categories' results, joined in exactly this order.
func Categories() []Category {
	return []Category{
		{
			Name:       "python",
			Grammar:    GrammarPython,
			Keywords:   []string{"_:1", "d_:2", "n_:1,2"},
			CommentTag: TranslatorTag,
			Selection: Selection{
				WalkDir: ".",
				Suffix:  ".py",
				Exclude: "{test,**/test}/**",
			},
		},
		{
			Name: "ui",
			Selection: Selection{
				WalkDir: "data",
				Suffix:  ".ui",
			},
		},
		{
			Name:       "extensions",
			Grammar:    GrammarDesktop,
			Keywords:   []string{"", "Name", "Description"},
			CommentTag: TranslatorTag,
			Selection: Selection{
				Glob: "data/extensions/*/*.extension.in",
			},
		},
		{
			Name:       "patterns",
			Grammar:    GrammarDesktop,
			Keywords:   []string{"", "Name", "Description"},
			CommentTag: TranslatorTag,
			Selection: Selection{
				Glob: "data/patterns/*.in",
			},
		},
		{
			Name: "appdata",
			Selection: Selection{
				Glob: "data/gaupol.appdata.xml.in",
			},
		},
		{
			Name:       "desktop",
			Grammar:    GrammarDesktop,
			Keywords:   []string{"", "GenericName", "Comment", "Keywords", "X-GNOME-FullName"},
			CommentTag: TranslatorTag,
			Selection: Selection{
				Glob: "data/gaupol.desktop.in",
			},
		},
	}
}
