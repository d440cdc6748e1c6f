package scaffold

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/systemstart/dataflow-kit/pkg/api"
)

//go:embed templates
var templateFS embed.FS

// Template is the manifest/source pair generated for one project kind.
type Template struct {
	Manifest     string
	ManifestFile string
	Source       string
	SourceFile   string // relative to the project's src directory
}

type templateSet struct {
	manifest     string
	manifestFile string
	source       string
	sourceFile   string
}

var templateSets = map[api.Language]map[api.ProjectKind]templateSet{
	api.LanguageRust: {
		api.KindOperator: {
			manifest:     "Cargo-template.toml",
			manifestFile: "Cargo.toml",
			source:       "lib-template.rs",
			sourceFile:   "lib.rs",
		},
		api.KindCustomNode: {
			manifest:     "Cargo-template.toml",
			manifestFile: "Cargo.toml",
			source:       "main-template.rs",
			sourceFile:   "main.rs",
		},
	},
}

// LoadTemplate returns the embedded template pair for lang and kind.
func LoadTemplate(lang api.Language, kind api.ProjectKind) (*Template, error) {
	sets, ok := templateSets[lang]
	if !ok {
		return nil, fmt.Errorf("%w: no templates for language %q", ErrUnknownKind, lang)
	}
	set, ok := sets[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	dir := path.Join("templates", string(lang), string(kind))

	manifest, err := templateFS.ReadFile(path.Join(dir, set.manifest))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", set.manifest, err)
	}
	source, err := templateFS.ReadFile(path.Join(dir, set.source))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", set.source, err)
	}

	return &Template{
		Manifest:     string(manifest),
		ManifestFile: set.manifestFile,
		Source:       string(source),
		SourceFile:   set.sourceFile,
	}, nil
}

// Render replaces every placeholder token in tmpl with name.
func Render(tmpl, name string) string {
	return strings.ReplaceAll(tmpl, api.PlaceholderToken, name)
}
