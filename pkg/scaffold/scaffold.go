package scaffold

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/systemstart/dataflow-kit/pkg/api"
)

const srcDir = "src"

// Request describes one project to create.
type Request struct {
	Kind        api.ProjectKind
	Language    api.Language
	Name        string
	Destination string // defaults to Name, relative to the working directory
}

// Project is what Create wrote to disk.
type Project struct {
	Kind  api.ProjectKind
	Name  string
	Root  string
	Files []string // relative to Root
}

// ValidateName rejects names that are empty, contain a path separator or
// are not plain ASCII.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("%w: %q must not contain `/` separators", ErrInvalidName, name)
	}
	for i := 0; i < len(name); i++ {
		if name[i] >= utf8.RuneSelf {
			return fmt.Errorf("%w: %q must be ASCII", ErrInvalidName, name)
		}
	}
	return nil
}

// Create validates req, creates the project layout and writes the templated
// files. A confirmation line is written to out on success.
//
// Directories created before a failure are left in place.
func Create(req Request, out io.Writer) (*Project, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}

	root := req.Destination
	if root == "" {
		root = req.Name
	}

	if err := mkdir(root); err != nil {
		return nil, err
	}
	src := filepath.Join(root, srcDir)
	if err := mkdir(src); err != nil {
		return nil, err
	}

	lang := req.Language
	if lang == "" {
		lang = api.LanguageRust
	}
	tmpl, err := LoadTemplate(lang, req.Kind)
	if err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(root, tmpl.ManifestFile)
	if err := writeFile(manifestPath, Render(tmpl.Manifest, req.Name)); err != nil {
		return nil, err
	}

	sourcePath := filepath.Join(src, tmpl.SourceFile)
	if err := writeFile(sourcePath, tmpl.Source); err != nil {
		return nil, err
	}

	project := &Project{
		Kind:  req.Kind,
		Name:  req.Name,
		Root:  root,
		Files: []string{tmpl.ManifestFile, filepath.Join(srcDir, tmpl.SourceFile)},
	}

	slog.Debug("project created", "kind", req.Kind, "name", req.Name, "root", root)
	fmt.Fprintf(out, "Created new %s %s `%s` at %s\n", lang.DisplayName(), req.Kind.DisplayName(), req.Name, displayPath(root))

	return project, nil
}

func mkdir(dir string) error {
	if err := os.Mkdir(dir, 0o750); err != nil {
		return &IOError{Op: "create directory", Path: dir, Err: err}
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func displayPath(root string) string {
	if filepath.IsAbs(root) {
		return root
	}
	return "." + string(filepath.Separator) + filepath.Clean(root)
}

// CreateAll creates every project listed in pf in order and stops at the
// first failure. Projects created before the failure are kept.
func CreateAll(pf *api.ProjectsFile, out io.Writer) ([]*Project, error) {
	projects := make([]*Project, 0, len(pf.Projects))
	for _, spec := range pf.Projects {
		kind, err := api.ParseProjectKind(spec.Kind)
		if err != nil {
			return projects, fmt.Errorf("project %q: %w", spec.Name, err)
		}
		lang, err := api.ParseLanguage(spec.Language)
		if err != nil {
			return projects, fmt.Errorf("project %q: %w", spec.Name, err)
		}

		project, err := Create(Request{Kind: kind, Language: lang, Name: spec.Name, Destination: spec.Path}, out)
		if err != nil {
			return projects, fmt.Errorf("project %q: %w", spec.Name, err)
		}
		projects = append(projects, project)
	}
	return projects, nil
}
