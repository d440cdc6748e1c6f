package api

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectsFile lists several projects to scaffold in one invocation.
type ProjectsFile struct {
	Projects []ProjectSpec `yaml:"projects"`
}

// ProjectSpec is one entry of a ProjectsFile.
type ProjectSpec struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Language string `yaml:"language"`
	Path     string `yaml:"path"`
}

// Destination is the directory the project will be created in.
func (s ProjectSpec) Destination() string {
	if s.Path != "" {
		return s.Path
	}
	return s.Name
}

// LoadProjects reads a projects file, unmarshals it, and validates.
func LoadProjects(filename string) (*ProjectsFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading projects file: %w", err)
	}

	var pf ProjectsFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing projects file: %w", err)
	}

	if err := pf.Validate(); err != nil {
		return nil, fmt.Errorf("validating projects file: %w", err)
	}

	return &pf, nil
}

// Validate checks the projects file for errors. Names themselves are
// validated by the scaffolder.
func (pf *ProjectsFile) Validate() error {
	if len(pf.Projects) == 0 {
		return fmt.Errorf("projects list is empty")
	}

	names := make(map[string]bool)
	destinations := make(map[string]bool)

	for i, p := range pf.Projects {
		if p.Name == "" {
			return fmt.Errorf("project %d: name is required", i)
		}
		if names[p.Name] {
			return fmt.Errorf("project %q: duplicate name", p.Name)
		}
		names[p.Name] = true

		if _, err := ParseProjectKind(p.Kind); err != nil {
			return fmt.Errorf("project %q: %w", p.Name, err)
		}
		if _, err := ParseLanguage(p.Language); err != nil {
			return fmt.Errorf("project %q: %w", p.Name, err)
		}

		dest := p.Destination()
		if destinations[dest] {
			return fmt.Errorf("project %q: duplicate destination %q", p.Name, dest)
		}
		destinations[dest] = true
	}

	return nil
}
