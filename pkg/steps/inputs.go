package steps

import (
	"fmt"
	"io/fs"

	"github.com/bmatcuk/doublestar/v4"
)

// checkInputs fails when any pattern matches nothing inside fsys.
func checkInputs(fsys fs.FS, patterns []string) error {
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return fmt.Errorf("glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return fmt.Errorf("required input %q not found", pattern)
		}
	}
	return nil
}
