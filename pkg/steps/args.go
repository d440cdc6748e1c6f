package steps

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// renderArgs executes each argument as a template against data.
func renderArgs(stepName string, args []string, data map[string]any) ([]string, error) {
	rendered := make([]string, 0, len(args))
	for i, arg := range args {
		tmpl, err := template.New(fmt.Sprintf("%s-arg%d", stepName, i)).
			Funcs(sprig.FuncMap()).
			Option("missingkey=error").
			Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("parsing argument %d: %w", i, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("rendering argument %d: %w", i, err)
		}
		rendered = append(rendered, buf.String())
	}
	return rendered, nil
}
