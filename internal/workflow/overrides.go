package workflow

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paiid/paiid/pkg/models"
)

// Override adjusts the display of a built-in workflow. Only non-empty
// fields are applied; IDs must match an existing workflow.
type Override struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name,omitempty"`
	Color string `yaml:"color,omitempty"`
	Icon  string `yaml:"icon,omitempty"`
}

type overrideFile struct {
	Workflows []Override `yaml:"workflows"`
}

// LoadOverrides reads a workflows.yaml override file and returns a registry
// with the overrides applied on top of the built-in defaults.
func LoadOverrides(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workflow overrides: %w", err)
	}

	var f overrideFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse workflow overrides: %w", err)
	}

	return ApplyOverrides(f.Workflows)
}

// ApplyOverrides returns a registry with the given overrides applied.
// An override referencing an unknown workflow ID is an error.
func ApplyOverrides(overrides []Override) (*Registry, error) {
	workflows := make([]models.Workflow, len(defaults))
	copy(workflows, defaults)

	index := make(map[string]int, len(workflows))
	for i, w := range workflows {
		index[w.ID] = i
	}

	for _, o := range overrides {
		i, ok := index[o.ID]
		if !ok {
			return nil, fmt.Errorf("unknown workflow id %q in overrides", o.ID)
		}
		if o.Name != "" {
			workflows[i].Name = o.Name
		}
		if o.Color != "" {
			workflows[i].Color = o.Color
		}
		if o.Icon != "" {
			workflows[i].Icon = o.Icon
		}
	}

	return newRegistry(workflows), nil
}
