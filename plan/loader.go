package plan

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and initial parsing of a Plan from a file.
type Loader struct {
	filePath string
}

// NewLoader creates a new plan loader for the given file path.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads the plan file, unmarshals it and performs basic structural
// validation.
func (l *Loader) Load() (*Plan, error) {
	if l.filePath == "" {
		return nil, errors.New("plan file path is empty")
	}
	content, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read plan file '%s'", l.filePath)
	}
	if len(content) == 0 {
		return nil, errors.Errorf("plan file '%s' is empty", l.filePath)
	}

	var p Plan
	if err := yaml.Unmarshal(content, &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal plan YAML from '%s'", l.filePath)
	}

	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid plan in '%s'", l.filePath)
	}
	return &p, nil
}
