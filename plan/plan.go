// Package plan loads declarative YAML descriptions of a progress run and
// builds executable progress lists from them.
package plan

import (
	"time"

	"github.com/pkg/errors"

	"github.com/mensylisir/xmprogress/progress"
	"github.com/mensylisir/xmprogress/step"
	"github.com/mensylisir/xmprogress/util"
)

const (
	// KindPlan is the expected kind field of a plan document.
	KindPlan = "Plan"
	// DefaultMaxProgress is used when spec.maxProgress is omitted.
	DefaultMaxProgress = 100
)

// Plan is the top-level YAML document describing a progress run.
type Plan struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Spec       *Spec    `yaml:"spec"`
}

// Metadata identifies the plan.
type Metadata struct {
	Name string `yaml:"name"`
}

// Spec holds the progress scale, shared template variables and the ordered
// steps.
type Spec struct {
	MaxProgress int                    `yaml:"maxProgress,omitempty"`
	Vars        map[string]interface{} `yaml:"vars,omitempty"`
	Steps       []StepSpec             `yaml:"steps"`
}

// StepSpec describes a single command step. Command may reference entries of
// Spec.Vars via Go template syntax.
type StepSpec struct {
	Code           string            `yaml:"code,omitempty"`
	Name           string            `yaml:"name"`
	Description    string            `yaml:"description,omitempty"`
	Command        string            `yaml:"command"`
	Shell          string            `yaml:"shell,omitempty"`
	WorkDir        string            `yaml:"workDir,omitempty"`
	Env            map[string]string `yaml:"env,omitempty"`
	TimeoutSeconds int               `yaml:"timeoutSeconds,omitempty"`
}

// Validate performs basic structural validation of the plan document.
func (p *Plan) Validate() error {
	if p.APIVersion == "" {
		return errors.New("plan validation failed: apiVersion is a required field")
	}
	if p.Kind != KindPlan {
		return errors.Errorf("plan validation failed: kind must be '%s', got '%s'", KindPlan, p.Kind)
	}
	if p.Metadata.Name == "" {
		return errors.New("plan validation failed: metadata.name is a required field")
	}
	if p.Spec == nil {
		return errors.New("plan validation failed: spec section is missing or empty")
	}
	if p.Spec.MaxProgress < 0 {
		return errors.Errorf("plan validation failed: spec.maxProgress must not be negative, got %d", p.Spec.MaxProgress)
	}
	if len(p.Spec.Steps) == 0 {
		return errors.New("plan validation failed: spec.steps must contain at least one step")
	}
	for i, s := range p.Spec.Steps {
		if s.Name == "" {
			return errors.Errorf("plan validation failed: steps[%d].name is a required field", i)
		}
		if s.Command == "" {
			return errors.Errorf("plan validation failed: steps[%d].command is a required field", i)
		}
		if s.TimeoutSeconds < 0 {
			return errors.Errorf("plan validation failed: steps[%d].timeoutSeconds must not be negative", i)
		}
	}
	return nil
}

// Build turns the plan into an executable progress list of command steps,
// rendering each command template against Spec.Vars.
func (p *Plan) Build(opts ...progress.Option) (*progress.List, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	maxProgress := p.Spec.MaxProgress
	if maxProgress == 0 {
		maxProgress = DefaultMaxProgress
	}

	list := progress.NewList(maxProgress, opts...)
	for i, ss := range p.Spec.Steps {
		command, err := util.RenderString(ss.Command, util.Data(p.Spec.Vars))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render command of steps[%d] (%s)", i, ss.Name)
		}

		cs := step.NewCommandStep(ss.Code, ss.Name, ss.Description, command)
		cs.Shell = ss.Shell
		cs.WorkDir = ss.WorkDir
		cs.Env = ss.Env
		cs.Timeout = time.Duration(ss.TimeoutSeconds) * time.Second
		list.Append(cs)
	}
	return list, nil
}
