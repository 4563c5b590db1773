package step

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FuncStep wraps a plain function as a Step. It is the simplest way for a
// caller to drop a piece of code into a progress list.
type FuncStep struct {
	BaseStep
	fn func(logger *logrus.Entry) error
}

// NewFuncStep creates a step that runs fn when executed.
func NewFuncStep(code, name, description string, fn func(logger *logrus.Entry) error) *FuncStep {
	return &FuncStep{
		BaseStep: NewBaseStep(code, name, description),
		fn:       fn,
	}
}

// Execute runs the wrapped function and measures its duration.
func (s *FuncStep) Execute(logger *logrus.Entry) error {
	if s.fn == nil {
		return errors.Errorf("step '%s' has no function to execute", s.Name())
	}
	defer s.MeasureSince(time.Now())
	return s.fn(logger)
}

var _ Step = (*FuncStep)(nil)
