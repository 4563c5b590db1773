package step

import (
	"time"

	"github.com/google/uuid"
)

// BaseStep provides common fields and default method implementations for steps.
// Concrete steps embed it and implement Execute themselves.
type BaseStep struct {
	StepCode        string
	StepName        string
	StepDescription string

	elapsed time.Duration
}

// NewBaseStep is a helper constructor for initializing common BaseStep fields.
// An empty code is replaced with a generated one so the step stays addressable.
func NewBaseStep(code, name, description string) BaseStep {
	if code == "" {
		code = uuid.NewString()
	}
	return BaseStep{
		StepCode:        code,
		StepName:        name,
		StepDescription: description,
	}
}

// Code returns the identifying code of the step.
func (bs *BaseStep) Code() string {
	return bs.StepCode
}

// Name returns the name of the step.
func (bs *BaseStep) Name() string {
	if bs.StepName == "" {
		return bs.StepCode
	}
	return bs.StepName
}

// Description returns the description of the step.
func (bs *BaseStep) Description() string {
	return bs.StepDescription
}

// Time returns the measured duration of the last execution.
func (bs *BaseStep) Time() time.Duration {
	return bs.elapsed
}

// MeasureSince records the elapsed time of an execution that began at start.
// Concrete steps typically call it via defer at the top of Execute:
//
//	defer s.MeasureSince(time.Now())
func (bs *BaseStep) MeasureSince(start time.Time) {
	bs.elapsed = time.Since(start)
}

// SetTime overrides the measured duration. Mostly useful for steps that
// delegate their work elsewhere and receive a duration back.
func (bs *BaseStep) SetTime(d time.Duration) {
	bs.elapsed = d
}
